package services

import (
	"errors"

	"roster-game-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CharacterService is plain catalog CRUD for character templates. The game
// engines only ever read this table.
type CharacterService struct {
	DB *gorm.DB
}

func NewCharacterService(db *gorm.DB) *CharacterService {
	return &CharacterService{DB: db}
}

type TemplateInput struct {
	Name         string `json:"name"`
	Speed        int    `json:"speed"`
	Decisiveness int    `json:"decisiveness"`
	Power        int    `json:"power"`
	Defense      int    `json:"defense"`
	Stamina      int    `json:"stamina"`
	Tier         string `json:"tier"`
}

func (in *TemplateInput) validate() error {
	switch in.Tier {
	case "S", "A", "B", "C":
	default:
		return ErrInvalidTemplate
	}
	if in.Name == "" {
		return ErrInvalidTemplate
	}
	for _, v := range []int{in.Speed, in.Decisiveness, in.Power, in.Defense, in.Stamina} {
		if v < 0 {
			return ErrInvalidTemplate
		}
	}
	return nil
}

func (s *CharacterService) Create(in TemplateInput) (*models.CharacterTemplate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tpl := models.CharacterTemplate{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Speed:        in.Speed,
		Decisiveness: in.Decisiveness,
		Power:        in.Power,
		Defense:      in.Defense,
		Stamina:      in.Stamina,
		Tier:         in.Tier,
	}
	if err := s.DB.Create(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *CharacterService) Get(id string) (*models.CharacterTemplate, error) {
	var tpl models.CharacterTemplate
	if err := s.DB.First(&tpl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

func (s *CharacterService) List() ([]models.CharacterTemplate, error) {
	var tpls []models.CharacterTemplate
	err := s.DB.Order("tier ASC, name ASC").Find(&tpls).Error
	return tpls, err
}

func (s *CharacterService) Update(id string, in TemplateInput) (*models.CharacterTemplate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tpl, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	tpl.Name = in.Name
	tpl.Speed = in.Speed
	tpl.Decisiveness = in.Decisiveness
	tpl.Power = in.Power
	tpl.Defense = in.Defense
	tpl.Stamina = in.Stamina
	tpl.Tier = in.Tier
	if err := s.DB.Save(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *CharacterService) Delete(id string) (*models.CharacterTemplate, error) {
	tpl, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}
