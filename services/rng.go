package services

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource feeds every in-game roll. Production uses the crypto-backed
// default; tests inject seeded or scripted sources.
type RandomSource interface {
	IntN(n int) int   // uniform int in [0, n)
	Float64() float64 // uniform in [0, 1)
}

type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.IntN(n)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable source for simulations and tests.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
func (s *seededRNG) Float64() float64 { return s.r.Float64() }
