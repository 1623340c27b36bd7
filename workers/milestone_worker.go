package workers

import (
	"log"
	"time"

	"roster-game-system/services"

	"github.com/go-co-op/gocron/v2"
)

// StartMilestoneWorker sweeps recently active accounts for unclaimed win
// milestones. Players normally trigger the check themselves via the API; the
// sweep catches accounts that won matches but never called it.
func StartMilestoneWorker(milestoneService *services.MilestoneService, every time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			since := time.Now().Add(-2 * every)
			if err := milestoneService.SweepRecent(since); err != nil {
				log.Printf("[MilestoneWorker] sweep error: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	log.Printf("✅ Milestone sweep running (every %s)", every)
	return sched, nil
}
