package scoring

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartBackfillScheduler runs the zero-row backfill sweep across every club
// on a fixed interval. The sweep keeps season aggregates honest when squads
// change after publication. Returns the scheduler so the caller can shut it
// down.
func StartBackfillScheduler(repo Repository, everyMins int) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	completer := NewCompleter(repo)
	_, err = sched.NewJob(
		gocron.DurationJob(time.Duration(everyMins)*time.Minute),
		gocron.NewTask(func() {
			clubIDs, err := repo.ListClubIDs()
			if err != nil {
				log.Printf("[Backfill] listing clubs: %v", err)
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			for _, clubID := range clubIDs {
				outcomes, err := completer.BackfillClub(ctx, clubID)
				if err != nil {
					log.Printf("[Backfill] club %d: %v", clubID, err)
					continue
				}
				rows := 0
				for _, o := range outcomes {
					rows += o.Rows
					if o.Error != "" {
						log.Printf("[Backfill] club %d match %d: %s", clubID, o.MatchID, o.Error)
					}
				}
				if rows > 0 {
					log.Printf("[Backfill] club %d: inserted %d zero-rows across %d matches", clubID, rows, len(outcomes))
				}
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
