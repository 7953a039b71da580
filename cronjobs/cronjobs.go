package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"go-atollmap/db"
	"go-atollmap/filters"
	"go-atollmap/processor"
)

// defaultReloadSchedule re-fetches the dataset hourly when RELOAD_SCHEDULE
// is not set.
const defaultReloadSchedule = "0 * * * *"

// InitCronJobs schedules the periodic dataset reload and starts the cron
// runner.
func InitCronJobs(schedule string, source db.Source, engine *filters.Engine) *cron.Cron {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	if schedule == "" {
		schedule = defaultReloadSchedule
	}

	_, err := c.AddFunc(schedule, func() {
		log.Println("\nCronJob: Dataset Reload Running")
		reloadDataset(source, engine)
	})
	if err != nil {
		log.Println("Error scheduling dataset reload:", err)
	}

	c.Start()
	return c
}

// reloadDataset re-fetches the dataset and swaps the engine's state. A
// failed reload keeps the previous session state; it is not fatal
// mid-session.
func reloadDataset(source db.Source, engine *filters.Engine) {
	ds, err := source.Load()
	if err != nil {
		log.Printf("Dataset reload failed, keeping current data: %v", err)
		return
	}
	islands := processor.Normalize(ds.Islands)
	engine.Reload(islands)
	log.Printf("Dataset reload complete: %d islands", len(islands))
}
