package worker

// scheduler.go
// Periodic backup scheduling. The cron only enqueues; the pool does the
// actual snapshot and upload so a slow endpoint never blocks the schedule.

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

// StartScheduler enqueues a backup job every intervalMins minutes.
// Returns a stop function for graceful shutdown.
func StartScheduler(ctx context.Context, backups service.BackupService, intervalMins int) (func(), error) {
	c := cron.New()
	spec := fmt.Sprintf("@every %dm", intervalMins)
	_, err := c.AddFunc(spec, func() {
		if err := backups.Programar(ctx); err != nil {
			log.Error().Err(err).Msg("scheduler: no se pudo encolar el backup")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}
	c.Start()
	log.Info().Str("intervalo", spec).Msg("scheduler de backups iniciado")

	return func() {
		<-c.Stop().Done()
	}, nil
}
