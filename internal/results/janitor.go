package results

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
)

// ScheduleJanitor registers the expired hand-off cleanup on c.
func ScheduleJanitor(c *cron.Cron, spec string, s Service) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		deleted, err := s.PurgeExpired(context.Background())
		if err != nil {
			config.Logger.WithError(err).Error("Erro ao remover resultados expirados")
			return
		}
		if deleted > 0 {
			config.Logger.WithField("deleted", deleted).Info("Resultados expirados removidos")
		}
	})
}
