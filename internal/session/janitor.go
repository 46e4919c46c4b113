package session

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduleEviction registers idle-session eviction on c.
func ScheduleEviction(c *cron.Cron, spec string, s Service, maxIdle time.Duration) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		s.EvictIdle(context.Background(), maxIdle)
	})
}
