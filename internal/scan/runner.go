// internal/scan/runner.go
package scan

import (
	"context"
	"time"

	"liftcontrol/internal/telemetry"
)

// Run starts the ticker loop and emits one snapshot per tick on the
// provided channel. One loop, one goroutine. No overlap, no catch-up.
func (l *Loop) Run(ctx context.Context, out chan<- telemetry.Snapshot) {
	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case out <- l.CycleOnce():
			case <-ctx.Done():
				return
			}
		}
	}
}
