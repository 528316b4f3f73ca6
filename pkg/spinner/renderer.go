package spinner

import (
	"context"
	"time"
)

// scheduledRenderer calls tick at a fixed interval until stopped. Ticks never
// overlap since they run on a single goroutine.
type scheduledRenderer struct {
	interval time.Duration
	tick     func(*scheduledRenderer)
	cancel   context.CancelFunc
	done     chan struct{}
}

func startRenderer(interval time.Duration, tick func(*scheduledRenderer)) *scheduledRenderer {
	ctx, cancel := context.WithCancel(context.Background())

	r := &scheduledRenderer{
		interval: interval,
		tick:     tick,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go r.run(ctx)

	return r
}

func (r *scheduledRenderer) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A stop may have raced the ticker.
			if ctx.Err() != nil {
				return
			}
			r.tick(r)
		}
	}
}

// stop cancels the loop and waits for it to exit. No tick runs after stop
// returns. It must not be called from within tick.
func (r *scheduledRenderer) stop() {
	r.cancel()
	<-r.done
}
