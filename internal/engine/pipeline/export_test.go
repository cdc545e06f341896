package pipeline

import "time"

// SetClock replaces the pipeline's time source.
func (p *Pipeline) SetClock(now func() time.Time) {
	p.now = now
}
