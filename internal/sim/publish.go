package sim

import "sync/atomic"

// FramePublisher forwards snapshots to a consumer over a bounded channel.
// When the consumer lags, frames are dropped rather than blocking the step
// loop; the renderer never affects simulation correctness.
type FramePublisher struct {
	ch      chan Snapshot
	dropped atomic.Int64
}

func NewFramePublisher(depth int) *FramePublisher {
	if depth < 1 {
		depth = 1
	}
	return &FramePublisher{ch: make(chan Snapshot, depth)}
}

func (p *FramePublisher) OnStep(s Snapshot) {
	select {
	case p.ch <- s:
	default:
		p.dropped.Add(1)
	}
}

// Frames is the consumer side of the queue.
func (p *FramePublisher) Frames() <-chan Snapshot { return p.ch }

// Dropped reports how many frames were discarded due to a slow consumer.
func (p *FramePublisher) Dropped() int64 { return p.dropped.Load() }

// Close signals the consumer that no more frames will arrive. Call only
// after the step loop has finished.
func (p *FramePublisher) Close() { close(p.ch) }
