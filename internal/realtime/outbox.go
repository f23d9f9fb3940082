package realtime

// outbox holds frames sent while the channel is down. A zero capacity disables it.
// When full, the oldest frame is evicted.
type outbox struct {
	capacity int
	frames   []Frame
}

func newOutbox(capacity int) *outbox {
	if capacity < 0 {
		capacity = 0
	}
	return &outbox{capacity: capacity}
}

// push reports whether f was kept, and whether an older frame was evicted to make room.
func (o *outbox) push(f Frame) (kept, evicted bool) {
	if o.capacity == 0 {
		return false, false
	}
	if len(o.frames) >= o.capacity {
		o.frames = o.frames[1:]
		evicted = true
	}
	o.frames = append(o.frames, f)
	return true, evicted
}

func (o *outbox) drain() []Frame {
	out := o.frames
	o.frames = nil
	return out
}

func (o *outbox) len() int { return len(o.frames) }
