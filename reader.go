// reader.go: Independent broadcast reader over a ring container
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

// ProcessorFunc is the processing function signature for drained values.
type ProcessorFunc[T any] func(*T)

// Reader is an independent view over a ring. It owns nothing but its
// cursor: cloning a reader yields another full consumer of the stream,
// starting from cursor 0.
//
// A Reader is not safe for concurrent use by multiple goroutines; move it
// between goroutines freely, but drive it from one at a time. Clone for
// parallel consumers instead.
type Reader[T any] struct {
	ring   container[T]
	cursor int64
}

// Next returns a pointer to the value at the reader's cursor and advances
// the cursor, or (nil, false) without advancing if nothing is published
// there yet.
//
// The pointer aims into the ring's backing storage. It stays valid until
// the writers wrap back around to the same slot, so copy the value out if
// the reader may fall a full capacity behind. A reader already in overrun
// silently observes whatever currently occupies the wrapped slots, per
// the lossy delivery contract.
func (r *Reader[T]) Next() (*T, bool) {
	v := r.ring.retrieve(r.cursor)
	if v == nil {
		return nil, false
	}
	r.cursor++
	return v, true
}

// IsFinished reports whether the stream has been fully drained: the ring's
// writers are done and the cursor has reached the publication head.
//
// This is the drain-complete predicate: a finished ring with unread slots
// still reports false until the reader catches up.
func (r *Reader[T]) IsFinished() bool {
	return r.ring.finished() && r.cursor == r.ring.readableTo()
}

// Clone returns a fresh independent reader over the same ring, with its
// cursor at 0: it will observe every currently-published and
// future-published slot until it falls behind or is discarded.
func (r *Reader[T]) Clone() *Reader[T] {
	return &Reader[T]{ring: r.ring}
}

// Consume drains the ring through processor until IsFinished, idling with
// a progressive strategy (hot spin, then yield, then sleep) while the ring
// is empty.
//
// This is the convenience drain loop; use ConsumeWith to control the
// CPU/latency trade-off.
func (r *Reader[T]) Consume(processor ProcessorFunc[T]) {
	r.ConsumeWith(processor, NewProgressiveIdleStrategy())
}

// ConsumeWith drains the ring through processor until IsFinished, using
// strategy to idle while no work is available.
//
// Parameters:
//   - processor: Called once per published value, in cursor order
//   - strategy: Idle behavior between bursts; must not be shared with
//     another running consumer
func (r *Reader[T]) ConsumeWith(processor ProcessorFunc[T], strategy IdleStrategy) {
	for {
		if v, ok := r.Next(); ok {
			processor(v)
			strategy.Reset()
			continue
		}
		if r.IsFinished() {
			return
		}
		strategy.Idle()
	}
}
