// sp.go: Single-producer broadcast ring buffer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

// SPRing is the single-producer variant of the broadcast ring.
//
// Exactly one writer reserves slots, so the reservation cursor needs no
// atomics at all: it is a plain padded counter mutated only by the sole
// writer goroutine. Publication still goes through an atomic counter so
// that any number of concurrent readers observe completed slot writes.
//
// Protocol per put:
//  1. Read w from nextWrite and bump it (plain writes, sole writer).
//  2. Store the value into slot w & mask.
//  3. Fetch-add nextReadable, the publication point. The add's prior
//     value must equal w; a mismatch means a second writer is mutating
//     this ring and the protocol is broken.
//
// Slots become readable in strict reservation order, and a fresh reader
// that never overruns observes the exact produced sequence.
type SPRing[T any] struct {
	data     []Cell[T]
	capacity int64
	mask     int64 // capacity - 1 for bit masking

	nextWrite    paddedInt64       // reservation cursor, sole writer only
	nextReadable atomicPaddedInt64 // publication cursor

	isFinished atomicPaddedInt64 // 0 = accepting, 1 = finished

	// Cache line padding to prevent false sharing with neighbors
	_ [64]byte
}

// NewSP creates a single-producer broadcast ring.
//
// Parameters:
//   - capacity: Ring size; must be a power of two >= 2 (e.g. 1024, 4096)
//
// Returns:
//   - *SPRing[T]: Ring ready to Split
//   - error: Capacity contract violation
func NewSP[T any](capacity int64) (*SPRing[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &SPRing[T]{
		data:     make([]Cell[T], capacity),
		capacity: capacity,
		mask:     capacity - 1,
	}, nil
}

// Split returns the ring's reader and writer handles.
//
// Call it exactly once per ring. The reader can be cloned for additional
// independent consumers; the writer cannot be cloned. The ring must outlive
// both handles.
func (r *SPRing[T]) Split() (*Reader[T], *Writer[T]) {
	return &Reader[T]{ring: r}, &Writer[T]{ring: r}
}

// put reserves the next slot, stores value, and publishes it.
func (r *SPRing[T]) put(value T) {
	w := r.nextWrite.value
	r.nextWrite.value = w + 1
	r.data[w&r.mask].write(value)
	if prev := r.nextReadable.Add(1) - 1; prev != w {
		panic("hyperring: single-producer ring mutated by a second writer")
	}
}

// retrieve returns the slot at cursor if published, nil otherwise.
func (r *SPRing[T]) retrieve(cursor int64) *T {
	if cursor >= r.nextReadable.Load() {
		return nil
	}
	return r.data[cursor&r.mask].get()
}

// readableTo returns the publication cursor.
func (r *SPRing[T]) readableTo() int64 {
	return r.nextReadable.Load()
}

// finished reports whether the sole writer has been closed.
func (r *SPRing[T]) finished() bool {
	return r.isFinished.Load() != 0
}

// markFinished latches the ring as finished. Monotonic: once set it never
// clears.
func (r *SPRing[T]) markFinished() {
	r.isFinished.Store(1)
}

// Stats returns a snapshot of the ring's counters.
//
// Returns:
//   - map[string]int64: writer position, readable position, capacity and
//     finish state at one (non-atomic) instant
func (r *SPRing[T]) Stats() map[string]int64 {
	readable := r.nextReadable.Load()
	return map[string]int64{
		"capacity":          r.capacity,
		"readable_position": readable,
		"writer_position":   readable, // nextReadable == nextWrite between puts
		"finished":          r.isFinished.Load(),
	}
}
