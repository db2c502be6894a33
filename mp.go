// mp.go: Multi-producer broadcast ring buffer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

// MPRing is the multi-producer variant of the broadcast ring.
//
// Producers race on a single atomic reservation cursor: a compare-and-swap
// loop serializes them, and the winner owns the claimed slot. The slot
// store and the publication fetch-add that follow are not ordered across
// producers, so publication can complete out of reservation order: a reader
// observing nextReadable == w+2 may find slot w still mid-write. Callers
// choosing this variant must tolerate the weaker per-slot guarantee (or add
// external ordering); what holds in aggregate is that every reserved slot
// is eventually written and published.
//
// Termination spans an unknown number of producers: every writer handle
// created (via Split or Clone) bumps producerCount, and every handle closed
// bumps finishCount. The ring is finished when the two are equal. The
// observation is instantaneous: it flips back if a live handle is cloned
// afterwards, which is why the original writer must be closed once all
// clones have been made.
type MPRing[T any] struct {
	data     []Cell[T]
	capacity int64
	mask     int64 // capacity - 1 for bit masking

	nextWrite    atomicPaddedInt64 // reservation cursor, CAS serialized
	nextReadable atomicPaddedInt64 // publication cursor

	producerCount atomicPaddedInt64 // writer handles ever created
	finishCount   atomicPaddedInt64 // writer handles closed

	// Cache line padding to prevent false sharing with neighbors
	_ [64]byte
}

// NewMP creates a multi-producer broadcast ring.
//
// Parameters:
//   - capacity: Ring size; must be a power of two >= 2 (e.g. 2048, 32768)
//
// Returns:
//   - *MPRing[T]: Ring ready to Split
//   - error: Capacity contract violation
func NewMP[T any](capacity int64) (*MPRing[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &MPRing[T]{
		data:     make([]Cell[T], capacity),
		capacity: capacity,
		mask:     capacity - 1,
	}, nil
}

// Split returns the ring's reader and writer handles, registering the
// first producer.
//
// Call it exactly once per ring. Both handles can be cloned: each reader
// clone is an independent consumer starting at cursor 0, each writer clone
// an additional registered producer. The ring must outlive every handle.
func (r *MPRing[T]) Split() (*Reader[T], *MultiWriter[T]) {
	r.producerCount.Add(1)
	return &Reader[T]{ring: r}, &MultiWriter[T]{ring: r}
}

// put reserves a slot via CAS, stores value, and publishes it.
func (r *MPRing[T]) put(value T) {
	w := r.nextWrite.Load()
	for !r.nextWrite.CompareAndSwap(w, w+1) {
		w = r.nextWrite.Load()
	}
	r.data[w&r.mask].write(value)
	r.nextReadable.Add(1)
}

// retrieve returns the slot at cursor if published, nil otherwise.
func (r *MPRing[T]) retrieve(cursor int64) *T {
	if cursor >= r.nextReadable.Load() {
		return nil
	}
	return r.data[cursor&r.mask].get()
}

// readableTo returns the publication cursor.
func (r *MPRing[T]) readableTo() int64 {
	return r.nextReadable.Load()
}

// finished reports whether every writer handle ever created has been
// closed. Load finishCount first: seeing a finish implies its producer
// registration is visible too, so the check can under-report but never
// claim finished while a registered handle is still live.
func (r *MPRing[T]) finished() bool {
	finishes := r.finishCount.Load()
	return finishes == r.producerCount.Load()
}

// registerProducer records one more writer handle.
func (r *MPRing[T]) registerProducer() {
	r.producerCount.Add(1)
}

// finishProducer records one writer handle closed. Called at most once per
// handle.
func (r *MPRing[T]) finishProducer() {
	r.finishCount.Add(1)
}

// Stats returns a snapshot of the ring's counters.
//
// Returns:
//   - map[string]int64: cursors, capacity, in-flight reservations and
//     producer bookkeeping at one (non-atomic) instant
func (r *MPRing[T]) Stats() map[string]int64 {
	writerPos := r.nextWrite.Load()
	readable := r.nextReadable.Load()
	return map[string]int64{
		"capacity":          r.capacity,
		"writer_position":   writerPos,
		"readable_position": readable,
		"in_flight":         writerPos - readable,
		"producers":         r.producerCount.Load(),
		"finished_writers":  r.finishCount.Load(),
	}
}
