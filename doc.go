// Package hyperring provides a bounded, lock-free, broadcast ring buffer for
// low-latency in-process event fan-out.
//
// Producers append values into a fixed-capacity circular array; any number of
// independent readers scan the same backing storage from their own cursor.
// Unlike a queue, a read does not consume: every live reader observes every
// published slot, provided it keeps up. A reader that falls behind by more
// than the ring's capacity is silently lapped by the writers: the ring
// favors throughput over reliable delivery.
//
// # Key Features
//
//   - Wait-free single-producer ring (SPRing) and lock-free multi-producer
//     ring (MPRing) sharing one reader type
//   - Broadcast semantics: cloned readers each receive the full stream
//   - Zero locks, zero allocations on the put and read paths
//   - Cache-line padded slots and counters to eliminate false sharing
//   - Termination detection across an unknown number of producers and readers
//   - Configurable reader idle strategies (spinning, sleeping, progressive)
//     for the drain loop
//
// # Quick Start
//
// Single producer, many readers:
//
//	ring, err := hyperring.NewSP[uint32](1024)
//	if err != nil {
//		panic(err)
//	}
//	reader, writer := ring.Split()
//
//	go func() {
//		defer writer.Close()
//		for _, v := range input {
//			writer.Put(v)
//		}
//	}()
//
//	second := reader.Clone() // independent cursor, starts at 0
//	reader.Consume(func(v *uint32) { sink(*v) })
//
// Multiple producers:
//
//	ring, _ := hyperring.NewMP[uint32](2048)
//	reader, writer := ring.Split()
//	w2 := writer.Clone()
//	go produce(writer) // each goroutine must Close its handle
//	go produce(w2)
//
// Each MultiWriter clone registers an additional producer; the ring reports
// finished only once every handle ever created has been closed. After
// cloning all the writers you need, close (or hand off) the original so it
// does not hold the finish latch open.
//
// # Delivery Contract
//
// Delivery is lossy. Writers never block and never observe
// readers: when a writer laps a slow reader, the overwritten slots are gone
// and the reader sees whatever currently occupies the wrapped positions.
// Size the ring so readers rarely fall a full capacity behind, or accept the
// loss. Empty reads are not errors; readers poll and idle externally.
//
// The ring must outlive all readers and writers split from it.
package hyperring
