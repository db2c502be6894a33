// mp_test.go: Tests for the multi-producer broadcast ring
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

import (
	"testing"
)

func TestNewMP_InvalidCapacity(t *testing.T) {
	invalidCapacities := []int64{-1, 0, 1, 3, 12, 100, 1000}

	for _, capacity := range invalidCapacities {
		ring, err := NewMP[int](capacity)
		if err == nil {
			t.Errorf("Expected error for invalid capacity %d, got nil", capacity)
		}
		if ring != nil {
			t.Errorf("Expected nil ring for invalid capacity %d", capacity)
		}
	}
}

func TestMPRing_SequentialPutsReadInOrder(t *testing.T) {
	ring, err := NewMP[int](16)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	reader, writer := ring.Split()
	defer writer.Close()

	for i := 0; i < 10; i++ {
		writer.Put(i)
	}

	for i := 0; i < 10; i++ {
		v, ok := reader.Next()
		if !ok {
			t.Fatalf("Expected value at cursor %d, got none", i)
		}
		if *v != i {
			t.Errorf("Cursor %d: expected %d, got %d", i, i, *v)
		}
	}
}

func TestMPRing_SplitRegistersFirstProducer(t *testing.T) {
	ring, _ := NewMP[int](8)

	reader, writer := ring.Split()

	stats := ring.Stats()
	if stats["producers"] != 1 {
		t.Fatalf("Expected 1 producer after Split, got %d", stats["producers"])
	}
	if reader.IsFinished() {
		t.Error("Fresh ring with a live writer must not report finished")
	}

	writer.Close()
	if !reader.IsFinished() {
		t.Error("Expected finished after the only writer closed")
	}
}

func TestMPRing_CloneRegistersProducers(t *testing.T) {
	ring, _ := NewMP[int](8)
	_, writer := ring.Split()

	w2 := writer.Clone()
	w3 := writer.Clone()

	if got := ring.Stats()["producers"]; got != 3 {
		t.Fatalf("Expected 3 producers after two clones, got %d", got)
	}

	writer.Close()
	w2.Close()
	w3.Close()

	stats := ring.Stats()
	if stats["finished_writers"] != 3 {
		t.Errorf("Expected 3 finished writers, got %d", stats["finished_writers"])
	}
}

// The finished observation is instantaneous: a clone taken after all
// handles closed re-opens the latch until that clone is closed too.
func TestMPRing_CloneReopensFinishLatch(t *testing.T) {
	ring, _ := NewMP[int](8)
	reader, writer := ring.Split()

	writer.Close()
	if !reader.IsFinished() {
		t.Fatal("Expected finished after sole writer closed")
	}

	late := writer.Clone()
	if reader.IsFinished() {
		t.Error("Live clone must hold the finish latch open")
	}

	late.Close()
	if !reader.IsFinished() {
		t.Error("Expected finished after the late clone closed")
	}
}

// One factory cloned into three handles, original dropped: finished flips
// true exactly when the last clone closes.
func TestMPRing_FinishedExactlyAtLastClose(t *testing.T) {
	ring, _ := NewMP[int](64)
	reader, writer := ring.Split()

	clones := []*MultiWriter[int]{writer.Clone(), writer.Clone(), writer.Clone()}
	writer.Close() // original dropped after cloning

	for i, w := range clones {
		for j := 0; j < 5; j++ {
			w.Put(i*5 + j)
		}
	}

	// Drain everything that was published.
	count := 0
	for {
		if _, ok := reader.Next(); !ok {
			break
		}
		count++
	}
	if count != 15 {
		t.Fatalf("Expected 15 values, got %d", count)
	}

	for i, w := range clones {
		if reader.IsFinished() {
			t.Fatalf("Finished reported before clone %d closed", i)
		}
		w.Close()
	}

	if !reader.IsFinished() {
		t.Error("Expected finished after the last clone closed")
	}
}

func TestMPRing_StatsTracksCursors(t *testing.T) {
	ring, _ := NewMP[int](8)
	_, writer := ring.Split()
	defer writer.Close()

	writer.Put(1)
	writer.Put(2)

	stats := ring.Stats()
	if stats["writer_position"] != 2 {
		t.Errorf("Expected writer position 2, got %d", stats["writer_position"])
	}
	if stats["readable_position"] != 2 {
		t.Errorf("Expected readable position 2, got %d", stats["readable_position"])
	}
	if stats["in_flight"] != 0 {
		t.Errorf("Expected no in-flight reservations, got %d", stats["in_flight"])
	}
}
