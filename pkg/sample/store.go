package sample

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of samples kept by the reference device.
const DefaultCapacity = 5

// ErrStoreFull is returned by Append under PolicyReject when every slot is filled.
var ErrStoreFull = errors.New("sample store full")

// Policy selects what Append does once the store is full.
type Policy int

const (
	// PolicyReject drops the new sample.
	PolicyReject Policy = iota
	// PolicyOverwriteOldest replaces the oldest sample.
	PolicyOverwriteOldest
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyOverwriteOldest:
		return "overwrite-oldest"
	default:
		return "reject"
	}
}

// ParsePolicy parses a configuration name. Empty selects PolicyReject.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "reject":
		return PolicyReject, nil
	case "overwrite-oldest":
		return PolicyOverwriteOldest, nil
	default:
		return PolicyReject, fmt.Errorf("unknown store policy %q", s)
	}
}

// slot is one store entry. filled marks it in use, independent of its values.
type slot struct {
	sample WaterSample
	filled bool
}

// Store is a fixed-capacity sequence of samples in insertion order.
// Slots are allocated once; the store never grows.
// Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	slots  []slot
	policy Policy
	head   int // index of the oldest filled slot
	count  int
}

// NewStore creates a store with capacity slots.
func NewStore(capacity int, policy Policy) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		slots:  make([]slot, capacity),
		policy: policy,
	}
}

// Append adds s. Under PolicyReject a full store returns ErrStoreFull and is
// left unchanged; under PolicyOverwriteOldest the oldest sample is replaced.
func (st *Store) Append(s WaterSample) error {
	capacity := len(st.slots)

	if st.count < capacity {
		st.slots[(st.head+st.count)%capacity] = slot{sample: s, filled: true}
		st.count++
		return nil
	}

	if st.policy == PolicyReject {
		return ErrStoreFull
	}

	st.slots[st.head] = slot{sample: s, filled: true}
	st.head = (st.head + 1) % capacity
	return nil
}

// Samples returns a copy of the filled samples, oldest first.
func (st *Store) Samples() []WaterSample {
	out := make([]WaterSample, 0, st.count)
	capacity := len(st.slots)
	for i := 0; i < st.count; i++ {
		sl := st.slots[(st.head+i)%capacity]
		if sl.filled {
			out = append(out, sl.sample)
		}
	}
	return out
}

// Len returns the number of filled slots.
func (st *Store) Len() int {
	return st.count
}

// Cap returns the capacity.
func (st *Store) Cap() int {
	return len(st.slots)
}

// Full reports whether every slot is filled.
func (st *Store) Full() bool {
	return st.count == len(st.slots)
}

// Policy returns the overflow policy.
func (st *Store) Policy() Policy {
	return st.policy
}

// Reset empties every slot.
func (st *Store) Reset() {
	for i := range st.slots {
		st.slots[i] = slot{}
	}
	st.head = 0
	st.count = 0
}
