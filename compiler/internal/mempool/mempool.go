// Package mempool is a pool of reference-counted byte slots with free-list
// reuse. It is not safe for concurrent use.
package mempool

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Slot is one pooled buffer. A slot holding no storage has Len 0.
type Slot struct {
	data []byte
	refs int
}

// Len reports the size of the slot's storage.
func (s *Slot) Len() int { return len(s.data) }

// Refs reports the current reference count.
func (s *Slot) Refs() int { return s.refs }

// Bytes exposes the storage; it is invalidated when the slot is freed.
func (s *Slot) Bytes() []byte { return s.data }

// Retain adds a reference.
func (s *Slot) Retain() { s.refs++ }

// Release drops a reference and frees the storage once none remain. The
// count never goes below zero.
func (s *Slot) Release() {
	if s.refs > 0 {
		s.refs--
	}
	if s.refs == 0 {
		s.free()
	}
}

// Fill sets every byte of the storage to b.
func (s *Slot) Fill(b byte) {
	for i := range s.data {
		s.data[i] = b
	}
}

// Hex renders the storage as upper-case hexadecimal.
func (s *Slot) Hex() string { return strings.ToUpper(hex.EncodeToString(s.data)) }

// Same reports whether s and other are the same slot or hold equal bytes.
func (s *Slot) Same(other *Slot) bool {
	if s == other {
		return true
	}
	return len(s.data) == len(other.data) && bytes.Equal(s.data, other.data)
}

func (s *Slot) resize(size int) {
	if cap(s.data) >= size {
		s.data = s.data[:size]
		return
	}
	grown := make([]byte, size)
	copy(grown, s.data)
	s.data = grown
}

func (s *Slot) free() { s.data = nil }

// Pool owns its slots; indexes returned by Alloc stay valid for the pool's
// lifetime.
type Pool struct {
	slots []*Slot
	free  map[int]struct{}
}

// New returns an empty pool.
func New() *Pool { return &Pool{free: make(map[int]struct{})} }

// Reserve appends n empty slots to the free set.
func (p *Pool) Reserve(n int) {
	for i := 0; i < n; i++ {
		p.free[len(p.slots)] = struct{}{}
		p.slots = append(p.slots, &Slot{})
	}
}

// Alloc hands out a slot of size bytes and returns its index. Free slots
// are reused lowest index first; otherwise the pool grows.
func (p *Pool) Alloc(size int) int {
	idx, ok := p.lowestFree()
	if !ok {
		p.slots = append(p.slots, &Slot{data: make([]byte, size)})
		return len(p.slots) - 1
	}
	delete(p.free, idx)
	p.slots[idx].resize(size)
	return idx
}

// AllocSlot is Alloc returning the slot itself.
func (p *Pool) AllocSlot(size int) *Slot { return p.slots[p.Alloc(size)] }

// Slot returns the slot at idx, or nil when idx is out of range.
func (p *Pool) Slot(idx int) *Slot {
	if idx < 0 || idx >= len(p.slots) {
		return nil
	}
	return p.slots[idx]
}

// Sweep frees every slot whose reference count is zero and returns it to
// the free set. It reports how many slots were newly reclaimed.
func (p *Pool) Sweep() int {
	n := 0
	for i, s := range p.slots {
		if s.refs != 0 {
			continue
		}
		s.free()
		if _, ok := p.free[i]; !ok {
			p.free[i] = struct{}{}
			n++
		}
	}
	return n
}

// Len reports the number of slots, free or not.
func (p *Pool) Len() int { return len(p.slots) }

// Free reports the number of slots available for reuse.
func (p *Pool) Free() int { return len(p.free) }

func (p *Pool) lowestFree() (int, bool) {
	best := -1
	for i := range p.free {
		if best < 0 || i < best {
			best = i
		}
	}
	return best, best >= 0
}
