package model

import "sort"

// span is an inclusive run of free IDs.
type span struct{ lo, hi int }

// idPool hands out positive integer IDs, reusing released ones smallest
// first. Free IDs are kept as sorted, disjoint, non-adjacent spans below
// next, so a sparse ID costs one span rather than one entry per gap.
type idPool struct {
	next int
	free []span
}

func newIDPool() *idPool { return &idPool{next: 1} }

func (p *idPool) acquire() int {
	if len(p.free) == 0 {
		id := p.next
		p.next++
		return id
	}
	s := &p.free[0]
	id := s.lo
	if s.lo == s.hi {
		p.free = p.free[1:]
	} else {
		s.lo++
	}
	return id
}

// find returns the index of the first span ending at or after id.
func (p *idPool) find(id int) int {
	return sort.Search(len(p.free), func(i int) bool { return p.free[i].hi >= id })
}

// reserve marks id as taken. IDs skipped over become free.
func (p *idPool) reserve(id int) {
	if id >= p.next {
		if id > p.next {
			p.free = append(p.free, span{p.next, id - 1})
		}
		p.next = id + 1
		return
	}
	i := p.find(id)
	if i == len(p.free) || p.free[i].lo > id {
		return
	}
	s := p.free[i]
	switch {
	case s.lo == s.hi:
		p.free = append(p.free[:i], p.free[i+1:]...)
	case id == s.lo:
		p.free[i].lo++
	case id == s.hi:
		p.free[i].hi--
	default:
		p.free = append(p.free, span{})
		copy(p.free[i+2:], p.free[i+1:])
		p.free[i] = span{s.lo, id - 1}
		p.free[i+1] = span{id + 1, s.hi}
	}
}

func (p *idPool) release(id int) {
	i := p.find(id)
	if i < len(p.free) && p.free[i].lo <= id {
		return
	}
	joinLeft := i > 0 && p.free[i-1].hi == id-1
	joinRight := i < len(p.free) && p.free[i].lo == id+1
	switch {
	case joinLeft && joinRight:
		p.free[i-1].hi = p.free[i].hi
		p.free = append(p.free[:i], p.free[i+1:]...)
	case joinLeft:
		p.free[i-1].hi = id
	case joinRight:
		p.free[i].lo = id
	default:
		p.free = append(p.free, span{})
		copy(p.free[i+1:], p.free[i:])
		p.free[i] = span{id, id}
	}
}
