package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		s := newFrame(t)
		e1 := addElement(t, s, s.AddNode(0, 0), s.AddNode(2, 2))
		e2 := addElement(t, s, s.AddNode(0, 2), s.AddNode(2, 0))
		assert.Equal(t, []OverlapPair{{A: e1, B: e2}}, Overlaps(s))
	})

	t.Run("corner", func(t *testing.T) {
		s := newFrame(t)
		a, b, c := s.AddNode(0, 0), s.AddNode(0, 3), s.AddNode(4, 3)
		addElement(t, s, a, b)
		addElement(t, s, b, c)
		assert.Empty(t, Overlaps(s))
	})

	t.Run("straight continuation", func(t *testing.T) {
		s := newFrame(t)
		a, b, c := s.AddNode(-1, 0), s.AddNode(0, 0), s.AddNode(2, 0)
		addElement(t, s, a, b)
		addElement(t, s, b, c)
		assert.Empty(t, Overlaps(s))
	})

	t.Run("folded back on a shared node", func(t *testing.T) {
		s := newFrame(t)
		a, b, c := s.AddNode(0, 0), s.AddNode(2, 0), s.AddNode(1, 0)
		e1 := addElement(t, s, a, b)
		e2 := addElement(t, s, a, c)
		assert.Equal(t, []OverlapPair{{A: e1, B: e2}}, NewSolver().Overlaps(s))
	})

	t.Run("duplicate element", func(t *testing.T) {
		s := newFrame(t)
		a, b := s.AddNode(0, 0), s.AddNode(2, 0)
		e1 := addElement(t, s, a, b)
		e2 := addElement(t, s, b, a)
		assert.Equal(t, []OverlapPair{{A: e1, B: e2}}, Overlaps(s))
	})

	t.Run("touching without a shared node", func(t *testing.T) {
		s := newFrame(t)
		e1 := addElement(t, s, s.AddNode(0, 0), s.AddNode(4, 0))
		e2 := addElement(t, s, s.AddNode(2, 0), s.AddNode(2, 3))
		assert.Equal(t, []OverlapPair{{A: e1, B: e2}}, Overlaps(s))
	})

	t.Run("parallel", func(t *testing.T) {
		s := newFrame(t)
		addElement(t, s, s.AddNode(0, 0), s.AddNode(4, 0))
		addElement(t, s, s.AddNode(0, 1), s.AddNode(4, 1))
		addElement(t, s, s.AddNode(5, 0), s.AddNode(6, 0))
		assert.Empty(t, Overlaps(s))
	})
}
