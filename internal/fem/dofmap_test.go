package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOFMap(t *testing.T) {
	m := NewDOFMap([]int{7, 3, 9, 3})

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 9, m.Size())
	assert.Equal(t, []int{3, 7, 9}, m.IDs())

	i, ok := m.Index(3)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 9, m.ID(2))

	g, ok := m.DOF(9, DOFRotation)
	assert.True(t, ok)
	assert.Equal(t, 8, g)

	_, ok = m.DOF(5, DOFX)
	assert.False(t, ok)
	_, ok = m.DOF(3, DOFsPerNode)
	assert.False(t, ok)
	_, ok = m.Index(4)
	assert.False(t, ok)
}

func TestDOFMapEmpty(t *testing.T) {
	m := NewDOFMap(nil)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.IDs())
	assert.Panics(t, func() { m.ID(0) })
}
