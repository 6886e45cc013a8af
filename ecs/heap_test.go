package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func less(a, b Entity) bool { return a < b }

func Test_Heap_PopReturnsMinimumFirst(t *testing.T) {
	// Arrange
	h := newHeap(less)
	for _, v := range []Entity{5, 1, 4, 2, 3} {
		h.Push(v)
	}

	// Act & Assert
	for _, want := range []Entity{1, 2, 3, 4, 5} {
		assert.Equal(t, want, h.Pop())
	}
	assert.Equal(t, 0, h.Len())
}

func Test_Heap_Contains(t *testing.T) {
	// Arrange
	h := newHeap(less)
	h.Push(Entity(7))

	// Act & Assert
	assert.True(t, h.Contains(Entity(7)))
	assert.False(t, h.Contains(Entity(8)))
}

func Test_Heap_Clear(t *testing.T) {
	// Arrange
	h := newHeap(less)
	h.Push(Entity(1))
	h.Push(Entity(2))

	// Act
	h.Clear()

	// Assert
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains(Entity(1)))
}
