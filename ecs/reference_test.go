package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Reference_Equal(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, position{})

	// Act
	a := CreateReference[position](r, e)
	b := CreateReference[position](r, e)

	// Assert
	assert.True(t, a.Equal(b))
}

func Test_Reference_NotEqualAcrossEntities(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e1 := r.Create()
	e2 := r.Create()
	Emplace(r, e1, position{})
	Emplace(r, e2, position{})

	// Act
	a := CreateReference[position](r, e1)
	b := CreateReference[position](r, e2)

	// Assert
	assert.False(t, a.Equal(b))
	assert.Equal(t, e1, a.Entity())
}
