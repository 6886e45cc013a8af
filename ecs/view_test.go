package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cType struct{}

func Test_View_ThreeTypeIntersection(t *testing.T) {
	// Arrange
	r := NewRegistry()
	ids := make([]Entity, 6)
	for i := range ids {
		ids[i] = r.Create()
		Emplace(r, ids[i], componentA{})
	}
	Emplace(r, ids[0], componentB{})
	Emplace(r, ids[1], componentB{})
	Emplace(r, ids[0], cType{})

	// Act
	var got []Entity
	NewView3[componentA, componentB, cType](r).IDs(func(e Entity) { got = append(got, e) })

	// Assert
	assert.ElementsMatch(t, []Entity{ids[0]}, got)
}

func Test_View_FourTypeIntersection(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, componentA{})
	Emplace(r, e, componentB{})
	Emplace(r, e, cType{})
	Emplace(r, e, position{})

	other := r.Create()
	Emplace(r, other, componentA{})

	// Act
	var got []Entity
	NewView4[componentA, componentB, cType, position](r).IDs(func(e Entity) { got = append(got, e) })

	// Assert
	assert.Equal(t, []Entity{e}, got)
}

func Test_View_DrivesOffSmallestStorage(t *testing.T) {
	// Arrange: B holds two entities, A holds 1002, and the larger A is
	// the first view argument. The two shared entities sit in opposite
	// dense orders in A and B, so the yield order shows which storage
	// drove the iteration.
	r := NewRegistry()
	first := r.Create()
	second := r.Create()
	Emplace(r, second, componentA{})
	Emplace(r, first, componentA{})
	for i := 0; i < 1000; i++ {
		Emplace(r, r.Create(), componentA{})
	}
	Emplace(r, first, componentB{})
	Emplace(r, second, componentB{})

	// Act
	var got []Entity
	view := NewView2[componentA, componentB](r)
	view.Each(func(e Entity, a *componentA, b *componentB) {
		got = append(got, e)
	})

	// Assert: B's dense order, not A's
	assert.Equal(t, []Entity{first, second}, got)
}

func Test_View_EachYieldsFreshPointers(t *testing.T) {
	// Arrange
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, position{x: 1})
	Emplace(r, e, velocity{dx: 2})

	// Act
	var gotX, gotDX float32
	NewView2[position, velocity](r).Each(func(e Entity, p *position, v *velocity) {
		gotX, gotDX = p.x, v.dx
		p.x = 99
	})

	// Assert
	assert.Equal(t, float32(1), gotX)
	assert.Equal(t, float32(2), gotDX)
	assert.Equal(t, float32(99), Get[position](r, e).x)
}

func Test_View_AnyViewMatchesTypedView(t *testing.T) {
	// Arrange
	r := NewRegistry()
	ids := make([]Entity, 10)
	for i := range ids {
		ids[i] = r.Create()
	}
	for _, i := range []int{0, 1, 2, 3, 4, 5} {
		Emplace(r, ids[i], componentA{})
	}
	for _, i := range []int{3, 4, 5, 6, 7, 8} {
		Emplace(r, ids[i], componentB{})
	}

	typeA := ExcludeType[componentA](r)
	typeB := ExcludeType[componentB](r)

	// Act
	var got []Entity
	NewAnyView(r, []ComponentTypeID{typeA, typeB}, nil).IDs(func(e Entity) { got = append(got, e) })

	// Assert
	assert.ElementsMatch(t, []Entity{3, 4, 5}, got)
}
