package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

func TestCollection_NearestHitRegardlessOfOrder(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -6), 1, material.NewLambertian(core.NewVec3(1, 0, 0)))
	near := NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(core.NewVec3(0, 0, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name   string
		shapes []Shape
	}{
		{"far first", []Shape{far, near}},
		{"near first", []Shape{near, far}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewCollection(tt.shapes...)
			hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
			require.True(t, isHit)

			assert.InDelta(t, 2.0, hit.T, 1e-9)
			assert.Same(t, near.Material, hit.Material)
		})
	}
}

func TestCollection_TieGoesToFirstMember(t *testing.T) {
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewMetal(core.NewVec3(0, 1, 0))
	world := NewCollection(
		NewSphere(core.NewVec3(0, 0, -2), 0.5, first),
		NewSphere(core.NewVec3(0, 0, -2), 0.5, second),
	)

	hit, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	require.True(t, isHit)
	assert.Same(t, first, hit.Material)
}

func TestCollection_RespectsWindow(t *testing.T) {
	world := NewCollection(
		NewSphere(core.NewVec3(0, 0, -3), 1, nil),
		NewSphere(core.NewVec3(0, 0, -6), 1, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	_, isHit := world.Hit(ray, 0.001, 1.5)
	assert.False(t, isHit)

	hit, isHit := world.Hit(ray, 4.5, math.Inf(1))
	require.True(t, isHit)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
}

func TestCollection_Empty(t *testing.T) {
	world := NewCollection()
	assert.Equal(t, 0, world.Len())

	hit, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	assert.False(t, isHit)
	assert.Nil(t, hit)
}

func TestCollection_Add(t *testing.T) {
	world := NewCollection()
	world.Add(NewSphere(core.NewVec3(0, 0, -3), 1, nil), NewSphere(core.NewVec3(0, 0, -6), 1, nil))
	assert.Equal(t, 2, world.Len())

	// Collections nest since they satisfy Shape
	outer := NewCollection(world)
	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	require.True(t, isHit)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
}
