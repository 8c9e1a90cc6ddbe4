package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	assert.False(t, isHit)
	assert.Nil(t, hit)
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	_, isHit := sphere.Hit(ray, 0.001, 1000.0)
	assert.False(t, isHit, "zero discriminant must be treated as a miss")
}

func TestSphere_Hit_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside keeps outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			require.True(t, isHit, "Expected hit, but got miss")

			assert.InDelta(t, tt.expectedT, hit.T, 1e-9)
			assert.True(t, hit.Normal.IsClose(tt.expectedNormal, 1e-9),
				"Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
		})
	}
}

func TestSphere_Hit_NearRootGeometry(t *testing.T) {
	center := core.NewVec3(1, -2, -5)
	radius := 1.5
	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(center, radius, lambertian)

	origin := core.NewVec3(3, 4, 2)
	ray := core.NewRay(origin, center.Subtract(origin))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	require.True(t, isHit)

	assert.InDelta(t, radius, hit.Point.Subtract(center).Length(), 1e-9)
	assert.Equal(t, hit.Point.Subtract(center).Divide(radius), hit.Normal)
	assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-9)
	assert.Equal(t, ray.At(hit.T), hit.Point)
	assert.Same(t, lambertian, hit.Material)

	// Near root: the hit point faces the ray origin
	assert.Less(t, hit.Normal.Dot(ray.Direction), 0.0)
}

func TestSphere_Hit_SelfIntersectionExcluded(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	surface := core.NewVec3(0, 0, 1)

	// Leaving the surface outward: the only root is t=0, which is excluded
	_, isHit := sphere.Hit(core.NewRay(surface, core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	assert.False(t, isHit)

	// Entering from the surface: the t=0 root is skipped, the far side is hit
	hit, isHit := sphere.Hit(core.NewRay(surface, core.NewVec3(0, 0, -1)), 0, math.Inf(1))
	require.True(t, isHit)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
}

func TestSphere_Hit_SelfIntersectionMargin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.3, -0.7, -1.9), 0.9, nil)

	// Points computed along a ray carry rounding error; the margin absorbs it
	incoming := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.31, -0.52, -1))
	hit, isHit := sphere.Hit(incoming, 0.001, math.Inf(1))
	require.True(t, isHit)

	outward := core.NewRay(hit.Point, hit.Normal)
	_, isHit = sphere.Hit(outward, 0.001, math.Inf(1))
	assert.False(t, isHit)
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots beyond tMax", 0.001, 0.5, false, 0},
		{"both roots before tMin", 3.5, 1000.0, false, 0},
		{"near root excluded by tMin", 1.5, 1000.0, true, 3.0},
		{"tMax equal to near root is exclusive", 0.001, 1.0, false, 0},
		{"tMin equal to near root is exclusive", 1.0, 1000.0, true, 3.0},
		{"open window", 0.001, 1000.0, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			require.Equal(t, tt.expectHit, isHit)
			if isHit {
				assert.InDelta(t, tt.expectedT, hit.T, 1e-9)
			}
		})
	}
}
