package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// NormalIntegrator shades each hit by its surface normal mapped into [0,1]^3.
// It is deterministic and ignores materials, which makes it useful for
// checking scene geometry and camera placement.
type NormalIntegrator struct {
	config Config
}

// NewNormalIntegrator creates a normal-shading integrator
func NewNormalIntegrator(config Config) *NormalIntegrator {
	return &NormalIntegrator{config: config}
}

// RayColor returns 0.5*(normal+1) for a hit and the background otherwise
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, ni.config.TMin, math.Inf(1))
	if !isHit {
		return ni.config.Background.Color(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
