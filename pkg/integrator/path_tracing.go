package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Termination describes why a path stopped
type Termination int

const (
	// Escaped paths left the scene and picked up the background
	Escaped Termination = iota
	// Absorbed paths hit a material that declined to scatter
	Absorbed
	// DepthLimit paths hit something after reaching the maximum depth
	DepthLimit
)

func (t Termination) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case Absorbed:
		return "absorbed"
	case DepthLimit:
		return "depth-limit"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

// PathStats records what happened to a single traced path
type PathStats struct {
	Bounces     int // Number of scatter events along the path
	Termination Termination
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	color, _ := pt.TracePath(ray, world, sampler, depth)
	return color
}

// TracePath follows a ray through the scene and returns its color and path statistics.
//
// Each bounce multiplies the running throughput by the material attenuation,
// which is equivalent to attenuation * RayColor(scattered, depth+1) but runs
// as a loop so the stack stays flat however deep MaxDepth is set.
func (pt *PathTracingIntegrator) TracePath(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) (core.Vec3, PathStats) {
	throughput := core.NewVec3(1, 1, 1)
	var stats PathStats

	for {
		hit, isHit := world.Hit(ray, pt.config.TMin, math.Inf(1))
		if !isHit {
			stats.Termination = Escaped
			return throughput.MultiplyVec(pt.config.Background.Color(ray)), stats
		}

		if depth >= pt.config.MaxDepth {
			stats.Termination = DepthLimit
			return core.Vec3{}, stats
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			stats.Termination = Absorbed
			return core.Vec3{}, stats
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
		depth++
		stats.Bounces++
	}
}
