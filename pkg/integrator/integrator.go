package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the bounce count at which a path is cut off to black
	DefaultMaxDepth = 50

	// DefaultTMin keeps scattered rays from re-hitting the surface they leave
	DefaultTMin = 0.001
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the color carried back along ray, starting at the given bounce depth
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3
}

// Background is a vertical gradient returned for rays that escape the scene
type Background struct {
	Bottom core.Vec3 // color for a direction pointing straight down
	Top    core.Vec3 // color for a direction pointing straight up
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Config contains the estimator constants
type Config struct {
	MaxDepth   int     // Paths reaching this depth on a hit return black
	TMin       float64 // Lower bound of the hit window
	Background Background
}

// DefaultConfig returns the standard estimator constants
func DefaultConfig() Config {
	return Config{
		MaxDepth:   DefaultMaxDepth,
		TMin:       DefaultTMin,
		Background: DefaultBackground(),
	}
}
