package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestNormalIntegrator(t *testing.T) {
	integrator := NewNormalIntegrator(DefaultConfig())
	world := createTestWorld()

	// Front of the small sphere faces +Z
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, nil, 0)
	assert.True(t, color.IsClose(core.NewVec3(0.5, 0.5, 1.0), 1e-9), "got %v", color)

	// Misses fall through to the background
	color = integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), world, nil, 0)
	assert.Equal(t, core.NewVec3(0.5, 0.7, 1.0), color)
}

func TestBackgroundColor(t *testing.T) {
	bg := DefaultBackground()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.Color(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			assert.True(t, got.IsClose(tt.expected, 1e-12), "expected %v, got %v", tt.expected, got)
		})
	}
}
