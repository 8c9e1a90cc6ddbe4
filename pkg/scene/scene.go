package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	World          *geometry.Collection         // Spheres in scan order
	Materials      map[string]material.Material // Canonical material instances
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig // Recommended image settings
}

// NewScene creates an empty scene with the default camera, sky and sampling settings
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Camera:         renderer.DefaultCamera(),
		World:          geometry.NewCollection(),
		Materials:      make(map[string]material.Material),
		Background:     integrator.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// AddMaterial registers a shared material under name
func (s *Scene) AddMaterial(name string, m material.Material) material.Material {
	s.Materials[name] = m
	return m
}

// AddSphere appends a sphere that shares the material registered under materialName
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialName string) error {
	m, ok := s.Materials[materialName]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownMaterial, materialName)
	}
	s.World.Add(geometry.NewSphere(center, radius, m))
	return nil
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// IntegratorConfig returns estimator settings using this scene's background
func (s *Scene) IntegratorConfig() integrator.Config {
	config := integrator.DefaultConfig()
	config.Background = s.Background
	return config
}
