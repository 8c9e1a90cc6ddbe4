package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Material kinds accepted in scene descriptions
const (
	KindLambertian = "lambertian"
	KindMetal      = "metal"
)

var (
	ErrUnknownMaterial     = errors.New("scene: unknown material")
	ErrUnknownMaterialKind = errors.New("scene: unknown material kind")
	ErrInvalidVector       = errors.New("scene: vector must have exactly 3 components")
)

// Triple is a 3-component vector as written in scene files: [x, y, z]
type Triple []float64

// TripleOf converts a vector to its scene file form
func TripleOf(v core.Vec3) Triple {
	return Triple{v.X, v.Y, v.Z}
}

// Vec3 converts the triple to a vector
func (t Triple) Vec3() (core.Vec3, error) {
	if len(t) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: got %v", ErrInvalidVector, []float64(t))
	}
	return core.NewVec3(t[0], t[1], t[2]), nil
}

// MaterialSpec describes one shared material instance
type MaterialSpec struct {
	Kind   string `yaml:"kind"`
	Albedo Triple `yaml:"albedo"`
}

// SphereSpec describes a sphere referencing a material by name
type SphereSpec struct {
	Center   Triple  `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// CameraSpec describes the camera origin and view plane
type CameraSpec struct {
	Origin          Triple `yaml:"origin"`
	LowerLeftCorner Triple `yaml:"lower_left_corner"`
	Horizontal      Triple `yaml:"horizontal"`
	Vertical        Triple `yaml:"vertical"`
}

// CameraSpecOf captures a camera in scene file form
func CameraSpecOf(c *renderer.Camera) *CameraSpec {
	return &CameraSpec{
		Origin:          TripleOf(c.Origin()),
		LowerLeftCorner: TripleOf(c.LowerLeftCorner()),
		Horizontal:      TripleOf(c.Horizontal()),
		Vertical:        TripleOf(c.Vertical()),
	}
}

// BackgroundSpec describes the sky gradient
type BackgroundSpec struct {
	Top    Triple `yaml:"top"`
	Bottom Triple `yaml:"bottom"`
}

// Description is the serializable form of a scene: an ordered list of spheres
// over a small set of named materials, plus optional camera, background and
// recommended image settings.
type Description struct {
	Name       string                  `yaml:"name,omitempty"`
	Width      int                     `yaml:"width,omitempty"`
	Height     int                     `yaml:"height,omitempty"`
	Samples    int                     `yaml:"samples,omitempty"`
	Camera     *CameraSpec             `yaml:"camera,omitempty"`
	Background *BackgroundSpec         `yaml:"background,omitempty"`
	Materials  map[string]MaterialSpec `yaml:"materials"`
	Spheres    []SphereSpec            `yaml:"spheres"`
}

func buildMaterial(spec MaterialSpec) (material.Material, error) {
	albedo, err := spec.Albedo.Vec3()
	if err != nil {
		return nil, fmt.Errorf("albedo: %w", err)
	}

	switch spec.Kind {
	case KindLambertian:
		return material.NewLambertian(albedo), nil
	case KindMetal:
		return material.NewMetal(albedo), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMaterialKind, spec.Kind)
}

func buildCamera(spec *CameraSpec) (*renderer.Camera, error) {
	if spec == nil {
		return renderer.DefaultCamera(), nil
	}

	var vecs [4]core.Vec3
	for i, t := range []Triple{spec.Origin, spec.LowerLeftCorner, spec.Horizontal, spec.Vertical} {
		v, err := t.Vec3()
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		vecs[i] = v
	}
	return renderer.NewCamera(vecs[0], vecs[1], vecs[2], vecs[3]), nil
}

// Build creates the scene. Each named material is instantiated once and
// shared by every sphere that references it.
func (d Description) Build() (*Scene, error) {
	s := NewScene(d.Name)

	camera, err := buildCamera(d.Camera)
	if err != nil {
		return nil, err
	}
	s.Camera = camera

	if d.Background != nil {
		top, err := d.Background.Top.Vec3()
		if err != nil {
			return nil, fmt.Errorf("background top: %w", err)
		}
		bottom, err := d.Background.Bottom.Vec3()
		if err != nil {
			return nil, fmt.Errorf("background bottom: %w", err)
		}
		s.Background.Top = top
		s.Background.Bottom = bottom
	}

	if d.Width > 0 {
		s.SamplingConfig.Width = d.Width
	}
	if d.Height > 0 {
		s.SamplingConfig.Height = d.Height
	}
	if d.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = d.Samples
	}

	for name, spec := range d.Materials {
		m, err := buildMaterial(spec)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		s.Materials[name] = m
	}

	for i, spec := range d.Spheres {
		center, err := spec.Center.Vec3()
		if err != nil {
			return nil, fmt.Errorf("sphere %d center: %w", i, err)
		}
		if err := s.AddSphere(center, spec.Radius, spec.Material); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}
