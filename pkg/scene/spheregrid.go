package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cubed LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// SphereGridDescription creates a gridSize x gridSize grid of small spheres on a
// large ground sphere. Hue varies along X and chroma along Z; every third
// sphere is diffuse, the rest are metal.
func SphereGridDescription(gridSize int) Description {
	camera := renderer.NewLookAtCamera(
		core.NewVec3(4.5, 6, 18),    // Farther back and above the grid
		core.NewVec3(4.5, 0.8, 4.5), // Center of the grid, slightly lower
		core.NewVec3(0, 1, 0),
		40.0,
		16.0/9.0,
	)

	d := Description{
		Name:      "spheregrid",
		Width:     400,
		Height:    225,
		Samples:   50,
		Camera:    CameraSpecOf(camera),
		Materials: map[string]MaterialSpec{"ground": {Kind: KindLambertian, Albedo: Triple{0.5, 0.5, 0.5}}},
		Spheres:   []SphereSpec{{Center: Triple{4.5, -1000, 4.5}, Radius: 1000, Material: "ground"}},
	}

	// Fit the grid into a 9x9 area regardless of its size
	targetArea := 9.0
	spacing := targetArea / float64(max(1, gridSize-1))
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(max(1, gridSize-1)) * 360.0
			chroma := minChroma + float64(j)/float64(max(1, gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			kind := KindMetal
			if (i+j)%3 == 0 {
				kind = KindLambertian
			}

			name := fmt.Sprintf("grid-%d-%d", i, j)
			d.Materials[name] = MaterialSpec{Kind: kind, Albedo: TripleOf(oklchToRGB(lightness, chroma, hue))}
			d.Spheres = append(d.Spheres, SphereSpec{
				Center:   Triple{x, sphereRadius, z},
				Radius:   sphereRadius,
				Material: name,
			})
		}
	}

	return d
}

// NewSphereGridScene creates a 10x10 sphere grid scene
func NewSphereGridScene() *Scene {
	return mustBuild(SphereGridDescription(10))
}
