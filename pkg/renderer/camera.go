package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Camera generates rays from a fixed origin through a view plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from an origin and a view plane spanned by
// horizontal and vertical from lowerLeftCorner
func NewCamera(origin, lowerLeftCorner, horizontal, vertical core.Vec3) *Camera {
	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// DefaultCamera creates a 2:1 camera at the origin looking down -Z
func DefaultCamera() *Camera {
	return NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(-2, -1, -1),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 2, 0),
	)
}

// NewLookAtCamera positions a camera at lookFrom facing lookAt with a vertical
// field of view in degrees, and derives the view plane one unit in front of it
func NewLookAtCamera(lookFrom, lookAt, up core.Vec3, vfov, aspectRatio float64) *Camera {
	theta := vfov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := lookFrom.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return NewCamera(lookFrom, lowerLeftCorner, u.Multiply(2*halfWidth), v.Multiply(2*halfHeight))
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// LowerLeftCorner returns the view plane corner mapped to (0, 0)
func (c *Camera) LowerLeftCorner() core.Vec3 {
	return c.lowerLeftCorner
}

// Horizontal returns the view plane width vector
func (c *Camera) Horizontal() core.Vec3 {
	return c.horizontal
}

// Vertical returns the view plane height vector
func (c *Camera) Vertical() core.Vec3 {
	return c.vertical
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
