package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Collection is an ordered aggregate of shapes scanned linearly for the nearest hit
type Collection struct {
	Shapes []Shape
}

// NewCollection creates a collection holding shapes in the given order
func NewCollection(shapes ...Shape) *Collection {
	return &Collection{Shapes: shapes}
}

// Add appends shapes to the end of the scan order
func (c *Collection) Add(shapes ...Shape) {
	c.Shapes = append(c.Shapes, shapes...)
}

// Len returns the number of member shapes
func (c *Collection) Len() int {
	return len(c.Shapes)
}

// Hit returns the nearest hit across all members within (tMin, tMax).
// The upper bound shrinks to each accepted hit, so on exact ties the earlier
// member wins.
func (c *Collection) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range c.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
