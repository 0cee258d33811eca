package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box = box.Extend(point)
	}
	return box
}

// Extend returns the smallest AABB containing both the box and p
func (aabb AABB) Extend(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestExtent returns the largest of the three side lengths
func (aabb AABB) LongestExtent() float64 {
	size := aabb.Size()
	return max(size.X, size.Y, size.Z)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Transformed returns the box bounding all eight corners of aabb after t
func (aabb AABB) Transformed(t Transform) AABB {
	corners := make([]Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		c := aabb.Min
		if i&1 != 0 {
			c.X = aabb.Max.X
		}
		if i&2 != 0 {
			c.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			c.Z = aabb.Max.Z
		}
		corners = append(corners, t.Point(c))
	}
	return NewAABBFromPoints(corners...)
}
