package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Camera generates primary rays. (x, y) are continuous coordinates on the pixel plane:
// (0, 0) is the top-left corner of the image and pixel (i, j) covers [i, i+1) x [j, j+1).
type Camera interface {
	GetRay(x, y float64) core.Ray
}

// CameraConfig contains the placement and image size shared by both camera models
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	VFov   float64   // Vertical field of view in degrees (perspective)
	Extent float64   // Visible height in world units (orthographic)
}

// viewport computes the camera basis and half extents of the image plane
func (c CameraConfig) viewport(halfHeight float64) (core.ONB, float64, float64) {
	onb := core.NewONBFromWV(c.Eye.Subtract(c.LookAt), c.Up)
	aspect := 1.0
	if c.Height > 0 {
		aspect = float64(c.Width) / float64(c.Height)
	}
	return onb, aspect * halfHeight, halfHeight
}

// planeCoords maps pixel-plane coordinates to [-halfWidth, halfWidth] x [halfHeight, -halfHeight]
func (c CameraConfig) planeCoords(x, y, halfWidth, halfHeight float64) (float64, float64) {
	w, h := float64(max(1, c.Width)), float64(max(1, c.Height))
	return (2*x/w - 1) * halfWidth, (1 - 2*y/h) * halfHeight
}

// ViewMatrix returns the world-to-camera transform for this placement
func (c CameraConfig) ViewMatrix() core.Transform {
	return core.LookAt(c.Eye, c.LookAt.Subtract(c.Eye), c.Up)
}

// PerspectiveCamera is a pinhole camera
type PerspectiveCamera struct {
	config     CameraConfig
	onb        core.ONB
	halfWidth  float64
	halfHeight float64
}

// NewPerspectiveCamera creates a pinhole camera from config
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	theta := config.VFov * math.Pi / 180
	onb, halfWidth, halfHeight := config.viewport(math.Tan(theta / 2))
	return &PerspectiveCamera{
		config:     config,
		onb:        onb,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay returns a ray from the eye through (x, y) on the image plane at unit distance
func (c *PerspectiveCamera) GetRay(x, y float64) core.Ray {
	px, py := c.config.planeCoords(x, y, c.halfWidth, c.halfHeight)
	direction := c.onb.Local(px, py, -1).Normalize()
	return core.NewRay(c.config.Eye, direction)
}

// Config returns the camera configuration
func (c *PerspectiveCamera) Config() CameraConfig {
	return c.config
}

func (c *PerspectiveCamera) String() string {
	return fmt.Sprintf("perspective camera: eye (%v) lookAt (%v) vfov %g", c.config.Eye, c.config.LookAt, c.config.VFov)
}

// OrthographicCamera fires parallel rays along the view direction
type OrthographicCamera struct {
	config     CameraConfig
	onb        core.ONB
	halfWidth  float64
	halfHeight float64
}

// NewOrthographicCamera creates a parallel projection camera showing Extent world units vertically
func NewOrthographicCamera(config CameraConfig) *OrthographicCamera {
	onb, halfWidth, halfHeight := config.viewport(config.Extent / 2)
	return &OrthographicCamera{
		config:     config,
		onb:        onb,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay returns a ray starting on the image plane through the eye
func (c *OrthographicCamera) GetRay(x, y float64) core.Ray {
	px, py := c.config.planeCoords(x, y, c.halfWidth, c.halfHeight)
	origin := c.config.Eye.Add(c.onb.Local(px, py, 0))
	return core.NewRay(origin, c.onb.W.Negate())
}

// Config returns the camera configuration
func (c *OrthographicCamera) Config() CameraConfig {
	return c.config
}

func (c *OrthographicCamera) String() string {
	return fmt.Sprintf("orthographic camera: eye (%v) lookAt (%v) extent %g", c.config.Eye, c.config.LookAt, c.config.Extent)
}
