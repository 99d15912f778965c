package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Camera is an orthographic view rotated about the three axes.
type Camera struct {
	RotX, RotY, RotZ float64
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }

// RotatePoint applies the X, Y and Z rotations in turn.
func (c Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project rotates the points and drops the depth axis.
func (c Camera) Project(pts []Vec3) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		r := c.RotatePoint(p)
		xs[i], ys[i] = r.X, r.Y
	}
	return xs, ys
}
