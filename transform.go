package vg

// Transform returns a copy of the path with every point mapped through m.
// Verbs and conic weights are shared with the receiver: affine maps carry
// rational quadratics to rational quadratics with the same weight, so only
// the points change. The identity transform returns the receiver itself.
func (p *Path) Transform(m Matrix) *Path {
	if p.IsEmpty() || m.IsIdentity() {
		return p
	}
	pts := make([]Point, len(p.points))
	var bounds Rect
	for i, q := range p.points {
		t := m.TransformPoint(q)
		pts[i] = t
		if i == 0 {
			bounds = Rect{Min: t, Max: t}
		} else {
			bounds = bounds.expand(t)
		}
	}
	return &Path{
		verbs:    p.verbs,
		points:   pts,
		weights:  p.weights,
		fillType: p.fillType,
		bounds:   bounds,
		volatile: p.volatile,
	}
}
