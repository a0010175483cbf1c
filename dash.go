package vg

import "math"

// Dash defines a dash pattern for stroking: alternating on/off lengths
// walked along the contour's arc length. For example, [5, 3] draws 5 units
// then skips 3.
type Dash struct {
	// Array contains alternating dash/gap lengths. An odd-length array is
	// logically duplicated to make the pattern even (e.g. [5] dashes as
	// [5, 5]).
	Array []float64

	// Offset is the starting distance into the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by absolute value. Returns nil when no length
// is positive, which strokes as a solid line.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	anyPositive := false
	for _, l := range lengths {
		if l > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given starting offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle,
// accounting for the duplication of odd-length arrays.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether this represents a dashed line rather than a
// solid one. A nil Dash is solid.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash. Cloning nil returns nil.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// NormalizedOffset returns the offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a new Dash with all lengths and the offset multiplied by
// the given factor. Dash lengths are user-space units per the Cairo/Skia
// convention, so they scale with the coordinate transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	arr := make([]float64, len(d.Array))
	for i, l := range d.Array {
		arr[i] = l * factor
	}
	return &Dash{Array: arr, Offset: d.Offset * factor}
}

// effectiveArray returns the array with odd-length arrays duplicated, for
// pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
