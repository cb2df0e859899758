package cost

// ScalarField is a read-only scalar function over voxel coordinates,
// typically derived from image intensity or a tubularity filter.
type ScalarField interface {
	// Value returns the field value at (x, y, z). Coordinates are
	// guaranteed in-bounds by the caller.
	Value(x, y, z int) float64
}

// GridField is a dense in-memory ScalarField. It is mainly useful for
// synthetic volumes and tests; real volumes usually wrap their own storage.
type GridField struct {
	width, height, depth int
	values               []float64
}

// NewGridField creates a GridField of the given dimensions with all values
// set to fill.
func NewGridField(width, height, depth int, fill float64) *GridField {
	values := make([]float64, width*height*depth)
	if fill != 0 {
		for i := range values {
			values[i] = fill
		}
	}
	return &GridField{width: width, height: height, depth: depth, values: values}
}

func (f *GridField) offset(x, y, z int) int {
	return (z*f.height+y)*f.width + x
}

// Value returns the field value at (x, y, z).
func (f *GridField) Value(x, y, z int) float64 {
	return f.values[f.offset(x, y, z)]
}

// Set assigns the field value at (x, y, z).
func (f *GridField) Set(x, y, z int, v float64) {
	f.values[f.offset(x, y, z)] = v
}

// Reciprocal derives traversal cost as the reciprocal of a scalar field:
// bright voxels (high field values) are cheap to traverse, dark voxels are
// expensive. Field values are expected in [1, max]; values below that range
// cost Reciprocal's maximum.
type Reciprocal struct {
	field ScalarField
	max   float64
}

// NewReciprocal creates a Reciprocal strategy over field. max is the largest
// meaningful field value (255 for 8-bit image data); the resulting costs lie
// in [1, max].
func NewReciprocal(field ScalarField, max float64) (*Reciprocal, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if max <= 0 {
		return nil, ErrNonPositiveCost
	}
	return &Reciprocal{field: field, max: max}, nil
}

// LocalCost returns max / value, clamped to [1, max].
func (r *Reciprocal) LocalCost(x, y, z int) float64 {
	v := r.field.Value(x, y, z)
	if v <= 1 {
		return r.max
	}
	if v >= r.max {
		return 1
	}
	return r.max / v
}

// EstimateCostToGoal returns 0; Reciprocal has no defined goal.
func (r *Reciprocal) EstimateCostToGoal(_, _, _ int, _ bool) float64 { return 0 }

// MinCostPerUnitDistance returns 1, the cost of a voxel at full intensity.
func (r *Reciprocal) MinCostPerUnitDistance() float64 { return 1 }
