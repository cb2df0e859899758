package engine

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Fill is the queryable result of a goal-less search: the set of voxels
// reachable from the start points within the cost ceiling, each with its
// accumulated cost.
//
// Membership lives in a compressed bitmap keyed by the voxel's linear
// offset, so region-level queries (size, subset) stay cheap even for large
// fills.
type Fill struct {
	width, height, depth int
	spacing              Spacing
	ceiling              float64

	region *roaring64.Bitmap
	costs  map[uint64]float64
}

// NewFill creates an empty fill for a volume. It is primarily used by
// snapshot decoding; searches produce fills themselves.
func NewFill(width, height, depth int, spacing Spacing, ceiling float64) *Fill {
	return &Fill{
		width:   width,
		height:  height,
		depth:   depth,
		spacing: spacing,
		ceiling: ceiling,
		region:  roaring64.New(),
		costs:   make(map[uint64]float64),
	}
}

func (f *Fill) key(x, y, z int) uint64 {
	return (uint64(z)*uint64(f.height)+uint64(y))*uint64(f.width) + uint64(x)
}

// Mark records a voxel as filled at the given accumulated cost.
func (f *Fill) Mark(x, y, z int, cost float64) {
	k := f.key(x, y, z)
	f.region.Add(k)
	f.costs[k] = cost
}

// Contains reports whether the voxel is within the filled region.
func (f *Fill) Contains(x, y, z int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height || z < 0 || z >= f.depth {
		return false
	}
	return f.region.Contains(f.key(x, y, z))
}

// CostAt returns the accumulated cost at a filled voxel.
func (f *Fill) CostAt(x, y, z int) (float64, bool) {
	if !f.Contains(x, y, z) {
		return 0, false
	}
	return f.costs[f.key(x, y, z)], true
}

// Len returns the number of filled voxels.
func (f *Fill) Len() int {
	return int(f.region.GetCardinality())
}

// SubsetOf reports whether every filled voxel of f is also filled in other.
// Both fills must describe the same volume.
func (f *Fill) SubsetOf(other *Fill) bool {
	if f.width != other.width || f.height != other.height || f.depth != other.depth {
		return false
	}
	diff := roaring64.AndNot(f.region, other.region)
	return diff.IsEmpty()
}

// Walk calls fn for every filled voxel. Iteration order follows the linear
// voxel offset.
func (f *Fill) Walk(fn func(x, y, z int, cost float64)) {
	it := f.region.Iterator()
	for it.HasNext() {
		k := it.Next()
		x := int(k % uint64(f.width))
		y := int(k / uint64(f.width) % uint64(f.height))
		z := int(k / (uint64(f.width) * uint64(f.height)))
		fn(x, y, z, f.costs[k])
	}
}

// Bounds returns the volume dimensions.
func (f *Fill) Bounds() (width, height, depth int) {
	return f.width, f.height, f.depth
}

// Spacing returns the voxel spacing of the volume.
func (f *Fill) Spacing() Spacing { return f.spacing }

// Ceiling returns the cost ceiling the fill was bounded by.
func (f *Fill) Ceiling() float64 { return f.ceiling }
