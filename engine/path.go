package engine

import "github.com/hupe1980/tracego/internal/arena"

// Waypoint is a 3D physical-space coordinate on a discovered path.
type Waypoint struct {
	X, Y, Z float64
}

// Path is an ordered sequence of voxels from start to goal.
type Path struct {
	points  []Point
	spacing Spacing
	cost    float64
}

// Len returns the number of waypoints.
func (p *Path) Len() int { return len(p.points) }

// Points returns the voxel coordinates in start-to-goal order.
// The returned slice is owned by the path and must not be mutated.
func (p *Path) Points() []Point { return p.points }

// Waypoints returns the path in physical coordinates, scaled by the voxel
// spacing.
func (p *Path) Waypoints() []Waypoint {
	ws := make([]Waypoint, len(p.points))
	for i, pt := range p.points {
		ws[i] = Waypoint{
			X: float64(pt.X) * p.spacing.X,
			Y: float64(pt.Y) * p.spacing.Y,
			Z: float64(pt.Z) * p.spacing.Z,
		}
	}
	return ws
}

// Cost returns the total accumulated traversal cost of the path.
//
// For a bidirectional search this is the sum of the two per-direction costs
// at the junction, which equals the forward traversal cost on
// direction-symmetric cost fields.
func (p *Path) Cost() float64 { return p.cost }

// Spacing returns the voxel spacing the waypoints are scaled by.
func (p *Path) Spacing() Spacing { return p.spacing }

// walk collects the predecessor chain of i in node-to-origin order.
func walk(a *arena.Arena, i arena.Index) []Point {
	var pts []Point
	for ; i != arena.None; i = a.Get(i).Pred {
		n := a.Get(i)
		pts = append(pts, Point{X: int(n.X), Y: int(n.Y), Z: int(n.Z)})
	}
	return pts
}

// pathOf returns the chain of i in origin-to-node order.
func pathOf(a *arena.Arena, i arena.Index) []Point {
	pts := walk(a, i)
	for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
		pts[l], pts[r] = pts[r], pts[l]
	}
	return pts
}
