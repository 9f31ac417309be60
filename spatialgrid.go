package solids

import (
	"math"
	"sort"

	"github.com/akmonengine/solids/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - body indices stored in one hashed cell
type Cell struct {
	bodyIndices []int
}

// Pair - two bodies whose bounding boxes overlap
type Pair struct {
	BodyA *Body
	BodyB *Body
}

// SpatialGrid - uniform hashed grid used as broad phase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	// bodies spanning more cells than the grid holds, tested against everyone
	large []int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid creates a grid of numCells hashed cells (rounded up to a power of two).
// A cellSize that is not a positive finite number falls back to DEFAULT_CELL_SIZE.
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		cellSize = DEFAULT_CELL_SIZE
	}
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].bodyIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of 2
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers a body index in every cell its bounds occupy
func (sg *SpatialGrid) Insert(bodyIndex int, body *Body) {
	bounds := body.Solid.Bounds()
	if sg.isLarge(bounds) {
		sg.large = append(sg.large, bodyIndex)
		return
	}

	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})

				sg.cells[cellIdx].bodyIndices = append(
					sg.cells[cellIdx].bodyIndices,
					bodyIndex,
				)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].bodyIndices = sg.cells[i].bodyIndices[:0]
	}
	sg.large = sg.large[:0]
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].bodyIndices) > 1 {
			sort.Ints(sg.cells[i].bodyIndices)
		}
	}
}

// FindPairs returns every pair of bodies whose bounds overlap, ordered by the
// index of the first body then the second. Bodies must have been inserted
// with their index in the bodies slice.
func (sg *SpatialGrid) FindPairs(bodies []*Body) []Pair {
	pairs := make([]Pair, 0, len(bodies)/2)
	seen := make([]bool, len(bodies))
	candidates := make([]int, 0, 16)

	for bodyIdx := 0; bodyIdx < len(bodies); bodyIdx++ {
		clear(seen)
		candidates = candidates[:0]

		bodyA := bodies[bodyIdx]
		boundsA := bodyA.Solid.Bounds()

		visit := func(otherIdx int) {
			// Avoid duplicates (A,B) and (B,A)
			if otherIdx <= bodyIdx || seen[otherIdx] {
				return
			}
			seen[otherIdx] = true
			candidates = append(candidates, otherIdx)
		}

		if sg.isLarge(boundsA) {
			for otherIdx := bodyIdx + 1; otherIdx < len(bodies); otherIdx++ {
				visit(otherIdx)
			}
		} else {
			minCell := sg.worldToCell(boundsA.Min)
			maxCell := sg.worldToCell(boundsA.Max)

			for x := minCell.X; x <= maxCell.X; x++ {
				for y := minCell.Y; y <= maxCell.Y; y++ {
					for z := minCell.Z; z <= maxCell.Z; z++ {
						cellIdx := sg.hashCell(CellKey{x, y, z})
						for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
							visit(otherIdx)
						}
					}
				}
			}
			for _, otherIdx := range sg.large {
				visit(otherIdx)
			}
		}

		sort.Ints(candidates)
		for _, otherIdx := range candidates {
			bodyB := bodies[otherIdx]
			// hashed cells can hold unrelated bodies
			if boundsA.Overlaps(bodyB.Solid.Bounds()) {
				pairs = append(pairs, Pair{BodyA: bodyA, BodyB: bodyB})
			}
		}
	}

	return pairs
}

// isLarge reports whether bounds cover more cells than the grid holds
func (sg *SpatialGrid) isLarge(bounds shape.AABB) bool {
	span := 1.0
	for i := 0; i < 3; i++ {
		span *= math.Floor(bounds.Max[i]/sg.cellSize) - math.Floor(bounds.Min[i]/sg.cellSize) + 1
	}
	return span > float64(len(sg.cells))
}

// worldToCell - converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - hashes a cell to an index in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
