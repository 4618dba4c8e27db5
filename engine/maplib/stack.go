package maplib

// MaxProbeFloor is the highest floor the resolver looks through
const MaxProbeFloor Floor = 2

// Hit is the tile a pointer resolves to
type Hit struct {
	Coordinates Coordinates
	Floor       Floor // probe level that matched
	Top         Floor // floor of the stack top that produced the hit
}

// Position returns the hit as a placement with the given order
func (h Hit) Position(order Order) Position {
	return Position{Coordinates: h.Coordinates, Floor: h.Floor, Order: order}
}

// Resolve finds the occupied tile a ground coordinate refers to.
//
// Probes run from MaxProbeFloor down to 0, looking at c0 shifted up by the
// probe level. A probe above the stack top is skipped. A probe below it means
// the pointer is on the side face of a taller stack, so the hit is pushed
// along the row (Left) or column (Right) by the stack height.
func Resolve[T comparable](m *Map, idx *Occupancy[T], loc Locator[T], c0 Coordinates) (Hit, bool) {
	for probe := MaxProbeFloor; probe >= 0; probe-- {
		candidate := c0.Add(probe)
		if !m.InBounds(candidate) {
			continue
		}

		_, top, ok := idx.TopmostAt(candidate, loc)
		if !ok || top.Floor < probe {
			continue
		}

		if probe < top.Floor {
			switch candidate.Side {
			case SideLeft:
				candidate.Row += int(top.Floor)
			case SideRight:
				candidate.Column += int(top.Floor)
			}
		}
		return Hit{Coordinates: candidate, Floor: probe, Top: top.Floor}, true
	}
	return Hit{}, false
}
