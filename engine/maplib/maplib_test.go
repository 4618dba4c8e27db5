package maplib

// positions is a Locator backed by a plain map
type positions map[int]Position

func (p positions) PositionOf(id int) (Position, bool) {
	pos, ok := p[id]
	return pos, ok
}

// board bundles an index and its locator for tests
type board struct {
	idx  *Occupancy[int]
	locs positions
	next int
}

func newBoard() *board {
	return &board{idx: NewOccupancy[int](), locs: positions{}}
}

func (b *board) place(col, row int, floor Floor) int {
	b.next++
	pos := Position{Coordinates: At(col, row), Floor: floor}
	b.locs[b.next] = pos
	b.idx.Insert(pos.Coordinates, b.next)
	return b.next
}

func (b *board) ground(size int) {
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			b.place(col, row, 0)
		}
	}
}

func (b *board) stack(col, row int, from, to Floor) {
	for f := from; f <= to; f++ {
		b.place(col, row, f)
	}
}
