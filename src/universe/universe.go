package universe

import (
	"strings"
)

//Cell is the state of one grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//maxCells bounds width*height so both generation buffers stay allocatable
const maxCells = 1 << 28

const (
	deadGlyph  = ' '
	aliveGlyph = '◼'
)

//Glyph returns the character used to render the cell
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

//Seeder writes an initial pattern into a freshly constructed universe
type Seeder func(u *Universe)

//Universe is a fixed-size toroidal grid of cells
//the cells are stored row-major: index = row*width + column
//Universe has no internal locking, the owner serializes Tick/Render calls
type Universe struct {
	width  int
	height int
	cells  []Cell
	next   []Cell
}

//New creates the universe with all cells dead and applies the seeders in order
func New(width int, height int, seeders ...Seeder) (*Universe, error) {
	if width <= 0 || height <= 0 || width > maxCells/height {
		return nil, &DimensionError{Width: width, Height: height}
	}
	u := &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		next:   make([]Cell, width*height),
	}
	for _, s := range seeders {
		if s != nil {
			s(u)
		}
	}
	return u, nil
}

func (u *Universe) Width() int {
	return u.width
}

func (u *Universe) Height() int {
	return u.height
}

//Index maps the already reduced row, column pair to the cells index
func (u *Universe) Index(row int, column int) int {
	return row*u.width + column
}

//Cell returns the cell state, coordinates are wrapped around the torus
func (u *Universe) Cell(row int, column int) Cell {
	return u.cells[u.wrappedIndex(row, column)]
}

//Set sets the cell state, coordinates are wrapped around the torus
func (u *Universe) Set(row int, column int, c Cell) {
	u.cells[u.wrappedIndex(row, column)] = c
}

//Toggle inverses the cell state at row, column
func (u *Universe) Toggle(row int, column int) {
	idx := u.wrappedIndex(row, column)
	u.cells[idx] ^= Alive
}

//Cells returns a copy of the current generation
func (u *Universe) Cells() []Cell {
	c := make([]Cell, len(u.cells))
	copy(c, u.cells)
	return c
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

//Clear kills all cells
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

//LiveNeighborCount counts the live cells among the 8 toroidal neighbours
func (u *Universe) LiveNeighborCount(row int, column int) int {
	row, column = wrap(row, u.height), wrap(column, u.width)
	count := 0
	for _, dr := range [3]int{u.height - 1, 0, 1} {
		for _, dc := range [3]int{u.width - 1, 0, 1} {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % u.height
			nc := (column + dc) % u.width
			count += int(u.cells[u.Index(nr, nc)])
		}
	}
	return count
}

//Tick calculates the next generation
//all neighbour counts are read from the current buffer, the next states are written
//to the spare buffer and the buffers are swapped when the whole grid is done
func (u *Universe) Tick() {
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := u.Index(row, col)
			u.next[idx] = nextState(u.cells[idx], u.LiveNeighborCount(row, col))
		}
	}
	u.cells, u.next = u.next, u.cells
}

//Render returns the current generation as text, one line per row
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(len(u.cells)*len(string(aliveGlyph)) + u.height)
	for i, c := range u.cells {
		b.WriteRune(c.Glyph())
		if (i+1)%u.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (u *Universe) String() string {
	return u.Render()
}

func (u *Universe) wrappedIndex(row int, column int) int {
	return u.Index(wrap(row, u.height), wrap(column, u.width))
}

//nextState is the fixed B3/S23 decision table
func nextState(c Cell, liveNeighbours int) Cell {
	switch {
	case c == Alive && liveNeighbours < 2:
		//underpopulation
		return Dead
	case c == Alive && (liveNeighbours == 2 || liveNeighbours == 3):
		return Alive
	case c == Alive && liveNeighbours > 3:
		//overpopulation
		return Dead
	case c == Dead && liveNeighbours == 3:
		//reproduction
		return Alive
	}
	return c
}

func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
