package types

// Direction is one of the four cardinal movement directions
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of Directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ToPoint returns the unit step for d, in cells.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	}
	panic("types: invalid direction")
}

// Step returns the pixel offset of one cell move along d on grid g.
func (d Direction) Step(g Grid) Point {
	u := d.ToPoint()
	return Point{X: u.X * g.CellWidth, Y: u.Y * g.CellHeight}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}

// Color is the palette used by renderers
type Color int

const (
	Blue  Color = iota // snake
	Green              // food
	Red                // collision
)

// RGB returns the 8-bit components of c.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case Blue:
		return 0, 0, 255
	case Green:
		return 0, 128, 0
	case Red:
		return 255, 0, 0
	}
	return 0, 0, 0
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	}
	return "invalid"
}

// Status is the game state machine position
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Snapshot is a copy of the game state handed to renderers and pilots.
type Snapshot struct {
	Grid      Grid
	Position  Point
	Direction Direction
	Food      []Point
	Score     int
	Status    Status
}
