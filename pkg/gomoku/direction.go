package gomoku

// One of the 8 compass directions on the board, North decreases the line number
type Direction int8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// All directions, in clockwise order starting at North
var Directions = [...]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Line/column delta of a single step
var directionDeltas = [...][2]int{
	North:     {-1, 0},
	Northeast: {-1, 1},
	East:      {0, 1},
	Southeast: {1, 1},
	South:     {1, 0},
	Southwest: {1, -1},
	West:      {0, -1},
	Northwest: {-1, -1},
}

func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Whether this direction is one of North, Northeast, East, Southeast.
// Every axis has exactly one canonical direction.
func (d Direction) Canonical() bool {
	return d >= North && d <= Southeast
}

func (d Direction) Delta() (line, column int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case Northeast:
		return "Northeast"
	case East:
		return "East"
	case Southeast:
		return "Southeast"
	case South:
		return "South"
	case Southwest:
		return "Southwest"
	case West:
		return "West"
	case Northwest:
		return "Northwest"
	default:
		return "Invalid"
	}
}
