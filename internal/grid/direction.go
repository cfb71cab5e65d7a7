package grid

// Direction is a unit step along one axis. The zero value None means no direction.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four headings in a fixed order, used for random choice.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit vector in screen coordinates (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading; None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// RandomDirection picks one of the four headings.
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// ParseDirection accepts the names produced by String and their first letters.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "u", "U":
		return Up, true
	case "down", "d", "D":
		return Down, true
	case "left", "l", "L":
		return Left, true
	case "right", "r", "R":
		return Right, true
	}
	return None, false
}
