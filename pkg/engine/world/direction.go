package world

// Direction represents a cardinal facing
type Direction int

// Direction constants. The numeric order matters: turning right is +1 mod 4.
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft returns the direction after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight returns the direction after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Delta returns the x and y offsets for one step in this direction.
// North decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection converts a stored direction name back to a Direction.
// Unrecognized names fall back to North.
func ParseDirection(s string) Direction {
	switch s {
	case "East":
		return East
	case "South":
		return South
	case "West":
		return West
	default:
		return North
	}
}
