// Package world provides the room graph the player navigates.
package world

// Direction is a cardinal exit label.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions returns the four cardinal directions in a fixed order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// ParseDirection converts a normalized token into a Direction.
// The second return value is false for anything outside the four
// cardinal labels.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case North, South, East, West:
		return Direction(s), true
	default:
		return "", false
	}
}
