package domain

import "fmt"

// Point is a grid coordinate, origin at the top-left corner, x increasing
// rightward and y increasing downward. Coordinates are never negative.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
