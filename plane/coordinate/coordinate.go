package coordinate

import "fmt"

// Point is a raw ordered pair. It carries no meaning beyond "first" (X) and
// "second" (Y); callers decide what the slots represent.
type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Swap returns the pair with its two slots exchanged.
func (p Point[T]) Swap() Point[T] {
	return Point[T]{X: p.Y, Y: p.X}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
