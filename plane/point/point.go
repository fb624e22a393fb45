package point

import (
	"fmt"

	"github.com/hnimtadd/planar/plane/coordinate"
	"github.com/hnimtadd/planar/plane/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Point is an immutable pair of integer coordinates.
//
// The constructor stores its arguments crosswise: the first argument ends up
// in y and the second in x. X and Y report what was stored, not what was
// passed.
type Point struct {
	c coordinate.Point[int]
}

// New creates a point from (coordinateX, coordinateY). The stored x is
// coordinateY and the stored y is coordinateX. Any int pair is accepted and
// no overflow checking is done.
func New(coordinateX, coordinateY int) Point {
	return Point{c: coordinate.NewPoint(coordinateX, coordinateY).Swap()}
}

// X returns the stored x, i.e. the second argument given to New.
func (p Point) X() int {
	return p.c.X
}

// Y returns the stored y, i.e. the first argument given to New.
func (p Point) Y() int {
	return p.c.Y
}

// Coordinate returns the stored pair as (x, y).
func (p Point) Coordinate() coordinate.Point[int] {
	return p.c
}

func (p Point) Hash() uint64 {
	hashed, err := hashstructure.Hash(p.c, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash point: %v", err))
	return hashed
}

func (p Point) Equals(other Point) bool {
	return p.Hash() == other.Hash()
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%d, y=%d)", p.c.X, p.c.Y)
}
