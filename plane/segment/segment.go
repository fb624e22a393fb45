package segment

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/planar/plane/coordinate"
	"github.com/hnimtadd/planar/plane/point"
	"github.com/hnimtadd/planar/plane/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// ErrInvalidArgument is returned when a segment is built from a missing point.
var ErrInvalidArgument = errors.New("invalid argument")

// Segment is an immutable ordered pair of points.
//
// The accessors are crossed over: BeginPoint returns the point stored as the
// end and EndPoint returns the point stored as the begin. MidPoint sums the
// two points instead of averaging them.
type Segment struct {
	begin point.Point
	end   point.Point
}

// New creates a segment with begin = *point1 and end = *point2. The points are
// copied, so later changes to the variables behind the pointers do not reach
// the segment.
func New(point1, point2 *point.Point) (Segment, error) {
	if point1 == nil {
		return Segment{}, fmt.Errorf("%w: point1 is nil", ErrInvalidArgument)
	}
	if point2 == nil {
		return Segment{}, fmt.Errorf("%w: point2 is nil", ErrInvalidArgument)
	}
	return Segment{begin: *point1, end: *point2}, nil
}

// MustNew is like New but panics on error.
func MustNew(point1, point2 *point.Point) Segment {
	s, err := New(point1, point2)
	if err != nil {
		panic(err)
	}
	return s
}

// BeginPoint returns the point stored as the end of the segment.
func (s Segment) BeginPoint() point.Point {
	return s.end
}

// EndPoint returns the point stored as the begin of the segment.
func (s Segment) EndPoint() point.Point {
	return s.begin
}

// MidPoint returns point.New(begin.X()+end.X(), begin.Y()+end.Y()). It is
// recomputed on every call.
func (s Segment) MidPoint() point.Point {
	newX := s.begin.X() + s.end.X()
	newY := s.begin.Y() + s.end.Y()
	return point.New(newX, newY)
}

// hashed is the exported shape hashstructure walks; it skips unexported
// fields.
type hashed struct {
	Begin coordinate.Point[int]
	End   coordinate.Point[int]
}

func (s Segment) Hash() uint64 {
	h, err := hashstructure.Hash(
		hashed{Begin: s.begin.Coordinate(), End: s.end.Coordinate()},
		hashstructure.FormatV2,
		nil,
	)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash segment: %v", err))
	return h
}

func (s Segment) Equals(other Segment) bool {
	return s.Hash() == other.Hash()
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(begin=%s, end=%s)", s.begin, s.end)
}
