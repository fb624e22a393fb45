package planar

import (
	"github.com/hnimtadd/planar/logger"
	"github.com/hnimtadd/planar/plane/point"
	"github.com/hnimtadd/planar/plane/render"
	"github.com/hnimtadd/planar/plane/segment"
	"golang.org/x/text/language"
)

type Planar struct {
	logger logger.Logger

	// Locale used when rendering coordinates.
	language language.Tag
}

type Options struct {
	Logger   logger.Logger
	Language language.Tag
}

// New returns a Planar. A nil Logger falls back to logger.DefaultLogger and
// the zero Language to English.
func New(opts Options) *Planar {
	l := opts.Logger
	if l == nil {
		l = logger.DefaultLogger
	}
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	return &Planar{
		logger:   l,
		language: tag,
	}
}

// Segment builds a segment from two points, logging the outcome.
func (p *Planar) Segment(p1, p2 *point.Point) (segment.Segment, error) {
	s, err := segment.New(p1, p2)
	if err != nil {
		p.logger.Warn("rejected segment", "err", err)
		return segment.Segment{}, err
	}
	p.logger.Debug("built segment", "segment", s.String())
	return s, nil
}

// Describe builds the segment and renders its begin, end and mid points as
// a table.
func (p *Planar) Describe(p1, p2 *point.Point) (string, error) {
	s, err := p.Segment(p1, p2)
	if err != nil {
		return "", err
	}
	mid := s.MidPoint()
	p.logger.Debug("computed midpoint", "x", mid.X(), "y", mid.Y())
	return render.Table{
		Rows:     render.SegmentRows(s),
		Language: p.language,
	}.String(), nil
}
