package render

import (
	"strings"

	"github.com/hnimtadd/planar/plane/point"
	"github.com/hnimtadd/planar/plane/segment"
	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Row struct {
	Label string
	Point point.Point
}

// Table is a plain-text listing of labelled points. Columns are aligned by
// display width, so labels holding wide runes still line up in a terminal.
type Table struct {
	Rows []Row

	// Language picks the digit grouping of the coordinates. The zero tag
	// means English.
	Language language.Tag
}

var header = [3]string{"name", "x", "y"}

const separator = " | "

// SegmentRows lists what the segment reports through its accessors.
func SegmentRows(s segment.Segment) []Row {
	return []Row{
		{Label: "begin", Point: s.BeginPoint()},
		{Label: "end", Point: s.EndPoint()},
		{Label: "mid", Point: s.MidPoint()},
	}
}

func (t Table) String() string {
	tag := t.Language
	if tag == language.Und {
		tag = language.English
	}
	printer := message.NewPrinter(tag)

	cells := make([][3]string, 0, len(t.Rows)+1)
	cells = append(cells, header)
	for _, r := range t.Rows {
		cells = append(cells, [3]string{
			r.Label,
			printer.Sprintf("%d", r.Point.X()),
			printer.Sprintf("%d", r.Point.Y()),
		})
	}

	var widths [3]int
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], dw.StringWidth(c))
		}
	}

	var b strings.Builder
	for _, row := range cells {
		// labels left aligned, numbers right aligned
		b.WriteString(dw.FillRight(row[0], widths[0]))
		b.WriteString(separator)
		b.WriteString(dw.FillLeft(row[1], widths[1]))
		b.WriteString(separator)
		b.WriteString(dw.FillLeft(row[2], widths[2]))
		b.WriteByte('\n')
	}
	return b.String()
}
