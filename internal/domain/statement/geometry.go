package statement

import (
	"math"
	"sort"
	"strings"
)

// Boundary detection thresholds: a template line counts as near-vertical or
// near-horizontal when its perpendicular drift stays under 5 units and its
// length exceeds 20; anything shorter is decoration, not a separator.
const (
	driftTolerance  = 5
	minSeparatorLen = 20
	lineYTolerance  = 2 // text items within this Y delta sit on one line
)

type tableBounds struct {
	x1, y1, x2, y2 float64
}

// findBounds returns the outer rectangle of a table: the first rectangle
// primitive in the template.
func findBounds(prims []Primitive) (tableBounds, bool) {
	for _, p := range prims {
		if p.Kind == KindRect {
			return tableBounds{p.X1, p.Y1, p.X2, p.Y2}, true
		}
	}
	return tableBounds{}, false
}

// columnBoundaries collects the x-coordinates of near-vertical separator
// lines inside the table rectangle, sorted and de-duplicated, with the
// rectangle's own edges added when missing. A line only qualifies if its
// y-span overlaps the rectangle; stray lines elsewhere on the page are
// ignored.
func columnBoundaries(prims []Primitive) []float64 {
	b, ok := findBounds(prims)
	if !ok {
		return nil
	}

	seen := map[float64]struct{}{}
	for _, p := range prims {
		if p.Kind != KindLine {
			continue
		}
		if math.Abs(p.X1-p.X2) >= driftTolerance || math.Abs(p.Y1-p.Y2) <= minSeparatorLen {
			continue
		}
		x := p.X1
		if x < b.x1 || x > b.x2 {
			continue
		}
		if math.Min(p.Y1, p.Y2) > b.y2 || math.Max(p.Y1, p.Y2) < b.y1 {
			continue
		}
		seen[x] = struct{}{}
	}

	return withEdges(seen, b.x1, b.x2)
}

// rowBoundaries is the horizontal mirror of columnBoundaries.
func rowBoundaries(prims []Primitive) []float64 {
	b, ok := findBounds(prims)
	if !ok {
		return nil
	}

	seen := map[float64]struct{}{}
	for _, p := range prims {
		if p.Kind != KindLine {
			continue
		}
		if math.Abs(p.Y1-p.Y2) >= driftTolerance || math.Abs(p.X1-p.X2) <= minSeparatorLen {
			continue
		}
		y := p.Y1
		if y < b.y1 || y > b.y2 {
			continue
		}
		if math.Min(p.X1, p.X2) > b.x2 || math.Max(p.X1, p.X2) < b.x1 {
			continue
		}
		seen[y] = struct{}{}
	}

	return withEdges(seen, b.y1, b.y2)
}

func withEdges(seen map[float64]struct{}, low, high float64) []float64 {
	if len(seen) == 0 {
		return nil
	}
	coords := make([]float64, 0, len(seen)+2)
	for c := range seen {
		coords = append(coords, c)
	}
	sort.Float64s(coords)
	if coords[0] != low {
		coords = append([]float64{low}, coords...)
	}
	if coords[len(coords)-1] != high {
		coords = append(coords, high)
	}
	return coords
}

// textItem is one positioned text fragment of a page, in top-down
// coordinates matching the templates.
type textItem struct {
	x, y float64
	s    string
}

// cellGrid clips the page's text into the cells bounded by the template's
// row and column boundaries. Within a cell, fragments read top-to-bottom,
// left-to-right; fragments on the same visual line join with spaces, line
// breaks stay as newlines. A template with unusable geometry yields nil.
func cellGrid(items []textItem, prims []Primitive) [][]string {
	cols := columnBoundaries(prims)
	rows := rowBoundaries(prims)
	if len(cols) < 2 || len(rows) < 2 {
		return nil
	}

	grid := make([][]string, 0, len(rows)-1)
	for i := 0; i < len(rows)-1; i++ {
		top, bottom := rows[i], rows[i+1]
		row := make([]string, 0, len(cols)-1)
		for j := 0; j < len(cols)-1; j++ {
			left, right := cols[j], cols[j+1]
			row = append(row, cellText(items, left, top, right, bottom))
		}
		grid = append(grid, row)
	}
	return grid
}

func cellText(items []textItem, left, top, right, bottom float64) string {
	var inCell []textItem
	for _, it := range items {
		if it.x >= left && it.x < right && it.y >= top && it.y < bottom {
			inCell = append(inCell, it)
		}
	}
	if len(inCell) == 0 {
		return ""
	}

	sort.SliceStable(inCell, func(a, b int) bool {
		if math.Abs(inCell[a].y-inCell[b].y) > lineYTolerance {
			return inCell[a].y < inCell[b].y
		}
		return inCell[a].x < inCell[b].x
	})

	var sb strings.Builder
	prevY := inCell[0].y
	for i, it := range inCell {
		if i > 0 {
			if math.Abs(it.y-prevY) > lineYTolerance {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(it.s)
		prevY = it.y
	}
	return strings.TrimSpace(sb.String())
}
