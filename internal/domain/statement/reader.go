package statement

import (
	"math"
	"sort"

	"github.com/ledongthuc/pdf"
)

// fragmentGapMax is the widest horizontal gap between two text fragments
// that still belongs to the same word. Wider gaps split into separate items,
// which the cell joiner later separates with a space.
const fragmentGapMax = 1.5

// pageTextItems extracts the page's positioned text as word-level items in
// top-down coordinates. The underlying reader emits per-glyph fragments in
// bottom-up coordinates; this flips the axis and merges adjacent glyphs.
// Malformed page content yields no items rather than a panic.
func pageTextItems(p pdf.Page) (items []textItem) {
	defer func() {
		if recover() != nil {
			items = nil
		}
	}()

	height := pageHeight(p)
	raw := p.Content().Text
	if len(raw) == 0 {
		return nil
	}

	type fragment struct {
		x, y, w float64
		s       string
	}
	frags := make([]fragment, 0, len(raw))
	for _, t := range raw {
		if t.S == "" {
			continue
		}
		frags = append(frags, fragment{x: t.X, y: height - t.Y, w: t.W, s: t.S})
	}
	sort.SliceStable(frags, func(a, b int) bool {
		if math.Abs(frags[a].y-frags[b].y) > lineYTolerance {
			return frags[a].y < frags[b].y
		}
		return frags[a].x < frags[b].x
	})

	var cur textItem
	var curEnd float64
	flush := func() {
		if cur.s != "" {
			items = append(items, cur)
			cur = textItem{}
		}
	}
	for _, f := range frags {
		sameLine := cur.s != "" && math.Abs(f.y-cur.y) <= lineYTolerance
		if sameLine && f.x-curEnd <= fragmentGapMax {
			cur.s += f.s
		} else {
			flush()
			cur = textItem{x: f.x, y: f.y, s: f.s}
		}
		curEnd = f.x + f.w
	}
	flush()
	return items
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// when the page itself carries none. Falls back to US Letter height.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		if mb := v.Key("MediaBox"); !mb.IsNull() {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return 792
}
