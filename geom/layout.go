package geom

import (
	"iter"

	"deedles.dev/xgeom/internal/xmath"
	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the first of which is w columns wide. w must be in
// [1, LenX(r)).
func hsplit[T Integer](r Rect[T], w uint64) (left, right Rect[T]) {
	left, right = r, r
	left.Max.X = xmath.WrappingAdd(r.Min.X, xmath.Pos(w-1))
	right.Min.X = xmath.WrappingAdd(r.Min.X, xmath.Pos(w))
	return left, right
}

func hsplitHalf[T Integer](r Rect[T]) (left, right Rect[T], ok bool) {
	w := LenX(r) / 2
	if w == 0 {
		return r, r, false
	}
	left, right = hsplit(r, w)
	return left, right, true
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the first of which is h rows tall. h must be in [1, LenY(r)).
func vsplit[T Integer](r Rect[T], h uint64) (top, bottom Rect[T]) {
	top, bottom = r, r
	top.Max.Y = xmath.WrappingAdd(r.Min.Y, xmath.Pos(h-1))
	bottom.Min.Y = xmath.WrappingAdd(r.Min.Y, xmath.Pos(h))
	return top, bottom
}

func vsplitHalf[T Integer](r Rect[T]) (top, bottom Rect[T], ok bool) {
	h := LenY(r) / 2
	if h == 0 {
		return r, r, false
	}
	top, bottom = vsplit(r, h)
	return top, bottom, true
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[int], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Integer](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice. If a section becomes too small to split, it is
// yielded as the final tile.
func TiledRightThenDown[T Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || r.Empty() {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]
		for range numtiles - 1 {
			c, n, ok := split(r)
			if !ok {
				break
			}
			if !yield(c) {
				return
			}

			r = n
			split, next = next, split
		}

		yield(r)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Integer](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || r.Empty() {
			return
		}

		n := LenX(r)
		w := n/3*2 + n%3*2/3
		if numtiles == 1 || w == 0 || w >= n {
			yield(r)
			return
		}

		first, rem := hsplit(r, w)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[int], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Integer](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. Rows that do not divide evenly
// are given to the last tile. Nothing is yielded if r has fewer rows
// than numtiles.
func TiledEvenVertically[T Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || r.Empty() {
			return
		}
		size := LenY(r) / uint64(numtiles)
		if size == 0 {
			return
		}

		c := r
		for i := range numtiles {
			c.Max.Y = xmath.WrappingAdd(c.Min.Y, xmath.Pos(size-1))
			if i == numtiles-1 {
				c.Max.Y = r.Max.Y
			}
			if !yield(c) {
				return
			}
			c.Min.Y = xmath.WrappingAdd(c.Max.Y, xmath.Pos(1))
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[int], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[T Integer](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || r.Empty() {
			return
		}
		size := LenX(r) / uint64(numtiles)
		if size == 0 {
			return
		}

		c := r
		for i := range numtiles {
			c.Max.X = xmath.WrappingAdd(c.Min.X, xmath.Pos(size-1))
			if i == numtiles-1 {
				c.Max.X = r.Max.X
			}
			if !yield(c) {
				return
			}
			c.Min.X = xmath.WrappingAdd(c.Max.X, xmath.Pos(1))
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Integer](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Integer](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing a vertical stack of rectangles below the
// first. The stack ends with the last copy that fits within T.
func VerticalStack[T Integer](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		r := first.Canon()
		shift := xmath.Pos(LenY(r))
		for {
			if !yield(r) {
				return
			}

			var ok bool
			r.Min.Y, r.Max.Y, ok = xmath.CheckedShift(r.Min.Y, r.Max.Y, shift)
			if !ok {
				return
			}
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// Rectangles that would extend past the maximum of T are pushed back
// inside it.
func ArrangeVerticalStack[T Integer](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	width := LenX(prev)
	for _, rect := range rects {
		width = max(width, LenX(rect.Canon()))
	}
	prev.Min.X, prev.Max.X = xmath.SaturatingPlace(prev.Min.X, width)
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		top := xmath.SaturatingAdd(prev.Max.Y, xmath.Pos(1))
		next := prev
		next.Min.Y, next.Max.Y = xmath.SaturatingPlace(top, LenY(rects[i].Canon()))
		rects[i] = next
		prev = next
	}
}

// Align centers inner within outer and then shifts the specified
// edges of inner to align with the corresponding edges of outer,
// stretching the rectangle as necessary if opposite edges are
// specified. inner must be well-formed.
func Align[T Integer](outer, inner Rect[T], edges Edges) Rect[T] {
	w, h := LenX(inner), LenY(inner)
	inner.Min.X, inner.Max.X = xmath.SaturatingResize(outer.Min.X, outer.Max.X, w)
	inner.Min.Y, inner.Max.Y = xmath.SaturatingResize(outer.Min.Y, outer.Max.Y, h)

	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = xmath.SaturatingPlace(outer.Min.Y, h)
		if edges&EdgeBottom != 0 {
			inner.Max.Y = outer.Max.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = xmath.SaturatingPlaceEnd(outer.Max.Y, h)
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = xmath.SaturatingPlace(outer.Min.X, w)
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = xmath.SaturatingPlaceEnd(outer.Max.X, w)
	}

	return inner
}

func insertTilesFromSeq[T Integer](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
