package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns the middle of rect, rounding down.
func Center(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// GridCell returns cell (col,row) of rect split into cols x rows equal cells.
// Cells are rect.Dx()/cols wide and rect.Dy()/rows tall; any remainder is left
// unused at the right and bottom edges. Out of range indices are clamped.
func GridCell(rect image.Rectangle, cols, rows, col, row int) image.Rectangle {
	rect = Normalize(rect)
	if cols <= 0 || rows <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	col = clamp(col, 0, cols-1)
	row = clamp(row, 0, rows-1)
	cellWidth := rect.Dx() / cols
	cellHeight := rect.Dy() / rows
	minX := rect.Min.X + col*cellWidth
	minY := rect.Min.Y + row*cellHeight
	return image.Rect(minX, minY, minX+cellWidth, minY+cellHeight)
}

// BottomStrip returns a rectangle of heightPx along the bottom of rect.
// heightPx is clamped to [0, rect.Dy()].
func BottomStrip(rect image.Rectangle, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fit returns the largest rectangle with the aspect ratio of size that fits
// inside rect, centered in it.
func Fit(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	if size.X <= 0 || size.Y <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	width, height := rect.Dx(), rect.Dy()
	// compare width/size.X against height/size.Y without floats
	if width*size.Y > height*size.X {
		width = height * size.X / size.Y
	} else {
		height = width * size.Y / size.X
	}
	minX := rect.Min.X + (rect.Dx()-width)/2
	minY := rect.Min.Y + (rect.Dy()-height)/2
	return image.Rect(minX, minY, minX+width, minY+height)
}
