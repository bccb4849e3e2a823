package ui

import "fmt"

type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

type Rect struct {
	X, Y          int
	Width, Height int
}

// Insets is the border around the client area of a widget.
type Insets struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && r.X+r.Width > p.X &&
		r.Y <= p.Y && r.Y+r.Height > p.Y
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Shrink returns the rectangle left after removing the insets.
func (r Rect) Shrink(in Insets) Rect {
	result := Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
	if result.Width < 0 {
		result.Width = 0
	}
	if result.Height < 0 {
		result.Height = 0
	}
	return result
}

func (in Insets) Horizontal() int { return in.Left + in.Right }

func (in Insets) Vertical() int { return in.Top + in.Bottom }

func (p Point) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("Size(Width: %d, Height: %d)", s.Width, s.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(X: %d, Y: %d, Width: %d, Height: %d)", r.X, r.Y, r.Width, r.Height)
}

// Align is a set of horizontal and vertical alignment flags.
type Align int

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

func (a Align) String() string {
	flags := ""
	add := func(flag Align, name string) {
		if a&flag == flag {
			if flags != "" {
				flags += "|"
			}
			flags += name
		}
	}
	add(AlignLeft, "Left")
	add(AlignCenter, "Center")
	add(AlignRight, "Right")
	add(AlignTop, "Top")
	add(AlignMiddle, "Middle")
	add(AlignBottom, "Bottom")
	return flags
}
