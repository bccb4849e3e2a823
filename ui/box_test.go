package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcSizes(t *testing.T) {
	for w := 0; w <= 80; w++ {
		sizes := calcSizes(w, []int{14, 15, 16, 8}, []int{0, 2, 3, 0})
		total := 0
		for _, size := range sizes {
			total += size
		}
		if total != w {
			t.Error("Expected", w, "got", total)
		}
	}
}

func TestCalcSizesWithoutFlex(t *testing.T) {
	assert.Equal(t, []int{3, 5}, calcSizes(20, []int{3, 5}, []int{0, 0}))
	assert.Equal(t, []int{3, 3}, calcSizes(6, []int{3, 5}, []int{0, 0}))
}

func TestRow(t *testing.T) {
	for w := 0; w <= 40; w++ {
		a := newProbe("foo", Rect{})
		b := newProbe("barbar", Rect{})
		c := newProbe("bazbazbaz", Rect{})
		row := Row(a, b, c).SetGap(1).SetFlex(b, 1)
		SetBounds(row, Rect{Width: w, Height: 3})

		total := 0
		for _, child := range row.Children() {
			total += child.base().Bounds().Width
		}
		if w >= 2 && total+2 != w {
			t.Error("Expected", w, "got", total+2)
		}
	}
}

func TestRowPlacesChildren(t *testing.T) {
	a := newProbe("abc", Rect{})
	b := newProbe("abc", Rect{})
	c := newProbe("abc", Rect{})
	row := Row(a, b, c).SetGap(1)
	SetBounds(row, Rect{X: 2, Y: 1, Width: 20, Height: 3})

	assert.Equal(t, Rect{X: 2, Y: 1, Width: 3, Height: 1}, a.Bounds())
	assert.Equal(t, Rect{X: 6, Y: 1, Width: 3, Height: 1}, b.Bounds())
	assert.Equal(t, Rect{X: 10, Y: 1, Width: 3, Height: 1}, c.Bounds())

	row.SetFlex(c, 1)
	SetBounds(row, Rect{X: 2, Y: 1, Width: 20, Height: 3})
	assert.Equal(t, Rect{X: 10, Y: 1, Width: 12, Height: 1}, c.Bounds())
}

func TestColumnPreferredSize(t *testing.T) {
	column := Column(newProbe("abc", Rect{}), newProbe("abcdef", Rect{})).SetGap(1)
	column.SetBorder(Insets{Left: 1, Top: 1, Right: 1, Bottom: 1})
	assert.Equal(t, Size{Width: 8, Height: 5}, PreferredSize(column))

	SetBounds(column, Rect{Width: 10, Height: 10})
	second := column.Children()[1].base()
	assert.Equal(t, Rect{X: 1, Y: 3, Width: 6, Height: 1}, second.Bounds())
}

func TestRowClampsCrossSize(t *testing.T) {
	tall := newProbe("abc", Rect{})
	tall.SetBorder(Insets{Top: 2, Bottom: 2})
	row := Row(tall)
	SetBounds(row, Rect{Width: 10, Height: 2})
	assert.Equal(t, 2, tall.Bounds().Height)
}

func TestRemovedChildLosesFlex(t *testing.T) {
	a := newProbe("a", Rect{})
	b := newProbe("b", Rect{})
	c := newProbe("c", Rect{})
	row := Row(a, b, c).SetFlex(a, 1).SetFlex(b, 2).SetFlex(c, 3)

	row.RemoveChild(a)
	Destroy(b)
	Column().AddChild(c)

	assert.Empty(t, row.flexes)
	assert.Empty(t, row.Children())
}
