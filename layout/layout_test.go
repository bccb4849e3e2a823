package layout

import (
	"testing"

	"termui/ui"

	"github.com/stretchr/testify/assert"
)

var (
	bounds = ui.Rect{Width: 20, Height: 3}
	border = ui.Insets{Left: 2, Right: 2}
)

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 2, TextWidth("&OK"))
	assert.Equal(t, 11, TextWidth("&Save && exit"))
	assert.Equal(t, 2, TextWidth("\x1b[1mOK\x1b[0m"))
	assert.Equal(t, 4, TextWidth("日本"))
	assert.Zero(t, TextWidth(""))
}

func TestTextOnly(t *testing.T) {
	box, text, icon := TextIconInfo(bounds, border, ui.AlignCenter|ui.AlignMiddle, "&OK", 0, 0, 0)
	assert.Equal(t, ui.Rect{X: 9, Y: 1, Width: 2, Height: 1}, box)
	assert.Equal(t, box, text)
	assert.True(t, icon.Empty())

	box, _, _ = TextIconInfo(bounds, border, ui.AlignRight|ui.AlignBottom, "&OK", 0, 0, 0)
	assert.Equal(t, ui.Rect{X: 16, Y: 2, Width: 2, Height: 1}, box)

	box, _, _ = TextIconInfo(bounds, border, ui.AlignLeft|ui.AlignTop, "&OK", 0, 0, 0)
	assert.Equal(t, ui.Rect{X: 2, Y: 0, Width: 2, Height: 1}, box)
}

func TestIconPlacement(t *testing.T) {
	topLeft := ui.AlignLeft | ui.AlignTop
	for _, tc := range []struct {
		name      string
		iconAlign ui.Align
		box       ui.Rect
		text      ui.Rect
		icon      ui.Rect
	}{
		{"left", ui.AlignLeft, ui.Rect{X: 2, Width: 4, Height: 1}, ui.Rect{X: 4, Width: 2, Height: 1}, ui.Rect{X: 2, Width: 1, Height: 1}},
		{"right", ui.AlignRight, ui.Rect{X: 2, Width: 4, Height: 1}, ui.Rect{X: 2, Width: 2, Height: 1}, ui.Rect{X: 5, Width: 1, Height: 1}},
		{"top", ui.AlignTop, ui.Rect{X: 2, Width: 2, Height: 2}, ui.Rect{X: 2, Y: 1, Width: 2, Height: 1}, ui.Rect{X: 2, Width: 1, Height: 1}},
		{"bottom", ui.AlignBottom, ui.Rect{X: 2, Width: 2, Height: 2}, ui.Rect{X: 2, Width: 2, Height: 1}, ui.Rect{X: 2, Y: 1, Width: 1, Height: 1}},
		{"center", ui.AlignCenter, ui.Rect{X: 2, Width: 2, Height: 1}, ui.Rect{X: 2, Width: 2, Height: 1}, ui.Rect{X: 2, Width: 1, Height: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			box, text, icon := TextIconInfo(bounds, border, topLeft, "&OK", tc.iconAlign, 1, 1)
			assert.Equal(t, tc.box, box)
			assert.Equal(t, tc.text, text)
			assert.Equal(t, tc.icon, icon)
		})
	}
}

func TestIconWithoutText(t *testing.T) {
	box, text, icon := TextIconInfo(bounds, border, ui.AlignCenter|ui.AlignMiddle, "", ui.AlignLeft, 2, 1)
	assert.Equal(t, ui.Rect{X: 9, Y: 1, Width: 2, Height: 1}, box)
	assert.Equal(t, ui.Rect{X: 9, Y: 1, Width: 2, Height: 1}, icon)
	assert.Zero(t, text.Width)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "OK", PlainText("\x1b[1mOK\x1b[0m"))
	assert.Equal(t, "plain", PlainText("plain"))
}
