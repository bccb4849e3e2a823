// Package theme paints push buttons, check boxes and radio buttons on a
// tcell screen.
package theme

import (
	"termui/layout"
	"termui/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type Theme struct {
	normal   tcell.Style
	hot      tcell.Style
	pressed  tcell.Style
	disabled tcell.Style
	focus    tcell.Style
}

func New(palette Palette) *Theme {
	text := tcell.GetColor(palette.Text)
	face := tcell.GetColor(palette.Face)
	return &Theme{
		normal:   tcell.StyleDefault.Foreground(text).Background(face),
		hot:      tcell.StyleDefault.Foreground(text).Background(tcell.GetColor(palette.Hot)),
		pressed:  tcell.StyleDefault.Foreground(face).Background(tcell.GetColor(palette.Selected)).Bold(true),
		disabled: tcell.StyleDefault.Foreground(tcell.GetColor(palette.Disabled)).Background(face),
		focus:    tcell.StyleDefault.Foreground(tcell.GetColor(palette.Focus)).Background(face).Bold(true),
	}
}

// control is the state the theme reads from the widgets it paints.
type control interface {
	ui.Widget
	Bounds() ui.Rect
	Border() ui.Insets
	Align() ui.Align
	Text() string
	IsEnabled() bool
	IsSelected() bool
	HasFocus() bool
	HasMouseOver() bool
}

type iconHolder interface {
	IconAdapter() ui.IconAdapter
}

type glyph interface {
	Glyph() rune
}

// InitWidget reserves the border cells holding the brackets of a push
// button or the marker of a check box or radio button.
func (t *Theme) InitWidget(w ui.Widget, kind ui.Kind) {
	b := ui.BaseOf(w)
	switch kind {
	case ui.KindButton:
		b.SetBorder(ui.Insets{Left: 2, Right: 2})
	case ui.KindCheck, ui.KindRadio:
		b.SetBorder(ui.Insets{Left: 4})
	}
}

func (t *Theme) PaintButton(ev *ui.PaintEvent) {
	c, ok := ev.Source.(control)
	if !ok {
		return
	}
	style := t.faceStyle(c, true)
	bounds := c.Bounds()
	fill(ev.Screen, bounds, style)

	bracket := style
	if c.HasFocus() && c.IsEnabled() {
		bracket = t.focus
	}
	y := bounds.Y + bounds.Height/2
	ev.Screen.SetContent(bounds.X, y, '[', nil, bracket)
	ev.Screen.SetContent(bounds.X+bounds.Width-1, y, ']', nil, bracket)

	t.paintLabel(ev.Screen, c, style)
}

func (t *Theme) PaintCheckBox(ev *ui.PaintEvent) {
	marker := "[ ]"
	if c, ok := ev.Source.(control); ok && c.IsSelected() {
		marker = "[x]"
	}
	t.paintMarked(ev, marker)
}

func (t *Theme) PaintRadioButton(ev *ui.PaintEvent) {
	marker := "( )"
	if c, ok := ev.Source.(control); ok && c.IsSelected() {
		marker = "(•)"
	}
	t.paintMarked(ev, marker)
}

func (t *Theme) paintMarked(ev *ui.PaintEvent, marker string) {
	c, ok := ev.Source.(control)
	if !ok {
		return
	}
	style := t.faceStyle(c, false)
	bounds := c.Bounds()
	fill(ev.Screen, bounds, style)

	markerStyle := style
	if c.HasFocus() && c.IsEnabled() {
		markerStyle = t.focus
	}
	drawString(ev.Screen, bounds.X, bounds.Y+bounds.Height/2, bounds.Width, marker, -1, markerStyle)

	t.paintLabel(ev.Screen, c, style)
}

func (t *Theme) paintLabel(screen tcell.Screen, c control, style tcell.Style) {
	var icon ui.IconAdapter
	if holder, ok := c.(iconHolder); ok {
		icon = holder.IconAdapter()
	}
	iconAlign, iconWidth, iconHeight := ui.Align(0), 0, 0
	if icon != nil {
		iconAlign, iconWidth, iconHeight = icon.IconAlign(), icon.Width(), icon.Height()
	}
	client := c.Bounds().Shrink(c.Border())
	_, textRect, iconRect := layout.TextIconInfo(c.Bounds(), c.Border(), c.Align(), c.Text(), iconAlign, iconWidth, iconHeight)

	if icon != nil {
		if g, ok := icon.(glyph); ok && client.Contains(ui.Point{X: iconRect.X, Y: iconRect.Y}) {
			screen.SetContent(iconRect.X, iconRect.Y, g.Glyph(), nil, style)
		}
	}

	text, mnemonic := ui.StripMnemonic(layout.PlainText(c.Text()))
	x := max(textRect.X, client.X)
	drawString(screen, x, textRect.Y, client.X+client.Width-x, text, mnemonic, style)
}

func (t *Theme) faceStyle(c control, showPressed bool) tcell.Style {
	switch {
	case !c.IsEnabled():
		return t.disabled
	case showPressed && c.IsSelected():
		return t.pressed
	case c.HasMouseOver():
		return t.hot
	case c.HasFocus():
		return t.normal.Bold(true)
	}
	return t.normal
}

func fill(screen tcell.Screen, r ui.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawString draws text in at most width cells, truncating it with an
// ellipsis. The rune at index underline is underlined.
func drawString(screen tcell.Screen, x, y, width int, text string, underline int, style tcell.Style) {
	if width < 1 {
		return
	}
	truncated := runewidth.Truncate(text, width, "…")
	runes := []rune(truncated)
	// The tail is not part of the text and is never underlined.
	kept := len(runes)
	if truncated != text {
		kept--
	}
	col := x
	for i, r := range runes {
		st := style
		if i == underline && i < kept {
			st = st.Underline(true)
		}
		screen.SetContent(col, y, r, nil, st)
		col += runewidth.RuneWidth(r)
	}
}
