// Package layout measures and places the text and icon of a widget.
package layout

import (
	"strings"

	"termui/ui"

	"github.com/muesli/ansi"
)

// iconGap is the number of cells between an icon and the text beside it.
const iconGap = 1

// TextWidth returns the number of cells the text of a widget occupies once
// mnemonic markers and escape sequences are removed.
func TextWidth(text string) int {
	display, _ := ui.StripMnemonic(text)
	return ansi.PrintableRuneWidth(display)
}

// TextIconInfo places text and an icon of iconWidth x iconHeight cells
// inside the client area of bounds. It returns the box enclosing both, the
// text rectangle and the icon rectangle. The box is aligned in the client
// area by align; the icon is placed relative to the text by iconAlign.
func TextIconInfo(bounds ui.Rect, border ui.Insets, align ui.Align, text string, iconAlign ui.Align, iconWidth, iconHeight int) (box, textRect, iconRect ui.Rect) {
	textWidth, textHeight := TextWidth(text), 0
	if text != "" {
		textHeight = 1
	}
	hasIcon := iconWidth > 0 && iconHeight > 0
	if !hasIcon {
		iconWidth, iconHeight = 0, 0
	}

	gap := 0
	if hasIcon && textWidth > 0 {
		gap = iconGap
	}

	switch {
	case hasIcon && iconAlign&(ui.AlignLeft|ui.AlignRight) != 0:
		box.Width = textWidth + gap + iconWidth
		box.Height = max(textHeight, iconHeight)
	case hasIcon && iconAlign&(ui.AlignTop|ui.AlignBottom) != 0:
		box.Width = max(textWidth, iconWidth)
		box.Height = textHeight + iconHeight
	default:
		box.Width = max(textWidth, iconWidth)
		box.Height = max(textHeight, iconHeight)
	}

	client := bounds.Shrink(border)
	box.X = alignStart(client.X, client.Width, box.Width, align&ui.AlignRight != 0, align&ui.AlignCenter != 0)
	box.Y = alignStart(client.Y, client.Height, box.Height, align&ui.AlignBottom != 0, align&ui.AlignMiddle != 0)

	textRect = ui.Rect{Width: textWidth, Height: textHeight}
	iconRect = ui.Rect{Width: iconWidth, Height: iconHeight}
	centerX := func(w int) int { return box.X + (box.Width-w)/2 }
	centerY := func(h int) int { return box.Y + (box.Height-h)/2 }

	switch {
	case hasIcon && iconAlign&ui.AlignLeft != 0:
		iconRect.X, iconRect.Y = box.X, centerY(iconHeight)
		textRect.X, textRect.Y = box.X+iconWidth+gap, centerY(textHeight)
	case hasIcon && iconAlign&ui.AlignRight != 0:
		textRect.X, textRect.Y = box.X, centerY(textHeight)
		iconRect.X, iconRect.Y = box.X+textWidth+gap, centerY(iconHeight)
	case hasIcon && iconAlign&ui.AlignTop != 0:
		iconRect.X, iconRect.Y = centerX(iconWidth), box.Y
		textRect.X, textRect.Y = centerX(textWidth), box.Y+iconHeight
	case hasIcon && iconAlign&ui.AlignBottom != 0:
		textRect.X, textRect.Y = centerX(textWidth), box.Y
		iconRect.X, iconRect.Y = centerX(iconWidth), box.Y+textHeight
	default:
		textRect.X, textRect.Y = centerX(textWidth), centerY(textHeight)
		iconRect.X, iconRect.Y = centerX(iconWidth), centerY(iconHeight)
	}
	return box, textRect, iconRect
}

func alignStart(start, avail, size int, end, center bool) int {
	switch {
	case end:
		return start + avail - size
	case center:
		return start + (avail-size)/2
	}
	return start
}

// PlainText strips ANSI escape sequences from text.
func PlainText(text string) string {
	if !strings.ContainsRune(text, ansi.Marker) {
		return text
	}
	var b strings.Builder
	escape := false
	for _, r := range text {
		switch {
		case r == ansi.Marker:
			escape = true
		case escape:
			if ansi.IsTerminator(r) {
				escape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
