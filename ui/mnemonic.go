package ui

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/width"
)

// StripMnemonic removes mnemonic markers from text. A '&' marks the next
// character as the mnemonic and "&&" stands for a literal '&'. The returned
// index counts runes of the stripped text and is -1 without a mnemonic.
func StripMnemonic(text string) (string, int) {
	if !strings.ContainsRune(text, '&') {
		return text, -1
	}
	runes := []rune(text)
	result := make([]rune, 0, len(runes))
	idx := -1
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) {
			i++
			if runes[i] != '&' && idx < 0 {
				idx = len(result)
			}
		}
		result = append(result, runes[i])
	}
	return string(result), idx
}

// Mnemonic returns the mnemonic character of text, or 0.
func Mnemonic(text string) rune {
	stripped, idx := StripMnemonic(text)
	if idx < 0 {
		return 0
	}
	return []rune(stripped)[idx]
}

func foldMnemonic(r rune) rune {
	folded := []rune(width.Fold.String(string(r)))
	if len(folded) == 0 {
		return unicode.ToLower(r)
	}
	return unicode.ToLower(folded[0])
}

// MatchMnemonic reports whether the key carried by msg is the mnemonic of
// text. Case and full-width forms are ignored; modifiers are not checked.
func MatchMnemonic(text string, msg *Message) bool {
	if !msg.IsKey() || msg.Key != tcell.KeyRune {
		return false
	}
	mnemonic := Mnemonic(text)
	if mnemonic == 0 {
		return false
	}
	return foldMnemonic(mnemonic) == foldMnemonic(msg.Rune)
}
