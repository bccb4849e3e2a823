package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestStripMnemonic(t *testing.T) {
	for _, tc := range []struct {
		text     string
		stripped string
		idx      int
	}{
		{"OK", "OK", -1},
		{"&OK", "OK", 0},
		{"Save &as", "Save as", 5},
		{"Fish && &Chips", "Fish & Chips", 7},
		{"&&", "&", -1},
		{"trailing&", "trailing&", -1},
		{"&Über", "Über", 0},
		{"&a&b", "ab", 0},
	} {
		stripped, idx := StripMnemonic(tc.text)
		assert.Equal(t, tc.stripped, stripped, tc.text)
		assert.Equal(t, tc.idx, idx, tc.text)
	}
}

func TestMnemonic(t *testing.T) {
	assert.Equal(t, 'C', Mnemonic("Fish && &Chips"))
	assert.Equal(t, rune(0), Mnemonic("Fish && Chips"))
}

func TestMatchMnemonic(t *testing.T) {
	key := func(r rune) *Message {
		return &Message{Kind: KeyDown, Key: tcell.KeyRune, Rune: r, Mod: tcell.ModAlt}
	}

	assert.True(t, MatchMnemonic("&Save", key('s')))
	assert.True(t, MatchMnemonic("&Save", key('S')))
	assert.True(t, MatchMnemonic("&Save", key('ｓ')))
	assert.False(t, MatchMnemonic("&Save", key('a')))
	assert.False(t, MatchMnemonic("Save", key('s')))
	assert.False(t, MatchMnemonic("&Save", &Message{Kind: MouseDown, Key: tcell.KeyRune, Rune: 's'}))
	assert.False(t, MatchMnemonic("&Save", &Message{Kind: KeyDown, Key: tcell.KeyEnter}))
}
