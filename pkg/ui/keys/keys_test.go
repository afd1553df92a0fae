package keys

import (
	"io"
	"strings"
	"testing"

	atomickeys "atomicgo.dev/keyboard/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScripted(t *testing.T) {
	r := NewScripted(strings.NewReader("1q\r\n\x1b\x03y\x7f\n"))

	want := []Key{
		Rune('1'),
		Rune('q'),
		{Kind: KeyEnter},
		{Kind: KeyEscape},
		{Kind: KeyInterrupt},
		Rune('y'),
		{Kind: KeyBackspace},
		{Kind: KeyEnter},
	}
	for i, w := range want {
		got, err := r.ReadKey()
		require.NoError(t, err, "key %d", i)
		assert.Equal(t, w, got, "key %d", i)
	}

	_, err := r.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyPredicates(t *testing.T) {
	assert.True(t, Rune('Y').Is('y'))
	assert.False(t, Key{Kind: KeyEnter}.Is('y'))
	assert.True(t, Rune('7').IsDigit())
	assert.False(t, Rune('a').IsDigit())
	assert.Equal(t, "esc", Key{Kind: KeyEscape}.String())
	assert.Equal(t, "q", Rune('q').String())
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   atomickeys.Key
		want Key
	}{
		{"rune", atomickeys.Key{Code: atomickeys.RuneKey, Runes: []rune{'3'}}, Rune('3')},
		{"enter", atomickeys.Key{Code: atomickeys.Enter}, Key{Kind: KeyEnter}},
		{"escape", atomickeys.Key{Code: atomickeys.Escape}, Key{Kind: KeyEscape}},
		{"ctrl_c", atomickeys.Key{Code: atomickeys.CtrlC}, Key{Kind: KeyInterrupt}},
		{"space", atomickeys.Key{Code: atomickeys.Space}, Rune(' ')},
		{"arrow", atomickeys.Key{Code: atomickeys.Up}, Key{Kind: KeyOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert(tt.in))
		})
	}
}
