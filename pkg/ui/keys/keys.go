// Package keys reads single keystrokes, either from a raw terminal or from a
// scripted byte stream such as piped stdin.
package keys

import (
	"fmt"
	"strings"
)

// Kind classifies a keystroke
type Kind int

const (
	KeyRune Kind = iota
	KeyEnter
	KeyEscape
	KeyInterrupt
	KeyBackspace
	KeyOther
)

// Key is one keystroke. Rune is set for KeyRune only.
type Key struct {
	Kind Kind
	Rune rune
}

// Rune returns a printable key
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Reader delivers keystrokes one at a time, blocking until one is available
type Reader interface {
	ReadKey() (Key, error)
}

// Is reports whether k is the printable rune r, ignoring case
func (k Key) Is(r rune) bool {
	return k.Kind == KeyRune && strings.EqualFold(string(k.Rune), string(r))
}

// IsDigit reports whether k is 0-9
func (k Key) IsDigit() bool {
	return k.Kind == KeyRune && k.Rune >= '0' && k.Rune <= '9'
}

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyInterrupt:
		return "ctrl+c"
	case KeyBackspace:
		return "backspace"
	default:
		return fmt.Sprintf("key(%d)", k.Kind)
	}
}
