package keys

import (
	"bufio"
	"io"
)

// Scripted turns a byte stream into keystrokes. Newlines become Enter, ESC
// becomes Escape and ETX (Ctrl+C) becomes an interrupt. It is used for piped
// stdin and in tests.
type Scripted struct {
	r *bufio.Reader
}

// NewScripted wraps r
func NewScripted(r io.Reader) *Scripted {
	return &Scripted{r: bufio.NewReader(r)}
}

// ReadKey returns the next keystroke, or io.EOF when the stream is exhausted.
// A "\r\n" pair counts as a single Enter.
func (s *Scripted) ReadKey() (Key, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch r {
	case '\r':
		if next, _, err := s.r.ReadRune(); err == nil && next != '\n' {
			_ = s.r.UnreadRune()
		}
		return Key{Kind: KeyEnter}, nil
	case '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x1b:
		return Key{Kind: KeyEscape}, nil
	case 0x03:
		return Key{Kind: KeyInterrupt}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	}
	return Rune(r), nil
}
