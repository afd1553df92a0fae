package keys

import (
	"atomicgo.dev/keyboard"
	atomickeys "atomicgo.dev/keyboard/keys"

	"github.com/jakkoble/modhandler/pkg/errors"
)

// Terminal reads raw keystrokes from the controlling terminal
type Terminal struct{}

// NewTerminal returns a Reader backed by the terminal keyboard
func NewTerminal() *Terminal {
	return &Terminal{}
}

// ReadKey puts the terminal into raw mode until one key is pressed
func (t *Terminal) ReadKey() (Key, error) {
	var got Key
	err := keyboard.Listen(func(key atomickeys.Key) (stop bool, err error) {
		got = convert(key)
		return true, nil
	})
	if err != nil {
		return Key{}, errors.Wrap(err, errors.ErrInternal, "Failed reading keyboard input.")
	}
	return got, nil
}

func convert(key atomickeys.Key) Key {
	switch key.Code {
	case atomickeys.RuneKey:
		if len(key.Runes) > 0 {
			return Rune(key.Runes[0])
		}
	case atomickeys.Space:
		return Rune(' ')
	case atomickeys.Enter:
		return Key{Kind: KeyEnter}
	case atomickeys.Escape:
		return Key{Kind: KeyEscape}
	case atomickeys.CtrlC:
		return Key{Kind: KeyInterrupt}
	case atomickeys.Backspace:
		return Key{Kind: KeyBackspace}
	}
	return Key{Kind: KeyOther}
}
