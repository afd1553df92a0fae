package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jakkoble/modhandler/pkg/core"
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/style"
	"github.com/jakkoble/modhandler/pkg/syncdir"
	"github.com/jakkoble/modhandler/pkg/types"
	"github.com/jakkoble/modhandler/pkg/ui/keys"
	"github.com/rs/zerolog"
)

// Outcome is how a session ended
type Outcome int

const (
	Quit Outcome = iota
	Cleared
	Applied
	// NoProfiles means the catalog was empty and a guide was shown instead
	NoProfiles
)

func (o Outcome) String() string {
	switch o {
	case Cleared:
		return "cleared"
	case Applied:
		return "applied"
	case NoProfiles:
		return "no-profiles"
	default:
		return "quit"
	}
}

// Messages shown by the session
const (
	MsgBye          = "Bye!"
	MsgInvalid      = "Please enter a valid number! Try again:"
	MsgOutOfRange   = "There is no profile with the number %d. Try again:"
	MsgCleared      = "Mods directory cleared."
	MsgConfirmClear = "The mods directory is not empty. Do you want to clear it before continuing? (y/n)"
	MsgCopying      = "Copying mods..."
	MsgProfiles     = "Your Profiles:"
	MsgSelect       = "Select the profile by typing the number: (type \"q\" to quit)"
	MsgNoProfiles   = "I seems like you haven't created any profile yet. Go to the created \"profiles\" directory and create a new profile."
	MsgMoreInfo     = "For further information visit: https://github.com/jakkoble/ModHandler"
	Divider         = "\n--------------------------------\n"
)

// Options contains everything a session needs. Nothing is read from the
// environment.
type Options struct {
	Profiles   []types.Profile
	ModsDir    string
	FileSystem types.FS
	Keys       keys.Reader
	Out        io.Writer
	// Styled enables colors in the menu
	Styled bool
	// DryRun reports what would change without touching the mods directory
	DryRun bool
}

// Result describes what the session did
type Result struct {
	Outcome Outcome
	Profile *types.Profile
	Cleared *syncdir.ClearResult
	Applied *core.ApplyResult
}

type session struct {
	opts   Options
	logger zerolog.Logger
}

// Run presents the menu and carries out the selection
func Run(opts Options) (*Result, error) {
	s := &session{opts: opts, logger: logging.GetLogger("session")}
	return s.run()
}

func (s *session) run() (*Result, error) {
	if len(s.opts.Profiles) == 0 {
		s.println(MsgNoProfiles)
		s.println(MsgMoreInfo)
		return &Result{Outcome: NoProfiles}, nil
	}

	modsDir, err := core.OpenModsDir(s.opts.FileSystem, s.opts.ModsDir)
	if err != nil {
		return nil, err
	}

	clearOffered := !modsDir.IsEmpty()
	s.println(MsgProfiles)
	if clearOffered {
		s.println(style.ClearLine(modsDir.Count(), s.opts.Styled))
	}
	for i, p := range s.opts.Profiles {
		s.println(style.MenuLine(i+1, p.Name, p.Mods, s.opts.Styled))
	}
	s.println(Divider)
	s.println(MsgSelect)

	number, quit, err := s.readSelection(clearOffered)
	if err != nil {
		return nil, err
	}
	if quit {
		s.println(MsgBye)
		return &Result{Outcome: Quit}, nil
	}

	if number == 0 {
		cleared, err := s.clear()
		if err != nil {
			return nil, err
		}
		return &Result{Outcome: Cleared, Cleared: cleared}, nil
	}

	profile := s.opts.Profiles[number-1]
	s.logger.Info().Str("profile", profile.Name).Msg("Profile selected")
	return s.apply(profile)
}

// readSelection loops until a valid menu number is entered or the user quits
func (s *session) readSelection(clearOffered bool) (int, bool, error) {
	buffered := len(s.opts.Profiles) > 9
	var input []rune

	for {
		key, err := s.readKey()
		if err != nil {
			return 0, false, err
		}

		if key.Kind == keys.KeyEscape || key.Kind == keys.KeyInterrupt || key.Is('q') {
			return 0, true, nil
		}

		var candidate string
		switch {
		case key.Kind == keys.KeyOther:
			continue
		case buffered && key.Kind == keys.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
			continue
		case key.Kind == keys.KeyBackspace:
			continue
		case buffered && key.IsDigit():
			input = append(input, key.Rune)
			s.print(string(key.Rune))
			continue
		case buffered && key.Kind == keys.KeyEnter:
			candidate = string(input)
			input = input[:0]
			s.println("")
		case key.Kind == keys.KeyRune:
			candidate = string(key.Rune)
			if buffered {
				input = input[:0]
				s.println("")
			}
		default:
			candidate = key.String()
		}

		number, err := parseSelection(candidate, len(s.opts.Profiles), clearOffered)
		if err == nil {
			return number, false, nil
		}
		s.logger.Debug().Err(err).Str("input", candidate).Msg("Rejected selection")
		s.println(errors.UserMessage(err))
	}
}

// parseSelection validates menu input. The returned errors carry the exact
// re-prompt text as their message.
func parseSelection(input string, profiles int, clearOffered bool) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrSelectionInvalid, MsgInvalid).WithDetail("input", input)
	}
	if (n == 0 && !clearOffered) || n > profiles {
		return 0, errors.Newf(errors.ErrSelectionOutOfRange, MsgOutOfRange, n).WithDetail("input", input)
	}
	return n, nil
}

func (s *session) clear() (*syncdir.ClearResult, error) {
	cleared, err := core.ClearMods(core.ClearOptions{
		ModsDir:    s.opts.ModsDir,
		DryRun:     s.opts.DryRun,
		FileSystem: s.opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}
	s.println(MsgCleared)
	return cleared, nil
}

func (s *session) apply(profile types.Profile) (*Result, error) {
	result := &Result{Outcome: Applied, Profile: &profile}

	modsDir, err := core.OpenModsDir(s.opts.FileSystem, s.opts.ModsDir)
	if err != nil {
		return nil, err
	}

	if !modsDir.IsEmpty() {
		s.println(MsgConfirmClear)
		key, err := s.readKey()
		if err != nil {
			return nil, err
		}
		if key.Kind == keys.KeyInterrupt {
			s.println(MsgBye)
			return &Result{Outcome: Quit}, nil
		}
		if key.Is('y') {
			cleared, err := s.clear()
			if err != nil {
				return nil, err
			}
			result.Cleared = cleared
		}
	}

	s.println(MsgCopying)
	applied, err := core.ApplyProfile(core.ApplyOptions{
		Profile:    profile,
		ModsDir:    s.opts.ModsDir,
		DryRun:     s.opts.DryRun,
		FileSystem: s.opts.FileSystem,
	})
	if err != nil {
		return nil, err
	}
	result.Applied = applied
	return result, nil
}

func (s *session) readKey() (keys.Key, error) {
	key, err := s.opts.Keys.ReadKey()
	if err != nil {
		if err == io.EOF {
			return keys.Key{}, errors.Wrap(err, errors.ErrInternal, "Input ended before a selection was made.")
		}
		return keys.Key{}, err
	}
	s.logger.Trace().Str("key", key.String()).Msg("Key read")
	return key, nil
}

func (s *session) println(line string) {
	_, _ = fmt.Fprintln(s.opts.Out, line)
}

func (s *session) print(text string) {
	_, _ = fmt.Fprint(s.opts.Out, text)
}
