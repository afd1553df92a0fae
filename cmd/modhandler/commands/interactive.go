package commands

import (
	"fmt"
	"io"

	"github.com/jakkoble/modhandler/internal/version"
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/session"
	"github.com/jakkoble/modhandler/pkg/ui"
	"github.com/jakkoble/modhandler/pkg/ui/keys"
	"github.com/spf13/cobra"
)

// runInteractive is the top-level handler of the menu. Every error from
// loading or the session ends up here, is shown once, and the window stays
// open until a key is pressed. It always exits cleanly.
func runInteractive(cmd *cobra.Command, opts *globalOptions, dryRun bool) error {
	logger := logging.GetLogger("cmd.interactive")
	out := cmd.OutOrStdout()
	styled := isStyled(out)
	reader := newKeyReader(cmd.InOrStdin())

	// Without a configuration only the flag can say whether to pause
	pause := !opts.noPause
	cfg, root, err := loadConfig(opts)
	if err == nil {
		pause = cfg.UI.PauseOnExit
		if cfg.UI.Banner {
			_, _ = fmt.Fprintln(out, ui.Banner(version.Version, styled))
		}
		var a *app
		if a, err = newApp(cfg, root); err == nil {
			err = runSession(a, reader, out, styled, dryRun)
		}
	}

	if err != nil {
		logger.Error().
			Err(err).
			Str("kind", errors.KindOf(err).String()).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Interactive session failed")
		_, _ = fmt.Fprintf(out, MsgErrorFormat+"\n", errors.UserMessage(err))
		if pause {
			_, _ = fmt.Fprintln(out, MsgPressAnyKey)
		}
	} else if pause {
		_, _ = fmt.Fprintln(out, MsgDone)
	} else {
		_, _ = fmt.Fprintln(out, MsgDoneNoPause)
	}

	if pause {
		waitForKey(reader)
	}
	return nil
}

func runSession(a *app, reader keys.Reader, out io.Writer, styled, dryRun bool) error {
	logger := logging.GetLogger("cmd.interactive")

	catalog, err := a.catalog()
	if err != nil {
		return err
	}

	result, err := session.Run(session.Options{
		Profiles:   catalog,
		ModsDir:    a.paths.ModsDir(),
		FileSystem: a.fs,
		Keys:       reader,
		Out:        out,
		Styled:     styled,
		DryRun:     dryRun,
	})
	if err != nil {
		return err
	}

	event := logger.Info().Str("outcome", result.Outcome.String())
	if result.Profile != nil {
		event = event.Str("profile", result.Profile.Name)
	}
	if result.Applied != nil {
		event = event.Int("files", result.Applied.Copied.Files).Int64("bytes", result.Applied.Copied.Bytes)
	}
	event.Msg("Interactive session finished")

	if dryRun && result.Outcome != session.Quit && result.Outcome != session.NoProfiles {
		_, _ = fmt.Fprintln(out, MsgDryRunNotice)
	}
	return nil
}

// waitForKey blocks for one key press. A closed input counts as a key.
func waitForKey(reader keys.Reader) {
	_, _ = reader.ReadKey()
}
