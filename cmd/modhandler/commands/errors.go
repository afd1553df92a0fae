package commands

import (
	"io"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/ui"
)

// ReportError is the top-level handler for non-interactive commands. The
// error is logged with its code and details and shown to the user once.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	logger := logging.GetLogger("cmd")
	logger.Debug().
		Err(err).
		Str("kind", errors.KindOf(err).String()).
		Str("code", string(errors.GetErrorCode(err))).
		Interface("details", errors.GetErrorDetails(err)).
		Msg("Command failed")

	renderer, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr != nil {
		_, _ = io.WriteString(w, "Error: "+errors.UserMessage(err)+"\n")
		return
	}
	_ = renderer.RenderError(err)
}
