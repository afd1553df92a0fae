// Package json writes command views as indented JSON for scripts driving
// modhandler.
package json

import (
	"encoding/json"
	"io"

	"github.com/jakkoble/modhandler/pkg/errors"
)

// errorView is the JSON shape of a failed command
type errorView struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Kind  string `json:"kind"`
}

type messageView struct {
	Message string `json:"message"`
}

// Renderer encodes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New returns a renderer writing to w
func New(w io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes a display view as is; field names come from its tags
func (r *Renderer) RenderResult(view interface{}) error {
	return r.encoder.Encode(view)
}

// RenderError reports the user message with its code and kind, so callers
// can tell a bad selection from a missing mods directory
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorView{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetErrorCode(err)),
		Kind:  errors.KindOf(err).String(),
	})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(messageView{Message: msg})
}
