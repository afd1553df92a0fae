// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, kinds and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/jakkoble/modhandler/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "env_missing_error",
			code:    errors.ErrConfigEnvMissing,
			message: "APPDATA environment variable not found",
			wantStr: "[CONFIG_ENV_MISSING] APPDATA environment variable not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSelectionOutOfRange, "There is no profile with the number %d.", 7)
	if err.Message != "There is no profile with the number 7." {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileCopy, "failed copying mods directory")

		if err.Code != errors.ErrFileCopy {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileCopy)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_COPY] failed copying mods directory: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("path", "/test/path").
		WithDetail("type", "file")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if err.Details["type"] != "file" {
		t.Errorf("WithDetail() type = %v, want %v", err.Details["type"], "file")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with ModError")
		}
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Kind
	}{
		{"env_missing_is_configuration", errors.New(errors.ErrConfigEnvMissing, "x"), errors.KindConfiguration},
		{"override_is_configuration", errors.New(errors.ErrConfigOverride, "x"), errors.KindConfiguration},
		{"platform_is_configuration", errors.New(errors.ErrConfigPlatformUnsupported, "x"), errors.KindConfiguration},
		{"copy_is_io", errors.New(errors.ErrFileCopy, "x"), errors.KindIO},
		{"delete_is_io", errors.New(errors.ErrFileDelete, "x"), errors.KindIO},
		{"out_of_range_is_user_input", errors.New(errors.ErrSelectionOutOfRange, "x"), errors.KindUserInput},
		{"invalid_selection_is_user_input", errors.New(errors.ErrSelectionInvalid, "x"), errors.KindUserInput},
		{"wrapped_keeps_kind", errors.Wrap(errors.New(errors.ErrConfigOverride, "x"), errors.ErrConfigOverride, "y"), errors.KindConfiguration},
		{"plain_error_is_io", stderrors.New("boom"), errors.KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if errors.KindConfiguration.String() != "configuration" {
		t.Errorf("unexpected %q", errors.KindConfiguration.String())
	}
	if errors.KindUserInput.String() != "user-input" {
		t.Errorf("unexpected %q", errors.KindUserInput.String())
	}
	if errors.KindIO.String() != "io" {
		t.Errorf("unexpected %q", errors.KindIO.String())
	}
}

func TestUserMessage(t *testing.T) {
	err := errors.Wrap(stderrors.New("permission denied"), errors.ErrFileDelete, "Failed clearing mods directory!")
	if got := errors.UserMessage(err); got != "Failed clearing mods directory!" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain")
	if got := errors.UserMessage(plain); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_mod_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "mod_error",
			err:      errors.New(errors.ErrProfileNotFound, "profile not found"),
			expected: errors.ErrProfileNotFound,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigOverride, "failed to read override file")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigOverride) {
			t.Error("Top level should have ErrConfigOverride code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var modErr *errors.ModError
		if stderrors.As(configErr.Unwrap(), &modErr) {
			if !errors.IsErrorCode(modErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
