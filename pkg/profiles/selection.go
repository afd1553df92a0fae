package profiles

import (
	"strconv"
	"strings"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// Find looks a profile up by its 1-based menu number or by exact name.
// A number wins over a profile whose name happens to be that number.
func Find(profiles []types.Profile, selector string) (types.Profile, error) {
	logger := logging.GetLogger("profiles.selection")
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return types.Profile{}, errors.New(errors.ErrInvalidInput, "No profile given.")
	}

	if n, err := strconv.Atoi(selector); err == nil {
		if n >= 1 && n <= len(profiles) {
			logger.Trace().Int("number", n).Str("name", profiles[n-1].Name).Msg("Selected profile")
			return profiles[n-1], nil
		}
		if !hasName(profiles, selector) {
			return types.Profile{}, errors.Newf(errors.ErrSelectionOutOfRange, "There is no profile with the number %d.", n).
				WithDetail("available", GetProfileNames(profiles))
		}
	}

	for _, p := range profiles {
		if p.Name == selector {
			logger.Trace().Str("name", p.Name).Msg("Selected profile")
			return p, nil
		}
	}

	return types.Profile{}, errors.Newf(errors.ErrProfileNotFound, "There is no profile named %q.", selector).
		WithDetail("available", GetProfileNames(profiles))
}

func hasName(profiles []types.Profile, name string) bool {
	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// GetProfileNames returns a list of profile names
func GetProfileNames(profiles []types.Profile) []string {
	names := make([]string, len(profiles))
	for i, profile := range profiles {
		names[i] = profile.Name
	}
	return names
}
