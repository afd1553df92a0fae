package ui

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const plainLogo = `
  __  __           _ _   _                 _ _
 |  \/  | ___   __| | | | | __ _ _ __   __| | | ___ _ __
 | |\/| |/ _ \ / _` + "`" + ` | |_| |/ _` + "`" + ` | '_ \ / _` + "`" + ` | |/ _ \ '__|
 | |  | | (_) | (_| |  _  | (_| | | | | (_| | |  __/ |
 |_|  |_|\___/ \__,_|_| |_|\__,_|_| |_|\__,_|_|\___|_|
`

// ProjectURL is where users are sent for help
const ProjectURL = "https://github.com/jakkoble/ModHandler"

// Banner returns the header printed before the interactive menu
func Banner(version string, styled bool) string {
	logo := plainLogo
	if styled {
		if big, err := pterm.DefaultBigText.WithLetters(putils.LettersFromString("ModHandler")).Srender(); err == nil {
			logo = big
		}
	}

	tagline := "Your simple Minecraft Mod Manager."
	if styled {
		tagline = pterm.Bold.Sprint(tagline)
	}

	var b strings.Builder
	b.WriteString(logo)
	b.WriteString("\n")
	b.WriteString(tagline + "\n")
	b.WriteString("Version: " + version + "\n\n")
	b.WriteString("If you have any questions or problems, please visit: " + ProjectURL + "\n")
	return b.String()
}
