package style

import (
	"fmt"
	"strconv"
)

// MenuLine renders one numbered menu entry, e.g. "1) Fabric (12 Mods)".
// Markup tags are resolved only when styled is set, so plain output keeps the
// exact text.
func MenuLine(number int, name string, mods int, styled bool) string {
	if !styled {
		return fmt.Sprintf("%d) %s (%d Mods)", number, name, mods)
	}
	return RenderTemplate("[number]{{n}})[/number] [profile]{{name}}[/profile] [mods]({{mods}} Mods)[/mods]", map[string]string{
		"n":    strconv.Itoa(number),
		"name": name,
		"mods": strconv.Itoa(mods),
	})
}

// ClearLine renders the clear-only menu entry shown when the mods directory
// has content
func ClearLine(files int, styled bool) string {
	line := fmt.Sprintf("Clear %d files from directory (No profile selected)", files)
	if !styled {
		return "0) " + line
	}
	return MenuNumberStyle.Render("0)") + " " + WarningStyle.Render(line)
}
