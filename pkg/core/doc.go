// Package core orchestrates the two things modhandler does to the mods
// directory: apply a profile (optionally clearing first) and clear it.
//
// Functions here take everything they need through option structs. They
// return errors and never print or exit; presentation belongs to the caller.
package core
