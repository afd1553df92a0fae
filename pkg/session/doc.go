// Package session runs the interactive menu: list the profiles, read a
// selection one keystroke at a time, then clear and/or copy.
//
// Invalid and out-of-range selections are reported and re-prompted without
// touching the filesystem. Everything else that fails is returned to the
// caller, which decides how to present it. The session never exits the
// process.
package session
