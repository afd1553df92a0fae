// Package paths resolves every location modhandler works with: the root
// directory, the profiles directory, the override file and the Minecraft mods
// directory. Resolution happens once at startup and produces an immutable
// Paths value; nothing downstream reads the environment or the working
// directory again.
package paths
