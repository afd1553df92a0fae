// Package syncdir implements the directory operations behind applying a
// profile: a lazy, stack-based walk that pairs every source path with its
// destination, a recursive copy built on that walk, and a recursive clear that
// empties a directory without removing it.
//
// None of the operations are transactional. An interrupted copy or clear
// leaves the destination partially modified.
package syncdir
