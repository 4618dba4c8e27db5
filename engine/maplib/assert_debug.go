//go:build debug

package maplib

// inconsistent handles an index entry that has no position.
// In debug builds this is a programming error.
func inconsistent(msg string) {
	panic("maplib: inconsistent index: " + msg)
}
