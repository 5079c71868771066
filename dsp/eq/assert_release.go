//go:build !eqdebug

package eq

// assertPrecondition is a no-op in release builds; the caller reports err.
func assertPrecondition(error) {}
