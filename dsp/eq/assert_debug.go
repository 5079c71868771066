//go:build eqdebug

package eq

// assertPrecondition turns precondition violations into panics so they
// surface at the offending call site during development.
func assertPrecondition(err error) {
	panic(err)
}
