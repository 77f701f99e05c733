package assert

import "github.com/oomph-ac/blocksupport/oerror"

// IsTrue panics with an oerror.Error if ok is false. It guards invariants that can only be broken by a
// programming mistake, such as registering the built-in catalog twice.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
