// Package must turns (value, error) results into panics, for callers
// that treat the error as a programming mistake.
package must

// Must2 returns p1, or panics with err if it is not nil.
// It is meant to wrap a call directly:
//
//	v := must.Must2(m.At(k))
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
