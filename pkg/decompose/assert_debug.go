//go:build debug

package decompose

import "fmt"

// checkDeficitInvariant is compiled into debug builds (`go build -tags
// debug`). A deficit mismatch there indicates corrupt graph bookkeeping
// rather than a recoverable condition, so it panics immediately with the
// offending values rather than letting analysis continue on bad state.
func checkDeficitInvariant(parent, g1, g2 int) error {
	if g1+g2 != parent {
		panic(fmt.Sprintf("decompose: deficit invariant violated: parent=%d g1=%d g2=%d", parent, g1, g2))
	}
	return nil
}
