//go:build !debug

package decompose

// checkDeficitInvariant is compiled into ordinary (release) builds. A
// deficit mismatch there is surfaced as an ordinary error so that library
// callers never observe a panic from this package; see assert_debug.go
// for the debug-build variant, and Open Question (b) in spec.md §9.
func checkDeficitInvariant(parent, g1, g2 int) error {
	if g1+g2 != parent {
		return ErrStructuralCorruption
	}
	return nil
}
