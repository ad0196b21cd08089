// Token type and component validation.
//
// A token is either a path component or an ascend marker. Components are
// required to be non-empty, so the empty string doubles as the ascend
// marker and no separate tag field is needed.
package pathpack

import "strings"

// Separator is the path separator that components must not contain.
// Joining components into a single string is a caller concern; the
// separator exists here only as a validation constraint.
const Separator = "/"

// AscendName is the reserved component value that means "up one level" in
// rendered form. Components must not equal it.
const AscendName = ".."

// Token is one element of a tree's backing buffer: a path component, or an
// ascend marker when Name is empty.
type Token struct {
	Name string
}

// Ascend is the marker token that pops one component off the path stack.
var Ascend = Token{}

// IsAscend reports whether the token is an ascend marker.
func (t Token) IsAscend() bool {
	return t.Name == ""
}

// checkComponent validates a single path component. Empty components would
// be indistinguishable from the ascend marker, a separator inside a
// component would change meaning when rendered, and the literal ".." would
// read as an ascend.
func checkComponent(name string) error {
	if name == "" || name == AscendName || strings.Contains(name, Separator) {
		return ErrInvalidComponent
	}
	return nil
}
