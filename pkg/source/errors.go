package source

import "fmt"

// NoVersionsError reports a template that exists in its source but has no
// published versions. It is always surfaced to the caller; no layer
// recovers it locally.
type NoVersionsError struct {
	Name string // requested logical template name
}

// Error implements the error interface.
func (e *NoVersionsError) Error() string {
	return fmt.Sprintf("template %q has no published versions", e.Name)
}
