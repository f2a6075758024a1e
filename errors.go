package cssbuild

import "errors"

// Builder validation failures. They are reported by Err, Build and String,
// and callers check them with errors.Is.
var (
	// ErrDuplicateFragment is reported when an element, id or
	// pseudo-element fragment occurs more than one time inside a compound
	// selector.
	ErrDuplicateFragment = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOrderViolation is reported when selector fragments are appended
	// out of order. The required order is: element, id, class, attribute,
	// pseudo-class, pseudo-element.
	ErrOrderViolation = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrInvalidIdentifier is reported when a fragment value is not a
	// valid CSS identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
