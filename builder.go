package cssbuild

import "fmt"

// fragment is the kind of the most recently appended selector fragment.
// The declaration order is the required append order.
type fragment int

const (
	fragmentNone fragment = iota
	fragmentElement
	fragmentID
	fragmentClass
	fragmentAttr
	fragmentPseudoClass
	fragmentPseudoElement
)

// A Builder accumulates the fragments of one compound selector. Append
// operations return the builder for chaining; the first validation failure
// is recorded and reported by Err, Build and String.
//
// Fragments must be appended in the order element, id, class, attribute,
// pseudo-class, pseudo-element. Class, attribute and pseudo-class fragments
// may repeat; element, id and pseudo-element may not.
//
// A Builder is scoped to one build session: Build and String reset it to
// its initial empty state. It is not safe for concurrent use.
type Builder struct {
	selectors     []Sel
	pseudoElement string
	last          fragment
	err           error
}

// NewBuilder returns an empty builder for one build session.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) record(err error) {
	if b.err == nil {
		b.err = err
	}
}

// check validates appending a fragment of the given kind against the last
// appended kind and advances the kind tracker. An ordering failure resets
// the tracker to none, so validation restarts from the beginning on the
// next append; the accumulated fragments are untouched.
func (b *Builder) check(kind fragment) bool {
	if kind == b.last {
		switch kind {
		case fragmentElement, fragmentID, fragmentPseudoElement:
			b.record(ErrDuplicateFragment)
			return false
		}
	}
	if kind < b.last {
		b.last = fragmentNone
		b.record(ErrOrderViolation)
		return false
	}
	b.last = kind
	return true
}

// Element appends an element-type fragment. The universal element "*" is
// accepted.
func (b *Builder) Element(name string) *Builder {
	if name != "*" && !validIdentifier(name) {
		b.record(fmt.Errorf("%w: %q", ErrInvalidIdentifier, name))
		return b
	}
	if b.check(fragmentElement) {
		b.selectors = append(b.selectors, tagSelector{tag: name})
	}
	return b
}

// ID appends an id fragment, serialized as "#value".
func (b *Builder) ID(value string) *Builder {
	if !validIdentifier(value) {
		b.record(fmt.Errorf("%w: %q", ErrInvalidIdentifier, value))
		return b
	}
	if b.check(fragmentID) {
		b.selectors = append(b.selectors, idSelector{id: value})
	}
	return b
}

// Class appends a class fragment, serialized as ".value".
func (b *Builder) Class(value string) *Builder {
	if !validIdentifier(value) {
		b.record(fmt.Errorf("%w: %q", ErrInvalidIdentifier, value))
		return b
	}
	if b.check(fragmentClass) {
		b.selectors = append(b.selectors, classSelector{class: value})
	}
	return b
}

// Attr appends an attribute fragment. expr is the raw attribute expression
// (e.g. `href$=".png"`) and is serialized verbatim inside brackets. When
// the expression splits into key, operation and value it also participates
// in matching.
func (b *Builder) Attr(expr string) *Builder {
	if b.check(fragmentAttr) {
		b.selectors = append(b.selectors, parseAttrExpr(expr))
	}
	return b
}

// PseudoClass appends a pseudo-class fragment, serialized as ":value".
func (b *Builder) PseudoClass(value string) *Builder {
	if !validIdentifier(pseudoName(value)) {
		b.record(fmt.Errorf("%w: %q", ErrInvalidIdentifier, value))
		return b
	}
	if b.check(fragmentPseudoClass) {
		b.selectors = append(b.selectors, newPseudoClass(value))
	}
	return b
}

// PseudoElement appends a pseudo-element fragment, serialized as "::value".
func (b *Builder) PseudoElement(value string) *Builder {
	if !validIdentifier(value) {
		b.record(fmt.Errorf("%w: %q", ErrInvalidIdentifier, value))
		return b
	}
	if b.check(fragmentPseudoElement) {
		b.pseudoElement = value
	}
	return b
}

// Err returns the first validation failure recorded during this build
// session, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Build finalizes the accumulated fragments into an immutable compound
// selector and resets the builder for a new session. If a validation
// failure was recorded it is returned instead.
func (b *Builder) Build() (Sel, error) {
	sel := compoundSelector{
		selectors:     b.selectors,
		pseudoElement: b.pseudoElement,
	}
	err := b.err
	*b = Builder{}
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// String finalizes the accumulated fragments into selector text and resets
// the builder for a new session.
func (b *Builder) String() (string, error) {
	sel, err := b.Build()
	if err != nil {
		return "", err
	}
	return sel.String(), nil
}
