package cssbuild

import "strings"

// implements the reverse operation Sel -> string

func (t tagSelector) String() string {
	return t.tag
}

func (t idSelector) String() string {
	return "#" + t.id
}

func (t classSelector) String() string {
	return "." + t.class
}

func (t attrSelector) String() string {
	return "[" + t.raw + "]"
}

func (s pseudoClassSelector) String() string {
	return ":" + s.raw
}

func (t compoundSelector) String() string {
	chunks := make([]string, len(t.selectors))
	for i, sel := range t.selectors {
		chunks[i] = sel.String()
	}
	s := strings.Join(chunks, "")
	if t.pseudoElement != "" {
		s += "::" + t.pseudoElement
	}
	return s
}

// The combinator is rendered with one leading and one trailing space, the
// descendant combinator included.
func (t combinedSelector) String() string {
	s := t.first.String()
	if t.second != nil {
		s += " " + string(t.combinator) + " " + t.second.String()
	}
	return s
}
