package cssbuild

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C].
type Specificity [3]uint8

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

func (s Specificity) add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

// The universal element does not contribute to specificity.
func (t tagSelector) Specificity() Specificity {
	if t.tag == "*" {
		return Specificity{0, 0, 0}
	}
	return Specificity{0, 0, 1}
}

func (t idSelector) Specificity() Specificity {
	return Specificity{1, 0, 0}
}

func (t classSelector) Specificity() Specificity {
	return Specificity{0, 1, 0}
}

func (t attrSelector) Specificity() Specificity {
	return Specificity{0, 1, 0}
}

func (s pseudoClassSelector) Specificity() Specificity {
	return Specificity{0, 1, 0}
}

func (t compoundSelector) Specificity() Specificity {
	var out Specificity
	for _, sel := range t.selectors {
		out = out.add(sel.Specificity())
	}
	if t.pseudoElement != "" {
		out = out.add(Specificity{0, 0, 1})
	}
	return out
}

func (t combinedSelector) Specificity() Specificity {
	s := t.first.Specificity()
	if t.second != nil {
		s = s.add(t.second.Specificity())
	}
	return s
}
