package cssbuild

// Identifier rules and attribute-expression splitting. The builder takes
// fragment values as plain strings, so the checks here are the only syntax
// gate between caller input and the serialized selector.

// nameStart returns whether c can be the first character of an identifier
// (not counting an initial hyphen).
func nameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127
}

// nameChar returns whether c can be a character within an identifier.
func nameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127 ||
		c == '-' || '0' <= c && c <= '9'
}

// validIdentifier reports whether s is a CSS identifier: an optional
// leading hyphen, a name-start character, then name characters.
func validIdentifier(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 || !nameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !nameChar(s[i]) {
			return false
		}
	}
	return true
}

// pseudoName returns the name part of a pseudo-class value, without a
// functional argument: "nth-child(2)" -> "nth-child".
func pseudoName(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '(' {
			return raw[:i]
		}
	}
	return raw
}

// parseAttrExpr splits a raw attribute expression into key, operation and
// value for matching. The raw text is kept for serialization either way;
// an expression that does not split cleanly yields a selector that never
// matches.
func parseAttrExpr(expr string) attrSelector {
	sel := attrSelector{raw: expr}

	i := 0
	for i < len(expr) && nameChar(expr[i]) {
		i++
	}
	if i == 0 {
		return sel
	}
	sel.key = expr[:i]

	if i == len(expr) {
		// bare [key]: attribute presence
		sel.parsed = true
		return sel
	}

	switch expr[i] {
	case '=':
		sel.operation = "="
		i++
	case '~', '|', '^', '$', '*', '!':
		if i+1 >= len(expr) || expr[i+1] != '=' {
			return sel
		}
		sel.operation = expr[i : i+2]
		i += 2
	default:
		return sel
	}

	val := expr[i:]
	if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		val = val[1 : len(val)-1]
	}
	sel.val = val
	sel.parsed = true
	return sel
}
