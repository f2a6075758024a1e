// Package cssbuild assembles CSS selectors programmatically.
//
// A Builder accumulates the fragments of one compound selector, enforcing
// the fragment ordering and multiplicity rules of the selector grammar, and
// finalizes them into an immutable Sel. Sels can be joined with Combine and
// matched against html.Node trees or serialized back to selector text.
package cssbuild

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Matcher is the interface for all selectors.
type Matcher interface {
	Match(*html.Node) bool
}

// Sel is a built selector: it matches nodes, serializes to selector text,
// and reports its specificity.
type Sel interface {
	Matcher
	String() string
	Specificity() Specificity
}

// Combinators accepted by Combine.
const (
	Descendant      byte = ' '
	Child           byte = '>'
	AdjacentSibling byte = '+'
	GeneralSibling  byte = '~'
)

// Combine joins two built selectors with a combinator. The operands are not
// modified; the result is a new selector wrapping both.
func Combine(first Sel, combinator byte, second Sel) Sel {
	return combinedSelector{first: first, combinator: combinator, second: second}
}

// A Selector is a function which tells whether a node matches or not.
type Selector func(*html.Node) bool

// Match returns true if the node matches the selector.
func (s Selector) Match(n *html.Node) bool {
	return s(n)
}

// MatchAll returns a slice of the nodes that match the selector,
// from n and its children.
func (s Selector) MatchAll(n *html.Node) []*html.Node {
	return s.matchAllInto(n, nil)
}

func (s Selector) matchAllInto(n *html.Node, storage []*html.Node) []*html.Node {
	if s(n) {
		storage = append(storage, n)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		storage = s.matchAllInto(child, storage)
	}

	return storage
}

// MatchFirst returns the first node that matches s, from n and its children.
func (s Selector) MatchFirst(n *html.Node) *html.Node {
	if s.Match(n) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		m := s.MatchFirst(c)
		if m != nil {
			return m
		}
	}
	return nil
}

// Filter returns the nodes in nodes that match the selector.
func (s Selector) Filter(nodes []*html.Node) (result []*html.Node) {
	for _, n := range nodes {
		if s(n) {
			result = append(result, n)
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// -------------------------- Low - level selectors --------------------------
// ---------------------------------------------------------------------------

type tagSelector struct {
	tag string
}

// Matches elements with a given tag name. The universal tag "*" matches
// every element.
func (t tagSelector) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return t.tag == "*" || n.Data == t.tag
}

type idSelector struct {
	id string
}

// Matches elements by id attribute.
func (t idSelector) Match(n *html.Node) bool {
	return matchAttribute(n, "id", func(s string) bool {
		return s == t.id
	})
}

type classSelector struct {
	class string
}

// Matches elements whose class list includes the class.
func (t classSelector) Match(n *html.Node) bool {
	return matchAttribute(n, "class", func(s string) bool {
		return matchInclude(t.class, s)
	})
}

// attrSelector carries both the raw expression (serialized verbatim) and
// its parsed form (used for matching). parsed is false when the raw
// expression did not split into key/operation/value; such a selector still
// serializes but never matches.
type attrSelector struct {
	raw                 string
	key, val, operation string
	parsed              bool
}

// Matches elements by attribute value.
func (t attrSelector) Match(n *html.Node) bool {
	if !t.parsed {
		return false
	}
	switch t.operation {
	case "":
		return matchAttribute(n, t.key, func(string) bool { return true })
	case "=":
		return matchAttribute(n, t.key, func(s string) bool { return s == t.val })
	case "!=":
		return attributeNotEqualMatch(t.key, t.val, n)
	case "~=":
		// matches elements where the attribute named key is a whitespace-separated list that includes val.
		return matchAttribute(n, t.key, func(s string) bool { return matchInclude(t.val, s) })
	case "|=":
		return attributeDashMatch(t.key, t.val, n)
	case "^=":
		return attributePrefixMatch(t.key, t.val, n)
	case "$=":
		return attributeSuffixMatch(t.key, t.val, n)
	case "*=":
		return attributeSubstringMatch(t.key, t.val, n)
	default:
		panic(fmt.Sprintf("unsupported operation : %s", t.operation))
	}
}

// matches elements where the attribute named key satisfies the function f.
func matchAttribute(n *html.Node, key string, f func(string) bool) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key && f(a.Val) {
			return true
		}
	}
	return false
}

// attributeNotEqualMatch matches elements where
// the attribute named key does not have the value val.
func attributeNotEqualMatch(key, val string, n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key && a.Val == val {
			return false
		}
	}
	return true
}

// returns true if s is a whitespace-separated list that includes val.
func matchInclude(val, s string) bool {
	for s != "" {
		i := strings.IndexAny(s, " \t\r\n\f")
		if i == -1 {
			return s == val
		}
		if s[:i] == val {
			return true
		}
		s = s[i+1:]
	}
	return false
}

// matches elements where the attribute named key equals val or starts with val plus a hyphen.
func attributeDashMatch(key, val string, n *html.Node) bool {
	return matchAttribute(n, key,
		func(s string) bool {
			if s == val {
				return true
			}
			if len(s) <= len(val) {
				return false
			}
			if s[:len(val)] == val && s[len(val)] == '-' {
				return true
			}
			return false
		})
}

// attributePrefixMatch matches elements where
// the attribute named key starts with val.
func attributePrefixMatch(key, val string, n *html.Node) bool {
	return matchAttribute(n, key,
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			return strings.HasPrefix(s, val)
		})
}

// attributeSuffixMatch matches elements where
// the attribute named key ends with val.
func attributeSuffixMatch(key, val string, n *html.Node) bool {
	return matchAttribute(n, key,
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			return strings.HasSuffix(s, val)
		})
}

// attributeSubstringMatch matches nodes where
// the attribute named key contains val.
func attributeSubstringMatch(key, val string, n *html.Node) bool {
	return matchAttribute(n, key,
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			return strings.Contains(s, val)
		})
}

// ---------------- Pseudo class selectors ----------------

// pseudoClassSelector keeps the raw pseudo-class text for serialization and
// a concrete matcher for the structural pseudo-classes. Pseudo-classes
// outside the structural set (:focus, :hover, ...) have no matcher and
// never match; they only serialize.
type pseudoClassSelector struct {
	raw   string
	match func(*html.Node) bool
}

func (s pseudoClassSelector) Match(n *html.Node) bool {
	return s.match != nil && s.match(n)
}

// newPseudoClass builds the selector node for a raw pseudo-class value such
// as "first-child" or "nth-child(2)", attaching a matcher when the
// pseudo-class is structural.
func newPseudoClass(raw string) pseudoClassSelector {
	name, arg := raw, ""
	if i := strings.IndexByte(raw, '('); i >= 0 && strings.HasSuffix(raw, ")") {
		name, arg = raw[:i], raw[i+1:len(raw)-1]
	}

	sel := pseudoClassSelector{raw: raw}
	switch name {
	case "first-child":
		sel.match = func(n *html.Node) bool { return simpleNthChildMatch(1, false, n) }
	case "last-child":
		sel.match = func(n *html.Node) bool { return simpleNthLastChildMatch(1, false, n) }
	case "first-of-type":
		sel.match = func(n *html.Node) bool { return simpleNthChildMatch(1, true, n) }
	case "last-of-type":
		sel.match = func(n *html.Node) bool { return simpleNthLastChildMatch(1, true, n) }
	case "only-child":
		sel.match = func(n *html.Node) bool { return onlyChildMatch(false, n) }
	case "only-of-type":
		sel.match = func(n *html.Node) bool { return onlyChildMatch(true, n) }
	case "empty":
		sel.match = emptyElementMatch
	case "root":
		sel.match = rootMatch
	case "input":
		sel.match = inputMatch
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		b, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			// an+b arguments serialize but do not match
			break
		}
		last := strings.HasPrefix(name, "nth-last")
		ofType := strings.HasSuffix(name, "of-type")
		if last {
			sel.match = func(n *html.Node) bool { return simpleNthLastChildMatch(b, ofType, n) }
		} else {
			sel.match = func(n *html.Node) bool { return simpleNthChildMatch(b, ofType, n) }
		}
	}
	return sel
}

// simpleNthChildMatch implements :nth-child(b).
// If ofType is true, implements :nth-of-type instead.
func simpleNthChildMatch(b int, ofType bool, n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	parent := n.Parent
	if parent == nil {
		return false
	}

	if parent.Type == html.DocumentNode {
		return false
	}

	count := 0
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (ofType && c.Data != n.Data) {
			continue
		}
		count++
		if c == n {
			return count == b
		}
		if count >= b {
			return false
		}
	}
	return false
}

// simpleNthLastChildMatch implements :nth-last-child(b).
// If ofType is true, implements :nth-last-of-type instead.
func simpleNthLastChildMatch(b int, ofType bool, n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	parent := n.Parent
	if parent == nil {
		return false
	}

	if parent.Type == html.DocumentNode {
		return false
	}

	count := 0
	for c := parent.LastChild; c != nil; c = c.PrevSibling {
		if c.Type != html.ElementNode || (ofType && c.Data != n.Data) {
			continue
		}
		count++
		if c == n {
			return count == b
		}
		if count >= b {
			return false
		}
	}
	return false
}

// onlyChildMatch implements :only-child.
// If ofType is true, it implements :only-of-type instead.
func onlyChildMatch(ofType bool, n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	parent := n.Parent
	if parent == nil {
		return false
	}

	if parent.Type == html.DocumentNode {
		return false
	}

	count := 0
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if (c.Type != html.ElementNode) || (ofType && c.Data != n.Data) {
			continue
		}
		count++
		if count > 1 {
			return false
		}
	}

	return count == 1
}

// Matches input, select, textarea and button elements.
func inputMatch(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "input" || n.Data == "select" || n.Data == "textarea" || n.Data == "button")
}

// Matches empty elements.
func emptyElementMatch(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode, html.TextNode:
			return false
		}
	}

	return true
}

// rootMatch implements :root.
func rootMatch(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.Parent == nil {
		return false
	}
	return n.Parent.Type == html.DocumentNode
}

// ---------------- Compound and combined selectors ----------------

type compoundSelector struct {
	selectors     []Sel
	pseudoElement string
}

// PseudoElement returns the compound's pseudo-element, if any.
func (t compoundSelector) PseudoElement() string {
	return t.pseudoElement
}

// Matches elements if each sub-selector matches. The pseudo-element does
// not participate in matching.
func (t compoundSelector) Match(n *html.Node) bool {
	if len(t.selectors) == 0 {
		return n.Type == html.ElementNode
	}

	for _, sel := range t.selectors {
		if !sel.Match(n) {
			return false
		}
	}
	return true
}

type combinedSelector struct {
	first      Sel
	combinator byte
	second     Sel
}

func (t combinedSelector) Match(n *html.Node) bool {
	if t.first == nil {
		return false // maybe we should panic
	}
	switch t.combinator {
	case 0:
		return t.first.Match(n)
	case Descendant:
		return descendantMatch(t.first, t.second, n)
	case Child:
		return childMatch(t.first, t.second, n)
	case AdjacentSibling:
		return siblingMatch(t.first, t.second, true, n)
	case GeneralSibling:
		return siblingMatch(t.first, t.second, false, n)
	default:
		panic("unknown combinator")
	}
}

// matches an element if it matches d and has an ancestor that matches a.
func descendantMatch(a, d Matcher, n *html.Node) bool {
	if !d.Match(n) {
		return false
	}

	for p := n.Parent; p != nil; p = p.Parent {
		if a.Match(p) {
			return true
		}
	}

	return false
}

// matches an element if it matches d and its parent matches a.
func childMatch(a, d Matcher, n *html.Node) bool {
	return d.Match(n) && n.Parent != nil && a.Match(n.Parent)
}

// matches an element if it matches s2 and is preceded by an element that matches s1.
// If adjacent is true, the sibling must be immediately before the element.
func siblingMatch(s1, s2 Matcher, adjacent bool, n *html.Node) bool {
	if !s2.Match(n) {
		return false
	}

	if adjacent {
		for n = n.PrevSibling; n != nil; n = n.PrevSibling {
			if n.Type == html.TextNode || n.Type == html.CommentNode {
				continue
			}
			return s1.Match(n)
		}
		return false
	}

	// Walk backwards looking for element that matches s1
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if s1.Match(c) {
			return true
		}
	}

	return false
}
