// Package rule holds the shared AST vocabulary every rulekit parser
// produces and every generator consumes: dialects, separators, domain and
// modifier lists, and the cosmetic/network rule node types themselves.
// Nodes are immutable once constructed and strictly tree-shaped.
package rule

// Dialect is a tagged value drawn from {Common, AdGuard, UblockOrigin,
// AdblockPlus}. Common means "syntactically valid in more than one
// dialect; not yet narrowed." Within a single parse call a Dialect only
// ever narrows (Common -> one of the other three), never broadens.
type Dialect int

const (
	Common Dialect = iota
	AdGuard
	UblockOrigin
	AdblockPlus
)

func (d Dialect) String() string {
	switch d {
	case AdGuard:
		return "AdGuard"
	case UblockOrigin:
		return "UblockOrigin"
	case AdblockPlus:
		return "AdblockPlus"
	default:
		return "Common"
	}
}

// Category distinguishes cosmetic rules from network rules.
type Category int

const (
	Cosmetic Category = iota
	Network
)

func (c Category) String() string {
	if c == Network {
		return "Network"
	}
	return "Cosmetic"
}

// CosmeticType discriminates the five cosmetic rule bodies rulekit knows
// how to parse and regenerate.
type CosmeticType int

const (
	ElementHide CosmeticType = iota
	CssInject
	Scriptlet
	Html
	Js
)

func (t CosmeticType) String() string {
	switch t {
	case CssInject:
		return "CssInject"
	case Scriptlet:
		return "Scriptlet"
	case Html:
		return "Html"
	case Js:
		return "Js"
	default:
		return "ElementHide"
	}
}
