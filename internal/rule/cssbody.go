package rule

import "github.com/adguardteam/rulekit/internal/cssast"

// ElementHideBody is the body of a plain `##`/`#@#`/`#?#`/`#@?#` cosmetic
// rule: an ordered list of selectors (kept as opaque strings — see
// internal/cssast's package doc for why selectors aren't a typed tree).
type ElementHideBody struct {
	Selectors []string
}

// CSSInjectBody is the body of a CSS-injection cosmetic rule (AdGuard
// `#$#`/`#@$#` or uBO `##:style()`/`##:remove()`). Invariant: if Remove is
// true, Block must be the zero Block (the original declaration block
// contained exactly one declaration whose property was literally
// "remove").
type CSSInjectBody struct {
	MediaQuery    string // empty if absent
	HasMediaQuery bool
	Selectors     []string
	Block         cssast.Block
	HasBlock      bool
	Remove        bool
}

// HTMLFilterBody is the body of an AdGuard `$$`/`$@$` HTML filter. Same
// shape as ElementHideBody; the value-level difference (the `""` <-> `\"`
// escape transcoding) is applied before/after parsing, not represented in
// the node itself.
type HTMLFilterBody struct {
	Selectors []string
}
