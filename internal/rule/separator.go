package rule

// Separator is an enumerated constant, one per recognized cosmetic/network
// separator literal. Each carries its literal text, whether it is an
// exception form (the '@' in position 2), and the dialect hint it implies
// (Common if the separator doesn't narrow the dialect by itself).
type Separator struct {
	Literal   string
	Exception bool
	Hint      Dialect
}

// The trie entries, exhaustively. AllSeparators below lists them
// longest-literal-first within a shared prefix so a naive linear scan
// during tests also picks the most specific entry, matching the locator's
// own tie-break rule.
var (
	SepElemHide           = Separator{"##", false, Common}
	SepElemHideException  = Separator{"#@#", true, Common}
	SepElemHideJS         = Separator{"##+js", false, UblockOrigin}
	SepElemHideJSException = Separator{"#@#+js", true, UblockOrigin}
	SepHTMLFilter         = Separator{"##^", false, Common}
	SepHTMLFilterException = Separator{"#@#^", true, Common}
	SepJS                 = Separator{"#%#", false, AdGuard}
	SepJSException        = Separator{"#@%#", true, AdGuard}
	SepScriptlet          = Separator{"#%#//scriptlet", false, AdGuard}
	SepScriptletException = Separator{"#@%#//scriptlet", true, AdGuard}
	SepCss                = Separator{"#$#", false, Common}
	SepCssException       = Separator{"#@$#", true, Common}
	SepExtCSS             = Separator{"#?#", false, Common}
	SepExtCSSException    = Separator{"#@?#", true, Common}
	SepExtCss2            = Separator{"#$?#", false, Common}
	SepExtCss2Exception   = Separator{"#@$?#", true, Common}
	SepHTML               = Separator{"$$", false, AdGuard}
	SepHTMLException      = Separator{"$@$", true, AdGuard}
)

// AllSeparators is the trie, longest-and-most-specific-first.
var AllSeparators = []Separator{
	SepScriptletException,
	SepScriptlet,
	SepElemHideJSException,
	SepElemHideJS,
	SepHTMLFilterException,
	SepHTMLFilter,
	SepExtCss2Exception,
	SepExtCss2,
	SepCssException,
	SepCss,
	SepExtCSSException,
	SepExtCSS,
	SepJSException,
	SepJS,
	SepElemHideException,
	SepElemHide,
	SepHTMLException,
	SepHTML,
}
