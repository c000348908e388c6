package rule

// Modifier is one `[~]name[=value]` entry of a modifier list. Not is used
// only by uBO procedural modifiers (negated via :not(...) wrapping); for
// every other modifier kind it is left false.
type Modifier struct {
	Name      string
	Value     string
	HasValue  bool
	Exception bool
	Not       bool
}

// ModifierList is an ordered sequence of Modifier.
type ModifierList []Modifier

// Empty reports whether the list has no entries.
func (l ModifierList) Empty() bool { return len(l) == 0 }

// AdgModifierBlock is the result of extracting a `[$...]` prefix block from
// a cosmetic pattern: the parsed modifiers plus the remainder of the
// pattern after the closing ']'.
type AdgModifierBlock struct {
	Modifiers ModifierList
	Rest      string
}

// ProceduralBlock is the result of lifting uBO `:name(...)`-style pseudos
// out of a CSS selector: the lifted modifiers (with Not flags set where
// applicable) plus the selector with those pseudos elided.
type ProceduralBlock struct {
	Modifiers ModifierList
	Rest      string
}
