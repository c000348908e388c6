package rule

// Domain is one entry of a domain list. Invariant: Name is non-empty;
// Exception is true iff the source form began with '~'.
type Domain struct {
	Name      string
	Exception bool
}

// DomainListSeparator is the separator character joining a domain list's
// fragments: ',' for cosmetic rules, '|' for network $domain= modifiers.
type DomainListSeparator rune

const (
	DomainSepComma DomainListSeparator = ','
	DomainSepPipe  DomainListSeparator = '|'
)

// DomainList preserves input order: regeneration depends on it.
type DomainList struct {
	Separator DomainListSeparator
	Domains   []Domain
}

// Empty reports whether the list has no entries.
func (l DomainList) Empty() bool { return len(l.Domains) == 0 }
