// Package cssast is rulekit's CSS capability: a thin wrapper around the
// real CSS tokenizer/grammar parser from github.com/tdewolff/parse/v2/css,
// reshaped into the small typed surface the rest of rulekit needs
// (declaration blocks and media queries). No tdewolff type crosses this
// package's boundary; callers only ever see Declaration/Block/string.
//
// Selectors themselves are carried as annotated strings rather than a full
// parsed tree: rulekit's own grammar only ever needs to split selector
// lists and hand selector text back out unchanged, so a typed selector
// tree would be pure overhead.
package cssast

import (
	"bytes"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is one `property: value` pair from a CSS declaration block.
type Declaration struct {
	Property string
	Value    string
}

// Block is a parsed declaration list. It carries no domain knowledge of
// the adblock-specific `remove` sentinel property — that interpretation
// belongs to internal/cssbody, which is the actual domain caller.
type Block struct {
	Declarations []Declaration
}

// Parser is the CSS capability's entry point. The zero value is usable;
// NewParser lets a caller attach a logger for debug tracing of grammar
// events, the way rupor-github-fb2cng's css.Parser does.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a Parser. A nil logger is replaced with a no-op one.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("cssast")}
}

// Default is the package-level parser used by the free functions below,
// for callers that don't care about CSS-capability tracing.
var Default = NewParser(nil)

// ParseDeclarationBlock parses raw "prop: value; prop2: value2" text (no
// surrounding braces) into a Block.
func ParseDeclarationBlock(input string) (Block, error) { return Default.ParseDeclarationBlock(input) }

// ParseMediaQuery validates and normalizes a raw `@media (...)` query body
// (the text between `@media` and the opening `{`).
func ParseMediaQuery(input string) (string, error) { return Default.ParseMediaQuery(input) }

// ParseDeclarationBlock is the Parser method behind the free function of
// the same name. It wraps input in a synthetic ruleset (`*{ input }`) so
// tdewolff's stylesheet-grammar parser — which only understands rulesets,
// not bare declaration lists — can be reused unchanged.
func (p *Parser) ParseDeclarationBlock(input string) (Block, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Block{}, nil
	}
	synthetic := "*{" + input + "}"
	lex := parse.NewInput(bytes.NewReader([]byte(synthetic)))
	parser := css.NewParser(lex, false)

	var block Block
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("declaration block parse error", zap.Error(err), zap.String("input", input))
				return block, fmt.Errorf("cssast: %w", err)
			}
			return block, nil
		case css.DeclarationGrammar:
			prop := strings.TrimSpace(string(data))
			block.Declarations = append(block.Declarations, Declaration{
				Property: prop,
				Value:    joinValueTokens(parser.Values()),
			})
		case css.CustomPropertyGrammar:
			prop := strings.TrimSpace(string(data))
			block.Declarations = append(block.Declarations, Declaration{
				Property: prop,
				Value:    joinValueTokens(parser.Values()),
			})
		}
	}
}

// ParseMediaQuery lexes the query body and rejects it only if it is empty
// or its parentheses do not balance; other malformed text (an unterminated
// string, a stray brace) is not rejected. The text is otherwise left
// untouched — media queries are regenerated verbatim, not reconstructed
// token-by-token.
func (p *Parser) ParseMediaQuery(input string) (string, error) {
	mq := strings.TrimSpace(input)
	if mq == "" {
		return "", fmt.Errorf("cssast: empty media query")
	}
	lex := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(mq))))
	depth := 0
	for {
		tt, data := lex.Next()
		if tt == css.ErrorToken {
			if err := lex.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("media query lex error", zap.Error(err), zap.String("input", mq))
				return "", fmt.Errorf("cssast: %w", err)
			}
			break
		}
		switch tt {
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		_ = data
	}
	if depth != 0 {
		return "", fmt.Errorf("cssast: unbalanced parentheses in media query %q", mq)
	}
	return mq, nil
}

// joinValueTokens reconstructs a declaration's value text from its token
// stream, collapsing internal whitespace runs to single spaces the way a
// canonical generator should.
func joinValueTokens(tokens []css.Token) string {
	var b strings.Builder
	lastWasSpace := true
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		b.Write(t.Data)
		lastWasSpace = false
	}
	return strings.TrimSpace(b.String())
}

// GenerateDeclarationBlock re-emits a Block as `prop: value; prop2: value2`.
func GenerateDeclarationBlock(b Block) string {
	parts := make([]string, 0, len(b.Declarations))
	for _, d := range b.Declarations {
		if d.Value == "" {
			parts = append(parts, d.Property+";")
			continue
		}
		parts = append(parts, d.Property+": "+d.Value+";")
	}
	return strings.Join(parts, " ")
}

// GenerateMediaQuery re-emits a parsed media query's raw text unchanged.
func GenerateMediaQuery(mq string) string { return mq }
