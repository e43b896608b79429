// Package parser implements the recursive-descent tree parser described
// in spec.md section 4.3: a three-slot token ribbon driving a five-level
// operator-precedence ladder down to LiteralIdent/LiteralInt/LiteralFlt
// primaries.
//
// It is grounded on lang/yparse/parser.go and lang/parse/parser.go for
// the ribbon and precedence-ladder shape, simplified to arithmetic
// precedence only (spec.md's grammar has no logical/comparison/assignment
// operators), and deliberately drops both files' panic-mode
// synchronize()/synchronizeStmt() recovery machinery: spec.md section 7
// is explicit that the parser does not recover and surfaces the first
// hard error to the caller.
package parser

import (
	"github.com/WilkinsonK/vixen/internal/ast"
	"github.com/WilkinsonK/vixen/internal/lexer"
	"github.com/WilkinsonK/vixen/internal/token"
)

// Parser pulls tokens from a Lexer and builds a Program by recursive
// descent. It never looks behind the lexer's own Token values, and keeps
// no state beyond the three-slot ribbon.
type Parser struct {
	lex  *lexer.Lexer
	file string

	previous token.Token
	current  token.Token
	next     token.Token
}

// New constructs a Parser over lex, drawing the first two ribbon slots
// immediately; previous starts as the zero Token, a sentinel with no
// meaningful position.
func New(lex *lexer.Lexer, file string) *Parser {
	p := &Parser{lex: lex, file: file}
	p.current = p.lex.Next()
	p.next = p.lex.Next()
	return p
}

// update slides the ribbon one token forward.
func (p *Parser) update() {
	p.previous = p.current
	p.current = p.next
	p.next = p.lex.Next()
}

// additiveOperators and multiplicativeOperators are the accepted sets for
// the two binary precedence levels. spec.md section 4.3 also names '%' at
// the multiplicative level, but section 3's closed TokenType enumeration
// declares no operator type for it and the scanner's byte classes (4.1)
// never recognize '%' either — there is no token this parser could ever
// see that would represent it, so it is left out here; see DESIGN.md.
var additiveOperators = map[token.Type]bool{
	token.OpPlus:  true,
	token.OpMinus: true,
}

var multiplicativeOperators = map[token.Type]bool{
	token.OpStar:       true,
	token.OpSlash:      true,
	token.OpSlashSlash: true,
	token.OpStarStar:   true,
}

// Parse drives the statement loop: while not at a terminator token (EOF
// or EOL), parse one statement, append it, and slide the ribbon past its
// separator.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.current.Type.IsControl() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.update()
	}
	return prog, nil
}

// parseStmt is level 1 of the ladder: at present it delegates straight
// to parseExpr, exactly as spec.md section 4.3 describes.
func (p *Parser) parseStmt() (ast.Expression, error) {
	return p.parseExpr()
}

// parseExpr is level 2: delegates to parseAdditive.
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseAdditive()
}

// parseAdditive is level 3: left-associative over {+, -}.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinary(additiveOperators, p.parseMultiplicative)
}

// parseMultiplicative is level 4: left-associative over {*, /, //, **}.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinary(multiplicativeOperators, p.parsePrimary)
}

// parseBinary is the generic binary builder shared by every precedence
// level: parse a left operand via nextLevel, then while the current
// token's type is in accepted, capture it as the operator, advance, parse
// a right operand via nextLevel, and rebind left to a new
// BinaryExpression. The loop only ever appends to the right, so the
// resulting tree is always left-associative.
func (p *Parser) parseBinary(accepted map[token.Type]bool, nextLevel func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := nextLevel()
	if err != nil {
		return nil, err
	}
	for accepted[p.current.Type] {
		opTok := p.current
		p.update()
		right, err := nextLevel()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, newInternalError(opTok, errNilOperand)
		}
		left = &ast.BinaryExpression{Operator: opTok, Left: left, Right: right}
	}
	return left, nil
}

// parsePrimary is level 5, the base of the ladder.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.current.Type == token.NameGeneric:
		lit := &ast.LiteralIdent{Token: p.current}
		p.update()
		return lit, nil

	case p.current.Type.IsNumeric() && p.current.Type != token.NumFlt:
		lit := &ast.LiteralInt{Token: p.current}
		p.update()
		return lit, nil

	case p.current.Type == token.NumFlt:
		lit := &ast.LiteralFlt{Token: p.current}
		p.update()
		return lit, nil

	case p.current.Type == token.PunctLParen:
		p.update()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.PunctRParen); err != nil {
			return nil, err
		}
		p.update()
		return inner, nil

	default:
		return nil, &UnsupportedError{Token: p.current}
	}
}

// expect asserts that the current token's type is ttype, without
// advancing the ribbon; the caller consumes separately, matching
// spec.md's own "expect ')', consume" phrasing for the parenthesized
// primary.
func (p *Parser) expect(ttype token.Type) error {
	if p.current.Type != ttype {
		return &UnexpectedTypeError{Token: p.current, Expected: ttype}
	}
	return nil
}

var errNilOperand = unsupportedNilOperand{}

// unsupportedNilOperand backs the defensive internal-error path in
// parseBinary: every nextLevel function either returns a non-nil
// Expression or a non-nil error, so this should be unreachable, but it
// gives the invariant a name instead of risking a nil dereference deeper
// in Reduce.
type unsupportedNilOperand struct{}

func (unsupportedNilOperand) Error() string { return "binary operand parsed as nil with no error" }
