// Package ast defines the Vixen abstract syntax tree: a small closed set
// of node types, each wrapping the token(s) that produced it, and the
// Reduce operation that turns any of them into a deterministic,
// order-preserving mapping suitable for pretty-printing and golden-file
// testing.
//
// The node shapes are grounded on lang/yparse/ast.go's baseExpr embedding
// pattern and its Decl/Stmt/Expr node set, cut down to the arithmetic-only
// grammar this front end supports. Reduce retargets lang/yparse/output.go's
// deterministic, indent-driven tree dump from a text writer to a
// structured value a caller can marshal, diff or inspect directly.
package ast

import (
	"bytes"
	"encoding/json"

	"github.com/WilkinsonK/vixen/internal/token"
)

// SourceLoc pins a node to the file, line and column its defining token
// came from.
type SourceLoc struct {
	File   string
	Line   int
	Column int
}

// Pair is one entry of an OrderedMap.
type Pair struct {
	Key   string
	Value interface{}
}

// OrderedMap is a JSON object whose key order is exactly the order its
// pairs were appended in, rather than Go's randomized map order. Reduce
// returns one of these for every node so that two reductions of
// identical input always marshal to byte-identical JSON.
type OrderedMap []Pair

// MarshalJSON writes the pairs in order, recursing into any value that is
// itself an OrderedMap (or contains one).
func (m OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Expression is any node that can appear where an expression is expected.
// Every Expression is also a Statement in the sense spec.md describes:
// there is no separate statement wrapper type, a Program's body is simply
// an ordered sequence of top-level expressions.
type Expression interface {
	// Reduce renders the node as {"kind": TOKEN_TYPE_NAME, ...}: every
	// node's reduction starts with the type name of its defining token,
	// then adds the fields particular to that node.
	Reduce() OrderedMap
	Location() SourceLoc
}

// Program is the root of the tree: an ordered list of statements.
type Program struct {
	Statements []Expression
}

// Reduce renders the program as {"program": [reduce(stmt), ...]}.
func (p *Program) Reduce() OrderedMap {
	stmts := make([]interface{}, len(p.Statements))
	for i, s := range p.Statements {
		stmts[i] = s.Reduce()
	}
	return OrderedMap{{"program", stmts}}
}

// BinaryExpression is a left-associative application of one of the
// additive or multiplicative operators to two operands. Its defining
// token is the operator itself.
type BinaryExpression struct {
	Operator token.Token
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Location() SourceLoc {
	return SourceLoc{File: b.Operator.File, Line: b.Operator.Line, Column: b.Operator.Column}
}

// Reduce yields {kind, operator, lineno, column, left, right}, matching
// spec.md section 3's worked definition exactly: "operator" carries the
// operator token's raw bytes, "kind" its classified type name.
func (b *BinaryExpression) Reduce() OrderedMap {
	return OrderedMap{
		{"kind", b.Operator.Type.String()},
		{"operator", string(b.Operator.Symbol)},
		{"lineno", b.Operator.Line},
		{"column", b.Operator.Column},
		{"left", b.Left.Reduce()},
		{"right", b.Right.Reduce()},
	}
}

// LiteralIdent is a bare name used as a primary expression.
type LiteralIdent struct {
	Token token.Token
}

func (l *LiteralIdent) Location() SourceLoc {
	return SourceLoc{File: l.Token.File, Line: l.Token.Line, Column: l.Token.Column}
}

// Reduce yields {kind, value, lineno, column}, matching the `x;` worked
// example in spec.md section 8: {"kind":"NameGeneric","value":"x",
// "lineno":1,"column":1}.
func (l *LiteralIdent) Reduce() OrderedMap {
	return literalReduce(l.Token)
}

// LiteralInt is an integer literal: decimal, or base-prefixed (0x/0o/0b).
type LiteralInt struct {
	Token token.Token
}

func (l *LiteralInt) Location() SourceLoc {
	return SourceLoc{File: l.Token.File, Line: l.Token.Line, Column: l.Token.Column}
}

func (l *LiteralInt) Reduce() OrderedMap {
	return literalReduce(l.Token)
}

// LiteralFlt is a floating-point literal.
type LiteralFlt struct {
	Token token.Token
}

func (l *LiteralFlt) Location() SourceLoc {
	return SourceLoc{File: l.Token.File, Line: l.Token.Line, Column: l.Token.Column}
}

func (l *LiteralFlt) Reduce() OrderedMap {
	return literalReduce(l.Token)
}

// literalReduce is shared by every literal node: {kind, value, lineno,
// column}, with value the literal's raw spelling.
func literalReduce(t token.Token) OrderedMap {
	return OrderedMap{
		{"kind", t.Type.String()},
		{"value", string(t.Symbol)},
		{"lineno", t.Line},
		{"column", t.Column},
	}
}
