package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WilkinsonK/vixen/internal/ast"
	"github.com/WilkinsonK/vixen/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.NewFromBytes([]byte(src), "t.vx"), "t.vx")
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func reduceJSON(t *testing.T, prog *ast.Program) string {
	t.Helper()
	b, err := json.Marshal(prog.Reduce())
	require.NoError(t, err)
	return string(b)
}

func TestSingleIdentifierStatement(t *testing.T) {
	prog := parse(t, "x;")
	require.JSONEq(t, `{"program":[{"kind":"NameGeneric","value":"x","lineno":1,"column":1}]}`, reduceJSON(t, prog))
}

func TestAdditiveBinary(t *testing.T) {
	prog := parse(t, "1 + 2;")
	require.Len(t, prog.Statements, 1)
	bin, ok := prog.Statements[0].(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", string(bin.Operator.Symbol))
}

func TestPrecedenceMultiplicativeBindsTighterOnRight(t *testing.T) {
	prog := parse(t, "1 + 2 * 3;")
	bin, ok := prog.Statements[0].(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", string(bin.Operator.Symbol))
	right, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", string(right.Operator.Symbol))
}

func TestPrecedenceMultiplicativeBindsTighterOnLeft(t *testing.T) {
	prog := parse(t, "1 * 2 + 3;")
	bin, ok := prog.Statements[0].(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", string(bin.Operator.Symbol))
	left, ok := bin.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", string(left.Operator.Symbol))
}

func TestLeftAssociativity(t *testing.T) {
	prog := parse(t, "1 - 2 - 3;")
	top, ok := prog.Statements[0].(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "-", string(top.Operator.Symbol))
	_, leftIsBinary := top.Left.(*ast.BinaryExpression)
	require.True(t, leftIsBinary)
	_, rightIsLit := top.Right.(*ast.LiteralInt)
	require.True(t, rightIsLit)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	withParens := parse(t, "(1 + 2) * 3;")
	require.Len(t, withParens.Statements, 1)
	bin := withParens.Statements[0].(*ast.BinaryExpression)
	require.Equal(t, "*", string(bin.Operator.Symbol))
	left := bin.Left.(*ast.BinaryExpression)
	require.Equal(t, "+", string(left.Operator.Symbol))
}

func TestParenEquivalence(t *testing.T) {
	a := reduceJSON(t, parse(t, "(1 + 2);"))
	// The leading space keeps every token in the same column as in the
	// parenthesized form, since the reduction records columns.
	b := reduceJSON(t, parse(t, " 1 + 2;"))
	require.JSONEq(t, b, a)
}

func TestMultipleStatements(t *testing.T) {
	prog := parse(t, "x;\ny;\n")
	require.Len(t, prog.Statements, 2)
}

func TestCommentOnlyLineIsSkipped(t *testing.T) {
	prog := parse(t, "# comment\n42;")
	require.Len(t, prog.Statements, 1)
	lit, ok := prog.Statements[0].(*ast.LiteralInt)
	require.True(t, ok)
	require.Equal(t, 2, lit.Token.Line)
}

func TestUnexpectedTokenIsUnsupportedError(t *testing.T) {
	_, err := New(lexer.NewFromBytes([]byte(";"), "t.vx"), "t.vx").Parse()
	require.Error(t, err)
	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
}

func TestMissingClosingParenIsUnexpectedType(t *testing.T) {
	_, err := New(lexer.NewFromBytes([]byte("(1 + 2;"), "t.vx"), "t.vx").Parse()
	require.Error(t, err)
	var unexpected *UnexpectedTypeError
	require.ErrorAs(t, err, &unexpected)
}
