package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src string) []string {
	t.Helper()
	s := NewFromString(src)
	var got []string
	for {
		_, _, sym := s.Next()
		got = append(got, string(sym))
		if s.Control() {
			break
		}
	}
	return got
}

func TestSimpleStatement(t *testing.T) {
	got := drain(t, "x;")
	require.Equal(t, []string{"x", ";", "EOL"}, got)
}

func TestEOFAfterMultipleLines(t *testing.T) {
	got := drain(t, "x;\ny;\n")
	require.Equal(t, []string{"x", ";", "y", ";", "EOF"}, got)
}

func TestCommentChains(t *testing.T) {
	got := drain(t, "# one\n  # two\n42;")
	require.Equal(t, []string{"42", ";", "EOF"}, got)
}

func TestNumericDotSequence(t *testing.T) {
	got := drain(t, "1.2.3")
	require.Equal(t, []string{"1.2", ".", "3", "EOL"}, got)
}

func TestNumericBases(t *testing.T) {
	got := drain(t, "0x1F 0o17 0b101 42")
	require.Equal(t, []string{"0x1F", "0o17", "0b101", "42", "EOL"}, got)
}

func TestNumericBaseDSigil(t *testing.T) {
	got := drain(t, "0d123;")
	require.Equal(t, []string{"0d123", ";", "EOL"}, got)
}

func TestNumericHexExtendedAlphabet(t *testing.T) {
	got := drain(t, "0x1g;")
	require.Equal(t, []string{"0x1g", ";", "EOL"}, got)
}

func TestNumericBinaryAndOctalStayPlainDigits(t *testing.T) {
	got := drain(t, "0b101g 0o17g")
	require.Equal(t, []string{"0b101", "g", "0o17", "g", "EOL"}, got)
}

func TestNumericBaseSigilRejectsDot(t *testing.T) {
	got := drain(t, "0x1.2;")
	require.Equal(t, []string{"0x1", ".", "2", ";", "EOL"}, got)
}

func TestTwoCharOperatorMaximalMunch(t *testing.T) {
	got := drain(t, "a += b")
	require.Equal(t, []string{"a", "+=", "b", "EOL"}, got)
}

func TestSingleQuotedString(t *testing.T) {
	s := NewFromString(`"hi";`)
	_, _, open := s.Next()
	require.Equal(t, `"`, string(open))
	_, _, body := s.Next()
	require.Equal(t, "hi", string(body))
	require.False(t, s.BadString())
	_, _, close_ := s.Next()
	require.Equal(t, `"`, string(close_))
	_, _, semi := s.Next()
	require.Equal(t, ";", string(semi))
}

func TestEmptyString(t *testing.T) {
	s := NewFromString(`''`)
	_, _, open := s.Next()
	require.Equal(t, "'", string(open))
	_, _, body := s.Next()
	require.Equal(t, "", string(body))
	_, _, close_ := s.Next()
	require.Equal(t, "'", string(close_))
}

func TestTripleQuotedStringWithEmbeddedSingleQuote(t *testing.T) {
	s := NewFromString(`"""a 'b' c""";`)
	_, _, open := s.Next()
	require.Equal(t, `"""`, string(open))
	_, _, body := s.Next()
	require.Equal(t, "a 'b' c", string(body))
	_, _, close_ := s.Next()
	require.Equal(t, `"""`, string(close_))
}

func TestUnterminatedStringSetsBadString(t *testing.T) {
	s := NewFromString("`abc")
	_, _, open := s.Next()
	require.Equal(t, "`", string(open))
	_, _, body := s.Next()
	require.Equal(t, "abc", string(body))
	require.True(t, s.BadString())
	require.True(t, s.End())
}

func TestEscapeInsideString(t *testing.T) {
	s := NewFromString(`"a\"b"`)
	_, _, open := s.Next()
	require.Equal(t, `"`, string(open))
	_, _, body := s.Next()
	require.Equal(t, `a\"b`, string(body))
	_, _, close_ := s.Next()
	require.Equal(t, `"`, string(close_))
}

func TestColumnTracking(t *testing.T) {
	s := NewFromString("ab\ncd")
	line, col, sym := s.Next()
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)
	require.Equal(t, "ab", string(sym))

	line, col, sym = s.Next()
	require.Equal(t, 2, line)
	require.Equal(t, 1, col)
	require.Equal(t, "cd", string(sym))
}

func TestHeadAtEndOfInputReturnsLastByte(t *testing.T) {
	s := NewFromString("xy")
	require.Equal(t, byte('x'), s.Head())
	s.advance()
	s.advance()
	require.True(t, s.End())
	require.Equal(t, byte('y'), s.Head())
}

func TestEmptyInputYieldsEOL(t *testing.T) {
	s := NewFromString("")
	line, col, sym := s.Next()
	require.Equal(t, 1, line)
	require.Equal(t, 0, col)
	require.Equal(t, "EOL", string(sym))
}
