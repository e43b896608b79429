// Package scanner implements the byte-level symbol scanner described in
// spec.md section 4.1: it segments a raw byte buffer into symbols tagged
// with 1-based line/column positions, handling whitespace, comments,
// numeric literals, identifiers, multi-character punctuation and single-
// and triple-quoted string literals.
//
// The scanner is grounded on lang/ylex/lexer.go's character-class helpers
// (peek/advance/isLetter/isDigit) and on asm/lexer.go's position-tracking
// token loop, generalized to the byte-oriented, mode-switching machine
// spec.md requires.
package scanner

// Scanner segments a byte buffer into symbols. It owns the input buffer for
// its whole lifetime and only ever advances a read head over it; nothing
// outside this package observes or mutates the string-parsing mode flag
// directly (see DESIGN.md).
type Scanner struct {
	src       []byte
	pos       int
	line      int
	lineStart int

	stringMode   bool
	awaitingBody bool
	quoteByte    byte
	quoteLen     int
	badString    bool
	lastControl  bool
}

// New creates a Scanner over src. The buffer is not copied or mutated.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1}
}

// NewFromString creates a Scanner over the bytes of s.
func NewFromString(s string) *Scanner {
	return New([]byte(s))
}

// End reports whether the read head has passed the last byte of input.
func (s *Scanner) End() bool {
	return s.pos >= len(s.src)
}

// Head returns the current byte. When at end of input it returns the final
// byte of the buffer instead of trapping, so lookahead near EOF never needs
// a special case; on a totally empty buffer it returns 0.
func (s *Scanner) Head() byte {
	if s.End() {
		if len(s.src) == 0 {
			return 0
		}
		return s.src[len(s.src)-1]
	}
	return s.src[s.pos]
}

// Control reports whether the most recently returned symbol was the
// synthetic end-of-input marker rather than a scanned name, so that
// callers can tell it apart from an identifier that merely happens to be
// spelled "EOF" or "EOL".
func (s *Scanner) Control() bool {
	return s.lastControl
}

// BadString reports whether the most recently scanned symbol is a string
// body that ran off the end of input without finding its closing quote
// sequence. The lexer consults this immediately after receiving a body
// symbol to decide between StrBody and ErrorBadString; it is the only
// signal the scanner exposes about its internal string-parsing mode.
func (s *Scanner) BadString() bool {
	return s.badString
}

// byteAt returns the byte at pos+offset, or 0 if that is out of range.
func (s *Scanner) byteAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// advance consumes and returns the current byte, tracking line/column
// bookkeeping as it crosses newlines.
func (s *Scanner) advance() byte {
	b := s.src[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.lineStart = s.pos
	}
	return b
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func isCommentLead(b byte) bool { return b == '#' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isExtDigitPunct reports whether b is one of the ASCII punctuation bytes
// symbols.py's DIGIT_CHARS_EXT keeps after excluding '-', '\\' and '\''
// (string.punctuation minus those three).
func isExtDigitPunct(b byte) bool {
	switch b {
	case '!', '"', '#', '$', '%', '&', '(', ')', '*', '+', ',', '.',
		'/', ':', ';', '<', '=', '>', '?', '@', '[', ']', '^', '_',
		'`', '{', '|', '}', '~':
		return true
	}
	return false
}

// isExtDigitChar reports whether b is part of the extended digit
// alphabet: ASCII letters plus the punctuation isExtDigitPunct allows.
// symbols.py's comment describes this as extending the digit set "to
// allow up to base 91 (BasE91) numbers"; it is the alphabet a 0x or 0d
// literal may draw from once past the ordinary decimal digits.
func isExtDigitChar(b byte) bool {
	return isAsciiLetter(b) || isExtDigitPunct(b)
}

// isBaseSigil reports whether b is one of the four base-prefix sigils
// symbols.py's DIGIT_SEP_CHARS (".xdbo") names alongside the decimal
// point: x (hex), d (an extended-alphabet base beyond hex), b (binary),
// o (octal).
func isBaseSigil(b byte) bool {
	switch b {
	case 'x', 'd', 'b', 'o':
		return true
	}
	return false
}

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b) || b == '_'
}

func isNameStart(b byte) bool {
	return isNameByte(b) && !isDigit(b)
}

func isStructural(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isTerminator(b byte) bool { return b == ';' }

func isQuoteChar(b byte) bool {
	return b == '`' || b == '"' || b == '\''
}

// twoCharOperators is the maximal-munch set of multi-byte operator
// spellings. Every entry here shares its first byte with a one-character
// operator; the scanner greedily prefers the longer spelling.
var twoCharOperators = map[[2]byte]bool{
	{'&', '&'}: true,
	{'|', '|'}: true,
	{'/', '/'}: true,
	{'*', '*'}: true,
	{'-', '>'}: true,
	{'+', '+'}: true,
	{'+', '='}: true,
	{'-', '='}: true,
	{'-', '-'}: true,
	{'>', '='}: true,
	{'<', '='}: true,
}

// skipWhitespaceAndComments advances past any run of whitespace and
// '#'-led comments, repeating so that chains like "# one\n  # two\n" are
// fully consumed before the next symbol starts. It must only run outside
// string mode.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		advanced := false
		for !s.End() && isWhitespace(s.Head()) {
			s.advance()
			advanced = true
		}
		if !s.End() && isCommentLead(s.Head()) {
			for !s.End() && s.Head() != '\n' {
				s.advance()
			}
			advanced = true
		}
		if !advanced {
			return
		}
	}
}

// Next advances through any skippable whitespace/comments, then emits
// exactly one (line, column, symbol) triple.
func (s *Scanner) Next() (line, column int, symbol []byte) {
	if !s.stringMode {
		s.skipWhitespaceAndComments()
	}

	if s.End() {
		s.lastControl = true
		if s.line > 1 {
			return s.line, 0, []byte("EOF")
		}
		return s.line, 0, []byte("EOL")
	}
	s.lastControl = false

	startLine := s.line
	startColumn := s.pos - s.lineStart + 1

	var sym []byte
	switch {
	case s.stringMode:
		sym = s.scanPunctuationOrString()
	case isNameStart(s.Head()):
		sym = s.scanName()
	case isDigit(s.Head()):
		// A leading '.' is deliberately not treated as a numeric start (see
		// DESIGN.md): dispatching ".5" as numeric would also force "1.2.3"
		// to scan as "1.2" then ".3", contradicting the worked example in
		// spec.md section 8 that requires "1.2" then "." then "3".
		sym = s.scanNumeric()
	default:
		sym = s.scanPunctuationOrString()
	}

	return startLine, startColumn, sym
}

// scanName accumulates bytes while each next byte is a name character.
func (s *Scanner) scanName() []byte {
	var sym []byte
	for !s.End() && isNameByte(s.Head()) {
		sym = append(sym, s.advance())
	}
	return sym
}

// extendsNumeric reports whether appending next to sym still leaves a
// valid numeric prefix. Mixing '.' with a base sigil is rejected outright
// (mirroring symbols.py's symbol_isnumeric, which refuses a symbol
// containing both a sigil byte and '.'); past a 0x/0d sigil the extended
// digit alphabet is accepted except for the ';' terminator, which always
// ends the symbol; past 0b/0o only plain decimal digits are
// (0b/0o never draw from DIGIT_CHARS_EXT in the original, only x and d
// do), and with no sigil at all only plain digits and a single '.' are.
func extendsNumeric(sym []byte, next byte) bool {
	var sigil byte
	if len(sym) >= 2 && sym[0] == '0' && isBaseSigil(sym[1]) {
		sigil = sym[1]
	}
	hasDot := false
	for _, b := range sym {
		if b == '.' {
			hasDot = true
			break
		}
	}

	switch {
	case next == '.':
		return sigil == 0 && !hasDot
	case len(sym) == 1 && sym[0] == '0' && isBaseSigil(next):
		return true
	case sigil == 'x' || sigil == 'd':
		return isDigit(next) || (isExtDigitChar(next) && !isTerminator(next))
	case sigil == 'b' || sigil == 'o':
		return isDigit(next)
	default:
		return isDigit(next)
	}
}

// scanNumeric accumulates while the accumulated symbol is still a valid
// numeric prefix given the next byte.
func (s *Scanner) scanNumeric() []byte {
	sym := []byte{s.advance()}
	for !s.End() && extendsNumeric(sym, s.Head()) {
		sym = append(sym, s.advance())
	}
	return sym
}

// matchesCloseQuote reports whether the upcoming bytes exactly match the
// currently open quote sequence.
func (s *Scanner) matchesCloseQuote() bool {
	if s.pos+s.quoteLen > len(s.src) {
		return false
	}
	for i := 0; i < s.quoteLen; i++ {
		if s.src[s.pos+i] != s.quoteByte {
			return false
		}
	}
	return true
}

// scanQuoteOpen recognizes the opening delimiter at the head of input: a
// quote character repeated exactly three times opens a triple-quoted
// string, otherwise a single occurrence opens a single-quoted one. Either
// way this toggles string mode on.
func (s *Scanner) scanQuoteOpen() []byte {
	b := s.Head()
	s.badString = false

	if s.byteAt(1) == b && s.byteAt(2) == b {
		sym := []byte{s.advance(), s.advance(), s.advance()}
		s.stringMode = true
		s.awaitingBody = true
		s.quoteByte = b
		s.quoteLen = 3
		return sym
	}

	sym := []byte{s.advance()}
	s.stringMode = true
	s.awaitingBody = true
	s.quoteByte = b
	s.quoteLen = 1
	return sym
}

// scanStringContinuation resumes a string already opened by
// scanQuoteOpen: the first call after opening returns the (possibly
// empty) body, consuming the byte after each '\' unconditionally; the
// call after that returns the closing delimiter and turns string mode
// off. If the body runs off the end of input without finding its close,
// BadString reports true for that body symbol.
func (s *Scanner) scanStringContinuation() []byte {
	if s.awaitingBody {
		s.awaitingBody = false
		var body []byte
		for {
			if s.End() {
				s.badString = true
				s.stringMode = false
				return body
			}
			if s.matchesCloseQuote() {
				return body
			}
			b := s.advance()
			body = append(body, b)
			if b == '\\' && !s.End() {
				body = append(body, s.advance())
			}
		}
	}

	sym := make([]byte, 0, s.quoteLen)
	for i := 0; i < s.quoteLen; i++ {
		sym = append(sym, s.advance())
	}
	s.stringMode = false
	return sym
}

// scanPunctuationOrString handles structural characters, the terminator,
// string delimiters and bodies, and operator/punctuation runs.
func (s *Scanner) scanPunctuationOrString() []byte {
	if s.stringMode {
		return s.scanStringContinuation()
	}

	b := s.Head()
	if isQuoteChar(b) {
		return s.scanQuoteOpen()
	}
	if isStructural(b) || isTerminator(b) {
		return []byte{s.advance()}
	}

	first := s.advance()
	if !s.End() {
		pair := [2]byte{first, s.Head()}
		if twoCharOperators[pair] {
			s.advance()
			return []byte{pair[0], pair[1]}
		}
	}
	return []byte{first}
}
