package js_lexer

// The lexer converts a source file to a stream of tokens. It does not run to
// completion before parsing starts; the parser calls it repeatedly because
// many tokens are context-sensitive and need high-level information from the
// parser. Examples are regular expression literals and JSX elements.
//
// The lexer is fail-soft: every lexical error produces a diagnostic and still
// yields a token, so the parser can always continue.
//
// For efficiency, the text associated with textual tokens is stored in two
// separate ways depending on the token. Identifiers use UTF-8 encoding which
// allows them to be slices of the input file without allocating extra memory.
// Strings use UTF-16 encoding so they can represent unicode surrogates
// accurately.

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/logger"
)

type Lexer struct {
	diags  *diag.Router
	source logger.Source

	current int
	start   int
	end     int

	Token              T
	HasNewlineBefore   bool
	HasEscapeInKeyword bool

	codePoint     rune
	invalidUtf8   bool
	StringLiteral []uint16
	Identifier    string
	Number        float64

	// Set alongside TNumericLiteral and TBigIntegerLiteral
	IsLegacyOctalLiteral bool

	rescanCloseBraceAsTemplateToken bool
}

func NewLexer(source logger.Source, diags *diag.Router) Lexer {
	lexer := Lexer{
		diags:  diags,
		source: source,
	}
	lexer.step()
	lexer.Next()
	return lexer
}

func (lexer *Lexer) Loc() logger.Loc {
	return logger.Loc{Start: int32(lexer.start)}
}

func (lexer *Lexer) Range() logger.Range {
	return logger.Range{Loc: logger.Loc{Start: int32(lexer.start)}, Len: int32(lexer.end - lexer.start)}
}

func (lexer *Lexer) Raw() string {
	return lexer.source.Contents[lexer.start:lexer.end]
}

func (lexer *Lexer) Source() *logger.Source {
	return &lexer.source
}

func (lexer *Lexer) report(kind diag.Kind, args ...diag.Arg) {
	lexer.diags.ReportDiagnostic(diag.New(kind, args...))
}

// A Transaction is a snapshot of the cursor plus a mark into the diagnostic
// buffer. Commit releases buffered diagnostics; rollback restores the cursor
// and discards them. There is no mutable global state to undo.
type Transaction struct {
	saved    Lexer
	diagMark int
}

func (lexer *Lexer) BeginTransaction() Transaction {
	return Transaction{
		saved:    *lexer,
		diagMark: lexer.diags.BeginSpeculation(),
	}
}

func (lexer *Lexer) CommitTransaction(Transaction) {
	lexer.diags.CommitSpeculation()
}

func (lexer *Lexer) RollBackTransaction(t Transaction) {
	diags := lexer.diags
	*lexer = t.saved
	diags.RollBackSpeculation(t.diagMark)
}

func (lexer *Lexer) RawTemplateContents() string {
	var text string
	switch lexer.Token {
	case TNoSubstitutionTemplateLiteral, TTemplateTail:
		// "`x`" or "}x`"
		text = lexer.source.Contents[lexer.start+1 : lexer.end-1]

	case TTemplateHead, TTemplateMiddle:
		// "`x${" or "}x${"
		text = lexer.source.Contents[lexer.start+1 : lexer.end-2]
	}

	if strings.IndexByte(text, '\r') == -1 {
		return text
	}

	// <CR><LF> and <CR> line terminator sequences are normalized to <LF>
	bytes := []byte(text)
	end := 0
	i := 0

	for i < len(bytes) {
		c := bytes[i]
		i++

		if c == '\r' {
			if i < len(bytes) && bytes[i] == '\n' {
				i++
			}
			c = '\n'
		}

		bytes[end] = c
		end++
	}

	return string(bytes[:end])
}

func (lexer *Lexer) IsIdentifierOrKeyword() bool {
	return lexer.Token >= TIdentifier
}

func (lexer *Lexer) IsContextualKeyword(text string) bool {
	return lexer.Token == TIdentifier && !lexer.HasEscapeInKeyword && lexer.Identifier == text
}

// This parses a single "<" token. If that is the first part of a longer
// token, this function splits off the first "<" and leaves the remainder as
// another, smaller token. For example, "<<=" becomes "<=".
func (lexer *Lexer) ExpectLessThan(isInsideJSXElement bool) {
	switch lexer.Token {
	case TLessThan:
		if isInsideJSXElement {
			lexer.NextInsideJSXElement()
		} else {
			lexer.Next()
		}

	case TLessThanEquals:
		lexer.Token = TEquals
		lexer.start++

	case TLessThanLessThan:
		lexer.Token = TLessThan
		lexer.start++

	case TLessThanLessThanEquals:
		lexer.Token = TLessThanEquals
		lexer.start++

	default:
		lexer.report(diag.UnexpectedToken, diag.Span(lexer.Range()))
		lexer.Next()
	}
}

// This parses a single ">" token. If that is the first part of a longer
// token, this function splits off the first ">" and leaves the remainder as
// another, smaller token. For example, ">>=" becomes ">=". This is how the
// parser closes nested type argument lists.
func (lexer *Lexer) ExpectGreaterThan(isInsideJSXElement bool) {
	switch lexer.Token {
	case TGreaterThan:
		if isInsideJSXElement {
			lexer.NextInsideJSXElement()
		} else {
			lexer.Next()
		}

	case TGreaterThanEquals:
		lexer.Token = TEquals
		lexer.start++

	case TGreaterThanGreaterThan:
		lexer.Token = TGreaterThan
		lexer.start++

	case TGreaterThanGreaterThanEquals:
		lexer.Token = TGreaterThanEquals
		lexer.start++

	case TGreaterThanGreaterThanGreaterThan:
		lexer.Token = TGreaterThanGreaterThan
		lexer.start++

	case TGreaterThanGreaterThanGreaterThanEquals:
		lexer.Token = TGreaterThanGreaterThanEquals
		lexer.start++

	default:
		lexer.report(diag.UnexpectedToken, diag.Span(lexer.Range()))
		lexer.Next()
	}
}

func IsIdentifier(text string) bool {
	return js_ast.IsIdentifier(text)
}

func IsIdentifierStart(codePoint rune) bool {
	return js_ast.IsIdentifierStart(codePoint)
}

func IsIdentifierContinue(codePoint rune) bool {
	return js_ast.IsIdentifierContinue(codePoint)
}

func IsWhitespace(codePoint rune) bool {
	return js_ast.IsWhitespace(codePoint)
}

func RangeOfIdentifier(source *logger.Source, loc logger.Loc) logger.Range {
	text := source.Contents[loc.Start:]
	if len(text) == 0 {
		return logger.Range{Loc: loc, Len: 0}
	}

	i := 0
	c, width := utf8.DecodeRuneInString(text)
	i += width

	if c == '#' {
		c, width = utf8.DecodeRuneInString(text[i:])
		i += width
	}

	if IsIdentifierStart(c) {
		// Search for the end of the identifier
		for i < len(text) {
			c2, width2 := utf8.DecodeRuneInString(text[i:])
			if !IsIdentifierContinue(c2) {
				return logger.Range{Loc: loc, Len: int32(i)}
			}
			i += width2
		}
	}

	return source.RangeOfString(loc)
}

func (lexer *Lexer) step() {
	// Decoding uses the logical contents so the sentinel padding is never
	// mistaken for text; the padding serves the direct one-byte lookaheads.
	codePoint, width := utf8.DecodeRuneInString(lexer.source.Contents[lexer.current:])

	// Use -1 to indicate the end of the file
	if width == 0 {
		codePoint = -1
	}

	lexer.invalidUtf8 = codePoint == utf8.RuneError && width == 1
	lexer.codePoint = codePoint
	lexer.end = lexer.current
	lexer.current += width
}

func (lexer *Lexer) NextInsideJSXElement() {
	lexer.HasNewlineBefore = false

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true
			continue

		case '\t', ' ':
			lexer.step()
			continue

		case '.':
			lexer.step()
			lexer.Token = TDot

		case '=':
			lexer.step()
			lexer.Token = TEquals

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '}':
			lexer.step()
			lexer.Token = TCloseBrace

		case '<':
			lexer.step()
			lexer.Token = TLessThan

		case '>':
			lexer.step()
			lexer.Token = TGreaterThan

		case '/':
			// '/' or '//' or '/* ... */'
			lexer.step()
			switch lexer.codePoint {
			case '/':
			singleLineComment:
				for {
					lexer.step()
					switch lexer.codePoint {
					case '\r', '\n', '\u2028', '\u2029':
						break singleLineComment

					case -1: // This indicates the end of the file
						break singleLineComment
					}
				}
				continue

			case '*':
				lexer.step()
				lexer.scanMultiLineComment()
				continue

			default:
				lexer.Token = TSlash
			}

		case '\'', '"':
			quote := lexer.codePoint
			lexer.step()

		stringLiteral:
			for {
				switch lexer.codePoint {
				case -1:
					lexer.report(diag.UnclosedJSXStringLiteral,
						diag.Span(logger.Range{Loc: lexer.Loc(), Len: 1}))
					break stringLiteral

				case '\r', '\n', '\u2028', '\u2029':
					// JSX attribute strings accept unpaired quotes but never
					// line terminators
					lexer.report(diag.UnclosedJSXStringLiteral,
						diag.Span(logger.Range{Loc: lexer.Loc(), Len: 1}))
					break stringLiteral

				case quote:
					lexer.step()
					break stringLiteral

				default:
					lexer.step()
				}
			}

			lexer.Token = TStringLiteral
			text := lexer.source.Contents[lexer.start+1 : lexer.end]
			if len(text) > 0 && rune(text[len(text)-1]) == quote {
				text = text[:len(text)-1]
			}
			lexer.StringLiteral = decodeJSXEntities(nil, text)

		default:
			// Check for unusual whitespace characters
			if IsWhitespace(lexer.codePoint) {
				lexer.step()
				continue
			}

			if IsIdentifierStart(lexer.codePoint) {
				lexer.step()
				// JSX identifiers allow dashes
				for IsIdentifierContinue(lexer.codePoint) || lexer.codePoint == '-' {
					lexer.step()
				}
				lexer.Identifier = lexer.Raw()
				lexer.Token = TIdentifier
				break
			}

			lexer.reportUnexpectedCharacter()
			continue
		}

		return
	}
}

// NextJSXElementChild scans either JSX text or the token that ends it. It is
// only called when the parser is positioned between a JSX element's tags.
func (lexer *Lexer) NextJSXElementChild() {
	lexer.HasNewlineBefore = false
	originalStart := lexer.end

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '<':
			lexer.step()
			lexer.Token = TLessThan

		default:
			needsFixing := false

		jsxText:
			for {
				switch lexer.codePoint {
				case -1:
					// The parser reports the unclosed element itself
					break jsxText

				case '&', '\r', '\n', '\u2028', '\u2029':
					// This needs fixing if it has an entity or if it's a
					// multi-line string
					needsFixing = true
					lexer.step()

				case '{', '<':
					// Stop when the string ends
					break jsxText

				default:
					// Non-ASCII strings need the slow path
					if lexer.codePoint >= 0x80 {
						needsFixing = true
					}
					lexer.step()
				}
			}

			lexer.Token = TStringLiteral
			text := lexer.source.Contents[originalStart:lexer.end]

			if needsFixing {
				// Slow path
				lexer.StringLiteral = fixWhitespaceAndDecodeJSXEntities(text)

				// Skip this token if it turned out to be empty after trimming
				if len(lexer.StringLiteral) == 0 {
					lexer.HasNewlineBefore = true
					continue
				}
			} else {
				// Fast path
				n := len(text)
				out := make([]uint16, n)
				for i := 0; i < n; i++ {
					out[i] = uint16(text[i])
				}
				lexer.StringLiteral = out
			}
		}

		break
	}
}

func (lexer *Lexer) Next() {
	lexer.HasNewlineBefore = lexer.end == 0
	lexer.HasEscapeInKeyword = false
	lexer.IsLegacyOctalLiteral = false

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '#':
			if lexer.start == 0 && strings.HasPrefix(lexer.source.Contents, "#!") {
				// "#!/usr/bin/env node"
				lexer.Token = THashbang
			hashbang:
				for {
					lexer.step()
					switch lexer.codePoint {
					case '\r', '\n', '\u2028', '\u2029':
						break hashbang

					case -1: // This indicates the end of the file
						break hashbang
					}
				}
				lexer.Identifier = lexer.Raw()
			} else {
				// "#foo"
				lexer.step()
				if lexer.codePoint == '\\' {
					lexer.Identifier, _ = lexer.scanIdentifierWithEscapes(privateIdentifier)
				} else {
					if !IsIdentifierStart(lexer.codePoint) {
						lexer.report(diag.UnexpectedHashCharacter,
							diag.Span(logger.Range{Loc: lexer.Loc(), Len: 1}))
						continue
					}
					lexer.step()
					for IsIdentifierContinue(lexer.codePoint) {
						lexer.step()
					}
					if lexer.codePoint == '\\' {
						lexer.Identifier, _ = lexer.scanIdentifierWithEscapes(privateIdentifier)
					} else {
						lexer.Identifier = lexer.Raw()
					}
				}
				lexer.Token = TPrivateIdentifier
			}

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true
			continue

		case '\t', ' ':
			lexer.step()
			continue

		case '(':
			lexer.step()
			lexer.Token = TOpenParen

		case ')':
			lexer.step()
			lexer.Token = TCloseParen

		case '[':
			lexer.step()
			lexer.Token = TOpenBracket

		case ']':
			lexer.step()
			lexer.Token = TCloseBracket

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '}':
			lexer.step()
			lexer.Token = TCloseBrace

		case ',':
			lexer.step()
			lexer.Token = TComma

		case ':':
			lexer.step()
			lexer.Token = TColon

		case ';':
			lexer.step()
			lexer.Token = TSemicolon

		case '@':
			lexer.step()
			lexer.Token = TAt

		case '~':
			lexer.step()
			lexer.Token = TTilde

		case '?':
			// '?' or '?.' or '??' or '??='
			lexer.step()
			switch lexer.codePoint {
			case '?':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TQuestionQuestionEquals
				default:
					lexer.Token = TQuestionQuestion
				}
			case '.':
				lexer.Token = TQuestion

				// Lookahead to disambiguate with 'a?.1:b'; the sentinel
				// padding makes this safe at the end of the file
				c := lexer.source.PaddedContents[lexer.current]
				if c < '0' || c > '9' {
					lexer.step()
					lexer.Token = TQuestionDot
				}
			default:
				lexer.Token = TQuestion
			}

		case '%':
			// '%' or '%='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TPercentEquals
			default:
				lexer.Token = TPercent
			}

		case '&':
			// '&' or '&=' or '&&' or '&&='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TAmpersandEquals
			case '&':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TAmpersandAmpersandEquals
				default:
					lexer.Token = TAmpersandAmpersand
				}
			default:
				lexer.Token = TAmpersand
			}

		case '|':
			// '|' or '|=' or '||' or '||='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TBarEquals
			case '|':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TBarBarEquals
				default:
					lexer.Token = TBarBar
				}
			default:
				lexer.Token = TBar
			}

		case '^':
			// '^' or '^='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TCaretEquals
			default:
				lexer.Token = TCaret
			}

		case '+':
			// '+' or '+=' or '++'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TPlusEquals
			case '+':
				lexer.step()
				lexer.Token = TPlusPlus
			default:
				lexer.Token = TPlus
			}

		case '-':
			// '-' or '-=' or '--' or '-->'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TMinusEquals
			case '-':
				lexer.step()

				// Handle legacy HTML-style comments
				if lexer.codePoint == '>' && lexer.HasNewlineBefore {
					lexer.step()
				singleLineHTMLCloseComment:
					for {
						switch lexer.codePoint {
						case '\r', '\n', '\u2028', '\u2029':
							break singleLineHTMLCloseComment

						case -1: // This indicates the end of the file
							break singleLineHTMLCloseComment
						}
						lexer.step()
					}
					continue
				}

				lexer.Token = TMinusMinus
			default:
				lexer.Token = TMinus
			}

		case '*':
			// '*' or '*=' or '**' or '**=' or a stray '*/'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TAsteriskEquals

			case '*':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TAsteriskAsteriskEquals

				default:
					lexer.Token = TAsteriskAsterisk
				}

			case '/':
				lexer.step()
				lexer.report(diag.UnopenedBlockComment, diag.Span(lexer.Range()))
				continue

			default:
				lexer.Token = TAsterisk
			}

		case '/':
			// '/' or '/=' or '//' or '/* ... */'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TSlashEquals

			case '/':
			singleLineComment:
				for {
					lexer.step()
					switch lexer.codePoint {
					case '\r', '\n', '\u2028', '\u2029':
						break singleLineComment

					case -1: // This indicates the end of the file
						break singleLineComment
					}
				}
				continue

			case '*':
				lexer.step()
				lexer.scanMultiLineComment()
				continue

			default:
				lexer.Token = TSlash
			}

		case '=':
			// '=' or '=>' or '==' or '==='
			lexer.step()
			switch lexer.codePoint {
			case '>':
				lexer.step()
				lexer.Token = TEqualsGreaterThan
			case '=':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TEqualsEqualsEquals
				default:
					lexer.Token = TEqualsEquals
				}
			default:
				lexer.Token = TEquals
			}

		case '<':
			// '<' or '<<' or '<=' or '<<=' or '<!--'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TLessThanEquals
			case '<':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TLessThanLessThanEquals
				default:
					lexer.Token = TLessThanLessThan
				}

			case '!':
				// Handle legacy HTML-style comments
				if strings.HasPrefix(lexer.source.Contents[lexer.start:], "<!--") {
					lexer.step()
					lexer.step()
					lexer.step()
				singleLineHTMLOpenComment:
					for {
						switch lexer.codePoint {
						case '\r', '\n', '\u2028', '\u2029':
							break singleLineHTMLOpenComment

						case -1: // This indicates the end of the file
							break singleLineHTMLOpenComment
						}
						lexer.step()
					}
					continue
				}

				lexer.Token = TLessThan

			default:
				lexer.Token = TLessThan
			}

		case '>':
			// '>' or '>>' or '>>>' or '>=' or '>>=' or '>>>='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TGreaterThanEquals
			case '>':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TGreaterThanGreaterThanEquals
				case '>':
					lexer.step()
					switch lexer.codePoint {
					case '=':
						lexer.step()
						lexer.Token = TGreaterThanGreaterThanGreaterThanEquals
					default:
						lexer.Token = TGreaterThanGreaterThanGreaterThan
					}
				default:
					lexer.Token = TGreaterThanGreaterThan
				}
			default:
				lexer.Token = TGreaterThan
			}

		case '!':
			// '!' or '!=' or '!=='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TExclamationEqualsEquals
				default:
					lexer.Token = TExclamationEquals
				}
			default:
				lexer.Token = TExclamation
			}

		case '\'', '"', '`':
			lexer.scanStringLiteral()

		case '_', '$',
			'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
			'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
			'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
			'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
			lexer.step()
			for IsIdentifierContinue(lexer.codePoint) {
				lexer.step()
			}
			if lexer.codePoint == '\\' {
				lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)
			} else {
				contents := lexer.Raw()
				lexer.Identifier = contents
				lexer.Token = Keywords[contents]
				if lexer.Token == 0 {
					lexer.Token = TIdentifier
				}
			}

		case '\\':
			lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)

		case '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			lexer.parseNumericLiteralOrDot()

		default:
			// Check for unusual whitespace characters
			if IsWhitespace(lexer.codePoint) {
				lexer.step()
				continue
			}

			if IsIdentifierStart(lexer.codePoint) {
				lexer.step()
				for IsIdentifierContinue(lexer.codePoint) {
					lexer.step()
				}
				if lexer.codePoint == '\\' {
					lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)
				} else {
					lexer.Token = TIdentifier
					lexer.Identifier = lexer.Raw()
				}
				break
			}

			lexer.reportUnexpectedCharacter()
			continue
		}

		return
	}
}

// Diagnose and skip one character that can't begin any token.
func (lexer *Lexer) reportUnexpectedCharacter() {
	width := utf8.RuneLen(lexer.codePoint)
	if width < 1 || lexer.invalidUtf8 {
		width = 1
	}
	r := logger.Range{Loc: lexer.Loc(), Len: int32(width)}

	switch {
	case lexer.invalidUtf8:
		lexer.report(diag.InvalidUtf8Sequence, diag.Span(r))
	case lexer.codePoint < 0x20:
		lexer.report(diag.UnexpectedControlCharacter, diag.Span(r))
	default:
		lexer.report(diag.CharacterDisallowedInIdentifiers, diag.Span(r))
	}
	lexer.step()
}

// The cursor is just past "/*". Consumes through the matching "*/".
func (lexer *Lexer) scanMultiLineComment() {
	openRange := logger.Range{Loc: lexer.Loc(), Len: 2}
	for {
		switch lexer.codePoint {
		case '*':
			lexer.step()
			if lexer.codePoint == '/' {
				lexer.step()
				return
			}

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true

		case -1: // This indicates the end of the file
			lexer.report(diag.UnclosedBlockComment, diag.Span(openRange))
			return

		default:
			lexer.step()
		}
	}
}

func (lexer *Lexer) scanStringLiteral() {
	quote := lexer.codePoint
	needsSlowPath := false
	suffixLen := 1

	if quote != '`' {
		lexer.Token = TStringLiteral
	} else if lexer.rescanCloseBraceAsTemplateToken {
		lexer.Token = TTemplateTail
	} else {
		lexer.Token = TNoSubstitutionTemplateLiteral
	}
	lexer.step()

stringLiteral:
	for {
		switch lexer.codePoint {
		case '\\':
			needsSlowPath = true
			lexer.step()

			// Handle Windows CRLF
			if lexer.codePoint == '\r' {
				lexer.step()
				if lexer.codePoint == '\n' {
					lexer.step()
				}
				continue
			}

		case -1: // This indicates the end of the file
			suffixLen = 0
			if quote == '`' {
				lexer.report(diag.UnclosedTemplate, diag.Span(lexer.Range()))
			} else {
				lexer.report(diag.UnclosedStringLiteral,
					diag.Span(logger.Range{Loc: lexer.Loc(), Len: 1}))
			}
			break stringLiteral

		case '\r', '\n':
			if quote != '`' {
				// The string stops at the line terminator; the parser resumes
				// on the next line
				suffixLen = 0
				lexer.report(diag.UnclosedStringLiteral,
					diag.Span(logger.Range{Loc: lexer.Loc(), Len: 1}))
				break stringLiteral
			}

			// Template literals require newline normalization
			needsSlowPath = true

		case '$':
			if quote == '`' {
				lexer.step()
				if lexer.codePoint == '{' {
					suffixLen = 2
					lexer.step()
					if lexer.rescanCloseBraceAsTemplateToken {
						lexer.Token = TTemplateMiddle
					} else {
						lexer.Token = TTemplateHead
					}
					break stringLiteral
				}
				continue stringLiteral
			}

		case quote:
			lexer.step()
			break stringLiteral

		default:
			// Non-ASCII strings need the slow path
			if lexer.codePoint >= 0x80 {
				needsSlowPath = true
			}
		}
		lexer.step()
	}

	text := lexer.source.Contents[lexer.start+1 : lexer.end-suffixLen]

	if needsSlowPath {
		// Slow path
		lexer.StringLiteral = lexer.decodeEscapeSequences(lexer.start+1, text)
	} else {
		// Fast path
		n := len(text)
		out := make([]uint16, n)
		for i := 0; i < n; i++ {
			out[i] = uint16(text[i])
		}
		lexer.StringLiteral = out
	}
}

type identifierKind uint8

const (
	normalIdentifier identifierKind = iota
	privateIdentifier
)

// This is an edge case that doesn't really exist in the wild, so it doesn't
// need to be as fast as possible.
func (lexer *Lexer) scanIdentifierWithEscapes(kind identifierKind) (string, T) {
	// First pass: scan over the identifier to see how long it is
	for {
		// Scan a unicode escape sequence. There is at least one because that's
		// what caused us to get on this slow path in the first place.
		if lexer.codePoint == '\\' {
			backslash := logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}, Len: 1}
			lexer.step()
			if lexer.codePoint != 'u' {
				lexer.report(diag.UnexpectedBackslashInIdentifier, diag.Span(backslash))
				break
			}
			lexer.step()
			if lexer.codePoint == '{' {
				// Variable-length
				lexer.step()
				for lexer.codePoint != '}' {
					switch lexer.codePoint {
					case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
						'a', 'b', 'c', 'd', 'e', 'f',
						'A', 'B', 'C', 'D', 'E', 'F':
						lexer.step()
					case -1, '\r', '\n', '\u2028', '\u2029':
						lexer.report(diag.UnclosedIdentifierEscapeSequence,
							diag.Span(logger.Range{Loc: backslash.Loc, Len: int32(lexer.end) - backslash.Loc.Start}))
						goto stop
					default:
						lexer.report(diag.ExpectedHexDigitsInUnicodeEscape,
							diag.Span(logger.Range{Loc: backslash.Loc, Len: int32(lexer.end) - backslash.Loc.Start + 1}))
						goto stop
					}
				}
				lexer.step()
			} else {
				// Fixed-length
				for j := 0; j < 4; j++ {
					switch lexer.codePoint {
					case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
						'a', 'b', 'c', 'd', 'e', 'f',
						'A', 'B', 'C', 'D', 'E', 'F':
						lexer.step()
					default:
						lexer.report(diag.ExpectedHexDigitsInUnicodeEscape,
							diag.Span(logger.Range{Loc: backslash.Loc, Len: int32(lexer.end) - backslash.Loc.Start + 1}))
						goto stop
					}
				}
			}
			continue
		}

		// Stop when we reach the end of the identifier
		if !IsIdentifierContinue(lexer.codePoint) {
			break
		}
		lexer.step()
	}
stop:

	// Second pass: re-use our existing escape sequence parser
	decoded := lexer.decodeEscapeSequences(lexer.start, lexer.Raw())
	text := utf16ToString(decoded)

	// Even though it was escaped, it must still be a valid identifier
	identifier := text
	if kind == privateIdentifier {
		identifier = identifier[1:] // Skip over the "#"
	}
	if !IsIdentifier(identifier) {
		lexer.report(diag.EscapedCharacterDisallowedInIdentifiers, diag.Span(lexer.Range()))
	}

	// Escaped keywords are not allowed to work as actual keywords, but they
	// are allowed wherever identifiers are. For example, "var foo" is an
	// error but "foo.var" is fine.
	if Keywords[text] != 0 {
		lexer.HasEscapeInKeyword = true
		return text, TEscapedKeyword
	}
	return text, TIdentifier
}

func (lexer *Lexer) parseNumericLiteralOrDot() {
	// Number or dot
	first := lexer.codePoint
	lexer.step()

	// Dot without a digit after it
	if first == '.' && (lexer.codePoint < '0' || lexer.codePoint > '9') {
		// "..."
		if lexer.codePoint == '.' && lexer.source.PaddedContents[lexer.current] == '.' {
			lexer.step()
			lexer.step()
			lexer.Token = TDotDotDot
			return
		}

		// "."
		lexer.Token = TDot
		return
	}

	underscoreCount := 0
	lastUnderscoreEnd := 0
	hasDot := first == '.'
	hasExponent := false
	isLegacyOctalLiteral := false
	base := 0.0

	// Assume this is a number, but potentially change to a bigint later
	lexer.Token = TNumericLiteral

	reportUnderscoreAt := func(kind diag.Kind, end int) {
		lexer.report(kind, diag.Span(logger.Range{Loc: logger.Loc{Start: int32(end)}, Len: 1}))
	}

	checkUnderscore := func() {
		// Cannot have multiple underscores in a row
		if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
			reportUnderscoreAt(diag.NumberLiteralContainsConsecutiveUnderscores, lexer.end)
		}
		lastUnderscoreEnd = lexer.end
		underscoreCount++
	}

	// Check for binary, octal, or hexadecimal literal
	if first == '0' {
		switch lexer.codePoint {
		case 'b', 'B':
			base = 2

		case 'o', 'O':
			base = 8

		case 'x', 'X':
			base = 16

		case '0', '1', '2', '3', '4', '5', '6', '7', '_':
			base = 8
			isLegacyOctalLiteral = true
		}
	}

	if base != 0 {
		// Integer literal
		isFirst := true
		isInvalidLegacyOctalLiteral := false
		lexer.Number = 0
		if !isLegacyOctalLiteral {
			lexer.step()
		}

	integerLiteral:
		for {
			switch lexer.codePoint {
			case '_':
				if isLegacyOctalLiteral {
					reportUnderscoreAt(diag.LegacyOctalLiteralMayNotContainUnderscores, lexer.end)
				} else if isFirst {
					reportUnderscoreAt(diag.NumberLiteralContainsConsecutiveUnderscores, lexer.end)
				} else {
					checkUnderscore()
				}

			case '0', '1':
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case '2', '3', '4', '5', '6', '7':
				if base == 2 {
					break integerLiteral
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case '8', '9':
				if isLegacyOctalLiteral {
					isInvalidLegacyOctalLiteral = true
				} else if base < 10 {
					break integerLiteral
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case 'A', 'B', 'C', 'D', 'E', 'F':
				if base != 16 {
					break integerLiteral
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint+10-'A')

			case 'a', 'b', 'c', 'd', 'e', 'f':
				if base != 16 {
					break integerLiteral
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint+10-'a')

			default:
				// The first digit must exist
				if isFirst {
					kind := diag.UnexpectedCharactersInHexNumber
					switch base {
					case 2:
						kind = diag.UnexpectedCharactersInBinaryNumber
					case 8:
						kind = diag.UnexpectedCharactersInOctalNumber
					}
					lexer.report(kind, diag.Span(lexer.Range()))
				}

				break integerLiteral
			}

			lexer.step()
			isFirst = false
		}

		if isLegacyOctalLiteral && lexer.codePoint == '.' {
			lexer.report(diag.OctalLiteralMayNotHaveDecimal,
				diag.Span(logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}, Len: 1}))
			lexer.step()
			for lexer.codePoint >= '0' && lexer.codePoint <= '9' {
				lexer.step()
			}
		}

		isBigIntegerLiteral := lexer.codePoint == 'n' && !hasDot && !hasExponent

		// Slow path: do we need to re-scan the input as text?
		if isBigIntegerLiteral || isInvalidLegacyOctalLiteral {
			text := lexer.Raw()

			// Can't use a leading zero for bigint literals
			if isBigIntegerLiteral && isLegacyOctalLiteral {
				lexer.report(diag.LegacyOctalLiteralMayNotBeBigInt, diag.Span(lexer.Range()))
			}

			// Filter out underscores
			if underscoreCount > 0 {
				bytes := make([]byte, 0, len(text)-underscoreCount)
				for i := 0; i < len(text); i++ {
					c := text[i]
					if c != '_' {
						bytes = append(bytes, c)
					}
				}
				text = string(bytes)
			}

			// Store bigints as text to avoid precision loss
			if isBigIntegerLiteral {
				lexer.Identifier = text
			} else if isInvalidLegacyOctalLiteral {
				// Legacy octal literals may turn out to be a base 10 literal
				// after all
				value, _ := strconv.ParseFloat(text, 64)
				lexer.Number = value
			}
		}

		if base == 16 && !isBigIntegerLiteral {
			lexer.checkIntegerPrecision(lexer.Raw(), 16)
		}
	} else {
		// Floating-point literal
		isInvalidLegacyOctalLiteral := first == '0' && (lexer.codePoint == '8' || lexer.codePoint == '9')

		// Initial digits
		for {
			if lexer.codePoint < '0' || lexer.codePoint > '9' {
				if lexer.codePoint != '_' {
					break
				}

				if isInvalidLegacyOctalLiteral {
					reportUnderscoreAt(diag.LegacyOctalLiteralMayNotContainUnderscores, lexer.end)
				} else {
					checkUnderscore()
				}
			}
			lexer.step()
		}

		// Fractional digits
		if first != '.' && lexer.codePoint == '.' {
			// An underscore must not come last
			if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
				reportUnderscoreAt(diag.NumberLiteralContainsTrailingUnderscores, lastUnderscoreEnd)
			}

			hasDot = true
			lexer.step()
			if lexer.codePoint == '_' {
				reportUnderscoreAt(diag.NumberLiteralContainsConsecutiveUnderscores, lexer.end)
			}
			for {
				if lexer.codePoint < '0' || lexer.codePoint > '9' {
					if lexer.codePoint != '_' {
						break
					}
					checkUnderscore()
				}
				lexer.step()
			}
		}

		// Exponent
		if lexer.codePoint == 'e' || lexer.codePoint == 'E' {
			// An underscore must not come last
			if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
				reportUnderscoreAt(diag.NumberLiteralContainsTrailingUnderscores, lastUnderscoreEnd)
			}

			hasExponent = true
			lexer.step()
			if lexer.codePoint == '+' || lexer.codePoint == '-' {
				lexer.step()
			}
			if lexer.codePoint < '0' || lexer.codePoint > '9' {
				lexer.report(diag.UnexpectedCharactersInNumber, diag.Span(lexer.Range()))
			}
			for {
				if lexer.codePoint < '0' || lexer.codePoint > '9' {
					if lexer.codePoint != '_' {
						break
					}
					checkUnderscore()
				}
				lexer.step()
			}

			if isInvalidLegacyOctalLiteral {
				lexer.report(diag.OctalLiteralMayNotHaveExponent, diag.Span(lexer.Range()))
			}
		}

		// Take a slice of the text to parse
		text := lexer.Raw()

		// Filter out underscores
		if underscoreCount > 0 {
			bytes := make([]byte, 0, len(text)-underscoreCount)
			for i := 0; i < len(text); i++ {
				c := text[i]
				if c != '_' {
					bytes = append(bytes, c)
				}
			}
			text = string(bytes)
		}

		if lexer.codePoint == 'n' && !hasDot && !hasExponent {
			// The only bigint literal that can start with 0 is "0n"
			if len(text) > 1 && first == '0' {
				lexer.report(diag.LegacyOctalLiteralMayNotBeBigInt, diag.Span(lexer.Range()))
			}

			// Store bigints as text to avoid precision loss
			lexer.Identifier = text
		} else if !hasDot && !hasExponent && lexer.end-lexer.start < 10 {
			// Parse a 32-bit integer (very fast path)
			var number uint32 = 0
			for _, c := range text {
				number = number*10 + uint32(c-'0')
			}
			lexer.Number = float64(number)
		} else {
			// Parse a double-precision floating-point number
			value, _ := strconv.ParseFloat(text, 64)
			lexer.Number = value

			if !hasDot && !hasExponent {
				lexer.checkIntegerPrecision(text, 10)
			}
		}
	}

	// An underscore must not come last
	if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
		reportUnderscoreAt(diag.NumberLiteralContainsTrailingUnderscores, lastUnderscoreEnd)
	}

	// Handle bigint literals after the underscore-at-end check above
	if lexer.codePoint == 'n' {
		if hasDot {
			lexer.report(diag.BigIntLiteralContainsDecimalPoint, diag.Span(lexer.Range()))
		} else if hasExponent {
			lexer.report(diag.BigIntLiteralContainsExponent, diag.Span(lexer.Range()))
		} else {
			lexer.Token = TBigIntegerLiteral
		}
		lexer.step()
	}

	lexer.IsLegacyOctalLiteral = isLegacyOctalLiteral

	// Identifiers can't occur immediately after numbers
	if IsIdentifierStart(lexer.codePoint) {
		trailingStart := lexer.end
		for IsIdentifierContinue(lexer.codePoint) {
			lexer.step()
		}
		lexer.report(diag.UnexpectedCharactersInNumber,
			diag.Span(logger.Range{Loc: logger.Loc{Start: int32(trailingStart)}, Len: int32(lexer.end - trailingStart)}))
	}
}

// Warn when an integer literal cannot be represented exactly as an IEEE-754
// double, reporting the value it rounds to.
func (lexer *Lexer) checkIntegerPrecision(text string, base int) {
	cleaned := text
	if strings.ContainsRune(cleaned, '_') {
		cleaned = strings.ReplaceAll(cleaned, "_", "")
	}
	if base == 16 {
		cleaned = cleaned[2:] // "0x"
	}

	exact, ok := new(big.Int).SetString(cleaned, base)
	if !ok {
		return
	}
	if exact.IsInt64() {
		if v := exact.Int64(); v >= -(1<<53) && v <= 1<<53 {
			return
		}
	}

	rounded, _ := new(big.Float).SetFloat64(lexer.Number).Int(nil)
	if exact.Cmp(rounded) != 0 {
		lexer.report(diag.IntegerLiteralWillLosePrecision,
			diag.Span(lexer.Range()), diag.Text(rounded.String()))
	}
}

// ScanRegExp turns the current "/" or "/=" token into a regex literal. Only
// the parser knows whether a slash starts a regex, so this is a retokenize
// entry point rather than part of Next.
func (lexer *Lexer) ScanRegExp() {
	regexpStart := lexer.start

	unterminated := func() {
		lexer.report(diag.UnclosedRegexpLiteral,
			diag.Span(logger.Range{Loc: logger.Loc{Start: int32(regexpStart)}, Len: int32(lexer.end - regexpStart)}))
		lexer.Token = TRegExpLiteral
	}

	for {
		switch lexer.codePoint {
		case '/':
			lexer.step()
			// Flags are identifier characters; validating which flags exist is
			// left to downstream passes
			for IsIdentifierContinue(lexer.codePoint) {
				lexer.step()
			}
			lexer.Token = TRegExpLiteral
			return

		case '[':
			lexer.step()
			for lexer.codePoint != ']' {
				if !lexer.validateAndStepRegExp() {
					unterminated()
					return
				}
			}
			lexer.step()

		default:
			if !lexer.validateAndStepRegExp() {
				unterminated()
				return
			}
		}
	}
}

func (lexer *Lexer) validateAndStepRegExp() bool {
	if lexer.codePoint == '\\' {
		lexer.step()
	}

	switch lexer.codePoint {
	case '\r', '\n', 0x2028, 0x2029:
		// Newlines aren't allowed in regular expressions
		return false

	case -1: // This indicates the end of the file
		return false

	default:
		lexer.step()
		return true
	}
}

// RescanCloseBraceAsTemplateToken is called when a "}" closes a template
// substitution: the brace is re-lexed as the start of a template middle or
// tail.
func (lexer *Lexer) RescanCloseBraceAsTemplateToken() {
	lexer.rescanCloseBraceAsTemplateToken = true
	lexer.codePoint = '`'
	lexer.current = lexer.end
	lexer.end -= 1
	lexer.Next()
	lexer.rescanCloseBraceAsTemplateToken = false
}

func (lexer *Lexer) decodeEscapeSequences(start int, text string) []uint16 {
	decoded := []uint16{}
	i := 0

	reportEscape := func(kind diag.Kind, escapeStart int, escapeEnd int) {
		lexer.report(kind, diag.Span(logger.Range{
			Loc: logger.Loc{Start: int32(start + escapeStart)},
			Len: int32(escapeEnd - escapeStart),
		}))
	}

	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])
		i += width

		switch c {
		case '\r':
			// <CR><LF> and <CR> line terminator sequences are normalized to
			// <LF> in cooked template values
			if i < len(text) && text[i] == '\n' {
				i++
			}
			decoded = append(decoded, '\n')
			continue

		case '\\':
			escapeStart := i - width
			c2, width2 := utf8.DecodeRuneInString(text[i:])
			i += width2

			switch c2 {
			case 'b':
				decoded = append(decoded, '\b')
				continue

			case 'f':
				decoded = append(decoded, '\f')
				continue

			case 'n':
				decoded = append(decoded, '\n')
				continue

			case 'r':
				decoded = append(decoded, '\r')
				continue

			case 't':
				decoded = append(decoded, '\t')
				continue

			case 'v':
				decoded = append(decoded, '\v')
				continue

			case '0', '1', '2', '3', '4', '5', '6', '7':
				// 1-3 digit octal
				value := c2 - '0'
				c3, width3 := utf8.DecodeRuneInString(text[i:])
				switch c3 {
				case '0', '1', '2', '3', '4', '5', '6', '7':
					value = value*8 + c3 - '0'
					i += width3
					c4, width4 := utf8.DecodeRuneInString(text[i:])
					switch c4 {
					case '0', '1', '2', '3', '4', '5', '6', '7':
						temp := value*8 + c4 - '0'
						if temp < 256 {
							value = temp
							i += width4
						}
					}
				}
				c = value

			case 'x':
				// 2-digit hexadecimal
				value := '\000'
				ok := true
				for j := 0; j < 2; j++ {
					c3, width3 := utf8.DecodeRuneInString(text[i:])
					switch c3 {
					case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
						value = value*16 | (c3 - '0')
					case 'a', 'b', 'c', 'd', 'e', 'f':
						value = value*16 | (c3 + 10 - 'a')
					case 'A', 'B', 'C', 'D', 'E', 'F':
						value = value*16 | (c3 + 10 - 'A')
					default:
						reportEscape(diag.InvalidHexEscapeSequence, escapeStart, i)
						ok = false
					}
					if !ok {
						break
					}
					i += width3
				}
				if !ok {
					c = utf8.RuneError
				} else {
					c = value
				}

			case 'u':
				// Unicode
				value := '\000'

				// Check the first character
				c3, width3 := utf8.DecodeRuneInString(text[i:])
				i += width3

				if c3 == '{' {
					// Variable-length
					hexStart := escapeStart
					isFirst := true
					isOutOfRange := false
					ok := true

				variableLength:
					for {
						c3, width3 = utf8.DecodeRuneInString(text[i:])

						switch c3 {
						case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
							value = value*16 | (c3 - '0')
						case 'a', 'b', 'c', 'd', 'e', 'f':
							value = value*16 | (c3 + 10 - 'a')
						case 'A', 'B', 'C', 'D', 'E', 'F':
							value = value*16 | (c3 + 10 - 'A')
						case '}':
							i += width3
							if isFirst {
								reportEscape(diag.ExpectedHexDigitsInUnicodeEscape, hexStart, i)
								ok = false
							}
							break variableLength
						default:
							reportEscape(diag.ExpectedHexDigitsInUnicodeEscape, hexStart, i)
							ok = false
							break variableLength
						}
						i += width3

						if value > utf8.MaxRune {
							isOutOfRange = true
						}

						isFirst = false
					}

					if isOutOfRange {
						reportEscape(diag.EscapedCodePointInUnicodeOutOfRange, hexStart, i)
						ok = false
					}
					if !ok {
						c = utf8.RuneError
					} else {
						c = value
					}
				} else {
					// Fixed-length
					ok := true
					for j := 0; j < 4; j++ {
						switch c3 {
						case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
							value = value*16 | (c3 - '0')
						case 'a', 'b', 'c', 'd', 'e', 'f':
							value = value*16 | (c3 + 10 - 'a')
						case 'A', 'B', 'C', 'D', 'E', 'F':
							value = value*16 | (c3 + 10 - 'A')
						default:
							reportEscape(diag.ExpectedHexDigitsInUnicodeEscape, escapeStart, i)
							ok = false
						}
						if !ok {
							break
						}

						if j < 3 {
							c3, width3 = utf8.DecodeRuneInString(text[i:])
							i += width3
						}
					}
					if !ok {
						c = utf8.RuneError
					} else {
						c = value
					}
				}

			case '\r':
				// Ignore line continuations. A line continuation is not an
				// escaped newline. Make sure Windows CRLF counts as a single
				// newline.
				if i < len(text) && text[i] == '\n' {
					i++
				}
				continue

			case '\n', '\u2028', '\u2029':
				// Ignore line continuations
				continue

			default:
				c = c2
			}
		}

		if c <= 0xFFFF {
			decoded = append(decoded, uint16(c))
		} else {
			c -= 0x10000
			decoded = append(decoded, uint16(0xD800+((c>>10)&0x3FF)), uint16(0xDC00+(c&0x3FF)))
		}
	}

	return decoded
}

var jsxEntity = map[string]rune{
	"amp":  '&',
	"apos": '\'',
	"gt":   '>',
	"lt":   '<',
	"nbsp": ' ',
	"quot": '"',
}

func decodeJSXEntities(decoded []uint16, text string) []uint16 {
	i := 0

	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])
		i += width

		if c == '&' {
			length := strings.IndexByte(text[i:], ';')
			if length > 0 {
				entity := text[i : i+length]
				if entity[0] == '#' {
					number := entity[1:]
					base := 10
					if len(number) > 1 && number[0] == 'x' {
						number = number[1:]
						base = 16
					}
					if value, err := strconv.ParseInt(number, base, 32); err == nil {
						c = rune(value)
						i += length + 1
					}
				} else if value, ok := jsxEntity[entity]; ok {
					c = value
					i += length + 1
				}
			}
		}

		if c <= 0xFFFF {
			decoded = append(decoded, uint16(c))
		} else {
			c -= 0x10000
			decoded = append(decoded, uint16(0xD800+((c>>10)&0x3FF)), uint16(0xDC00+(c&0x3FF)))
		}
	}

	return decoded
}

func fixWhitespaceAndDecodeJSXEntities(text string) []uint16 {
	afterLastNonWhitespace := -1
	decoded := []uint16{}
	i := 0

	// Trim whitespace off the end of the first line
	firstNonWhitespace := 0

	// Split into lines
	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])

		switch c {
		case '\r', '\n', '\u2028', '\u2029':
			// Newline
			if firstNonWhitespace != -1 && afterLastNonWhitespace != -1 {
				if len(decoded) > 0 {
					decoded = append(decoded, ' ')
				}

				// Trim whitespace off the start and end of lines in the middle
				decoded = decodeJSXEntities(decoded, text[firstNonWhitespace:afterLastNonWhitespace])
			}

			// Reset for the next line
			firstNonWhitespace = -1

		case '\t', ' ':
			// Whitespace

		default:
			// Check for unusual whitespace characters
			if !IsWhitespace(c) {
				afterLastNonWhitespace = i + width
				if firstNonWhitespace == -1 {
					firstNonWhitespace = i
				}
			}
		}

		i += width
	}

	if firstNonWhitespace != -1 {
		if len(decoded) > 0 {
			decoded = append(decoded, ' ')
		}

		// Trim whitespace off the start of the last line
		decoded = decodeJSXEntities(decoded, text[firstNonWhitespace:])
	}

	return decoded
}

func utf16ToString(text []uint16) string {
	b := strings.Builder{}
	n := len(text)
	for i := 0; i < n; i++ {
		r := rune(text[i])
		if r >= 0xD800 && r <= 0xDBFF && i+1 < n {
			if r2 := rune(text[i+1]); r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = (r << 10) + r2 + (0x10000 - (0xD800 << 10) - 0xDC00)
				i++
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UTF16EqualsString avoids allocating when comparing a decoded literal
// against a known string.
func UTF16EqualsString(text []uint16, str string) bool {
	if len(text) < len(str) {
		// Strings can't be equal if UTF-16 encoding is longer than UTF-8 encoding
		return false
	}
	temp := [utf8.UTFMax]byte{}
	n := len(text)
	j := 0
	for i := 0; i < n; i++ {
		r1 := rune(text[i])
		if r1 >= 0xD800 && r1 <= 0xDBFF && i+1 < n {
			if r2 := rune(text[i+1]); r2 >= 0xDC00 && r2 <= 0xDFFF {
				r1 = (r1 << 10) + r2 + (0x10000 - (0xD800 << 10) - 0xDC00)
				i++
			}
		}
		width := encodeWTF8Rune(temp[:], r1)
		if j+width > len(str) {
			return false
		}
		for k := 0; k < width; k++ {
			if temp[k] != str[j] {
				return false
			}
			j++
		}
	}
	return j == len(str)
}

// This is a clone of "utf8.EncodeRune" that has been modified to encode using
// WTF-8 instead. See https://simonsapin.github.io/wtf-8/ for more info.
func encodeWTF8Rune(p []byte, r rune) int {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	switch i := uint32(r); {
	case i <= 0x7F:
		p[0] = byte(r)
		return 1
	case i <= 0x7FF:
		_ = p[1] // eliminate bounds checks
		p[0] = 0xC0 | byte(r>>6)
		p[1] = 0x80 | byte(r)&0x3F
		return 2
	case i > utf8.MaxRune:
		r = utf8.RuneError
		fallthrough
	case i <= 0xFFFF:
		_ = p[2] // eliminate bounds checks
		p[0] = 0xE0 | byte(r>>12)
		p[1] = 0x80 | byte(r>>6)&0x3F
		p[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		_ = p[3] // eliminate bounds checks
		p[0] = 0xF0 | byte(r>>18)
		p[1] = 0x80 | byte(r>>12)&0x3F
		p[2] = 0x80 | byte(r>>6)&0x3F
		p[3] = 0x80 | byte(r)&0x3F
		return 4
	}
}
