package js_lexer

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/logger"
)

type tokenRecord struct {
	Token      T
	Text       string
	Newline    bool
	Identifier string
	Number     float64
}

func drain(t *testing.T, contents string) ([]tokenRecord, []diag.Diagnostic) {
	t.Helper()

	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", contents)
	lexer := NewLexer(source, router)

	var tokens []tokenRecord
	for lexer.Token != TEndOfFile {
		record := tokenRecord{
			Token:   lexer.Token,
			Text:    lexer.Raw(),
			Newline: lexer.HasNewlineBefore,
		}
		switch lexer.Token {
		case TIdentifier, TEscapedKeyword, TPrivateIdentifier, TBigIntegerLiteral:
			record.Identifier = lexer.Identifier
		case TNumericLiteral:
			record.Number = lexer.Number
		}
		tokens = append(tokens, record)
		lexer.Next()
	}
	return tokens, collector.Diagnostics
}

func expectTokens(t *testing.T, contents string, expected ...T) {
	t.Helper()
	tokens, diags := drain(t, contents)
	var kinds []T
	for _, token := range tokens {
		kinds = append(kinds, token.Token)
	}
	if diff := deep.Equal(kinds, expected); diff != nil {
		t.Errorf("%q: %v", contents, diff)
	}
	for _, d := range diags {
		t.Errorf("%q: unexpected diagnostic %s", contents, d.Code())
	}
}

func expectLexerDiag(t *testing.T, contents string, kind diag.Kind) {
	t.Helper()
	_, diags := drain(t, contents)
	for _, d := range diags {
		if d.Kind == kind {
			return
		}
	}
	t.Errorf("%q: missing diagnostic %s", contents, diag.Table[kind].Code)
}

func TestEmptySource(t *testing.T) {
	tokens, diags := drain(t, "")
	if len(tokens) != 0 {
		t.Errorf("expected only end-of-file, got %v", tokens)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) [ ] { } ; , .",
		TOpenParen, TCloseParen, TOpenBracket, TCloseBracket,
		TOpenBrace, TCloseBrace, TSemicolon, TComma, TDot)
	expectTokens(t, "?? ?. ??= ...",
		TQuestionQuestion, TQuestionDot, TQuestionQuestionEquals, TDotDotDot)
	expectTokens(t, ">>>= >>> >>= >> >=",
		TGreaterThanGreaterThanGreaterThanEquals, TGreaterThanGreaterThanGreaterThan,
		TGreaterThanGreaterThanEquals, TGreaterThanGreaterThan, TGreaterThanEquals)
	expectTokens(t, "a?.b", TIdentifier, TQuestionDot, TIdentifier)
	expectTokens(t, "a?.5:b", TIdentifier, TQuestion, TNumericLiteral, TColon, TIdentifier)
}

func TestKeywords(t *testing.T) {
	expectTokens(t, "class extends super", TClass, TExtends, TSuper)
	expectTokens(t, "of async let", TIdentifier, TIdentifier, TIdentifier)
}

func TestIdentifiers(t *testing.T) {
	tokens, _ := drain(t, "foo $bar _baz été")
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	for _, token := range tokens {
		if token.Token != TIdentifier {
			t.Errorf("%q is %v, want identifier", token.Text, token.Token)
		}
	}
}

func TestEscapedKeywordIsNotAKeyword(t *testing.T) {
	tokens, _ := drain(t, `\u0076ar`)
	if len(tokens) != 1 || tokens[0].Token != TEscapedKeyword {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Identifier != "var" {
		t.Errorf("decoded identifier = %q, want var", tokens[0].Identifier)
	}
}

func TestNumbers(t *testing.T) {
	tokens, _ := drain(t, "0 123 1.5 .5 1e3 0x10 0b101 0o17 1_000")
	values := []float64{0, 123, 1.5, 0.5, 1000, 16, 5, 15, 1000}
	if len(tokens) != len(values) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(values))
	}
	for i, token := range tokens {
		if token.Token != TNumericLiteral {
			t.Errorf("token %d is %v", i, token.Token)
		}
		if token.Number != values[i] {
			t.Errorf("token %d = %v, want %v", i, token.Number, values[i])
		}
	}
}

func TestBigIntLiterals(t *testing.T) {
	tokens, diags := drain(t, "123n 0x10n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[0].Token != TBigIntegerLiteral || tokens[0].Identifier != "123" {
		t.Errorf("got %v", tokens[0])
	}
	if tokens[1].Token != TBigIntegerLiteral {
		t.Errorf("got %v", tokens[1])
	}
}

func TestNumberDiagnostics(t *testing.T) {
	expectLexerDiag(t, "1__2", diag.NumberLiteralContainsConsecutiveUnderscores)
	expectLexerDiag(t, "12_ ", diag.NumberLiteralContainsTrailingUnderscores)
	expectLexerDiag(t, "0x", diag.UnexpectedCharactersInHexNumber)
	expectLexerDiag(t, "0b", diag.UnexpectedCharactersInBinaryNumber)
	expectLexerDiag(t, "0o", diag.UnexpectedCharactersInOctalNumber)
	expectLexerDiag(t, "1.5n", diag.BigIntLiteralContainsDecimalPoint)
	expectLexerDiag(t, "1e3n", diag.BigIntLiteralContainsExponent)
	expectLexerDiag(t, "0123n", diag.LegacyOctalLiteralMayNotBeBigInt)
	expectLexerDiag(t, "01_2", diag.LegacyOctalLiteralMayNotContainUnderscores)
	expectLexerDiag(t, "123abc", diag.UnexpectedCharactersInNumber)
}

func TestIntegerPrecisionLoss(t *testing.T) {
	expectLexerDiag(t, "9007199254740993", diag.IntegerLiteralWillLosePrecision)

	_, diags := drain(t, "9007199254740992")
	if len(diags) != 0 {
		t.Errorf("2^53 is exact; got %v", diags)
	}
}

func TestStrings(t *testing.T) {
	expectTokens(t, `"abc" 'def'`, TStringLiteral, TStringLiteral)
	expectLexerDiag(t, `"abc`, diag.UnclosedStringLiteral)
	expectLexerDiag(t, "\"abc\ndef\"", diag.UnclosedStringLiteral)
	expectLexerDiag(t, `"\u{110000}"`, diag.EscapedCodePointInUnicodeOutOfRange)
	expectLexerDiag(t, `"\xZZ"`, diag.InvalidHexEscapeSequence)
}

func TestTemplates(t *testing.T) {
	expectTokens(t, "`abc`", TNoSubstitutionTemplateLiteral)
	expectTokens(t, "`a${", TTemplateHead)
	expectLexerDiag(t, "`abc", diag.UnclosedTemplate)
}

func TestComments(t *testing.T) {
	expectTokens(t, "a // comment\nb", TIdentifier, TIdentifier)
	expectTokens(t, "a /* comment */ b", TIdentifier, TIdentifier)
	expectLexerDiag(t, "/* never closed", diag.UnclosedBlockComment)
	expectLexerDiag(t, "a */ b", diag.UnopenedBlockComment)
}

func TestHashbang(t *testing.T) {
	expectTokens(t, "#!/usr/bin/env node\nx", THashbang, TIdentifier)
}

func TestPrivateIdentifiers(t *testing.T) {
	tokens, _ := drain(t, "#foo")
	if len(tokens) != 1 || tokens[0].Token != TPrivateIdentifier {
		t.Fatalf("got %v", tokens)
	}
	expectLexerDiag(t, "# foo", diag.UnexpectedHashCharacter)
}

func TestNewlineFlag(t *testing.T) {
	tokens, _ := drain(t, "a\nb c")
	if !tokens[0].Newline {
		t.Errorf("first token should have the newline flag")
	}
	if !tokens[1].Newline {
		t.Errorf("b follows a newline")
	}
	if tokens[2].Newline {
		t.Errorf("c does not follow a newline")
	}
}

func TestControlCharacter(t *testing.T) {
	expectLexerDiag(t, "a \x01 b", diag.UnexpectedControlCharacter)
}

func TestInvalidUtf8(t *testing.T) {
	expectLexerDiag(t, "a \xff b", diag.InvalidUtf8Sequence)
}

func TestRegExpRescan(t *testing.T) {
	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", "/abc/g")
	lexer := NewLexer(source, router)

	if lexer.Token != TSlash {
		t.Fatalf("got %v, want slash", lexer.Token)
	}
	lexer.ScanRegExp()
	if lexer.Token != TRegExpLiteral {
		t.Fatalf("got %v after rescan", lexer.Token)
	}
	if lexer.Raw() != "/abc/g" {
		t.Errorf("regexp text = %q", lexer.Raw())
	}
	if len(collector.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", collector.Diagnostics)
	}
}

func TestUnclosedRegExp(t *testing.T) {
	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", "/abc")
	lexer := NewLexer(source, router)
	lexer.ScanRegExp()

	found := false
	for _, d := range collector.Diagnostics {
		if d.Kind == diag.UnclosedRegexpLiteral {
			found = true
		}
	}
	if !found {
		t.Errorf("missing unclosed-regexp diagnostic")
	}
}

func TestGreaterThanShearing(t *testing.T) {
	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", "A>>B")
	lexer := NewLexer(source, router)

	lexer.Next() // skip A
	if lexer.Token != TGreaterThanGreaterThan {
		t.Fatalf("got %v, want >>", lexer.Token)
	}
	lexer.ExpectGreaterThan(false)
	if lexer.Token != TGreaterThan {
		t.Fatalf("got %v after shear, want >", lexer.Token)
	}
	lexer.ExpectGreaterThan(false)
	if lexer.Token != TIdentifier || lexer.Identifier != "B" {
		t.Fatalf("got %v %q after both shears", lexer.Token, lexer.Identifier)
	}
}

func TestTransactionRollback(t *testing.T) {
	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", "a b `unclosed")
	lexer := NewLexer(source, router)

	transaction := lexer.BeginTransaction()
	lexer.Next() // b
	lexer.Next() // the unclosed template produces a buffered diagnostic
	if lexer.Token != TNoSubstitutionTemplateLiteral {
		t.Fatalf("got %v inside transaction", lexer.Token)
	}
	lexer.RollBackTransaction(transaction)

	if lexer.Token != TIdentifier || lexer.Identifier != "a" {
		t.Fatalf("rollback did not restore the cursor: %v %q", lexer.Token, lexer.Identifier)
	}
	if len(collector.Diagnostics) != 0 {
		t.Errorf("rolled-back diagnostics leaked: %v", collector.Diagnostics)
	}
}

func TestDeterminism(t *testing.T) {
	contents := "let x = `a${f(1,2)}b`;\nclass C { #p = /re/g }\n"
	first, firstDiags := drain(t, contents)
	second, secondDiags := drain(t, contents)
	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("token streams differ: %v", diff)
	}
	if diff := deep.Equal(firstDiags, secondDiags); diff != nil {
		t.Errorf("diagnostic streams differ: %v", diff)
	}
}

func TestTokenSpansInsideBuffer(t *testing.T) {
	contents := "let x = 1; \"unclosed\nclass C {"
	collector := &diag.Collector{}
	router := diag.NewRouter(collector)
	source := logger.NewSource("<test>", contents)
	lexer := NewLexer(source, router)

	for lexer.Token != TEndOfFile {
		r := lexer.Range()
		if r.Loc.Start < 0 || r.End() > int32(len(contents)) || r.Len < 0 {
			t.Fatalf("token span [%d, %d) outside buffer", r.Loc.Start, r.End())
		}
		lexer.Next()
	}
	if lexer.Range().Len != 0 {
		t.Errorf("end-of-file should have a zero-length span")
	}
}
