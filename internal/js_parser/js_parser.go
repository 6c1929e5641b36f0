package js_parser

// The parser is a single pass over the token stream. It does not build a
// program-wide AST: statements are parsed and visited immediately, and the
// only tree that ever exists is the expression tree of the statement being
// parsed, allocated from an arena that is reset once the statement's visits
// have been emitted.
//
// Context-sensitive decisions (arrow functions, "let" as a declaration, JSX
// vs. generics) use bounded backtracking built on lexer transactions. A
// rolled-back transaction leaves no trace in either output stream.

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

type Language uint8

const (
	LanguageJS Language = iota
	LanguageTS
)

type TopLevelAwaitMode uint8

const (
	// "await" at the top level is an operator only when what follows can
	// start an expression
	TopLevelAwaitAuto TopLevelAwaitMode = iota
	// "await" at the top level is always an operator
	TopLevelAwaitOperator
)

const defaultMaxDepth = 1000

type Options struct {
	Language      Language
	JSX           bool
	TopLevelAwait TopLevelAwaitMode

	// Nesting depth (parentheses, brackets, braces) before the parser gives
	// up on the enclosing statement. Zero means the default.
	MaxDepth int
}

func (options *Options) ts() bool {
	return options.Language == LanguageTS
}

type awaitOrYield uint8

const (
	// The keyword is an ordinary identifier here
	allowIdent awaitOrYield = iota
	// The keyword is an operator here
	allowExpr
)

// fnContext describes the enclosing function (or the top level). It is saved
// and restored on the call stack around nested function bodies.
type fnContext struct {
	await        awaitOrYield
	yield        awaitOrYield
	isTopLevel   bool
	isGenerator  bool
	isAsync      bool
	isClassBody  bool
	isConstructor bool

	// break/continue validation. Saved per function so a loop outside a
	// nested function doesn't legalize "break" inside it.
	loopDepth   int
	switchDepth int
}

type parser struct {
	options Options
	source  logger.Source
	diags   *diag.Router
	lexer   js_lexer.Lexer
	visitor visit.Visitor
	arena   js_ast.Arena

	fn fnContext

	// End of the most recently consumed token; where a missing semicolon
	// would be inserted.
	prevEnd logger.Loc

	// Range of the most recently consumed token
	prevRange logger.Range

	// Nesting depth for the depth limit
	depth    int
	maxDepth int

	// Number of parseExpr calls on the stack. Statements inside a function
	// expression body run while the enclosing expression's nodes are still
	// live, so the arena may only be reset when this is zero.
	liveExprs int

	// "in" is not a binary operator while parsing a for-loop initializer
	allowIn bool

	// Inside a TypeScript namespace body
	inNamespace bool

	// Non-nil inside "declare namespace"; points at the "declare" keyword
	declareNamespaceKeyword *logger.Range

	// Open scopes that still need exit events, used to balance the stream
	// when the depth limit unwinds a statement.
	openScopes []scopeKind
}

type scopeKind uint8

const (
	scopeBlock scopeKind = iota
	scopeFunction
	scopeClass
	scopeFor
	scopeWith
	scopeIndexSignature
)

// Parse runs the parser over one source file, streaming visits into v and
// diagnostics into reporter. It always emits a balanced visit stream ending
// with EndOfModule, no matter how broken the input is.
func Parse(source logger.Source, options Options, v visit.Visitor, reporter diag.Reporter) {
	if options.MaxDepth <= 0 {
		options.MaxDepth = defaultMaxDepth
	}

	diags := diag.NewRouter(reporter)
	p := &parser{
		options:  options,
		source:   source,
		diags:    diags,
		visitor:  v,
		maxDepth: options.MaxDepth,
		allowIn:  true,
		fn: fnContext{
			isTopLevel: true,
			await:      topLevelAwait(options),
		},
	}
	p.lexer = js_lexer.NewLexer(source, diags)

	// "#!/usr/bin/env node"
	if p.lexer.Token == js_lexer.THashbang {
		p.next()
	}

	p.parseStmtsUpTo(js_lexer.TEndOfFile)
	p.visitor.EndOfModule()
}

func topLevelAwait(options Options) awaitOrYield {
	if options.TopLevelAwait == TopLevelAwaitOperator {
		return allowExpr
	}
	// Resolved per use in auto mode
	return allowIdent
}

// A depthLimitPanic unwinds to the nearest statement boundary after the depth
// limit is exceeded. It never escapes Parse.
type depthLimitPanic struct{}

func (p *parser) checkDepth() {
	p.depth++
	if p.depth > p.maxDepth {
		p.report(diag.DepthLimitExceeded, diag.Span(p.lexer.Range()))
		panic(depthLimitPanic{})
	}
}

func (p *parser) releaseDepth() {
	p.depth--
}

func (p *parser) report(kind diag.Kind, args ...diag.Arg) {
	p.diags.ReportDiagnostic(diag.New(kind, args...))
}

// next consumes the current token.
func (p *parser) next() {
	p.prevEnd = logger.Loc{Start: p.lexer.Range().End()}
	p.prevRange = p.lexer.Range()
	p.lexer.Next()
}

func (p *parser) eat(token js_lexer.T) bool {
	if p.lexer.Token == token {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it matches, and otherwise reports the
// given diagnostic at the current token and leaves the cursor alone so the
// caller can resynchronize.
func (p *parser) expect(token js_lexer.T, kind diag.Kind, args ...diag.Arg) bool {
	if p.lexer.Token == token {
		p.next()
		return true
	}
	if len(args) == 0 {
		args = []diag.Arg{diag.Span(p.lexer.Range())}
	}
	p.report(kind, args...)
	return false
}

// zeroRangeAt is the insertion point used by "missing token" diagnostics.
func zeroRangeAt(loc logger.Loc) logger.Range {
	return logger.Range{Loc: loc, Len: 0}
}

// expectOrInsertSemicolon implements automatic semicolon insertion. A missing
// semicolon is fine when the next token is on a new line, is "}", or is the
// end of the file. Anything else is diagnosed, and parsing continues as if
// the semicolon were present.
func (p *parser) expectOrInsertSemicolon() {
	if p.lexer.Token == js_lexer.TSemicolon {
		p.next()
		return
	}
	if p.lexer.HasNewlineBefore ||
		p.lexer.Token == js_lexer.TCloseBrace ||
		p.lexer.Token == js_lexer.TEndOfFile {
		return
	}
	p.report(diag.MissingSemicolonAfterStatement, diag.Span(zeroRangeAt(p.prevEnd)))
}

// hasSemicolonEquivalent mirrors expectOrInsertSemicolon without reporting.
func (p *parser) hasSemicolonEquivalent() bool {
	return p.lexer.Token == js_lexer.TSemicolon ||
		p.lexer.HasNewlineBefore ||
		p.lexer.Token == js_lexer.TCloseBrace ||
		p.lexer.Token == js_lexer.TEndOfFile
}

// Scope events are routed through these helpers so every enter is matched by
// exactly one exit even when the depth limit unwinds mid-statement.
func (p *parser) enterScope(kind scopeKind) {
	p.openScopes = append(p.openScopes, kind)
	switch kind {
	case scopeBlock:
		p.visitor.EnterBlockScope()
	case scopeFunction:
		p.visitor.EnterFunctionScope()
	case scopeClass:
		p.visitor.EnterClassScope()
	case scopeFor:
		p.visitor.EnterForScope()
	case scopeWith:
		p.visitor.EnterWithScope()
	case scopeIndexSignature:
		p.visitor.EnterIndexSignatureScope()
	}
}

func (p *parser) enterNamedFunctionScope(name logger.Range) {
	p.openScopes = append(p.openScopes, scopeFunction)
	p.visitor.EnterNamedFunctionScope(name)
}

func (p *parser) exitScope(kind scopeKind) {
	if n := len(p.openScopes); n == 0 || p.openScopes[n-1] != kind {
		// Unbalanced exits are a parser bug, not a source error
		panic("scope stack mismatch")
	}
	p.openScopes = p.openScopes[:len(p.openScopes)-1]
	switch kind {
	case scopeBlock:
		p.visitor.ExitBlockScope()
	case scopeFunction:
		p.visitor.ExitFunctionScope()
	case scopeClass:
		p.visitor.ExitClassScope()
	case scopeFor:
		p.visitor.ExitForScope()
	case scopeWith:
		p.visitor.ExitWithScope()
	case scopeIndexSignature:
		p.visitor.ExitIndexSignatureScope()
	}
}

// closeScopesDownTo emits the exit events for everything opened after the
// given stack mark. Used when a panic unwinds out of a statement.
func (p *parser) closeScopesDownTo(mark int) {
	for len(p.openScopes) > mark {
		p.exitScope(p.openScopes[len(p.openScopes)-1])
	}
}

// skipToStatementBoundary discards tokens until something that plausibly
// starts or ends a statement. This is the recovery of last resort.
func (p *parser) skipToStatementBoundary() {
	for {
		switch p.lexer.Token {
		case js_lexer.TEndOfFile, js_lexer.TSemicolon, js_lexer.TCloseBrace:
			return

		case js_lexer.TVar, js_lexer.TConst, js_lexer.TFunction, js_lexer.TClass,
			js_lexer.TIf, js_lexer.TFor, js_lexer.TWhile, js_lexer.TDo,
			js_lexer.TSwitch, js_lexer.TTry, js_lexer.TReturn, js_lexer.TThrow,
			js_lexer.TBreak, js_lexer.TContinue, js_lexer.TImport, js_lexer.TExport:
			return

		default:
			p.next()
		}
	}
}

// The tokens that can never begin an expression.
func tokenStartsExpression(token js_lexer.T) bool {
	switch token {
	case js_lexer.TEndOfFile, js_lexer.TSyntaxError, js_lexer.TCloseBrace,
		js_lexer.TCloseBracket, js_lexer.TCloseParen, js_lexer.TColon,
		js_lexer.TComma, js_lexer.TSemicolon, js_lexer.TEqualsGreaterThan,
		js_lexer.TQuestion, js_lexer.TQuestionDot, js_lexer.TDot,
		js_lexer.TTemplateMiddle, js_lexer.TTemplateTail,
		js_lexer.TAsterisk, js_lexer.TAsteriskAsterisk, js_lexer.TPercent,
		js_lexer.TGreaterThan, js_lexer.TGreaterThanEquals,
		js_lexer.TLessThanEquals, js_lexer.TEqualsEquals,
		js_lexer.TEqualsEqualsEquals, js_lexer.TExclamationEquals,
		js_lexer.TExclamationEqualsEquals, js_lexer.TAmpersand,
		js_lexer.TAmpersandAmpersand, js_lexer.TBar, js_lexer.TBarBar,
		js_lexer.TCaret, js_lexer.TQuestionQuestion, js_lexer.TIn,
		js_lexer.TInstanceof, js_lexer.TEquals:
		return false
	}
	return true
}

func (p *parser) currentYieldIsOperator() bool {
	return p.fn.yield == allowExpr
}

// pushFn swaps in the context for a nested function body and returns the
// previous context plus the loop/switch depths to restore.
func (p *parser) pushFn(next fnContext) fnContext {
	prev := p.fn
	next.loopDepth = 0
	next.switchDepth = 0
	p.fn = next
	return prev
}

func (p *parser) popFn(prev fnContext) {
	p.fn = prev
}
