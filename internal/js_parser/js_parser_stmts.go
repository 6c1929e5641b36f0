package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

type parseStmtOpts struct {
	// Lexical declarations are statements, but not legal everywhere:
	// "if (x) let y = 1" is an error even though "if (x) var y = 1" is not.
	lexicalDeclAllowed bool

	// Inside a "declare namespace" body only declarations may appear
	isDeclareContext bool
}

func (p *parser) parseStmtsUpTo(end js_lexer.T) {
	for {
		switch p.lexer.Token {
		case end:
			return
		case js_lexer.TEndOfFile:
			// The caller reports its own unclosed-block diagnostic
			return
		}
		p.parseStmtWithRecovery(parseStmtOpts{lexicalDeclAllowed: true})
	}
}

// parseStmtWithRecovery catches the depth-limit unwind so one pathological
// statement doesn't take down the whole file, and rebalances the scope
// stream before resuming.
func (p *parser) parseStmtWithRecovery(opts parseStmtOpts) {
	scopeMark := len(p.openScopes)
	depth := p.depth

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(depthLimitPanic); !ok {
				panic(r)
			}
			p.closeScopesDownTo(scopeMark)
			p.depth = depth
			p.skipToStatementBoundary()
			p.eat(js_lexer.TSemicolon)
		}
		if p.liveExprs == 0 {
			p.arena.Reset()
		}
	}()

	p.parseStmt(opts)
}

func (p *parser) parseStmt(opts parseStmtOpts) {
	switch p.lexer.Token {
	case js_lexer.TSemicolon:
		p.next()

	case js_lexer.TOpenBrace:
		p.parseBlock(diag.UnclosedCodeBlock)

	case js_lexer.TVar:
		keyword := p.lexer.Range()
		p.next()
		p.parseDeclarationsStmt(diag.VarKindVar, keyword, opts)

	case js_lexer.TConst:
		keyword := p.lexer.Range()
		p.next()
		if p.lexer.Token == js_lexer.TEnum {
			p.parseEnum(keyword, diag.EnumKindConst)
			return
		}
		p.parseDeclarationsStmt(diag.VarKindConst, keyword, opts)

	case js_lexer.TIf:
		p.parseIfStmt()

	case js_lexer.TWhile:
		p.parseWhileStmt()

	case js_lexer.TDo:
		p.parseDoWhileStmt()

	case js_lexer.TFor:
		p.parseForStmt()

	case js_lexer.TSwitch:
		p.parseSwitchStmt()

	case js_lexer.TWith:
		p.parseWithStmt()

	case js_lexer.TTry:
		p.parseTryStmt()

	case js_lexer.TReturn:
		keyword := p.lexer.Range()
		p.next()
		if p.hasSemicolonEquivalent() {
			if p.lexer.HasNewlineBefore && tokenStartsExpression(p.lexer.Token) &&
				p.lexer.Token != js_lexer.TOpenBrace {
				p.report(diag.ReturnStatementReturnsNothing, diag.Span(keyword))
			}
			p.eat(js_lexer.TSemicolon)
			return
		}
		value := p.parseExpr(js_ast.LLowest)
		p.visitExpr(value, visitUse)
		p.expectOrInsertSemicolon()

	case js_lexer.TThrow:
		p.next()
		if p.lexer.HasNewlineBefore {
			p.report(diag.ExpectedExpressionBeforeNewline, diag.Span(zeroRangeAt(p.prevEnd)))
			return
		}
		if p.lexer.Token == js_lexer.TSemicolon {
			p.report(diag.ExpectedExpressionBeforeSemicolon, diag.Span(p.lexer.Range()))
			p.next()
			return
		}
		value := p.parseExpr(js_ast.LLowest)
		p.visitExpr(value, visitUse)
		p.expectOrInsertSemicolon()

	case js_lexer.TBreak:
		stmtRange := p.lexer.Range()
		p.next()
		if !p.lexer.HasNewlineBefore && p.lexer.IsIdentifierOrKeyword() {
			// Label-target existence is checked by a later pass
			p.next()
		} else if p.fn.loopDepth == 0 && p.fn.switchDepth == 0 {
			p.report(diag.InvalidBreak, diag.Span(stmtRange))
		}
		p.expectOrInsertSemicolon()

	case js_lexer.TContinue:
		stmtRange := p.lexer.Range()
		p.next()
		if !p.lexer.HasNewlineBefore && p.lexer.IsIdentifierOrKeyword() {
			p.next()
		} else if p.fn.loopDepth == 0 {
			p.report(diag.InvalidContinue, diag.Span(stmtRange))
		}
		p.expectOrInsertSemicolon()

	case js_lexer.TDebugger:
		p.next()
		p.expectOrInsertSemicolon()

	case js_lexer.TFunction:
		p.parseFnStmt(fnStmtOpts{})

	case js_lexer.TClass:
		p.parseClassStmt(classStmtOpts{})

	case js_lexer.TImport:
		p.parseImportStmt()

	case js_lexer.TExport:
		p.parseExportStmt(opts)

	case js_lexer.TCatch:
		p.report(diag.CatchWithoutTry, diag.Span(p.lexer.Range()))
		p.next()
		p.parseCatchTail()

	case js_lexer.TFinally:
		p.report(diag.FinallyWithoutTry, diag.Span(p.lexer.Range()))
		p.next()
		if p.lexer.Token == js_lexer.TOpenBrace {
			p.parseBlock(diag.UnclosedCodeBlock)
		}

	case js_lexer.TCase:
		p.report(diag.UnexpectedCaseOutsideSwitchStatement, diag.Span(p.lexer.Range()))
		p.next()
		p.skipToStatementBoundary()

	case js_lexer.TDefault:
		p.report(diag.UnexpectedDefaultOutsideSwitchStatement, diag.Span(p.lexer.Range()))
		p.next()
		p.skipToStatementBoundary()

	case js_lexer.TElse:
		p.report(diag.ElseHasNoIf, diag.Span(p.lexer.Range()))
		p.next()
		p.parseStmt(parseStmtOpts{})

	case js_lexer.TCloseBrace:
		p.report(diag.UnmatchedRightCurly, diag.Span(p.lexer.Range()))
		p.next()

	case js_lexer.TEnum:
		keyword := p.lexer.Range()
		p.parseEnum(keyword, diag.EnumKindNormal)

	case js_lexer.TIdentifier:
		if p.parseContextualStmt(opts) {
			return
		}
		p.parseExprOrLabelStmt(opts)

	default:
		p.parseExprOrLabelStmt(opts)
	}
}

// parseContextualStmt recognizes statements that start with a contextual
// keyword: "let", "async function", and the TypeScript-only declarations.
// Returns false when the identifier turned out to start an expression.
func (p *parser) parseContextualStmt(opts parseStmtOpts) bool {
	switch p.lexer.Identifier {
	case "let":
		if p.lexer.HasEscapeInKeyword {
			return false
		}
		return p.parseLetStmt(opts)

	case "async":
		if p.lexer.HasEscapeInKeyword {
			return false
		}
		// "async function f() {}", but only on the same line
		t := p.lexer.BeginTransaction()
		asyncRange := p.lexer.Range()
		p.next()
		if p.lexer.Token == js_lexer.TFunction {
			if p.lexer.HasNewlineBefore {
				p.report(diag.NewlineNotAllowedBetweenAsyncAndFunctionKeyword,
					diag.Span(asyncRange), diag.Span(p.lexer.Range()))
			}
			p.lexer.CommitTransaction(t)
			p.parseFnStmt(fnStmtOpts{isAsync: true, asyncRange: asyncRange})
			return true
		}
		p.lexer.RollBackTransaction(t)
		return false

	case "interface":
		if !p.lexer.HasEscapeInKeyword && p.looksLikeTSDeclaration() {
			p.parseInterface(p.lexer.Range())
			return true
		}
		return false

	case "type":
		if !p.lexer.HasEscapeInKeyword && p.looksLikeTSDeclaration() {
			p.parseTypeAlias(p.lexer.Range())
			return true
		}
		return false

	case "namespace", "module":
		if !p.lexer.HasEscapeInKeyword && p.looksLikeTSNamespace() {
			p.parseNamespace(p.lexer.Range(), nil)
			return true
		}
		return false

	case "declare":
		if !p.lexer.HasEscapeInKeyword && p.looksLikeTSDeclaration() {
			p.parseDeclare(p.lexer.Range(), opts)
			return true
		}
		return false

	case "abstract":
		if p.lexer.HasEscapeInKeyword {
			return false
		}
		t := p.lexer.BeginTransaction()
		abstractRange := p.lexer.Range()
		p.next()
		if p.lexer.Token == js_lexer.TClass {
			if p.lexer.HasNewlineBefore {
				p.report(diag.NewlineNotAllowedAfterAbstractKeyword, diag.Span(abstractRange))
			}
			p.lexer.CommitTransaction(t)
			if !p.options.ts() {
				p.report(diag.TypeScriptAbstractClassNotAllowedInJavaScript, diag.Span(abstractRange))
			}
			p.parseClassStmt(classStmtOpts{abstractRange: &abstractRange})
			return true
		}
		p.lexer.RollBackTransaction(t)
		return false
	}

	return false
}

// "let" is a declaration when followed by an identifier, "[", or "{" on the
// same line. Otherwise it's an ordinary identifier.
func (p *parser) parseLetStmt(opts parseStmtOpts) bool {
	t := p.lexer.BeginTransaction()
	keyword := p.lexer.Range()
	p.next()

	isDecl := !p.lexer.HasNewlineBefore &&
		(p.lexer.Token == js_lexer.TIdentifier ||
			p.lexer.Token == js_lexer.TOpenBracket ||
			p.lexer.Token == js_lexer.TOpenBrace ||
			p.lexer.Token == js_lexer.TEscapedKeyword)

	if !isDecl {
		p.lexer.RollBackTransaction(t)
		return false
	}

	p.lexer.CommitTransaction(t)
	p.parseDeclarationsStmt(diag.VarKindLet, keyword, opts)
	return true
}

func (p *parser) parseDeclarationsStmt(kind diag.VarKind, keyword logger.Range, opts parseStmtOpts) {
	p.parseDeclarations(kind, keyword, declOpts{})
	p.expectOrInsertSemicolon()
}

type declOpts struct {
	// In a for-loop head: suppress the missing-initializer check and collect
	// declarations instead of emitting them immediately
	isForHead bool
	collect   *[]declaredName

	// "declare var" and friends: initializers are not allowed
	declareKeyword *logger.Range
}

type declaredName struct {
	name logger.Range
	init visit.InitKind
}

// parseDeclarations parses the declarator list after "var" / "let" / "const".
func (p *parser) parseDeclarations(kind diag.VarKind, keyword logger.Range, opts declOpts) {
	first := true

	for {
		if p.lexer.Token == js_lexer.TComma {
			p.report(diag.StrayCommaInLetStatement, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		if !p.isDeclaratorStart() && !p.lexer.IsIdentifierOrKeyword() {
			switch {
			case p.lexer.Token == js_lexer.TEquals:
				p.report(diag.MissingVariableNameInDeclaration, diag.Span(p.lexer.Range()))
				p.next()
				init := p.parseExpr(js_ast.LComma + 1)
				p.visitExpr(init, visitUse)
			case first && kind == diag.VarKindLet:
				p.report(diag.LetWithNoBindings, diag.Span(keyword))
			default:
				p.report(diag.UnexpectedTokenInVariableDeclaration, diag.Span(p.lexer.Range()))
			}
			return
		}

		p.parseDeclarator(kind, keyword, opts)
		first = false

		if p.eat(js_lexer.TComma) {
			continue
		}

		// "let x y" is a missing comma, not a new statement. In a for-loop
		// head "of" ends the declarator list instead.
		if !p.lexer.HasNewlineBefore && p.isDeclaratorStart() &&
			!(opts.isForHead && p.lexer.IsContextualKeyword("of")) {
			p.report(diag.MissingCommaBetweenVariableDeclarations, diag.Span(zeroRangeAt(p.prevEnd)))
			continue
		}

		return
	}
}

func (p *parser) isDeclaratorStart() bool {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword,
		js_lexer.TOpenBracket, js_lexer.TOpenBrace:
		return true
	}
	return false
}

func (p *parser) parseDeclarator(kind diag.VarKind, keyword logger.Range, opts declOpts) {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		name := p.lexer.Range()
		text := p.lexer.Identifier
		p.checkDeclaredName(kind, name, text)
		p.next()
		p.parseDeclaratorTail(kind, name, opts)

	case js_lexer.TOpenBracket, js_lexer.TOpenBrace:
		var names []declaredName
		p.parseBindingPattern(kind, &names)
		p.parseBindingDeclaratorTail(kind, names, opts)

	default:
		if p.lexer.IsIdentifierOrKeyword() {
			p.report(diag.CannotDeclareVariableWithKeywordName, diag.Span(p.lexer.Range()))
			name := p.lexer.Range()
			p.next()
			p.parseDeclaratorTail(kind, name, opts)
			return
		}
		p.report(diag.UnexpectedTokenInVariableDeclaration, diag.Span(p.lexer.Range()))
		p.skipToStatementBoundary()
	}
}

func (p *parser) checkDeclaredName(kind diag.VarKind, name logger.Range, text string) {
	switch text {
	case "let":
		if kind == diag.VarKindLet || kind == diag.VarKindConst {
			p.report(diag.CannotDeclareVariableNamedLetWithLet, diag.Span(name))
		}
	case "await":
		if p.fn.isAsync || (p.fn.isTopLevel && p.options.TopLevelAwait == TopLevelAwaitOperator) {
			p.report(diag.CannotDeclareAwaitInAsyncFunction, diag.Span(name))
		}
	case "yield":
		if p.fn.isGenerator {
			p.report(diag.CannotDeclareYieldInGeneratorFunction, diag.Span(name))
		}
	}
}

// parseDeclaratorTail handles the optional type annotation and initializer
// after a declarator name, then emits the declaration.
func (p *parser) parseDeclaratorTail(kind diag.VarKind, name logger.Range, opts declOpts) {
	// "let x!: T" (definite assignment assertion)
	if p.lexer.Token == js_lexer.TExclamation && !p.lexer.HasNewlineBefore {
		if !p.options.ts() {
			p.report(diag.TypeScriptNonNullAssertionNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.next()
	}

	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	init := visit.Uninitialized

	switch p.lexer.Token {
	case js_lexer.TEquals:
		equal := p.lexer.Range()
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(value, visitUse)
		init = visit.Initialized

		if opts.declareKeyword != nil {
			p.report(diag.DeclareVarCannotHaveInitializer,
				diag.Span(equal), diag.Span(*opts.declareKeyword), diag.Var(kind))
		}

	case js_lexer.TPlusEquals, js_lexer.TMinusEquals, js_lexer.TAsteriskEquals,
		js_lexer.TSlashEquals, js_lexer.TPercentEquals, js_lexer.TAsteriskAsteriskEquals,
		js_lexer.TLessThanLessThanEquals, js_lexer.TGreaterThanGreaterThanEquals,
		js_lexer.TGreaterThanGreaterThanGreaterThanEquals, js_lexer.TAmpersandEquals,
		js_lexer.TCaretEquals, js_lexer.TBarEquals, js_lexer.TAmpersandAmpersandEquals,
		js_lexer.TBarBarEquals, js_lexer.TQuestionQuestionEquals:
		p.report(diag.CannotUpdateVariableDuringDeclaration,
			diag.Span(p.lexer.Range()), diag.Span(zeroRangeAt(name.Loc)))
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(value, visitUse)
		init = visit.Initialized

	default:
		if kind == diag.VarKindConst && !opts.isForHead && opts.declareKeyword == nil {
			p.report(diag.MissingInitializerInConstDeclaration, diag.Span(name))
		}
	}

	p.declareOrCollect(kind, name, init, opts)
}

func (p *parser) parseBindingDeclaratorTail(kind diag.VarKind, names []declaredName, opts declOpts) {
	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	init := visit.Uninitialized
	if p.lexer.Token == js_lexer.TEquals {
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(value, visitUse)
		init = visit.Initialized
	} else if !opts.isForHead {
		// Destructuring declarations always need an initializer
		p.report(diag.MissingEqualAfterVariable, diag.Span(zeroRangeAt(p.prevEnd)))
	}

	for _, n := range names {
		declared := n
		if init == visit.Initialized {
			declared.init = visit.Initialized
		}
		p.declareOrCollect(kind, declared.name, declared.init, opts)
	}
}

func (p *parser) declareOrCollect(kind diag.VarKind, name logger.Range, init visit.InitKind, opts declOpts) {
	if opts.collect != nil {
		*opts.collect = append(*opts.collect, declaredName{name: name, init: init})
		return
	}
	p.visitor.VariableDeclaration(name, kind, init)
}

// parseBindingPattern consumes an array or object binding pattern and
// records the bound names. Nested defaults are expressions and are visited
// as uses in place.
func (p *parser) parseBindingPattern(kind diag.VarKind, names *[]declaredName) {
	p.checkDepth()
	defer p.releaseDepth()

	switch p.lexer.Token {
	case js_lexer.TOpenBracket:
		p.next()
		for p.lexer.Token != js_lexer.TCloseBracket && p.lexer.Token != js_lexer.TEndOfFile {
			if p.eat(js_lexer.TComma) {
				continue // hole
			}
			p.eat(js_lexer.TDotDotDot)
			p.parseBindingElement(kind, names)
			if p.lexer.Token != js_lexer.TCloseBracket && !p.eat(js_lexer.TComma) {
				break
			}
		}
		p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)

	case js_lexer.TOpenBrace:
		p.next()
		for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
			if p.eat(js_lexer.TDotDotDot) {
				p.parseBindingElement(kind, names)
			} else {
				p.parseObjectBindingProperty(kind, names)
			}
			if p.lexer.Token != js_lexer.TCloseBrace && !p.eat(js_lexer.TComma) {
				break
			}
		}
		p.expect(js_lexer.TCloseBrace, diag.UnclosedObjectLiteral,
			diag.Span(p.lexer.Range()), diag.Span(zeroRangeAt(p.prevEnd)))

	default:
		p.parseBindingElement(kind, names)
	}
}

func (p *parser) parseObjectBindingProperty(kind diag.VarKind, names *[]declaredName) {
	// Computed key: "{ [k]: v }"
	if p.lexer.Token == js_lexer.TOpenBracket {
		p.next()
		key := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(key, visitUse)
		p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)
		p.expect(js_lexer.TColon, diag.MissingValueForObjectLiteralEntry)
		p.parseBindingElement(kind, names)
		return
	}

	if !p.lexer.IsIdentifierOrKeyword() &&
		p.lexer.Token != js_lexer.TStringLiteral &&
		p.lexer.Token != js_lexer.TNumericLiteral {
		p.report(diag.MissingKeyForObjectEntry, diag.Span(p.lexer.Range()))
		p.next()
		return
	}

	name := p.lexer.Range()
	text := p.lexer.Identifier
	isIdent := p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword
	p.next()

	if p.eat(js_lexer.TColon) {
		// "{ key: binding }"
		p.parseBindingElement(kind, names)
		return
	}

	// Shorthand "{ x }" or "{ x = default }"
	if !isIdent {
		p.report(diag.MissingValueForObjectLiteralEntry, diag.Span(name))
		return
	}
	p.checkDeclaredName(kind, name, text)
	if p.lexer.Token == js_lexer.TEquals {
		p.next()
		def := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(def, visitUse)
		*names = append(*names, declaredName{name: name, init: visit.Initialized})
		return
	}
	*names = append(*names, declaredName{name: name})
}

func (p *parser) parseBindingElement(kind diag.VarKind, names *[]declaredName) {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		name := p.lexer.Range()
		p.checkDeclaredName(kind, name, p.lexer.Identifier)
		p.next()
		if p.lexer.Token == js_lexer.TColon {
			p.parseTypeAnnotation()
		}
		if p.lexer.Token == js_lexer.TEquals {
			p.next()
			def := p.parseExpr(js_ast.LComma + 1)
			p.visitExpr(def, visitUse)
			*names = append(*names, declaredName{name: name, init: visit.Initialized})
			return
		}
		*names = append(*names, declaredName{name: name})

	case js_lexer.TOpenBracket, js_lexer.TOpenBrace:
		p.parseBindingPattern(kind, names)
		if p.lexer.Token == js_lexer.TColon {
			p.parseTypeAnnotation()
		}
		if p.lexer.Token == js_lexer.TEquals {
			p.next()
			def := p.parseExpr(js_ast.LComma + 1)
			p.visitExpr(def, visitUse)
		}

	default:
		p.report(diag.UnexpectedTokenInVariableDeclaration, diag.Span(p.lexer.Range()))
		p.next()
	}
}

func (p *parser) parseBlock(unclosed diag.Kind) {
	open := p.lexer.Range()
	p.expect(js_lexer.TOpenBrace, diag.ExpectedLeftCurly)
	p.enterScope(scopeBlock)
	p.parseStmtsUpTo(js_lexer.TCloseBrace)
	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(unclosed, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)
	p.exitScope(scopeBlock)
}

// parseNestedStmt parses the body of a control statement. Declarations are
// not legal there; they are diagnosed with the enclosing statement kind and
// still parsed so the visit stream stays useful.
func (p *parser) parseNestedStmt(kind diag.StatementKind, bodyLoc logger.Loc) {
	switch p.lexer.Token {
	case js_lexer.TClass:
		p.report(diag.ClassStatementNotAllowedInBody,
			diag.Statement(kind), diag.Span(zeroRangeAt(bodyLoc)), diag.Span(p.lexer.Range()))

	case js_lexer.TFunction:
		p.report(diag.FunctionStatementNotAllowedInBody,
			diag.Statement(kind), diag.Span(zeroRangeAt(bodyLoc)), diag.Span(p.lexer.Range()))

	case js_lexer.TConst:
		p.report(diag.LexicalDeclarationNotAllowedInBody,
			diag.Statement(kind), diag.Span(zeroRangeAt(bodyLoc)), diag.Span(p.lexer.Range()))

	case js_lexer.TIdentifier:
		if p.lexer.Identifier == "let" && !p.lexer.HasEscapeInKeyword {
			t := p.lexer.BeginTransaction()
			letRange := p.lexer.Range()
			p.next()
			isDecl := !p.lexer.HasNewlineBefore &&
				(p.lexer.Token == js_lexer.TIdentifier ||
					p.lexer.Token == js_lexer.TOpenBracket ||
					p.lexer.Token == js_lexer.TOpenBrace)
			p.lexer.RollBackTransaction(t)
			if isDecl {
				p.report(diag.LexicalDeclarationNotAllowedInBody,
					diag.Statement(kind), diag.Span(zeroRangeAt(bodyLoc)), diag.Span(letRange))
			}
		}
	}

	p.parseStmt(parseStmtOpts{})
}

// parseParenCondition parses "( expr )" and diagnoses missing parentheses
// precisely: both missing, only the left, or only the right.
func (p *parser) parseParenCondition(
	bothMissing diag.Kind, oneMissing diag.Kind) {

	hasOpen := p.lexer.Token == js_lexer.TOpenParen
	openLoc := p.lexer.Loc()
	if hasOpen {
		p.next()
	}

	condStart := p.lexer.Loc()
	cond := p.parseExpr(js_ast.LLowest)
	condRange := logger.Range{Loc: condStart, Len: p.prevRange.End() - condStart.Start}
	p.warnOnConditionAssignment(cond)
	p.visitExpr(cond, visitUse)

	hasClose := p.lexer.Token == js_lexer.TCloseParen
	if hasClose {
		p.next()
	}

	switch {
	case hasOpen && hasClose:
		// Fine
	case !hasOpen && !hasClose:
		p.report(bothMissing, diag.Span(condRange))
	case !hasOpen:
		p.report(oneMissing, diag.Span(zeroRangeAt(openLoc)), diag.Char('('))
	default:
		p.report(oneMissing, diag.Span(zeroRangeAt(p.prevEnd)), diag.Char(')'))
	}
}

func (p *parser) parseIfStmt() {
	ifKeyword := p.lexer.Range()
	p.next()

	if p.hasConditionEntirelyMissing() {
		p.report(diag.MissingConditionForIfStatement, diag.Span(ifKeyword))
	} else {
		p.parseParenCondition(
			diag.ExpectedParenthesesAroundIfCondition,
			diag.ExpectedParenthesisAroundIfCondition)
	}

	if p.hasMissingBody() {
		p.report(diag.MissingBodyForIfStatement, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.parseNestedStmt(diag.StatementKindIfStatement, p.prevEnd)
	}

	if p.lexer.Token == js_lexer.TElse {
		p.next()
		if p.hasMissingBody() {
			p.report(diag.MissingBodyForIfStatement, diag.Span(zeroRangeAt(p.prevEnd)))
			return
		}
		p.parseNestedStmt(diag.StatementKindIfStatement, p.prevEnd)
	}
}

// The condition is entirely missing when the statement ends right after the
// keyword: "if\nx = 1;"
func (p *parser) hasConditionEntirelyMissing() bool {
	return p.lexer.Token == js_lexer.TSemicolon ||
		p.lexer.Token == js_lexer.TCloseBrace ||
		p.lexer.Token == js_lexer.TEndOfFile
}

func (p *parser) hasMissingBody() bool {
	return p.lexer.Token == js_lexer.TEndOfFile ||
		p.lexer.Token == js_lexer.TCloseBrace
}

func (p *parser) parseWhileStmt() {
	whileKeyword := p.lexer.Range()
	p.next()

	if p.hasConditionEntirelyMissing() {
		p.report(diag.MissingConditionForWhileStatement, diag.Span(whileKeyword))
	} else {
		p.parseParenCondition(
			diag.ExpectedParenthesesAroundWhileCondition,
			diag.ExpectedParenthesisAroundWhileCondition)
	}

	p.fn.loopDepth++
	if p.hasMissingBody() {
		p.report(diag.MissingBodyForWhileStatement, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.parseNestedStmt(diag.StatementKindWhileLoop, p.prevEnd)
	}
	p.fn.loopDepth--
}

func (p *parser) parseDoWhileStmt() {
	doKeyword := p.lexer.Range()
	p.next()

	p.fn.loopDepth++
	if p.lexer.Token == js_lexer.TWhile {
		p.report(diag.MissingBodyForDoWhileStatement, diag.Span(doKeyword))
	} else {
		p.parseNestedStmt(diag.StatementKindDoWhileLoop, p.prevEnd)
	}
	p.fn.loopDepth--

	if !p.eat(js_lexer.TWhile) {
		p.report(diag.MissingWhileAndConditionForDoWhileStatement,
			diag.Span(doKeyword), diag.Span(zeroRangeAt(p.prevEnd)))
		return
	}

	p.parseParenCondition(
		diag.ExpectedParenthesesAroundDoWhileCondition,
		diag.ExpectedParenthesisAroundDoWhileCondition)

	// The semicolon after "do {} while (x)" is optional
	p.eat(js_lexer.TSemicolon)
}

func (p *parser) parseWithStmt() {
	p.next()
	p.parseParenCondition(
		diag.ExpectedParenthesesAroundWithExpression,
		diag.ExpectedParenthesisAroundWithExpression)

	p.enterScope(scopeWith)
	if !p.hasMissingBody() {
		p.parseNestedStmt(diag.StatementKindWithStatement, p.prevEnd)
	}
	p.exitScope(scopeWith)
}

func (p *parser) parseTryStmt() {
	tryKeyword := p.lexer.Range()
	p.next()

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.MissingBodyForTryStatement, diag.Span(tryKeyword))
	} else {
		p.parseBlock(diag.UnclosedCodeBlock)
	}

	hasCatch := false
	hasFinally := false

	if p.lexer.Token == js_lexer.TCatch {
		hasCatch = true
		p.next()
		p.parseCatchTail()
	}

	if p.lexer.Token == js_lexer.TFinally {
		hasFinally = true
		p.next()
		finallyKeyword := p.prevRange
		if p.lexer.Token != js_lexer.TOpenBrace {
			p.report(diag.MissingBodyForFinallyClause, diag.Span(finallyKeyword))
		} else {
			p.parseBlock(diag.UnclosedCodeBlock)
		}
	}

	if !hasCatch && !hasFinally {
		p.report(diag.MissingCatchOrFinallyForTryStatement,
			diag.Span(zeroRangeAt(p.prevEnd)), diag.Span(tryKeyword))
	}
}

// parseCatchTail parses everything after the "catch" keyword.
func (p *parser) parseCatchTail() {
	catchKeyword := p.prevRange

	p.enterScope(scopeBlock)

	// The parameter is optional
	if p.eat(js_lexer.TOpenParen) {
		openParen := p.prevRange
		switch p.lexer.Token {
		case js_lexer.TCloseParen:
			p.report(diag.MissingCatchVariableBetweenParentheses,
				diag.Span(logger.Range{Loc: openParen.Loc, Len: p.lexer.Range().End() - openParen.Loc.Start}))

		case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
			name := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TColon {
				p.parseTypeAnnotation()
			}
			p.visitor.VariableDeclaration(name, diag.VarKindCatch, visit.Uninitialized)

		case js_lexer.TOpenBracket, js_lexer.TOpenBrace:
			var names []declaredName
			p.parseBindingPattern(diag.VarKindCatch, &names)
			if p.lexer.Token == js_lexer.TColon {
				p.parseTypeAnnotation()
			}
			for _, n := range names {
				p.visitor.VariableDeclaration(n.name, diag.VarKindCatch, n.init)
			}

		default:
			p.report(diag.ExpectedVariableNameForCatch, diag.Span(p.lexer.Range()))
			p.next()
		}
		p.expect(js_lexer.TCloseParen, diag.UnmatchedParenthesis)
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.MissingBodyForCatchClause, diag.Span(catchKeyword))
	} else {
		open := p.lexer.Range()
		p.next()
		p.parseStmtsUpTo(js_lexer.TCloseBrace)
		if p.lexer.Token == js_lexer.TEndOfFile {
			p.report(diag.UnclosedCodeBlock, diag.Span(open))
		}
		p.eat(js_lexer.TCloseBrace)
	}

	p.exitScope(scopeBlock)
}

func (p *parser) parseSwitchStmt() {
	switchKeyword := p.lexer.Range()
	p.next()

	if p.hasConditionEntirelyMissing() {
		p.report(diag.MissingConditionForSwitchStatement, diag.Span(switchKeyword))
	} else {
		p.parseParenCondition(
			diag.ExpectedParenthesesAroundSwitchCondition,
			diag.ExpectedParenthesisAroundSwitchCondition)
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.MissingBodyForSwitchStatement,
			diag.Span(logger.Range{Loc: switchKeyword.Loc, Len: p.prevRange.End() - switchKeyword.Loc.Start}))
		return
	}
	open := p.lexer.Range()
	p.next()

	p.enterScope(scopeBlock)
	p.fn.switchDepth++

	sawFirstCase := false
	// Textual comparison of case expressions catches duplicated clauses
	seenCases := map[string]logger.Range{}

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		switch p.lexer.Token {
		case js_lexer.TCase:
			sawFirstCase = true
			p.next()
			start := p.lexer.Loc()
			value := p.parseExpr(js_ast.LLowest)
			caseRange := logger.Range{Loc: start, Len: p.prevRange.End() - start.Start}
			p.visitExpr(value, visitUse)

			text := p.source.TextForRange(caseRange)
			if firstCase, ok := seenCases[text]; ok {
				p.report(diag.DuplicatedCasesInSwitchStatement,
					diag.Span(firstCase), diag.Span(caseRange))
			} else {
				seenCases[text] = caseRange
			}

			p.expect(js_lexer.TColon, diag.ExpectedExpressionForSwitchCase)

		case js_lexer.TDefault:
			sawFirstCase = true
			p.next()
			p.expect(js_lexer.TColon, diag.ExpectedExpressionForSwitchCase)

		default:
			if !sawFirstCase {
				p.report(diag.StatementBeforeFirstSwitchCase, diag.Span(p.lexer.Range()))
			}
			p.parseStmtWithRecovery(parseStmtOpts{lexicalDeclAllowed: true})
		}
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedCodeBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)

	p.fn.switchDepth--
	p.exitScope(scopeBlock)
}

func (p *parser) parseExprOrLabelStmt(opts parseStmtOpts) {
	// "name:" at statement position is a label. Contextual keywords label
	// freely; "await" and "yield" are restricted by the function context.
	if p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword {
		t := p.lexer.BeginTransaction()
		name := p.lexer.Range()
		text := p.lexer.Identifier
		p.next()
		if p.lexer.Token == js_lexer.TColon {
			colon := p.lexer.Range()
			p.lexer.CommitTransaction(t)
			p.next()

			switch {
			case text == "await" && p.fn.isAsync:
				p.report(diag.LabelNamedAwaitNotAllowedInAsyncFunction,
					diag.Span(name), diag.Span(colon))
			case text == "yield" && p.fn.isGenerator:
				p.report(diag.LabelNamedYieldNotAllowedInGeneratorFunction,
					diag.Span(name), diag.Span(colon))
			}

			if p.hasMissingBody() {
				return
			}
			p.parseNestedStmt(diag.StatementKindLabelledStatement, p.prevEnd)
			return
		}
		p.lexer.RollBackTransaction(t)
	}

	expr := p.parseExpr(js_ast.LLowest)
	p.visitExpr(expr, visitUse)
	p.expectOrInsertSemicolon()
}
