package js_parser

// TypeScript-only syntax. Types are consumed, not modeled: the parser walks
// type expressions to keep the token stream consistent and to emit type uses,
// but builds nothing. In JavaScript mode every entry point here first reports
// the matching "not allowed in JavaScript" diagnostic and then consumes the
// construct anyway so recovery stays stable.

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

// looksLikeTSDeclaration reports whether the current contextual keyword
// ("interface", "type", "declare") begins a TypeScript declaration rather
// than an ordinary expression statement.
func (p *parser) looksLikeTSDeclaration() bool {
	keyword := p.lexer.Identifier
	t := p.lexer.BeginTransaction()
	p.next()

	ok := false
	switch keyword {
	case "interface":
		ok = p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword

	case "type":
		if !p.lexer.HasNewlineBefore &&
			(p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword) {
			p.next()
			ok = p.lexer.Token == js_lexer.TEquals || p.lexer.Token == js_lexer.TLessThan
		}

	case "declare":
		switch p.lexer.Token {
		case js_lexer.TClass, js_lexer.TFunction, js_lexer.TVar, js_lexer.TConst, js_lexer.TEnum:
			ok = !p.lexer.HasNewlineBefore
		case js_lexer.TIdentifier:
			if !p.lexer.HasNewlineBefore {
				switch p.lexer.Identifier {
				case "let", "namespace", "module", "abstract", "global", "async":
					ok = true
				case "interface", "type":
					ok = true
				}
			}
		}
	}

	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) looksLikeTSNamespace() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := !p.lexer.HasNewlineBefore &&
		(p.lexer.Token == js_lexer.TIdentifier ||
			p.lexer.Token == js_lexer.TEscapedKeyword ||
			p.lexer.Token == js_lexer.TStringLiteral)
	p.lexer.RollBackTransaction(t)
	return ok
}

// parseTypeAnnotation consumes ": Type" at the cursor.
func (p *parser) parseTypeAnnotation() {
	colon := p.lexer.Range()
	if !p.options.ts() {
		p.report(diag.TypeScriptTypeAnnotationsNotAllowedInJavaScript, diag.Span(colon))
	}
	p.next()
	p.skipType(js_ast.LLowest)
}

// skipType consumes one type expression, emitting type uses for named type
// references.
func (p *parser) skipType(level js_ast.L) {
	p.checkDepth()
	defer p.releaseDepth()

	p.skipTypePrefix()
	p.skipTypeSuffix(level)
}

func (p *parser) skipTypePrefix() {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		switch p.lexer.Identifier {
		case "keyof", "unique", "readonly", "infer", "asserts":
			modifier := p.lexer.Identifier
			p.next()
			if modifier == "infer" {
				if p.lexer.Token == js_lexer.TIdentifier {
					p.visitor.VariableDeclaration(p.lexer.Range(), diag.VarKindGenericParameter, visit.Uninitialized)
					p.next()
				}
				return
			}
			p.skipTypePrefix()
			return
		}
		p.skipTypeName()

	case js_lexer.TThis, js_lexer.TNull, js_lexer.TTrue, js_lexer.TFalse,
		js_lexer.TVoid, js_lexer.TStringLiteral, js_lexer.TNumericLiteral,
		js_lexer.TBigIntegerLiteral, js_lexer.TNoSubstitutionTemplateLiteral,
		js_lexer.TConst:
		// TConst covers "x as const"
		p.next()

	case js_lexer.TTypeof:
		p.next()
		if p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword {
			p.visitor.VariableUse(p.lexer.Range())
			p.next()
			for p.eat(js_lexer.TDot) {
				if p.lexer.IsIdentifierOrKeyword() {
					p.next()
				}
			}
		}

	case js_lexer.TMinus:
		p.next()
		if p.lexer.Token == js_lexer.TNumericLiteral || p.lexer.Token == js_lexer.TBigIntegerLiteral {
			p.next()
		}

	case js_lexer.TOpenParen:
		// Parenthesized type or function type parameter list
		p.skipBalanced(js_lexer.TOpenParen, js_lexer.TCloseParen)
		if p.eat(js_lexer.TEqualsGreaterThan) {
			p.skipType(js_ast.LLowest)
		}

	case js_lexer.TLessThan:
		// Generic function type "<T>(x: T) => T"
		p.skipTypeParametersShallow()
		if p.lexer.Token == js_lexer.TOpenParen {
			p.skipBalanced(js_lexer.TOpenParen, js_lexer.TCloseParen)
		}
		if p.eat(js_lexer.TEqualsGreaterThan) {
			p.skipType(js_ast.LLowest)
		}

	case js_lexer.TNew:
		p.next()
		p.skipTypePrefix()

	case js_lexer.TOpenBrace:
		p.skipBalanced(js_lexer.TOpenBrace, js_lexer.TCloseBrace)

	case js_lexer.TOpenBracket:
		p.skipBalanced(js_lexer.TOpenBracket, js_lexer.TCloseBracket)

	case js_lexer.TImport:
		// "import('module').Type"
		p.next()
		if p.lexer.Token == js_lexer.TOpenParen {
			p.skipBalanced(js_lexer.TOpenParen, js_lexer.TCloseParen)
		}

	case js_lexer.TBar, js_lexer.TAmpersand:
		// Leading "|" in a union is allowed
		p.next()
		p.skipTypePrefix()

	default:
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
		p.next()
	}
}

func (p *parser) skipTypeSuffix(level js_ast.L) {
	for {
		switch p.lexer.Token {
		case js_lexer.TDot:
			p.next()
			if p.lexer.IsIdentifierOrKeyword() {
				p.next()
			}

		case js_lexer.TOpenBracket:
			// "T[]" or indexed access "T[K]"
			if p.lexer.HasNewlineBefore {
				return
			}
			p.skipBalanced(js_lexer.TOpenBracket, js_lexer.TCloseBracket)

		case js_lexer.TBar, js_lexer.TAmpersand:
			p.next()
			p.skipTypePrefix()

		case js_lexer.TLessThan:
			p.skipTypeArguments()

		case js_lexer.TExtends:
			// Conditional type "T extends U ? X : Y"
			p.next()
			p.skipType(js_ast.LCompare)
			if p.eat(js_lexer.TQuestion) {
				p.skipType(js_ast.LLowest)
				if p.eat(js_lexer.TColon) {
					p.skipType(js_ast.LLowest)
				}
			}

		case js_lexer.TQuestion:
			if level >= js_ast.LConditional {
				return
			}
			// A conditional type continuation owned by an enclosing
			// "extends"; stop here
			return

		default:
			return
		}
	}
}

// Built-in primitive type names resolve to nothing; only user-defined type
// references become type uses.
var primitiveTypeNames = map[string]bool{
	"any":       true,
	"bigint":    true,
	"boolean":   true,
	"never":     true,
	"number":    true,
	"object":    true,
	"string":    true,
	"symbol":    true,
	"undefined": true,
	"unknown":   true,
	"void":      true,
}

// skipTypeName consumes "A.B.C" and emits a type use for the root.
func (p *parser) skipTypeName() {
	if p.lexer.Token != js_lexer.TIdentifier && p.lexer.Token != js_lexer.TEscapedKeyword {
		if p.lexer.IsIdentifierOrKeyword() {
			p.next()
			return
		}
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
		return
	}

	if p.options.ts() && !primitiveTypeNames[p.lexer.Identifier] {
		p.visitor.VariableTypeUse(p.lexer.Range())
	}
	p.next()

	for p.lexer.Token == js_lexer.TDot {
		p.next()
		if p.lexer.IsIdentifierOrKeyword() {
			p.next()
		}
	}

	if p.lexer.Token == js_lexer.TLessThan {
		p.skipTypeArguments()
	}
}

// skipBalanced consumes from an open delimiter through its matching close,
// treating nested delimiters of the same family as opaque.
func (p *parser) skipBalanced(open js_lexer.T, close js_lexer.T) {
	openRange := p.lexer.Range()
	depth := 0
	for {
		switch p.lexer.Token {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				p.next()
				return
			}
		case js_lexer.TEndOfFile:
			switch open {
			case js_lexer.TOpenParen:
				p.report(diag.UnmatchedParenthesis, diag.Span(openRange))
			case js_lexer.TOpenBracket:
				p.report(diag.UnmatchedIndexingBracket, diag.Span(openRange))
			default:
				p.report(diag.UnclosedCodeBlock, diag.Span(openRange))
			}
			return
		}
		p.next()
	}
}

// skipTypeArguments consumes "<T, U>" in type or expression position. The
// closing ">" may be the first character of ">>", ">>>", or ">=", which the
// lexer shears apart on request.
func (p *parser) skipTypeArguments() {
	opening := p.lexer.Range()
	if !p.options.ts() {
		p.report(diag.TypeScriptGenericsNotAllowedInJavaScript, diag.Span(opening))
	}
	p.lexer.ExpectLessThan(false)

	for {
		p.skipType(js_ast.LLowest)
		if !p.eat(js_lexer.TComma) {
			break
		}
	}

	if p.lexer.Token == js_lexer.TGreaterThanEquals {
		// "f<T>=x" needs a space between ">" and "="
		p.report(diag.TypeScriptRequiresSpaceBetweenGreaterAndEqual, diag.Span(p.lexer.Range()))
	}
	p.lexer.ExpectGreaterThan(false)
}

// skipTypeArgumentsAsAssertion consumes "<T>" for an angle type assertion.
func (p *parser) skipTypeArgumentsAsAssertion() {
	p.lexer.ExpectLessThan(false)
	p.skipType(js_ast.LLowest)
	p.lexer.ExpectGreaterThan(false)
}

// skipTypeParametersShallow consumes "<...>" without interpreting the
// contents; used for generic function types.
func (p *parser) skipTypeParametersShallow() {
	depth := 0
	for {
		switch p.lexer.Token {
		case js_lexer.TLessThan:
			depth++
		case js_lexer.TGreaterThan:
			depth--
			if depth == 0 {
				p.next()
				return
			}
		case js_lexer.TEndOfFile:
			return
		}
		p.next()
	}
}

func (p *parser) parseInterface(keyword logger.Range) {
	if !p.options.ts() {
		p.report(diag.TypeScriptInterfacesNotAllowedInJavaScript, diag.Span(keyword))
	}
	p.next() // "interface"

	if p.lexer.HasNewlineBefore {
		p.report(diag.NewlineNotAllowedAfterInterfaceKeyword, diag.Span(keyword))
	}

	var name *logger.Range
	if p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword {
		r := p.lexer.Range()
		name = &r
		p.visitor.VariableDeclaration(r, diag.VarKindInterface, visit.Uninitialized)
		p.next()
	} else {
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
	}

	p.enterScope(scopeClass)

	if p.lexer.Token == js_lexer.TLessThan {
		p.parseGenericParameters()
	}

	if p.eat(js_lexer.TExtends) {
		for {
			p.skipTypeName()
			if !p.eat(js_lexer.TComma) {
				break
			}
		}
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.MissingBodyForTypeScriptInterface,
			diag.Span(logger.Range{Loc: keyword.Loc, Len: p.prevRange.End() - keyword.Loc.Start}))
		p.visitor.EnterClassScopeBody(name)
		p.exitScope(scopeClass)
		return
	}

	open := p.lexer.Range()
	p.next()
	p.visitor.EnterClassScopeBody(name)

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.Token == js_lexer.TSemicolon || p.lexer.Token == js_lexer.TComma {
			p.next()
			continue
		}
		p.parseClassMember(classMemberOpts{
			isInterface:  true,
			classKeyword: keyword,
		})
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedInterfaceBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)

	p.exitScope(scopeClass)
}

func (p *parser) parseTypeAlias(keyword logger.Range) {
	if !p.options.ts() {
		p.report(diag.TypeScriptTypeAliasNotAllowedInJavaScript, diag.Span(keyword))
	}
	p.next() // "type"

	if p.lexer.HasNewlineBefore {
		p.report(diag.NewlineNotAllowedAfterTypeKeyword, diag.Span(keyword))
	}

	if p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword {
		p.visitor.VariableDeclaration(p.lexer.Range(), diag.VarKindTypeAlias, visit.Uninitialized)
		p.next()
	} else {
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
	}

	if p.lexer.Token == js_lexer.TLessThan {
		p.parseGenericParameters()
	}

	if p.expect(js_lexer.TEquals, diag.MissingEqualAfterVariable,
		diag.Span(zeroRangeAt(p.prevEnd))) {
		p.skipType(js_ast.LLowest)
	}

	p.expectOrInsertSemicolon()
}

func (p *parser) parseEnum(keyword logger.Range, kind diag.EnumKind) {
	enumKeyword := p.lexer.Range()
	p.next() // "enum"

	if !p.options.ts() {
		p.report(diag.TypeScriptEnumIsNotAllowedInJavaScript, diag.Span(enumKeyword))
	}

	if p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword {
		p.visitor.VariableDeclaration(p.lexer.Range(), diag.VarKindEnum, visit.Uninitialized)
		p.next()
	} else if p.lexer.Token == js_lexer.TNumericLiteral {
		p.report(diag.TypeScriptEnumMemberNameCannotBeNumber, diag.Span(p.lexer.Range()))
		p.next()
	} else {
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.ExpectedLeftCurly, diag.Span(zeroRangeAt(p.prevEnd)))
		return
	}
	open := p.lexer.Range()
	p.next()

	p.enterScope(scopeBlock)

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.Token == js_lexer.TComma {
			p.report(diag.ExtraCommaNotAllowedBetweenEnumMembers, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		switch {
		case p.lexer.Token == js_lexer.TNumericLiteral:
			p.report(diag.TypeScriptEnumMemberNameCannotBeNumber, diag.Span(p.lexer.Range()))
			p.next()

		case p.lexer.IsIdentifierOrKeyword() || p.lexer.Token == js_lexer.TStringLiteral:
			p.next()

		case p.lexer.Token == js_lexer.TOpenBracket:
			// Computed names must be simple strings
			p.next()
			start := p.lexer.Loc()
			value := p.parseExpr(js_ast.LComma + 1)
			if p.at(value).Kind != js_ast.EString {
				p.report(diag.TypeScriptEnumComputedNameMustBeSimple,
					diag.Span(logger.Range{Loc: start, Len: p.prevRange.End() - start.Start}))
			}
			p.visitExpr(value, visitUse)
			p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)

		default:
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		if p.eat(js_lexer.TEquals) {
			start := p.lexer.Loc()
			value := p.parseExpr(js_ast.LComma + 1)
			valueRange := logger.Range{Loc: start, Len: p.prevRange.End() - start.Start}

			if kind != diag.EnumKindNormal && !p.isConstantEnumValue(value) {
				p.report(diag.TypeScriptEnumValueMustBeConstant,
					diag.Span(valueRange), diag.EnumKindArg(kind))
			}
			p.visitExpr(value, visitUse)
		}

		if !p.eat(js_lexer.TComma) && p.lexer.Token != js_lexer.TCloseBrace {
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			p.next()
		}
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedCodeBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)

	p.exitScope(scopeBlock)
}

// isConstantEnumValue approximates TypeScript's constant enum expression
// rules: literals, references, and arithmetic over them.
func (p *parser) isConstantEnumValue(i js_ast.Index) bool {
	node := p.at(i)
	switch node.Kind {
	case js_ast.ENumber, js_ast.EString, js_ast.EBigInt, js_ast.ETemplate:
		return true
	case js_ast.EIdentifier, js_ast.EDot:
		return true
	case js_ast.EParen, js_ast.EPrefix:
		for _, child := range node.Children {
			if !p.isConstantEnumValue(child) {
				return false
			}
		}
		return true
	case js_ast.EBinary:
		for _, child := range node.Children {
			if !p.isConstantEnumValue(child) {
				return false
			}
		}
		return true
	}
	return false
}

func (p *parser) parseNamespace(keyword logger.Range, declareKeyword *logger.Range) {
	if !p.options.ts() {
		p.report(diag.TypeScriptNamespacesNotAllowedInJavaScript, diag.Span(keyword))
	}
	p.next() // "namespace" or "module"

	if p.lexer.HasNewlineBefore {
		p.report(diag.NewlineNotAllowedAfterNamespaceKeyword, diag.Span(keyword))
	}

	switch {
	case p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword:
		p.visitor.VariableDeclaration(p.lexer.Range(), diag.VarKindNamespace, visit.Uninitialized)
		p.next()
		for p.eat(js_lexer.TDot) {
			if p.lexer.IsIdentifierOrKeyword() {
				p.next()
			}
		}

	case p.lexer.Token == js_lexer.TStringLiteral:
		// "declare module 'name'"
		p.next()

	default:
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		if declareKeyword != nil && p.hasSemicolonEquivalent() {
			// "declare module 'name';" is a shorthand ambient module
			p.eat(js_lexer.TSemicolon)
			return
		}
		p.report(diag.MissingBodyForTypeScriptNamespace, diag.Span(zeroRangeAt(p.prevEnd)))
		return
	}

	open := p.lexer.Range()
	p.next()

	oldInNamespace := p.inNamespace
	oldDeclareNamespace := p.declareNamespaceKeyword
	p.inNamespace = true
	if declareKeyword != nil {
		p.declareNamespaceKeyword = declareKeyword
	}

	p.enterScope(scopeBlock)

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		if p.declareNamespaceKeyword != nil && !p.tokenStartsDeclaration() {
			p.report(diag.DeclareNamespaceCannotContainStatement,
				diag.Span(p.lexer.Range()), diag.Span(*p.declareNamespaceKeyword))
		}
		p.parseStmtWithRecovery(parseStmtOpts{
			lexicalDeclAllowed: true,
			isDeclareContext:   p.declareNamespaceKeyword != nil,
		})
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedCodeBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)

	p.exitScope(scopeBlock)
	p.inNamespace = oldInNamespace
	p.declareNamespaceKeyword = oldDeclareNamespace
}

// tokenStartsDeclaration reports whether the current token can begin a
// declaration, which is all a "declare namespace" body may contain.
func (p *parser) tokenStartsDeclaration() bool {
	switch p.lexer.Token {
	case js_lexer.TClass, js_lexer.TFunction, js_lexer.TVar, js_lexer.TConst,
		js_lexer.TEnum, js_lexer.TExport, js_lexer.TImport, js_lexer.TSemicolon:
		return true
	case js_lexer.TIdentifier:
		switch p.lexer.Identifier {
		case "let", "namespace", "module", "interface", "type", "abstract",
			"declare", "async":
			return true
		}
	}
	return false
}

func (p *parser) parseDeclare(declareRange logger.Range, opts parseStmtOpts) {
	if p.declareNamespaceKeyword != nil {
		p.report(diag.DeclareKeywordIsNotAllowedInsideDeclareNamespace,
			diag.Span(declareRange), diag.Span(*p.declareNamespaceKeyword))
	}

	p.next() // "declare"

	switch p.lexer.Token {
	case js_lexer.TImport:
		p.report(diag.ImportCannotHaveDeclareKeyword, diag.Span(declareRange))
		p.parseImportStmt()

	case js_lexer.TClass:
		if !p.options.ts() {
			p.report(diag.DeclareClassNotAllowedInJavaScript, diag.Span(declareRange))
		}
		p.parseClassStmt(classStmtOpts{declareKeyword: &declareRange})

	case js_lexer.TFunction:
		if !p.options.ts() {
			p.report(diag.DeclareFunctionNotAllowedInJavaScript, diag.Span(declareRange))
		}
		p.parseFnStmt(fnStmtOpts{declareKeyword: &declareRange})

	case js_lexer.TVar:
		p.parseDeclareVar(declareRange, diag.VarKindVar)

	case js_lexer.TConst:
		keyword := p.lexer.Range()
		p.next()
		if p.lexer.Token == js_lexer.TEnum {
			p.parseEnum(keyword, diag.EnumKindDeclareConst)
			return
		}
		p.parseDeclareVarTail(declareRange, diag.VarKindConst, keyword)

	case js_lexer.TEnum:
		if !p.options.ts() {
			p.report(diag.TypeScriptEnumIsNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.parseEnum(p.lexer.Range(), diag.EnumKindDeclare)

	case js_lexer.TIdentifier:
		switch p.lexer.Identifier {
		case "let":
			p.parseDeclareVar(declareRange, diag.VarKindLet)

		case "namespace", "module":
			p.parseNamespace(p.lexer.Range(), &declareRange)

		case "abstract":
			abstractRange := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TClass {
				if !p.options.ts() {
					p.report(diag.DeclareAbstractClassNotAllowedInJavaScript, diag.Span(declareRange))
				}
				p.parseClassStmt(classStmtOpts{
					abstractRange:  &abstractRange,
					declareKeyword: &declareRange,
				})
			} else {
				p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			}

		case "global":
			// "declare global { ... }"
			p.next()
			if p.lexer.Token == js_lexer.TOpenBrace {
				p.parseBlock(diag.UnclosedCodeBlock)
			}

		case "interface":
			p.parseInterface(p.lexer.Range())

		case "type":
			p.parseTypeAlias(p.lexer.Range())

		case "async":
			asyncRange := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TFunction {
				if !p.options.ts() {
					p.report(diag.DeclareFunctionNotAllowedInJavaScript, diag.Span(declareRange))
				}
				p.parseFnStmt(fnStmtOpts{
					isAsync:        true,
					asyncRange:     asyncRange,
					declareKeyword: &declareRange,
				})
			} else {
				p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			}

		default:
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
		}

	default:
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
	}
}

func (p *parser) parseDeclareVar(declareRange logger.Range, kind diag.VarKind) {
	keyword := p.lexer.Range()
	p.next()
	p.parseDeclareVarTail(declareRange, kind, keyword)
}

func (p *parser) parseDeclareVarTail(declareRange logger.Range, kind diag.VarKind, keyword logger.Range) {
	if !p.options.ts() {
		p.report(diag.DeclareVarNotAllowedInJavaScript,
			diag.Span(declareRange), diag.Var(kind))
	}
	p.parseDeclarations(kind, keyword, declOpts{declareKeyword: &declareRange})
	p.expectOrInsertSemicolon()
}
