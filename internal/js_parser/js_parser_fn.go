package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

type fnStmtOpts struct {
	isAsync    bool
	asyncRange logger.Range

	// "export function" and "export default function"
	isExport        bool
	isDefaultExport bool

	declareKeyword *logger.Range
}

func (p *parser) parseFnStmt(opts fnStmtOpts) {
	fnKeyword := p.lexer.Range()
	p.next()

	var starRange *logger.Range
	if p.lexer.Token == js_lexer.TAsterisk {
		r := p.lexer.Range()
		starRange = &r
		p.next()
	}

	var name *logger.Range
	if p.lexer.IsIdentifierOrKeyword() && p.lexer.Token != js_lexer.TOpenParen {
		r := p.lexer.Range()
		p.checkDeclaredName(diag.VarKindFunction, r, p.lexer.Identifier)
		name = &r
		p.next()

		// "function f*() {}" has the star on the wrong side
		if starRange == nil && p.lexer.Token == js_lexer.TAsterisk {
			p.report(diag.GeneratorFunctionStarBelongsBeforeName,
				diag.Span(r), diag.Span(p.lexer.Range()))
			sr := p.lexer.Range()
			starRange = &sr
			p.next()
		}
	} else if !opts.isDefaultExport {
		if opts.isExport {
			p.report(diag.MissingNameOfExportedFunction, diag.Span(fnKeyword))
		} else {
			p.report(diag.MissingNameInFunctionStatement,
				diag.Span(logger.Range{Loc: fnKeyword.Loc, Len: p.lexer.Range().End() - fnKeyword.Loc.Start}))
		}
	}

	if opts.declareKeyword != nil {
		if opts.isAsync {
			p.report(diag.DeclareFunctionCannotBeAsync, diag.Span(opts.asyncRange))
		}
		if starRange != nil {
			p.report(diag.DeclareFunctionCannotBeGenerator, diag.Span(*starRange))
		}
	}

	// Function statements are hoisted: the name is declared before the body
	// is parsed
	if name != nil {
		p.visitor.VariableDeclaration(*name, diag.VarKindFunction, visit.Uninitialized)
	}

	common := fnCommonOpts{
		isAsync:     opts.isAsync,
		isGenerator: starRange != nil,
	}
	if opts.declareKeyword != nil {
		common.forbidBody = true
		common.forbidBodyKind = diag.DeclareFunctionCannotHaveBody
		common.forbidBodyNote = opts.declareKeyword
	}
	p.parseFnRest(common)
	if opts.declareKeyword != nil {
		p.expectOrInsertSemicolon()
	}
}

type fnCommonOpts struct {
	isAsync     bool
	isGenerator bool

	// Named function expression: the name is only visible inside
	exprName *logger.Range

	// Methods
	isConstructor bool

	// A body is forbidden and diagnosed with forbidBodyKind ("declare
	// function", "declare class" methods, abstract methods, interface
	// methods). forbidBodyNote is an optional second span.
	forbidBody     bool
	forbidBodyKind diag.Kind
	forbidBodyNote *logger.Range

	// A body is optional (TS overload signatures)
	allowMissingBody bool
}

// parseFnRest parses everything after the function name: generic parameters,
// the parameter list, the return type, and the body, emitting the scope
// events around them. Returns whether a body was present.
func (p *parser) parseFnRest(opts fnCommonOpts) (hadBody bool) {
	prev := p.pushFn(fnContext{
		isAsync:       opts.isAsync,
		isGenerator:   opts.isGenerator,
		isConstructor: opts.isConstructor,
		await:         awaitMode(opts.isAsync),
		yield:         yieldMode(opts.isGenerator),
	})

	if opts.exprName != nil {
		p.enterNamedFunctionScope(*opts.exprName)
	} else {
		p.enterScope(scopeFunction)
	}

	if p.lexer.Token == js_lexer.TLessThan {
		p.parseGenericParameters()
	}

	if p.lexer.Token != js_lexer.TOpenParen {
		p.report(diag.MissingFunctionParameterList, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.parseParamList(diag.VarKindParameter)
	}

	// Return type
	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	// "function f() => {}" is not how function bodies work
	if p.lexer.Token == js_lexer.TEqualsGreaterThan {
		p.report(diag.FunctionsOrMethodsShouldNotHaveArrowOperator, diag.Span(p.lexer.Range()))
		p.next()
	}

	switch {
	case p.lexer.Token == js_lexer.TOpenBrace:
		hadBody = true
		if opts.forbidBody {
			if opts.forbidBodyNote != nil {
				p.report(opts.forbidBodyKind, diag.Span(p.lexer.Range()), diag.Span(*opts.forbidBodyNote))
			} else {
				p.report(opts.forbidBodyKind, diag.Span(p.lexer.Range()))
			}
		}
		open := p.lexer.Range()
		p.next()
		p.visitor.EnterFunctionScopeBody()
		p.parseStmtsUpTo(js_lexer.TCloseBrace)
		if p.lexer.Token == js_lexer.TEndOfFile {
			p.report(diag.UnclosedCodeBlock, diag.Span(open))
		}
		p.eat(js_lexer.TCloseBrace)

	case opts.forbidBody || opts.allowMissingBody:
		// Signature only; the caller owns the trailing semicolon
		p.visitor.EnterFunctionScopeBody()

	case p.options.ts() && p.hasSemicolonEquivalent():
		// Overload signature
		p.visitor.EnterFunctionScopeBody()
		p.eat(js_lexer.TSemicolon)

	default:
		p.report(diag.MissingFunctionBody, diag.Span(zeroRangeAt(p.prevEnd)))
		p.visitor.EnterFunctionScopeBody()
	}

	p.exitScope(scopeFunction)
	p.popFn(prev)
	return hadBody
}

func (p *parser) parseFnRestWithBodyInfo(opts fnCommonOpts, hadBody *bool) {
	*hadBody = p.parseFnRest(opts)
}

func awaitMode(isAsync bool) awaitOrYield {
	if isAsync {
		return allowExpr
	}
	return allowIdent
}

func yieldMode(isGenerator bool) awaitOrYield {
	if isGenerator {
		return allowExpr
	}
	return allowIdent
}

// parseParamList parses "( ... )" and declares each parameter.
func (p *parser) parseParamList(kind diag.VarKind) {
	p.checkDepth()
	defer p.releaseDepth()

	openParen := p.lexer.Range()
	p.next()

	sawSpread := false
	var spreadRange logger.Range

	for p.lexer.Token != js_lexer.TCloseParen && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.Token == js_lexer.TComma {
			p.report(diag.StrayCommaInParameter, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		if sawSpread {
			p.report(diag.CommaNotAllowedAfterSpreadParameter,
				diag.Span(p.prevRange), diag.Span(spreadRange))
		}

		if p.lexer.Token == js_lexer.TDotDotDot {
			sawSpread = true
			spreadRange = p.lexer.Range()
			p.next()
		}

		p.parseParam(kind)

		if p.lexer.Token != js_lexer.TCloseParen && !p.eat(js_lexer.TComma) {
			p.report(diag.InvalidParameter, diag.Span(p.lexer.Range()))
			p.next()
		}
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnmatchedParenthesis, diag.Span(openParen))
		return
	}
	p.next()
}

func (p *parser) parseParam(kind diag.VarKind) {
	// TypeScript parameter properties: "constructor(public x: number)"
	for {
		ident := p.lexer.Identifier
		if (ident == "public" || ident == "private" || ident == "protected" || ident == "readonly") &&
			p.lexer.Token == js_lexer.TIdentifier && !p.lexer.HasEscapeInKeyword && p.nextTokenContinuesParam() {
			if !p.options.ts() {
				p.report(diag.TypeScriptParameterPropertyNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
			}
			p.next()
			continue
		}
		break
	}

	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		name := p.lexer.Range()
		p.checkDeclaredName(kind, name, p.lexer.Identifier)
		p.next()
		p.parseParamTail(kind, &name, nil)

	case js_lexer.TThis:
		// "this" parameters are a TypeScript type feature
		if !p.options.ts() {
			p.report(diag.TypeScriptTypeAnnotationsNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.next()
		if p.lexer.Token == js_lexer.TColon {
			p.parseTypeAnnotation()
		}

	case js_lexer.TOpenBracket, js_lexer.TOpenBrace:
		var names []declaredName
		p.parseBindingPattern(kind, &names)
		p.parseParamTail(kind, nil, names)

	default:
		p.report(diag.InvalidParameter, diag.Span(p.lexer.Range()))
		p.next()
	}
}

func (p *parser) nextTokenContinuesParam() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := p.lexer.Token == js_lexer.TIdentifier ||
		p.lexer.Token == js_lexer.TEscapedKeyword ||
		p.lexer.Token == js_lexer.TOpenBracket ||
		p.lexer.Token == js_lexer.TOpenBrace ||
		p.lexer.Token == js_lexer.TThis
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseParamTail(kind diag.VarKind, name *logger.Range, names []declaredName) {
	// Optional parameter "x?"
	if p.lexer.Token == js_lexer.TQuestion {
		if !p.options.ts() {
			p.report(diag.TypeScriptOptionalParametersNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.next()
	}

	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	init := visit.Uninitialized
	if p.lexer.Token == js_lexer.TEquals {
		p.next()
		def := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(def, visitUse)
		init = visit.Initialized
	}

	if name != nil {
		p.visitor.VariableDeclaration(*name, kind, init)
	}
	for _, n := range names {
		declared := n
		if init == visit.Initialized {
			declared.init = visit.Initialized
		}
		p.visitor.VariableDeclaration(declared.name, kind, declared.init)
	}
}

// parseGenericParameters parses "<T, U extends V = W>" and declares each
// parameter. In JavaScript it is consumed and diagnosed.
func (p *parser) parseGenericParameters() {
	opening := p.lexer.Range()
	if !p.options.ts() {
		p.report(diag.TypeScriptGenericsNotAllowedInJavaScript, diag.Span(opening))
	}
	p.lexer.ExpectLessThan(false)

	if p.lexer.Token == js_lexer.TComma {
		p.report(diag.CommaNotAllowedBeforeFirstGenericParameter, diag.Span(p.lexer.Range()))
		p.next()
	}

	if p.lexer.Token == js_lexer.TGreaterThan {
		p.report(diag.TypeScriptGenericParameterListIsEmpty, diag.Span(zeroRangeAt(p.lexer.Loc())))
	}

	for p.lexer.Token != js_lexer.TGreaterThan && p.lexer.Token != js_lexer.TEndOfFile {
		// Variance and const modifiers
		for p.lexer.IsContextualKeyword("in") || p.lexer.IsContextualKeyword("out") ||
			p.lexer.Token == js_lexer.TConst || p.lexer.Token == js_lexer.TIn {
			p.next()
		}

		if p.lexer.Token != js_lexer.TIdentifier && p.lexer.Token != js_lexer.TEscapedKeyword {
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			break
		}
		name := p.lexer.Range()
		p.next()
		p.visitor.VariableDeclaration(name, diag.VarKindGenericParameter, visit.Uninitialized)

		if p.lexer.Token == js_lexer.TExtends {
			p.next()
			p.skipType(js_ast.LLowest)
		}
		if p.lexer.Token == js_lexer.TEquals {
			p.next()
			p.skipType(js_ast.LLowest)
		}

		if p.lexer.Token == js_lexer.TComma {
			p.next()
			continue
		}
		if p.lexer.Token != js_lexer.TGreaterThan &&
			(p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword) {
			p.report(diag.MissingCommaBetweenGenericParameters, diag.Span(zeroRangeAt(p.prevEnd)))
			continue
		}
		break
	}

	p.lexer.ExpectGreaterThan(false)
}
