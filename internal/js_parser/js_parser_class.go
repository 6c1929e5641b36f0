package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

type classStmtOpts struct {
	isExport        bool
	isDefaultExport bool
	abstractRange   *logger.Range
	declareKeyword  *logger.Range
}

func (p *parser) parseClassStmt(opts classStmtOpts) {
	classKeyword := p.lexer.Range()
	p.next()

	var name *logger.Range
	if p.lexer.IsIdentifierOrKeyword() {
		r := p.lexer.Range()
		text := p.lexer.Identifier
		switch {
		case text == "let":
			p.report(diag.CannotDeclareClassNamedLet, diag.Span(r))
		case text == "await" && p.fn.isAsync:
			p.report(diag.CannotDeclareClassNamedAwaitInAsyncFunction, diag.Span(r))
		case text == "yield" && p.fn.isGenerator:
			p.report(diag.CannotDeclareYieldInGeneratorFunction, diag.Span(r))
		}
		name = &r
		p.next()
	} else if !opts.isDefaultExport {
		if opts.isExport {
			p.report(diag.MissingNameOfExportedClass, diag.Span(classKeyword))
		} else {
			p.report(diag.MissingNameInClassStatement, diag.Span(classKeyword))
		}
	}

	if name != nil {
		p.visitor.VariableDeclaration(*name, diag.VarKindClass, visit.Uninitialized)
	}

	p.parseClassRest(classKeyword, name, opts)
}

// parseClassRest parses generic parameters, heritage clauses, and the class
// body. It is shared between class statements and class expressions; for
// expressions the caller passes the name without declaring it.
func (p *parser) parseClassRest(classKeyword logger.Range, name *logger.Range, opts classStmtOpts) {
	p.enterScope(scopeClass)

	if p.lexer.Token == js_lexer.TLessThan {
		p.parseGenericParameters()
	}

	var implementsRange *logger.Range

	for {
		if p.lexer.Token == js_lexer.TExtends {
			r := p.lexer.Range()
			p.next()
			heritage := p.parseExpr(js_ast.LNew)
			p.visitExpr(heritage, visitUse)
			if p.lexer.Token == js_lexer.TLessThan {
				p.skipTypeArguments()
			}
			if implementsRange != nil {
				p.report(diag.TypeScriptImplementsMustBeAfterExtends,
					diag.Span(*implementsRange), diag.Span(r))
			}
			continue
		}

		if p.lexer.IsContextualKeyword("implements") {
			r := p.lexer.Range()
			implementsRange = &r
			if !p.options.ts() {
				p.report(diag.TypeScriptClassImplementsNotAllowedInJavaScript, diag.Span(r))
			}
			p.next()
			for {
				p.skipTypeName()
				if !p.eat(js_lexer.TComma) {
					break
				}
			}
			continue
		}

		break
	}

	if p.lexer.Token != js_lexer.TOpenBrace {
		p.report(diag.MissingBodyForClass,
			diag.Span(logger.Range{Loc: classKeyword.Loc, Len: p.prevRange.End() - classKeyword.Loc.Start}))
		p.visitor.EnterClassScopeBody(name)
		p.exitScope(scopeClass)
		return
	}

	open := p.lexer.Range()
	p.next()
	p.visitor.EnterClassScopeBody(name)

	isAbstractClass := opts.abstractRange != nil

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.Token == js_lexer.TSemicolon {
			p.next()
			continue
		}
		if p.lexer.Token == js_lexer.TComma {
			p.report(diag.CommaNotAllowedBetweenClassMethods, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}
		p.parseClassMember(classMemberOpts{
			isAbstractClass: isAbstractClass,
			declareKeyword:  opts.declareKeyword,
			classKeyword:    classKeyword,
		})
	}

	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedClassBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)

	p.exitScope(scopeClass)
}

type classMemberOpts struct {
	isAbstractClass bool
	declareKeyword  *logger.Range
	classKeyword    logger.Range

	// Interface bodies reuse the member machinery with stricter rules
	isInterface bool
}

// Modifiers seen before a class member name, in source order.
type memberModifiers struct {
	static     *logger.Range
	async      *logger.Range
	star       *logger.Range
	readonly   *logger.Range
	abstract   *logger.Range
	declare    *logger.Range
	override   *logger.Range
	accessor   *logger.Range
	access     *logger.Range // public / private / protected
	getSet     *logger.Range
	getSetText string
}

// firstModifier returns the earliest modifier already consumed, used to
// anchor modifier-order diagnostics.
func (mods *memberModifiers) firstModifier() *logger.Range {
	var first *logger.Range
	for _, r := range []*logger.Range{
		mods.static, mods.async, mods.star, mods.readonly, mods.abstract,
		mods.declare, mods.override, mods.accessor,
	} {
		if r != nil && (first == nil || r.Loc.Start < first.Loc.Start) {
			first = r
		}
	}
	return first
}

// parseClassMember classifies one member with a keyword-prefix state machine
// and dispatches to field, method, index signature, or static block.
func (p *parser) parseClassMember(opts classMemberOpts) {
	var mods memberModifiers

	// "function" doesn't belong in class bodies, but pretending it's absent
	// gives better recovery than skipping the member
	if p.lexer.Token == js_lexer.TFunction {
		p.report(diag.MethodsShouldNotUseFunctionKeyword, diag.Span(p.lexer.Range()))
		p.next()
	}

modifiers:
	for {
		switch {
		case p.lexer.Token == js_lexer.TAsterisk:
			r := p.lexer.Range()
			mods.star = &r
			p.next()
			break modifiers

		case p.lexer.Token == js_lexer.TIdentifier && !p.lexer.HasEscapeInKeyword:
			text := p.lexer.Identifier
			isModifier := false
			switch text {
			case "static", "async", "readonly", "abstract", "declare", "override",
				"accessor", "public", "private", "protected", "get", "set":
				isModifier = true
			}
			if !isModifier || !p.tokenAfterStartsClassMember() {
				break modifiers
			}

			r := p.lexer.Range()
			switch text {
			case "static":
				mods.static = &r
				if opts.isInterface {
					p.report(diag.InterfacePropertiesCannotBeStatic, diag.Span(r))
				}
				// "async static" and "readonly static" are the wrong way around
				if mods.async != nil {
					p.report(diag.AsyncStaticMethod,
						diag.Span(logger.Range{Loc: mods.async.Loc, Len: r.End() - mods.async.Loc.Start}))
				}
				if mods.readonly != nil {
					p.report(diag.ReadonlyStaticField,
						diag.Span(logger.Range{Loc: mods.readonly.Loc, Len: r.End() - mods.readonly.Loc.Start}))
				}
			case "async":
				mods.async = &r
			case "readonly":
				mods.readonly = &r
				if !p.options.ts() {
					p.report(diag.TypeScriptReadonlyFieldsNotAllowedInJavaScript, diag.Span(r))
				}
			case "abstract":
				mods.abstract = &r
				if opts.isInterface {
					p.report(diag.AbstractPropertyNotAllowedInInterface, diag.Span(r))
				} else if !opts.isAbstractClass {
					p.report(diag.AbstractPropertyNotAllowedInNonAbstractClass,
						diag.Span(r), diag.Span(opts.classKeyword))
				}
			case "declare":
				mods.declare = &r
			case "override":
				mods.override = &r
			case "accessor":
				mods.accessor = &r
			case "public", "private", "protected":
				mods.access = &r
				if first := mods.firstModifier(); first != nil {
					p.report(diag.AccessSpecifierMustPrecedeOtherModifiers,
						diag.Span(r), diag.Span(*first))
				}
				if opts.isInterface && p.options.ts() {
					switch text {
					case "public":
						p.report(diag.InterfacePropertiesCannotBeExplicitlyPublic, diag.Span(r))
					case "private":
						p.report(diag.InterfacePropertiesCannotBePrivate, diag.Span(r))
					case "protected":
						p.report(diag.InterfacePropertiesCannotBeProtected, diag.Span(r))
					}
				}
				if !p.options.ts() {
					switch text {
					case "public":
						p.report(diag.TypeScriptPublicNotAllowedInJavaScript, diag.Span(r))
					case "private":
						p.report(diag.TypeScriptPrivateNotAllowedInJavaScript, diag.Span(r))
					case "protected":
						p.report(diag.TypeScriptProtectedNotAllowedInJavaScript, diag.Span(r))
					}
				}
			case "get", "set":
				mods.getSet = &r
				mods.getSetText = text
				p.next()
				break modifiers
			}
			p.next()

		default:
			break modifiers
		}
	}

	// "static { ... }" is a static initialization block
	if mods.static != nil && p.lexer.Token == js_lexer.TOpenBrace && mods.getSet == nil {
		if opts.isInterface {
			p.report(diag.TypeScriptInterfacesCannotContainStaticBlocks, diag.Span(*mods.static))
		}
		p.parseBlock(diag.UnclosedCodeBlock)
		return
	}

	// Index signature: "[key: Type]: ValueType"
	if p.lexer.Token == js_lexer.TOpenBracket && p.options.ts() && p.looksLikeIndexSignature() {
		p.parseIndexSignature(opts)
		return
	}

	p.parseClassMemberWithName(opts, mods)
}

// tokenAfterStartsClassMember decides whether the current identifier is a
// modifier or the member name: "static = 1" declares a field named "static".
func (p *parser) tokenAfterStartsClassMember() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := false
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword, js_lexer.TStringLiteral,
		js_lexer.TNumericLiteral, js_lexer.TOpenBracket, js_lexer.TAsterisk,
		js_lexer.TPrivateIdentifier, js_lexer.TOpenBrace:
		ok = true
	default:
		if p.lexer.IsIdentifierOrKeyword() {
			ok = true
		}
	}
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseClassMemberWithName(opts classMemberOpts, mods memberModifiers) {
	var name *logger.Range
	nameText := ""
	isConstructor := false

	switch p.lexer.Token {
	case js_lexer.TOpenBracket:
		// Computed name
		p.next()
		key := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(key, visitUse)
		p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)

	case js_lexer.TPrivateIdentifier:
		r := p.lexer.Range()
		name = &r
		nameText = p.lexer.Identifier
		p.next()

	case js_lexer.TStringLiteral, js_lexer.TNumericLiteral:
		r := p.lexer.Range()
		name = &r
		p.next()

	default:
		if p.lexer.IsIdentifierOrKeyword() {
			r := p.lexer.Range()
			name = &r
			nameText = p.lexer.Identifier
			isConstructor = nameText == "constructor" && mods.static == nil
			p.next()
		} else if mods.getSet != nil {
			// "get x() {}" without a name: the modifier was the name
			name = mods.getSet
			nameText = mods.getSetText
			mods.getSet = nil
		} else {
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			p.next()
			return
		}
	}

	// Optional "?" and assignment assertion "!"
	if p.lexer.Token == js_lexer.TQuestion {
		if !p.options.ts() {
			p.report(diag.TypeScriptOptionalPropertiesNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.next()
	}
	if p.lexer.Token == js_lexer.TExclamation && !p.lexer.HasNewlineBefore {
		if !p.options.ts() {
			p.report(diag.TypeScriptNonNullAssertionNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
		}
		p.next()
	}

	if p.lexer.Token == js_lexer.TOpenParen || p.lexer.Token == js_lexer.TLessThan {
		p.parseMethodTail(opts, mods, name, isConstructor)
		return
	}

	p.parseFieldTail(opts, mods, name)
}

func (p *parser) parseMethodTail(opts classMemberOpts, mods memberModifiers, name *logger.Range, isConstructor bool) {
	if mods.readonly != nil && p.options.ts() {
		p.report(diag.TypeScriptReadonlyMethod, diag.Span(*mods.readonly))
	}
	if mods.abstract != nil {
		if mods.async != nil {
			p.report(diag.AbstractMethodsCannotBeAsync,
				diag.Span(*mods.async), diag.Span(*mods.abstract))
		}
		if mods.star != nil {
			p.report(diag.AbstractMethodsCannotBeGenerators,
				diag.Span(*mods.star), diag.Span(*mods.abstract))
		}
	} else if opts.isInterface {
		if mods.async != nil {
			p.report(diag.InterfaceMethodsCannotBeAsync, diag.Span(*mods.async))
		}
		if mods.star != nil {
			p.report(diag.InterfaceMethodsCannotBeGenerators, diag.Span(*mods.star))
		}
	}
	if opts.declareKeyword != nil {
		if mods.async != nil {
			p.report(diag.DeclareClassMethodsCannotBeAsync, diag.Span(*mods.async))
		}
		if mods.star != nil {
			p.report(diag.DeclareClassMethodsCannotBeGenerators, diag.Span(*mods.star))
		}
	}

	p.visitor.PropertyDeclaration(name)

	common := fnCommonOpts{
		isAsync:       mods.async != nil,
		isGenerator:   mods.star != nil,
		isConstructor: isConstructor,
	}
	switch {
	case mods.abstract != nil:
		common.forbidBody = true
		common.forbidBodyKind = diag.AbstractMethodsCannotContainBodies
	case opts.isInterface:
		common.forbidBody = true
		common.forbidBodyKind = diag.InterfaceMethodsCannotContainBodies
	case opts.declareKeyword != nil:
		common.forbidBody = true
		common.forbidBodyKind = diag.DeclareClassMethodsCannotContainBodies
	default:
		common.allowMissingBody = p.options.ts()
	}

	bodiless := common.forbidBody
	hadBody := false
	if bodiless {
		// Remember whether the (diagnosed) body was present so the signature
		// semicolon isn't also demanded
		defer func() {
			if hadBody {
				return
			}
			if !p.hasSemicolonEquivalent() {
				switch {
				case mods.abstract != nil:
					p.report(diag.MissingSemicolonAfterAbstractMethod, diag.Span(zeroRangeAt(p.prevEnd)))
				case opts.isInterface:
					p.report(diag.MissingSemicolonAfterInterfaceMethod, diag.Span(zeroRangeAt(p.prevEnd)))
				default:
					p.report(diag.MissingSemicolonAfterDeclareClassMethod, diag.Span(zeroRangeAt(p.prevEnd)))
				}
			}
			p.eat(js_lexer.TSemicolon)
		}()
	}

	p.parseFnRestWithBodyInfo(common, &hadBody)
}

func (p *parser) parseFieldTail(opts classMemberOpts, mods memberModifiers, name *logger.Range) {
	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	if p.lexer.Token == js_lexer.TEquals {
		equal := p.lexer.Range()
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(value, visitUse)

		if mods.abstract != nil {
			p.report(diag.AbstractFieldCannotHaveInitializer,
				diag.Span(equal), diag.Span(*mods.abstract))
		}
		if opts.isInterface {
			p.report(diag.InterfaceFieldsCannotHaveInitializers, diag.Span(equal))
		}
		if opts.declareKeyword != nil || mods.declare != nil {
			p.report(diag.DeclareClassFieldsCannotHaveInitializers, diag.Span(equal))
		}
	}

	p.visitor.PropertyDeclaration(name)

	if p.lexer.Token == js_lexer.TComma {
		p.report(diag.CommaNotAllowedBetweenClassMethods, diag.Span(p.lexer.Range()))
		p.next()
		return
	}

	if !p.hasSemicolonEquivalent() {
		p.report(diag.MissingSemicolonAfterField, diag.Span(zeroRangeAt(p.prevEnd)))
		return
	}
	p.eat(js_lexer.TSemicolon)
}

// looksLikeIndexSignature distinguishes "[key: string]: T" from a computed
// member name.
func (p *parser) looksLikeIndexSignature() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := false
	if p.lexer.Token == js_lexer.TIdentifier {
		p.next()
		ok = p.lexer.Token == js_lexer.TColon
	}
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseIndexSignature(opts classMemberOpts) {
	p.enterScope(scopeIndexSignature)
	p.next() // "["

	name := p.lexer.Range()
	p.next()
	p.parseTypeAnnotation()
	p.visitor.VariableDeclaration(name, diag.VarKindIndexSignatureParameter, visit.Uninitialized)

	p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)

	if p.lexer.Token == js_lexer.TOpenParen {
		p.report(diag.TypeScriptIndexSignatureCannotBeMethod, diag.Span(p.lexer.Range()))
		p.parseParamList(diag.VarKindParameter)
	}

	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	} else {
		p.report(diag.TypeScriptIndexSignatureNeedsType, diag.Span(zeroRangeAt(p.prevEnd)))
	}

	p.exitScope(scopeIndexSignature)

	if !p.hasSemicolonEquivalent() {
		p.report(diag.MissingSemicolonAfterIndexSignature, diag.Span(zeroRangeAt(p.prevEnd)))
	}
	p.eat(js_lexer.TSemicolon)
}
