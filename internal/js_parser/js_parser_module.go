package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

func (p *parser) parseImportStmt() {
	importKeyword := p.lexer.Range()
	p.next()

	if p.declareNamespaceKeyword != nil {
		p.report(diag.DeclareNamespaceCannotImportModule,
			diag.Span(importKeyword), diag.Span(*p.declareNamespaceKeyword))
	}

	kind := diag.VarKindImport

	switch p.lexer.Token {
	case js_lexer.TStringLiteral:
		// "import 'module';" for side effects
		p.next()
		p.expectOrInsertSemicolon()
		return

	case js_lexer.TOpenParen, js_lexer.TDot:
		// "import(...)" and "import.meta" are expressions, not statements
		expr := p.parseImportExprSuffix(importKeyword)
		expr = p.parseSuffix(expr, js_ast.LLowest)
		p.visitExpr(expr, visitUse)
		p.expectOrInsertSemicolon()
		return
	}

	// "import type ..." imports only types
	if p.lexer.IsContextualKeyword("type") && p.importTypeFollows() {
		typeKeyword := p.lexer.Range()
		if !p.options.ts() {
			p.report(diag.TypeScriptTypeImportNotAllowedInJavaScript, diag.Span(typeKeyword))
		}
		kind = diag.VarKindImportType
		p.next()
	}

	needsFrom := false

	switch p.lexer.Token {
	case js_lexer.TOpenBrace:
		p.parseNamedImports(kind)
		needsFrom = true

	case js_lexer.TAsterisk:
		p.parseNamespaceImport(kind)
		needsFrom = true

	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		name := p.lexer.Range()
		text := p.lexer.Identifier
		if text == "let" {
			p.report(diag.CannotImportLet, diag.Span(name))
		}
		p.next()

		// "import x = require('m')" and "import x = A.B" are TypeScript
		// import aliases
		if p.lexer.Token == js_lexer.TEquals {
			equal := p.lexer.Range()
			if !p.options.ts() {
				p.report(diag.TypeScriptImportAliasNotAllowedInJavaScript,
					diag.Span(importKeyword), diag.Span(equal))
			}
			p.next()
			p.visitor.VariableDeclaration(name, kind, visit.Initialized)
			rhs := p.parseExpr(js_ast.LComma + 1)
			p.visitExpr(rhs, visitUse)
			p.expectOrInsertSemicolon()
			return
		}

		p.visitor.VariableDeclaration(name, kind, visit.Uninitialized)
		needsFrom = true

		if p.eat(js_lexer.TComma) {
			switch p.lexer.Token {
			case js_lexer.TOpenBrace:
				p.parseNamedImports(kind)
			case js_lexer.TAsterisk:
				p.parseNamespaceImport(kind)
			default:
				p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
			}
		}

	default:
		if p.lexer.IsIdentifierOrKeyword() {
			p.report(diag.CannotImportVariableNamedKeyword, diag.Span(p.lexer.Range()))
			p.next()
			needsFrom = true
		} else {
			p.report(diag.ExpectedFromAndModuleSpecifier, diag.Span(zeroRangeAt(p.prevEnd)))
			p.skipToStatementBoundary()
			return
		}
	}

	if needsFrom {
		p.parseFromClause()
	}
	p.expectOrInsertSemicolon()
}

// "import type" only binds "type" as a keyword when an import clause
// follows; "import type from 'm'" imports a default named "type".
func (p *parser) importTypeFollows() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := p.lexer.Token == js_lexer.TOpenBrace ||
		p.lexer.Token == js_lexer.TAsterisk ||
		((p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword) &&
			!p.lexer.IsContextualKeyword("from"))
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseNamedImports(kind diag.VarKind) {
	p.next() // "{"

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		innerKind := kind

		// "import { type T }" marks one import as type-only
		if p.lexer.IsContextualKeyword("type") && p.namedImportTypeFollows() {
			if !p.options.ts() {
				p.report(diag.TypeScriptTypeImportNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
			}
			innerKind = diag.VarKindImportType
			p.next()
		}

		if !p.lexer.IsIdentifierOrKeyword() && p.lexer.Token != js_lexer.TStringLiteral {
			p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		name := p.lexer.Range()
		text := p.lexer.Identifier
		isKeyword := p.lexer.Token > js_lexer.TEscapedKeyword
		p.next()

		if p.lexer.IsContextualKeyword("as") {
			p.next()
			if !p.lexer.IsIdentifierOrKeyword() {
				p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
			} else {
				local := p.lexer.Range()
				if p.lexer.Identifier == "let" {
					p.report(diag.CannotImportLet, diag.Span(local))
				}
				p.visitor.VariableDeclaration(local, innerKind, visit.Uninitialized)
				p.next()
			}
		} else {
			switch {
			case text == "let":
				p.report(diag.CannotImportLet, diag.Span(name))
			case isKeyword:
				p.report(diag.CannotImportVariableNamedKeyword, diag.Span(name))
			}
			p.visitor.VariableDeclaration(name, innerKind, visit.Uninitialized)
		}

		if !p.eat(js_lexer.TComma) {
			break
		}
	}

	p.expect(js_lexer.TCloseBrace, diag.UnclosedObjectLiteral,
		diag.Span(p.lexer.Range()), diag.Span(zeroRangeAt(p.prevEnd)))
}

func (p *parser) namedImportTypeFollows() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := p.lexer.IsIdentifierOrKeyword() && !p.lexer.IsContextualKeyword("as")
	if p.lexer.IsContextualKeyword("as") {
		// "{ type as x }" could still be a rename of "type"; look one further
		p.next()
		ok = p.lexer.IsIdentifierOrKeyword()
	}
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseNamespaceImport(kind diag.VarKind) {
	star := p.lexer.Range()
	p.next()

	if !p.lexer.IsContextualKeyword("as") {
		if p.lexer.IsIdentifierOrKeyword() {
			alias := p.lexer.Range()
			p.report(diag.ExpectedAsBeforeImportedNamespaceAlias,
				diag.Span(logger.Range{Loc: star.Loc, Len: alias.End() - star.Loc.Start}),
				diag.Span(alias), diag.Span(star))
			p.visitor.VariableDeclaration(alias, kind, visit.Uninitialized)
			p.next()
		} else {
			p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
		}
		return
	}
	p.next()

	if !p.lexer.IsIdentifierOrKeyword() {
		p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
		return
	}
	name := p.lexer.Range()
	p.visitor.VariableDeclaration(name, kind, visit.Uninitialized)
	p.next()
}

func (p *parser) parseFromClause() {
	if !p.lexer.IsContextualKeyword("from") {
		switch p.lexer.Token {
		case js_lexer.TStringLiteral:
			p.report(diag.ExpectedFromBeforeModuleSpecifier, diag.Span(p.lexer.Range()))
			p.next()
			return
		default:
			p.report(diag.ExpectedFromAndModuleSpecifier, diag.Span(zeroRangeAt(p.prevEnd)))
			return
		}
	}
	p.next()

	switch {
	case p.lexer.Token == js_lexer.TStringLiteral:
		p.next()
	case p.lexer.IsIdentifierOrKeyword():
		p.report(diag.CannotImportFromUnquotedModule, diag.Span(p.lexer.Range()))
		p.next()
	default:
		p.report(diag.ExpectedFromAndModuleSpecifier, diag.Span(zeroRangeAt(p.prevEnd)))
	}
}

func (p *parser) parseExportStmt(opts parseStmtOpts) {
	exportKeyword := p.lexer.Range()
	p.next()

	switch p.lexer.Token {
	case js_lexer.TDefault:
		defaultKeyword := p.lexer.Range()
		p.next()
		if p.inNamespace {
			p.report(diag.TypeScriptNamespaceCannotExportDefault,
				diag.Span(defaultKeyword), diag.Span(exportKeyword))
		}
		p.parseExportDefaultValue()

	case js_lexer.TOpenBrace:
		names := p.parseExportClause(false)
		if p.lexer.IsContextualKeyword("from") {
			// Re-exports don't use local names
			p.parseFromClause()
		} else {
			for _, name := range names {
				p.visitor.VariableUse(name)
			}
		}
		p.expectOrInsertSemicolon()

	case js_lexer.TAsterisk:
		p.next()
		if p.lexer.IsContextualKeyword("as") {
			p.next()
			if p.lexer.IsIdentifierOrKeyword() {
				p.next()
			} else {
				p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
			}
		}
		p.parseFromClause()
		p.expectOrInsertSemicolon()

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

	case js_lexer.TFunction:
		p.parseFnStmt(fnStmtOpts{isExport: true})

	case js_lexer.TClass:
		p.parseClassStmt(classStmtOpts{isExport: true})

	case js_lexer.TEnum:
		p.parseEnum(p.lexer.Range(), diag.EnumKindNormal)

	case js_lexer.TEquals:
		// "export = value" is TypeScript
		equal := p.lexer.Range()
		if !p.options.ts() {
			p.report(diag.TypeScriptExportEqualNotAllowedInJavaScript,
				diag.Span(equal), diag.Span(exportKeyword))
		}
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(value, visitUse)
		p.expectOrInsertSemicolon()

	case js_lexer.TSemicolon, js_lexer.TEndOfFile, js_lexer.TCloseBrace:
		p.report(diag.MissingTokenAfterExport, diag.Span(exportKeyword))
		p.eat(js_lexer.TSemicolon)

	case js_lexer.TImport:
		// "export import a = b" (TypeScript)
		p.parseImportStmt()

	case js_lexer.TIdentifier:
		switch p.lexer.Identifier {
		case "let":
			if p.letStartsDeclaration() {
				keyword := p.lexer.Range()
				p.next()
				p.parseDeclarationsStmt(diag.VarKindLet, keyword, opts)
				return
			}

		case "async":
			t := p.lexer.BeginTransaction()
			asyncRange := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TFunction {
				p.lexer.CommitTransaction(t)
				p.parseFnStmt(fnStmtOpts{isAsync: true, asyncRange: asyncRange, isExport: true})
				return
			}
			p.lexer.RollBackTransaction(t)

		case "type":
			// "export type {T}" or "export type A = B"
			typeKeyword := p.lexer.Range()
			t := p.lexer.BeginTransaction()
			p.next()
			if p.lexer.Token == js_lexer.TOpenBrace {
				p.lexer.CommitTransaction(t)
				if !p.options.ts() {
					p.report(diag.TypeScriptTypeExportNotAllowedInJavaScript, diag.Span(typeKeyword))
				}
				names := p.parseExportClause(true)
				if p.lexer.IsContextualKeyword("from") {
					p.parseFromClause()
				} else {
					for _, name := range names {
						p.visitor.VariableTypeUse(name)
					}
				}
				p.expectOrInsertSemicolon()
				return
			}
			p.lexer.RollBackTransaction(t)
			if p.looksLikeTSDeclaration() {
				p.parseTypeAlias(typeKeyword)
				return
			}

		case "interface":
			if p.looksLikeTSDeclaration() {
				p.parseInterface(p.lexer.Range())
				return
			}

		case "namespace", "module":
			if p.looksLikeTSNamespace() {
				p.parseNamespace(p.lexer.Range(), nil)
				return
			}

		case "declare":
			if p.looksLikeTSDeclaration() {
				declareRange := p.lexer.Range()
				if p.lexer.HasNewlineBefore {
					p.report(diag.NewlineNotAllowedAfterExportDeclare, diag.Span(declareRange))
				}
				p.parseDeclare(declareRange, opts)
				return
			}

		case "abstract":
			t := p.lexer.BeginTransaction()
			abstractRange := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TClass {
				p.lexer.CommitTransaction(t)
				if !p.options.ts() {
					p.report(diag.TypeScriptAbstractClassNotAllowedInJavaScript, diag.Span(abstractRange))
				}
				p.parseClassStmt(classStmtOpts{isExport: true, abstractRange: &abstractRange})
				return
			}
			p.lexer.RollBackTransaction(t)
		}

		// "export foo" is missing braces; "export foo, bar" too
		namesStart := p.lexer.Range()
		p.next()
		namesEnd := p.prevRange.End()
		for p.eat(js_lexer.TComma) {
			if p.lexer.IsIdentifierOrKeyword() {
				namesEnd = p.lexer.Range().End()
				p.next()
			}
		}
		p.report(diag.ExportingRequiresCurlies,
			diag.Span(logger.Range{Loc: namesStart.Loc, Len: namesEnd - namesStart.Loc.Start}))
		p.expectOrInsertSemicolon()

	default:
		if tokenStartsExpression(p.lexer.Token) {
			start := p.lexer.Loc()
			value := p.parseExpr(js_ast.LLowest)
			p.report(diag.ExportingRequiresDefault,
				diag.Span(logger.Range{Loc: start, Len: p.prevRange.End() - start.Start}))
			p.visitExpr(value, visitUse)
			p.expectOrInsertSemicolon()
			return
		}
		p.report(diag.UnexpectedTokenAfterExport, diag.Span(p.lexer.Range()))
		p.next()
	}
}

func (p *parser) parseExportDefaultValue() {
	switch p.lexer.Token {
	case js_lexer.TFunction:
		p.parseFnStmt(fnStmtOpts{isExport: true, isDefaultExport: true})
		return

	case js_lexer.TClass:
		p.parseClassStmt(classStmtOpts{isExport: true, isDefaultExport: true})
		return

	case js_lexer.TIdentifier:
		if p.lexer.Identifier == "async" {
			t := p.lexer.BeginTransaction()
			asyncRange := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TFunction {
				p.lexer.CommitTransaction(t)
				p.parseFnStmt(fnStmtOpts{isAsync: true, asyncRange: asyncRange, isExport: true, isDefaultExport: true})
				return
			}
			p.lexer.RollBackTransaction(t)
		}
	}

	value := p.parseExpr(js_ast.LComma + 1)
	p.visitExpr(value, visitUse)
	p.expectOrInsertSemicolon()
}

// parseExportClause parses "{ a, b as c }" and returns the local names. The
// caller turns them into uses unless a from-clause follows.
func (p *parser) parseExportClause(isTypeOnly bool) (names []logger.Range) {
	p.next() // "{"

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.IsContextualKeyword("type") {
			typeKeyword := p.lexer.Range()
			t := p.lexer.BeginTransaction()
			p.next()
			if p.lexer.IsIdentifierOrKeyword() && !p.lexer.IsContextualKeyword("as") {
				p.lexer.CommitTransaction(t)
				if !p.options.ts() {
					p.report(diag.TypeScriptTypeExportNotAllowedInJavaScript, diag.Span(typeKeyword))
				}
			} else {
				p.lexer.RollBackTransaction(t)
			}
		}

		if !p.lexer.IsIdentifierOrKeyword() && p.lexer.Token != js_lexer.TStringLiteral {
			p.report(diag.UnexpectedTokenAfterExport, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}

		if p.lexer.Token != js_lexer.TStringLiteral {
			names = append(names, p.lexer.Range())
		}
		p.next()

		if p.lexer.IsContextualKeyword("as") {
			p.next()
			if p.lexer.IsIdentifierOrKeyword() || p.lexer.Token == js_lexer.TStringLiteral {
				p.next()
			} else {
				p.report(diag.ExpectedVariableNameForImportAs, diag.Span(p.lexer.Range()))
			}
		}

		if !p.eat(js_lexer.TComma) {
			break
		}
	}

	p.expect(js_lexer.TCloseBrace, diag.UnclosedObjectLiteral,
		diag.Span(p.lexer.Range()), diag.Span(zeroRangeAt(p.prevEnd)))
	return names
}
