package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

// The parser commits to one of the three for-loop forms (C-style, for-in,
// for-of) only after the first header component has been parsed.
func (p *parser) parseForStmt() {
	forKeyword := p.lexer.Range()
	p.next()

	var awaitRange *logger.Range
	if p.lexer.IsContextualKeyword("await") {
		r := p.lexer.Range()
		awaitRange = &r
		p.next()
	}

	if p.lexer.Token != js_lexer.TOpenParen {
		p.report(diag.MissingForLoopHeader, diag.Span(forKeyword))
		p.skipToStatementBoundary()
		return
	}
	p.next()

	p.enterScope(scopeFor)
	defer p.exitScope(scopeFor)

	headerStart := forKeyword.Loc

	var declKind diag.VarKind
	var declKeyword logger.Range
	var collected []declaredName
	var initExpr js_ast.Index = js_ast.InvalidIndex
	hasDecl := false
	declHasInitializer := false
	declCount := 0

	switch {
	case p.lexer.Token == js_lexer.TSemicolon:
		// Empty initializer; definitely C-style

	case p.lexer.Token == js_lexer.TVar:
		hasDecl = true
		declKind = diag.VarKindVar
		declKeyword = p.lexer.Range()
		p.next()
		declHasInitializer, declCount = p.parseForHeadDeclarations(declKind, declKeyword, &collected)

	case p.lexer.Token == js_lexer.TConst:
		hasDecl = true
		declKind = diag.VarKindConst
		declKeyword = p.lexer.Range()
		p.next()
		declHasInitializer, declCount = p.parseForHeadDeclarations(declKind, declKeyword, &collected)

	case p.lexer.IsContextualKeyword("let") && p.letStartsDeclaration():
		hasDecl = true
		declKind = diag.VarKindLet
		declKeyword = p.lexer.Range()
		p.next()
		declHasInitializer, declCount = p.parseForHeadDeclarations(declKind, declKeyword, &collected)

	default:
		oldAllowIn := p.allowIn
		p.allowIn = false
		initExpr = p.parseExpr(js_ast.LLowest)
		p.allowIn = oldAllowIn
	}

	headerRangeTo := func(end int32) logger.Range {
		return logger.Range{Loc: headerStart, Len: end - headerStart.Start}
	}

	switch {
	case p.lexer.Token == js_lexer.TIn:
		inToken := p.lexer.Range()
		p.next()

		if hasDecl {
			// "for (var x = init in xs)" is a legacy form permitted in
			// scripts; anything else mixing "in" with initializers or
			// multiple declarators is not
			if declCount > 1 || (declHasInitializer && declKind != diag.VarKindVar) {
				p.report(diag.InDisallowedInCStyleForLoop, diag.Span(inToken))
			}
		}

		iterable := p.parseExpr(js_ast.LLowest)
		p.visitExpr(iterable, visitUse)
		p.emitForHead(hasDecl, declKind, collected, initExpr)
		if p.lexer.Token == js_lexer.TSemicolon {
			p.report(diag.UnexpectedSemicolonInForInLoop, diag.Span(p.lexer.Range()))
			p.skipForHeaderSemicolons()
		}
		if awaitRange != nil {
			p.report(diag.UnexpectedToken, diag.Span(*awaitRange))
		}

	case p.lexer.IsContextualKeyword("of"):
		p.next()

		if hasDecl && (declCount > 1 || declHasInitializer) {
			p.report(diag.InDisallowedInCStyleForLoop, diag.Span(zeroRangeAt(p.prevRange.Loc)))
		}
		if !hasDecl && initExpr.IsValid() && p.arena.At(initExpr).Kind == js_ast.EAssign {
			p.report(diag.CannotAssignToLoopVariableInForOfOrInLoop,
				diag.Span(p.arena.At(initExpr).Op))
		}

		iterable := p.parseExpr(js_ast.LComma + 1)
		p.visitExpr(iterable, visitUse)
		p.emitForHead(hasDecl, declKind, collected, initExpr)
		if p.lexer.Token == js_lexer.TSemicolon {
			p.report(diag.UnexpectedSemicolonInForOfLoop, diag.Span(p.lexer.Range()))
			p.skipForHeaderSemicolons()
		}

	case p.lexer.Token == js_lexer.TSemicolon:
		// C-style
		if awaitRange != nil {
			p.report(diag.UnexpectedToken, diag.Span(*awaitRange))
		}
		if hasDecl {
			p.emitForHead(hasDecl, declKind, collected, js_ast.InvalidIndex)
		} else if initExpr.IsValid() {
			p.visitExpr(initExpr, visitUse)
		}
		p.next()

		// Condition
		if p.lexer.Token != js_lexer.TSemicolon && p.lexer.Token != js_lexer.TCloseParen {
			cond := p.parseExpr(js_ast.LLowest)
			p.warnOnConditionAssignment(cond)
			p.visitExpr(cond, visitUse)
		}

		if p.lexer.Token == js_lexer.TCloseParen {
			p.report(diag.CStyleForLoopIsMissingThirdComponent,
				diag.Span(zeroRangeAt(p.lexer.Loc())), diag.Span(p.prevRange))
			break
		}

		if !p.expect(js_lexer.TSemicolon, diag.MissingSemicolonBetweenForLoopConditionAndUpdate,
			diag.Span(zeroRangeAt(p.prevEnd))) {
			break
		}

		// Update
		if p.lexer.Token != js_lexer.TCloseParen && p.lexer.Token != js_lexer.TSemicolon {
			update := p.parseExpr(js_ast.LLowest)
			p.visitExpr(update, visitUse)
		}

		// Only three components are allowed
		for p.lexer.Token == js_lexer.TSemicolon {
			p.report(diag.UnexpectedSemicolonInCStyleForLoop, diag.Span(p.lexer.Range()))
			p.next()
			if p.lexer.Token != js_lexer.TCloseParen && p.lexer.Token != js_lexer.TSemicolon {
				extra := p.parseExpr(js_ast.LLowest)
				p.visitExpr(extra, visitUse)
			}
		}

	default:
		if hasDecl {
			p.report(diag.MissingForLoopRhsOrComponentsAfterDeclaration,
				diag.Span(headerRangeTo(p.prevRange.End())), diag.Span(forKeyword))
		} else {
			p.report(diag.MissingForLoopRhsOrComponentsAfterExpression,
				diag.Span(headerRangeTo(p.prevRange.End())), diag.Span(forKeyword))
		}
		if hasDecl {
			p.emitForHead(hasDecl, declKind, collected, js_ast.InvalidIndex)
		} else if initExpr.IsValid() {
			p.visitExpr(initExpr, visitUse)
		}
	}

	p.expect(js_lexer.TCloseParen, diag.UnmatchedParenthesis)

	p.fn.loopDepth++
	if p.hasMissingBody() {
		p.report(diag.MissingBodyForForStatement,
			diag.Span(logger.Range{Loc: forKeyword.Loc, Len: p.prevRange.End() - forKeyword.Loc.Start}))
	} else {
		p.parseNestedStmt(diag.StatementKindForLoop, p.prevEnd)
	}
	p.fn.loopDepth--
}

func (p *parser) letStartsDeclaration() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	isDecl := !p.lexer.HasNewlineBefore &&
		(p.lexer.Token == js_lexer.TIdentifier ||
			p.lexer.Token == js_lexer.TOpenBracket ||
			p.lexer.Token == js_lexer.TOpenBrace ||
			p.lexer.Token == js_lexer.TEscapedKeyword)
	p.lexer.RollBackTransaction(t)
	return isDecl
}

func (p *parser) parseForHeadDeclarations(kind diag.VarKind, keyword logger.Range, collected *[]declaredName) (hasInit bool, count int) {
	oldAllowIn := p.allowIn
	p.allowIn = false
	before := len(*collected)
	p.parseDeclarations(kind, keyword, declOpts{isForHead: true, collect: collected})
	p.allowIn = oldAllowIn

	count = len(*collected) - before
	for _, n := range (*collected)[before:] {
		if n.init == visit.Initialized {
			hasInit = true
		}
	}
	return hasInit, count
}

// emitForHead emits the declaration or assignment visits for the loop
// variable after the iterable (if any) has been visited.
func (p *parser) emitForHead(hasDecl bool, kind diag.VarKind, collected []declaredName, initExpr js_ast.Index) {
	if hasDecl {
		for _, n := range collected {
			p.visitor.VariableDeclaration(n.name, kind, n.init)
		}
		return
	}
	if initExpr.IsValid() {
		p.visitExpr(initExpr, visitAssign)
	}
}

func (p *parser) skipForHeaderSemicolons() {
	for p.lexer.Token == js_lexer.TSemicolon {
		p.next()
		if p.lexer.Token != js_lexer.TSemicolon && p.lexer.Token != js_lexer.TCloseParen {
			extra := p.parseExpr(js_ast.LLowest)
			p.visitExpr(extra, visitUse)
		}
	}
}
