package js_parser

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

func (p *parser) alloc(node js_ast.Expr) js_ast.Index {
	return p.arena.Alloc(node)
}

func (p *parser) at(i js_ast.Index) *js_ast.Expr {
	return p.arena.At(i)
}

func (p *parser) missingExpr(loc logger.Loc) js_ast.Index {
	return p.alloc(js_ast.Expr{Kind: js_ast.EMissing, Range: zeroRangeAt(loc)})
}

// parseExpr parses an expression at the given precedence level using
// precedence climbing: a prefix, then suffixes while the next operator binds
// at least as tightly as the level.
func (p *parser) parseExpr(level js_ast.L) js_ast.Index {
	p.liveExprs++
	defer func() { p.liveExprs-- }()

	expr := p.parsePrefix(level)
	return p.parseSuffix(expr, level)
}

func (p *parser) parsePrefix(level js_ast.L) js_ast.Index {
	loc := p.lexer.Loc()
	tokenRange := p.lexer.Range()

	switch p.lexer.Token {
	case js_lexer.TOpenParen:
		return p.parseParenOrArrow()

	case js_lexer.TNumericLiteral:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.ENumber, Range: tokenRange})

	case js_lexer.TBigIntegerLiteral:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.EBigInt, Range: tokenRange})

	case js_lexer.TStringLiteral:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.EString, Range: tokenRange})

	case js_lexer.TNoSubstitutionTemplateLiteral:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.ETemplate, Range: tokenRange})

	case js_lexer.TTemplateHead:
		return p.parseTemplate(tokenRange, js_ast.InvalidIndex)

	case js_lexer.TTrue, js_lexer.TFalse:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.EBoolean, Range: tokenRange})

	case js_lexer.TNull:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.ENull, Range: tokenRange})

	case js_lexer.TThis:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.EThis, Range: tokenRange})

	case js_lexer.TSuper:
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.ESuper, Range: tokenRange})

	case js_lexer.TSlash, js_lexer.TSlashEquals:
		// Only the parser knows this slash starts a regex
		p.lexer.ScanRegExp()
		r := p.lexer.Range()
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.ERegExp, Range: r})

	case js_lexer.TOpenBracket:
		return p.parseArrayLiteral()

	case js_lexer.TOpenBrace:
		return p.parseObjectLiteral()

	case js_lexer.TFunction:
		return p.parseFnExpr(false, logger.Range{})

	case js_lexer.TClass:
		classKeyword := tokenRange
		p.next()
		var name *logger.Range
		if p.lexer.IsIdentifierOrKeyword() {
			r := p.lexer.Range()
			name = &r
			p.next()
		}
		p.parseClassRest(classKeyword, name, classStmtOpts{isDefaultExport: true})
		return p.alloc(js_ast.Expr{Kind: js_ast.EClass, Range: logger.Range{
			Loc: classKeyword.Loc, Len: p.prevRange.End() - classKeyword.Loc.Start}})

	case js_lexer.TNew:
		return p.parseNewExpr(tokenRange)

	case js_lexer.TImport:
		p.next()
		return p.parseImportExprSuffix(tokenRange)

	case js_lexer.TPrivateIdentifier:
		// "#field in obj"
		p.next()
		return p.alloc(js_ast.Expr{Kind: js_ast.EPrivateIdentifier, Range: tokenRange, Name: tokenRange})

	case js_lexer.TExclamation, js_lexer.TMinus, js_lexer.TPlus, js_lexer.TTilde,
		js_lexer.TTypeof, js_lexer.TVoid, js_lexer.TDelete:
		op := p.lexer.Token
		p.next()
		value := p.parseUnaryOperand(tokenRange)

		flags := js_ast.ExprFlags(0)
		if op == js_lexer.TTypeof && p.at(value).Kind == js_ast.EIdentifier {
			p.at(value).Flags |= js_ast.FlagDirectTypeofTarget
		}
		if op == js_lexer.TDelete {
			if p.at(value).Kind == js_ast.EIdentifier {
				p.at(value).Flags |= js_ast.FlagDirectDeleteTarget
				p.report(diag.RedundantDeleteStatementOnVariable,
					diag.Span(logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start}))
			}
		}

		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EPrefix,
			Flags:    flags,
			Op:       tokenRange,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{value},
		})

	case js_lexer.TMinusMinus, js_lexer.TPlusPlus:
		p.next()
		value := p.parseUnaryOperand(tokenRange)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EPrefix,
			Op:       tokenRange,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{value},
		})

	case js_lexer.TDotDotDot:
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.ESpread,
			Op:       tokenRange,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{value},
		})

	case js_lexer.TLessThan:
		// In JSX mode "<" starts an element. In TS (non-TSX) it is an angle
		// type assertion: "<T>expr".
		if p.options.JSX || !p.options.ts() {
			if !p.options.JSX {
				p.report(diag.JSXNotAllowedInJavaScript, diag.Span(tokenRange))
			}
			if p.options.ts() {
				// In TSX a generic arrow is only distinguishable from an
				// element by the "=>" after its parameter list
				if arrow, ok := p.tryParseTSXGenericArrow(tokenRange); ok {
					return arrow
				}
			}
			element := p.parseJSXElementOrFragment()
			p.next() // the element's trailing ">" rescans in normal mode here
			for p.lexer.Token == js_lexer.TLessThan {
				// Two elements side by side need an enclosing fragment
				second := p.lexer.Range()
				sibling := p.parseJSXElementOrFragment()
				p.next()
				p.report(diag.AdjacentJSXWithoutParent,
					diag.Span(zeroRangeAt(tokenRange.Loc)),
					diag.Span(zeroRangeAt(second.Loc)),
					diag.Span(zeroRangeAt(p.prevEnd)))
				p.at(element).Children = append(p.at(element).Children, sibling)
			}
			return element
		}
		p.skipTypeArgumentsAsAssertion()
		value := p.parsePrefix(js_ast.LPrefix)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EAngleAssertion,
			Op:       tokenRange,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{value},
		})

	case js_lexer.TIdentifier, js_lexer.TEscapedKeyword:
		return p.parseIdentifierPrefix(tokenRange)

	case js_lexer.TSemicolon:
		p.report(diag.ExpectedExpressionBeforeSemicolon, diag.Span(tokenRange))
		return p.missingExpr(loc)

	case js_lexer.TColon, js_lexer.TComma, js_lexer.TCloseParen,
		js_lexer.TCloseBracket, js_lexer.TCloseBrace, js_lexer.TEndOfFile:
		p.report(diag.MissingOperandForOperator, diag.Span(zeroRangeAt(p.prevEnd)))
		return p.missingExpr(loc)

	case js_lexer.TQuestion:
		p.report(diag.UnexpectedQuestionInExpression, diag.Span(tokenRange))
		p.next()
		return p.parsePrefix(level)

	case js_lexer.TEqualsGreaterThan:
		p.report(diag.MissingArrowFunctionParameterList, diag.Span(tokenRange))
		return p.parseArrowBody(tokenRange, nil, false, logger.Range{})

	default:
		if p.lexer.IsIdentifierOrKeyword() {
			// A contextual keyword used as a plain identifier
			return p.parseIdentifierPrefix(tokenRange)
		}
		p.report(diag.UnexpectedToken, diag.Span(tokenRange))
		p.next()
		return p.missingExpr(loc)
	}
}

// parseUnaryOperand parses the operand of a prefix operator and rejects
// "-x ** 2", which requires parentheses.
func (p *parser) parseUnaryOperand(opRange logger.Range) js_ast.Index {
	value := p.parsePrefix(js_ast.LPrefix)
	value = p.parseSuffix(value, js_ast.LPrefix)

	if p.lexer.Token == js_lexer.TAsteriskAsterisk {
		p.report(diag.MissingParenthesesAroundUnaryLhsOfExponent,
			diag.Span(logger.Range{Loc: opRange.Loc, Len: p.prevRange.End() - opRange.Loc.Start}),
			diag.Span(p.lexer.Range()))
	}
	return value
}

func (p *parser) parseIdentifierPrefix(tokenRange logger.Range) js_ast.Index {
	name := p.lexer.Identifier
	hasEscape := p.lexer.HasEscapeInKeyword

	// A reserved word with escapes is never a valid identifier
	if p.lexer.Token == js_lexer.TEscapedKeyword {
		p.report(diag.KeywordsCannotContainEscapeSequences, diag.Span(tokenRange))
	}

	switch name {
	case "async":
		if !hasEscape {
			return p.parseAsyncPrefix(tokenRange)
		}

	case "await":
		isOperator := false
		switch {
		case p.fn.isTopLevel:
			if p.options.TopLevelAwait == TopLevelAwaitOperator {
				isOperator = true
			} else {
				// Auto mode: an operator only when what follows can start an
				// expression on the same line
				t := p.lexer.BeginTransaction()
				p.next()
				isOperator = !p.lexer.HasNewlineBefore && tokenStartsExpression(p.lexer.Token)
				p.lexer.RollBackTransaction(t)
			}
		case p.fn.await == allowExpr:
			isOperator = true
		default:
			// Inside a non-async function "await x" is a mistake worth
			// naming, not two adjacent identifiers
			t := p.lexer.BeginTransaction()
			p.next()
			followedByOperand := !p.lexer.HasNewlineBefore && tokenStartsExpression(p.lexer.Token) &&
				p.lexer.Token != js_lexer.TEqualsGreaterThan
			p.lexer.RollBackTransaction(t)
			if followedByOperand {
				p.report(diag.AwaitOperatorOutsideAsync, diag.Span(tokenRange))
				isOperator = true
			}
		}
		if isOperator {
			p.next()
			value := p.parseUnaryOperand(tokenRange)
			if p.lexer.Token == js_lexer.TEqualsGreaterThan {
				p.report(diag.AwaitFollowedByArrowFunction, diag.Span(tokenRange))
			}
			p.warnOnRedundantAwait(tokenRange, value)
			return p.alloc(js_ast.Expr{
				Kind:     js_ast.EAwait,
				Op:       tokenRange,
				Range:    logger.Range{Loc: tokenRange.Loc, Len: p.prevRange.End() - tokenRange.Loc.Start},
				Children: []js_ast.Index{value},
			})
		}

	case "yield":
		if p.currentYieldIsOperator() {
			p.next()
			star := p.lexer.Token == js_lexer.TAsterisk && !p.lexer.HasNewlineBefore
			if star {
				p.next()
			}
			var children []js_ast.Index
			if !p.lexer.HasNewlineBefore && tokenStartsExpression(p.lexer.Token) {
				children = append(children, p.parseExpr(js_ast.LYield))
			}
			return p.alloc(js_ast.Expr{
				Kind:     js_ast.EYield,
				Op:       tokenRange,
				Range:    logger.Range{Loc: tokenRange.Loc, Len: p.prevRange.End() - tokenRange.Loc.Start},
				Children: children,
			})
		}
	}

	p.next()

	// "x => x * 2" is an arrow with a single unparenthesized parameter
	if p.lexer.Token == js_lexer.TEqualsGreaterThan && !p.lexer.HasNewlineBefore {
		return p.parseArrowBody(tokenRange, []arrowParam{{name: tokenRange}}, false, logger.Range{})
	}

	return p.alloc(js_ast.Expr{Kind: js_ast.EIdentifier, Range: tokenRange, Name: tokenRange})
}

func (p *parser) parseAsyncPrefix(asyncRange logger.Range) js_ast.Index {
	t := p.lexer.BeginTransaction()
	p.next()

	switch {
	case p.lexer.Token == js_lexer.TFunction && !p.lexer.HasNewlineBefore:
		p.lexer.CommitTransaction(t)
		return p.parseFnExpr(true, asyncRange)

	case (p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword) &&
		!p.lexer.HasNewlineBefore:
		// "async x => ..."
		param := p.lexer.Range()
		p.next()
		if p.lexer.Token == js_lexer.TEqualsGreaterThan && !p.lexer.HasNewlineBefore {
			p.lexer.CommitTransaction(t)
			return p.parseArrowBody(asyncRange, []arrowParam{{name: param}}, true, asyncRange)
		}
		p.lexer.RollBackTransaction(t)

	case p.lexer.Token == js_lexer.TOpenParen:
		// "async (x) => ..." needs lookahead to the "=>"
		hadNewline := p.lexer.HasNewlineBefore
		inner := p.lexer.BeginTransaction()
		isArrow := p.parenIsArrowParameterList()
		arrow := p.lexer.Range()
		p.lexer.RollBackTransaction(inner)
		if isArrow {
			if hadNewline {
				// A newline between "async" and the parameter list makes this
				// a call to a function named "async", but the "=>" shows what
				// the programmer meant
				p.report(diag.NewlineNotAllowedBetweenAsyncAndParameterList,
					diag.Span(asyncRange), diag.Span(arrow))
			}
			p.lexer.CommitTransaction(t)
			return p.parseArrowFromParen(asyncRange, true, asyncRange)
		}
		p.lexer.RollBackTransaction(t)

	case p.lexer.Token == js_lexer.TLessThan && p.options.ts():
		// "async <T>(x) => ..." generic async arrow
		p.lexer.RollBackTransaction(t)

	default:
		p.lexer.RollBackTransaction(t)
	}

	// Plain identifier "async"
	p.next()
	if p.lexer.Token == js_lexer.TEqualsGreaterThan && !p.lexer.HasNewlineBefore {
		return p.parseArrowBody(asyncRange, []arrowParam{{name: asyncRange}}, false, logger.Range{})
	}
	return p.alloc(js_ast.Expr{Kind: js_ast.EIdentifier, Range: asyncRange, Name: asyncRange})
}

func (p *parser) parseFnExpr(isAsync bool, asyncRange logger.Range) js_ast.Index {
	fnKeyword := p.lexer.Range()
	start := fnKeyword.Loc
	if isAsync {
		start = asyncRange.Loc
	}
	p.next()

	isGenerator := p.eat(js_lexer.TAsterisk)

	var name *logger.Range
	if p.lexer.IsIdentifierOrKeyword() {
		r := p.lexer.Range()
		name = &r
		p.next()
	}

	// The body is visited eagerly, which is exactly the "function expression
	// bodies come before the surrounding operands" ordering rule
	p.parseFnRest(fnCommonOpts{
		isAsync:     isAsync,
		isGenerator: isGenerator,
		exprName:    name,
	})

	flags := js_ast.ExprFlags(0)
	if isAsync {
		flags |= js_ast.FlagIsAsync
	}
	if isGenerator {
		flags |= js_ast.FlagIsGenerator
	}
	return p.alloc(js_ast.Expr{
		Kind:  js_ast.EFunction,
		Flags: flags,
		Range: logger.Range{Loc: start, Len: p.prevRange.End() - start.Start},
	})
}

type arrowParam struct {
	name logger.Range
}

// parenIsArrowParameterList speculatively scans from an open parenthesis to
// its matching close and reports whether "=>" follows. Must be called inside
// a transaction.
func (p *parser) parenIsArrowParameterList() bool {
	depth := 0
	for {
		switch p.lexer.Token {
		case js_lexer.TOpenParen:
			depth++
		case js_lexer.TCloseParen:
			depth--
			if depth == 0 {
				p.next()
				return p.lexer.Token == js_lexer.TEqualsGreaterThan
			}
		case js_lexer.TEndOfFile:
			return false
		}
		p.next()
	}
}

// parseParenOrArrow disambiguates "(x, y) => ..." from a parenthesized
// expression with one bounded speculative scan.
func (p *parser) parseParenOrArrow() js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	openParen := p.lexer.Range()

	t := p.lexer.BeginTransaction()
	isArrow := p.parenIsArrowParameterList()
	p.lexer.RollBackTransaction(t)

	if isArrow {
		return p.parseArrowFromParen(openParen, false, logger.Range{})
	}

	p.next()

	if p.lexer.Token == js_lexer.TCloseParen {
		// "()" without "=>"
		closeParen := p.lexer.Range()
		p.report(diag.MissingExpressionBetweenParentheses,
			diag.Span(logger.Range{Loc: openParen.Loc, Len: closeParen.End() - openParen.Loc.Start}))
		p.next()
		return p.missingExpr(openParen.Loc)
	}

	value := p.parseExpr(js_ast.LLowest)

	if p.lexer.Token != js_lexer.TCloseParen {
		p.report(diag.UnmatchedParenthesis, diag.Span(openParen))
	} else {
		p.next()
	}

	p.at(value).Flags |= js_ast.FlagWasParenthesized
	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EParen,
		Op:       openParen,
		Range:    logger.Range{Loc: openParen.Loc, Len: p.prevRange.End() - openParen.Loc.Start},
		Children: []js_ast.Index{value},
	})
}

// parseArrowFromParen parses "(...)" as an arrow parameter list, then the
// arrow body.
func (p *parser) parseArrowFromParen(start logger.Range, isAsync bool, asyncRange logger.Range) js_ast.Index {
	// Enter the scope before the parameters so defaults are visited inside
	prev := p.pushFn(fnContext{
		isAsync: isAsync,
		await:   awaitMode(isAsync),
	})
	p.enterScope(scopeFunction)

	p.parseParamList(diag.VarKindArrowParameter)

	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}

	if p.lexer.Token != js_lexer.TEqualsGreaterThan {
		p.report(diag.MissingArrowOperatorInArrowFunction, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.next()
	}

	p.parseArrowBodyInScope()

	p.exitScope(scopeFunction)
	p.popFn(prev)

	flags := js_ast.FlagIsAsync
	if !isAsync {
		flags = 0
	}
	return p.alloc(js_ast.Expr{
		Kind:  js_ast.EArrow,
		Flags: flags,
		Range: logger.Range{Loc: start.Loc, Len: p.prevRange.End() - start.Loc.Start},
	})
}

// parseArrowBody handles the single-identifier parameter form where the
// parameter is already known.
func (p *parser) parseArrowBody(start logger.Range, params []arrowParam, isAsync bool, asyncRange logger.Range) js_ast.Index {
	prev := p.pushFn(fnContext{
		isAsync: isAsync,
		await:   awaitMode(isAsync),
	})
	p.enterScope(scopeFunction)

	for _, param := range params {
		p.visitor.VariableDeclaration(param.name, diag.VarKindArrowParameter, visit.Uninitialized)
	}

	if p.lexer.Token != js_lexer.TEqualsGreaterThan {
		p.report(diag.MissingArrowOperatorInArrowFunction, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.next()
	}

	p.parseArrowBodyInScope()

	p.exitScope(scopeFunction)
	p.popFn(prev)

	flags := js_ast.FlagIsAsync
	if !isAsync {
		flags = 0
	}
	return p.alloc(js_ast.Expr{
		Kind:  js_ast.EArrow,
		Flags: flags,
		Range: logger.Range{Loc: start.Loc, Len: p.prevRange.End() - start.Loc.Start},
	})
}

func (p *parser) parseArrowBodyInScope() {
	p.visitor.EnterFunctionScopeBody()

	if p.lexer.Token == js_lexer.TOpenBrace {
		open := p.lexer.Range()
		p.next()
		p.parseStmtsUpTo(js_lexer.TCloseBrace)
		if p.lexer.Token == js_lexer.TEndOfFile {
			p.report(diag.UnclosedCodeBlock, diag.Span(open))
		}
		p.eat(js_lexer.TCloseBrace)
		return
	}

	// Expression body: visit it inside the function scope
	value := p.parseExpr(js_ast.LComma + 1)
	p.visitExpr(value, visitUse)
}

func (p *parser) parseNewExpr(newRange logger.Range) js_ast.Index {
	p.next()

	// "new.target"
	if p.lexer.Token == js_lexer.TDot {
		p.next()
		if p.lexer.IsIdentifierOrKeyword() {
			p.next()
		} else {
			p.report(diag.MissingPropertyNameForDotOperator, diag.Span(p.prevRange))
		}
		return p.alloc(js_ast.Expr{Kind: js_ast.EImportMeta, Range: logger.Range{
			Loc: newRange.Loc, Len: p.prevRange.End() - newRange.Loc.Start}})
	}

	target := p.parsePrefix(js_ast.LMember)
	target = p.parseSuffix(target, js_ast.LCall)

	children := []js_ast.Index{target}
	if p.lexer.Token == js_lexer.TOpenParen {
		children = append(children, p.parseCallArgs()...)
	}

	return p.alloc(js_ast.Expr{
		Kind:     js_ast.ENew,
		Op:       newRange,
		Range:    logger.Range{Loc: newRange.Loc, Len: p.prevRange.End() - newRange.Loc.Start},
		Children: children,
	})
}

// parseImportExprSuffix parses what follows the "import" keyword in
// expression position: "import(...)" or "import.meta".
func (p *parser) parseImportExprSuffix(importRange logger.Range) js_ast.Index {
	switch p.lexer.Token {
	case js_lexer.TOpenParen:
		children := p.parseCallArgs()
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EImportCall,
			Op:       importRange,
			Range:    logger.Range{Loc: importRange.Loc, Len: p.prevRange.End() - importRange.Loc.Start},
			Children: children,
		})

	case js_lexer.TDot:
		p.next()
		if p.lexer.IsContextualKeyword("meta") {
			p.next()
		} else {
			p.report(diag.MissingPropertyNameForDotOperator, diag.Span(p.prevRange))
		}
		return p.alloc(js_ast.Expr{Kind: js_ast.EImportMeta, Range: logger.Range{
			Loc: importRange.Loc, Len: p.prevRange.End() - importRange.Loc.Start}})

	default:
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
		return p.missingExpr(importRange.Loc)
	}
}

func (p *parser) parseTemplate(headRange logger.Range, tag js_ast.Index) js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	var children []js_ast.Index
	if tag.IsValid() {
		children = append(children, tag)
	}

	p.next() // template head

	for {
		part := p.parseExpr(js_ast.LLowest)
		children = append(children, part)

		if p.lexer.Token != js_lexer.TCloseBrace {
			p.report(diag.UnclosedTemplate, diag.Span(headRange))
			break
		}
		p.lexer.RescanCloseBraceAsTemplateToken()
		if p.lexer.Token == js_lexer.TTemplateTail {
			p.next()
			break
		}
		if p.lexer.Token != js_lexer.TTemplateMiddle {
			break
		}
		p.next()
	}

	kind := js_ast.ETemplate
	if tag.IsValid() {
		kind = js_ast.ETaggedTemplate
	}
	return p.alloc(js_ast.Expr{
		Kind:     kind,
		Range:    logger.Range{Loc: headRange.Loc, Len: p.prevRange.End() - headRange.Loc.Start},
		Children: children,
	})
}

func (p *parser) parseArrayLiteral() js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	openBracket := p.lexer.Range()
	p.next()

	var children []js_ast.Index

	for p.lexer.Token != js_lexer.TCloseBracket && p.lexer.Token != js_lexer.TEndOfFile {
		if p.eat(js_lexer.TComma) {
			continue // hole
		}
		item := p.parseExpr(js_ast.LComma + 1)
		children = append(children, item)
		if p.lexer.Token != js_lexer.TCloseBracket && !p.eat(js_lexer.TComma) {
			break
		}
	}

	if p.lexer.Token != js_lexer.TCloseBracket {
		p.report(diag.UnmatchedIndexingBracket, diag.Span(openBracket))
	} else {
		p.next()
	}

	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EArray,
		Range:    logger.Range{Loc: openBracket.Loc, Len: p.prevRange.End() - openBracket.Loc.Start},
		Children: children,
	})
}

func (p *parser) parseObjectLiteral() js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	openBrace := p.lexer.Range()
	p.next()

	var children []js_ast.Index

	for p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
		property := p.parseObjectProperty()
		if property.IsValid() {
			children = append(children, property)
		}

		if p.lexer.Token == js_lexer.TCloseBrace {
			break
		}
		if !p.eat(js_lexer.TComma) {
			if p.lexer.IsIdentifierOrKeyword() || p.lexer.Token == js_lexer.TStringLiteral {
				p.report(diag.MissingCommaBetweenObjectLiteralEntries, diag.Span(zeroRangeAt(p.prevEnd)))
				continue
			}
			break
		}
	}

	if p.lexer.Token != js_lexer.TCloseBrace {
		p.report(diag.UnclosedObjectLiteral,
			diag.Span(openBrace), diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.next()
	}

	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EObject,
		Range:    logger.Range{Loc: openBrace.Loc, Len: p.prevRange.End() - openBrace.Loc.Start},
		Children: children,
	})
}

func (p *parser) parseObjectProperty() js_ast.Index {
	loc := p.lexer.Loc()

	// Spread: "...expr"
	if p.lexer.Token == js_lexer.TDotDotDot {
		dots := p.lexer.Range()
		p.next()
		value := p.parseExpr(js_ast.LComma + 1)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.ESpread,
			Op:       dots,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{value},
		})
	}

	if p.lexer.Token == js_lexer.TPrivateIdentifier {
		p.report(diag.PrivatePropertiesAreNotAllowedInObjectLiterals, diag.Span(p.lexer.Range()))
		p.next()
	}

	// Method modifiers
	isAsync := false
	isGenerator := false
	isAccessor := false
	if p.lexer.IsContextualKeyword("async") && p.objectKeyFollows() {
		isAsync = true
		p.next()
	}
	if p.lexer.Token == js_lexer.TAsterisk {
		isGenerator = true
		p.next()
	}
	if (p.lexer.IsContextualKeyword("get") || p.lexer.IsContextualKeyword("set")) && p.objectKeyFollows() {
		isAccessor = true
		p.next()
	}

	var key *logger.Range
	isIdentKey := false

	switch p.lexer.Token {
	case js_lexer.TOpenBracket:
		p.next()
		computed := p.parseExpr(js_ast.LComma + 1)
		p.expect(js_lexer.TCloseBracket, diag.UnmatchedIndexingBracket)
		// Visit the computed key in place via a paren-group node
		if p.lexer.Token == js_lexer.TOpenParen {
			p.parseObjectMethodTail(nil, isAsync, isGenerator)
			return computed
		}
		p.expect(js_lexer.TColon, diag.MissingValueForObjectLiteralEntry)
		value := p.parseExpr(js_ast.LComma + 1)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EObjectProperty,
			Flags:    js_ast.FlagIsComputed,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Children: []js_ast.Index{computed, value},
		})

	case js_lexer.TStringLiteral, js_lexer.TNumericLiteral:
		r := p.lexer.Range()
		key = &r
		p.next()

	default:
		if p.lexer.IsIdentifierOrKeyword() {
			r := p.lexer.Range()
			key = &r
			isIdentKey = p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TEscapedKeyword
			p.next()
		} else {
			p.report(diag.MissingKeyForObjectEntry, diag.Span(p.lexer.Range()))
			p.next()
			return js_ast.InvalidIndex
		}
	}

	// Method
	if p.lexer.Token == js_lexer.TOpenParen || p.lexer.Token == js_lexer.TLessThan || isAccessor {
		p.parseObjectMethodTail(key, isAsync, isGenerator)
		return p.alloc(js_ast.Expr{
			Kind:  js_ast.EObjectProperty,
			Range: logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Name:  *key,
		})
	}

	// "key: value"
	if p.eat(js_lexer.TColon) {
		value := p.parseExpr(js_ast.LComma + 1)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EObjectProperty,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Name:     *key,
			Children: []js_ast.Index{value},
		})
	}

	// Shorthand "{ x }" or "{ x = default }": the name is a use (or a
	// pattern target, decided later)
	if !isIdentKey {
		p.report(diag.MissingValueForObjectLiteralEntry, diag.Span(*key))
		return js_ast.InvalidIndex
	}

	ident := p.alloc(js_ast.Expr{Kind: js_ast.EIdentifier, Range: *key, Name: *key})

	if p.lexer.Token == js_lexer.TEquals {
		// Only valid when the object is reinterpreted as a pattern
		equal := p.lexer.Range()
		p.next()
		def := p.parseExpr(js_ast.LComma + 1)
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EObjectProperty,
			Flags:    js_ast.FlagIsShorthand,
			Op:       equal,
			Range:    logger.Range{Loc: loc, Len: p.prevRange.End() - loc.Start},
			Name:     *key,
			Children: []js_ast.Index{ident, def},
		})
	}

	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EObjectProperty,
		Flags:    js_ast.FlagIsShorthand,
		Range:    *key,
		Name:     *key,
		Children: []js_ast.Index{ident},
	})
}

func (p *parser) objectKeyFollows() bool {
	t := p.lexer.BeginTransaction()
	p.next()
	ok := !p.lexer.HasNewlineBefore &&
		(p.lexer.IsIdentifierOrKeyword() ||
			p.lexer.Token == js_lexer.TStringLiteral ||
			p.lexer.Token == js_lexer.TNumericLiteral ||
			p.lexer.Token == js_lexer.TOpenBracket ||
			p.lexer.Token == js_lexer.TAsterisk)
	p.lexer.RollBackTransaction(t)
	return ok
}

func (p *parser) parseObjectMethodTail(key *logger.Range, isAsync bool, isGenerator bool) {
	p.visitor.PropertyDeclaration(key)
	p.parseFnRest(fnCommonOpts{
		isAsync:     isAsync,
		isGenerator: isGenerator,
	})
}

func (p *parser) parseCallArgs() []js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	openParen := p.lexer.Range()
	p.next()

	var args []js_ast.Index

	for p.lexer.Token != js_lexer.TCloseParen && p.lexer.Token != js_lexer.TEndOfFile {
		if p.lexer.Token == js_lexer.TComma {
			p.report(diag.ExtraCommaNotAllowedBetweenArguments, diag.Span(p.lexer.Range()))
			p.next()
			continue
		}
		arg := p.parseExpr(js_ast.LComma + 1)
		args = append(args, arg)
		if !p.eat(js_lexer.TComma) {
			break
		}
	}

	if p.lexer.Token != js_lexer.TCloseParen {
		p.report(diag.UnmatchedParenthesis, diag.Span(openParen))
	} else {
		p.next()
	}
	return args
}

func (p *parser) parseSuffix(left js_ast.Index, level js_ast.L) js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	for {
		switch p.lexer.Token {
		case js_lexer.TDot:
			dot := p.lexer.Range()
			p.next()
			if p.lexer.Token == js_lexer.TPrivateIdentifier {
				name := p.lexer.Range()
				p.next()
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.EDot,
					Op:       dot,
					Name:     name,
					Range:    p.rangeFrom(left),
					Children: []js_ast.Index{left},
				})
				continue
			}
			if !p.lexer.IsIdentifierOrKeyword() {
				p.report(diag.MissingPropertyNameForDotOperator, diag.Span(dot))
				continue
			}
			name := p.lexer.Range()
			p.next()
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EDot,
				Op:       dot,
				Name:     name,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left},
			})

		case js_lexer.TEqualsGreaterThan:
			if p.lexer.HasNewlineBefore || level >= js_ast.LAssign {
				return left
			}
			p.report(diag.MissingOperatorBetweenExpressionAndArrowFunction,
				diag.Span(zeroRangeAt(p.at(left).Range.Loc)))
			p.next()
			if p.lexer.Token == js_lexer.TOpenBrace {
				p.parseArrowBodyAfterStrayArrow()
			} else {
				body := p.parseExpr(js_ast.LComma + 1)
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.EBinary,
					Range:    p.rangeFrom(left),
					Children: []js_ast.Index{left, body},
				})
			}

		case js_lexer.TQuestionDot:
			p.next()
			switch p.lexer.Token {
			case js_lexer.TOpenBracket:
				left = p.parseIndexSuffix(left, js_ast.FlagOptionalChain)
			case js_lexer.TOpenParen:
				args := p.parseCallArgs()
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.ECall,
					Flags:    js_ast.FlagOptionalChain,
					Range:    p.rangeFrom(left),
					Children: append([]js_ast.Index{left}, args...),
				})
			default:
				if !p.lexer.IsIdentifierOrKeyword() && p.lexer.Token != js_lexer.TPrivateIdentifier {
					p.report(diag.MissingPropertyNameForDotOperator, diag.Span(p.prevRange))
					continue
				}
				name := p.lexer.Range()
				p.next()
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.EDot,
					Flags:    js_ast.FlagOptionalChain,
					Name:     name,
					Range:    p.rangeFrom(left),
					Children: []js_ast.Index{left},
				})
			}

		case js_lexer.TOpenBracket:
			if level >= js_ast.LMember {
				return left
			}
			left = p.parseIndexSuffix(left, 0)

		case js_lexer.TOpenParen:
			if level >= js_ast.LCall {
				return left
			}
			p.warnOnSelfInvokedFunction(left)
			args := p.parseCallArgs()
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.ECall,
				Range:    p.rangeFrom(left),
				Children: append([]js_ast.Index{left}, args...),
			})

		case js_lexer.TNoSubstitutionTemplateLiteral:
			p.next()
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.ETaggedTemplate,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left},
			})

		case js_lexer.TTemplateHead:
			left = p.parseTemplate(p.lexer.Range(), left)

		case js_lexer.TExclamation:
			// TypeScript non-null assertion, only without a preceding newline
			if p.lexer.HasNewlineBefore || level >= js_ast.LPostfix {
				return left
			}
			if !p.options.ts() {
				p.report(diag.TypeScriptNonNullAssertionNotAllowedInJavaScript, diag.Span(p.lexer.Range()))
			}
			p.next()
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.ENonNull,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left},
			})

		case js_lexer.TPlusPlus, js_lexer.TMinusMinus:
			if p.lexer.HasNewlineBefore || level >= js_ast.LPostfix {
				return left
			}
			op := p.lexer.Range()
			p.next()
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EPostfix,
				Op:       op,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left},
			})

		case js_lexer.TQuestion:
			if level >= js_ast.LConditional {
				return left
			}
			question := p.lexer.Range()
			p.next()

			// "a ? b : c"; the middle binds like an assignment expression
			yes := p.parseExpr(js_ast.LComma + 1)

			if p.lexer.Token == js_lexer.TComma {
				p.report(diag.MisleadingCommaOperatorInConditionalStatement, diag.Span(p.lexer.Range()))
			}

			var no js_ast.Index
			if p.lexer.Token != js_lexer.TColon {
				p.report(diag.MissingColonInConditionalExpression,
					diag.Span(zeroRangeAt(p.prevEnd)), diag.Span(question))
				no = p.missingExpr(p.lexer.Loc())
			} else {
				p.next()
				no = p.parseExpr(js_ast.LComma)
			}

			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.ECond,
				Op:       question,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left, yes, no},
			})

		case js_lexer.TEquals:
			if level >= js_ast.LAssign {
				return left
			}
			op := p.lexer.Range()
			p.next()
			p.validateAssignmentTarget(left, op)
			right := p.parseExpr(js_ast.LAssign - 1)
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EAssign,
				Op:       op,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left, right},
			})

		case js_lexer.TPlusEquals, js_lexer.TMinusEquals, js_lexer.TAsteriskEquals,
			js_lexer.TSlashEquals, js_lexer.TPercentEquals, js_lexer.TAsteriskAsteriskEquals,
			js_lexer.TLessThanLessThanEquals, js_lexer.TGreaterThanGreaterThanEquals,
			js_lexer.TGreaterThanGreaterThanGreaterThanEquals, js_lexer.TAmpersandEquals,
			js_lexer.TCaretEquals, js_lexer.TBarEquals, js_lexer.TAmpersandAmpersandEquals,
			js_lexer.TBarBarEquals, js_lexer.TQuestionQuestionEquals:
			if level >= js_ast.LAssign {
				return left
			}
			op := p.lexer.Range()
			p.next()
			p.validateAssignmentTarget(left, op)
			right := p.parseExpr(js_ast.LAssign - 1)
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EAssign,
				Flags:    js_ast.FlagIsShorthand, // compound: target is also read
				Op:       op,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left, right},
			})

		case js_lexer.TComma:
			if level >= js_ast.LComma {
				return left
			}
			op := p.lexer.Range()
			p.next()
			right := p.parseExpr(js_ast.LComma)
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EBinary,
				Op:       op,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left, right},
			})

		case js_lexer.TIn:
			if level >= js_ast.LCompare || !p.allowIn {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LCompare)

		case js_lexer.TInstanceof:
			if level >= js_ast.LCompare {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LCompare)

		case js_lexer.TLessThan, js_lexer.TLessThanEquals, js_lexer.TGreaterThan,
			js_lexer.TGreaterThanEquals:
			if level >= js_ast.LCompare {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LCompare)

		case js_lexer.TEqualsEquals, js_lexer.TEqualsEqualsEquals,
			js_lexer.TExclamationEquals, js_lexer.TExclamationEqualsEquals:
			if level >= js_ast.LEquals {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LEquals)

		case js_lexer.TLessThanLessThan, js_lexer.TGreaterThanGreaterThan,
			js_lexer.TGreaterThanGreaterThanGreaterThan:
			if level >= js_ast.LShift {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LShift)

		case js_lexer.TPlus, js_lexer.TMinus:
			if level >= js_ast.LAdd {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LAdd)

		case js_lexer.TAsterisk, js_lexer.TPercent:
			if level >= js_ast.LMultiply {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LMultiply)

		case js_lexer.TSlash:
			if level >= js_ast.LMultiply {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LMultiply)

		case js_lexer.TAsteriskAsterisk:
			// Right-associative
			if level > js_ast.LExponentiation {
				return left
			}
			op := p.lexer.Range()
			p.next()
			if !tokenStartsExpression(p.lexer.Token) {
				p.report(diag.MissingExponentForExponentOperator, diag.Span(op))
				return left
			}
			right := p.parseExpr(js_ast.LExponentiation - 1)
			left = p.alloc(js_ast.Expr{
				Kind:     js_ast.EBinary,
				Op:       op,
				Range:    p.rangeFrom(left),
				Children: []js_ast.Index{left, right},
			})

		case js_lexer.TAmpersandAmpersand:
			if level >= js_ast.LLogicalAnd {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LLogicalAnd)

		case js_lexer.TBarBar:
			if level >= js_ast.LLogicalOr {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LLogicalOr)

		case js_lexer.TQuestionQuestion:
			if level >= js_ast.LNullishCoalescing {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LNullishCoalescing)

		case js_lexer.TAmpersand:
			if level >= js_ast.LBitwiseAnd {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LBitwiseAnd)

		case js_lexer.TBar:
			if level >= js_ast.LBitwiseOr {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LBitwiseOr)

		case js_lexer.TCaret:
			if level >= js_ast.LBitwiseXor {
				return left
			}
			left = p.parseBinarySuffix(left, js_ast.LBitwiseXor)

		case js_lexer.TIdentifier:
			// "as" and "satisfies" type assertions
			switch p.lexer.Identifier {
			case "as":
				if level >= js_ast.LCompare || p.lexer.HasNewlineBefore {
					return left
				}
				asKeyword := p.lexer.Range()
				if !p.options.ts() {
					p.report(diag.TypeScriptAsTypeAssertionNotAllowedInJavaScript, diag.Span(asKeyword))
				}
				p.next()
				p.skipType(js_ast.LLowest)
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.EAsAssertion,
					Op:       asKeyword,
					Range:    p.rangeFrom(left),
					Children: []js_ast.Index{left},
				})

			case "satisfies":
				if level >= js_ast.LCompare || p.lexer.HasNewlineBefore {
					return left
				}
				keyword := p.lexer.Range()
				if !p.options.ts() {
					p.report(diag.TypeScriptSatisfiesNotAllowedInJavaScript, diag.Span(keyword))
				}
				p.next()
				p.skipType(js_ast.LLowest)
				left = p.alloc(js_ast.Expr{
					Kind:     js_ast.ESatisfiesAssertion,
					Op:       keyword,
					Range:    p.rangeFrom(left),
					Children: []js_ast.Index{left},
				})

			default:
				return left
			}

		default:
			return left
		}
	}
}

func (p *parser) parseBinarySuffix(left js_ast.Index, opLevel js_ast.L) js_ast.Index {
	op := p.lexer.Range()
	p.next()

	if !tokenStartsExpression(p.lexer.Token) {
		p.report(diag.MissingOperandForOperator, diag.Span(op))
		return left
	}

	right := p.parseExpr(opLevel)
	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EBinary,
		Op:       op,
		Range:    p.rangeFrom(left),
		Children: []js_ast.Index{left, right},
	})
}

func (p *parser) parseIndexSuffix(left js_ast.Index, flags js_ast.ExprFlags) js_ast.Index {
	openBracket := p.lexer.Range()
	p.next()

	if p.lexer.Token == js_lexer.TCloseBracket {
		p.report(diag.IndexingRequiresExpression,
			diag.Span(logger.Range{Loc: openBracket.Loc, Len: p.lexer.Range().End() - openBracket.Loc.Start}))
		p.next()
		return p.alloc(js_ast.Expr{
			Kind:     js_ast.EIndex,
			Flags:    flags,
			Range:    p.rangeFrom(left),
			Children: []js_ast.Index{left},
		})
	}

	index := p.parseExpr(js_ast.LLowest)

	if p.at(index).Kind == js_ast.EBinary &&
		p.source.TextForRange(p.at(index).Op) == "," {
		p.report(diag.MisleadingCommaOperatorInIndexOperation,
			diag.Span(p.at(index).Op), diag.Span(openBracket))
	}

	if p.lexer.Token != js_lexer.TCloseBracket {
		p.report(diag.UnmatchedIndexingBracket, diag.Span(openBracket))
	} else {
		p.next()
	}

	return p.alloc(js_ast.Expr{
		Kind:     js_ast.EIndex,
		Flags:    flags,
		Range:    p.rangeFrom(left),
		Children: []js_ast.Index{left, index},
	})
}

func (p *parser) rangeFrom(left js_ast.Index) logger.Range {
	start := p.at(left).Range.Loc
	return logger.Range{Loc: start, Len: p.prevRange.End() - start.Start}
}

// validateAssignmentTarget checks the left side of an assignment. Array and
// object literals are retroactively validated as destructuring patterns.
func (p *parser) validateAssignmentTarget(target js_ast.Index, equals logger.Range) {
	node := p.at(target)
	switch node.Kind {
	case js_ast.EIdentifier, js_ast.EDot, js_ast.EIndex, js_ast.ENonNull:
		return

	case js_ast.EArray, js_ast.EObject:
		// Reinterpreted as a destructuring pattern; shorthand defaults that
		// were parsed as assignments become legal
		node.Flags |= js_ast.FlagIsPattern
		return

	case js_ast.EParen:
		p.validateAssignmentTarget(node.Children[0], equals)
		return
	}

	p.report(diag.InvalidExpressionLeftOfAssignment, diag.Span(node.Range))
}

// warnOnConditionAssignment flags "if (x = y)" where a comparison was
// probably intended.
func (p *parser) warnOnConditionAssignment(cond js_ast.Index) {
	if !cond.IsValid() {
		return
	}
	node := p.at(cond)
	if node.Kind == js_ast.EAssign && !node.HasFlag(js_ast.FlagIsShorthand) {
		if len(node.Children) == 2 && p.isLiteralNode(node.Children[1]) {
			p.report(diag.AssignmentMakesConditionConstant, diag.Span(node.Op))
		}
	}

	// "x === 'a' || 'b'": the right side of "||" is a constant, so the
	// comparison doesn't distribute
	if node.Kind == js_ast.EBinary && p.source.TextForRange(node.Op) == "||" && len(node.Children) == 2 {
		lhs := p.at(node.Children[0])
		rhs := node.Children[1]
		if lhs.Kind == js_ast.EBinary && len(lhs.Children) == 2 && p.isLiteralNode(rhs) {
			opText := p.source.TextForRange(lhs.Op)
			if opText == "==" || opText == "===" {
				p.report(diag.EqualsDoesNotDistributeOverOr,
					diag.Span(node.Op), diag.Span(lhs.Op))
			}
		}
	}
}

func (p *parser) isLiteralNode(i js_ast.Index) bool {
	switch p.at(i).Kind {
	case js_ast.ENumber, js_ast.EString, js_ast.EBoolean, js_ast.ENull,
		js_ast.EBigInt, js_ast.ERegExp, js_ast.ETemplate:
		return true
	}
	return false
}

// warnOnRedundantAwait flags "await" applied to something that cannot be a
// promise, like a literal.
func (p *parser) warnOnRedundantAwait(awaitRange logger.Range, value js_ast.Index) {
	if p.isLiteralNode(value) {
		p.report(diag.RedundantAwait, diag.Span(awaitRange))
	}
}

// warnOnSelfInvokedFunction flags "function(){}()" which needs wrapping
// parens to parse the way the programmer expects.
func (p *parser) warnOnSelfInvokedFunction(left js_ast.Index) {
	node := p.at(left)
	if node.Kind == js_ast.EFunction && !node.HasFlag(js_ast.FlagWasParenthesized) {
		p.report(diag.MissingParenthesesAroundSelfInvokedFunction,
			diag.Span(p.lexer.Range()), diag.Span(node.Range))
	}
}

type visitAccess uint8

const (
	visitUse visitAccess = iota
	visitAssign
)

// visitExpr emits uses and assignments for an expression tree in evaluation
// order. Function and class expression bodies were already visited while
// parsing, which is the ordering exception documented on the Visitor.
func (p *parser) visitExpr(expr js_ast.Index, access visitAccess) {
	if !expr.IsValid() {
		return
	}
	node := p.at(expr)

	switch node.Kind {
	case js_ast.EIdentifier:
		switch {
		case access == visitAssign:
			p.visitor.VariableAssignment(node.Name)
		case node.HasFlag(js_ast.FlagDirectTypeofTarget):
			p.visitor.VariableTypeofUse(node.Name)
		case node.HasFlag(js_ast.FlagDirectDeleteTarget):
			p.visitor.VariableDeleteUse(node.Name)
		default:
			p.visitor.VariableUse(node.Name)
		}

	case js_ast.EAssign:
		target := node.Children[0]
		value := node.Children[1]
		compound := node.HasFlag(js_ast.FlagIsShorthand)

		// The right side is evaluated before the assignment happens
		if compound {
			p.visitExpr(target, visitUse)
		}
		p.visitExpr(value, visitUse)
		p.visitTarget(target)

	case js_ast.EPostfix:
		// "x++" reads then writes
		p.visitExpr(node.Children[0], visitUse)
		p.visitTarget(node.Children[0])

	case js_ast.EPrefix:
		opText := p.source.TextForRange(node.Op)
		if opText == "++" || opText == "--" {
			p.visitExpr(node.Children[0], visitUse)
			p.visitTarget(node.Children[0])
			return
		}
		for _, child := range node.Children {
			p.visitExpr(child, visitUse)
		}

	case js_ast.EObject:
		for _, property := range node.Children {
			p.visitExpr(property, access)
		}

	case js_ast.EObjectProperty:
		if node.HasFlag(js_ast.FlagIsComputed) && len(node.Children) == 2 {
			p.visitExpr(node.Children[0], visitUse)
			p.visitExpr(node.Children[1], access)
			return
		}
		if node.HasFlag(js_ast.FlagIsShorthand) {
			// "{ x = default }": visit the default, then the target
			if len(node.Children) == 2 {
				p.visitExpr(node.Children[1], visitUse)
			}
			if len(node.Children) >= 1 {
				p.visitExpr(node.Children[0], access)
			}
			return
		}
		for _, child := range node.Children {
			p.visitExpr(child, access)
		}

	case js_ast.EArray:
		for _, child := range node.Children {
			p.visitExpr(child, access)
		}

	case js_ast.ESpread:
		for _, child := range node.Children {
			p.visitExpr(child, access)
		}

	case js_ast.EDot:
		// Member targets read the object even in assignment position
		p.visitExpr(node.Children[0], visitUse)

	case js_ast.EIndex:
		for _, child := range node.Children {
			p.visitExpr(child, visitUse)
		}

	case js_ast.EFunction, js_ast.EClass, js_ast.EArrow:
		// The body was visited during parsing

	default:
		for _, child := range node.Children {
			p.visitExpr(child, visitUse)
		}
	}
}

// visitTarget emits assignment events for an assignment target, recursing
// into patterns.
func (p *parser) visitTarget(target js_ast.Index) {
	if !target.IsValid() {
		return
	}
	node := p.at(target)

	switch node.Kind {
	case js_ast.EIdentifier:
		p.visitor.VariableAssignment(node.Name)

	case js_ast.EParen, js_ast.ENonNull:
		p.visitTarget(node.Children[0])

	case js_ast.EArray:
		for _, child := range node.Children {
			p.visitTarget(child)
		}

	case js_ast.EObject:
		for _, child := range node.Children {
			p.visitTarget(child)
		}

	case js_ast.EObjectProperty:
		if node.HasFlag(js_ast.FlagIsShorthand) {
			if len(node.Children) == 2 {
				p.visitExpr(node.Children[1], visitUse)
			}
			if len(node.Children) >= 1 {
				p.visitTarget(node.Children[0])
			}
			return
		}
		if node.HasFlag(js_ast.FlagIsComputed) && len(node.Children) == 2 {
			p.visitExpr(node.Children[0], visitUse)
			p.visitTarget(node.Children[1])
			return
		}
		if len(node.Children) >= 1 {
			p.visitTarget(node.Children[len(node.Children)-1])
		}

	case js_ast.ESpread:
		for _, child := range node.Children {
			p.visitTarget(child)
		}

	case js_ast.EDot:
		p.visitExpr(node.Children[0], visitUse)

	case js_ast.EIndex:
		for _, child := range node.Children {
			p.visitExpr(child, visitUse)
		}

	case js_ast.EAssign:
		// "[x = 1] = y": default then target
		if len(node.Children) == 2 {
			p.visitExpr(node.Children[1], visitUse)
			p.visitTarget(node.Children[0])
		}

	default:
		p.visitExpr(target, visitUse)
	}
}

// parseArrowBodyAfterStrayArrow consumes the block after a "=>" that
// followed a complete expression, keeping the scope stream balanced.
func (p *parser) parseArrowBodyAfterStrayArrow() {
	prev := p.pushFn(fnContext{})
	p.enterScope(scopeFunction)
	p.visitor.EnterFunctionScopeBody()
	open := p.lexer.Range()
	p.next()
	p.parseStmtsUpTo(js_lexer.TCloseBrace)
	if p.lexer.Token == js_lexer.TEndOfFile {
		p.report(diag.UnclosedCodeBlock, diag.Span(open))
	}
	p.eat(js_lexer.TCloseBrace)
	p.exitScope(scopeFunction)
	p.popFn(prev)
}

// tryParseTSXGenericArrow disambiguates "<T,>(x: T) => x" from a JSX element
// in TSX. The trailing comma is how the programmer opts out of JSX; a
// generic arrow without one is diagnosed but still parsed as an arrow.
func (p *parser) tryParseTSXGenericArrow(lessThan logger.Range) (js_ast.Index, bool) {
	t := p.lexer.BeginTransaction()

	sawComma := false
	depth := 0
scan:
	for {
		switch p.lexer.Token {
		case js_lexer.TLessThan:
			depth++
		case js_lexer.TGreaterThan:
			depth--
			if depth == 0 {
				p.next()
				break scan
			}
		case js_lexer.TComma:
			if depth == 1 {
				sawComma = true
			}
		case js_lexer.TEndOfFile, js_lexer.TSyntaxError:
			p.lexer.RollBackTransaction(t)
			return js_ast.InvalidIndex, false
		}
		p.next()
	}

	isArrow := p.lexer.Token == js_lexer.TOpenParen && p.parenIsArrowParameterList()
	p.lexer.RollBackTransaction(t)
	if !isArrow {
		return js_ast.InvalidIndex, false
	}

	if !sawComma {
		p.report(diag.TypeScriptGenericArrowNeedsCommaInJSXMode,
			diag.Span(lessThan),
			diag.Span(zeroRangeAt(p.prevEnd)),
			diag.Span(zeroRangeAt(p.prevEnd)))
	}

	prev := p.pushFn(fnContext{})
	p.enterScope(scopeFunction)

	p.parseGenericParameters()
	p.parseParamList(diag.VarKindArrowParameter)
	if p.lexer.Token == js_lexer.TColon {
		p.parseTypeAnnotation()
	}
	if p.lexer.Token != js_lexer.TEqualsGreaterThan {
		p.report(diag.MissingArrowOperatorInArrowFunction, diag.Span(zeroRangeAt(p.prevEnd)))
	} else {
		p.next()
	}
	p.parseArrowBodyInScope()

	p.exitScope(scopeFunction)
	p.popFn(prev)

	return p.alloc(js_ast.Expr{
		Kind:  js_ast.EArrow,
		Range: logger.Range{Loc: lessThan.Loc, Len: p.prevRange.End() - lessThan.Loc.Start},
	}), true
}
