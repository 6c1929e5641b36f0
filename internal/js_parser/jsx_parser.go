package js_parser

import (
	"strings"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_ast"
	"github.com/fastlint/fastlint/internal/js_lexer"
	"github.com/fastlint/fastlint/internal/logger"
)

// parseJSXElementOrFragment parses "<tag ...>...</tag>" or "<>...</>"
// starting at the "<" token. The lexer is driven through its JSX modes for
// attribute and child positions; everything between tags re-enters normal
// expression parsing through "{...}" containers.
//
// The element's final ">" is deliberately left unconsumed: only the caller
// knows whether what follows should be scanned as JSX text (a nested child)
// or as a normal token (the top level).
func (p *parser) parseJSXElementOrFragment() js_ast.Index {
	start := p.lexer.Range()

	// "<" switches into the JSX attribute sub-grammar
	p.lexer.NextInsideJSXElement()
	return p.parseJSXElementAfterLessThan(start)
}

// parseJSXElementAfterLessThan parses an element whose "<" has already been
// consumed in JSX mode.
func (p *parser) parseJSXElementAfterLessThan(lessThan logger.Range) js_ast.Index {
	p.checkDepth()
	defer p.releaseDepth()

	// Fragment: "<> ... </>"
	if p.lexer.Token == js_lexer.TGreaterThan {
		return p.parseJSXChildren(lessThan, nil, "")
	}

	var tagName *logger.Range
	text := ""
	if r, t, ok := p.parseJSXTagName(); ok {
		tagName = r
		text = t
	}

	// Attributes
	var attributeUses []js_ast.Index
	for {
		switch p.lexer.Token {
		case js_lexer.TIdentifier:
			// Attribute name, optionally "name=value"
			p.lexer.NextInsideJSXElement()
			if p.lexer.Token == js_lexer.TEquals {
				p.lexer.NextInsideJSXElement()
				switch p.lexer.Token {
				case js_lexer.TStringLiteral:
					p.lexer.NextInsideJSXElement()
				case js_lexer.TOpenBrace:
					p.next()
					value := p.parseExpr(js_ast.LLowest)
					attributeUses = append(attributeUses, value)
					if p.lexer.Token == js_lexer.TCloseBrace {
						p.lexer.NextInsideJSXElement()
					} else {
						p.report(diag.UnmatchedRightCurly, diag.Span(p.lexer.Range()))
					}
				default:
					p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
					p.lexer.NextInsideJSXElement()
				}
			}

		case js_lexer.TOpenBrace:
			// Spread attribute "{...expr}"
			p.next()
			if p.lexer.Token != js_lexer.TDotDotDot {
				p.report(diag.MissingDotsForAttributeSpread, diag.Span(zeroRangeAt(p.lexer.Loc())))
			} else {
				p.next()
			}
			value := p.parseExpr(js_ast.LComma + 1)
			attributeUses = append(attributeUses, value)
			if p.lexer.Token == js_lexer.TCloseBrace {
				p.lexer.NextInsideJSXElement()
			} else {
				p.report(diag.UnmatchedRightCurly, diag.Span(p.lexer.Range()))
			}

		case js_lexer.TSlash:
			// Self-closing: "/>"; the ">" stays current for the caller
			p.lexer.NextInsideJSXElement()
			if p.lexer.Token != js_lexer.TGreaterThan {
				p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			}
			return p.finishJSXElement(lessThan, tagName, attributeUses)

		case js_lexer.TGreaterThan:
			element := p.parseJSXChildren(lessThan, tagName, text)
			p.at(element).Children = append(attributeUses, p.at(element).Children...)
			return element

		default:
			p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			return p.finishJSXElement(lessThan, tagName, attributeUses)
		}
	}
}

// parseJSXTagName reads "div" or "ns.Member" in JSX tag position. Namespaced
// names such as "ns:name" are not read: the JSX lexer has no ':' token.
// Capitalized and member tags are component references, which are variable
// uses.
func (p *parser) parseJSXTagName() (*logger.Range, string, bool) {
	if p.lexer.Token != js_lexer.TIdentifier {
		p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
		return nil, "", false
	}

	nameStart := p.lexer.Range()
	p.lexer.NextInsideJSXElement()

	full := nameStart
	for p.lexer.Token == js_lexer.TDot {
		p.lexer.NextInsideJSXElement()
		if p.lexer.Token == js_lexer.TIdentifier {
			full = logger.Range{Loc: nameStart.Loc, Len: p.lexer.Range().End() - nameStart.Loc.Start}
			p.lexer.NextInsideJSXElement()
		}
	}

	fullText := p.source.TextForRange(full)
	return &full, fullText, true
}

// finishJSXElement emits the component use and wraps everything up.
func (p *parser) finishJSXElement(start logger.Range, tagName *logger.Range, children []js_ast.Index) js_ast.Index {
	kind := js_ast.EJSXFragment
	var name logger.Range
	if tagName != nil {
		kind = js_ast.EJSXElement
		name = *tagName
		p.emitJSXComponentUse(*tagName, p.source.TextForRange(*tagName))
	}

	return p.alloc(js_ast.Expr{
		Kind:     kind,
		Name:     name,
		Range:    logger.Range{Loc: start.Loc, Len: p.lexer.Range().End() - start.Loc.Start},
		Children: children,
	})
}

// emitJSXComponentUse turns a component tag into a variable use of its root
// name. Intrinsic (lowercase) elements reference nothing.
func (p *parser) emitJSXComponentUse(tagName logger.Range, text string) {
	if !isJSXComponentName(text) {
		return
	}
	rootRange := tagName
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		rootRange = logger.Range{Loc: tagName.Loc, Len: int32(dot)}
	}
	p.visitor.VariableUse(rootRange)
}

// isJSXComponentName: lowercase simple names are intrinsic elements; member
// access and capitalized names reference variables.
func isJSXComponentName(text string) bool {
	if text == "" {
		return false
	}
	if strings.IndexByte(text, '.') >= 0 {
		return true
	}
	c := text[0]
	return c >= 'A' && c <= 'Z'
}

// parseJSXChildren consumes children after ">" through the matching closing
// tag, which is left current for the caller.
func (p *parser) parseJSXChildren(start logger.Range, openingTagName *logger.Range, openingText string) js_ast.Index {
	var children []js_ast.Index

	// The component reference lands before any child uses
	if openingTagName != nil {
		p.emitJSXComponentUse(*openingTagName, openingText)
	}

	p.lexer.NextJSXElementChild()

	for {
		switch p.lexer.Token {
		case js_lexer.TStringLiteral:
			// JSX text
			p.lexer.NextJSXElementChild()

		case js_lexer.TOpenBrace:
			// "{expr}" child
			p.next()
			if p.lexer.Token != js_lexer.TCloseBrace {
				value := p.parseExpr(js_ast.LLowest)
				children = append(children, value)
			}
			if p.lexer.Token == js_lexer.TCloseBrace {
				p.lexer.NextJSXElementChild()
			} else {
				p.report(diag.UnmatchedRightCurly, diag.Span(p.lexer.Range()))
			}

		case js_lexer.TLessThan:
			lessThan := p.lexer.Range()
			p.lexer.NextInsideJSXElement()

			if p.lexer.Token != js_lexer.TSlash {
				// A nested element; its trailing ">" is still current, so the
				// child rescan picks up right after it
				child := p.parseJSXElementAfterLessThan(lessThan)
				children = append(children, child)
				p.lexer.NextJSXElementChild()
				continue
			}

			// Closing tag "</name>" or "</>"
			p.lexer.NextInsideJSXElement()
			var closingTagName *logger.Range
			closingText := ""
			if p.lexer.Token == js_lexer.TIdentifier {
				if r, text, ok := p.parseJSXTagName(); ok {
					closingTagName = r
					closingText = text
				}
			}

			if openingText != closingText {
				var openArg, closeArg logger.Range
				if openingTagName != nil {
					openArg = *openingTagName
				} else {
					openArg = start
				}
				if closingTagName != nil {
					closeArg = *closingTagName
				} else {
					closeArg = p.lexer.Range()
				}
				p.report(diag.MismatchedJSXTags,
					diag.Span(openArg), diag.Span(closeArg), diag.Text(openingText))
			}

			if p.lexer.Token != js_lexer.TGreaterThan {
				p.report(diag.UnexpectedToken, diag.Span(p.lexer.Range()))
			}

			kind := js_ast.EJSXFragment
			var name logger.Range
			if openingTagName != nil {
				kind = js_ast.EJSXElement
				name = *openingTagName
			}
			return p.alloc(js_ast.Expr{
				Kind:     kind,
				Name:     name,
				Range:    logger.Range{Loc: start.Loc, Len: p.lexer.Range().End() - start.Loc.Start},
				Children: children,
			})

		case js_lexer.TEndOfFile:
			p.report(diag.MismatchedJSXTags,
				diag.Span(start), diag.Span(p.lexer.Range()), diag.Text(openingText))
			return p.alloc(js_ast.Expr{
				Kind:     js_ast.EJSXFragment,
				Range:    logger.Range{Loc: start.Loc, Len: p.prevRange.End() - start.Loc.Start},
				Children: children,
			})

		default:
			p.lexer.NextJSXElementChild()
		}
	}
}
