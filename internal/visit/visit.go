// Package visit defines the semantic event stream produced by the parser.
// The parser never materializes a whole-program AST; downstream passes (name
// resolution, linting) consume these events instead.
package visit

import (
	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/logger"
)

// InitKind distinguishes declarations with an '=' initializer from bare
// declarations. Downstream passes use this to flag TDZ-style mistakes.
type InitKind uint8

const (
	Uninitialized InitKind = iota
	Initialized
)

// Visitor receives semantic events in the left-to-right evaluation order of
// the source, with one exception: a class or function expression's body is
// visited before the surrounding expression's other operands, mirroring the
// hoisting semantics name resolution expects.
//
// For every Enter* event the parser delivers exactly one matching Exit*
// event, properly nested, even on syntactically broken input.
type Visitor interface {
	VariableDeclaration(name logger.Range, kind diag.VarKind, init InitKind)
	VariableUse(name logger.Range)
	VariableAssignment(name logger.Range)
	VariableTypeUse(name logger.Range)
	VariableTypeofUse(name logger.Range)
	VariableDeleteUse(name logger.Range)

	EnterBlockScope()
	ExitBlockScope()
	EnterFunctionScope()
	EnterNamedFunctionScope(name logger.Range)
	EnterFunctionScopeBody()
	ExitFunctionScope()
	EnterClassScope()
	EnterClassScopeBody(name *logger.Range)
	ExitClassScope()
	EnterForScope()
	ExitForScope()
	EnterWithScope()
	ExitWithScope()
	EnterIndexSignatureScope()
	ExitIndexSignatureScope()

	PropertyDeclaration(name *logger.Range)
	EndOfModule()
}

// Null ignores every event. Embed it to implement only part of Visitor.
type Null struct{}

func (Null) VariableDeclaration(logger.Range, diag.VarKind, InitKind) {}
func (Null) VariableUse(logger.Range)                                 {}
func (Null) VariableAssignment(logger.Range)                          {}
func (Null) VariableTypeUse(logger.Range)                             {}
func (Null) VariableTypeofUse(logger.Range)                           {}
func (Null) VariableDeleteUse(logger.Range)                           {}
func (Null) EnterBlockScope()                                         {}
func (Null) ExitBlockScope()                                          {}
func (Null) EnterFunctionScope()                                      {}
func (Null) EnterNamedFunctionScope(logger.Range)                     {}
func (Null) EnterFunctionScopeBody()                                  {}
func (Null) ExitFunctionScope()                                       {}
func (Null) EnterClassScope()                                         {}
func (Null) EnterClassScopeBody(*logger.Range)                        {}
func (Null) ExitClassScope()                                          {}
func (Null) EnterForScope()                                           {}
func (Null) ExitForScope()                                            {}
func (Null) EnterWithScope()                                          {}
func (Null) ExitWithScope()                                           {}
func (Null) EnterIndexSignatureScope()                                {}
func (Null) ExitIndexSignatureScope()                                 {}
func (Null) PropertyDeclaration(*logger.Range)                        {}
func (Null) EndOfModule()                                             {}
