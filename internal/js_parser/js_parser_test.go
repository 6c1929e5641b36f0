package js_parser

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-test/deep"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

func parseFor(t *testing.T, contents string, options Options) ([]string, []diag.Diagnostic) {
	t.Helper()

	source := logger.NewSource("<test>", contents)
	recorder := &visit.Recorder{Source: &source}
	collector := &diag.Collector{}
	Parse(source, options, recorder, collector)
	return recorder.Events, collector.Diagnostics
}

func parseJS(t *testing.T, contents string) ([]string, []diag.Diagnostic) {
	t.Helper()
	return parseFor(t, contents, Options{})
}

func expectVisits(t *testing.T, contents string, expected ...string) {
	t.Helper()
	events, _ := parseJS(t, contents)
	expected = append(expected, "end of module")
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("%q visits:\n%v", contents, diff)
	}
}

func codesOf(diags []diag.Diagnostic) []string {
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code())
	}
	return codes
}

func expectNoDiags(t *testing.T, contents string) {
	t.Helper()
	_, diags := parseJS(t, contents)
	if len(diags) != 0 {
		t.Errorf("%q: unexpected diagnostics %v", contents, codesOf(diags))
	}
}

func findDiag(diags []diag.Diagnostic, kind diag.Kind) *diag.Diagnostic {
	for i := range diags {
		if diags[i].Kind == kind {
			return &diags[i]
		}
	}
	return nil
}

func expectDiagJS(t *testing.T, contents string, kind diag.Kind) *diag.Diagnostic {
	t.Helper()
	_, diags := parseJS(t, contents)
	d := findDiag(diags, kind)
	if d == nil {
		t.Errorf("%q: missing %s, got %v", contents, diag.Table[kind].Code, codesOf(diags))
	}
	return d
}

func TestClassWithMethod(t *testing.T) {
	events, diags := parseJS(t, "class C { method() {} }")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", codesOf(diags))
	}
	expected := []string{
		"declare C (class, uninit)",
		"enter class scope",
		"enter class scope body C",
		"property declaration method",
		"enter function scope",
		"enter function scope body",
		"exit function scope",
		"exit class scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
}

func TestUnclosedClass(t *testing.T) {
	events, diags := parseJS(t, "class C {")
	expected := []string{
		"declare C (class, uninit)",
		"enter class scope",
		"enter class scope body C",
		"exit class scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}

	d := findDiag(diags, diag.UnclosedClassBlock)
	if d == nil {
		t.Fatalf("missing unclosed-class diagnostic, got %v", codesOf(diags))
	}
	if r := d.FirstRange(); r.Loc.Start != 8 || r.Len != 1 {
		t.Errorf("span = [%d, %d), want the brace at offset 8", r.Loc.Start, r.End())
	}
}

func TestForOfLetDeclaration(t *testing.T) {
	events, diags := parseJS(t, "for (let x of []) ;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", codesOf(diags))
	}
	expected := []string{
		"enter for scope",
		"declare x (let, uninit)",
		"exit for scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
}

func TestLexicalDeclarationInIfBody(t *testing.T) {
	events, diags := parseJS(t, "if (cond) let x = y;")
	expected := []string{
		"use cond",
		"use y",
		"declare x (let, init)",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}

	d := findDiag(diags, diag.LexicalDeclarationNotAllowedInBody)
	if d == nil {
		t.Fatalf("missing diagnostic, got %v", codesOf(diags))
	}
	if d.Args[0].Type != diag.ArgStatementKind ||
		diag.StatementKind(d.Args[0].Enum) != diag.StatementKindIfStatement {
		t.Errorf("statement kind arg = %v", d.Args[0])
	}
	if d.Args[1].Range.Loc.Start != 9 {
		t.Errorf("body span starts at %d, want 9", d.Args[1].Range.Loc.Start)
	}
	if d.Args[2].Range.Loc.Start != 10 || d.Args[2].Range.Len != 3 {
		t.Errorf("keyword span = %v, want the 'let'", d.Args[2].Range)
	}
}

func TestClassNamedAwaitInAsyncFunction(t *testing.T) {
	events, diags := parseJS(t, "async function f() { class await {} }")
	expected := []string{
		"declare f (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"declare await (class, uninit)",
		"enter class scope",
		"enter class scope body await",
		"exit class scope",
		"exit function scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}

	d := findDiag(diags, diag.CannotDeclareClassNamedAwaitInAsyncFunction)
	if d == nil {
		t.Fatalf("missing diagnostic, got %v", codesOf(diags))
	}
	if text := "await"; int(d.FirstRange().Len) != len(text) {
		t.Errorf("span length = %d", d.FirstRange().Len)
	}
}

func TestReturnStatementReturnsNothing(t *testing.T) {
	events, diags := parseJS(t, "function f() { return\nx }")
	expected := []string{
		"declare f (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"use x",
		"exit function scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
	if findDiag(diags, diag.ReturnStatementReturnsNothing) == nil {
		t.Errorf("missing warning, got %v", codesOf(diags))
	}
}

func TestReadonlyFieldInJS(t *testing.T) {
	events, diags := parseJS(t, "class C { readonly field; }")
	expected := []string{
		"declare C (class, uninit)",
		"enter class scope",
		"enter class scope body C",
		"property declaration field",
		"exit class scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}

	d := findDiag(diags, diag.TypeScriptReadonlyFieldsNotAllowedInJavaScript)
	if d == nil {
		t.Fatalf("missing diagnostic, got %v", codesOf(diags))
	}
	if d.Severity() != diag.SeverityError {
		t.Errorf("severity = %v", d.Severity())
	}
}

func TestDuplicatedSwitchCases(t *testing.T) {
	events, diags := parseJS(t, "switch (x) { case 1: break; case 1: break; }")
	expected := []string{
		"use x",
		"enter block scope",
		"exit block scope",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}

	d := findDiag(diags, diag.DuplicatedCasesInSwitchStatement)
	if d == nil {
		t.Fatalf("missing warning, got %v", codesOf(diags))
	}
	if d.Severity() != diag.SeverityWarning {
		t.Errorf("severity = %v", d.Severity())
	}
	first, second := d.Args[0].Range, d.Args[1].Range
	if first.Loc.Start >= second.Loc.Start {
		t.Errorf("case spans out of order: %v then %v", first, second)
	}
	if source := "switch (x) { case 1: break; case 1: break; }"; source[first.Loc.Start] != '1' || source[second.Loc.Start] != '1' {
		t.Errorf("spans do not cover the case expressions")
	}
}

func TestVarDeclarations(t *testing.T) {
	expectVisits(t, "var x;", "declare x (var, uninit)")
	expectVisits(t, "let x = y;", "use y", "declare x (let, init)")
	expectVisits(t, "let {a, b = c} = d;",
		"use c", "use d", "declare a (let, init)", "declare b (let, init)")
	expectVisits(t, "const [a, , b] = xs;",
		"use xs", "declare a (const, init)", "declare b (const, init)")
}

func TestVarDeclarationDiagnostics(t *testing.T) {
	expectDiagJS(t, "const x;", diag.MissingInitializerInConstDeclaration)
	expectDiagJS(t, "let let = 1;", diag.CannotDeclareVariableNamedLetWithLet)
	expectDiagJS(t, "let;", diag.LetWithNoBindings)
	expectDiagJS(t, "let x += 1;", diag.CannotUpdateVariableDuringDeclaration)
	expectDiagJS(t, "let x,, y;", diag.StrayCommaInLetStatement)
	expectDiagJS(t, "let x, = 1;", diag.MissingVariableNameInDeclaration)
	expectDiagJS(t, "let x y;", diag.MissingCommaBetweenVariableDeclarations)
	expectDiagJS(t, "async function f() { var await; }", diag.CannotDeclareAwaitInAsyncFunction)
	expectDiagJS(t, "function* g() { let yield; }", diag.CannotDeclareYieldInGeneratorFunction)
}

func TestLetAmbiguity(t *testing.T) {
	// A newline after "let" makes it an identifier reference
	expectVisits(t, "let\nx = 1;", "use let", "assign x")
	expectVisits(t, "let x = 1;", "declare x (let, init)")
	expectVisits(t, "let = 1;", "assign let")
	expectVisits(t, "let(x);", "use let", "use x")
}

func TestAsiIdempotence(t *testing.T) {
	pairs := [][2]string{
		{"x\ny", "x;\ny;"},
		{"let a = 1\nlet b = 2", "let a = 1;\nlet b = 2;"},
		{"f()\ng()", "f();\ng();"},
	}
	for _, pair := range pairs {
		without, diagsWithout := parseJS(t, pair[0])
		with, diagsWith := parseJS(t, pair[1])
		if diff := deep.Equal(without, with); diff != nil {
			t.Errorf("%q vs %q: %v", pair[0], pair[1], diff)
		}
		if len(diagsWithout) != 0 || len(diagsWith) != 0 {
			t.Errorf("%q: unexpected diagnostics %v %v",
				pair[0], codesOf(diagsWithout), codesOf(diagsWith))
		}
	}
}

func TestMissingSemicolon(t *testing.T) {
	d := expectDiagJS(t, "x y", diag.MissingSemicolonAfterStatement)
	if d != nil && d.FirstRange().Loc.Start != 1 {
		t.Errorf("insertion point = %d, want 1", d.FirstRange().Loc.Start)
	}
}

func TestArrowFunctions(t *testing.T) {
	expectVisits(t, "(a, b) => a;",
		"enter function scope",
		"declare a (arrow parameter, uninit)",
		"declare b (arrow parameter, uninit)",
		"enter function scope body",
		"use a",
		"exit function scope")
	expectVisits(t, "x => x;",
		"enter function scope",
		"declare x (arrow parameter, uninit)",
		"enter function scope body",
		"use x",
		"exit function scope")
	expectVisits(t, "async x => x;",
		"enter function scope",
		"declare x (arrow parameter, uninit)",
		"enter function scope body",
		"use x",
		"exit function scope")
}

func TestParenthesizedExpressionIsNotAnArrow(t *testing.T) {
	expectVisits(t, "(a, b);", "use a", "use b")
}

func TestTransactionNeutrality(t *testing.T) {
	// The arrow lookahead speculates over the parenthesized list; a rolled
	// back speculation must leave both streams untouched
	events, diags := parseJS(t, "(a, b) * c;")
	expected := []string{"use a", "use b", "use c", "end of module"}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", codesOf(diags))
	}
}

func TestNewlineNotAllowedBetweenAsyncAndParameterList(t *testing.T) {
	expectDiagJS(t, "async\n(x) => x;", diag.NewlineNotAllowedBetweenAsyncAndParameterList)
}

func TestFunctionExpressionBodyVisitedFirst(t *testing.T) {
	// A function expression's body is visited before the surrounding
	// expression's other operands
	expectVisits(t, "f(x, function g() { y }, z);",
		"enter named function scope g",
		"enter function scope body",
		"use y",
		"exit function scope",
		"use f",
		"use x",
		"use z")
}

func TestAssignmentOrdering(t *testing.T) {
	expectVisits(t, "x = y;", "use y", "assign x")
	expectVisits(t, "x += y;", "use x", "use y", "assign x")
	expectVisits(t, "x++;", "use x", "assign x")
	expectVisits(t, "[a, b] = xs;", "use xs", "assign a", "assign b")
}

func TestAssignmentTargetValidation(t *testing.T) {
	expectDiagJS(t, "1 = x;", diag.InvalidExpressionLeftOfAssignment)
	expectDiagJS(t, "f() = x;", diag.InvalidExpressionLeftOfAssignment)
	expectNoDiags(t, "a.b = x;")
	expectNoDiags(t, "a[0] = x;")
	expectNoDiags(t, "({a, b} = xs);")
}

func TestExponentRules(t *testing.T) {
	expectDiagJS(t, "-x ** 2;", diag.MissingParenthesesAroundUnaryLhsOfExponent)
	expectNoDiags(t, "(-x) ** 2;")
	expectNoDiags(t, "a ** b ** c;")
}

func TestConditionalExpression(t *testing.T) {
	expectVisits(t, "a ? b : c;", "use a", "use b", "use c")
	expectDiagJS(t, "a ? b;", diag.MissingColonInConditionalExpression)
}

func TestTypeofAndDelete(t *testing.T) {
	expectVisits(t, "typeof x;", "typeof use x")
	events, diags := parseJS(t, "delete x;")
	expected := []string{"delete use x", "end of module"}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
	if findDiag(diags, diag.RedundantDeleteStatementOnVariable) == nil {
		t.Errorf("missing redundant-delete warning, got %v", codesOf(diags))
	}
	expectNoDiags(t, "delete a.b;")
}

func TestAwaitInAsyncFunction(t *testing.T) {
	expectVisits(t, "async function f() { await x; }",
		"declare f (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"use x",
		"exit function scope")
	expectDiagJS(t, "function f() { await x; }", diag.AwaitOperatorOutsideAsync)
}

func TestTopLevelAwait(t *testing.T) {
	// Auto mode treats "await x" as an operator at the top level
	expectVisits(t, "await x;", "use x")

	// Forced operator mode: "await" alone cannot be an identifier
	events, _ := parseFor(t, "await x;", Options{TopLevelAwait: TopLevelAwaitOperator})
	expected := []string{"use x", "end of module"}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
}

func TestYieldInGenerator(t *testing.T) {
	expectVisits(t, "function* g() { yield x; }",
		"declare g (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"use x",
		"exit function scope")
	// Outside a generator "yield" is an ordinary identifier
	expectVisits(t, "function f() { yield; }",
		"declare f (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"use yield",
		"exit function scope")
}

func TestBreakAndContinueValidation(t *testing.T) {
	expectNoDiags(t, "while (a) { break; }")
	expectNoDiags(t, "while (a) { continue; }")
	expectNoDiags(t, "switch (a) { case 1: break; }")
	expectDiagJS(t, "break;", diag.InvalidBreak)
	expectDiagJS(t, "continue;", diag.InvalidContinue)
	expectDiagJS(t, "switch (a) { case 1: continue; }", diag.InvalidContinue)
	expectDiagJS(t, "function f() { break; }", diag.InvalidBreak)
	expectDiagJS(t, "while (a) { function f() { break; } }", diag.InvalidBreak)
	// Labelled break targets are resolved by a later pass
	expectNoDiags(t, "L: while (a) { break L; }")
}

func TestLabels(t *testing.T) {
	expectNoDiags(t, "loop: while (a) { break loop; }")
	expectDiagJS(t, "async function f() { await: x; }", diag.LabelNamedAwaitNotAllowedInAsyncFunction)
	expectDiagJS(t, "function* g() { yield: x; }", diag.LabelNamedYieldNotAllowedInGeneratorFunction)
}

func TestSwitchDiagnostics(t *testing.T) {
	expectDiagJS(t, "switch (x) { y; case 1: break; }", diag.StatementBeforeFirstSwitchCase)
	expectDiagJS(t, "case 1:", diag.UnexpectedCaseOutsideSwitchStatement)
	expectDiagJS(t, "default:", diag.UnexpectedDefaultOutsideSwitchStatement)
}

func TestTryCatchFinally(t *testing.T) {
	expectVisits(t, "try { a } catch (e) { b } finally { c }",
		"enter block scope",
		"use a",
		"exit block scope",
		"enter block scope",
		"declare e (catch, uninit)",
		"use b",
		"exit block scope",
		"enter block scope",
		"use c",
		"exit block scope")
	expectNoDiags(t, "try { a } catch { b }")
	expectDiagJS(t, "try { a }", diag.MissingCatchOrFinallyForTryStatement)
	expectDiagJS(t, "catch (e) { }", diag.CatchWithoutTry)
	expectDiagJS(t, "finally { }", diag.FinallyWithoutTry)
	expectDiagJS(t, "try { a } catch () { }", diag.MissingCatchVariableBetweenParentheses)
}

func TestForLoops(t *testing.T) {
	expectVisits(t, "for (let i = 0; i < n; i++) ;",
		"enter for scope",
		"declare i (let, init)",
		"use i",
		"use n",
		"use i",
		"assign i",
		"exit for scope")
	expectVisits(t, "for (x of xs) ;",
		"enter for scope",
		"use xs",
		"assign x",
		"exit for scope")
	expectVisits(t, "for (const k in obj) ;",
		"enter for scope",
		"use obj",
		"declare k (const, uninit)",
		"exit for scope")

	expectDiagJS(t, "for (a; b) ;", diag.CStyleForLoopIsMissingThirdComponent)
	expectDiagJS(t, "for (a; b; c; d) ;", diag.UnexpectedSemicolonInCStyleForLoop)
	expectDiagJS(t, "for (let x of xs; y) ;", diag.UnexpectedSemicolonInForOfLoop)
	expectDiagJS(t, "for ;", diag.MissingForLoopHeader)
	expectDiagJS(t, "for (let x, y of xs) ;", diag.InDisallowedInCStyleForLoop)
	expectNoDiags(t, "for (var x = 1 in xs) ;")
	expectNoDiags(t, "async function f() { for await (const x of xs) {} }")
}

func TestControlStatementBodies(t *testing.T) {
	expectDiagJS(t, "if (a) class C {}", diag.ClassStatementNotAllowedInBody)
	expectDiagJS(t, "while (a) function f() {}", diag.FunctionStatementNotAllowedInBody)
	expectDiagJS(t, "for (;;) const x = 1;", diag.LexicalDeclarationNotAllowedInBody)
	expectNoDiags(t, "if (a) var x = 1;")
	expectNoDiags(t, "if (a) { let x = 1; }")
}

func TestIfDiagnostics(t *testing.T) {
	expectDiagJS(t, "if a) b;", diag.ExpectedParenthesisAroundIfCondition)
	expectDiagJS(t, "if (a b;", diag.ExpectedParenthesisAroundIfCondition)
	expectDiagJS(t, "if a b;", diag.ExpectedParenthesesAroundIfCondition)
	expectDiagJS(t, "else { }", diag.ElseHasNoIf)
	expectDiagJS(t, "if (a = 1) b;", diag.AssignmentMakesConditionConstant)
	expectNoDiags(t, "if (a == 1) b;")
}

func TestFunctionDiagnostics(t *testing.T) {
	expectDiagJS(t, "function () {}", diag.MissingNameInFunctionStatement)
	expectDiagJS(t, "function f*() {}", diag.GeneratorFunctionStarBelongsBeforeName)
	expectDiagJS(t, "function f()", diag.MissingFunctionBody)
	expectDiagJS(t, "function f() => {}", diag.FunctionsOrMethodsShouldNotHaveArrowOperator)
	expectDiagJS(t, "function f(a, , b) {}", diag.StrayCommaInParameter)
	expectDiagJS(t, "function f(...rest, x) {}", diag.CommaNotAllowedAfterSpreadParameter)
}

func TestClassMemberDiagnostics(t *testing.T) {
	expectDiagJS(t, "class C { async static m() {} }", diag.AsyncStaticMethod)
	expectDiagJS(t, "class C { readonly static x; }", diag.ReadonlyStaticField)
	expectDiagJS(t, "class C { m() {}, n() {} }", diag.CommaNotAllowedBetweenClassMethods)
	expectDiagJS(t, "class C { function m() {} }", diag.MethodsShouldNotUseFunctionKeyword)
	expectDiagJS(t, "class C { private x; }", diag.TypeScriptPrivateNotAllowedInJavaScript)
	expectDiagJS(t, "class let {}", diag.CannotDeclareClassNamedLet)
	expectDiagJS(t, "class {}", diag.MissingNameInClassStatement)
	expectNoDiags(t, "class C { static m() {} get x() {} set x(v) {} #p = 1; }")
	expectNoDiags(t, "class C { static { x = 1; } }")
}

func TestObjectLiterals(t *testing.T) {
	expectVisits(t, "o = {a: x, b};", "use x", "use b", "assign o")
	expectDiagJS(t, "o = {a: 1 b: 2};", diag.MissingCommaBetweenObjectLiteralEntries)
	expectDiagJS(t, "o = {#x: 1};", diag.PrivatePropertiesAreNotAllowedInObjectLiterals)
	expectNoDiags(t, "o = {m() {}, get x() { return 1; }, [k]: v};")
}

func TestImports(t *testing.T) {
	expectVisits(t, `import a from "m";`, "declare a (import, uninit)")
	expectVisits(t, `import {a, b as c} from "m";`,
		"declare a (import, uninit)", "declare c (import, uninit)")
	expectVisits(t, `import * as ns from "m";`, "declare ns (import, uninit)")
	expectVisits(t, `import "m";`)

	expectDiagJS(t, `import {let} from "m";`, diag.CannotImportLet)
	expectDiagJS(t, `import {a} "m";`, diag.ExpectedFromBeforeModuleSpecifier)
	expectDiagJS(t, `import {a} from m;`, diag.CannotImportFromUnquotedModule)
	expectDiagJS(t, `import * ns from "m";`, diag.ExpectedAsBeforeImportedNamespaceAlias)
}

func TestExports(t *testing.T) {
	expectVisits(t, "export {a};", "use a")
	expectVisits(t, `export {a} from "m";`)
	expectVisits(t, "export default x;", "use x")
	expectVisits(t, "export const x = 1;", "declare x (const, init)")
	expectVisits(t, "export function f() {}",
		"declare f (function, uninit)",
		"enter function scope",
		"enter function scope body",
		"exit function scope")

	expectDiagJS(t, "export;", diag.MissingTokenAfterExport)
	expectDiagJS(t, "export a, b;", diag.ExportingRequiresCurlies)
	expectDiagJS(t, "export 2 + 2;", diag.ExportingRequiresDefault)
	expectDiagJS(t, "export function() {}", diag.MissingNameOfExportedFunction)
	expectDiagJS(t, "export class {}", diag.MissingNameOfExportedClass)
}

func TestDepthLimit(t *testing.T) {
	nested := ""
	for i := 0; i < 100; i++ {
		nested += "("
	}
	nested += "x"
	for i := 0; i < 100; i++ {
		nested += ")"
	}

	_, diags := parseFor(t, nested+";", Options{MaxDepth: 20})
	if findDiag(diags, diag.DepthLimitExceeded) == nil {
		t.Fatalf("missing depth-limit diagnostic, got %v", codesOf(diags))
	}

	// The next statement still parses
	events, _ := parseFor(t, nested+";\nok;", Options{MaxDepth: 20})
	found := false
	for _, event := range events {
		if event == "use ok" {
			found = true
		}
	}
	if !found {
		t.Errorf("parser did not recover after the depth limit: %v", events)
	}
}

// balanceChecker verifies the scope-balance invariant while recording spans.
type balanceChecker struct {
	visit.Null
	t     *testing.T
	depth int
}

func (b *balanceChecker) enter() { b.depth++ }
func (b *balanceChecker) exit() {
	b.depth--
	if b.depth < 0 {
		b.t.Errorf("scope exit without matching enter")
	}
}

func (b *balanceChecker) EnterBlockScope()                      { b.enter() }
func (b *balanceChecker) ExitBlockScope()                       { b.exit() }
func (b *balanceChecker) EnterFunctionScope()                   { b.enter() }
func (b *balanceChecker) EnterNamedFunctionScope(logger.Range)  { b.enter() }
func (b *balanceChecker) ExitFunctionScope()                    { b.exit() }
func (b *balanceChecker) EnterClassScope()                      { b.enter() }
func (b *balanceChecker) ExitClassScope()                       { b.exit() }
func (b *balanceChecker) EnterForScope()                        { b.enter() }
func (b *balanceChecker) ExitForScope()                         { b.exit() }
func (b *balanceChecker) EnterWithScope()                       { b.enter() }
func (b *balanceChecker) ExitWithScope()                        { b.exit() }
func (b *balanceChecker) EnterIndexSignatureScope()             { b.enter() }
func (b *balanceChecker) ExitIndexSignatureScope()              { b.exit() }

// spanChecker verifies the span-soundness invariant for diagnostics.
type spanChecker struct {
	t      *testing.T
	length int32
}

func (s *spanChecker) ReportDiagnostic(d diag.Diagnostic) {
	for _, arg := range d.Args {
		if arg.Type != diag.ArgRange {
			continue
		}
		r := arg.Range
		if r.Loc.Start < 0 || r.Len < 0 || r.End() > s.length {
			s.t.Errorf("%s: span [%d, %d) outside buffer of length %d",
				d.Code(), r.Loc.Start, r.End(), s.length)
		}
	}
}

// A tiny grammar-driven program generator. It intentionally produces some
// invalid programs; the invariants must hold either way.
func generateProgram(r *rand.Rand, depth int) string {
	if depth > 3 {
		return "x;"
	}
	switch r.Intn(10) {
	case 0:
		return "let a" + fmt.Sprint(r.Intn(10)) + " = b;"
	case 1:
		return "if (c) { " + generateProgram(r, depth+1) + " } else { " + generateProgram(r, depth+1) + " }"
	case 2:
		return "function f" + fmt.Sprint(r.Intn(10)) + "(p) { " + generateProgram(r, depth+1) + " }"
	case 3:
		return "class C" + fmt.Sprint(r.Intn(10)) + " { m() { " + generateProgram(r, depth+1) + " } }"
	case 4:
		return "for (let i = 0; i < 10; i++) { " + generateProgram(r, depth+1) + " }"
	case 5:
		return "try { " + generateProgram(r, depth+1) + " } catch (e) { }"
	case 6:
		return "switch (v) { case 1: " + generateProgram(r, depth+1) + " break; }"
	case 7:
		// Deliberately broken
		return "class C { method( "
	case 8:
		return "x = (a, b) => { " + generateProgram(r, depth+1) + " };"
	default:
		return "obj.prop[idx] = a + b * c;"
	}
}

func TestGeneratedProgramInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(0x5eed))

	for i := 0; i < 200; i++ {
		program := ""
		for n := r.Intn(5); n >= 0; n-- {
			program += generateProgram(r, 0) + "\n"
		}

		source := logger.NewSource("<generated>", program)
		balance := &balanceChecker{t: t}
		spans := &spanChecker{t: t, length: int32(len(program))}
		Parse(source, Options{}, balance, spans)

		if balance.depth != 0 {
			t.Fatalf("unbalanced scopes (%d open) for program:\n%s", balance.depth, program)
		}
	}
}
