package js_parser

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/fastlint/fastlint/internal/diag"
)

func parseTS(t *testing.T, contents string) ([]string, []diag.Diagnostic) {
	t.Helper()
	return parseFor(t, contents, Options{Language: LanguageTS})
}

func expectVisitsTS(t *testing.T, contents string, expected ...string) {
	t.Helper()
	events, _ := parseTS(t, contents)
	expected = append(expected, "end of module")
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("%q visits:\n%v", contents, diff)
	}
}

func expectNoDiagsTS(t *testing.T, contents string) {
	t.Helper()
	_, diags := parseTS(t, contents)
	if len(diags) != 0 {
		t.Errorf("%q: unexpected diagnostics %v", contents, codesOf(diags))
	}
}

func expectDiagTS(t *testing.T, contents string, kind diag.Kind) *diag.Diagnostic {
	t.Helper()
	_, diags := parseTS(t, contents)
	d := findDiag(diags, kind)
	if d == nil {
		t.Errorf("%q: missing %s, got %v", contents, diag.Table[kind].Code, codesOf(diags))
	}
	return d
}

func TestTypeAnnotations(t *testing.T) {
	expectVisitsTS(t, "let x: number = y;", "use y", "declare x (let, init)")
	expectVisitsTS(t, "let x: Foo = y;", "type use Foo", "use y", "declare x (let, init)")
	expectNoDiagsTS(t, "let x: string | number;")
	expectNoDiagsTS(t, "let x: {a: number, b: string[]};")
	expectNoDiagsTS(t, "function f(a: number, b?: string): void {}")
	expectNoDiagsTS(t, "let f: (a: number) => string;")
}

func TestTypeAnnotationsRejectedInJS(t *testing.T) {
	expectDiagJS(t, "let x: number = 1;", diag.TypeScriptTypeAnnotationsNotAllowedInJavaScript)
	expectDiagJS(t, "function f(a?: number) {}", diag.TypeScriptOptionalParametersNotAllowedInJavaScript)
	expectDiagJS(t, "let x = y!;", diag.TypeScriptNonNullAssertionNotAllowedInJavaScript)
	expectDiagJS(t, "let x = y as T;", diag.TypeScriptAsTypeAssertionNotAllowedInJavaScript)
	expectDiagJS(t, "let x = y satisfies T;", diag.TypeScriptSatisfiesNotAllowedInJavaScript)
	expectDiagJS(t, "function f<T>(x) {}", diag.TypeScriptGenericsNotAllowedInJavaScript)
}

func TestInterfaces(t *testing.T) {
	expectVisitsTS(t, "interface I { m(): void; x: number; }",
		"declare I (interface, uninit)",
		"enter class scope",
		"enter class scope body I",
		"property declaration m",
		"enter function scope",
		"enter function scope body",
		"exit function scope",
		"property declaration x",
		"exit class scope")

	expectDiagJS(t, "interface I { }", diag.TypeScriptInterfacesNotAllowedInJavaScript)
	expectDiagTS(t, "interface I { m() {} }", diag.InterfaceMethodsCannotContainBodies)
	expectDiagTS(t, "interface I { async m(): void; }", diag.InterfaceMethodsCannotBeAsync)
	expectDiagTS(t, "interface I { static x: number; }", diag.InterfacePropertiesCannotBeStatic)
	expectDiagTS(t, "interface I { private x: number; }", diag.InterfacePropertiesCannotBePrivate)
	expectDiagTS(t, "interface I { x = 1; }", diag.InterfaceFieldsCannotHaveInitializers)
	expectDiagTS(t, "interface I { abstract m(): void; }", diag.AbstractPropertyNotAllowedInInterface)
	expectDiagTS(t, "interface I {", diag.UnclosedInterfaceBlock)
	expectDiagTS(t, "interface I", diag.MissingBodyForTypeScriptInterface)
}

func TestTypeAliases(t *testing.T) {
	expectVisitsTS(t, "type A = number;", "declare A (type alias, uninit)")
	expectNoDiagsTS(t, "type Pair<T> = [T, T];")
	expectDiagJS(t, "type A = number;", diag.TypeScriptTypeAliasNotAllowedInJavaScript)
}

func TestEnums(t *testing.T) {
	expectVisitsTS(t, "enum E { A, B }", "declare E (enum, uninit)",
		"enter block scope", "exit block scope")
	expectNoDiagsTS(t, "enum E { A = 1, B = A + 1 }")
	expectNoDiagsTS(t, "const enum E { A = 1 }")
	expectDiagJS(t, "enum E { }", diag.TypeScriptEnumIsNotAllowedInJavaScript)
	expectDiagTS(t, "enum E { 1 = 2 }", diag.TypeScriptEnumMemberNameCannotBeNumber)
	expectDiagTS(t, "enum E { A,, B }", diag.ExtraCommaNotAllowedBetweenEnumMembers)
	expectDiagTS(t, "const enum E { A = f() }", diag.TypeScriptEnumValueMustBeConstant)
}

func TestNamespaces(t *testing.T) {
	expectVisitsTS(t, "namespace N { let x = 1; }",
		"declare N (namespace, uninit)",
		"enter block scope",
		"declare x (let, init)",
		"exit block scope")
	expectDiagJS(t, "namespace N { }", diag.TypeScriptNamespacesNotAllowedInJavaScript)
	expectDiagTS(t, "namespace N { export default x; }", diag.TypeScriptNamespaceCannotExportDefault)
	expectNoDiagsTS(t, "namespace A.B.C { }")
}

func TestDeclare(t *testing.T) {
	expectVisitsTS(t, "declare var x;", "declare x (var, uninit)")
	expectNoDiagsTS(t, "declare function f(): void;")
	expectNoDiagsTS(t, "declare const enum E { A = 1 }")
	expectNoDiagsTS(t, "declare module \"m\";")

	expectDiagTS(t, "declare var x = 1;", diag.DeclareVarCannotHaveInitializer)
	expectDiagTS(t, "declare function f() {}", diag.DeclareFunctionCannotHaveBody)
	expectDiagTS(t, "declare async function f();", diag.DeclareFunctionCannotBeAsync)
	expectDiagTS(t, "declare class C { m() {} }", diag.DeclareClassMethodsCannotContainBodies)
	expectDiagTS(t, "declare class C { x = 1; }", diag.DeclareClassFieldsCannotHaveInitializers)
	expectDiagTS(t, "declare namespace N { x = 1; }", diag.DeclareNamespaceCannotContainStatement)
	expectDiagTS(t, "declare namespace N { declare var x; }", diag.DeclareKeywordIsNotAllowedInsideDeclareNamespace)
	expectDiagTS(t, "declare namespace N { import a from \"m\"; }", diag.DeclareNamespaceCannotImportModule)

	expectDiagJS(t, "declare var x;", diag.DeclareVarNotAllowedInJavaScript)
	expectDiagJS(t, "declare class C { }", diag.DeclareClassNotAllowedInJavaScript)
	expectDiagJS(t, "declare function f(): void;", diag.DeclareFunctionNotAllowedInJavaScript)
}

func TestAbstractClasses(t *testing.T) {
	expectNoDiagsTS(t, "abstract class C { abstract m(): void; }")
	expectDiagTS(t, "abstract class C { abstract m() {} }", diag.AbstractMethodsCannotContainBodies)
	expectDiagTS(t, "abstract class C { abstract async m(): void; }", diag.AbstractMethodsCannotBeAsync)
	expectDiagTS(t, "abstract class C { abstract x = 1; }", diag.AbstractFieldCannotHaveInitializer)
	expectDiagTS(t, "class C { abstract m(): void; }", diag.AbstractPropertyNotAllowedInNonAbstractClass)
	expectDiagJS(t, "abstract class C { }", diag.TypeScriptAbstractClassNotAllowedInJavaScript)
}

func TestClassModifiersTS(t *testing.T) {
	expectNoDiagsTS(t, "class C { private x: number; protected y; public z; }")
	expectNoDiagsTS(t, "class C { readonly x = 1; }")
	expectNoDiagsTS(t, "class C { constructor(public x: number) {} }")
	expectNoDiagsTS(t, "class C implements I { }")
	expectDiagTS(t, "class C { readonly m() {} }", diag.TypeScriptReadonlyMethod)
	expectDiagTS(t, "class C { static public x; }", diag.AccessSpecifierMustPrecedeOtherModifiers)
	expectDiagTS(t, "class C implements I extends B { }", diag.TypeScriptImplementsMustBeAfterExtends)
	expectDiagJS(t, "class C implements I { }", diag.TypeScriptClassImplementsNotAllowedInJavaScript)
	expectDiagJS(t, "class C { constructor(public x) {} }", diag.TypeScriptParameterPropertyNotAllowedInJavaScript)
}

func TestIndexSignatures(t *testing.T) {
	expectVisitsTS(t, "class C { [key: string]: number; }",
		"declare C (class, uninit)",
		"enter class scope",
		"enter class scope body C",
		"enter index signature scope",
		"declare key (index signature parameter, uninit)",
		"exit index signature scope",
		"exit class scope")
	expectDiagTS(t, "class C { [key: string](): number; }", diag.TypeScriptIndexSignatureCannotBeMethod)
	expectDiagTS(t, "class C { [key: string]; }", diag.TypeScriptIndexSignatureNeedsType)
}

func TestGenerics(t *testing.T) {
	expectVisitsTS(t, "function f<T>(x: T): T { return x; }",
		"declare f (function, uninit)",
		"enter function scope",
		"declare T (generic parameter, uninit)",
		"type use T",
		"declare x (parameter, uninit)",
		"type use T",
		"enter function scope body",
		"use x",
		"exit function scope")

	expectNoDiagsTS(t, "let x: Map<string, Array<number>> = y;")
	expectNoDiagsTS(t, "f<number>(x);")
	expectDiagTS(t, "function f<>() {}", diag.TypeScriptGenericParameterListIsEmpty)
	expectDiagTS(t, "function f<, T>() {}", diag.CommaNotAllowedBeforeFirstGenericParameter)
}

func TestNestedTypeArgumentShearing(t *testing.T) {
	// The ">>" that closes "Array<Array<number>>" must be split into two
	// ">" tokens
	expectNoDiagsTS(t, "let x: Array<Array<number>> = y;")
	expectNoDiagsTS(t, "let x: A<B<C<D>>> = y;")
}

func TestAngleAssertions(t *testing.T) {
	expectVisitsTS(t, "let x = <number>y;", "use y", "declare x (let, init)")
}

func TestAsAndSatisfies(t *testing.T) {
	expectVisitsTS(t, "let x = y as const;", "use y", "declare x (let, init)")
	expectVisitsTS(t, "let x = y satisfies Foo;", "use y", "type use Foo", "declare x (let, init)")
}

func TestImportExportTS(t *testing.T) {
	expectVisitsTS(t, `import type {T} from "m";`, "declare T (import type, uninit)")
	expectVisitsTS(t, `import {type T, v} from "m";`,
		"declare T (import type, uninit)", "declare v (import, uninit)")
	expectVisitsTS(t, `import x = require("m");`, "declare x (import, init)", "use require")
	expectNoDiagsTS(t, "export = x;")
	expectNoDiagsTS(t, `export type {T} from "m";`)

	expectDiagJS(t, `import type {T} from "m";`, diag.TypeScriptTypeImportNotAllowedInJavaScript)
	expectDiagJS(t, `import x = require("m");`, diag.TypeScriptImportAliasNotAllowedInJavaScript)
	expectDiagJS(t, "export = x;", diag.TypeScriptExportEqualNotAllowedInJavaScript)
}

func TestModeMonotonicity(t *testing.T) {
	// Enabling TS must not introduce errors on JS-clean sources
	sources := []string{
		"class C { method() {} }",
		"for (let x of xs) { f(x); }",
		"let {a, b = 1} = obj;",
		"async function f() { await g(); }",
		"x => x * 2;",
	}
	for _, contents := range sources {
		_, jsDiags := parseJS(t, contents)
		if len(jsDiags) != 0 {
			t.Fatalf("%q is not JS-clean: %v", contents, codesOf(jsDiags))
		}
		_, tsDiags := parseTS(t, contents)
		if len(tsDiags) != 0 {
			t.Errorf("%q: TS mode added %v", contents, codesOf(tsDiags))
		}
	}
}

func TestJSXMode(t *testing.T) {
	events, diags := parseFor(t, "let el = <div className={cls}>{body}</div>;",
		Options{JSX: true})
	expected := []string{
		"use cls",
		"use body",
		"declare el (let, init)",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", codesOf(diags))
	}
}

func TestJSXComponentUse(t *testing.T) {
	events, _ := parseFor(t, "let el = <Widget prop={x} />;", Options{JSX: true})
	expected := []string{
		"use Widget",
		"use x",
		"declare el (let, init)",
		"end of module",
	}
	if diff := deep.Equal(events, expected); diff != nil {
		t.Errorf("visits: %v", diff)
	}
}

func TestJSXDiagnostics(t *testing.T) {
	_, diags := parseFor(t, "let el = <div>text</span>;", Options{JSX: true})
	if findDiag(diags, diag.MismatchedJSXTags) == nil {
		t.Errorf("missing mismatched-tags diagnostic, got %v", codesOf(diags))
	}

	_, diags = parseFor(t, "let el = <div {props} />;", Options{JSX: true})
	if findDiag(diags, diag.MissingDotsForAttributeSpread) == nil {
		t.Errorf("missing attribute-spread diagnostic, got %v", codesOf(diags))
	}

	expectDiagJS(t, "let el = <div />;", diag.JSXNotAllowedInJavaScript)
}

func TestJSXFragments(t *testing.T) {
	_, diags := parseFor(t, "let el = <>{a}{b}</>;", Options{JSX: true})
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", codesOf(diags))
	}
}

func TestAdjacentJSX(t *testing.T) {
	_, diags := parseFor(t, "let el = (<a /><b />);", Options{JSX: true})
	if findDiag(diags, diag.AdjacentJSXWithoutParent) == nil {
		t.Errorf("missing adjacent-JSX diagnostic, got %v", codesOf(diags))
	}
}

func TestTSXGenericArrow(t *testing.T) {
	tsx := Options{Language: LanguageTS, JSX: true}

	// The trailing comma opts out of JSX
	_, diags := parseFor(t, "let f = <T,>(x: T) => x;", tsx)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", codesOf(diags))
	}

	// Without it the arrow still parses, with a diagnostic
	events, diags := parseFor(t, "let f = <T>(x: T) => x;", tsx)
	if findDiag(diags, diag.TypeScriptGenericArrowNeedsCommaInJSXMode) == nil {
		t.Errorf("missing generic-arrow diagnostic, got %v", codesOf(diags))
	}
	sawParam := false
	for _, event := range events {
		if event == "declare x (arrow parameter, uninit)" {
			sawParam = true
		}
	}
	if !sawParam {
		t.Errorf("generic arrow was not parsed as an arrow: %v", events)
	}
}
