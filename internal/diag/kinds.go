package diag

// The diagnostic table. Every kind has exactly one code and one severity.
// Codes form a dense, monotonically-growing set shared with other tools that
// consume them, so they are load-bearing: a kind's code never changes, and
// codes of deleted kinds are retired to ReservedCodes rather than reused.

type Kind uint16

const (
	// Lexical
	BigIntLiteralContainsDecimalPoint Kind = iota
	BigIntLiteralContainsExponent
	CharacterDisallowedInIdentifiers
	EscapedCharacterDisallowedInIdentifiers
	EscapedCodePointInIdentifierOutOfRange
	EscapedCodePointInUnicodeOutOfRange
	ExpectedHexDigitsInUnicodeEscape
	IntegerLiteralWillLosePrecision
	InvalidHexEscapeSequence
	InvalidUtf8Sequence
	KeywordsCannotContainEscapeSequences
	LegacyOctalLiteralMayNotBeBigInt
	LegacyOctalLiteralMayNotContainUnderscores
	NumberLiteralContainsConsecutiveUnderscores
	NumberLiteralContainsTrailingUnderscores
	OctalLiteralMayNotHaveDecimal
	OctalLiteralMayNotHaveExponent
	UnclosedBlockComment
	UnclosedIdentifierEscapeSequence
	UnclosedJSXStringLiteral
	UnclosedRegexpLiteral
	UnclosedStringLiteral
	UnclosedTemplate
	UnexpectedBackslashInIdentifier
	UnexpectedCharactersInBinaryNumber
	UnexpectedCharactersInHexNumber
	UnexpectedCharactersInNumber
	UnexpectedCharactersInOctalNumber
	UnexpectedControlCharacter
	UnexpectedHashCharacter
	UnopenedBlockComment

	// Expressions
	AdjacentJSXWithoutParent
	AssignmentMakesConditionConstant
	AwaitFollowedByArrowFunction
	AwaitOperatorOutsideAsync
	CommaNotAllowedAfterSpreadParameter
	EqualsDoesNotDistributeOverOr
	ExpectedExpressionBeforeNewline
	ExpectedExpressionBeforeSemicolon
	ExtraCommaNotAllowedBetweenArguments
	IndexingRequiresExpression
	InvalidExpressionLeftOfAssignment
	MisleadingCommaOperatorInConditionalStatement
	MisleadingCommaOperatorInIndexOperation
	MissingArrowFunctionParameterList
	MissingArrowOperatorInArrowFunction
	MissingColonInConditionalExpression
	MissingCommaBetweenObjectLiteralEntries
	MissingExpressionBetweenParentheses
	MissingKeyForObjectEntry
	MissingOperandForOperator
	MissingOperatorBetweenExpressionAndArrowFunction
	MissingParenthesesAroundSelfInvokedFunction
	MissingParenthesesAroundUnaryLhsOfExponent
	MissingPropertyNameForDotOperator
	MissingValueForObjectLiteralEntry
	NewlineNotAllowedBetweenAsyncAndParameterList
	PrivatePropertiesAreNotAllowedInObjectLiterals
	RedundantAwait
	RedundantDeleteStatementOnVariable
	UnexpectedQuestionInExpression
	UnmatchedIndexingBracket
	UnmatchedParenthesis
	UnmatchedRightCurly

	// Statements and declarations
	AsyncStaticMethod
	CStyleForLoopIsMissingThirdComponent
	CannotAssignToLoopVariableInForOfOrInLoop
	CannotDeclareAwaitInAsyncFunction
	CannotDeclareClassNamedAwaitInAsyncFunction
	CannotDeclareClassNamedLet
	CannotDeclareVariableNamedLetWithLet
	CannotDeclareVariableWithKeywordName
	CannotDeclareYieldInGeneratorFunction
	CannotImportFromUnquotedModule
	CannotImportLet
	CannotImportVariableNamedKeyword
	CannotUpdateVariableDuringDeclaration
	CatchWithoutTry
	ClassStatementNotAllowedInBody
	CommaNotAllowedBetweenClassMethods
	DepthLimitExceeded
	DuplicatedCasesInSwitchStatement
	ElseHasNoIf
	ExpectedAsBeforeImportedNamespaceAlias
	ExpectedFromAndModuleSpecifier
	ExpectedFromBeforeModuleSpecifier
	ExpectedExpressionForSwitchCase
	ExpectedLeftCurly
	ExpectedParenthesesAroundDoWhileCondition
	ExpectedParenthesesAroundIfCondition
	ExpectedParenthesesAroundSwitchCondition
	ExpectedParenthesesAroundWhileCondition
	ExpectedParenthesesAroundWithExpression
	ExpectedParenthesisAroundDoWhileCondition
	ExpectedParenthesisAroundIfCondition
	ExpectedParenthesisAroundSwitchCondition
	ExpectedParenthesisAroundWhileCondition
	ExpectedParenthesisAroundWithExpression
	ExpectedVariableNameForCatch
	ExpectedVariableNameForImportAs
	ExportingRequiresCurlies
	ExportingRequiresDefault
	FinallyWithoutTry
	FunctionStatementNotAllowedInBody
	FunctionsOrMethodsShouldNotHaveArrowOperator
	GeneratorFunctionStarBelongsBeforeName
	ImportCannotHaveDeclareKeyword
	InDisallowedInCStyleForLoop
	InvalidBreak
	InvalidContinue
	InvalidParameter
	LabelNamedAwaitNotAllowedInAsyncFunction
	LabelNamedYieldNotAllowedInGeneratorFunction
	LetWithNoBindings
	LexicalDeclarationNotAllowedInBody
	MethodsShouldNotUseFunctionKeyword
	MismatchedJSXTags
	MissingBodyForCatchClause
	MissingBodyForClass
	MissingBodyForDoWhileStatement
	MissingBodyForFinallyClause
	MissingBodyForForStatement
	MissingBodyForIfStatement
	MissingBodyForSwitchStatement
	MissingBodyForTryStatement
	MissingBodyForTypeScriptInterface
	MissingBodyForTypeScriptNamespace
	MissingBodyForWhileStatement
	MissingCatchOrFinallyForTryStatement
	MissingCatchVariableBetweenParentheses
	MissingCommaBetweenVariableDeclarations
	MissingConditionForIfStatement
	MissingConditionForSwitchStatement
	MissingConditionForWhileStatement
	MissingDotsForAttributeSpread
	MissingEqualAfterVariable
	MissingExponentForExponentOperator
	MissingForLoopHeader
	MissingForLoopRhsOrComponentsAfterDeclaration
	MissingForLoopRhsOrComponentsAfterExpression
	MissingFunctionBody
	MissingFunctionParameterList
	MissingInitializerInConstDeclaration
	MissingNameInClassStatement
	MissingNameInFunctionStatement
	MissingNameOfExportedClass
	MissingNameOfExportedFunction
	MissingNameOrParenthesesForFunction
	MissingSemicolonAfterField
	MissingSemicolonAfterStatement
	MissingSemicolonBetweenForLoopConditionAndUpdate
	MissingSemicolonBetweenForLoopInitAndCondition
	MissingTokenAfterExport
	MissingVariableNameInDeclaration
	MissingWhileAndConditionForDoWhileStatement
	ReturnStatementReturnsNothing
	StatementBeforeFirstSwitchCase
	StrayCommaInLetStatement
	StrayCommaInParameter
	UnclosedClassBlock
	UnclosedCodeBlock
	UnclosedInterfaceBlock
	UnclosedObjectLiteral
	UnexpectedCaseOutsideSwitchStatement
	UnexpectedDefaultOutsideSwitchStatement
	UnexpectedSemicolonInCStyleForLoop
	UnexpectedSemicolonInForInLoop
	UnexpectedSemicolonInForOfLoop
	UnexpectedToken
	UnexpectedTokenAfterExport
	UnexpectedTokenInVariableDeclaration

	// TypeScript constructs rejected in JavaScript
	DeclareAbstractClassNotAllowedInJavaScript
	DeclareClassNotAllowedInJavaScript
	DeclareFunctionNotAllowedInJavaScript
	DeclareVarNotAllowedInJavaScript
	JSXNotAllowedInJavaScript
	JSXNotAllowedInTypeScript
	TypeScriptAbstractClassNotAllowedInJavaScript
	TypeScriptAsTypeAssertionNotAllowedInJavaScript
	TypeScriptClassImplementsNotAllowedInJavaScript
	TypeScriptEnumIsNotAllowedInJavaScript
	TypeScriptExportEqualNotAllowedInJavaScript
	TypeScriptGenericsNotAllowedInJavaScript
	TypeScriptImportAliasNotAllowedInJavaScript
	TypeScriptInterfacesNotAllowedInJavaScript
	TypeScriptNamespacesNotAllowedInJavaScript
	TypeScriptNonNullAssertionNotAllowedInJavaScript
	TypeScriptOptionalParametersNotAllowedInJavaScript
	TypeScriptOptionalPropertiesNotAllowedInJavaScript
	TypeScriptParameterPropertyNotAllowedInJavaScript
	TypeScriptPrivateNotAllowedInJavaScript
	TypeScriptProtectedNotAllowedInJavaScript
	TypeScriptPublicNotAllowedInJavaScript
	TypeScriptReadonlyFieldsNotAllowedInJavaScript
	TypeScriptSatisfiesNotAllowedInJavaScript
	TypeScriptTypeAliasNotAllowedInJavaScript
	TypeScriptTypeAnnotationsNotAllowedInJavaScript
	TypeScriptTypeExportNotAllowedInJavaScript
	TypeScriptTypeImportNotAllowedInJavaScript

	// TypeScript structure rules
	AbstractFieldCannotHaveInitializer
	AbstractMethodsCannotBeAsync
	AbstractMethodsCannotBeGenerators
	AbstractMethodsCannotContainBodies
	AbstractPropertyNotAllowedInInterface
	AbstractPropertyNotAllowedInNonAbstractClass
	AccessSpecifierMustPrecedeOtherModifiers
	CommaNotAllowedBeforeFirstGenericParameter
	DeclareClassFieldsCannotHaveInitializers
	DeclareClassMethodsCannotBeAsync
	DeclareClassMethodsCannotBeGenerators
	DeclareClassMethodsCannotContainBodies
	DeclareFunctionCannotBeAsync
	DeclareFunctionCannotBeGenerator
	DeclareFunctionCannotHaveBody
	DeclareKeywordIsNotAllowedInsideDeclareNamespace
	DeclareNamespaceCannotContainStatement
	DeclareNamespaceCannotImportModule
	DeclareVarCannotHaveInitializer
	ExtraCommaNotAllowedBetweenEnumMembers
	InterfaceFieldsCannotHaveInitializers
	InterfaceMethodsCannotBeAsync
	InterfaceMethodsCannotBeGenerators
	InterfaceMethodsCannotContainBodies
	InterfacePropertiesCannotBeExplicitlyPublic
	InterfacePropertiesCannotBePrivate
	InterfacePropertiesCannotBeProtected
	InterfacePropertiesCannotBeStatic
	MissingCommaBetweenGenericParameters
	MissingSemicolonAfterAbstractMethod
	MissingSemicolonAfterDeclareClassMethod
	MissingSemicolonAfterIndexSignature
	MissingSemicolonAfterInterfaceMethod
	NewlineNotAllowedAfterAbstractKeyword
	NewlineNotAllowedAfterExportDeclare
	NewlineNotAllowedAfterInterfaceKeyword
	NewlineNotAllowedAfterNamespaceKeyword
	NewlineNotAllowedAfterTypeKeyword
	NewlineNotAllowedBetweenAsyncAndFunctionKeyword
	ReadonlyStaticField
	TypeScriptEnumComputedNameMustBeSimple
	TypeScriptEnumMemberNameCannotBeNumber
	TypeScriptEnumValueMustBeConstant
	TypeScriptGenericArrowNeedsCommaInJSXMode
	TypeScriptGenericParameterListIsEmpty
	TypeScriptImplementsMustBeAfterExtends
	TypeScriptIndexSignatureCannotBeMethod
	TypeScriptIndexSignatureNeedsType
	TypeScriptInterfacesCannotContainStaticBlocks
	TypeScriptNamespaceCannotExportDefault
	TypeScriptReadonlyMethod
	TypeScriptRequiresSpaceBetweenGreaterAndEqual

	KindCount
)

// ReservedCodes were used by retired diagnostics and must never be assigned
// to a kind again.
var ReservedCodes = []string{
	"E0242",
	"E0271",
	"E0279",
	"E0707",
}

func spans(names ...string) []ArgSpec {
	args := make([]ArgSpec, len(names))
	for i, name := range names {
		args[i] = ArgSpec{Name: name, Type: ArgRange}
	}
	return args
}

func one(format string) []Message {
	return []Message{{Format: format, Arg: 0}}
}

var Table = [KindCount]Info{
	BigIntLiteralContainsDecimalPoint: {Code: "E0005", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("BigInt literal contains decimal point")},
	BigIntLiteralContainsExponent: {Code: "E0006", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("BigInt literal contains exponent")},
	CharacterDisallowedInIdentifiers: {Code: "E0011", Severity: SeverityError,
		Args:     spans("character"),
		Messages: one("character is not allowed in identifiers")},
	EscapedCharacterDisallowedInIdentifiers: {Code: "E0012", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("escaped character is not allowed in identifiers")},
	EscapedCodePointInIdentifierOutOfRange: {Code: "E0013", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("code point out of range")},
	EscapedCodePointInUnicodeOutOfRange: {Code: "E0207", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("code point in Unicode escape sequence must not be greater than U+10FFFF")},
	ExpectedHexDigitsInUnicodeEscape: {Code: "E0016", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("expected hexadecimal digits in Unicode escape sequence")},
	IntegerLiteralWillLosePrecision: {Code: "E0212", Severity: SeverityWarning,
		Args: []ArgSpec{{Name: "characters", Type: ArgRange}, {Name: "rounded_val", Type: ArgString}},
		Messages: one("integer cannot be represented and will be rounded to '{1}'")},
	InvalidHexEscapeSequence: {Code: "E0060", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("invalid hex escape sequence")},
	InvalidUtf8Sequence: {Code: "E0022", Severity: SeverityError,
		Args:     spans("sequence"),
		Messages: one("invalid UTF-8 sequence")},
	KeywordsCannotContainEscapeSequences: {Code: "E0023", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("keywords cannot contain escape sequences")},
	LegacyOctalLiteralMayNotBeBigInt: {Code: "E0032", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("legacy octal literal may not be BigInt")},
	LegacyOctalLiteralMayNotContainUnderscores: {Code: "E0152", Severity: SeverityError,
		Args:     spans("underscores"),
		Messages: one("legacy octal literals may not contain underscores")},
	NumberLiteralContainsConsecutiveUnderscores: {Code: "E0028", Severity: SeverityError,
		Args:     spans("underscores"),
		Messages: one("number literal contains consecutive underscores")},
	NumberLiteralContainsTrailingUnderscores: {Code: "E0029", Severity: SeverityError,
		Args:     spans("underscores"),
		Messages: one("number literal contains trailing underscore(s)")},
	OctalLiteralMayNotHaveDecimal: {Code: "E0031", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("octal literal may not have decimal")},
	OctalLiteralMayNotHaveExponent: {Code: "E0030", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("octal literal may not have exponent")},
	UnclosedBlockComment: {Code: "E0037", Severity: SeverityError,
		Args:     spans("comment_open"),
		Messages: one("unclosed block comment")},
	UnclosedIdentifierEscapeSequence: {Code: "E0038", Severity: SeverityError,
		Args:     spans("escape_sequence"),
		Messages: one("unclosed identifier escape sequence")},
	UnclosedJSXStringLiteral: {Code: "E0181", Severity: SeverityError,
		Args:     spans("string_literal_begin"),
		Messages: one("missing end of string; 'string' omitted from token")},
	UnclosedRegexpLiteral: {Code: "E0039", Severity: SeverityError,
		Args:     spans("regexp_literal"),
		Messages: one("unclosed regexp literal")},
	UnclosedStringLiteral: {Code: "E0040", Severity: SeverityError,
		Args:     spans("string_literal"),
		Messages: one("unclosed string literal")},
	UnclosedTemplate: {Code: "E0041", Severity: SeverityError,
		Args:     spans("incomplete_template"),
		Messages: one("unclosed template")},
	UnexpectedBackslashInIdentifier: {Code: "E0043", Severity: SeverityError,
		Args:     spans("backslash"),
		Messages: one("unexpected '\\' in identifier")},
	UnexpectedCharactersInBinaryNumber: {Code: "E0046", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("binary number literal has no digits")},
	UnexpectedCharactersInHexNumber: {Code: "E0048", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("unexpected characters in hex literal")},
	UnexpectedCharactersInNumber: {Code: "E0044", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("unexpected characters in number literal")},
	UnexpectedCharactersInOctalNumber: {Code: "E0047", Severity: SeverityError,
		Args:     spans("characters"),
		Messages: one("unexpected characters in octal literal")},
	UnexpectedControlCharacter: {Code: "E0045", Severity: SeverityError,
		Args:     spans("character"),
		Messages: one("unexpected control character")},
	UnexpectedHashCharacter: {Code: "E0052", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("unexpected '#'")},
	UnopenedBlockComment: {Code: "E0210", Severity: SeverityError,
		Args:     spans("comment_close"),
		Messages: one("unopened block comment")},

	AdjacentJSXWithoutParent: {Code: "E0189", Severity: SeverityError,
		Args:     spans("begin", "begin_of_second_element", "end"),
		Messages: one("missing '<>' and '</>' to enclose multiple children")},
	AssignmentMakesConditionConstant: {Code: "E0188", Severity: SeverityWarning,
		Args:     spans("assignment_operator"),
		Messages: one("'=' changes variables; to compare, use '===' instead")},
	AwaitFollowedByArrowFunction: {Code: "E0178", Severity: SeverityError,
		Args:     spans("await_operator"),
		Messages: one("'await' cannot be followed by an arrow function; use 'async' instead")},
	AwaitOperatorOutsideAsync: {Code: "E0162", Severity: SeverityError,
		Args:     spans("await_operator"),
		Messages: one("'await' is only allowed in async functions")},
	CommaNotAllowedAfterSpreadParameter: {Code: "E0070", Severity: SeverityError,
		Args:     spans("comma", "spread"),
		Messages: one("commas are not allowed after spread parameter")},
	EqualsDoesNotDistributeOverOr: {Code: "E0190", Severity: SeverityWarning,
		Args: spans("or_operator", "equals_operator"),
		Messages: []Message{
			{Format: "missing comparison; '===' does not extend to the right side of '||'", Arg: 0},
			{Format: "'=' here", Arg: 1},
		}},
	ExpectedExpressionBeforeNewline: {Code: "E0014", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("expected expression before newline")},
	ExpectedExpressionBeforeSemicolon: {Code: "E0015", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("expected expression before semicolon")},
	ExtraCommaNotAllowedBetweenArguments: {Code: "E0068", Severity: SeverityError,
		Args:     spans("comma"),
		Messages: one("extra ',' is not allowed between function call arguments")},
	IndexingRequiresExpression: {Code: "E0075", Severity: SeverityError,
		Args:     spans("squares"),
		Messages: one("indexing requires an expression")},
	InvalidExpressionLeftOfAssignment: {Code: "E0020", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("invalid expression left of assignment")},
	MisleadingCommaOperatorInConditionalStatement: {Code: "E0451", Severity: SeverityWarning,
		Args:     spans("comma"),
		Messages: one("misleading use of ',' operator in conditional statement")},
	MisleadingCommaOperatorInIndexOperation: {Code: "E0450", Severity: SeverityWarning,
		Args:     spans("comma", "left_square"),
		Messages: one("misleading use of ',' operator in index")},
	MissingArrowFunctionParameterList: {Code: "E0105", Severity: SeverityError,
		Args:     spans("arrow"),
		Messages: one("missing parameters for arrow function")},
	MissingArrowOperatorInArrowFunction: {Code: "E0176", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing arrow operator for arrow function")},
	MissingColonInConditionalExpression: {Code: "E0146", Severity: SeverityError,
		Args: spans("expected_colon", "question"),
		Messages: []Message{
			{Format: "missing ':' in conditional expression", Arg: 0},
			{Format: "'?' creates a conditional expression", Arg: 1},
		}},
	MissingCommaBetweenObjectLiteralEntries: {Code: "E0025", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing ',' between object literal entries")},
	MissingExpressionBetweenParentheses: {Code: "E0078", Severity: SeverityError,
		Args:     spans("left_paren_to_right_paren"),
		Messages: one("missing expression between parentheses")},
	MissingKeyForObjectEntry: {Code: "E0154", Severity: SeverityError,
		Args:     spans("expression"),
		Messages: one("unexpected expression; missing key for object entry")},
	MissingOperandForOperator: {Code: "E0026", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing operand for operator")},
	MissingOperatorBetweenExpressionAndArrowFunction: {Code: "E0063", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing operator between expression and arrow function")},
	MissingParenthesesAroundSelfInvokedFunction: {Code: "E0211", Severity: SeverityError,
		Args: spans("invocation", "func_start"),
		Messages: []Message{
			{Format: "missing parentheses around self-invoked function", Arg: 0},
			{Format: "function starts here", Arg: 1},
		}},
	MissingParenthesesAroundUnaryLhsOfExponent: {Code: "E0194", Severity: SeverityError,
		Args: spans("unary_expression", "exponent_operator"),
		Messages: []Message{
			{Format: "missing parentheses around operand of unary expression; exponentiation does not apply", Arg: 0},
			{Format: "'**' here", Arg: 1},
		}},
	MissingPropertyNameForDotOperator: {Code: "E0142", Severity: SeverityError,
		Args:     spans("dot"),
		Messages: one("missing property name after '.' operator")},
	MissingValueForObjectLiteralEntry: {Code: "E0083", Severity: SeverityError,
		Args:     spans("key"),
		Messages: one("missing value for object property")},
	NewlineNotAllowedBetweenAsyncAndParameterList: {Code: "E0163", Severity: SeverityError,
		Args: spans("async", "arrow"),
		Messages: []Message{
			{Format: "newline is not allowed between 'async' and arrow function parameter list", Arg: 0},
			{Format: "arrow is here", Arg: 1},
		}},
	PrivatePropertiesAreNotAllowedInObjectLiterals: {Code: "E0156", Severity: SeverityError,
		Args:     spans("private_identifier"),
		Messages: one("private properties are not allowed in object literals")},
	RedundantAwait: {Code: "E0266", Severity: SeverityWarning,
		Args:     spans("await_operator"),
		Messages: one("redundant 'await'")},
	RedundantDeleteStatementOnVariable: {Code: "E0086", Severity: SeverityWarning,
		Args:     spans("delete_expression"),
		Messages: one("redundant delete statement on variable")},
	UnexpectedQuestionInExpression: {Code: "E0307", Severity: SeverityError,
		Args:     spans("question"),
		Messages: one("unexpected '?'")},
	UnmatchedIndexingBracket: {Code: "E0055", Severity: SeverityError,
		Args:     spans("left_square"),
		Messages: one("unmatched indexing bracket")},
	UnmatchedParenthesis: {Code: "E0056", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("unmatched parenthesis")},
	UnmatchedRightCurly: {Code: "E0143", Severity: SeverityError,
		Args:     spans("right_curly"),
		Messages: one("unmatched '}'")},

	AsyncStaticMethod: {Code: "E0269", Severity: SeverityError,
		Args:     spans("async_static"),
		Messages: one("'async static' is not allowed; write 'static async' instead")},
	AccessSpecifierMustPrecedeOtherModifiers: {Code: "E0386", Severity: SeverityError,
		Args: spans("second_modifier", "first_modifier"),
		Messages: []Message{
			{Format: "access specifier must precede other modifiers", Arg: 0},
			{Format: "modifier here", Arg: 1},
		}},
	CStyleForLoopIsMissingThirdComponent: {Code: "E0093", Severity: SeverityError,
		Args:     spans("expected_last_component", "existing_semicolon"),
		Messages: one("C-style for loop is missing its third component")},
	CannotAssignToLoopVariableInForOfOrInLoop: {Code: "E0173", Severity: SeverityError,
		Args:     spans("equal_token"),
		Messages: one("cannot assign to loop variable in for of/in loop")},
	CannotDeclareAwaitInAsyncFunction: {Code: "E0069", Severity: SeverityError,
		Args:     spans("name"),
		Messages: one("cannot declare 'await' inside async function")},
	CannotDeclareClassNamedAwaitInAsyncFunction: {Code: "E0385", Severity: SeverityError,
		Args:     spans("name"),
		Messages: one("cannot declare a class named 'await' inside async function")},
	CannotDeclareClassNamedLet: {Code: "E0007", Severity: SeverityError,
		Args:     spans("name"),
		Messages: one("classes cannot be named 'let'")},
	CannotDeclareVariableNamedLetWithLet: {Code: "E0008", Severity: SeverityError,
		Args:     spans("name"),
		Messages: one("let statement cannot declare variables named 'let'")},
	CannotDeclareVariableWithKeywordName: {Code: "E0124", Severity: SeverityError,
		Args:     spans("keyword"),
		Messages: one("cannot declare variable with keyword name")},
	CannotDeclareYieldInGeneratorFunction: {Code: "E0071", Severity: SeverityError,
		Args:     spans("name"),
		Messages: one("cannot declare 'yield' inside generator function")},
	CannotImportFromUnquotedModule: {Code: "E0235", Severity: SeverityError,
		Args:     spans("module_name"),
		Messages: one("missing quotes around module name")},
	CannotImportLet: {Code: "E0010", Severity: SeverityError,
		Args:     spans("import_name"),
		Messages: one("cannot import 'let'")},
	CannotImportVariableNamedKeyword: {Code: "E0145", Severity: SeverityError,
		Args:     spans("import_name"),
		Messages: one("cannot import variable named keyword")},
	CannotUpdateVariableDuringDeclaration: {Code: "E0136", Severity: SeverityError,
		Args: spans("updating_operator", "declaring_token"),
		Messages: []Message{
			{Format: "cannot update variable with '{0}' while declaring it", Arg: 0},
			{Format: "remove '{0}' to update an existing variable", Arg: 1},
		}},
	CatchWithoutTry: {Code: "E0117", Severity: SeverityError,
		Args:     spans("catch_token"),
		Messages: one("unexpected 'catch' without 'try'")},
	ClassStatementNotAllowedInBody: {Code: "E0149", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "kind_of_statement", Type: ArgStatementKind},
			{Name: "expected_body", Type: ArgRange},
			{Name: "class_keyword", Type: ArgRange},
		},
		Messages: []Message{
			{Format: "missing body for {0:headlinese}", Arg: 1},
			{Format: "a class statement is not allowed as the body of {0:singular}", Arg: 2},
		}},
	CommaNotAllowedBetweenClassMethods: {Code: "E0209", Severity: SeverityError,
		Args:     spans("unexpected_comma"),
		Messages: one("commas are not allowed between class methods")},
	DepthLimitExceeded: {Code: "E0203", Severity: SeverityError,
		Args:     spans("token"),
		Messages: one("depth limit exceeded")},
	DuplicatedCasesInSwitchStatement: {Code: "E0347", Severity: SeverityWarning,
		Args: spans("first_switch_case", "duplicated_switch_case"),
		Messages: []Message{
			{Format: "duplicated case clause in switch statement", Arg: 1},
			{Format: "this case will run instead", Arg: 0},
		}},
	ElseHasNoIf: {Code: "E0065", Severity: SeverityError,
		Args:     spans("else_token"),
		Messages: one("'else' has no corresponding 'if'")},
	ExpectedAsBeforeImportedNamespaceAlias: {Code: "E0126", Severity: SeverityError,
		Args:     spans("star_through_alias_token", "alias", "star_token"),
		Messages: one("expected 'as' between '{1}' and '{2}'")},
	ExpectedFromAndModuleSpecifier: {Code: "E0129", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("expected 'from \"name_of_module.mjs\"'")},
	ExpectedFromBeforeModuleSpecifier: {Code: "E0128", Severity: SeverityError,
		Args:     spans("module_specifier"),
		Messages: one("expected 'from' before module specifier")},
	ExpectedExpressionForSwitchCase: {Code: "E0140", Severity: SeverityError,
		Args:     spans("case_and_expression"),
		Messages: one("expected expression after 'case'")},
	ExpectedLeftCurly: {Code: "E0107", Severity: SeverityError,
		Args:     spans("expected_left_curly"),
		Messages: one("expected '{'")},
	ExpectedParenthesesAroundDoWhileCondition: {Code: "E0084", Severity: SeverityError,
		Args:     spans("condition"),
		Messages: one("do-while statement needs parentheses around condition")},
	ExpectedParenthesesAroundIfCondition: {Code: "E0017", Severity: SeverityError,
		Args:     spans("condition"),
		Messages: one("if statement needs parentheses around condition")},
	ExpectedParenthesesAroundSwitchCondition: {Code: "E0091", Severity: SeverityError,
		Args:     spans("condition"),
		Messages: one("switch statement needs parentheses around condition")},
	ExpectedParenthesesAroundWhileCondition: {Code: "E0087", Severity: SeverityError,
		Args:     spans("condition"),
		Messages: one("while statement needs parentheses around condition")},
	ExpectedParenthesesAroundWithExpression: {Code: "E0089", Severity: SeverityError,
		Args:     spans("expression"),
		Messages: one("with statement needs parentheses around expression")},
	ExpectedParenthesisAroundDoWhileCondition: {Code: "E0085", Severity: SeverityError,
		Args:     []ArgSpec{{Name: "where", Type: ArgRange}, {Name: "token", Type: ArgChar}},
		Messages: one("do-while statement is missing '{1}' around condition")},
	ExpectedParenthesisAroundIfCondition: {Code: "E0018", Severity: SeverityError,
		Args:     []ArgSpec{{Name: "where", Type: ArgRange}, {Name: "token", Type: ArgChar}},
		Messages: one("if statement is missing '{1}' around condition")},
	ExpectedParenthesisAroundSwitchCondition: {Code: "E0092", Severity: SeverityError,
		Args:     []ArgSpec{{Name: "where", Type: ArgRange}, {Name: "token", Type: ArgChar}},
		Messages: one("switch statement is missing '{1}' around condition")},
	ExpectedParenthesisAroundWhileCondition: {Code: "E0088", Severity: SeverityError,
		Args:     []ArgSpec{{Name: "where", Type: ArgRange}, {Name: "token", Type: ArgChar}},
		Messages: one("while statement is missing '{1}' around condition")},
	ExpectedParenthesisAroundWithExpression: {Code: "E0090", Severity: SeverityError,
		Args:     []ArgSpec{{Name: "where", Type: ArgRange}, {Name: "token", Type: ArgChar}},
		Messages: one("with statement is missing '{1}' around expression")},
	ExpectedVariableNameForCatch: {Code: "E0135", Severity: SeverityError,
		Args:     spans("unexpected_token"),
		Messages: one("expected variable name for 'catch'")},
	ExpectedVariableNameForImportAs: {Code: "E0175", Severity: SeverityError,
		Args:     spans("unexpected_token"),
		Messages: one("expected variable name for 'import'-'as'")},
	ExportingRequiresCurlies: {Code: "E0066", Severity: SeverityError,
		Args:     spans("names"),
		Messages: one("exporting requires '{' and '}'")},
	ExportingRequiresDefault: {Code: "E0067", Severity: SeverityError,
		Args:     spans("expression"),
		Messages: one("exporting requires 'default'")},
	FinallyWithoutTry: {Code: "E0118", Severity: SeverityError,
		Args:     spans("finally_token"),
		Messages: one("unexpected 'finally' without 'try'")},
	FunctionStatementNotAllowedInBody: {Code: "E0148", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "kind_of_statement", Type: ArgStatementKind},
			{Name: "expected_body", Type: ArgRange},
			{Name: "function_keywords", Type: ArgRange},
		},
		Messages: []Message{
			{Format: "missing body for {0:headlinese}", Arg: 1},
			{Format: "a function statement is not allowed as the body of {0:singular}", Arg: 2},
		}},
	FunctionsOrMethodsShouldNotHaveArrowOperator: {Code: "E0174", Severity: SeverityError,
		Args:     spans("arrow_operator"),
		Messages: one("functions/methods should not have '=>'")},
	GeneratorFunctionStarBelongsBeforeName: {Code: "E0133", Severity: SeverityError,
		Args:     spans("function_name", "star"),
		Messages: one("generator function '*' belongs before function name")},
	ImportCannotHaveDeclareKeyword: {Code: "E0360", Severity: SeverityError,
		Args:     spans("declare_keyword"),
		Messages: one("cannot use 'declare' keyword with 'import'")},
	InDisallowedInCStyleForLoop: {Code: "E0108", Severity: SeverityError,
		Args:     spans("in_token"),
		Messages: one("'in' disallowed in C-style for loop initializer")},
	InvalidBreak: {Code: "E0200", Severity: SeverityError,
		Args:     spans("break_statement"),
		Messages: one("invalid use of 'break'; it can only be used inside of a loop or switch")},
	InvalidContinue: {Code: "E0201", Severity: SeverityError,
		Args:     spans("continue_statement"),
		Messages: one("invalid use of 'continue'; it can only be used inside of a loop")},
	InvalidParameter: {Code: "E0151", Severity: SeverityError,
		Args:     spans("parameter"),
		Messages: one("invalid function parameter")},
	LabelNamedAwaitNotAllowedInAsyncFunction: {Code: "E0206", Severity: SeverityError,
		Args:     spans("await", "colon"),
		Messages: one("label named 'await' not allowed in async function")},
	LabelNamedYieldNotAllowedInGeneratorFunction: {Code: "E0384", Severity: SeverityError,
		Args:     spans("yield", "colon"),
		Messages: one("label named 'yield' not allowed in generator function")},
	LetWithNoBindings: {Code: "E0024", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("let with no bindings")},
	LexicalDeclarationNotAllowedInBody: {Code: "E0150", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "kind_of_statement", Type: ArgStatementKind},
			{Name: "expected_body", Type: ArgRange},
			{Name: "declaring_keyword", Type: ArgRange},
		},
		Messages: []Message{
			{Format: "missing body for {0:headlinese}", Arg: 1},
			{Format: "a lexical declaration is not allowed as the body of {0:singular}", Arg: 2},
		}},
	MethodsShouldNotUseFunctionKeyword: {Code: "E0072", Severity: SeverityError,
		Args:     spans("function_token"),
		Messages: one("methods should not use the 'function' keyword")},
	MismatchedJSXTags: {Code: "E0187", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "opening_tag_name", Type: ArgRange},
			{Name: "closing_tag_name", Type: ArgRange},
			{Name: "opening_tag_name_pretty", Type: ArgString},
		},
		Messages: []Message{
			{Format: "mismatched JSX tags; expected '</{2}>'", Arg: 1},
			{Format: "opening '<{2}>' tag here", Arg: 0},
		}},
	MissingBodyForCatchClause: {Code: "E0119", Severity: SeverityError,
		Args:     spans("catch_token"),
		Messages: one("missing body for catch clause")},
	MissingBodyForClass: {Code: "E0111", Severity: SeverityError,
		Args:     spans("class_keyword_and_name_and_heritage"),
		Messages: one("missing body for class")},
	MissingBodyForDoWhileStatement: {Code: "E0101", Severity: SeverityError,
		Args:     spans("do_token"),
		Messages: one("missing body for do-while loop")},
	MissingBodyForFinallyClause: {Code: "E0121", Severity: SeverityError,
		Args:     spans("finally_token"),
		Messages: one("missing body for finally clause")},
	MissingBodyForForStatement: {Code: "E0094", Severity: SeverityError,
		Args:     spans("for_and_header"),
		Messages: one("missing body for 'for' loop")},
	MissingBodyForIfStatement: {Code: "E0064", Severity: SeverityError,
		Args:     spans("expected_body"),
		Messages: one("missing body for 'if' statement")},
	MissingBodyForSwitchStatement: {Code: "E0106", Severity: SeverityError,
		Args:     spans("switch_and_condition"),
		Messages: one("missing body for 'switch' statement")},
	MissingBodyForTryStatement: {Code: "E0120", Severity: SeverityError,
		Args:     spans("try_token"),
		Messages: one("missing body for try statement")},
	MissingBodyForTypeScriptInterface: {Code: "E0245", Severity: SeverityError,
		Args:     spans("interface_keyword_and_name_and_heritage"),
		Messages: one("missing body for TypeScript interface")},
	MissingBodyForTypeScriptNamespace: {Code: "E0356", Severity: SeverityError,
		Args:     spans("expected_body"),
		Messages: one("missing body for TypeScript namespace")},
	MissingBodyForWhileStatement: {Code: "E0104", Severity: SeverityError,
		Args:     spans("while_and_condition"),
		Messages: one("missing body for while loop")},
	MissingCatchOrFinallyForTryStatement: {Code: "E0122", Severity: SeverityError,
		Args: spans("expected_catch_or_finally", "try_token"),
		Messages: []Message{
			{Format: "missing catch or finally clause for try statement", Arg: 0},
			{Format: "try statement starts here", Arg: 1},
		}},
	MissingCatchVariableBetweenParentheses: {Code: "E0130", Severity: SeverityError,
		Args:     spans("left_paren_to_right_paren"),
		Messages: one("missing catch variable name between parentheses")},
	MissingCommaBetweenVariableDeclarations: {Code: "E0132", Severity: SeverityError,
		Args:     spans("expected_comma"),
		Messages: one("missing ',' between variable declarations")},
	MissingConditionForIfStatement: {Code: "E0138", Severity: SeverityError,
		Args:     spans("if_keyword"),
		Messages: one("missing condition for if statement")},
	MissingConditionForSwitchStatement: {Code: "E0137", Severity: SeverityError,
		Args:     spans("switch_keyword"),
		Messages: one("missing condition for switch statement")},
	MissingConditionForWhileStatement: {Code: "E0139", Severity: SeverityError,
		Args:     spans("while_keyword"),
		Messages: one("missing condition for while statement")},
	MissingDotsForAttributeSpread: {Code: "E0186", Severity: SeverityError,
		Args:     spans("expected_dots"),
		Messages: one("missing '...' in JSX attribute spread")},
	MissingEqualAfterVariable: {Code: "E0202", Severity: SeverityError,
		Args:     spans("expected_equal"),
		Messages: one("missing '=' after variable")},
	MissingExponentForExponentOperator: {Code: "E0195", Severity: SeverityError,
		Args:     spans("exponent_operator"),
		Messages: one("missing exponent for '**' operator")},
	MissingForLoopHeader: {Code: "E0096", Severity: SeverityError,
		Args:     spans("for_token"),
		Messages: one("missing header and body for 'for' loop")},
	MissingForLoopRhsOrComponentsAfterDeclaration: {Code: "E0098", Severity: SeverityError,
		Args:     spans("header", "for_token"),
		Messages: one("for loop needs an iterable, or condition and update clauses")},
	MissingForLoopRhsOrComponentsAfterExpression: {Code: "E0097", Severity: SeverityError,
		Args:     spans("header", "for_token"),
		Messages: one("for loop needs an iterable, or condition and update clauses")},
	MissingFunctionBody: {Code: "E0172", Severity: SeverityError,
		Args:     spans("expected_body"),
		Messages: one("missing body for function")},
	MissingFunctionParameterList: {Code: "E0073", Severity: SeverityError,
		Args:     spans("expected_parameter_list"),
		Messages: one("missing function parameter list")},
	MissingInitializerInConstDeclaration: {Code: "E0205", Severity: SeverityError,
		Args:     spans("variable_name"),
		Messages: one("missing initializer in const declaration")},
	MissingNameInClassStatement: {Code: "E0080", Severity: SeverityError,
		Args:     spans("class_keyword"),
		Messages: one("missing name of class")},
	MissingNameInFunctionStatement: {Code: "E0061", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing name in function statement")},
	MissingNameOfExportedClass: {Code: "E0081", Severity: SeverityError,
		Args:     spans("class_keyword"),
		Messages: one("missing name of exported class")},
	MissingNameOfExportedFunction: {Code: "E0079", Severity: SeverityError,
		Args:     spans("function_keyword"),
		Messages: one("missing name of exported function")},
	MissingNameOrParenthesesForFunction: {Code: "E0062", Severity: SeverityError,
		Args:     spans("where", "function"),
		Messages: one("missing name or parentheses for function")},
	MissingSemicolonAfterField: {Code: "E0223", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon after field")},
	MissingSemicolonAfterStatement: {Code: "E0027", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("missing semicolon after statement")},
	MissingSemicolonBetweenForLoopConditionAndUpdate: {Code: "E0100", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon between condition and update parts of for loop")},
	MissingSemicolonBetweenForLoopInitAndCondition: {Code: "E0099", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon between init and condition parts of for loop")},
	MissingTokenAfterExport: {Code: "E0113", Severity: SeverityError,
		Args:     spans("export_token"),
		Messages: one("incomplete export; expected 'export default ...' or 'export {name}' or 'export * from ...' or 'export class' or 'export function' or 'export let'")},
	MissingVariableNameInDeclaration: {Code: "E0123", Severity: SeverityError,
		Args:     spans("equal_token"),
		Messages: one("missing variable name")},
	MissingWhileAndConditionForDoWhileStatement: {Code: "E0103", Severity: SeverityError,
		Args: spans("do_token", "expected_while"),
		Messages: []Message{
			{Format: "missing 'while (condition)' for do-while statement", Arg: 1},
			{Format: "do-while statement starts here", Arg: 0},
		}},
	ReturnStatementReturnsNothing: {Code: "E0179", Severity: SeverityWarning,
		Args:     spans("return_keyword"),
		Messages: one("'return' statement returns nothing (undefined)")},
	StatementBeforeFirstSwitchCase: {Code: "E0198", Severity: SeverityError,
		Args:     spans("unexpected_statement"),
		Messages: one("unexpected statement before first switch case, expected 'case' or 'default'")},
	StrayCommaInLetStatement: {Code: "E0036", Severity: SeverityError,
		Args:     spans("where"),
		Messages: one("stray comma in let statement")},
	StrayCommaInParameter: {Code: "E0180", Severity: SeverityError,
		Args:     spans("comma"),
		Messages: one("stray comma in function parameter")},
	UnclosedClassBlock: {Code: "E0199", Severity: SeverityError,
		Args:     spans("block_open"),
		Messages: one("unclosed class; expected '}' by end of file")},
	UnclosedCodeBlock: {Code: "E0134", Severity: SeverityError,
		Args:     spans("block_open"),
		Messages: one("unclosed code block; expected '}' by end of file")},
	UnclosedInterfaceBlock: {Code: "E0215", Severity: SeverityError,
		Args:     spans("block_open"),
		Messages: one("unclosed interface; expected '}' by end of file")},
	UnclosedObjectLiteral: {Code: "E0161", Severity: SeverityError,
		Args: spans("object_open", "expected_object_close"),
		Messages: []Message{
			{Format: "unclosed object literal; expected '}'", Arg: 1},
			{Format: "object literal started here", Arg: 0},
		}},
	UnexpectedCaseOutsideSwitchStatement: {Code: "E0115", Severity: SeverityError,
		Args:     spans("case_token"),
		Messages: one("unexpected 'case' outside switch statement")},
	UnexpectedDefaultOutsideSwitchStatement: {Code: "E0116", Severity: SeverityError,
		Args:     spans("default_token"),
		Messages: one("unexpected 'default' outside switch statement")},
	UnexpectedSemicolonInCStyleForLoop: {Code: "E0102", Severity: SeverityError,
		Args:     spans("semicolon"),
		Messages: one("C-style for loops have only three semicolon-separated components")},
	UnexpectedSemicolonInForInLoop: {Code: "E0110", Severity: SeverityError,
		Args:     spans("semicolon"),
		Messages: one("for-in loop expression cannot have semicolons")},
	UnexpectedSemicolonInForOfLoop: {Code: "E0109", Severity: SeverityError,
		Args:     spans("semicolon"),
		Messages: one("for-of loop expression cannot have semicolons")},
	UnexpectedToken: {Code: "E0054", Severity: SeverityError,
		Args:     spans("token"),
		Messages: one("unexpected token")},
	UnexpectedTokenAfterExport: {Code: "E0112", Severity: SeverityError,
		Args:     spans("unexpected_token"),
		Messages: one("unexpected token in export; expected 'export default ...' or 'export {name}' or 'export * from ...' or 'export class' or 'export function' or 'export let'")},
	UnexpectedTokenInVariableDeclaration: {Code: "E0114", Severity: SeverityError,
		Args:     spans("unexpected_token"),
		Messages: one("unexpected token in variable declaration; expected variable name")},

	DeclareAbstractClassNotAllowedInJavaScript: {Code: "E0340", Severity: SeverityError,
		Args:     spans("declare_keyword"),
		Messages: one("'declare abstract class' is not allowed in JavaScript")},
	DeclareClassNotAllowedInJavaScript: {Code: "E0339", Severity: SeverityError,
		Args:     spans("declare_keyword"),
		Messages: one("'declare class' is not allowed in JavaScript")},
	DeclareFunctionNotAllowedInJavaScript: {Code: "E0352", Severity: SeverityError,
		Args:     spans("declare_keyword"),
		Messages: one("'declare function' is not allowed in JavaScript")},
	DeclareVarNotAllowedInJavaScript: {Code: "E0350", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "declare_keyword", Type: ArgRange},
			{Name: "declaring_token", Type: ArgVarKind},
		},
		Messages: one("'declare {1}' is not allowed in JavaScript")},
	JSXNotAllowedInJavaScript: {Code: "E0177", Severity: SeverityError,
		Args:     spans("jsx_start"),
		Messages: one("React/JSX is not allowed in vanilla JavaScript code")},
	JSXNotAllowedInTypeScript: {Code: "E0306", Severity: SeverityError,
		Args:     spans("jsx_start"),
		Messages: one("React/JSX is not allowed in TypeScript code")},
	TypeScriptAbstractClassNotAllowedInJavaScript: {Code: "E0244", Severity: SeverityError,
		Args:     spans("abstract_keyword"),
		Messages: one("abstract classes are not allowed in JavaScript")},
	TypeScriptAsTypeAssertionNotAllowedInJavaScript: {Code: "E0281", Severity: SeverityError,
		Args:     spans("as_keyword"),
		Messages: one("TypeScript 'as' type assertions are not allowed in JavaScript")},
	TypeScriptClassImplementsNotAllowedInJavaScript: {Code: "E0247", Severity: SeverityError,
		Args:     spans("implements_keyword"),
		Messages: one("TypeScript 'implements' is not allowed in JavaScript")},
	TypeScriptEnumIsNotAllowedInJavaScript: {Code: "E0127", Severity: SeverityError,
		Args:     spans("enum_keyword"),
		Messages: one("TypeScript's 'enum' feature is not allowed in JavaScript")},
	TypeScriptExportEqualNotAllowedInJavaScript: {Code: "E0370", Severity: SeverityError,
		Args: spans("equal", "export_keyword"),
		Messages: one("'export =' is not allowed; write 'export default' or 'module.exports =' (CommonJS) instead")},
	TypeScriptGenericsNotAllowedInJavaScript: {Code: "E0233", Severity: SeverityError,
		Args:     spans("opening_less"),
		Messages: one("TypeScript generics are not allowed in JavaScript code")},
	TypeScriptImportAliasNotAllowedInJavaScript: {Code: "E0274", Severity: SeverityError,
		Args:     spans("import_keyword", "equal"),
		Messages: one("TypeScript import aliases are not allowed in JavaScript")},
	TypeScriptInterfacesNotAllowedInJavaScript: {Code: "E0213", Severity: SeverityError,
		Args:     spans("interface_keyword"),
		Messages: one("TypeScript's 'interface' feature is not allowed in JavaScript code")},
	TypeScriptNamespacesNotAllowedInJavaScript: {Code: "E0273", Severity: SeverityError,
		Args:     spans("namespace_keyword"),
		Messages: one("TypeScript namespaces are not allowed in JavaScript")},
	TypeScriptNonNullAssertionNotAllowedInJavaScript: {Code: "E0261", Severity: SeverityError,
		Args:     spans("bang"),
		Messages: one("TypeScript non-null assertions are not allowed in JavaScript")},
	TypeScriptOptionalParametersNotAllowedInJavaScript: {Code: "E0308", Severity: SeverityError,
		Args:     spans("question"),
		Messages: one("TypeScript optional parameters are not allowed in JavaScript")},
	TypeScriptOptionalPropertiesNotAllowedInJavaScript: {Code: "E0228", Severity: SeverityError,
		Args:     spans("question"),
		Messages: one("TypeScript optional properties are not allowed in JavaScript code")},
	TypeScriptParameterPropertyNotAllowedInJavaScript: {Code: "E0371", Severity: SeverityError,
		Args:     spans("modifier"),
		Messages: one("TypeScript parameter properties are not allowed in JavaScript")},
	TypeScriptPrivateNotAllowedInJavaScript: {Code: "E0222", Severity: SeverityError,
		Args:     spans("specifier"),
		Messages: one("'private' is not allowed in JavaScript")},
	TypeScriptProtectedNotAllowedInJavaScript: {Code: "E0234", Severity: SeverityError,
		Args:     spans("specifier"),
		Messages: one("'protected' is not allowed in JavaScript")},
	TypeScriptPublicNotAllowedInJavaScript: {Code: "E0289", Severity: SeverityError,
		Args:     spans("specifier"),
		Messages: one("'public' is not allowed in JavaScript")},
	TypeScriptReadonlyFieldsNotAllowedInJavaScript: {Code: "E0230", Severity: SeverityError,
		Args:     spans("readonly_keyword"),
		Messages: one("TypeScript's 'readonly' feature is not allowed in JavaScript code")},
	TypeScriptSatisfiesNotAllowedInJavaScript: {Code: "E0364", Severity: SeverityError,
		Args:     spans("satisfies_keyword"),
		Messages: one("TypeScript 'satisfies' is not allowed in JavaScript")},
	TypeScriptTypeAliasNotAllowedInJavaScript: {Code: "E0267", Severity: SeverityError,
		Args:     spans("type_keyword"),
		Messages: one("TypeScript types are not allowed in JavaScript")},
	TypeScriptTypeAnnotationsNotAllowedInJavaScript: {Code: "E0224", Severity: SeverityError,
		Args:     spans("type_colon"),
		Messages: one("TypeScript type annotations are not allowed in JavaScript code")},
	TypeScriptTypeExportNotAllowedInJavaScript: {Code: "E0278", Severity: SeverityError,
		Args:     spans("type_keyword"),
		Messages: one("TypeScript type exports are not allowed in JavaScript")},
	TypeScriptTypeImportNotAllowedInJavaScript: {Code: "E0270", Severity: SeverityError,
		Args:     spans("type_keyword"),
		Messages: one("TypeScript type imports are not allowed in JavaScript")},

	AbstractFieldCannotHaveInitializer: {Code: "E0295", Severity: SeverityError,
		Args: spans("equal", "abstract_keyword"),
		Messages: []Message{
			{Format: "abstract fields cannot have default values", Arg: 0},
			{Format: "field marked abstract here", Arg: 1},
		}},
	AbstractMethodsCannotBeAsync: {Code: "E0298", Severity: SeverityError,
		Args:     spans("async_keyword", "abstract_keyword"),
		Messages: one("abstract methods cannot be marked 'async'")},
	AbstractMethodsCannotBeGenerators: {Code: "E0299", Severity: SeverityError,
		Args:     spans("star", "abstract_keyword"),
		Messages: one("abstract methods cannot be marked as a generator")},
	AbstractMethodsCannotContainBodies: {Code: "E0294", Severity: SeverityError,
		Args:     spans("body_start"),
		Messages: one("abstract methods cannot contain a body")},
	AbstractPropertyNotAllowedInInterface: {Code: "E0297", Severity: SeverityError,
		Args:     spans("abstract_keyword"),
		Messages: one("abstract properties are not allowed in interfaces")},
	AbstractPropertyNotAllowedInNonAbstractClass: {Code: "E0296", Severity: SeverityError,
		Args: spans("abstract_keyword", "class_keyword"),
		Messages: []Message{
			{Format: "abstract properties are only allowed in abstract classes", Arg: 0},
			{Format: "class is not marked abstract", Arg: 1},
		}},
	CommaNotAllowedBeforeFirstGenericParameter: {Code: "E0262", Severity: SeverityError,
		Args:     spans("unexpected_comma"),
		Messages: one("leading commas are not allowed in generic parameter lists")},
	DeclareClassFieldsCannotHaveInitializers: {Code: "E0335", Severity: SeverityError,
		Args:     spans("equal"),
		Messages: one("'declare class' fields cannot be initialized")},
	DeclareClassMethodsCannotBeAsync: {Code: "E0338", Severity: SeverityError,
		Args:     spans("async_keyword"),
		Messages: one("'declare class' methods cannot be marked 'async'")},
	DeclareClassMethodsCannotBeGenerators: {Code: "E0337", Severity: SeverityError,
		Args:     spans("star"),
		Messages: one("'declare class' methods cannot be marked as a generator")},
	DeclareClassMethodsCannotContainBodies: {Code: "E0333", Severity: SeverityError,
		Args:     spans("body_start"),
		Messages: one("'declare class' methods cannot contain a body")},
	DeclareFunctionCannotBeAsync: {Code: "E0354", Severity: SeverityError,
		Args:     spans("async_keyword"),
		Messages: one("'declare function' cannot be marked 'async'")},
	DeclareFunctionCannotBeGenerator: {Code: "E0355", Severity: SeverityError,
		Args:     spans("star"),
		Messages: one("'declare function' cannot be marked as a generator")},
	DeclareFunctionCannotHaveBody: {Code: "E0353", Severity: SeverityError,
		Args: spans("body_start", "declare_keyword"),
		Messages: []Message{
			{Format: "'declare function' cannot have a body", Arg: 0},
			{Format: "'declare function' here", Arg: 1},
		}},
	DeclareKeywordIsNotAllowedInsideDeclareNamespace: {Code: "E0358", Severity: SeverityError,
		Args: spans("declare_keyword", "declare_namespace_declare_keyword"),
		Messages: []Message{
			{Format: "'declare' should not be written inside of 'declare namespace'", Arg: 0},
			{Format: "containing 'declare namespace' starts here", Arg: 1},
		}},
	DeclareNamespaceCannotContainStatement: {Code: "E0357", Severity: SeverityError,
		Args: spans("first_statement_token", "declare_keyword"),
		Messages: []Message{
			{Format: "'declare namespace' cannot contain statements, only declarations", Arg: 0},
			{Format: "'declare' here", Arg: 1},
		}},
	DeclareNamespaceCannotImportModule: {Code: "E0362", Severity: SeverityError,
		Args: spans("importing_keyword", "declare_keyword"),
		Messages: one("cannot import a module from inside a 'declare namespace'")},
	DeclareVarCannotHaveInitializer: {Code: "E0351", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "equal", Type: ArgRange},
			{Name: "declare_keyword", Type: ArgRange},
			{Name: "declaring_token", Type: ArgVarKind},
		},
		Messages: []Message{
			{Format: "'declare {2}' cannot have initializer", Arg: 0},
			{Format: "'declare {2}' started here", Arg: 1},
		}},
	ExtraCommaNotAllowedBetweenEnumMembers: {Code: "E0248", Severity: SeverityError,
		Args:     spans("comma"),
		Messages: one("extra ',' is not allowed between enum members")},
	InterfaceFieldsCannotHaveInitializers: {Code: "E0221", Severity: SeverityError,
		Args:     spans("equal"),
		Messages: one("interface fields cannot have default values")},
	InterfaceMethodsCannotBeAsync: {Code: "E0217", Severity: SeverityError,
		Args:     spans("async_keyword"),
		Messages: one("interface methods cannot be marked 'async'")},
	InterfaceMethodsCannotBeGenerators: {Code: "E0218", Severity: SeverityError,
		Args:     spans("star"),
		Messages: one("interface methods cannot be marked as a generator")},
	InterfaceMethodsCannotContainBodies: {Code: "E0220", Severity: SeverityError,
		Args:     spans("body_start"),
		Messages: one("interface methods cannot contain a body")},
	InterfacePropertiesCannotBeExplicitlyPublic: {Code: "E0237", Severity: SeverityError,
		Args:     spans("public_keyword"),
		Messages: one("interface properties cannot be marked public explicitly")},
	InterfacePropertiesCannotBePrivate: {Code: "E0219", Severity: SeverityError,
		Args:     spans("property_name_or_private_keyword"),
		Messages: one("interface properties are always public and cannot be private")},
	InterfacePropertiesCannotBeProtected: {Code: "E0288", Severity: SeverityError,
		Args:     spans("protected_keyword"),
		Messages: one("interface properties are always public and cannot be marked protected")},
	InterfacePropertiesCannotBeStatic: {Code: "E0216", Severity: SeverityError,
		Args:     spans("static_keyword"),
		Messages: one("interface properties cannot be 'static'")},
	MissingCommaBetweenGenericParameters: {Code: "E0265", Severity: SeverityError,
		Args:     spans("expected_comma"),
		Messages: one("missing ',' between generic parameters")},
	MissingSemicolonAfterAbstractMethod: {Code: "E0293", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon after abstract method")},
	MissingSemicolonAfterDeclareClassMethod: {Code: "E0334", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon after 'declare class' method")},
	MissingSemicolonAfterIndexSignature: {Code: "E0226", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon after index signature")},
	MissingSemicolonAfterInterfaceMethod: {Code: "E0292", Severity: SeverityError,
		Args:     spans("expected_semicolon"),
		Messages: one("missing semicolon after interface method")},
	NewlineNotAllowedAfterAbstractKeyword: {Code: "E0300", Severity: SeverityError,
		Args:     spans("abstract_keyword"),
		Messages: one("newline is not allowed after 'abstract'")},
	NewlineNotAllowedAfterExportDeclare: {Code: "E0382", Severity: SeverityError,
		Args:     spans("declare_keyword"),
		Messages: one("newline is not allowed after 'export declare'")},
	NewlineNotAllowedAfterInterfaceKeyword: {Code: "E0275", Severity: SeverityError,
		Args:     spans("interface_keyword"),
		Messages: one("newline is not allowed after 'interface'")},
	NewlineNotAllowedAfterNamespaceKeyword: {Code: "E0276", Severity: SeverityError,
		Args:     spans("namespace_keyword"),
		Messages: one("newline is not allowed after '{0}'")},
	NewlineNotAllowedAfterTypeKeyword: {Code: "E0277", Severity: SeverityError,
		Args:     spans("type_keyword"),
		Messages: one("newline is not allowed after 'type'")},
	NewlineNotAllowedBetweenAsyncAndFunctionKeyword: {Code: "E0317", Severity: SeverityError,
		Args: spans("async_keyword", "function_keyword"),
		Messages: []Message{
			{Format: "newline is not allowed between 'async' and 'function'", Arg: 0},
			{Format: "'function' is here", Arg: 1},
		}},
	ReadonlyStaticField: {Code: "E0232", Severity: SeverityError,
		Args:     spans("readonly_static"),
		Messages: one("'readonly static' is not allowed; write 'static readonly' instead")},
	TypeScriptEnumComputedNameMustBeSimple: {Code: "E0249", Severity: SeverityError,
		Args:     spans("expression"),
		Messages: one("computed enum member name must be a simple string")},
	TypeScriptEnumMemberNameCannotBeNumber: {Code: "E0250", Severity: SeverityError,
		Args:     spans("number"),
		Messages: one("enum member name cannot be numeric")},
	TypeScriptEnumValueMustBeConstant: {Code: "E0251", Severity: SeverityError,
		Args: []ArgSpec{
			{Name: "expression", Type: ArgRange},
			{Name: "declared_enum_kind", Type: ArgEnumKind},
		},
		Messages: one("computed value disables enum autoincrement; '{1}' values must be constant")},
	TypeScriptGenericArrowNeedsCommaInJSXMode: {Code: "E0285", Severity: SeverityError,
		Args: spans("generic_parameters_less", "arrow", "expected_comma"),
		Messages: one("generic arrow function needs ',' here in TSX")},
	TypeScriptGenericParameterListIsEmpty: {Code: "E0264", Severity: SeverityError,
		Args:     spans("expected_parameter"),
		Messages: one("expected at least one parameter in generic parameter list")},
	TypeScriptImplementsMustBeAfterExtends: {Code: "E0246", Severity: SeverityError,
		Args: spans("implements_keyword", "extends_keyword"),
		Messages: one("'extends' must be before 'implements'")},
	TypeScriptIndexSignatureCannotBeMethod: {Code: "E0227", Severity: SeverityError,
		Args:     spans("left_paren"),
		Messages: one("index signature must be a field, not a method")},
	TypeScriptIndexSignatureNeedsType: {Code: "E0225", Severity: SeverityError,
		Args:     spans("expected_type"),
		Messages: one("index signatures require a value type")},
	TypeScriptInterfacesCannotContainStaticBlocks: {Code: "E0243", Severity: SeverityError,
		Args:     spans("static_token"),
		Messages: one("interfaces cannot contain static blocks")},
	TypeScriptNamespaceCannotExportDefault: {Code: "E0363", Severity: SeverityError,
		Args: spans("default_keyword", "namespace_keyword"),
		Messages: one("cannot 'export default' from inside a namespace")},
	TypeScriptReadonlyMethod: {Code: "E0231", Severity: SeverityError,
		Args:     spans("readonly_keyword"),
		Messages: one("methods cannot be readonly")},
	TypeScriptRequiresSpaceBetweenGreaterAndEqual: {Code: "E0365", Severity: SeverityError,
		Args:     spans("greater_equal"),
		Messages: one("TypeScript requires whitespace between '>' and '=' here")},
}
