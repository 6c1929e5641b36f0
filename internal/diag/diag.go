package diag

// Diagnostics are plain values: a kind plus a fixed set of typed arguments.
// The number and types of arguments for each kind is static metadata declared
// in the table in kinds.go. Formatting a diagnostic into human-readable text
// is separate from producing it, so the parser can emit diagnostics without
// ever touching message strings.

import (
	"fmt"
	"strings"

	"github.com/fastlint/fastlint/internal/logger"
)

type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ArgType describes one argument slot in a diagnostic kind's schema.
type ArgType uint8

const (
	ArgRange ArgType = iota
	ArgChar
	ArgString
	ArgVarKind
	ArgStatementKind
	ArgEnumKind
)

type ArgSpec struct {
	Name string
	Type ArgType
}

// Message pairs a format string with the argument whose range locates the
// underline. Format strings reference arguments by position: "{1}" inserts
// argument 1, "{1:headlinese}" and "{1:singular}" render enumerated
// arguments in the matching grammatical form.
type Message struct {
	Format string
	Arg    int
}

// Info is the static metadata for one diagnostic kind.
type Info struct {
	Code     string // "E" followed by four decimal digits
	Severity Severity
	Args     []ArgSpec
	Messages []Message
}

// Arg is one argument value. Only the field matching the schema's declared
// type is meaningful.
type Arg struct {
	Type   ArgType
	Range  logger.Range
	Char   byte
	String string
	Enum   uint8
}

func Span(r logger.Range) Arg         { return Arg{Type: ArgRange, Range: r} }
func Char(c byte) Arg                 { return Arg{Type: ArgChar, Char: c} }
func Text(s string) Arg               { return Arg{Type: ArgString, String: s} }
func Var(k VarKind) Arg               { return Arg{Type: ArgVarKind, Enum: uint8(k)} }
func Statement(k StatementKind) Arg   { return Arg{Type: ArgStatementKind, Enum: uint8(k)} }
func EnumKindArg(k EnumKind) Arg      { return Arg{Type: ArgEnumKind, Enum: uint8(k)} }

// Diagnostic is the value passed to sinks. The argument order matches the
// schema order declared for the kind.
type Diagnostic struct {
	Kind Kind
	Args []Arg
}

func New(kind Kind, args ...Arg) Diagnostic {
	return Diagnostic{Kind: kind, Args: args}
}

// FirstRange returns the range of the first span argument, or an empty range
// when the kind has none.
func (d Diagnostic) FirstRange() logger.Range {
	for _, arg := range d.Args {
		if arg.Type == ArgRange {
			return arg.Range
		}
	}
	return logger.Range{}
}

func (d Diagnostic) Info() Info {
	return Table[d.Kind]
}

func (d Diagnostic) Code() string {
	return Table[d.Kind].Code
}

func (d Diagnostic) Severity() Severity {
	return Table[d.Kind].Severity
}

// VarKind classifies declarations. It doubles as the declaration-kind
// reported through the visit stream and as a diagnostic argument.
type VarKind uint8

const (
	VarKindLet VarKind = iota
	VarKindConst
	VarKindVar
	VarKindFunction
	VarKindClass
	VarKindParameter
	VarKindArrowParameter
	VarKindCatch
	VarKindImport
	VarKindImportType
	VarKindGenericParameter
	VarKindInterface
	VarKindEnum
	VarKindNamespace
	VarKindTypeAlias
	VarKindIndexSignatureParameter
)

func (k VarKind) String() string {
	switch k {
	case VarKindLet:
		return "let"
	case VarKindConst:
		return "const"
	case VarKindVar:
		return "var"
	case VarKindFunction:
		return "function"
	case VarKindClass:
		return "class"
	case VarKindParameter:
		return "parameter"
	case VarKindArrowParameter:
		return "arrow parameter"
	case VarKindCatch:
		return "catch"
	case VarKindImport:
		return "import"
	case VarKindImportType:
		return "import type"
	case VarKindGenericParameter:
		return "generic parameter"
	case VarKindInterface:
		return "interface"
	case VarKindEnum:
		return "enum"
	case VarKindNamespace:
		return "namespace"
	case VarKindTypeAlias:
		return "type alias"
	case VarKindIndexSignatureParameter:
		return "index signature parameter"
	default:
		return "variable"
	}
}

// StatementKind names the statement whose body or header a diagnostic refers
// to.
type StatementKind uint8

const (
	StatementKindDoWhileLoop StatementKind = iota
	StatementKindForLoop
	StatementKindIfStatement
	StatementKindWhileLoop
	StatementKindWithStatement
	StatementKindLabelledStatement
)

func (k StatementKind) headlinese() string {
	switch k {
	case StatementKindDoWhileLoop:
		return "'do-while' loop"
	case StatementKindForLoop:
		return "'for' loop"
	case StatementKindIfStatement:
		return "'if' statement"
	case StatementKindWhileLoop:
		return "'while' loop"
	case StatementKindWithStatement:
		return "'with' statement"
	case StatementKindLabelledStatement:
		return "labelled statement"
	default:
		return "statement"
	}
}

func (k StatementKind) singular() string {
	switch k {
	case StatementKindDoWhileLoop:
		return "a 'do-while' loop"
	case StatementKindForLoop:
		return "a 'for' loop"
	case StatementKindIfStatement:
		return "an 'if' statement"
	case StatementKindWhileLoop:
		return "a 'while' loop"
	case StatementKindWithStatement:
		return "a 'with' statement"
	case StatementKindLabelledStatement:
		return "a labelled statement"
	default:
		return "a statement"
	}
}

func (k StatementKind) String() string { return k.headlinese() }

type EnumKind uint8

const (
	EnumKindNormal EnumKind = iota
	EnumKindConst
	EnumKindDeclare
	EnumKindDeclareConst
)

func (k EnumKind) String() string {
	switch k {
	case EnumKindConst:
		return "const enum"
	case EnumKindDeclare:
		return "declare enum"
	case EnumKindDeclareConst:
		return "declare const enum"
	default:
		return "enum"
	}
}

func (arg Arg) formatWith(modifier string) string {
	switch arg.Type {
	case ArgChar:
		return string(arg.Char)
	case ArgString:
		return arg.String
	case ArgVarKind:
		return VarKind(arg.Enum).String()
	case ArgStatementKind:
		k := StatementKind(arg.Enum)
		if modifier == "singular" {
			return k.singular()
		}
		return k.headlinese()
	case ArgEnumKind:
		return EnumKind(arg.Enum).String()
	default:
		return ""
	}
}

// FormatMessage expands one of a diagnostic's message templates.
func FormatMessage(d Diagnostic, m Message) string {
	format := m.Format
	if !strings.ContainsRune(format, '{') {
		return format
	}

	sb := strings.Builder{}
	for len(format) > 0 {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			sb.WriteString(format)
			break
		}
		close := strings.IndexByte(format[open:], '}')
		if close < 0 {
			sb.WriteString(format)
			break
		}
		close += open

		sb.WriteString(format[:open])
		placeholder := format[open+1 : close]
		modifier := ""
		if colon := strings.IndexByte(placeholder, ':'); colon >= 0 {
			placeholder, modifier = placeholder[:colon], placeholder[colon+1:]
		}
		index := 0
		fmt.Sscanf(placeholder, "%d", &index)
		if index >= 0 && index < len(d.Args) {
			sb.WriteString(d.Args[index].formatWith(modifier))
		}
		format = format[close+1:]
	}
	return sb.String()
}

// ToMsg renders a diagnostic into the logger's message model. The primary
// message's argument provides the underline; later messages become notes.
func ToMsg(d Diagnostic, source *logger.Source) logger.Msg {
	info := Table[d.Kind]

	kind := logger.Error
	if info.Severity == SeverityWarning {
		kind = logger.Warning
	}

	rangeForMessage := func(m Message) logger.Range {
		if m.Arg >= 0 && m.Arg < len(d.Args) && d.Args[m.Arg].Type == ArgRange {
			return d.Args[m.Arg].Range
		}
		return d.FirstRange()
	}

	// A range argument referenced by a format string inserts the source text
	// it covers
	textual := d
	if source != nil {
		textual.Args = append([]Arg(nil), d.Args...)
		for i, arg := range textual.Args {
			if arg.Type == ArgRange {
				textual.Args[i] = Text(source.TextForRange(arg.Range))
			}
		}
	}

	msg := logger.Msg{Kind: kind}
	if len(info.Messages) > 0 {
		primary := info.Messages[0]
		msg.Data = logger.MsgData{
			Text:     fmt.Sprintf("%s [%s]", FormatMessage(textual, primary), info.Code),
			Location: logger.LocationOrNil(source, rangeForMessage(primary)),
		}
		for _, note := range info.Messages[1:] {
			msg.Notes = append(msg.Notes, logger.MsgData{
				Text:     FormatMessage(textual, note),
				Location: logger.LocationOrNil(source, rangeForMessage(note)),
			})
		}
	}
	return msg
}
