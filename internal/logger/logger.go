package logger

// Diagnostics are rendered to look and feel like clang's error format. The
// renderer includes the text of the offending line along with an underline
// marking the relevant range. Rendering is only used by the CLI; the core
// passes structured diagnostics to sinks without formatting them.

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

const defaultTerminalWidth = 80

type LogLevel int8

const (
	LevelNone LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSilent
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		panic("Internal error")
	}
}

type Msg struct {
	Kind  MsgKind
	Data  MsgData
	Notes []MsgData
}

type MsgData struct {
	Text     string
	Location *MsgLocation
}

type MsgLocation struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

// Loc is the 0-based byte offset of a location from the start of the file
type Loc struct {
	Start int32
}

// Range is a span of bytes in a source file. Diagnostics and visits hold
// ranges, never substrings, so they stay valid as long as the source does.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// This type is just so we can use Go's native sort function
type SortableMsgs []Msg

func (a SortableMsgs) Len() int          { return len(a) }
func (a SortableMsgs) Swap(i int, j int) { a[i], a[j] = a[j], a[i] }

func (a SortableMsgs) Less(i int, j int) bool {
	ai := a[i]
	aj := a[j]
	aiLoc := ai.Data.Location
	ajLoc := aj.Data.Location
	if aiLoc == nil || ajLoc == nil {
		return aiLoc == nil && ajLoc != nil
	}
	if aiLoc.File != ajLoc.File {
		return aiLoc.File < ajLoc.File
	}
	if aiLoc.Line != ajLoc.Line {
		return aiLoc.Line < ajLoc.Line
	}
	if aiLoc.Column != ajLoc.Column {
		return aiLoc.Column < ajLoc.Column
	}
	if ai.Kind != aj.Kind {
		return ai.Kind < aj.Kind
	}
	return ai.Data.Text < aj.Data.Text
}

// Source is an immutable source file held in memory for the duration of a
// parse. The contents are padded with NUL sentinel bytes so the lexer can
// look one byte past the logical end without a bounds check.
type Source struct {
	// This is used for error messages. It's a mostly platform-independent path
	// relative to the current working directory with standard path separators.
	PrettyPath string

	// The logical contents of the file, without padding.
	Contents string

	// Contents plus sentinel padding. Everything past len(Contents) is NUL.
	PaddedContents string
}

// The number of NUL bytes appended past the logical end of every source.
const SentinelPadding = 1

func NewSource(prettyPath string, contents string) Source {
	return Source{
		PrettyPath:     prettyPath,
		Contents:       contents,
		PaddedContents: contents + strings.Repeat("\x00", SentinelPadding),
	}
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start : r.Loc.Start+r.Len]
}

func (s *Source) EndLoc() Loc {
	return Loc{Start: int32(len(s.Contents))}
}

func (s *Source) RangeOfOperatorBefore(loc Loc, op string) Range {
	text := s.Contents[:loc.Start]
	index := strings.LastIndex(text, op)
	if index >= 0 {
		return Range{Loc: Loc{Start: int32(index)}, Len: int32(len(op))}
	}
	return Range{Loc: loc}
}

func (s *Source) RangeOfOperatorAfter(loc Loc, op string) Range {
	text := s.Contents[loc.Start:]
	index := strings.Index(text, op)
	if index >= 0 {
		return Range{Loc: Loc{Start: loc.Start + int32(index)}, Len: int32(len(op))}
	}
	return Range{Loc: loc}
}

func (s *Source) RangeOfString(loc Loc) Range {
	text := s.Contents[loc.Start:]
	if len(text) == 0 {
		return Range{Loc: loc, Len: 0}
	}

	quote := text[0]
	if quote == '"' || quote == '\'' || quote == '`' {
		// Search for the matching quote character
		for i := 1; i < len(text); i++ {
			c := text[i]
			if c == quote {
				return Range{Loc: loc, Len: int32(i + 1)}
			} else if c == '\\' {
				i += 1
			}
		}
	}

	return Range{Loc: loc, Len: 0}
}

func (s *Source) RangeOfNumber(loc Loc) (r Range) {
	text := s.Contents[loc.Start:]
	r = Range{Loc: loc, Len: 0}

	if len(text) > 0 {
		if c := text[0]; c >= '0' && c <= '9' {
			r.Len = 1
			for int(r.Len) < len(text) {
				c := text[r.Len]
				if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && c != '.' && c != '_' {
					break
				}
				r.Len++
			}
		}
	}
	return
}

func plural(prefix string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, prefix)
	}
	return fmt.Sprintf("%d %ss", count, prefix)
}

func errorAndWarningSummary(errors int, warnings int) string {
	switch {
	case errors == 0:
		return plural("warning", warnings)
	case warnings == 0:
		return plural("error", errors)
	default:
		return fmt.Sprintf("%s and %s", plural("warning", warnings), plural("error", errors))
	}
}

type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
	Height          int
}

type UseColor uint8

const (
	ColorIfTerminal UseColor = iota
	ColorNever
	ColorAlways
)

type OutputOptions struct {
	IncludeSource bool
	UseColor      UseColor
	LogLevel      LogLevel
}

type Colors struct {
	Reset     string
	Bold      string
	Dim       string
	Underline string

	Red   string
	Green string
	Blue  string

	Cyan    string
	Magenta string
	Yellow  string
}

var TerminalColors = Colors{
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Dim:       "\033[37m",
	Underline: "\033[4m",

	Red:   "\033[31m",
	Green: "\033[32m",
	Blue:  "\033[34m",

	Cyan:    "\033[36m",
	Magenta: "\033[35m",
	Yellow:  "\033[33m",
}

// PrintMessages renders messages to a file, with colors when the file is a
// terminal. It returns the number of errors seen.
func PrintMessages(file *os.File, options OutputOptions, msgs []Msg) int {
	terminalInfo := GetTerminalInfo(file)
	if options.UseColor == ColorAlways {
		terminalInfo.UseColorEscapes = SupportsColorEscapes
	} else if options.UseColor == ColorNever {
		terminalInfo.UseColorEscapes = false
	}

	sort.Stable(SortableMsgs(msgs))

	errors := 0
	warnings := 0
	for _, msg := range msgs {
		switch msg.Kind {
		case Error:
			errors++
			if options.LogLevel > LevelError {
				continue
			}
		case Warning:
			warnings++
			if options.LogLevel > LevelWarning {
				continue
			}
		}
		writeStringWithColor(file, msg.String(options, terminalInfo))
	}

	if options.LogLevel <= LevelInfo && (errors > 0 || warnings > 0) {
		writeStringWithColor(file, fmt.Sprintf("%s\n", errorAndWarningSummary(errors, warnings)))
	}
	return errors
}

func (msg Msg) String(options OutputOptions, terminalInfo TerminalInfo) string {
	var text string
	if options.IncludeSource {
		text = msgString(true, terminalInfo, msg.Kind, msg.Data)
		for _, note := range msg.Notes {
			text += msgString(true, terminalInfo, Note, note)
		}
	} else {
		text = msgString(false, terminalInfo, msg.Kind, msg.Data)
	}
	return text
}

func msgString(includeSource bool, terminalInfo TerminalInfo, kind MsgKind, data MsgData) string {
	var colors Colors
	if terminalInfo.UseColorEscapes {
		colors = TerminalColors
	}

	var kindColor string
	switch kind {
	case Error:
		kindColor = colors.Red
	case Warning:
		kindColor = colors.Magenta
	default:
		kindColor = colors.Blue
	}

	if data.Location == nil {
		return fmt.Sprintf("%s%s%s: %s%s%s\n",
			colors.Bold, kindColor, kind.String(),
			colors.Reset, data.Text, colors.Reset)
	}

	if !includeSource {
		return fmt.Sprintf("%s%s: %s%s: %s%s\n",
			colors.Bold, data.Location.File,
			kindColor, kind.String(),
			colors.Reset, data.Text)
	}

	d := detailStruct(data, terminalInfo)

	return fmt.Sprintf("%s%s:%d:%d: %s%s: %s%s\n%s\n%s%s%s%s\n",
		colors.Bold, d.Path, d.Line, d.Column,
		kindColor, kind.String(),
		colors.Reset, d.Message,
		d.SourceBefore+d.SourceMarked+d.SourceAfter,
		colors.Green, d.Indent, d.Marker, colors.Reset)
}

type MsgDetail struct {
	Path    string
	Line    int
	Column  int
	Message string

	SourceBefore string
	SourceMarked string
	SourceAfter  string

	Indent string
	Marker string
}

// ComputeLineAndColumn returns the 0-based line and column (in bytes) of an
// offset, along with the bounds of the line containing it.
func ComputeLineAndColumn(contents string, offset int) (lineCount int, columnCount int, lineStart int, lineEnd int) {
	var prevCodePoint rune
	if offset > len(contents) {
		offset = len(contents)
	}

	// Scan up to the offset and count lines
	for i, codePoint := range contents[:offset] {
		switch codePoint {
		case '\n':
			lineStart = i + 1
			if prevCodePoint != '\r' {
				lineCount++
			}
		case '\r':
			lineStart = i + 1
			lineCount++
		case '\u2028', '\u2029':
			lineStart = i + 3 // These take three bytes to encode in UTF-8
			lineCount++
		}
		prevCodePoint = codePoint
	}

	// Scan to the end of the line (or end of file if this is the last line)
	lineEnd = len(contents)
loop:
	for i, codePoint := range contents[offset:] {
		switch codePoint {
		case '\r', '\n', '\u2028', '\u2029':
			lineEnd = offset + i
			break loop
		}
	}

	columnCount = offset - lineStart
	return
}

func LocationOrNil(source *Source, r Range) *MsgLocation {
	if source == nil {
		return nil
	}

	// Convert the index into a line and column number
	lineCount, columnCount, lineStart, lineEnd := ComputeLineAndColumn(source.Contents, int(r.Loc.Start))

	return &MsgLocation{
		File:     source.PrettyPath,
		Line:     lineCount + 1, // 0-based to 1-based
		Column:   columnCount,
		Length:   int(r.Len),
		LineText: source.Contents[lineStart:lineEnd],
	}
}

func detailStruct(data MsgData, terminalInfo TerminalInfo) MsgDetail {
	loc := data.Location
	lineText := renderTabStops(loc.LineText, 8)
	textUpToLoc := renderTabStops(loc.LineText[:loc.Column], 8)
	markerStart := len(textUpToLoc)
	markerEnd := markerStart

	// Extend markerEnd to the end of the marked range, clamped to this line
	if loc.Length > 0 && loc.Column+loc.Length <= len(loc.LineText) {
		markerEnd = len(renderTabStops(loc.LineText[:loc.Column+loc.Length], 8))
	}

	// Clip the marker to the bounds of the line
	if markerStart > len(lineText) {
		markerStart = len(lineText)
	}
	if markerEnd > len(lineText) {
		markerEnd = len(lineText)
	}
	if markerEnd < markerStart {
		markerEnd = markerStart
	}

	// Trim the line to fit the terminal width
	width := terminalInfo.Width
	if width < 1 {
		width = defaultTerminalWidth
	}
	if len(lineText) > width {
		// Try to center the marked range within the terminal width
		sliceStart := (markerStart + markerEnd - width) / 2
		if sliceStart > len(lineText)-width {
			sliceStart = len(lineText) - width
		}
		if sliceStart < 0 {
			sliceStart = 0
		}
		lineText = lineText[sliceStart : sliceStart+width]
		markerStart -= sliceStart
		markerEnd -= sliceStart
		if markerStart < 0 {
			markerStart = 0
		}
		if markerEnd > len(lineText) {
			markerEnd = len(lineText)
		}
	}

	indent := strings.Repeat(" ", estimateWidthInTerminal(lineText[:markerStart]))
	marker := "^"
	if markerEnd > markerStart {
		n := estimateWidthInTerminal(lineText[markerStart:markerEnd])
		if n > 1 {
			marker = strings.Repeat("~", n)
		}
	}

	return MsgDetail{
		Path:    loc.File,
		Line:    loc.Line,
		Column:  loc.Column,
		Message: data.Text,

		SourceBefore: lineText[:markerStart],
		SourceMarked: lineText[markerStart:markerEnd],
		SourceAfter:  lineText[markerEnd:],

		Indent: indent,
		Marker: marker,
	}
}

// Estimate the number of columns this string will take when printed. This is
// only an estimate since some code points take up multiple columns.
func estimateWidthInTerminal(text string) int {
	return utf8.RuneCountInString(text)
}

func renderTabStops(withTabs string, spacesPerTab int) string {
	if !strings.ContainsRune(withTabs, '\t') {
		return withTabs
	}

	withoutTabs := strings.Builder{}
	count := 0

	for _, c := range withTabs {
		if c == '\t' {
			spaces := spacesPerTab - count%spacesPerTab
			for i := 0; i < spaces; i++ {
				withoutTabs.WriteRune(' ')
			}
			count += spaces
		} else {
			withoutTabs.WriteRune(c)
			count++
		}
	}

	return withoutTabs.String()
}
