package diag

import (
	"regexp"
	"testing"

	"github.com/fastlint/fastlint/internal/logger"
)

func rangeAt(start int32, length int32) logger.Range {
	return logger.Range{Loc: logger.Loc{Start: start}, Len: length}
}

func TestCodesAreWellFormed(t *testing.T) {
	format := regexp.MustCompile(`^E\d{4}$`)
	for kind := Kind(0); kind < KindCount; kind++ {
		info := Table[kind]
		if info.Code == "" {
			t.Errorf("kind %d has no code", kind)
			continue
		}
		if !format.MatchString(info.Code) {
			t.Errorf("kind %d has malformed code %q", kind, info.Code)
		}
	}
}

func TestCodeKindBijection(t *testing.T) {
	seen := map[string]Kind{}
	for kind := Kind(0); kind < KindCount; kind++ {
		code := Table[kind].Code
		if other, ok := seen[code]; ok {
			t.Errorf("code %s assigned to both kind %d and kind %d", code, other, kind)
		}
		seen[code] = kind
	}
}

func TestReservedCodesNeverAppear(t *testing.T) {
	reserved := map[string]bool{}
	for _, code := range ReservedCodes {
		reserved[code] = true
	}
	for kind := Kind(0); kind < KindCount; kind++ {
		if reserved[Table[kind].Code] {
			t.Errorf("kind %d uses reserved code %s", kind, Table[kind].Code)
		}
	}
}

func TestMessageArgumentsAreDeclared(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		info := Table[kind]
		for i, message := range info.Messages {
			if message.Arg < 0 || message.Arg >= len(info.Args) {
				t.Errorf("kind %d (%s) message %d references argument %d of %d",
					kind, info.Code, i, message.Arg, len(info.Args))
			}
		}
	}
}

func TestEveryKindHasAMessage(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		if len(Table[kind].Messages) == 0 {
			t.Errorf("kind %d (%s) has no message templates", kind, Table[kind].Code)
		}
	}
}

func TestFormatMessagePlaceholders(t *testing.T) {
	d := New(LexicalDeclarationNotAllowedInBody,
		Statement(StatementKindIfStatement),
		Span(rangeAt(9, 0)),
		Span(rangeAt(10, 3)))

	info := d.Info()
	if got := FormatMessage(d, info.Messages[0]); got != "missing body for 'if' statement" {
		t.Errorf("primary message = %q", got)
	}
	if got := FormatMessage(d, info.Messages[1]); got != "a lexical declaration is not allowed as the body of an 'if' statement" {
		t.Errorf("note message = %q", got)
	}
}

func TestBufferRewindDiscardsHeld(t *testing.T) {
	collector := &Collector{}
	router := NewRouter(collector)

	router.ReportDiagnostic(New(UnexpectedToken, Span(rangeAt(0, 1))))

	mark := router.BeginSpeculation()
	router.ReportDiagnostic(New(UnclosedTemplate, Span(rangeAt(1, 1))))
	router.RollBackSpeculation(mark)

	router.ReportDiagnostic(New(UnmatchedParenthesis, Span(rangeAt(2, 1))))

	if len(collector.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(collector.Diagnostics))
	}
	if collector.Diagnostics[0].Kind != UnexpectedToken ||
		collector.Diagnostics[1].Kind != UnmatchedParenthesis {
		t.Errorf("unexpected kinds after rollback: %v, %v",
			collector.Diagnostics[0].Kind, collector.Diagnostics[1].Kind)
	}
}

func TestBufferCommitFlushesInOrder(t *testing.T) {
	collector := &Collector{}
	router := NewRouter(collector)

	router.BeginSpeculation()
	router.ReportDiagnostic(New(UnexpectedToken, Span(rangeAt(0, 1))))

	router.BeginSpeculation()
	router.ReportDiagnostic(New(UnclosedTemplate, Span(rangeAt(1, 1))))
	router.CommitSpeculation()

	if len(collector.Diagnostics) != 0 {
		t.Fatalf("inner commit flushed early: %d diagnostics", len(collector.Diagnostics))
	}

	router.CommitSpeculation()

	if len(collector.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics after outer commit, want 2", len(collector.Diagnostics))
	}
	if collector.Diagnostics[0].Kind != UnexpectedToken ||
		collector.Diagnostics[1].Kind != UnclosedTemplate {
		t.Errorf("diagnostics flushed out of order")
	}
}
