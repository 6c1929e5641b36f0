package visit

import (
	"fmt"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/logger"
)

// Recorder is a Visitor that renders every event into a human-readable line.
// Tests compare recorded streams against expected literals. The source is
// used to spell variable names; events carry only ranges.
type Recorder struct {
	Source *logger.Source
	Events []string
}

func (r *Recorder) add(format string, args ...interface{}) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

func (r *Recorder) text(name logger.Range) string {
	return r.Source.TextForRange(name)
}

func (r *Recorder) VariableDeclaration(name logger.Range, kind diag.VarKind, init InitKind) {
	suffix := "uninit"
	if init == Initialized {
		suffix = "init"
	}
	r.add("declare %s (%s, %s)", r.text(name), kind, suffix)
}

func (r *Recorder) VariableUse(name logger.Range)        { r.add("use %s", r.text(name)) }
func (r *Recorder) VariableAssignment(name logger.Range) { r.add("assign %s", r.text(name)) }
func (r *Recorder) VariableTypeUse(name logger.Range)    { r.add("type use %s", r.text(name)) }
func (r *Recorder) VariableTypeofUse(name logger.Range)  { r.add("typeof use %s", r.text(name)) }
func (r *Recorder) VariableDeleteUse(name logger.Range)  { r.add("delete use %s", r.text(name)) }

func (r *Recorder) EnterBlockScope() { r.add("enter block scope") }
func (r *Recorder) ExitBlockScope()  { r.add("exit block scope") }
func (r *Recorder) EnterFunctionScope() {
	r.add("enter function scope")
}
func (r *Recorder) EnterNamedFunctionScope(name logger.Range) {
	r.add("enter named function scope %s", r.text(name))
}
func (r *Recorder) EnterFunctionScopeBody() { r.add("enter function scope body") }
func (r *Recorder) ExitFunctionScope()      { r.add("exit function scope") }
func (r *Recorder) EnterClassScope()        { r.add("enter class scope") }
func (r *Recorder) EnterClassScopeBody(name *logger.Range) {
	if name != nil {
		r.add("enter class scope body %s", r.text(*name))
	} else {
		r.add("enter class scope body")
	}
}
func (r *Recorder) ExitClassScope()            { r.add("exit class scope") }
func (r *Recorder) EnterForScope()             { r.add("enter for scope") }
func (r *Recorder) ExitForScope()              { r.add("exit for scope") }
func (r *Recorder) EnterWithScope()            { r.add("enter with scope") }
func (r *Recorder) ExitWithScope()             { r.add("exit with scope") }
func (r *Recorder) EnterIndexSignatureScope()  { r.add("enter index signature scope") }
func (r *Recorder) ExitIndexSignatureScope()   { r.add("exit index signature scope") }

func (r *Recorder) PropertyDeclaration(name *logger.Range) {
	if name != nil {
		r.add("property declaration %s", r.text(*name))
	} else {
		r.add("property declaration")
	}
}

func (r *Recorder) EndOfModule() { r.add("end of module") }
