// Package errors renders the three located error kinds the type analysis
// pass can raise (spec §7), plus the source-context caret formatting the
// compiler driver uses to display them.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-typecore/internal/source"
	"github.com/fatih/color"
)

var (
	caretColor = color.New(color.FgRed, color.Bold)
	boldColor  = color.New(color.Bold)
	dimColor   = color.New(color.Faint)
)

// Located carries a source position and message shared by every error
// kind the pass raises.
type Located struct {
	Pos     source.Position
	Message string
}

func (l Located) Error() string {
	if !l.Pos.IsValid() {
		return l.Message
	}
	return fmt.Sprintf("%s at %s", l.Message, l.Pos)
}

// TypeError covers any violation of the type rules in spec §4/§5: type
// mismatch, out-of-bound type arguments, unresolvable or ambiguous
// overloads, nullability on a primitive, a non-testable pattern, illegal
// variance use, a missing return type on a recursive/abstract function,
// a visibility violation.
type TypeError struct{ Located }

func NewTypeError(pos source.Position, format string, args ...any) *TypeError {
	return &TypeError{Located{Pos: pos, Message: fmt.Sprintf(format, args...)}}
}

// ScopeError covers a name not found, not accessible, or a package
// prefix used where a value or type was expected.
type ScopeError struct{ Located }

func NewScopeError(pos source.Position, format string, args ...any) *ScopeError {
	return &ScopeError{Located{Pos: pos, Message: fmt.Sprintf(format, args...)}}
}

// InheritanceError covers a nullable or otherwise forbidden supertype, a
// cycle in the class hierarchy, multiple non-trait bases, or a
// linearization conflict.
type InheritanceError struct{ Located }

func NewInheritanceError(pos source.Position, format string, args ...any) *InheritanceError {
	return &InheritanceError{Located{Pos: pos, Message: fmt.Sprintf(format, args...)}}
}

// CompilerError is a located error paired with the source text it came
// from, for human-facing rendering with a caret pointing at the column.
// The three error kinds above are what the pass raises internally;
// CompilerError is the presentation layer the driver wraps them in.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     source.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos source.Position, message, src, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: src, File: file}
}

// FromLocated wraps any of TypeError/ScopeError/InheritanceError (or a
// bare Located) for display against src.
func FromLocated(err error, src, file string) *CompilerError {
	var loc Located
	switch e := err.(type) {
	case *TypeError:
		loc = e.Located
	case *ScopeError:
		loc = e.Located
	case *InheritanceError:
		loc = e.Located
	case Located:
		loc = e
	default:
		loc = Located{Message: err.Error()}
	}
	return NewCompilerError(loc.Pos, loc.Message, src, file)
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context.
// If useColor is true, terminal color is used for the caret and message.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		sb.WriteString(colorize(useColor, caretColor, "^"))
		sb.WriteString("\n")
	}

	sb.WriteString(colorize(useColor, boldColor, e.Message))

	return sb.String()
}

// colorize renders s through c when useColor is set, plain otherwise;
// centralizes the on/off branching the hand-rolled ANSI codes used to
// spell out at every call site.
func colorize(useColor bool, c *color.Color, s string) string {
	if !useColor {
		return s
	}
	return c.Sprint(s)
}

func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func (e *CompilerError) getSourceContext(lineNum, contextBefore, contextAfter int) []string {
	if e.Source == "" {
		return nil
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}
	start := lineNum - contextBefore
	if start < 1 {
		start = 1
	}
	end := lineNum + contextAfter
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end]
}

// FormatWithContext formats the error with surrounding source context.
func (e *CompilerError) FormatWithContext(contextLines int, useColor bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	contextLinesList := e.getSourceContext(e.Pos.Line, contextLines, contextLines)
	if len(contextLinesList) == 0 {
		return e.Format(useColor)
	}

	startLine := e.Pos.Line - contextLines
	if startLine < 1 {
		startLine = 1
	}

	for i, line := range contextLinesList {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		if currentLine == e.Pos.Line {
			sb.WriteString(colorize(useColor, boldColor, lineNumStr+line))
			sb.WriteString("\n")

			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
			sb.WriteString(colorize(useColor, caretColor, "^"))
			sb.WriteString("\n")
		} else {
			sb.WriteString(colorize(useColor, dimColor, lineNumStr+line))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(colorize(useColor, boldColor, e.Message))

	return sb.String()
}

// FormatErrors formats multiple compiler errors.
func FormatErrors(errs []*CompilerError, useColor bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(useColor)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(useColor))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FormatErrorsWithContext formats multiple compiler errors with source context.
func FormatErrorsWithContext(errs []*CompilerError, contextLines int, useColor bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].FormatWithContext(contextLines, useColor)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.FormatWithContext(contextLines, useColor))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
