// Package guarderr defines the fatal error taxonomy of the guard generator. Every
// error aborts the run before an artifact is written.
package guarderr

import "fmt"

// Stage names the pipeline step an error came from.
type Stage string

const (
	// StageConfig covers loading and validating configuration.
	StageConfig Stage = "config"
	// StageLoad covers reading the guard module.
	StageLoad Stage = "load"
	// StageParse covers turning source text into a syntax tree.
	StageParse Stage = "parse"
	// StageClassify covers deciding which declarations are guards.
	StageClassify Stage = "classify"
	// StageBuild covers assembling the registry.
	StageBuild Stage = "build"
	// StageEmit covers rendering the artifact.
	StageEmit Stage = "emit"
	// StageWrite covers persisting the artifact.
	StageWrite Stage = "write"
)

// StageError tags an error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// IOError reports a missing or unreadable input, or an unwritable output.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed source. Line and Column are 1-based.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// ClassificationError reports a guard narrowing to a type outside the supported kinds.
type ClassificationError struct {
	Name string
	Kind string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("guard %q narrows to unsupported kind %q", e.Name, e.Kind)
}

// DuplicateNameError reports two guards sharing a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate guard name %q", e.Name)
}
