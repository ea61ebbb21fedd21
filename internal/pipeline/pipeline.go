// Package pipeline chains the normalization stages: strip comments, clean,
// parse, rewrite, serialize. It is the only entry point the rest of the
// tool uses for turning raw configuration text into minimized JSON.
package pipeline

import (
	"fmt"

	"github.com/svetikas/ttbuild/internal/document"
	"github.com/svetikas/ttbuild/internal/jsonc"
	"github.com/svetikas/ttbuild/internal/rewrite"
)

// Stage names the pipeline step that produced an error.
type Stage string

const (
	StageLex       Stage = "lex"
	StageClean     Stage = "clean"
	StageParse     Stage = "parse"
	StageRewrite   Stage = "rewrite"
	StageSerialize Stage = "serialize"
)

// StageError attributes a failure to its pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Normalize converts raw configuration text into minimized JSON, applying
// the given rewrite rules to the parsed document. A nil or empty rule list
// skips the rewrite stage. The call is pure: one input buffer in, one
// output buffer or error out, safe to run concurrently across files.
func Normalize(raw string, rules []rewrite.Rule) (string, error) {
	stripped := jsonc.StripComments(raw)
	cleaned := jsonc.Clean(stripped)

	doc, err := document.Parse(cleaned)
	if err != nil {
		return "", &StageError{Stage: StageParse, Err: err}
	}

	if len(rules) > 0 {
		if err := rewrite.Apply(doc, rules); err != nil {
			return "", &StageError{Stage: StageRewrite, Err: err}
		}
	}

	return document.Serialize(doc), nil
}

// Parse runs the front half of the pipeline only, returning the parsed
// document. Callers that need to inspect or edit attributes before
// serializing (the manifest reader does) use this.
func Parse(raw string) (*document.Value, error) {
	cleaned := jsonc.Clean(jsonc.StripComments(raw))
	doc, err := document.Parse(cleaned)
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: err}
	}
	return doc, nil
}
