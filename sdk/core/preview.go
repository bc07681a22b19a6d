package core

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// PreviewTransformRequest asks the server to run a transformation against a
// sample input without persisting anything. Plan, when available, is
// preferred by the server over re-deriving it from the DSL text.
type PreviewTransformRequest struct {
	SampleInput  json.RawMessage `json:"sampleInput"`
	Dsl          Dsl             `json:"dsl"`
	OutputSchema json.RawMessage `json:"outputSchema"`
	Plan         json.RawMessage `json:"plan,omitempty"`
}

// ValidationErrorItem is one problem found while validating a transform.
type ValidationErrorItem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// PreviewTransformResponse is the outcome of a preview run.
type PreviewTransformResponse struct {
	IsValid    bool                  `json:"isValid"`
	Errors     []ValidationErrorItem `json:"errors"`
	Output     json.RawMessage       `json:"output"`
	PreviewCsv string                `json:"previewCsv,omitempty"`
}

// ValidateOutputSchema checks that a document is compilable JSON Schema
// before it is submitted with a version or a preview, so schema mistakes
// surface immediately instead of as a server-side validation round-trip.
func ValidateOutputSchema(schema json.RawMessage) error {
	if len(schema) == 0 {
		return errors.New("output schema must not be empty")
	}
	if _, err := gojsonschema.NewSchema(
		gojsonschema.NewBytesLoader(schema),
	); err != nil {
		return errors.Wrap(err, "error compiling output schema")
	}
	return nil
}
