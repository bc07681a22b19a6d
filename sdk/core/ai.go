package core

import "encoding/json"

// DslGenerateConstraints bound what the model may produce.
type DslGenerateConstraints struct {
	MaxColumns          int  `json:"maxColumns"`
	AllowTransforms     bool `json:"allowTransforms"`
	ForbidNetworkCalls  bool `json:"forbidNetworkCalls"`
	ForbidCodeExecution bool `json:"forbidCodeExecution"`
}

// DefaultDslGenerateConstraints returns the workbench defaults.
func DefaultDslGenerateConstraints() DslGenerateConstraints {
	return DslGenerateConstraints{
		MaxColumns:          50,
		AllowTransforms:     true,
		ForbidNetworkCalls:  true,
		ForbidCodeExecution: true,
	}
}

// DslGenerateHints carries optional steering input for generation.
type DslGenerateHints struct {
	Columns string `json:"columns,omitempty"`
}

// DslGenerateRequest asks the server's AI assistant to produce a DSL and
// output schema from a natural-language goal and a sample input.
type DslGenerateRequest struct {
	GoalText             string                 `json:"goalText"`
	SampleInput          json.RawMessage        `json:"sampleInput"`
	DslProfile           string                 `json:"dslProfile"`
	Constraints          DslGenerateConstraints `json:"constraints"`
	Hints                *DslGenerateHints      `json:"hints,omitempty"`
	ExistingDsl          *Dsl                   `json:"existingDsl,omitempty"`
	ExistingOutputSchema json.RawMessage        `json:"existingOutputSchema,omitempty"`
	Engine               string                 `json:"engine,omitempty"`
}

// ModelInfo identifies the model that produced a generation result.
type ModelInfo struct {
	Provider      string `json:"provider,omitempty"`
	Model         string `json:"model,omitempty"`
	PromptVersion string `json:"promptVersion,omitempty"`
}

// DslGenerateResult is the assistant's output. Plan, when present, should be
// preserved and forwarded to preview rather than re-derived.
type DslGenerateResult struct {
	Dsl          Dsl               `json:"dsl"`
	OutputSchema json.RawMessage   `json:"outputSchema"`
	ExampleRows  []json.RawMessage `json:"exampleRows,omitempty"`
	Plan         json.RawMessage   `json:"plan,omitempty"`
	Rationale    string            `json:"rationale"`
	Warnings     []string          `json:"warnings"`
	ModelInfo    *ModelInfo        `json:"modelInfo,omitempty"`
}
