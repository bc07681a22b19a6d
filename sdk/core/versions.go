package core

import (
	"encoding/json"
	"strings"
	"time"
)

// DslProfileIR is the only DSL profile the workbench produces: a JSON
// intermediate-representation plan.
const DslProfileIR = "ir"

// Dsl is a transformation definition: a profile naming the dialect and its
// text.
type Dsl struct {
	Profile string `json:"profile"`
	Text    string `json:"text"`
}

// SourceRequest describes the upstream HTTP call a process version makes
// through its connector. Body is raw JSON: nil omits it, a literal null
// clears any server-side value.
type SourceRequest struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers,omitempty"`
	QueryParams map[string]string `json:"queryParams,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
	ContentType string            `json:"contentType,omitempty"`
}

// ProcessVersion is one versioned transformation definition of a Process.
type ProcessVersion struct {
	ProcessID     string          `json:"processId"`
	Version       int             `json:"version"`
	Enabled       bool            `json:"enabled"`
	SourceRequest SourceRequest   `json:"sourceRequest"`
	Dsl           Dsl             `json:"dsl"`
	OutputSchema  json.RawMessage `json:"outputSchema,omitempty"`
	SampleInput   json.RawMessage `json:"sampleInput,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// NormalizeProcessVersion returns a submission-ready copy: process id, DSL
// text, and the source request trimmed and filtered, server timestamps
// stripped.
func NormalizeProcessVersion(version ProcessVersion) ProcessVersion {
	normalized := version
	normalized.ProcessID = strings.TrimSpace(version.ProcessID)
	normalized.SourceRequest = NormalizeSourceRequest(version.SourceRequest)
	normalized.Dsl = Dsl{
		Profile: version.Dsl.Profile,
		Text:    strings.TrimSpace(version.Dsl.Text),
	}
	normalized.CreatedAt = nil
	normalized.UpdatedAt = nil
	return normalized
}

// NormalizeSourceRequest trims the path and content type and normalizes the
// header and query-param maps. The body passes through untouched; its
// omit/null distinction is the caller's to make.
func NormalizeSourceRequest(request SourceRequest) SourceRequest {
	normalized := SourceRequest{
		Method:      request.Method,
		Path:        strings.TrimSpace(request.Path),
		Headers:     NormalizeKeyValueMap(request.Headers),
		QueryParams: NormalizeKeyValueMap(request.QueryParams),
		Body:        request.Body,
	}
	if contentType :=
		strings.TrimSpace(request.ContentType); contentType != "" {
		normalized.ContentType = contentType
	}
	return normalized
}

// TryExtractPlan derives the IR plan object from DSL text. It returns the
// parsed plan only when the profile is "ir" and the text parses to a JSON
// object; arrays, primitives, blank text, and invalid JSON all yield nil
// rather than an error, since a missing plan is an expected state for the
// preview workbench.
func TryExtractPlan(profile string, text string) map[string]interface{} {
	if profile != DslProfileIR {
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var plan map[string]interface{}
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil
	}
	return plan
}
