package api

import (
	"context"
	"net/http"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// AIClient is the specialized client for AI-assisted Dsl generation.
type AIClient interface {
	// GenerateDsl asks the server to draft a Dsl program (and matching
	// output schema) from a natural language goal and sample input.
	GenerateDsl(
		context.Context,
		core.DslGenerateRequest,
	) (core.DslGenerateResult, error)
}

type aiClient struct {
	*restmachinery.BaseClient
}

// NewAIClient returns a specialized client for AI-assisted Dsl generation.
func NewAIClient(apiAddress string, httpClient *http.Client) AIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &aiClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (a *aiClient) GenerateDsl(
	_ context.Context,
	req core.DslGenerateRequest,
) (core.DslGenerateResult, error) {
	result := core.DslGenerateResult{}
	return result, a.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "ai/dsl/generate",
			ReqBodyObj:  req,
			SuccessCode: http.StatusOK,
			RespObj:     &result,
		},
	)
}
