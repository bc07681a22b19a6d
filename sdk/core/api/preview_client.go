package api

import (
	"context"
	"net/http"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// PreviewClient is the specialized client for running transform previews
// against sample input without persisting anything.
type PreviewClient interface {
	// Transform runs the given Dsl against the request's sample input and
	// returns the transformed output along with any validation errors.
	Transform(
		context.Context,
		core.PreviewTransformRequest,
	) (core.PreviewTransformResponse, error)
}

type previewClient struct {
	*restmachinery.BaseClient
}

// NewPreviewClient returns a specialized client for running transform
// previews.
func NewPreviewClient(
	apiAddress string,
	httpClient *http.Client,
) PreviewClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &previewClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (p *previewClient) Transform(
	_ context.Context,
	req core.PreviewTransformRequest,
) (core.PreviewTransformResponse, error) {
	resp := core.PreviewTransformResponse{}
	return resp, p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "preview/transform",
			ReqBodyObj:  req,
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	)
}
