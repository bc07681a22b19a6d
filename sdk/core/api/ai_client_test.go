package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metricsimple/metricsimple/sdk/core"
)

func TestNewAIClient(t *testing.T) {
	client := NewAIClient("http://localhost:8080/api/v1", nil)
	require.IsType(t, &aiClient{}, client)
}

func TestAIClientGenerateDsl(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/ai/dsl/generate", r.URL.Path)
				req := core.DslGenerateRequest{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Equal(t, "sum totals by month", req.GoalText)
				require.Equal(t, 50, req.Constraints.MaxColumns)
				fmt.Fprintln(w, `{
					"dsl": {"profile": "ir", "text": "{\"columns\":[]}"},
					"outputSchema": {"type": "array"},
					"plan": {"columns": []},
					"rationale": "grouped by month",
					"warnings": ["sample input truncated"]
				}`)
			},
		),
	)
	defer server.Close()
	client := NewAIClient(server.URL+"/api/v1", nil)
	result, err := client.GenerateDsl(
		context.Background(),
		core.DslGenerateRequest{
			GoalText:    "sum totals by month",
			SampleInput: json.RawMessage(`[{"total": 42}]`),
			DslProfile:  core.DslProfileIR,
			Constraints: core.DefaultDslGenerateConstraints(),
		},
	)
	require.NoError(t, err)
	require.Equal(t, core.DslProfileIR, result.Dsl.Profile)
	require.NotEmpty(t, result.Plan)
	require.Equal(t, "grouped by month", result.Rationale)
	require.Equal(t, []string{"sample input truncated"}, result.Warnings)
}

func TestDefaultDslGenerateConstraints(t *testing.T) {
	constraints := core.DefaultDslGenerateConstraints()
	require.Equal(t, 50, constraints.MaxColumns)
	require.True(t, constraints.AllowTransforms)
	require.True(t, constraints.ForbidNetworkCalls)
	require.True(t, constraints.ForbidCodeExecution)
}
