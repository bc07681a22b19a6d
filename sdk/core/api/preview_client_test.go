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

func TestNewPreviewClient(t *testing.T) {
	client := NewPreviewClient("http://localhost:8080/api/v1", nil)
	require.IsType(t, &previewClient{}, client)
}

func TestPreviewClientTransform(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/preview/transform", r.URL.Path)
				req := core.PreviewTransformRequest{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Equal(t, core.DslProfileIR, req.Dsl.Profile)
				require.NotEmpty(t, req.Plan)
				fmt.Fprintln(w, `{
					"isValid": true,
					"errors": [],
					"output": [{"total": 42}],
					"previewCsv": "total\n42"
				}`)
			},
		),
	)
	defer server.Close()
	client := NewPreviewClient(server.URL+"/api/v1", nil)
	resp, err := client.Transform(
		context.Background(),
		core.PreviewTransformRequest{
			SampleInput:  json.RawMessage(`[{"total": 42}]`),
			Dsl:          core.Dsl{Profile: core.DslProfileIR, Text: "{}"},
			OutputSchema: json.RawMessage(`{"type": "array"}`),
			Plan:         json.RawMessage(`{}`),
		},
	)
	require.NoError(t, err)
	require.True(t, resp.IsValid)
	require.Empty(t, resp.Errors)
	require.Equal(t, "total\n42", resp.PreviewCsv)
}

func TestPreviewClientTransformValidationErrors(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, `{
					"isValid": false,
					"errors": [
						{"path": "$[0].total", "message": "expected number", "kind": "type"}
					]
				}`)
			},
		),
	)
	defer server.Close()
	client := NewPreviewClient(server.URL+"/api/v1", nil)
	resp, err := client.Transform(
		context.Background(),
		core.PreviewTransformRequest{},
	)
	require.NoError(t, err)
	require.False(t, resp.IsValid)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "$[0].total", resp.Errors[0].Path)
}
