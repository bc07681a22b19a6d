package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// ProcessesClient is the specialized client for managing Processes.
type ProcessesClient interface {
	// Create creates a new Process.
	Create(context.Context, core.Process) (core.Process, error)
	// List returns all Processes.
	List(context.Context) ([]core.Process, error)
	// Get retrieves a single Process by its identifier.
	Get(context.Context, string) (core.Process, error)
	// Update updates an existing Process.
	Update(context.Context, string, core.Process) (core.Process, error)
	// Delete deletes a single Process by its identifier.
	Delete(context.Context, string) error
}

type processesClient struct {
	*restmachinery.BaseClient
}

// NewProcessesClient returns a specialized client for managing Processes.
func NewProcessesClient(
	apiAddress string,
	httpClient *http.Client,
) ProcessesClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &processesClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (p *processesClient) Create(
	_ context.Context,
	process core.Process,
) (core.Process, error) {
	createdProcess := core.Process{}
	return createdProcess, p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "processes",
			ReqBodyObj:  core.NormalizeProcess(process),
			SuccessCode: http.StatusCreated,
			RespObj:     &createdProcess,
		},
	)
}

func (p *processesClient) List(_ context.Context) ([]core.Process, error) {
	processes := []core.Process{}
	return processes, p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "processes",
			SuccessCode: http.StatusOK,
			RespObj:     &processes,
		},
	)
}

func (p *processesClient) Get(
	_ context.Context,
	id string,
) (core.Process, error) {
	process := core.Process{}
	return process, p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("processes/%s", url.PathEscape(id)),
			SuccessCode: http.StatusOK,
			RespObj:     &process,
		},
	)
}

func (p *processesClient) Update(
	_ context.Context,
	id string,
	process core.Process,
) (core.Process, error) {
	updatedProcess := core.Process{}
	return updatedProcess, p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("processes/%s", url.PathEscape(id)),
			ReqBodyObj:  core.NormalizeProcess(process),
			SuccessCode: http.StatusOK,
			RespObj:     &updatedProcess,
		},
	)
}

func (p *processesClient) Delete(_ context.Context, id string) error {
	return p.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("processes/%s", url.PathEscape(id)),
			SuccessCode: http.StatusNoContent,
		},
	)
}
