package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// ConnectorsClient is the specialized client for managing Connectors.
// Create and Update submit normalized payloads; see core.NormalizeConnector
// for the write-only secret semantics.
type ConnectorsClient interface {
	// Create creates a new Connector.
	Create(context.Context, core.Connector) (core.Connector, error)
	// List returns all Connectors.
	List(context.Context) ([]core.Connector, error)
	// Get retrieves a single Connector by its identifier.
	Get(context.Context, string) (core.Connector, error)
	// Update updates an existing Connector.
	Update(context.Context, string, core.Connector) (core.Connector, error)
	// Delete deletes a single Connector by its identifier.
	Delete(context.Context, string) error
}

type connectorsClient struct {
	*restmachinery.BaseClient
}

// NewConnectorsClient returns a specialized client for managing Connectors.
func NewConnectorsClient(
	apiAddress string,
	httpClient *http.Client,
) ConnectorsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &connectorsClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (c *connectorsClient) Create(
	_ context.Context,
	connector core.Connector,
) (core.Connector, error) {
	createdConnector := core.Connector{}
	return createdConnector, c.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "connectors",
			ReqBodyObj:  core.NormalizeConnector(connector),
			SuccessCode: http.StatusCreated,
			RespObj:     &createdConnector,
		},
	)
}

func (c *connectorsClient) List(
	_ context.Context,
) ([]core.Connector, error) {
	connectors := []core.Connector{}
	return connectors, c.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "connectors",
			SuccessCode: http.StatusOK,
			RespObj:     &connectors,
		},
	)
}

func (c *connectorsClient) Get(
	_ context.Context,
	id string,
) (core.Connector, error) {
	connector := core.Connector{}
	return connector, c.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("connectors/%s", url.PathEscape(id)),
			SuccessCode: http.StatusOK,
			RespObj:     &connector,
		},
	)
}

func (c *connectorsClient) Update(
	_ context.Context,
	id string,
	connector core.Connector,
) (core.Connector, error) {
	updatedConnector := core.Connector{}
	return updatedConnector, c.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("connectors/%s", url.PathEscape(id)),
			ReqBodyObj:  core.NormalizeConnector(connector),
			SuccessCode: http.StatusOK,
			RespObj:     &updatedConnector,
		},
	)
}

func (c *connectorsClient) Delete(_ context.Context, id string) error {
	return c.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("connectors/%s", url.PathEscape(id)),
			SuccessCode: http.StatusNoContent,
		},
	)
}
