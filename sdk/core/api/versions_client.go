package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// VersionsClient is the specialized client for managing Process Versions.
// Versions are addressed by the owning Process's identifier plus an integer
// version number.
type VersionsClient interface {
	// Create creates a new Version of the given Process.
	Create(context.Context, string, core.ProcessVersion) (core.ProcessVersion, error)
	// List returns all Versions of the given Process.
	List(context.Context, string) ([]core.ProcessVersion, error)
	// Get retrieves a single Version of the given Process.
	Get(context.Context, string, int) (core.ProcessVersion, error)
	// Update updates an existing Version of the given Process.
	Update(
		context.Context,
		string,
		int,
		core.ProcessVersion,
	) (core.ProcessVersion, error)
	// Delete deletes a single Version of the given Process.
	Delete(context.Context, string, int) error
}

type versionsClient struct {
	*restmachinery.BaseClient
}

// NewVersionsClient returns a specialized client for managing Process
// Versions.
func NewVersionsClient(
	apiAddress string,
	httpClient *http.Client,
) VersionsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &versionsClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: apiAddress,
			HTTPClient: httpClient,
		},
	}
}

func (v *versionsClient) Create(
	_ context.Context,
	processID string,
	version core.ProcessVersion,
) (core.ProcessVersion, error) {
	createdVersion := core.ProcessVersion{}
	return createdVersion, v.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path: fmt.Sprintf(
				"processes/%s/versions",
				url.PathEscape(processID),
			),
			ReqBodyObj:  core.NormalizeProcessVersion(version),
			SuccessCode: http.StatusCreated,
			RespObj:     &createdVersion,
		},
	)
}

func (v *versionsClient) List(
	_ context.Context,
	processID string,
) ([]core.ProcessVersion, error) {
	versions := []core.ProcessVersion{}
	return versions, v.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodGet,
			Path: fmt.Sprintf(
				"processes/%s/versions",
				url.PathEscape(processID),
			),
			SuccessCode: http.StatusOK,
			RespObj:     &versions,
		},
	)
}

func (v *versionsClient) Get(
	_ context.Context,
	processID string,
	versionNumber int,
) (core.ProcessVersion, error) {
	version := core.ProcessVersion{}
	return version, v.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodGet,
			Path: fmt.Sprintf(
				"processes/%s/versions/%d",
				url.PathEscape(processID),
				versionNumber,
			),
			SuccessCode: http.StatusOK,
			RespObj:     &version,
		},
	)
}

func (v *versionsClient) Update(
	_ context.Context,
	processID string,
	versionNumber int,
	version core.ProcessVersion,
) (core.ProcessVersion, error) {
	updatedVersion := core.ProcessVersion{}
	return updatedVersion, v.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodPut,
			Path: fmt.Sprintf(
				"processes/%s/versions/%d",
				url.PathEscape(processID),
				versionNumber,
			),
			ReqBodyObj:  core.NormalizeProcessVersion(version),
			SuccessCode: http.StatusOK,
			RespObj:     &updatedVersion,
		},
	)
}

func (v *versionsClient) Delete(
	_ context.Context,
	processID string,
	versionNumber int,
) error {
	return v.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path: fmt.Sprintf(
				"processes/%s/versions/%d",
				url.PathEscape(processID),
				versionNumber,
			),
			SuccessCode: http.StatusNoContent,
		},
	)
}
