package restmachinery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/metricsimple/metricsimple/sdk/meta"
)

// AuthAddress derives the unversioned address that hosts the auth and health
// endpoints from a versioned API address, e.g. http://host/api/v1 ->
// http://host/api. An address without a version suffix is returned as-is.
func AuthAddress(apiAddress string) string {
	return strings.TrimSuffix(apiAddress, "/v1")
}

// BaseClient provides the plumbing every specialized API client is built on.
// The HTTPClient is expected to carry the transport chain that stamps
// correlation ids and attaches credentials; BaseClient itself never sees the
// token.
type BaseClient struct {
	APIAddress string
	HTTPClient *http.Client
}

// ExecuteRequest submits the request and, when RespObj is non-nil,
// unmarshals the response body into it.
func (b *BaseClient) ExecuteRequest(req OutboundRequest) error {
	resp, err := b.SubmitRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest submits the request and returns the raw response. Responses
// with an unexpected status are converted to the typed error matching the
// status; the structured error body, when present, fills in its fields.
func (b *BaseClient) SubmitRequest(
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	r, err := http.NewRequest(
		req.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, req.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.Path,
		)
	}
	if len(req.QueryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	if reqBodyReader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		r.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		// The server was never reached; there is no status to dispatch on.
		return nil, &meta.ErrConnectivity{Cause: err}
	}

	if (req.SuccessCode == 0 && resp.StatusCode != http.StatusOK) ||
		(req.SuccessCode != 0 && resp.StatusCode != req.SuccessCode) {
		defer resp.Body.Close()
		glog.V(2).Infof(
			"api request %s %s returned %d",
			req.Method,
			req.Path,
			resp.StatusCode,
		)
		// The status code determines which typed error the body, if any,
		// fills in.
		var apiErr error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr = &meta.ErrAuthentication{}
		case http.StatusForbidden:
			apiErr = &meta.ErrAuthorization{}
		case http.StatusTooManyRequests:
			apiErr = &meta.ErrRateLimited{}
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			apiErr = &meta.ErrBadRequest{}
		case http.StatusNotFound:
			apiErr = &meta.ErrNotFound{}
		case http.StatusConflict:
			apiErr = &meta.ErrConflict{}
		case http.StatusInternalServerError:
			apiErr = &meta.ErrInternalServer{}
		default:
			return nil, errors.Errorf("received %d from API server", resp.StatusCode)
		}
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		// Servers do not always send a structured body with an error status;
		// the typed error stands on its own when unmarshaling fails.
		_ = json.Unmarshal(bodyBytes, apiErr) // nolint: errcheck
		return nil, apiErr
	}
	return resp, nil
}
