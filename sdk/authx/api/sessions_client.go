package api

import (
	"context"
	"net/http"

	"github.com/metricsimple/metricsimple/sdk/authx"
	"github.com/metricsimple/metricsimple/sdk/internal/restmachinery"
)

// SessionsClient talks to the API server's auth endpoints. It implements
// authx.SessionService.
type SessionsClient interface {
	// CreateSession exchanges a username and password for a token grant.
	// 401 means bad credentials; 429 means the attempt was rate limited.
	CreateSession(
		ctx context.Context,
		username string,
		password string,
	) (authx.TokenGrant, error)
	// WhoAmI resolves the current principal. Callers should treat ANY failure
	// as a cue to fall back to decoding the token's claims.
	WhoAmI(ctx context.Context) (*authx.User, error)
}

type sessionsClient struct {
	*restmachinery.BaseClient
}

// NewSessionsClient returns a client for the API server's auth endpoints.
// The auth endpoints live on the unversioned address; the versioned API
// address passed in is rewritten accordingly.
func NewSessionsClient(
	apiAddress string,
	httpClient *http.Client,
) SessionsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &sessionsClient{
		BaseClient: &restmachinery.BaseClient{
			APIAddress: restmachinery.AuthAddress(apiAddress),
			HTTPClient: httpClient,
		},
	}
}

func (s *sessionsClient) CreateSession(
	_ context.Context,
	username string,
	password string,
) (authx.TokenGrant, error) {
	grant := authx.TokenGrant{}
	return grant, s.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "auth/token",
			ReqBodyObj: struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}{
				Username: username,
				Password: password,
			},
			SuccessCode: http.StatusOK,
			RespObj:     &grant,
		},
	)
}

func (s *sessionsClient) WhoAmI(_ context.Context) (*authx.User, error) {
	resp := struct {
		Sub         string   `json:"sub"`
		Roles       []string `json:"roles"`
		DisplayName string   `json:"displayName"`
		Email       string   `json:"email"`
	}{}
	if err := s.ExecuteRequest(
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "auth/me",
			SuccessCode: http.StatusOK,
			RespObj:     &resp,
		},
	); err != nil {
		return nil, err
	}
	return &authx.User{
		Sub:         resp.Sub,
		Roles:       authx.NormalizeRoles(resp.Roles),
		DisplayName: resp.DisplayName,
		Email:       resp.Email,
	}, nil
}
