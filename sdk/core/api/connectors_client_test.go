package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/metricsimple/metricsimple/sdk/core"
	"github.com/metricsimple/metricsimple/sdk/meta"
)

func TestNewConnectorsClient(t *testing.T) {
	client := NewConnectorsClient("http://localhost:8080/api/v1", nil)
	require.IsType(t, &connectorsClient{}, client)
}

func TestConnectorsClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/connectors", r.URL.Path)
				payload := map[string]interface{}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				require.Equal(t, "github", payload["id"])
				// The write-only secret travels with its sentinel
				require.Equal(t, "hunter2", payload["apiToken"])
				require.Equal(t, true, payload["apiTokenSpecified"])
				w.WriteHeader(http.StatusCreated)
				fmt.Fprintln(w, `{"id": "github", "hasApiToken": true}`)
			},
		),
	)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	token := "hunter2"
	created, err := client.Create(
		context.Background(),
		core.Connector{
			ID:                "github",
			AuthType:          core.AuthTypeBearer,
			APIToken:          &token,
			APITokenSpecified: true,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "github", created.ID)
	require.True(t, created.HasAPIToken)
	// The server never echoes the secret back
	require.Nil(t, created.APIToken)
}

func TestConnectorsClientList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/v1/connectors", r.URL.Path)
				fmt.Fprintln(w, `[{"id": "github"}, {"id": "jira"}]`)
			},
		),
	)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	connectors, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, connectors, 2)
	require.Equal(t, "github", connectors[0].ID)
	require.Equal(t, "jira", connectors[1].ID)
}

func TestConnectorsClientGet(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(
		"/api/v1/connectors/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "github", mux.Vars(r)["id"])
			fmt.Fprintln(w, `{"id": "github"}`)
		},
	)
	server := httptest.NewServer(router)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	connector, err := client.Get(context.Background(), "github")
	require.NoError(t, err)
	require.Equal(t, "github", connector.ID)
}

func TestConnectorsClientGetNotFound(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		),
	)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	_, err := client.Get(context.Background(), "no-such-connector")
	require.Error(t, err)
	require.IsType(t, &meta.ErrNotFound{}, err)
}

func TestConnectorsClientUpdate(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(
		"/api/v1/connectors/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "github", mux.Vars(r)["id"])
			payload := map[string]interface{}{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			// No secret submitted means no secret key travels
			_, present := payload["apiToken"]
			require.False(t, present)
			fmt.Fprintln(w, `{"id": "github", "name": "GitHub"}`)
		},
	)
	server := httptest.NewServer(router)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	updated, err := client.Update(
		context.Background(),
		"github",
		core.Connector{
			ID:       "github",
			Name:     "GitHub",
			AuthType: core.AuthTypeBearer,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "GitHub", updated.Name)
}

func TestConnectorsClientDelete(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(
		"/api/v1/connectors/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "github", mux.Vars(r)["id"])
			w.WriteHeader(http.StatusNoContent)
		},
	)
	server := httptest.NewServer(router)
	defer server.Close()
	client := NewConnectorsClient(server.URL+"/api/v1", nil)
	require.NoError(t, client.Delete(context.Background(), "github"))
}
