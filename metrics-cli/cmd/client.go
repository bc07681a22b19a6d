package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/metricsimple/metricsimple/sdk/authx"
	authxapi "github.com/metricsimple/metricsimple/sdk/authx/api"
	coreapi "github.com/metricsimple/metricsimple/sdk/core/api"
	"github.com/metricsimple/metricsimple/sdk/transport"
)

// appEnv wires one command invocation's worth of SDK machinery together: the
// runtime config, the session manager backed by the on-disk token store, and
// the resource clients, all sharing one http.Client carrying the transport
// chain.
type appEnv struct {
	cfg      *runtimeConfig
	sessions *authx.SessionManager
	client   coreapi.Client
}

func getAppEnv(c *cli.Context) (*appEnv, error) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error loading configuration")
	}
	// A login-scoped override beats everything else
	if c.IsSet(flagAPIAddress) {
		cfg.APIAddress = c.String(flagAPIAddress)
	}

	metricsHome, err := getMetricsHome()
	if err != nil {
		return nil, err
	}
	store := authx.NewFileTokenStore(metricsHome)

	// The session manager does not exist yet when the transport is built, so
	// the unauthorized hook binds late.
	var sessions *authx.SessionManager
	httpClient := &http.Client{
		Transport: transport.New(
			transport.Config{
				APIAddress: cfg.APIAddress,
				Token:      store.Token,
				OnUnauthorized: func() {
					if sessions != nil {
						sessions.Logout()
					}
				},
				Notifier: &cliNotifier{},
			},
		),
	}
	sessions = authx.NewSessionManager(
		store,
		authxapi.NewSessionsClient(cfg.APIAddress, httpClient),
	)

	return &appEnv{
		cfg:      cfg,
		sessions: sessions,
		client:   coreapi.NewClient(cfg.APIAddress, httpClient),
	}, nil
}
