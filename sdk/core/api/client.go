package api

import "net/http"

// Client is the composite client for the MetricsSimple API's resource
// endpoints.
type Client interface {
	Connectors() ConnectorsClient
	Processes() ProcessesClient
	Versions() VersionsClient
	Preview() PreviewClient
	AI() AIClient
}

type client struct {
	connectorsClient ConnectorsClient
	processesClient  ProcessesClient
	versionsClient   VersionsClient
	previewClient    PreviewClient
	aiClient         AIClient
}

// NewClient returns a composite Client. The http.Client is expected to carry
// the restmachinery transport chain so every request is correlation-stamped
// and, when a token is available, credentialed; a nil http.Client falls back
// to http.DefaultClient.
func NewClient(apiAddress string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		connectorsClient: NewConnectorsClient(apiAddress, httpClient),
		processesClient:  NewProcessesClient(apiAddress, httpClient),
		versionsClient:   NewVersionsClient(apiAddress, httpClient),
		previewClient:    NewPreviewClient(apiAddress, httpClient),
		aiClient:         NewAIClient(apiAddress, httpClient),
	}
}

func (c *client) Connectors() ConnectorsClient {
	return c.connectorsClient
}

func (c *client) Processes() ProcessesClient {
	return c.processesClient
}

func (c *client) Versions() VersionsClient {
	return c.versionsClient
}

func (c *client) Preview() PreviewClient {
	return c.previewClient
}

func (c *client) AI() AIClient {
	return c.aiClient
}
