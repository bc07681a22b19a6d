package core

import (
	"encoding/json"
	"strings"
	"time"
)

// AuthType enumerates the authentication schemes a Connector can use against
// its upstream API.
type AuthType string

const (
	AuthTypeNone   AuthType = "NONE"
	AuthTypeBearer AuthType = "BEARER"
	AuthTypeAPIKey AuthType = "API_KEY"
	AuthTypeBasic  AuthType = "BASIC"
)

// APIKeyLocation says where an API_KEY connector places its key.
type APIKeyLocation string

const (
	APIKeyLocationHeader APIKeyLocation = "HEADER"
	APIKeyLocationQuery  APIKeyLocation = "QUERY"
)

// RequestDefaults are connector-scoped HTTP defaults applied to every call
// made through the connector.
type RequestDefaults struct {
	Method      string            `json:"method,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	QueryParams map[string]string `json:"queryParams,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
	ContentType string            `json:"contentType,omitempty"`
}

// Connector holds the credentials and defaults for calling an external API.
//
// The secret fields (APIToken, APIKeyValue, BasicPassword) are write-only:
// the server never echoes them back, reporting only the Has* presence flags.
// Each secret pairs with a *Specified sentinel; see NormalizeConnector for
// the submission semantics. The sentinels exist only within a single
// create/update submission and must never be stored or round-tripped from a
// prior load.
type Connector struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	BaseURL        string   `json:"baseUrl"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	Enabled        *bool    `json:"enabled,omitempty"`
	AuthType       AuthType `json:"authType,omitempty"`

	// BEARER
	APIToken          *string `json:"apiToken,omitempty"`
	APITokenSpecified bool    `json:"apiTokenSpecified,omitempty"`
	HasAPIToken       bool    `json:"hasApiToken,omitempty"`

	// API_KEY
	APIKeyLocation  APIKeyLocation `json:"apiKeyLocation,omitempty"`
	APIKeyName      string         `json:"apiKeyName,omitempty"`
	APIKeyValue     *string        `json:"apiKeyValue,omitempty"`
	APIKeySpecified bool           `json:"apiKeySpecified,omitempty"`
	HasAPIKey       bool           `json:"hasApiKey,omitempty"`

	// BASIC
	BasicUsername          string  `json:"basicUsername,omitempty"`
	BasicPassword          *string `json:"basicPassword,omitempty"`
	BasicPasswordSpecified bool    `json:"basicPasswordSpecified,omitempty"`
	HasBasicPassword       bool    `json:"hasBasicPassword,omitempty"`

	RequestDefaults *RequestDefaults `json:"requestDefaults,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NormalizeConnector builds the submission payload for a connector create or
// update. The result is a map because the secret-field contract is expressed
// through JSON key presence, which struct tags cannot encode:
//
//   - sentinel unset: the key is absent and the server keeps its value;
//   - sentinel set with a non-empty trimmed string: the value is replaced;
//   - sentinel set with an explicit nil: the key is present with a JSON null
//     and the server removes the secret;
//   - sentinel set with an empty-after-trim string: treated as "no change" --
//     an accidental empty submission never deletes a secret.
//
// Read-only presence flags and server timestamps are never emitted.
func NormalizeConnector(connector Connector) map[string]interface{} {
	payload := map[string]interface{}{
		"id":             strings.TrimSpace(connector.ID),
		"name":           strings.TrimSpace(connector.Name),
		"baseUrl":        strings.TrimSpace(connector.BaseURL),
		"timeoutSeconds": connector.TimeoutSeconds,
	}
	if connector.Enabled != nil {
		payload["enabled"] = *connector.Enabled
	}

	authType := connector.AuthType
	if authType == "" {
		authType = AuthTypeNone
	}
	payload["authType"] = authType

	if authType == AuthTypeAPIKey {
		if connector.APIKeyLocation != "" {
			payload["apiKeyLocation"] = connector.APIKeyLocation
		}
		if name := strings.TrimSpace(connector.APIKeyName); name != "" {
			payload["apiKeyName"] = name
		}
	}
	if authType == AuthTypeBasic {
		if username :=
			strings.TrimSpace(connector.BasicUsername); username != "" {
			payload["basicUsername"] = username
		}
	}

	applySecret(
		payload,
		"apiToken",
		"apiTokenSpecified",
		connector.APITokenSpecified,
		connector.APIToken,
	)
	applySecret(
		payload,
		"apiKeyValue",
		"apiKeySpecified",
		connector.APIKeySpecified,
		connector.APIKeyValue,
	)
	applySecret(
		payload,
		"basicPassword",
		"basicPasswordSpecified",
		connector.BasicPasswordSpecified,
		connector.BasicPassword,
	)

	if defaults :=
		NormalizeRequestDefaults(connector.RequestDefaults); defaults != nil {
		payload["requestDefaults"] = defaults
	}

	return payload
}

func applySecret(
	payload map[string]interface{},
	valueKey string,
	sentinelKey string,
	specified bool,
	value *string,
) {
	if !specified {
		return
	}
	if value == nil {
		payload[valueKey] = nil
		payload[sentinelKey] = true
		return
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		// Not an explicit clear; leave the server's value alone.
		return
	}
	payload[valueKey] = trimmed
	payload[sentinelKey] = true
}

// NormalizeRequestDefaults trims and filters connector request defaults,
// collapsing an all-empty object to nil so the server never has to
// distinguish "sent but empty" from "not sent".
func NormalizeRequestDefaults(
	defaults *RequestDefaults,
) map[string]interface{} {
	if defaults == nil {
		return nil
	}
	normalized := map[string]interface{}{}
	if defaults.Method != "" {
		normalized["method"] = defaults.Method
	}
	if headers := NormalizeKeyValueMap(defaults.Headers); headers != nil {
		normalized["headers"] = headers
	}
	if queryParams :=
		NormalizeKeyValueMap(defaults.QueryParams); queryParams != nil {
		normalized["queryParams"] = queryParams
	}
	if body := string(defaults.Body); len(defaults.Body) > 0 &&
		body != "null" && body != `""` {
		normalized["body"] = defaults.Body
	}
	if contentType :=
		strings.TrimSpace(defaults.ContentType); contentType != "" {
		normalized["contentType"] = contentType
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// NormalizeKeyValueMap trims every key and value, drops entries whose key is
// empty after trimming, and returns nil when nothing remains.
func NormalizeKeyValueMap(kv map[string]string) map[string]string {
	if kv == nil {
		return nil
	}
	normalized := map[string]string{}
	for key, value := range kv {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		normalized[trimmedKey] = strings.TrimSpace(value)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
