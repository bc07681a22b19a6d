package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// roundTrip marshals a normalized payload and unmarshals it back so tests can
// assert on actual JSON key presence, which is the whole point of the
// secret-field contract.
func roundTrip(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)
	result := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(payloadBytes, &result))
	return result
}

func TestNormalizeConnectorBasics(t *testing.T) {
	enabled := true
	payload := roundTrip(
		t,
		NormalizeConnector(
			Connector{
				ID:             "  github  ",
				Name:           " GitHub ",
				BaseURL:        " https://api.github.com ",
				TimeoutSeconds: 30,
				Enabled:        &enabled,
			},
		),
	)
	require.Equal(t, "github", payload["id"])
	require.Equal(t, "GitHub", payload["name"])
	require.Equal(t, "https://api.github.com", payload["baseUrl"])
	require.Equal(t, true, payload["enabled"])
	// A connector with no auth type defaults to NONE
	require.Equal(t, "NONE", payload["authType"])
}

func TestNormalizeConnectorSecrets(t *testing.T) {
	testCases := []struct {
		name      string
		connector Connector
		// Keys whose presence and value we assert
		expectPresent map[string]interface{}
		expectAbsent  []string
	}{
		{
			name: "sentinel unset omits the secret entirely",
			connector: Connector{
				AuthType: AuthTypeBearer,
				APIToken: strPtr("hunter2"),
			},
			expectAbsent: []string{"apiToken", "apiTokenSpecified"},
		},
		{
			name: "sentinel set with value replaces the secret",
			connector: Connector{
				AuthType:          AuthTypeBearer,
				APIToken:          strPtr("  hunter2  "),
				APITokenSpecified: true,
			},
			expectPresent: map[string]interface{}{
				"apiToken":          "hunter2",
				"apiTokenSpecified": true,
			},
		},
		{
			name: "sentinel set with nil sends an explicit null",
			connector: Connector{
				AuthType:          AuthTypeBearer,
				APIToken:          nil,
				APITokenSpecified: true,
			},
			expectPresent: map[string]interface{}{
				"apiToken":          nil,
				"apiTokenSpecified": true,
			},
		},
		{
			name: "sentinel set with blank value never deletes",
			connector: Connector{
				AuthType:          AuthTypeBearer,
				APIToken:          strPtr("   "),
				APITokenSpecified: true,
			},
			expectAbsent: []string{"apiToken", "apiTokenSpecified"},
		},
		{
			name: "api key secret pairs with its own sentinel",
			connector: Connector{
				AuthType:        AuthTypeAPIKey,
				APIKeyLocation:  APIKeyLocationHeader,
				APIKeyName:      "X-Api-Key",
				APIKeyValue:     strPtr("hunter2"),
				APIKeySpecified: true,
			},
			expectPresent: map[string]interface{}{
				"apiKeyLocation":  "HEADER",
				"apiKeyName":      "X-Api-Key",
				"apiKeyValue":     "hunter2",
				"apiKeySpecified": true,
			},
		},
		{
			name: "basic password clear",
			connector: Connector{
				AuthType:               AuthTypeBasic,
				BasicUsername:          "alice",
				BasicPassword:          nil,
				BasicPasswordSpecified: true,
			},
			expectPresent: map[string]interface{}{
				"basicUsername":          "alice",
				"basicPassword":          nil,
				"basicPasswordSpecified": true,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			payload := roundTrip(t, NormalizeConnector(testCase.connector))
			for key, expected := range testCase.expectPresent {
				value, present := payload[key]
				require.True(t, present, "expected key %q to be present", key)
				require.Equal(t, expected, value)
			}
			for _, key := range testCase.expectAbsent {
				_, present := payload[key]
				require.False(t, present, "expected key %q to be absent", key)
			}
		})
	}
}

func TestNormalizeConnectorStripsReadOnlyFields(t *testing.T) {
	connector := Connector{
		ID:          "github",
		AuthType:    AuthTypeBearer,
		HasAPIToken: true,
	}
	payload := roundTrip(t, NormalizeConnector(connector))
	for _, key := range []string{
		"hasApiToken",
		"hasApiKey",
		"hasBasicPassword",
		"createdAt",
		"updatedAt",
	} {
		_, present := payload[key]
		require.False(t, present, "expected key %q to be absent", key)
	}
}

func TestNormalizeConnectorScopesAuthFields(t *testing.T) {
	// Fields for schemes other than the selected one never travel
	payload := roundTrip(
		t,
		NormalizeConnector(
			Connector{
				AuthType:       AuthTypeBearer,
				APIKeyLocation: APIKeyLocationQuery,
				APIKeyName:     "key",
				BasicUsername:  "alice",
			},
		),
	)
	for _, key := range []string{"apiKeyLocation", "apiKeyName", "basicUsername"} {
		_, present := payload[key]
		require.False(t, present, "expected key %q to be absent", key)
	}
}

func TestNormalizeRequestDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		defaults *RequestDefaults
		expected map[string]interface{}
	}{
		{
			name:     "nil stays nil",
			defaults: nil,
			expected: nil,
		},
		{
			name:     "all-empty collapses to nil",
			defaults: &RequestDefaults{},
			expected: nil,
		},
		{
			name: "blank entries collapse to nil",
			defaults: &RequestDefaults{
				Headers:     map[string]string{"  ": "value"},
				ContentType: "   ",
			},
			expected: nil,
		},
		{
			name: "null body dropped",
			defaults: &RequestDefaults{
				Body: json.RawMessage("null"),
			},
			expected: nil,
		},
		{
			name: "populated defaults survive trimmed",
			defaults: &RequestDefaults{
				Method:      "POST",
				Headers:     map[string]string{" Accept ": " application/json "},
				QueryParams: map[string]string{"page": "1"},
				Body:        json.RawMessage(`{"a":1}`),
				ContentType: " application/json ",
			},
			expected: map[string]interface{}{
				"method":      "POST",
				"headers":     map[string]string{"Accept": "application/json"},
				"queryParams": map[string]string{"page": "1"},
				"body":        json.RawMessage(`{"a":1}`),
				"contentType": "application/json",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(
				t,
				testCase.expected,
				NormalizeRequestDefaults(testCase.defaults),
			)
		})
	}
}

func TestNormalizeKeyValueMap(t *testing.T) {
	require.Nil(t, NormalizeKeyValueMap(nil))
	require.Nil(t, NormalizeKeyValueMap(map[string]string{"  ": "value"}))
	require.Equal(
		t,
		map[string]string{"Accept": "application/json"},
		NormalizeKeyValueMap(
			map[string]string{" Accept ": " application/json "},
		),
	)
}
