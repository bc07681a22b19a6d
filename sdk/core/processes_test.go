package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeProcess(t *testing.T) {
	now := time.Now()
	normalized := NormalizeProcess(
		Process{
			ID:          "  daily-metrics  ",
			Name:        " Daily Metrics ",
			Description: strPtr("   "),
			Status:      ProcessStatusDraft,
			ConnectorID: " github ",
			Tags:        []string{" finance ", "", "  "},
			OutputDestinations: []OutputDestination{
				{
					Type:  OutputDestinationLocalFileSystem,
					Local: &LocalFileSystemConfig{BasePath: " /var/out "},
				},
			},
			CreatedAt: &now,
			UpdatedAt: &now,
		},
	)
	require.Equal(t, "daily-metrics", normalized.ID)
	require.Equal(t, "Daily Metrics", normalized.Name)
	// A blank description is dropped, not sent as empty
	require.Nil(t, normalized.Description)
	require.Equal(t, "github", normalized.ConnectorID)
	require.Equal(t, []string{"finance"}, normalized.Tags)
	require.Equal(t, "/var/out", normalized.OutputDestinations[0].Local.BasePath)
	require.Nil(t, normalized.CreatedAt)
	require.Nil(t, normalized.UpdatedAt)
}

func TestNormalizeProcessDropsAllBlankTags(t *testing.T) {
	normalized := NormalizeProcess(
		Process{Tags: []string{"  ", ""}},
	)
	require.Nil(t, normalized.Tags)
}

func TestNormalizeProcessKeepsDescription(t *testing.T) {
	normalized := NormalizeProcess(
		Process{Description: strPtr("  pulls daily numbers  ")},
	)
	require.NotNil(t, normalized.Description)
	require.Equal(t, "pulls daily numbers", *normalized.Description)
}

func TestNormalizeOutputDestinationBlob(t *testing.T) {
	normalized := NormalizeProcess(
		Process{
			OutputDestinations: []OutputDestination{
				{
					Type: OutputDestinationAzureBlob,
					Blob: &AzureBlobStorageConfig{
						ConnectionStringRef: " metrics-storage ",
						Container:           " exports ",
						PathPrefix:          strPtr(" daily/ "),
					},
				},
			},
		},
	)
	blob := normalized.OutputDestinations[0].Blob
	require.NotNil(t, blob)
	require.Equal(t, "metrics-storage", blob.ConnectionStringRef)
	require.Equal(t, "exports", blob.Container)
	require.Equal(t, "daily/", *blob.PathPrefix)
	require.Nil(t, normalized.OutputDestinations[0].Local)
}

func TestNormalizeOutputDestinationLocalWithoutConfig(t *testing.T) {
	// A local destination with a missing config object still normalizes to a
	// well-formed, if empty, config rather than nil
	normalized := NormalizeProcess(
		Process{
			OutputDestinations: []OutputDestination{
				{Type: OutputDestinationLocalFileSystem},
			},
		},
	)
	require.NotNil(t, normalized.OutputDestinations[0].Local)
	require.Empty(t, normalized.OutputDestinations[0].Local.BasePath)
}
