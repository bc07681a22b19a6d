package core

import (
	"strings"
	"time"
)

// ProcessStatus is the lifecycle state of a Process.
type ProcessStatus string

const (
	ProcessStatusDraft    ProcessStatus = "Draft"
	ProcessStatusActive   ProcessStatus = "Active"
	ProcessStatusDisabled ProcessStatus = "Disabled"
)

// OutputDestinationType enumerates where a Process writes its output.
type OutputDestinationType string

const (
	OutputDestinationLocalFileSystem OutputDestinationType = "LocalFileSystem"
	OutputDestinationAzureBlob       OutputDestinationType = "AzureBlobStorage"
)

// LocalFileSystemConfig configures a LocalFileSystem destination.
type LocalFileSystemConfig struct {
	BasePath string `json:"basePath"`
}

// AzureBlobStorageConfig configures an AzureBlobStorage destination. The
// connection string itself lives server-side; only a reference travels here.
type AzureBlobStorageConfig struct {
	ConnectionStringRef string  `json:"connectionStringRef"`
	Container           string  `json:"container"`
	PathPrefix          *string `json:"pathPrefix,omitempty"`
}

// OutputDestination is a tagged union: exactly one of Local or Blob is set,
// matching Type.
type OutputDestination struct {
	Type  OutputDestinationType   `json:"type"`
	Local *LocalFileSystemConfig  `json:"local,omitempty"`
	Blob  *AzureBlobStorageConfig `json:"blob,omitempty"`
}

// Process is a metric pipeline: a connector to pull from and destinations to
// write to, with versioned transformation definitions managed separately.
type Process struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        *string             `json:"description,omitempty"`
	Status             ProcessStatus       `json:"status"`
	ConnectorID        string              `json:"connectorId"`
	Tags               []string            `json:"tags,omitempty"`
	OutputDestinations []OutputDestination `json:"outputDestinations"`
	CreatedAt          *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time          `json:"updatedAt,omitempty"`
}

// NormalizeProcess returns a submission-ready copy: identifying strings
// trimmed, a blank description dropped, tags trimmed with empties removed
// (nil when none survive), destinations normalized per type, and server
// timestamps stripped.
func NormalizeProcess(process Process) Process {
	normalized := process
	normalized.ID = strings.TrimSpace(process.ID)
	normalized.Name = strings.TrimSpace(process.Name)
	normalized.ConnectorID = strings.TrimSpace(process.ConnectorID)
	normalized.Description = normalizeOptionalString(process.Description)

	var tags []string
	for _, tag := range process.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	normalized.Tags = tags

	destinations := make([]OutputDestination, len(process.OutputDestinations))
	for i, destination := range process.OutputDestinations {
		destinations[i] = normalizeOutputDestination(destination)
	}
	normalized.OutputDestinations = destinations

	normalized.CreatedAt = nil
	normalized.UpdatedAt = nil
	return normalized
}

func normalizeOutputDestination(
	destination OutputDestination,
) OutputDestination {
	if destination.Type == OutputDestinationLocalFileSystem {
		basePath := ""
		if destination.Local != nil {
			basePath = strings.TrimSpace(destination.Local.BasePath)
		}
		return OutputDestination{
			Type:  OutputDestinationLocalFileSystem,
			Local: &LocalFileSystemConfig{BasePath: basePath},
		}
	}
	blob := AzureBlobStorageConfig{}
	if destination.Blob != nil {
		blob.ConnectionStringRef =
			strings.TrimSpace(destination.Blob.ConnectionStringRef)
		blob.Container = strings.TrimSpace(destination.Blob.Container)
		blob.PathPrefix = normalizeOptionalString(destination.Blob.PathPrefix)
	}
	return OutputDestination{
		Type: OutputDestinationAzureBlob,
		Blob: &blob,
	}
}

// normalizeOptionalString trims, returning nil for blank input.
func normalizeOptionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
