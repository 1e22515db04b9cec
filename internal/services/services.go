// package services defines interface Source for fetching list records over HTTP
package services

import (
	"context"

	"github.com/desertthunder/listmerge/internal/models"
)

// Source defines a provider of raw list records.
type Source interface {
	// FetchLists retrieves every record, in the order the provider returns them.
	FetchLists(ctx context.Context) ([]models.Record, error)

	// Name returns a short description of the source for logs and headers.
	Name() string
}

// ListsPayload is the body returned by the lists endpoint.
type ListsPayload struct {
	Lists []models.Record `json:"lists"`
}
