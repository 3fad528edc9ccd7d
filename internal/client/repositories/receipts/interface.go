package receipts

import (
	"context"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

type Repository interface {
	// Save inserts the receipts, replacing any with the same appointment UID.
	Save(ctx context.Context, items ...models.Receipt) error
	// List returns all receipts, newest first.
	List(ctx context.Context) ([]models.Receipt, error)
	Clear(ctx context.Context) error
}
