package listings

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"becsus/pkg/pagination"
)

// System defines the public contract for listing domain operations.
type System interface {
	Handler(guard func(http.HandlerFunc) http.HandlerFunc) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Listing], error)

	Find(ctx context.Context, id uuid.UUID) (*Listing, error)
	Create(ctx context.Context, cmd CreateCommand) (*Listing, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
