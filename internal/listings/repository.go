package listings

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"becsus/pkg/pagination"
	"becsus/pkg/query"
	"becsus/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a listing repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "listings"),
		pagination: pagination,
	}
}

func (r *repo) Handler(guard func(http.HandlerFunc) http.HandlerFunc) *Handler {
	return NewHandler(r, r.logger, r.pagination, guard)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Listing], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count listings: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanListing)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Listing, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanListing)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Listing, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	photos, err := encodePhotos(cmd.Photos)
	if err != nil {
		return nil, fmt.Errorf("encode photos: %w", err)
	}

	q := `
		INSERT INTO listings(id, title, category, price, description, photos, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, category, price, description, photos, status, created_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		cmd.Title,
		cmd.Category,
		cmd.Price,
		cmd.Description,
		photos,
		cmd.Status,
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Listing, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanListing)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing created", "id", l.ID, "title", l.Title)
	return &l, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Listing, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	photos, err := encodePhotos(cmd.Photos)
	if err != nil {
		return nil, fmt.Errorf("encode photos: %w", err)
	}

	q := `
		UPDATE listings
		SET title = $2, category = $3, price = $4, description = $5, photos = $6, status = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, title, category, price, description, photos, status, created_at, updated_at`

	updateArgs := []any{
		id,
		cmd.Title,
		cmd.Category,
		cmd.Price,
		cmd.Description,
		photos,
		cmd.Status,
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Listing, error) {
		return repository.QueryOne(ctx, tx, q, updateArgs, scanListing)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing updated", "id", l.ID)
	return &l, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Listing, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrInvalidListing, status)
	}

	q := `
		UPDATE listings
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, title, category, price, description, photos, status, created_at, updated_at`

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Listing, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, status}, scanListing)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing status updated", "id", l.ID, "status", l.Status)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM listings WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing deleted", "id", id)
	return nil
}
