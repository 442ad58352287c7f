package contact

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/infrastructure/db/postgres"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchActive(ctx context.Context) (domain.Contacts, error) {
	ctx, cancel := context.WithTimeout(ctx, postgres.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, SelectActiveContacts)
	if err != nil {
		return nil, postgres.ClassifyErr(err)
	}
	defer rows.Close()

	var cs Contacts
	for rows.Next() {
		c := new(Contact)

		if err = rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Phone,
			&c.Birthday,
			&c.Email,
			&c.Picture,

			&c.IsDeleted,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, postgres.ClassifyErr(err)
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, postgres.ClassifyErr(err)
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) CreateContact(ctx context.Context, req domain.Contact) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, postgres.QueryTimeout)
	defer cancel()

	c := new(Contact)

	err := r.db.QueryRow(
		ctx,
		InsertContact,
		req.FirstName, nullable(req.LastName), req.Phone, req.Birthday, req.Email, nullable(req.Picture),
	).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Birthday,
		&c.Email,
		&c.Picture,

		&c.IsDeleted,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.ClassifyErr(err)
	}

	return fromDBModel(c), nil
}

// SoftDeleteContact is idempotent: an absent or already-deleted id matches
// zero rows and that is still a success.
func (r *Repository) SoftDeleteContact(ctx context.Context, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, postgres.QueryTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, SoftDeleteContactByID, int64(id))
	return postgres.ClassifyErr(err)
}

func (r *Repository) RecoverAllContacts(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, postgres.QueryTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, RecoverAllContacts)
	return postgres.ClassifyErr(err)
}

func (r *Repository) RecoverContact(ctx context.Context, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, postgres.QueryTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, RecoverContactByID, int64(id))
	return postgres.ClassifyErr(err)
}
