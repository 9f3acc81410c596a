package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	id := uuid.New()
	now := time.Now().UTC()

	_, err := r.db.Exec(
		ctx,
		InsertUser,
		id.String(), in.Name, in.Email, in.NationalID, in.BirthDate, in.Phone, now, now,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, conflictFromConstraint(err)
		}
		return nil, err
	}

	// The row is fully known at this point, no re-read needed.
	return &domain.User{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		NationalID: in.NationalID,
		BirthDate:  in.BirthDate,
		Phone:      in.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByID, id.String())
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) FindByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	return r.fetchOne(ctx, SelectUserByNationalID, nationalID)
}

func (r *Repository) FindAll(ctx context.Context) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.NationalID,
			&u.BirthDate,
			&u.Phone,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) Update(ctx context.Context, id domain.UUID, in domain.UpdateUserInput) (*domain.User, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Email != nil {
		set("email", *in.Email)
	}
	if in.Phone != nil {
		set("phone", *in.Phone)
	}

	// Nothing to write: the record is returned as is, updated_at
	// untouched.
	if len(sets) == 0 {
		return current, nil
	}

	set("updated_at", time.Now().UTC())
	args = append(args, id.String())

	query := fmt.Sprintf(UpdateUserByID, strings.Join(sets, ", "), len(args))

	u := new(User)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.NationalID,
		&u.BirthDate,
		&u.Phone,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, conflictFromConstraint(err)
		}
		// Row vanished between the existence check and the update.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Delete(ctx context.Context, id domain.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteUserByID, id.String())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.NationalID,
		&u.BirthDate,
		&u.Phone,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

// conflictFromConstraint maps the store's duplicate-key signal back to
// the uniqueness invariant it guards, so a create/update losing the
// check-then-insert race still surfaces as a conflict.
func conflictFromConstraint(err error) error {
	if postgres.UniqueConstraint(err) == "users_national_id_key" {
		return &domain.ConflictError{Field: "national id"}
	}
	return &domain.ConflictError{Field: "email"}
}
