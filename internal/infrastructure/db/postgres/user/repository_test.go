package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-registration-api/internal/domain/user"
)

var userColumns = []string{
	"id", "name", "email", "national_id", "birth_date", "phone", "created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func someModel() *User {
	now := time.Now().UTC()
	return &User{
		ID:         uuid.New(),
		Name:       "Joao Silva",
		Email:      "joao@example.com",
		NationalID: "123.456.789-00",
		BirthDate:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:      "(11) 98765-4321",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func rowsFor(models ...*User) *pgxmock.Rows {
	rows := pgxmock.NewRows(userColumns)
	for _, m := range models {
		rows.AddRow(m.ID, m.Name, m.Email, m.NationalID, m.BirthDate, m.Phone, m.CreatedAt, m.UpdatedAt)
	}
	return rows
}

func TestCreate(t *testing.T) {
	mock, repo := newMock(t)

	in := domain.CreateUserInput{
		Name:       "Joao Silva",
		Email:      "joao@example.com",
		NationalID: "123.456.789-00",
		BirthDate:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:      "(11) 98765-4321",
	}

	mock.ExpectExec(InsertUser).
		WithArgs(pgxmock.AnyArg(), in.Name, in.Email, in.NationalID, in.BirthDate, in.Phone, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	u, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, in.Name, u.Name)
	assert.Equal(t, in.Email, u.Email)
	assert.Equal(t, in.NationalID, u.NationalID)
	assert.Equal(t, in.BirthDate, u.BirthDate)
	assert.Equal(t, in.Phone, u.Phone)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		field      string
	}{
		{"users_email_key", "email"},
		{"users_national_id_key", "national id"},
	}

	for _, tt := range cases {
		t.Run(tt.constraint, func(t *testing.T) {
			mock, repo := newMock(t)

			mock.ExpectExec(InsertUser).
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
					pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), domain.CreateUserInput{})
			var cErr *domain.ConflictError
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.field, cErr.Field)
		})
	}
}

func TestFindByID(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()

	mock.ExpectQuery(SelectUserByID).
		WithArgs(m.ID.String()).
		WillReturnRows(rowsFor(m))

	u, err := repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, m.ID, u.ID)
	assert.Equal(t, m.Email, u.Email)
}

func TestFindByID_Absent(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(SelectUserByID).
		WithArgs(id.String()).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindByEmail_Absent(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(SelectUserByEmail).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindByNationalID(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()

	mock.ExpectQuery(SelectUserByNationalID).
		WithArgs(m.NationalID).
		WillReturnRows(rowsFor(m))

	u, err := repo.FindByNationalID(context.Background(), m.NationalID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, m.NationalID, u.NationalID)
}

func TestFindAll_NewestFirst(t *testing.T) {
	mock, repo := newMock(t)

	a, b, c := someModel(), someModel(), someModel()
	a.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.CreatedAt = a.CreatedAt.Add(time.Hour)
	c.CreatedAt = b.CreatedAt.Add(time.Hour)

	// the store orders by created_at DESC
	mock.ExpectQuery(SelectUsers).
		WillReturnRows(rowsFor(c, b, a))

	us, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 3)
	assert.Equal(t, c.ID, us[0].ID)
	assert.Equal(t, b.ID, us[1].ID)
	assert.Equal(t, a.ID, us[2].ID)
}

func TestUpdate_SuppliedFieldsOnly(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()

	name := "Maria Souza"
	phone := "(21) 91234-5678"

	updated := *m
	updated.Name = name
	updated.Phone = phone
	updated.UpdatedAt = m.UpdatedAt.Add(time.Minute)

	mock.ExpectQuery(SelectUserByID).
		WithArgs(m.ID.String()).
		WillReturnRows(rowsFor(m))
	mock.ExpectQuery(fmt.Sprintf(UpdateUserByID, "name = $1, phone = $2, updated_at = $3", 4)).
		WithArgs(name, phone, pgxmock.AnyArg(), m.ID.String()).
		WillReturnRows(rowsFor(&updated))

	u, err := repo.Update(context.Background(), m.ID, domain.UpdateUserInput{Name: &name, Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, name, u.Name)
	assert.Equal(t, phone, u.Phone)
	assert.Equal(t, m.Email, u.Email)
	assert.Equal(t, m.CreatedAt, u.CreatedAt)
	assert.True(t, u.UpdatedAt.After(m.UpdatedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ZeroFields(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()

	// only the lookup runs; updated_at stays untouched
	mock.ExpectQuery(SelectUserByID).
		WithArgs(m.ID.String()).
		WillReturnRows(rowsFor(m))

	u, err := repo.Update(context.Background(), m.ID, domain.UpdateUserInput{})
	require.NoError(t, err)
	assert.Equal(t, m.UpdatedAt, u.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UnknownID(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(SelectUserByID).
		WithArgs(id.String()).
		WillReturnError(pgx.ErrNoRows)

	name := "Maria Souza"
	u, err := repo.Update(context.Background(), id, domain.UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdate_RowVanished(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()
	name := "Maria Souza"

	mock.ExpectQuery(SelectUserByID).
		WithArgs(m.ID.String()).
		WillReturnRows(rowsFor(m))
	mock.ExpectQuery(fmt.Sprintf(UpdateUserByID, "name = $1, updated_at = $2", 3)).
		WithArgs(name, pgxmock.AnyArg(), m.ID.String()).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.Update(context.Background(), m.ID, domain.UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdate_UniqueViolation(t *testing.T) {
	mock, repo := newMock(t)
	m := someModel()
	email := "taken@example.com"

	mock.ExpectQuery(SelectUserByID).
		WithArgs(m.ID.String()).
		WillReturnRows(rowsFor(m))
	mock.ExpectQuery(fmt.Sprintf(UpdateUserByID, "email = $1, updated_at = $2", 3)).
		WithArgs(email, pgxmock.AnyArg(), m.ID.String()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Update(context.Background(), m.ID, domain.UpdateUserInput{Email: &email})
	var cErr *domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "email", cErr.Field)
}

func TestDelete(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectExec(DeleteUserByID).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_Absent(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectExec(DeleteUserByID).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDelete_StoreError(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectExec(DeleteUserByID).
		WithArgs(id.String()).
		WillReturnError(boom)

	_, err := repo.Delete(context.Background(), id)
	require.ErrorIs(t, err, boom)
}
