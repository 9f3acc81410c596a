package user

const (
	InsertUser = `
		INSERT INTO users (id, name, email, national_id, birth_date, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	SelectUserByID = `
		SELECT id, name, email, national_id, birth_date, phone, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, name, email, national_id, birth_date, phone, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	SelectUserByNationalID = `
		SELECT id, name, email, national_id, birth_date, phone, created_at, updated_at
		FROM users
		WHERE national_id = $1
	`
	SelectUsers = `
		SELECT id, name, email, national_id, birth_date, phone, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	// UpdateUserByID is completed at runtime with the SET list of the
	// supplied fields and the placeholder index of the id.
	UpdateUserByID = `
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, national_id, birth_date, phone, created_at, updated_at
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
