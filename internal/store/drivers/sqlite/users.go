package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quietgrove/gatehouse/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

type userRow struct {
	id           string
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

const userColumns = `id, name, email, password_hash, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(u), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(u), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func scanUser(row *sql.Row) (userRow, error) {
	var u userRow
	err := row.Scan(&u.id, &u.name, &u.email, &u.passwordHash, &u.createdAt, &u.updatedAt)
	return u, err
}
