package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/plotvista/plotvista/internal/model"
)

// UserRepo persists application accounts.  Today the only writer is the
// boot-time seed; the read side of the API still serves the fixture
// principal, but the table keeps the credential hash durable so a real
// lookup can replace the fixture without a migration.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// EnsureSeed upserts the seeded account, refreshing the stored hash so
// a rotated SEED_PASSWORD takes effect on restart.
func (r *UserRepo) EnsureSeed(ctx context.Context, u model.User) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (username, email, full_name, hashed_password, role, is_active)
		 VALUES (?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE hashed_password=VALUES(hashed_password), is_active=VALUES(is_active)`,
		strings.ToLower(strings.TrimSpace(u.Username)), u.Email, u.FullName,
		u.HashedPassword, string(u.Role), u.IsActive)
	return err
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var (
		u       model.User
		role    string
		updated sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, username, email, full_name, hashed_password, role, is_active, created_at, updated_at
		 FROM users WHERE username=? LIMIT 1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.HashedPassword, &role,
			&u.IsActive, &u.CreatedAt, &updated)
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.UserRole(role)
	if updated.Valid {
		t := updated.Time
		u.UpdatedAt = &t
	}
	return u, nil
}
