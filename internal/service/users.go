package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MarliRenee/aware-api/internal/models"
)

// Users issues queries against the aware_users table. It performs no
// validation; callers are trusted completely.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// All returns every user. The slice is never nil so an empty table
// serializes as an empty JSON array.
func (s *Users) All() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT id, username, password FROM aware_users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Insert stores a new user and returns the full row including the
// generated id.
func (s *Users) Insert(newUser models.NewUser) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		`INSERT INTO aware_users (username, password) VALUES ($1, $2) RETURNING id, username, password`,
		newUser.Username,
		newUser.Password,
	).Scan(&user.ID, &user.Username, &user.Password)

	return user, err
}

// GetByID returns the user with the given id, or sql.ErrNoRows.
func (s *Users) GetByID(id int) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		`SELECT id, username, password FROM aware_users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Password)

	return user, err
}

// GetByUsername returns the user with the exact username, or sql.ErrNoRows.
func (s *Users) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		`SELECT id, username, password FROM aware_users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password)

	return user, err
}

// Delete removes the user with the given id and reports the number of
// rows removed.
func (s *Users) Delete(id int) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM aware_users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Update applies the set fields of the update to the user with the given
// id and reports the number of rows updated. With no fields set it is a
// no-op.
func (s *Users) Update(id int, update models.UserUpdate) (int64, error) {
	assignments := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if update.Username != nil {
		args = append(args, *update.Username)
		assignments = append(assignments, fmt.Sprintf("username = $%d", len(args)))
	}
	if update.Password != nil {
		args = append(args, *update.Password)
		assignments = append(assignments, fmt.Sprintf("password = $%d", len(args)))
	}
	if len(assignments) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE aware_users SET %s WHERE id = $%d`,
		strings.Join(assignments, ", "),
		len(args),
	)

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
