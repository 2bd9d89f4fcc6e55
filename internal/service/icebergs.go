package service

import (
	"database/sql"

	"github.com/MarliRenee/aware-api/internal/models"
)

// Icebergs issues queries against the icebergs table.
type Icebergs struct {
	db *sql.DB
}

func NewIcebergs(db *sql.DB) *Icebergs {
	return &Icebergs{db: db}
}

// All returns every iceberg, regardless of owner.
func (s *Icebergs) All() ([]models.Iceberg, error) {
	rows, err := s.db.Query(`SELECT id, userid, modified FROM icebergs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	icebergs := make([]models.Iceberg, 0)
	for rows.Next() {
		var iceberg models.Iceberg
		if err := rows.Scan(&iceberg.ID, &iceberg.UserID, &iceberg.Modified); err != nil {
			return nil, err
		}
		icebergs = append(icebergs, iceberg)
	}

	return icebergs, rows.Err()
}

// Insert stores a new iceberg and returns the full row including the
// generated id and the store-managed modified timestamp.
func (s *Icebergs) Insert(newIceberg models.NewIceberg) (models.Iceberg, error) {
	var iceberg models.Iceberg
	err := s.db.QueryRow(
		`INSERT INTO icebergs (userid) VALUES ($1) RETURNING id, userid, modified`,
		newIceberg.UserID,
	).Scan(&iceberg.ID, &iceberg.UserID, &iceberg.Modified)

	return iceberg, err
}

// GetByID returns the iceberg with the given id, or sql.ErrNoRows.
func (s *Icebergs) GetByID(id int) (models.Iceberg, error) {
	var iceberg models.Iceberg
	err := s.db.QueryRow(
		`SELECT id, userid, modified FROM icebergs WHERE id = $1`,
		id,
	).Scan(&iceberg.ID, &iceberg.UserID, &iceberg.Modified)

	return iceberg, err
}

// Delete removes the iceberg with the given id and reports the number of
// rows removed.
func (s *Icebergs) Delete(id int) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM icebergs WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Update applies the set fields of the update to the iceberg with the
// given id and reports the number of rows updated.
func (s *Icebergs) Update(id int, update models.IcebergUpdate) (int64, error) {
	if update.UserID == nil {
		return 0, nil
	}

	result, err := s.db.Exec(
		`UPDATE icebergs SET userid = $1 WHERE id = $2`,
		*update.UserID,
		id,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
