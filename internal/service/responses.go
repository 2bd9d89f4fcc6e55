package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MarliRenee/aware-api/internal/models"
)

const responseColumns = "id, userid, icebergid, q1, q2, q3, q4, q5, q6, q7, q8"

// Responses issues queries against the iceberg_responses table.
type Responses struct {
	db *sql.DB
}

func NewResponses(db *sql.DB) *Responses {
	return &Responses{db: db}
}

func scanResponse(row interface{ Scan(...any) error }) (models.Response, error) {
	var response models.Response
	err := row.Scan(
		&response.ID, &response.UserID, &response.IcebergID,
		&response.Q1, &response.Q2, &response.Q3, &response.Q4,
		&response.Q5, &response.Q6, &response.Q7, &response.Q8,
	)
	return response, err
}

// All returns every response.
func (s *Responses) All() ([]models.Response, error) {
	rows, err := s.db.Query(`SELECT ` + responseColumns + ` FROM iceberg_responses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]models.Response, 0)
	for rows.Next() {
		response, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, rows.Err()
}

// Insert stores a new response and returns the full row including the
// generated id.
func (s *Responses) Insert(newResponse models.NewResponse) (models.Response, error) {
	row := s.db.QueryRow(
		`INSERT INTO iceberg_responses (userid, icebergid, q1, q2, q3, q4, q5, q6, q7, q8)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+responseColumns,
		newResponse.UserID, newResponse.IcebergID,
		newResponse.Q1, newResponse.Q2, newResponse.Q3, newResponse.Q4,
		newResponse.Q5, newResponse.Q6, newResponse.Q7, newResponse.Q8,
	)
	return scanResponse(row)
}

// GetByID returns the response with the given id, or sql.ErrNoRows.
func (s *Responses) GetByID(id int) (models.Response, error) {
	row := s.db.QueryRow(
		`SELECT `+responseColumns+` FROM iceberg_responses WHERE id = $1`,
		id,
	)
	return scanResponse(row)
}

// Delete removes the response with the given id and reports the number
// of rows removed.
func (s *Responses) Delete(id int) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM iceberg_responses WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Update applies the set fields of the update to the response with the
// given id and reports the number of rows updated.
func (s *Responses) Update(id int, update models.ResponseUpdate) (int64, error) {
	assignments := make([]string, 0, 9)
	args := make([]any, 0, 10)

	appendString := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.IcebergID != nil {
		args = append(args, *update.IcebergID)
		assignments = append(assignments, fmt.Sprintf("icebergid = $%d", len(args)))
	}
	appendString("q1", update.Q1)
	appendString("q2", update.Q2)
	appendString("q3", update.Q3)
	appendString("q4", update.Q4)
	appendString("q5", update.Q5)
	appendString("q6", update.Q6)
	appendString("q7", update.Q7)
	appendString("q8", update.Q8)

	if len(assignments) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE iceberg_responses SET %s WHERE id = $%d`,
		strings.Join(assignments, ", "),
		len(args),
	)

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
