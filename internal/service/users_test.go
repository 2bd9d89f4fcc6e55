package service

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarliRenee/aware-api/internal/models"
)

func newMockUsers(t *testing.T) (*Users, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUsers(db), mock
}

func TestUsersAllReturnsEmptySlice(t *testing.T) {
	svc, mock := newMockUsers(t)

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password FROM aware_users`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	users, err := svc.All()
	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersInsertReturnsStoredRow(t *testing.T) {
	svc, mock := newMockUsers(t)

	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO aware_users (username, password) VALUES ($1, $2) RETURNING id, username, password`)).
		WithArgs("marli", "secret").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(11, "marli", "secret"),
		)

	user, err := svc.Insert(models.NewUser{Username: "marli", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 11, Username: "marli", Password: "secret"}, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersDeleteReportsRowsRemoved(t *testing.T) {
	svc, mock := newMockUsers(t)

	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM aware_users WHERE id = $1`)).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := svc.Delete(11)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersUpdateBuildsOnlySetFields(t *testing.T) {
	svc, mock := newMockUsers(t)

	password := "newsecret"
	mock.
		ExpectExec(regexp.QuoteMeta(`UPDATE aware_users SET password = $1 WHERE id = $2`)).
		WithArgs("newsecret", 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := svc.Update(11, models.UserUpdate{Password: &password})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersUpdateBothFields(t *testing.T) {
	svc, mock := newMockUsers(t)

	username := "renee"
	password := "newsecret"
	mock.
		ExpectExec(regexp.QuoteMeta(`UPDATE aware_users SET username = $1, password = $2 WHERE id = $3`)).
		WithArgs("renee", "newsecret", 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := svc.Update(11, models.UserUpdate{Username: &username, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersUpdateWithNoFieldsIsNoOp(t *testing.T) {
	svc, mock := newMockUsers(t)

	count, err := svc.Update(11, models.UserUpdate{})
	require.NoError(t, err)
	assert.Zero(t, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
