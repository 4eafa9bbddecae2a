package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestResolveAuthorsShortCircuitsEmptyInput(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewAuthorRepository(gdb)

	// no expectations registered: any query would fail the test
	res, err := repo.ResolveByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAuthorsCollapsesDuplicates(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewAuthorRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Anna", "anna@example.com").
		AddRow(2, "Boris", "boris@example.com")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id IN (?,?)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	res, err := repo.ResolveByIDs(context.Background(), []int64{1, 2, 1, 2, 1})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Anna", res[1].Name)
	assert.Equal(t, "Boris", res[2].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAuthorsSkipsMissingIDs(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewAuthorRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Anna", "anna@example.com")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id IN (?,?)")).
		WithArgs(int64(1), int64(999)).
		WillReturnRows(rows)

	res, err := repo.ResolveByIDs(context.Background(), []int64{1, 999})

	require.NoError(t, err)
	require.Len(t, res, 1)
	_, ok := res[999]
	assert.False(t, ok)
}

func TestResolveNews(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewNewsRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow(7, "Breaking")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `news` WHERE id IN (?)")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	res, err := repo.ResolveByIDs(context.Background(), []int64{7})

	require.NoError(t, err)
	assert.Equal(t, "Breaking", res[7].Title)
}
