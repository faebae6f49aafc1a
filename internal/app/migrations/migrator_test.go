package migrations

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_init.sql"))
	assert.Equal(t, "002", Version("sql/002_placement_indexes.sql"))
	assert.Equal(t, "003", Version("003.sql"))
}

func TestEmbeddedFilesAreOrderedAndCreateTheStore(t *testing.T) {
	entries, err := fs.ReadDir(Files(), ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "001_init.sql", entries[0].Name())

	initSQL, err := fs.ReadFile(Files(), "001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"companies", "students", "placements"} {
		assert.Contains(t, string(initSQL), "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.NotContains(t, string(initSQL), "REFERENCES")
}

func TestUpAppliesPendingFilesOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	files := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE companies (id BIGSERIAL);")},
		"002_index.sql": {Data: []byte("CREATE INDEX idx ON placements (student_id);")},
		"notes.txt":     {Data: []byte("ignored")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE INDEX idx ON placements").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("002", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := NewMigrator(mock, files, zerolog.Nop()).Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpRollsBackFailedFile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	files := fstest.MapFS{"001_init.sql": {Data: []byte("CREATE TABLE broken (")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE broken").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := NewMigrator(mock, files, zerolog.Nop()).Up(context.Background())
	assert.ErrorContains(t, err, "001_init.sql")
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
