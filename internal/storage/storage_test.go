package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "todo.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := openTemp(t)

	_, err := s.Get("todoItems")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SetGetOverwrite(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Set("todoItems", []byte(`[1]`)))
	require.NoError(t, s.Set("todoItems", []byte(`[1,2]`)))
	require.NoError(t, s.Set("doneItems", []byte(`[]`)))

	got, err := s.Get("todoItems")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	got, err = s.Get("doneItems")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	stamp, err := s.UpdatedAt("todoItems")
	require.NoError(t, err)
	assert.False(t, stamp.IsZero())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Set("doneItems", []byte("payload")))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("doneItems")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	in := []byte("abc")
	require.NoError(t, m.Set("k", in))
	in[0] = 'z'

	out, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestOpen_MigratesLegacySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	legacy, err := sql.Open("sqlite", sqliteDSN(path))
	require.NoError(t, err)
	_, err = legacy.Exec(`CREATE TABLE blobs (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	_, err = legacy.Exec(`INSERT INTO blobs (key, value) VALUES ('todoItems', '[]');`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("todoItems")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)

	require.NoError(t, s.Set("todoItems", []byte("[1]")))
	stamp, err := s.UpdatedAt("todoItems")
	require.NoError(t, err)
	assert.False(t, stamp.IsZero())
}

func TestOpen_FreshSchemaHasUpdatedAt(t *testing.T) {
	s, _ := openTemp(t)

	rows, err := s.db.Query(`PRAGMA table_info(blobs);`)
	require.NoError(t, err)
	var cols []string
	for rows.Next() {
		var cid, notnull, pk int
		var name, ctype string
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk))
		cols = append(cols, name)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"key", "value", "updated_at"}, cols)
}
