package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/slumber/internal/osutil"
)

const (
	schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

	getQuery    = `SELECT value FROM kv WHERE key = ?`
	setQuery    = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	removeQuery = `DELETE FROM kv WHERE key = ?`
)

// SQLiteClient stores keys in a single SQLite table.
type SQLiteClient struct {
	db *sql.DB
}

// runner is satisfied by both *sql.DB and *sql.Tx.
type runner interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

type sqlTx struct {
	r runner
}

func (t *sqlTx) Get(key string) (string, bool, error) {
	var value string

	err := t.r.QueryRow(getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, errReadStore.Fmt(key).Wrap(err)
	}

	return value, true, nil
}

func (t *sqlTx) Set(key, value string) error {
	_, err := t.r.Exec(setQuery, key, value)
	if err != nil {
		return errWriteStore.Fmt(key).Wrap(err)
	}

	return nil
}

func (t *sqlTx) Remove(key string) error {
	_, err := t.r.Exec(removeQuery, key)
	if err != nil {
		return errWriteStore.Fmt(key).Wrap(err)
	}

	return nil
}

func (c *SQLiteClient) Get(key string) (string, bool, error) {
	return (&sqlTx{c.db}).Get(key)
}

func (c *SQLiteClient) Set(key, value string) error {
	return (&sqlTx{c.db}).Set(key, value)
}

func (c *SQLiteClient) Remove(key string) error {
	return (&sqlTx{c.db}).Remove(key)
}

func (c *SQLiteClient) Update(fn func(tx Tx) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errOpenStore.Wrap(err)
	}

	err = fn(&sqlTx{tx})
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// NewSQLiteClient opens or creates the SQLite database at dbPath.
func NewSQLiteClient(dbPath string) (*SQLiteClient, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	// one writer at a time
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	c := &SQLiteClient{db: db}

	err = c.Update(migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
