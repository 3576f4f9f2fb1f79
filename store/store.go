// Package store persists slumber data in a local key-value store
package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/slumber/internal/osutil"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

var kvBucket = []byte("kv")

// Client is a BoltDB database client. All keys live in a single bucket.
type Client struct {
	db *bolt.DB
}

type boltTx struct {
	bucket *bolt.Bucket
}

func (t *boltTx) Get(key string) (string, bool, error) {
	v := t.bucket.Get([]byte(key))
	if v == nil {
		return "", false, nil
	}

	return string(v), true, nil
}

func (t *boltTx) Set(key, value string) error {
	err := t.bucket.Put([]byte(key), []byte(value))
	if err != nil {
		return errWriteStore.Fmt(key).Wrap(err)
	}

	return nil
}

func (t *boltTx) Remove(key string) error {
	err := t.bucket.Delete([]byte(key))
	if err != nil {
		return errWriteStore.Fmt(key).Wrap(err)
	}

	return nil
}

func (c *Client) Get(key string) (value string, found bool, err error) {
	err = c.db.View(func(tx *bolt.Tx) error {
		value, found, err = (&boltTx{tx.Bucket(kvBucket)}).Get(key)
		return err
	})
	if err != nil {
		return "", false, errReadStore.Fmt(key).Wrap(err)
	}

	return value, found, nil
}

func (c *Client) Set(key, value string) error {
	return c.Update(func(tx Tx) error {
		return tx.Set(key, value)
	})
}

func (c *Client) Remove(key string) error {
	return c.Update(func(tx Tx) error {
		return tx.Remove(key)
	})
}

func (c *Client) Update(fn func(tx Tx) error) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return fn(&boltTx{tx.Bucket(kvBucket)})
	})
}

func (c *Client) Close() error {
	return c.db.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenStore.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(kvBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	c := &Client{db: db}

	err = c.Update(migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// Open opens the store for the named driver at dbPath.
func Open(driver, dbPath string) (DB, error) {
	switch driver {
	case DriverBolt, "":
		return NewClient(dbPath)
	case DriverSQLite:
		return NewSQLiteClient(dbPath)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
