package notes

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	bolt "go.etcd.io/bbolt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// boltStore keeps notes in a bbolt database, keyed by a big-endian
// sequence number so that cursor order is insertion order
type boltStore struct {
	db *bolt.DB
}

var _ Store = (*boltStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	notesBucket = "notes"
	openTimeout = time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewBoltStore opens or creates a bbolt database at path
func NewBoltStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, devhelper.ErrInternalServerError.Withf("open %q: %v", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(notesBucket))
		return err
	}); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return &boltStore{db: db}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s *boltStore) Append(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(notesBucket))
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(sequenceKey(seq), []byte(message))
	})
}

func (s *boltStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var result []string
	if err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(notesBucket)).ForEach(func(_, v []byte) error {
			result = append(result, string(v))
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
