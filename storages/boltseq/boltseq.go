// Package boltseq persists values in a local boltdb bucket
// and exposes the stored data through the sequence and iterator contracts,
// so persisted data composes with the adaptors the same way in-memory data does.
package boltseq

import (
	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"github.com/vmihailenco/msgpack"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

// Open opens or creates the bolt database on the given path
// and returns a storage bound to the named bucket.
func Open[V any](path, bucket string) (*Storage[V], error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	return &Storage[V]{DB: db, Bucket: []byte(bucket)}, nil
}

type Storage[V any] struct {
	DB     *bolt.DB
	Bucket []byte
}

// Close the storage database and release the file lock
func (s *Storage[V]) Close() error {
	return s.DB.Close()
}

// Save persists the value under a fresh id and returns the id.
func (s *Storage[V]) Save(v V) (string, error) {
	id := uuid.NewV4().String()

	value, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}

	err = s.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(s.Bucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(id), value)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// FindByID retrieves a stored value by its id.
func (s *Storage[V]) FindByID(id string) (V, bool, error) {
	var (
		v     V
		found bool
	)
	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.Bucket)
		if bucket == nil {
			return nil
		}

		raw := bucket.Get([]byte(id))
		if raw == nil {
			return nil
		}

		found = true
		return msgpack.Unmarshal(raw, &v)
	})
	return v, found, err
}

// All returns an iterator over every stored value.
// The bucket content is snapshot in a single view transaction,
// so the returned iterator no longer depends on the database state.
// The traversal order follows the byte order of the generated ids, not the insertion order.
func (s *Storage[V]) All() sequences.Iterator[V] {
	var vs []V
	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.Bucket)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(key, raw []byte) error {
			var v V
			if err := msgpack.Unmarshal(raw, &v); err != nil {
				return err
			}

			vs = append(vs, v)
			return nil
		})
	})
	if err != nil {
		return iterators.NewError[V](err)
	}

	return iterators.Slice(vs)
}

// AsSequence exposes the bucket as a multi pass sequence,
// each traversal snapshots the bucket again.
func (s *Storage[V]) AsSequence() sequences.Sequence[V] {
	return sequences.SequenceFunc[V](s.All)
}

// DeleteAll removes every stored value of the bucket.
func (s *Storage[V]) DeleteAll() error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(s.Bucket) == nil {
			return nil
		}

		return tx.DeleteBucket(s.Bucket)
	})
}
