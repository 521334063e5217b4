package cache

import (
	"fmt"
	"time"

	"deepfloor/internal/gamemap"

	bolt "go.etcd.io/bbolt"
)

var (
	floorsBucket = []byte("floors")
	metaBucket   = []byte("meta")
)

// BoltStore keeps floors in a single bbolt file, keyed by "x,y".
type BoltStore struct {
	db *bolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{floorsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(c gamemap.Coord, data []byte) error {
	return s.put(floorsBucket, coordKey(c), data)
}

func (s *BoltStore) Get(c gamemap.Coord) ([]byte, error) {
	return s.get(floorsBucket, coordKey(c))
}

func (s *BoltStore) Delete(c gamemap.Coord) error {
	return s.delete(floorsBucket, coordKey(c))
}

func (s *BoltStore) PutMeta(key string, data []byte) error { return s.put(metaBucket, key, data) }

func (s *BoltStore) GetMeta(key string) ([]byte, error) { return s.get(metaBucket, key) }

func (s *BoltStore) DeleteMeta(key string) error { return s.delete(metaBucket, key) }

func (s *BoltStore) put(bucket []byte, key string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *BoltStore) get(bucket []byte, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (s *BoltStore) delete(bucket []byte, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

func (s *BoltStore) Keys() ([]gamemap.Coord, error) {
	var keys []gamemap.Coord
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(floorsBucket).ForEach(func(k, _ []byte) error {
			c, err := parseCoordKey(string(k))
			if err != nil {
				return err
			}
			keys = append(keys, c)
			return nil
		})
	})
	return keys, err
}

func (s *BoltStore) Close() error { return s.db.Close() }
