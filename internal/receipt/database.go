package receipt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "receipts"

// ErrReceiptNotFound is returned by GetReceipt when no receipt exists under
// the given key. A missing key is an absent result, not a validation failure.
var ErrReceiptNotFound = errors.New("receipt not found")

// DB defines the interface for receipt storage. Keys are opaque non-empty
// strings generated by the service.
type DB interface {
	// SaveReceipt stores a receipt under the given key
	SaveReceipt(key string, receipt *Receipt) error

	// GetReceipt retrieves a receipt by key
	GetReceipt(key string) (*Receipt, error)

	// UpdateReceipt replaces the receipt under key, reporting whether the key existed
	UpdateReceipt(key string, receipt *Receipt) (bool, error)

	// Close closes the database
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// SaveReceipt stores a receipt under the given key
func (b *BoltDB) SaveReceipt(key string, receipt *Receipt) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data, err := json.Marshal(receipt)
		if err != nil {
			return fmt.Errorf("marshaling receipt: %w", err)
		}
		return bucket.Put([]byte(key), data)
	})
}

// GetReceipt retrieves a receipt by key
func (b *BoltDB) GetReceipt(key string) (*Receipt, error) {
	var receipt *Receipt
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data := bucket.Get([]byte(key))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrReceiptNotFound, key)
		}
		return json.Unmarshal(data, &receipt)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// UpdateReceipt replaces the receipt stored under key. It reports false and
// writes nothing when the key does not exist.
func (b *BoltDB) UpdateReceipt(key string, receipt *Receipt) (bool, error) {
	var existed bool
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket.Get([]byte(key)) == nil {
			return nil
		}
		existed = true
		data, err := json.Marshal(receipt)
		if err != nil {
			return fmt.Errorf("marshaling receipt: %w", err)
		}
		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

// Close closes the database connection
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// MemoryDB implements the DB interface with an in-process map. It holds
// defensive copies so callers cannot mutate stored state through shared
// pointers.
type MemoryDB struct {
	mu       sync.RWMutex
	receipts map[string]*Receipt
}

// NewMemoryDB creates an empty in-memory database
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{receipts: make(map[string]*Receipt)}
}

func copyReceipt(r *Receipt) *Receipt {
	clone := *r
	clone.Items = make([]Item, len(r.Items))
	copy(clone.Items, r.Items)
	if r.Points != nil {
		points := *r.Points
		clone.Points = &points
	}
	return &clone
}

// SaveReceipt stores a copy of the receipt under the given key
func (m *MemoryDB) SaveReceipt(key string, receipt *Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[key] = copyReceipt(receipt)
	return nil
}

// GetReceipt retrieves a copy of the receipt stored under key
func (m *MemoryDB) GetReceipt(key string) (*Receipt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	receipt, ok := m.receipts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, key)
	}
	return copyReceipt(receipt), nil
}

// UpdateReceipt replaces the receipt stored under key. It reports false and
// writes nothing when the key does not exist.
func (m *MemoryDB) UpdateReceipt(key string, receipt *Receipt) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.receipts[key]; !ok {
		return false, nil
	}
	m.receipts[key] = copyReceipt(receipt)
	return true, nil
}

// Close is a no-op for the in-memory database
func (m *MemoryDB) Close() error {
	return nil
}
