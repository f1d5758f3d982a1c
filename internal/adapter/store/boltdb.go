package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"sherlock/internal/domain"
)

var (
	bucketReports = []byte("reports")
	bucketMeta    = []byte("meta")
)

// BoltStore keeps saved line-count reports in a bbolt file.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (creating if needed) the report database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketReports, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// SaveReport assigns the report an ID (and a timestamp if unset) and stores it.
func (s *BoltStore) SaveReport(report domain.Report) (domain.Report, error) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketReports)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		report.ID = id
		if report.CreatedAt.IsZero() {
			report.CreatedAt = time.Now()
		}
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to save report: %w", err)
	}
	return report, nil
}

func (s *BoltStore) GetReport(id uint64) (domain.Report, error) {
	var report domain.Report
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketReports).Get(itob(id))
		if data == nil {
			return fmt.Errorf("report not found: %d", id)
		}
		return json.Unmarshal(data, &report)
	})
	return report, err
}

// ListReports returns every saved report, newest first.
func (s *BoltStore) ListReports() ([]domain.Report, error) {
	var reports []domain.Report
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketReports).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var report domain.Report
			if err := json.Unmarshal(v, &report); err != nil {
				return err
			}
			reports = append(reports, report)
		}
		return nil
	})
	return reports, err
}

// Clear removes every saved report.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketReports); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketReports)
		return err
	})
}
