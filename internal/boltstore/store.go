package boltstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"go.etcd.io/bbolt"
)

var submissionsBucket = []byte("Submissions")

// Store is a bbolt-backed append log of submissions
type Store struct {
	db             *bbolt.DB
	submissionRepo contract.SubmissionRepo
}

// Open opens (or creates) the bolt file at path and makes sure the buckets exist
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bolt directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(submissionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Store{
		db:             db,
		submissionRepo: newSubmissionRepo(db),
	}, nil
}

func (s *Store) Submission() contract.SubmissionRepo {
	return s.submissionRepo
}

func (s *Store) Close() error {
	return s.db.Close()
}
