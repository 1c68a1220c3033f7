package boltstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"go.etcd.io/bbolt"
)

type submissionValue struct {
	SaturdayDate   string    `json:"saturday_date"`
	SaturdayDoctor string    `json:"saturday_doctor"`
	SundayDate     string    `json:"sunday_date"`
	SundayDoctor   string    `json:"sunday_doctor"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type submissionRepo struct {
	db *bbolt.DB
}

func newSubmissionRepo(db *bbolt.DB) contract.SubmissionRepo {
	return &submissionRepo{db: db}
}

// Append stores the submission under the bucket's next sequence number, so
// cursor order equals insertion order.
func (r *submissionRepo) Append(submission entity.Submission) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(submissionsBucket)
		if b == nil {
			return fmt.Errorf("bucket %s not found", submissionsBucket)
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		data, err := json.Marshal(submissionValue{
			SaturdayDate:   submission.SaturdayDate,
			SaturdayDoctor: submission.SaturdayDoctor,
			SundayDate:     submission.SundayDate,
			SundayDoctor:   submission.SundayDoctor,
			SubmittedAt:    submission.SubmittedAt,
		})
		if err != nil {
			return err
		}

		return b.Put(sequenceKey(seq), data)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to append submission: %w", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *submissionRepo) LoadAll() ([]entity.Submission, error) {
	submissions := []entity.Submission{}

	err := r.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(submissionsBucket)
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var value submissionValue
			if err := json.Unmarshal(v, &value); err != nil {
				return fmt.Errorf("record %x: %w", k, err)
			}

			submissions = append(submissions, entity.Submission{
				SaturdayDate:   value.SaturdayDate,
				SaturdayDoctor: value.SaturdayDoctor,
				SundayDate:     value.SundayDate,
				SundayDoctor:   value.SundayDoctor,
				SubmittedAt:    value.SubmittedAt,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load submissions: %w", domain.ErrStorageUnavailable, err)
	}

	return submissions, nil
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
