package boltstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "coverage.bolt")
	store, err := Open(path)
	require.NoError(t, err, "Failed to open bolt store")

	return store, path
}

func TestSubmissionRepo_LoadAll_Empty(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	submissions, err := store.Submission().LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, submissions)
	assert.Empty(t, submissions)
}

func TestSubmissionRepo_Append(t *testing.T) {
	store, path := setupTestStore(t)

	first := entity.Submission{
		SaturdayDate:   "2024-06-01",
		SaturdayDoctor: "Dr. A",
		SundayDate:     "2024-06-02",
		SundayDoctor:   "Dr. B",
		SubmittedAt:    time.Date(2024, 5, 30, 9, 15, 0, 0, time.UTC),
	}
	second := entity.Submission{
		SaturdayDate:   "2024-06-01",
		SaturdayDoctor: "Dr. C",
		SundayDate:     "2024-06-02",
		SundayDoctor:   "Dr. D",
		SubmittedAt:    time.Date(2024, 5, 31, 9, 15, 0, 0, time.UTC),
	}

	require.NoError(t, store.Submission().Append(first))

	submissions, err := store.Submission().LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []entity.Submission{first}, submissions)

	require.NoError(t, store.Submission().Append(second))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	submissions, err = reopened.Submission().LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []entity.Submission{first, second}, submissions)
}

func TestSubmissionRepo_OrderBeyondSingleByteSequence(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	for i := 0; i < 300; i++ {
		require.NoError(t, store.Submission().Append(entity.Submission{
			SaturdayDoctor: "Dr. A",
			SubmittedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		}))
	}

	submissions, err := store.Submission().LoadAll()
	require.NoError(t, err)
	require.Len(t, submissions, 300)
	for i := 1; i < len(submissions); i++ {
		assert.True(t, submissions[i-1].SubmittedAt.Before(submissions[i].SubmittedAt))
	}
}

func TestSubmissionRepo_CorruptValue(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(submissionsBucket).Put(sequenceKey(1), []byte("{broken"))
	})
	require.NoError(t, err)

	_, err = store.Submission().LoadAll()
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestSubmissionRepo_ClosedDatabase(t *testing.T) {
	store, _ := setupTestStore(t)
	require.NoError(t, store.Close())

	err := store.Submission().Append(entity.Submission{SubmittedAt: time.Now()})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = store.Submission().LoadAll()
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
