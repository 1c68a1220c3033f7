package contract

import (
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	Submission() SubmissionRepo
}

// SubmissionRepo defines the contract for the submission store.
// Implementations keep insertion order and never update or delete records.
type SubmissionRepo interface {
	// LoadAll returns every submission in insertion order, or an empty slice
	// when nothing has been stored yet.
	LoadAll() ([]entity.Submission, error)
	// Append stores a submission; it is durable once Append returns.
	Append(submission entity.Submission) error
}
