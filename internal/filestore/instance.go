package filestore

import (
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
)

// instance implements DataManager on top of a single JSON collection file
type instance struct {
	submissionRepo contract.SubmissionRepo
}

// NewInstance returns a DataManager that keeps every submission in the file at path.
// The file and its directory are created on first write. Legacy timestamps without
// a zone are read in loc.
func NewInstance(path string, loc *time.Location) contract.DataManager {
	return &instance{
		submissionRepo: newSubmissionRepo(path, loc),
	}
}

func (i *instance) Submission() contract.SubmissionRepo {
	return i.submissionRepo
}
