package database

import (
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	submissionRepo contract.SubmissionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.submissionRepo = newSubmissionRepo(i.db.conn)
}

// Submission returns the submission repository
func (i *instance) Submission() contract.SubmissionRepo {
	return i.submissionRepo
}
