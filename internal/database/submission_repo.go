package database

import (
	"fmt"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

type submissionRepo struct {
	db dbConn
}

func newSubmissionRepo(db dbConn) contract.SubmissionRepo {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Append(submission entity.Submission) error {
	query := `
		INSERT INTO submissions (saturday_date, saturday_doctor, sunday_date, sunday_doctor, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		submission.SaturdayDate,
		submission.SaturdayDoctor,
		submission.SundayDate,
		submission.SundayDoctor,
		submission.SubmittedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to append submission: %w", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *submissionRepo) LoadAll() ([]entity.Submission, error) {
	query := `
		SELECT saturday_date, saturday_doctor, sunday_date, sunday_doctor, submitted_at
		FROM submissions
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load submissions: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	submissions := []entity.Submission{}
	for rows.Next() {
		var submission entity.Submission
		err := rows.Scan(
			&submission.SaturdayDate,
			&submission.SaturdayDoctor,
			&submission.SundayDate,
			&submission.SundayDoctor,
			&submission.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan submission: %w", domain.ErrStorageUnavailable, err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate submissions: %w", domain.ErrStorageUnavailable, err)
	}

	return submissions, nil
}
