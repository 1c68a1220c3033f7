package entity

import "time"

// Submission is one staff entry of the doctors covering a weekend.
// Records are never updated once stored.
type Submission struct {
	SaturdayDate   string
	SaturdayDoctor string
	SundayDate     string
	SundayDoctor   string
	SubmittedAt    time.Time
}
