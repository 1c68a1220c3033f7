package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

// legacyTimestampLayout is the zone-less ISO format found in older data files
const legacyTimestampLayout = "2006-01-02T15:04:05.999999"

const defaultFileMode fs.FileMode = 0o644

type submissionRecord struct {
	SaturdayDate   string `json:"saturday_date"`
	SaturdayDoctor string `json:"saturday_doctor"`
	SundayDate     string `json:"sunday_date"`
	SundayDoctor   string `json:"sunday_doctor"`
	SubmittedAt    string `json:"submitted_at"`
}

type submissionRepo struct {
	path string
	loc  *time.Location
	// serialises read-modify-write cycles inside this process only
	mu sync.Mutex
}

func newSubmissionRepo(path string, loc *time.Location) *submissionRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &submissionRepo{path: path, loc: loc}
}

func (r *submissionRepo) LoadAll() ([]entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Append rewrites the whole collection with submission added at the end.
// Stored records are written back exactly as they were read.
func (r *submissionRepo) Append(submission entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.loadRecords()
	if err != nil {
		return err
	}

	records = append(records, newSubmissionRecord(submission))

	return r.write(records)
}

func (r *submissionRepo) load() ([]entity.Submission, error) {
	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}

	submissions := make([]entity.Submission, 0, len(records))
	for _, record := range records {
		// already validated by loadRecords
		submittedAt, _ := r.parseTimestamp(record.SubmittedAt)

		submissions = append(submissions, entity.Submission{
			SaturdayDate:   record.SaturdayDate,
			SaturdayDoctor: record.SaturdayDoctor,
			SundayDate:     record.SundayDate,
			SundayDoctor:   record.SundayDoctor,
			SubmittedAt:    submittedAt,
		})
	}

	return submissions, nil
}

func (r *submissionRepo) loadRecords() ([]submissionRecord, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []submissionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrStorageUnavailable, r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []submissionRecord{}, nil
	}

	var records []submissionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", domain.ErrStorageUnavailable, r.path, err)
	}

	for i, record := range records {
		if _, err := r.parseTimestamp(record.SubmittedAt); err != nil {
			return nil, fmt.Errorf("%w: record %d in %s: %w", domain.ErrStorageUnavailable, i, r.path, err)
		}
	}

	return records, nil
}

func newSubmissionRecord(s entity.Submission) submissionRecord {
	record := submissionRecord{
		SaturdayDate:   s.SaturdayDate,
		SaturdayDoctor: s.SaturdayDoctor,
		SundayDate:     s.SundayDate,
		SundayDoctor:   s.SundayDoctor,
	}
	if !s.SubmittedAt.IsZero() {
		record.SubmittedAt = s.SubmittedAt.Format(time.RFC3339Nano)
	}
	return record
}

func (r *submissionRepo) write(records []submissionRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", domain.ErrStorageUnavailable, dir, err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", domain.ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	// CreateTemp always uses 0600
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to set file mode: %w", domain.ErrStorageUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write submissions: %w", domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to flush submissions: %w", domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %w", domain.ErrStorageUnavailable, r.path, err)
	}

	return syncDir(dir)
}

// syncDir makes the rename itself durable.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", domain.ErrStorageUnavailable, dir, err)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync %s: %w", domain.ErrStorageUnavailable, dir, err)
	}

	return nil
}

func (r *submissionRepo) parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(legacyTimestampLayout, value, r.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid submitted_at %q: %w", value, err)
	}

	return t, nil
}

var _ contract.SubmissionRepo = (*submissionRepo)(nil)
