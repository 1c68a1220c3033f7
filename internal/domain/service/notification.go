package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

type reminderData struct {
	Saturday string
	Sunday   string
	FormURL  string
}

type submissionRow struct {
	SaturdayDate   string
	SaturdayDoctor string
	SundayDate     string
	SundayDoctor   string
	SubmittedAt    string
}

type submissionData struct {
	Saturday string
	Sunday   string
	Entry    submissionRow
	History  []submissionRow
}

func buildReminderEmail(weekend domain.Weekend, formURL string, to []string) (entity.Email, error) {
	data := reminderData{
		Saturday: domain.LongDate(weekend.Saturday),
		Sunday:   domain.LongDate(weekend.Sunday),
		FormURL:  formURL,
	}

	body, err := renderEmail("reminder_email.html", data)
	if err != nil {
		return entity.Email{}, err
	}

	return entity.Email{
		To:       to,
		Subject:  fmt.Sprintf("Weekend Coverage - %s & %s", data.Saturday, data.Sunday),
		HTMLBody: body,
	}, nil
}

// buildSubmissionEmail expects history already ordered newest first.
func buildSubmissionEmail(submission entity.Submission, history []entity.Submission, to []string, loc *time.Location) (entity.Email, error) {
	data := submissionData{
		Saturday: longDateOrRaw(submission.SaturdayDate, loc),
		Sunday:   longDateOrRaw(submission.SundayDate, loc),
		Entry:    newSubmissionRow(submission, loc),
		History:  make([]submissionRow, 0, len(history)),
	}
	for _, s := range history {
		data.History = append(data.History, newSubmissionRow(s, loc))
	}

	body, err := renderEmail("submission_email.html", data)
	if err != nil {
		return entity.Email{}, err
	}

	return entity.Email{
		To:       to,
		Subject:  fmt.Sprintf("Weekend Coverage Submitted - %s & %s", data.Saturday, data.Sunday),
		HTMLBody: body,
	}, nil
}

func renderEmail(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func newSubmissionRow(s entity.Submission, loc *time.Location) submissionRow {
	return submissionRow{
		SaturdayDate:   s.SaturdayDate,
		SaturdayDoctor: s.SaturdayDoctor,
		SundayDate:     s.SundayDate,
		SundayDoctor:   s.SundayDoctor,
		SubmittedAt:    s.SubmittedAt.In(loc).Format("2006-01-02 15:04"),
	}
}

// longDateOrRaw keeps whatever the user typed when it is not a valid date.
func longDateOrRaw(value string, loc *time.Location) string {
	t, err := domain.ParseDate(value, loc)
	if err != nil {
		return value
	}
	return domain.LongDate(t)
}
