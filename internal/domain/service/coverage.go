package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"github.com/diegoclair/weekend-coverage/internal/log"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
)

const notificationTimeout = time.Minute

type coverageService struct {
	dm          contract.DataManager
	mailer      contract.Mailer
	slackClient contract.SlackClient
	cfg         Config
	now         func() time.Time
	// tracks fire-and-forget submission notifications so shutdown can drain them
	wg sync.WaitGroup
}

func newCoverage(dm contract.DataManager, mailer contract.Mailer, slackClient contract.SlackClient, cfg Config) *coverageService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &coverageService{
		dm:          dm,
		mailer:      mailer,
		slackClient: slackClient,
		cfg:         cfg,
		now: func() time.Time {
			return time.Now().In(cfg.Location)
		},
	}
}

// Submit stores the submission and then emails the full history in the
// background. Only storage errors are returned.
func (s *coverageService) Submit(submission entity.Submission) error {
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = s.now()
	}

	if err := s.dm.Submission().Append(submission); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	log.WithFields(log.Fields{
		"saturday_date": submission.SaturdayDate,
		"sunday_date":   submission.SundayDate,
	}).Info("Coverage submission saved")

	s.dispatchSubmissionNotification(submission)

	return nil
}

// ListSubmissions returns all submissions, most recent first.
func (s *coverageService) ListSubmissions() ([]entity.Submission, error) {
	submissions, err := s.History()
	if err != nil {
		return nil, err
	}

	return newestFirst(submissions), nil
}

// History returns all submissions in the order they were made.
func (s *coverageService) History() ([]entity.Submission, error) {
	submissions, err := s.dm.Submission().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	return submissions, nil
}

func (s *coverageService) UpcomingWeekend() domain.Weekend {
	return domain.NextWeekend(s.now())
}

func (s *coverageService) FollowingWeekend(saturdayDate string) (domain.Weekend, error) {
	saturday, err := domain.ParseDate(saturdayDate, s.cfg.Location)
	if err != nil {
		return domain.Weekend{}, err
	}

	return domain.Weekend{Saturday: saturday, Sunday: saturday.AddDate(0, 0, 1)}.Following(), nil
}

func (s *coverageService) WeekendsOfYear() []domain.Weekend {
	return domain.WeekendsInYear(s.now().Year(), s.cfg.Location)
}

// SendReminder emails the coverage form link for the weekend that just ended.
// Missing credentials are logged and skipped; transport errors are returned.
func (s *coverageService) SendReminder(ctx context.Context) error {
	weekend := domain.LastWeekend(s.now())
	formURL := s.formURL(weekend)

	s.postSlackReminder(weekend, formURL)

	if !s.mailer.Enabled() {
		log.Warn("Email credentials not set, skipping weekly reminder email")
		return nil
	}

	to := recipients(s.cfg.RecipientEmail)
	if len(to) == 0 {
		log.Warn("No reminder recipient configured, skipping weekly reminder email")
		return nil
	}

	email, err := buildReminderEmail(weekend, formURL, to)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send weekly reminder: %w", err)
	}

	log.WithFields(log.Fields{
		"recipients":    to,
		"saturday_date": weekend.SaturdayISO(),
	}).Info("Weekly reminder email sent")

	return nil
}

// Wait blocks until all background notifications have finished.
func (s *coverageService) Wait() {
	s.wg.Wait()
}

func (s *coverageService) dispatchSubmissionNotification(submission entity.Submission) {
	dispatchID := uuid.NewString()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		if err := s.sendSubmissionNotification(ctx, dispatchID, submission); err != nil {
			log.WithFields(log.Fields{"dispatch_id": dispatchID}).
				WithError(err).
				Error("Failed to send submission notification")
		}
	}()
}

func (s *coverageService) sendSubmissionNotification(ctx context.Context, dispatchID string, submission entity.Submission) error {
	logger := log.WithFields(log.Fields{"dispatch_id": dispatchID})

	if !s.mailer.Enabled() {
		logger.Warn("Email credentials not set, skipping submission notification")
		return nil
	}

	to := recipients(s.cfg.RecipientEmail, s.cfg.HREmail)
	if len(to) == 0 {
		logger.Warn("No notification recipients configured, skipping submission notification")
		return nil
	}

	history, err := s.History()
	if err != nil {
		return err
	}

	email, err := buildSubmissionEmail(submission, newestFirst(history), to, s.cfg.Location)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send submission notification: %w", err)
	}

	logger.WithField("recipients", to).Info("Submission notification sent")
	return nil
}

func (s *coverageService) postSlackReminder(weekend domain.Weekend, formURL string) {
	if s.slackClient == nil || s.cfg.SlackChannelID == "" {
		return
	}

	message := fmt.Sprintf("📅 *Weekend Coverage Reminder*\n\nPlease submit the doctors who covered %s & %s: <%s|Submit Coverage>",
		domain.LongDate(weekend.Saturday), domain.LongDate(weekend.Sunday), formURL)

	_, _, err := s.slackClient.PostMessage(
		s.cfg.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.WithError(err).WithField("channel_id", s.cfg.SlackChannelID).Error("Failed to post Slack reminder")
		return
	}

	log.WithField("channel_id", s.cfg.SlackChannelID).Info("Slack reminder posted")
}

func (s *coverageService) formURL(weekend domain.Weekend) string {
	query := url.Values{}
	query.Set("sat", weekend.SaturdayISO())
	query.Set("sun", weekend.SundayISO())

	return s.cfg.AppURL + "/weekend-coverage?" + query.Encode()
}

func newestFirst(submissions []entity.Submission) []entity.Submission {
	reversed := make([]entity.Submission, len(submissions))
	for i, submission := range submissions {
		reversed[len(submissions)-1-i] = submission
	}
	return reversed
}

// recipients drops empty and repeated addresses, keeping order
func recipients(addresses ...string) []string {
	seen := make(map[string]bool, len(addresses))

	var to []string
	for _, address := range addresses {
		if address == "" || seen[address] {
			continue
		}
		seen[address] = true
		to = append(to, address)
	}

	return to
}
