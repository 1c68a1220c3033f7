package service

import (
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
)

type Config struct {
	AppURL         string
	RecipientEmail string
	HREmail        string
	SlackChannelID string
	Location       *time.Location
	ReminderDay    int
	ReminderTime   string
}

type Instance struct {
	Coverage  *coverageService
	Scheduler *scheduler
}

// NewInstance wires the coverage service and its weekly reminder scheduler.
// slackClient may be nil when the Slack sink is not configured.
func NewInstance(dm contract.DataManager, mailer contract.Mailer, slackClient contract.SlackClient, cfg Config) *Instance {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	coverageService := newCoverage(dm, mailer, slackClient, cfg)

	return &Instance{
		Coverage:  coverageService,
		Scheduler: newScheduler(coverageService, cfg.ReminderDay, cfg.ReminderTime, cfg.Location),
	}
}
