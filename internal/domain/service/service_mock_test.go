package service

import (
	"testing"
	"time"

	"github.com/diegoclair/weekend-coverage/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockSubmissionRepo *mocks.MockSubmissionRepo
	mockMailer         *mocks.MockMailer
	mockSlackClient    *mocks.MockSlackClient
}

var testConfig = Config{
	AppURL:         "http://coverage.test",
	RecipientEmail: "coverage@example.com",
	HREmail:        "hr@example.com",
	SlackChannelID: "C123456",
	Location:       time.UTC,
	ReminderDay:    1,
	ReminderTime:   "08:00",
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	submissionRepo := mocks.NewMockSubmissionRepo(ctrl)
	dm.EXPECT().Submission().Return(submissionRepo).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockSubmissionRepo: submissionRepo,
		mockMailer:         mocks.NewMockMailer(ctrl),
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	coverageService := newCoverage(dm, m.mockMailer, m.mockSlackClient, testConfig)
	require.NotNil(t, coverageService)

	return
}

// newTestCoverage builds a service pinned to now.
func newTestCoverage(m allMocks, cfg Config, now time.Time) *coverageService {
	s := newCoverage(m.mockDataManager, m.mockMailer, m.mockSlackClient, cfg)
	s.now = func() time.Time { return now.In(cfg.Location) }
	return s
}
