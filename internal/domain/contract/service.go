package contract

import (
	"context"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

type CoverageService interface {
	Submit(submission entity.Submission) error
	ListSubmissions() ([]entity.Submission, error)
	History() ([]entity.Submission, error)
	UpcomingWeekend() domain.Weekend
	FollowingWeekend(saturdayDate string) (domain.Weekend, error)
	WeekendsOfYear() []domain.Weekend
	SendReminder(ctx context.Context) error
}
