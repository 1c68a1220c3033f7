package contract

import (
	"context"

	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
)

//go:generate mockgen -source=mailer.go -destination=../../../mocks/mailer.go -package=mocks

// Mailer delivers rendered emails. A mailer without credentials reports
// Enabled() == false and callers skip it.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, email entity.Email) error
}
