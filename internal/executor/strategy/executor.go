package strategy

import (
	"context"

	"presscraft/internal/entity"
)

// ClippingStrategy executes one run of a subscription type and returns the
// JSON result stored on the run.
type ClippingStrategy interface {
	Execute(ctx context.Context, run *entity.ClippingRun, sub *entity.ClippingSubscription) (string, error)
	GetType() entity.TaskType
}
