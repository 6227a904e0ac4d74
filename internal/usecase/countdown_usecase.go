package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// CountdownUseCase evaluates the checkpoint countdown. Every call re-derives
// the remaining time from the wall clock, so clients polling at any cadence
// always see a self-consistent value.
type CountdownUseCase struct {
	checkpoints domain.Checkpoints
	location    *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

func NewCountdownUseCase(
	checkpoints domain.Checkpoints,
	location *time.Location,
	logger *zap.Logger,
) *CountdownUseCase {
	return &CountdownUseCase{
		checkpoints: checkpoints,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// GetCountdown returns the countdown toward the next checkpoint.
func (uc *CountdownUseCase) GetCountdown(ctx context.Context) *dto.CountdownResponse {
	cd := domain.EvaluateCountdown(uc.checkpoints, uc.now().In(uc.location))

	return &dto.CountdownResponse{
		Target:           string(cd.Target),
		Label:            cd.Label,
		Display:          cd.Display,
		RemainingSeconds: int(cd.Remaining / time.Second),
		Terminal:         cd.Terminal,
	}
}
