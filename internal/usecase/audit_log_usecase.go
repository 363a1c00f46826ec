package usecase

import (
	"context"

	"go-rest-brewery/internal/converter"
	"go-rest-brewery/internal/delivery/dto"
	"go-rest-brewery/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	GetBeerHistory(ctx context.Context, beerID uuid.UUID) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetBeerHistory returns the audit trail of one beer, oldest first. Beers
// that were deleted keep their history.
func (u *auditLogUsecase) GetBeerHistory(ctx context.Context, beerID uuid.UUID) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindByEntityID(ctx, beerID.String())
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
