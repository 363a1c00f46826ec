package repository

import (
	"context"

	"go-rest-brewery/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByEntityID(ctx context.Context, entityID string) ([]entity.AuditLog, error)
}
