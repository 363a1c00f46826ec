package dto

import (
	"go-rest-brewery/internal/domain/entity"
	"time"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	EntityID  string      `json:"entityId"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
