package handler

import (
	"net/http"

	"go-rest-brewery/internal/usecase"
	"go-rest-brewery/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetBeerHistory handles listing the audit trail of a beer
// @Summary Get beer history
// @Description Audit entries recorded for a beer, oldest first
// @Tags Beers
// @Produce json
// @Param id path string true "Beer ID"
// @Success 200 {object} dto.AuditLogListResponse
// @Failure 400 {object} response.ErrorBody
// @Router /beer/{id}/history [get]
func (h *AuditLogHandler) GetBeerHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBeerID(w, r)
	if !ok {
		return
	}

	history, err := h.auditLogUsecase.GetBeerHistory(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Failed to get beer history")
		return
	}

	response.OK(w, history)
}
