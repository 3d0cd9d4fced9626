package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
)

// Alive процесс шлюза жив (состояние бекенда не проверяется)
// @Summary процесс шлюза жив
// @Produce json
// @Success 200 {object} model.AliveOut
// @Failure 500 {object} model.ErrorResponse
// @Router /alive [get]
func (h *handlers) Alive(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Alive] Error response execution",
				zap.String("url", r.RequestURI),
				zap.Error(err))
		}
	}()

	serviceResult, err := h.service.Alive(r.Context())
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, "[Alive] error exec service.Alive")
		return
	}

	err = h.transportResponse(w, http.StatusOK, serviceResult)
}
