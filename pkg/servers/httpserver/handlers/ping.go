package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
)

// @Summary параметры запущенного экземпляра шлюза
// @Produce json
// @Success 200 {object} model.PongObj
// @Failure 500 {object} model.ErrorResponse
// @Router /ping [get]
func (h *handlers) Ping(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Ping] Error response execution", zap.Error(err))
		}
	}()

	serviceResult, err := h.service.Ping(r.Context())
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, "[Ping] error exec service.Ping")
		return
	}

	err = h.transportResponse(w, http.StatusOK, serviceResult)
}
