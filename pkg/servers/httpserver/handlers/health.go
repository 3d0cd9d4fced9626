package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
)

// HealthGateway состояние бекенда глазами шлюза: 200 если бекенд отвечает ok, иначе 503
// @Summary состояние бекенда глазами шлюза
// @Produce json
// @Success 200 {object} model.UpstreamStatus
// @Failure 503 {object} model.UpstreamStatus
// @Router /health_gateway [get]
func (h *handlers) HealthGateway(w http.ResponseWriter, r *http.Request) {
	status, errH := h.service.Health(r.Context())

	code := http.StatusOK
	if errH != nil {
		code = http.StatusServiceUnavailable
		logger.Warn(r.Context(), "[HealthGateway] upstream is not healthy", zap.Error(errH))
	}

	if err := h.transportResponse(w, code, status); err != nil {
		logger.Error(r.Context(), "[HealthGateway] Error response execution", zap.Error(err))
	}
}
