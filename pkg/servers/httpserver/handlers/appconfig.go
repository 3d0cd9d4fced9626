package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
)

// AppConfig отдает app-config.js с маршрутами приложения
func (h *handlers) AppConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if err := h.transportText(w, "application/javascript; charset=utf-8", h.routes.AppConfigJS()); err != nil {
		logger.Error(r.Context(), "[AppConfig] Error response execution", zap.Error(err))
	}
}
