package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/service"
)

type handlers struct {
	service service.Service
	logger  lib.Log
	cfg     model.Config
	routes  lib.Routes
}

type Handlers interface {
	Alive(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
	HealthGateway(w http.ResponseWriter, r *http.Request)
	AppConfig(w http.ResponseWriter, r *http.Request)
	Widget(w http.ResponseWriter, r *http.Request)
}

func (h *handlers) transportResponse(w http.ResponseWriter, code int, response interface{}) (err error) {
	d, err := json.Marshal(response)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(d)

	return err
}

func (h *handlers) transportError(ctx context.Context, w http.ResponseWriter, code int, error error, message string) (err error) {
	WriteError(ctx, w, code, error, message)
	h.logger.Error(error, message)

	return error
}

func (h *handlers) transportText(w http.ResponseWriter, mimeType string, response string) (err error) {
	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(response))

	return err
}

// WriteError пишет ответ с ошибкой в едином для шлюза формате
func WriteError(ctx context.Context, w http.ResponseWriter, code int, err error, message string) {
	res := model.ErrorResponse{
		Error:     message,
		Code:      http.StatusText(code),
		RequestID: logger.GetRequestIDCtx(ctx),
	}
	if err != nil {
		res.Error = message + ": " + err.Error()
	}

	d, errM := json.Marshal(res)
	if errM != nil {
		logger.Error(ctx, "marshal error response", zap.Error(errM))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(d)
}

func New(
	service service.Service,
	logger lib.Log,
	cfg model.Config,
) Handlers {
	return &handlers{
		service: service,
		logger:  logger,
		cfg:     cfg,
		routes:  service.Routes(),
	}
}
