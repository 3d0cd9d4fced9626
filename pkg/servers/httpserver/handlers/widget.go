package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
)

// Widget код встраивания чата для флоу
// ?flow_id=...&flow_name=...&auth=true
func (h *handlers) Widget(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Widget] Error response execution", zap.Error(err))
		}
	}()

	in, err := widgetDecodeRequest(r, h.routes.BaseName)
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusBadRequest, err, "[Widget] error exec widgetDecodeRequest")
		return
	}

	code, err := lib.WidgetCode(in)
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusBadRequest, err, "[Widget] error exec lib.WidgetCode")
		return
	}

	err = h.transportText(w, "text/plain; charset=utf-8", code)
}

func widgetDecodeRequest(r *http.Request, basename string) (in lib.WidgetParams, err error) {
	q := r.URL.Query()

	in = lib.WidgetParams{
		FlowID:   q.Get("flow_id"),
		FlowName: q.Get("flow_name"),
		Host:     lib.RequestOrigin(r),
		Basename: basename,
	}
	if auth := q.Get("auth"); auth != "" {
		in.IsAuth, err = strconv.ParseBool(auth)
	}

	return in, err
}
