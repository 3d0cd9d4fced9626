package httpserver

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/mileusna/useragent"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver/handlers"
)

const headerRequestID = "X-Request-Id"

// statusRecorder запоминает код ответа, Unwrap нужен ReverseProxy для Flush и Hijack
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.size += n
	return n, err
}

func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

func recorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return "NotFound"
}

// MiddleRequestID берет X-Request-Id из запроса или генерирует новый (ksuid)
// и кладет его в контекст логгера, ответ и запрос в бекенд
func (h *httpserver) MiddleRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = ksuid.New().String()
			r.Header.Set(headerRequestID, requestID)
		}
		w.Header().Set(headerRequestID, requestID)

		ctx := logger.SetRequestIDCtx(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *httpserver) MiddleLogger(next http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := recorder(w)

		next.ServeHTTP(rec, r)
		timeInterval := time.Since(start)

		if name == "ProxyPing" || name == "Metrics" || name == "Alive" {
			return
		}

		ua := useragent.Parse(r.UserAgent())
		mes := fmt.Sprintf("Query: %s %s %s %s", r.Method, r.RequestURI, name, timeInterval)
		logger.Info(r.Context(), mes,
			zap.Float64("timing", timeInterval.Seconds()),
			zap.Int("status", rec.Status()),
			zap.Int("size", rec.size),
			zap.String("ip", lib.ReadUserIP(r)),
			zap.String("browser", ua.Name),
			zap.String("os", ua.OS),
			zap.String("device", deviceType(ua)),
		)
	})
}

// MiddleAccessLog MiddleLogger с именем маршрута из роутера
func (h *httpserver) MiddleAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.MiddleLogger(next, routeName(r)).ServeHTTP(w, r)
	})
}

func deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Bot:
		return "bot"
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	}
	return "unknown"
}

func (h *httpserver) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(r *http.Request) {
			rec := recover()
			if rec == nil {
				return
			}
			// обрыв ответа ReverseProxy обрабатывает сам net/http
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			b := string(debug.Stack())
			logger.Error(r.Context(), fmt.Sprintf("Recover panic from path: %s, panic: %v", r.URL.String(), rec), zap.String("debug stack", b))
			handlers.WriteError(r.Context(), w, http.StatusInternalServerError, nil, http.StatusText(http.StatusInternalServerError))
		}(r)
		next.ServeHTTP(w, r)
	})
}
