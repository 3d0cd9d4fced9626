package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver/docs"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver/handlers"
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

type Routes []Route

func (h *httpserver) NewRouter() *mux.Router {
	router := mux.NewRouter()
	// пути отдаем в бекенд как есть, без очистки
	router.SkipClean(true)

	handler := handlers.New(h.src, h.logger, h.cfg)
	appRoutes := h.src.Routes()
	mount := appRoutes.MountPath()

	var routes = Routes{
		Route{"Alive", "GET", "/alive", handler.Alive},
		Route{"ProxyPing", "GET", "/ping", handler.Ping},
		Route{"HealthGateway", "GET", "/health_gateway", handler.HealthGateway},
		Route{"Metrics", "GET", "/metrics", promhttp.Handler().ServeHTTP},

		Route{"AppConfig", "GET", mount + "/app-config.js", handler.AppConfig},
		Route{"Widget", "GET", mount + "/widget", handler.Widget},
	}

	for _, route := range routes {
		router.
			Methods(route.Method, http.MethodHead).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}

	router.PathPrefix("/swagger/").Name("Swagger").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API проксируем в бекенд на любой метод
	router.
		MatcherFunc(func(r *http.Request, _ *mux.RouteMatch) bool {
			return appRoutes.IsAPIRoute(r.URL.Path)
		}).
		Name("Proxy").
		Handler(h.newProxy())

	if mount != "" {
		router.
			Path(mount).
			Name("Redirect").
			HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				target := mount + "/"
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusFound)
			})
	}

	router.
		PathPrefix(mount + "/").
		Name("Static").
		Handler(newStaticHandler(h.cfg.StaticDir, mount))

	router.NotFoundHandler = h.MiddleRequestID(h.MiddleLogger(http.NotFoundHandler(), "NotFound"))

	router.Use(h.MiddleRequestID)
	router.Use(h.Recover)
	router.Use(h.MiddleMetrics)
	router.Use(h.MiddleAccessLog)

	return router
}
