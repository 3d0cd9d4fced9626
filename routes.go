package lib

import (
	"encoding/json"
	"fmt"
	"strings"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/internal/utils"
)

const (
	DefaultBasename      = "/onlyflow/"
	DefaultPort          = 3000
	DefaultProxyTarget   = "http://127.0.0.1:7860"
	DefaultDocsLink      = "https://docs.langflow.org"
	DefaultProfileImage  = "Space/046-rocket.svg"
	profilePicturesRoute = "files/profile_pictures/"
)

// Routes маршруты фронтенда, вычисляемые от BASENAME
// по ним строятся адреса запросов к API и префиксы проксирования
type Routes struct {
	BaseName       string   `json:"basename" yaml:"basename"`
	BaseURLAPI     string   `json:"base_url_api" yaml:"base_url_api"`
	BaseURLAPIv2   string   `json:"base_url_api_v2" yaml:"base_url_api_v2"`
	HealthURL      string   `json:"health_url" yaml:"health_url"`
	HealthCheckURL string   `json:"health_check_url" yaml:"health_check_url"`
	APIRoutes      []string `json:"api_routes" yaml:"api_routes"`
	DocsLink       string   `json:"docs_link" yaml:"docs_link"`
}

// NewRoutes маршруты от BASENAME, basename приводится к виду "/name/"
func NewRoutes(basename string) Routes {
	basename = utils.NormalizeBasename(basename)
	r := Routes{
		BaseName:       basename,
		BaseURLAPI:     JoinPaths(basename, "/api/v1/"),
		BaseURLAPIv2:   JoinPaths(basename, "/api/v2/"),
		HealthURL:      JoinPaths(basename, "/health"),
		HealthCheckURL: JoinPaths(basename, "/health_check"),
		DocsLink:       DefaultDocsLink,
	}
	r.APIRoutes = []string{r.BaseURLAPI, r.BaseURLAPIv2, r.HealthURL}

	return r
}

// MountPath префикс, под которым отдается приложение ("" - корень)
func (r Routes) MountPath() string {
	return utils.MountPath(r.BaseName)
}

// ProfileImageURL адрес картинки профиля пользователя, пустое значение - картинка по-умолчанию
func (r Routes) ProfileImageURL(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		image = DefaultProfileImage
	}

	return r.BaseURLAPI + profilePicturesRoute + utils.EscapePathPreservingSlashes(strings.TrimLeft(image, "/"))
}

// AppConfigJS скрипт, объявляющий глобальные константы для SPA (аналог define при сборке)
func (r Routes) AppConfigJS() string {
	var b strings.Builder
	vars := []struct {
		name  string
		value string
	}{
		{"__BASENAME__", r.BaseName},
		{"__BASE_URL_API__", r.BaseURLAPI},
		{"__BASE_URL_API_V2__", r.BaseURLAPIv2},
		{"__HEALTH_CHECK_URL__", r.HealthCheckURL},
		{"__DOCS_LINK__", r.DocsLink},
	}
	for _, v := range vars {
		payload, _ := json.Marshal(v.value)
		fmt.Fprintf(&b, "window.%s = %s;\n", v.name, payload)
	}

	return b.String()
}

// IsAPIRoute путь обслуживается бекендом (проксируется)
func (r Routes) IsAPIRoute(path string) bool {
	for _, prefix := range r.APIRoutes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
