package lib

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/go-playground/validator/v10"
)

const WidgetScriptURL = "https://cdn.jsdelivr.net/gh/logspace-ai/langflow-embedded-chat@v1.0.7/dist/build/static/js/bundle.min.js"

const widgetTemplate = `<script src="{{ .ScriptURL }}"></script>

  <langflow-chat
    window_title="{{ .FlowName | html }}"
    flow_id="{{ .FlowID | html }}"
    host_url="{{ .HostURL | html }}"
{{- if not .IsAuth }}
    api_key="..."
{{- end }}
  ></langflow-chat>`

var (
	validate  = validator.New()
	widgetTpl = template.Must(template.New("widget").Funcs(sprig.TxtFuncMap()).Parse(widgetTemplate))
)

// WidgetParams параметры встраиваемого чата для flow
type WidgetParams struct {
	FlowID   string `validate:"required"`
	FlowName string
	IsAuth   bool
	// Host схема и хост, с которых открыт интерфейс (http://localhost:3000)
	Host     string `validate:"required,url"`
	Basename string
}

// WidgetCode формирует html-код для встраивания чата flow на сторонний сайт
func WidgetCode(p WidgetParams) (string, error) {
	if err := validate.Struct(p); err != nil {
		return "", fmt.Errorf("invalid widget params: %w", err)
	}

	data := struct {
		WidgetParams
		ScriptURL string
		HostURL   string
	}{
		WidgetParams: p,
		ScriptURL:    WidgetScriptURL,
		HostURL:      JoinPaths(p.Host, p.Basename),
	}

	var buf bytes.Buffer
	if err := widgetTpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("unable render widget code: %w", err)
	}

	return buf.String(), nil
}
