// запускаем указанные виды из поддерживаемых серверов
package servers

import (
	"strings"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/service"
)

type servers struct {
	mode       string
	service    service.Service
	httpserver httpserver.Server
	cfg        model.Config
}

type Servers interface {
	Run() error
}

// запускаем указанные севрера
func (s *servers) Run() error {
	if strings.Contains(s.mode, "http") {
		return s.httpserver.Run()
	}

	return nil
}

func New(
	mode string,
	service service.Service,
	httpserver httpserver.Server,
	cfg model.Config,
) Servers {
	return &servers{
		mode,
		service,
		httpserver,
		cfg,
	}
}
