package service

import (
	"context"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

// Ping ...
func (s *service) Ping(ctx context.Context) (result model.PongObj, err error) {
	return lib.Ping(), nil
}
