package service

import (
	"context"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

// Alive ...
func (s *service) Alive(ctx context.Context) (out model.AliveOut, err error) {
	out.Status = "alive"
	out.Config = s.cfg

	return
}
