package lib

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

var (
	pongMu     sync.Mutex
	pongObj    model.PongObj
	pingConf   model.Config
	configName string
	startTime  = time.Now()
)

// SetPingConfig задает конфигурацию, из которой собирается ответ на пинг
// сбрасывает ранее собранный ответ
func SetPingConfig(cfg model.Config, config string) {
	pongMu.Lock()
	defer pongMu.Unlock()

	pingConf = cfg
	configName = config
	pongObj = model.PongObj{}
}

func Ping() model.PongObj {
	pongMu.Lock()
	defer pongMu.Unlock()

	return ping()
}

func ping() model.PongObj {
	if pongObj.ReplicaID != "" {
		pongObj.Uptime = time.Since(pongObj.StartTime).String()

		return pongObj
	}

	pongObj = model.PongObj{
		Name:        FirstVal(pingConf.ServiceName, configName, "onlyflow"),
		ReplicaID:   ksuid.New().String(),
		Version:     pingConf.ServiceVersion,
		HashCommit:  pingConf.HashCommit,
		Status:      "run",
		Basename:    pingConf.Basename,
		ProxyTarget: pingConf.ProxyTarget,
		Port:        pingConf.Port,
		Pid:         os.Getpid(),
		StartTime:   startTime,
		Uptime:      time.Since(startTime).String(),

		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	return pongObj
}

func SetPongFields(f func(p *model.PongObj)) {
	if f == nil {
		return
	}

	pongMu.Lock()
	defer pongMu.Unlock()

	if pongObj.ReplicaID == "" {
		ping()
	}

	f(&pongObj)
}

// FirstVal первое не нулевое значение
func FirstVal[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}

	return zero
}
