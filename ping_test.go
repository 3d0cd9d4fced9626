package lib

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

// helper для сброса глобального состояния перед каждым тестом
func resetGlobals() {
	pongObj = model.PongObj{}
	pingConf = model.Config{}
	configName = ""
}

func TestPingInitialFields(t *testing.T) {
	resetGlobals()

	t0 := time.Now().Add(-5 * time.Second)
	startTime = t0

	got := Ping()
	assert.NotEmpty(t, got.ReplicaID)
	assert.Equal(t, "run", got.Status)
	assert.Equal(t, "onlyflow", got.Name)
	assert.Equal(t, os.Getpid(), got.Pid)
	assert.Equal(t, t0, got.StartTime)
	_, err := time.ParseDuration(got.Uptime)
	assert.NoError(t, err)
	assert.Equal(t, runtime.GOOS, got.OS)
	assert.Equal(t, runtime.GOARCH, got.Arch)
}

func TestPingSubsequentUptimeIncreases(t *testing.T) {
	resetGlobals()
	startTime = time.Now().Add(-100 * time.Millisecond)

	first := Ping()
	d1, err := time.ParseDuration(first.Uptime)
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	second := Ping()
	d2, err := time.ParseDuration(second.Uptime)
	assert.NoError(t, err)

	assert.GreaterOrEqual(t, d2, d1, "ожидали, что Uptime на втором Ping не меньше первого")
	assert.Equal(t, first.ReplicaID, second.ReplicaID)
}

func TestSetPingConfig(t *testing.T) {
	resetGlobals()
	first := Ping()

	SetPingConfig(model.Config{
		Basename:       "/onlyflow/",
		Port:           "3000",
		ProxyTarget:    "http://127.0.0.1:7860",
		ServiceVersion: "1.2.0",
		HashCommit:     "abc",
	}, "gateway.cfg")

	got := Ping()
	assert.NotEqual(t, first.ReplicaID, got.ReplicaID, "новая конфигурация пересобирает ответ")
	assert.Equal(t, "gateway.cfg", got.Name, "без ServiceName имя берется из названия конфига")
	assert.Equal(t, "/onlyflow/", got.Basename)
	assert.Equal(t, "3000", got.Port)
	assert.Equal(t, "http://127.0.0.1:7860", got.ProxyTarget)
	assert.Equal(t, "1.2.0", got.Version)
	assert.Equal(t, "abc", got.HashCommit)
}

func TestSetPongFieldsModifiesAndCallsPingOnce(t *testing.T) {
	resetGlobals()
	t0 := time.Now().Add(-1 * time.Minute)
	startTime = t0

	assert.Empty(t, pongObj.ReplicaID)

	SetPongFields(func(p *model.PongObj) {
		p.Status = "degraded"
	})

	assert.Equal(t, "degraded", pongObj.Status)
	assert.Equal(t, t0, pongObj.StartTime)
	assert.Equal(t, "degraded", Ping().Status)
}

func TestSetPongFieldsNilDoesNothing(t *testing.T) {
	resetGlobals()
	SetPongFields(nil)
	assert.Empty(t, pongObj.ReplicaID, "при f==nil pongObj не изменяется и Ping не вызывается")
}

func TestFirstVal(t *testing.T) {
	assert.Equal(t, "b", FirstVal("", "b", "c"))
	assert.Equal(t, 0, FirstVal(0, 0))
	assert.Equal(t, 3, FirstVal(0, 3))
}
