package lib_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
)

// LogLine структура строки лога, нужна для анмаршалинга
type LogLine struct {
	Config string `json:"config"`
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Name   string `json:"name"`
	Srv    string `json:"srv"`
	Uid    string `json:"uid"`
}

func readLines(t *testing.T, buf *bytes.Buffer) []LogLine {
	t.Helper()
	var lines []LogLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var l LogLine
		require.NoError(t, json.Unmarshal([]byte(raw), &l))
		lines = append(lines, l)
	}
	return lines
}

func TestNewLogger_LevelsFilter(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	l, err := lib.NewLogger(lib.ConfigLogger{
		Level:  "Error|Info",
		Uid:    "u1",
		Name:   "onlyflow",
		Srv:    "front",
		Config: "onlyflow.cfg",
		Output: buf,
	})
	require.NoError(t, err)
	defer l.Close()

	l.Debug("hidden")
	l.Warning("hidden")
	l.Info("gateway started")
	l.Error(errors.New("boom"), "proxy failed")

	lines := readLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0].Level)
	assert.Equal(t, "gateway started", lines[0].Msg)
	assert.Equal(t, "u1", lines[0].Uid)
	assert.Equal(t, "onlyflow", lines[0].Name)
	assert.Equal(t, "front", lines[0].Srv)
	assert.Equal(t, "onlyflow.cfg", lines[0].Config)

	assert.Equal(t, "error", lines[1].Level)
	assert.Contains(t, lines[1].Msg, "proxy failed")
	assert.Contains(t, lines[1].Msg, "boom")
}

func TestNewLogger_All(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	l, err := lib.NewLogger(lib.ConfigLogger{Level: "All", Output: buf})
	require.NoError(t, err)

	l.Trace("t")
	l.Debug("d")
	l.Warning("w")

	assert.Len(t, readLines(t, buf), 3)
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := lib.NewLogger(lib.ConfigLogger{
		Level: "Info",
		Srv:   "front",
		File:  lib.ConfigFileLogger{Enabled: true, Dir: dir, MaxSizeMB: 1, MaxBackups: 1},
	})
	require.NoError(t, err)

	l.Info("to file")
	l.Close()

	data, err := os.ReadFile(filepath.Join(dir, "front.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLogger_FileWithoutDir(t *testing.T) {
	t.Parallel()
	_, err := lib.NewLogger(lib.ConfigLogger{File: lib.ConfigFileLogger{Enabled: true}})
	assert.Error(t, err)
}
