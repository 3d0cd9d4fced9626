package lib

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/color"
)

var (
	ErrConfig = errors.New("config file is empty")
	warning   = color.Red("[Fail]")
)

// ConfigLoad читаем конфигурацию
// 1. значения по-умолчанию и переменные окружения (envconfig)
// 2. если передан файл - поверх накладываем значения из toml
// 3. длинная строка (больше 200) считается конфигурацией, переданной в base64
func ConfigLoad(config string, cfgPointer interface{}) (payload string, err error) {
	if err := envconfig.Process("", cfgPointer); err != nil {
		fmt.Println(warning, "Unable load default environment:", err)
		return "", fmt.Errorf("unable load default environment: %w", err)
	}

	config = strings.TrimSpace(config)
	if len(config) == 0 {
		return "", ErrConfig
	}

	if len(config) < 200 {
		if filepath.Ext(config) == "" {
			config = config + ".cfg"
		}

		data, err := os.ReadFile(config)
		if err != nil {
			return "", fmt.Errorf("unable read configfile (%s): %w", config, err)
		}
		payload = string(data)
	} else {
		debase, err := base64.StdEncoding.DecodeString(config)
		if err != nil {
			return "", fmt.Errorf("unable decode to string from base64 configfile: %w", err)
		}
		payload = string(debase)
	}

	err = DecodeConfig(payload, cfgPointer)

	return payload, err
}

// DecodeConfig читаем конфигурацию из строки
func DecodeConfig(configfile string, cfg interface{}) (err error) {
	if _, err = toml.Decode(configfile, cfg); err != nil {
		fmt.Println(warning, "Error:", err)
		return fmt.Errorf("unable decode config: %w", err)
	}

	return nil
}
