package utils

import (
	"os"
	"strings"
)

// GetEnv значение переменной окружения или defaultVal, если переменная не задана
func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// GetEnvBool true/1 считаются истиной, остальное - ложью
func GetEnvBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		return val == "true" || val == "1"
	}
	return defaultVal
}
