package lib

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

func ReadUserIP(r *http.Request) string {
	IPAddress := r.Header.Get("X-Real-Ip")
	if IPAddress == "" {
		IPAddress = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	}
	if IPAddress == "" {
		IPAddress = r.RemoteAddr
	}
	return IPAddress
}

// RequestOrigin схема и хост, под которыми клиент видит сервис (с учетом прокси перед шлюзом)
func RequestOrigin(r *http.Request) string {
	scheme := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0])
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}

	host := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Host"), ",")[0])
	if host == "" {
		host = r.Host
	}

	return scheme + "://" + host
}

func PortResolver(port string) (status bool) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return false
	}

	ln.Close()
	return true
}

// WaitPort ждем освобождения порта, ретраим согласно заданным параметрам
func WaitPort(ctx context.Context, port string, maxCountRetries int, timeRetries time.Duration) (string, error) {
	return Retrier(ctx, maxCountRetries, timeRetries, func() (string, error) {
		if PortResolver(port) {
			return port, nil
		}

		return "", fmt.Errorf("listen tcp :%s. address already in use", port)
	})
}
