package model

import "time"

// PongObj ответ на пинг сервиса
type PongObj struct {
	Name        string    `json:"name"`
	ReplicaID   string    `json:"replica_id"`
	Version     string    `json:"version"`
	HashCommit  string    `json:"hash_commit"`
	Status      string    `json:"status"`
	Basename    string    `json:"basename"`
	ProxyTarget string    `json:"proxy_target"`
	Port        string    `json:"port"`
	Pid         int       `json:"pid"`
	StartTime   time.Time `json:"start_time"`
	Uptime      string    `json:"uptime"`
	OS          string    `json:"os"`
	Arch        string    `json:"arch"`
}

// ErrorResponse тело ответа шлюза при ошибке
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// UpstreamStatus состояние бекенда
type UpstreamStatus struct {
	Target    string    `json:"target"`
	Healthy   bool      `json:"healthy"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// AliveOut ответ на /alive
type AliveOut struct {
	Status string `json:"status"`
	Config Config `json:"config"`
}
