package domain

import "time"

// RemoteHealth é o último resultado da verificação periódica da API do Magento
type RemoteHealth struct {
	Enabled       bool       `json:"enabled"`
	Reachable     bool       `json:"reachable"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

type HealthCheck struct {
	Status     string       `json:"status"`
	ServerTime string       `json:"server_time"`
	Magento    RemoteHealth `json:"magento"`
}
