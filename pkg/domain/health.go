package domain

import "time"

// BackendStatus is the result of the last health check of a backend
type BackendStatus struct {
	Name      string
	Up        bool
	Error     string
	CheckedAt time.Time
}
