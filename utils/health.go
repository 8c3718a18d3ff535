package utils

import (
	"context"
	"sync"
	"time"
)

// healthCheckTimeout bounds each dependency ping.
const healthCheckTimeout = 2 * time.Second

// PingFunc checks one external dependency.
type PingFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.Redis
}

// CheckHealth pings MongoDB and Redis concurrently. A nil PingFunc counts as down.
func CheckHealth(ctx context.Context, mongoPing, redisPing PingFunc) HealthStatus {
	var (
		wg      sync.WaitGroup
		mongoOK bool
		redisOK bool
	)
	probe := func(ping PingFunc, ok *bool) {
		defer wg.Done()
		if ping == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()
		*ok = ping(ctx) == nil
	}

	wg.Add(2)
	go probe(mongoPing, &mongoOK)
	go probe(redisPing, &redisOK)
	wg.Wait()

	status := HealthStatus{
		Status:    "ok",
		Mongo:     mongoOK,
		Redis:     redisOK,
		CheckedAt: time.Now().UTC(),
	}
	if !status.Healthy() {
		status.Status = "degraded"
	}
	return status
}
