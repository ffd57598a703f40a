// Package server implements the HTTP server using Echo framework.
//
// Routes: activity registry API (list/signup/unregister), static front-end
// under /static with a root redirect, health endpoints, /metrics, /version.
// Handlers split by area: handlers_activities.go, handlers_health.go.
package server
