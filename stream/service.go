// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// service.go — service assembly: engine, store, metrics, logging.
//
// Design:
//   • NewService wires everything once; the result is ready to serve.
//   • Each instance owns its run store and (by default) a private metrics
//     registry, so two services in one process never collide.
//   • gin's mode is the caller's business; NewService touches no globals.

package stream

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultCapacity is the run store bound used when Config leaves
// Capacity unset.
const DefaultCapacity = 64

// Config configures a Service. The zero value is usable: default
// capacity, slog.Default(), a private metrics registry.
type Config struct {
	// Capacity bounds the run store; DefaultCapacity when <= 0.
	Capacity int

	// Logger receives request, solve, and replay logs; slog.Default()
	// when nil.
	Logger *slog.Logger

	// Registry receives the service metrics; a fresh private registry
	// when nil. /metrics always serves exactly this registry.
	Registry *prometheus.Registry
}

// Service is the assembled HTTP surface of the solver.
type Service struct {
	engine  *gin.Engine
	store   *RunStore
	metrics *Metrics
	log     *slog.Logger
}

// NewService assembles a service from cfg.
func NewService(cfg Config) (*Service, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	store, err := NewRunStore(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	metrics := NewMetrics(reg)
	handlers := NewHandlers(store, metrics, cfg.Logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(cfg.Logger))

	api := engine.Group("/api/v1")
	RegisterRoutes(api, handlers)

	engine.GET("/healthz", handlers.HandleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return &Service{
		engine:  engine,
		store:   store,
		metrics: metrics,
		log:     cfg.Logger,
	}, nil
}

// Handler exposes the service as an http.Handler, for tests and for
// callers who manage their own http.Server.
func (s *Service) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Service) Run(addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.engine.Run(addr)
}
