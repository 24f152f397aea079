// Package handler exposes the advisory pipeline and account operations
// over HTTP. Handlers parse and validate the request, call the domain
// layer, persist the result, and map domain errors onto status codes.
package handler

import (
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/artifact"
	"agroadvisor/internal/auth"
	"agroadvisor/internal/repository"
	"agroadvisor/internal/weather"
)

type Handler struct {
	advisor   *advisor.Advisor
	weather   *weather.Client
	users     repository.UserRepository
	tokens    repository.TokenRepository
	reports   repository.ReportRepository
	snapshots repository.SnapshotRepository
	store     artifact.Store
	issuer    *auth.Issuer
	log       *zap.Logger
}

type Deps struct {
	Advisor   *advisor.Advisor
	Weather   *weather.Client
	Users     repository.UserRepository
	Tokens    repository.TokenRepository
	Reports   repository.ReportRepository
	Snapshots repository.SnapshotRepository
	Store     artifact.Store
	Issuer    *auth.Issuer
	Logger    *zap.Logger
}

func New(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Store == nil {
		d.Store = artifact.NoopStore{}
	}
	return &Handler{
		advisor:   d.Advisor,
		weather:   d.Weather,
		users:     d.Users,
		tokens:    d.Tokens,
		reports:   d.Reports,
		snapshots: d.Snapshots,
		store:     d.Store,
		issuer:    d.Issuer,
		log:       d.Logger,
	}
}
