package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agroadvisor/internal/ent"
	entrevoked "agroadvisor/internal/ent/revokedtoken"
)

// TokenRepository is the logout blacklist. A revoked token stays listed
// until it would have expired on its own.
type TokenRepository interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type tokenRepository struct {
	client *ent.Client
	log    *zap.Logger
}

func NewTokenRepository(client *ent.Client, logger *zap.Logger) TokenRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tokenRepository{client: client, log: logger}
}

func (r *tokenRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	err := r.client.RevokedToken.Create().
		SetToken(token).
		SetExpiresAt(expiresAt).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		// Revoking twice is a no-op, not an error.
		r.log.Error("revoke token failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *tokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	return r.client.RevokedToken.Query().
		Where(
			entrevoked.Token(token),
			entrevoked.ExpiresAtGT(time.Now()),
		).
		Exist(ctx)
}
