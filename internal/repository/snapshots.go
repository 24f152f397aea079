package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agroadvisor/internal/ent"
	entmarket "agroadvisor/internal/ent/marketsnapshot"
	"agroadvisor/internal/entity"
)

// SnapshotRepository stores raw provider payloads: weather fetches and
// ingested market price series.
type SnapshotRepository interface {
	CreateWeatherSnapshot(ctx context.Context, userID uuid.UUID, lat, lon float64, payload json.RawMessage) (*entity.WeatherSnapshot, error)
	CreateMarketSnapshot(ctx context.Context, userID uuid.UUID, region string, prices []map[string]any, source string) (*entity.MarketSnapshot, error)
	// LatestMarketSnapshot returns the user's most recent snapshot for a
	// region, optionally filtered to one commodity.
	LatestMarketSnapshot(ctx context.Context, userID uuid.UUID, region, commodity string) (*entity.MarketSnapshot, error)
}

type snapshotRepository struct {
	client *ent.Client
	log    *zap.Logger
}

func NewSnapshotRepository(client *ent.Client, logger *zap.Logger) SnapshotRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &snapshotRepository{client: client, log: logger}
}

func (r *snapshotRepository) CreateWeatherSnapshot(ctx context.Context, userID uuid.UUID, lat, lon float64, payload json.RawMessage) (*entity.WeatherSnapshot, error) {
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, err
	}

	create := r.client.WeatherSnapshot.Create().
		SetLat(lat).
		SetLon(lon).
		SetPayload(decoded)
	if userID != uuid.Nil {
		create = create.SetUserID(userID)
	}
	rec, err := create.Save(ctx)
	if err != nil {
		r.log.Error("create weather snapshot failed", zap.Error(err))
		return nil, err
	}
	return &entity.WeatherSnapshot{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Lat:       rec.Lat,
		Lon:       rec.Lon,
		Provider:  rec.Provider,
		Payload:   rec.Payload,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (r *snapshotRepository) CreateMarketSnapshot(ctx context.Context, userID uuid.UUID, region string, prices []map[string]any, source string) (*entity.MarketSnapshot, error) {
	create := r.client.MarketSnapshot.Create().
		SetUserID(userID).
		SetRegion(region).
		SetPrices(prices)
	if source != "" {
		create = create.SetSource(source)
	}
	rec, err := create.Save(ctx)
	if err != nil {
		r.log.Error("create market snapshot failed", zap.Error(err))
		return nil, err
	}
	return toMarketSnapshot(rec), nil
}

func (r *snapshotRepository) LatestMarketSnapshot(ctx context.Context, userID uuid.UUID, region, commodity string) (*entity.MarketSnapshot, error) {
	rec, err := r.client.MarketSnapshot.Query().
		Where(entmarket.UserID(userID), entmarket.Region(region)).
		Order(ent.Desc(entmarket.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	snap := toMarketSnapshot(rec)
	if commodity != "" {
		filtered := make([]map[string]any, 0, len(snap.Prices))
		for _, p := range snap.Prices {
			if name, _ := p["commodity"].(string); strings.EqualFold(name, commodity) {
				filtered = append(filtered, p)
			}
		}
		snap.Prices = filtered
	}
	return snap, nil
}

func toMarketSnapshot(rec *ent.MarketSnapshot) *entity.MarketSnapshot {
	return &entity.MarketSnapshot{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Region:    rec.Region,
		Prices:    rec.Prices,
		Source:    rec.Source,
		CreatedAt: rec.CreatedAt,
	}
}
