package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MarketSnapshot holds the schema definition for the MarketSnapshot entity.
type MarketSnapshot struct {
	ent.Schema
}

// Fields of the MarketSnapshot.
func (MarketSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("region").
			NotEmpty(),
		field.JSON("prices", []map[string]any{}),
		field.String("source").
			Default("manual_or_external_ingest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MarketSnapshot.
func (MarketSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "region", "created_at"),
	}
}
