package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SoilReport holds the schema definition for the SoilReport entity.
type SoilReport struct {
	ent.Schema
}

// Fields of the SoilReport.
func (SoilReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.JSON("soil_report", map[string]any{}),
		field.JSON("solution", map[string]any{}),
		field.String("language").
			Default("en-IN"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SoilReport.
func (SoilReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
