package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FertilizerPlan holds the schema definition for the FertilizerPlan entity.
type FertilizerPlan struct {
	ent.Schema
}

// Fields of the FertilizerPlan.
func (FertilizerPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("crop").
			NotEmpty(),
		field.String("stage").
			NotEmpty(),
		field.JSON("plan", map[string]any{}),
		field.String("language").
			Default("en-IN"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FertilizerPlan.
func (FertilizerPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
