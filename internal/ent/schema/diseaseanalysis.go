package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DiseaseAnalysis holds the schema definition for the DiseaseAnalysis entity.
type DiseaseAnalysis struct {
	ent.Schema
}

// Fields of the DiseaseAnalysis.
func (DiseaseAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("file_type").
			Default(""),
		field.JSON("diagnosis", map[string]any{}),
		field.String("language").
			Default("en-IN"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DiseaseAnalysis.
func (DiseaseAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
