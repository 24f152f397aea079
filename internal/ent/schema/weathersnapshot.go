package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WeatherSnapshot holds the schema definition for the WeatherSnapshot entity.
type WeatherSnapshot struct {
	ent.Schema
}

// Fields of the WeatherSnapshot.
func (WeatherSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Optional(),
		field.Float("lat"),
		field.Float("lon"),
		field.String("provider").
			Default("openweather"),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WeatherSnapshot.
func (WeatherSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
