package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RevokedToken holds the schema definition for the RevokedToken entity.
// Logged-out bearer tokens live here until they would have expired anyway.
type RevokedToken struct {
	ent.Schema
}

// Fields of the RevokedToken.
func (RevokedToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			Unique().
			NotEmpty(),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
