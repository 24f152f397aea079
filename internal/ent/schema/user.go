package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Mobile numbers are stored in E.164 form.
var phoneRegex = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("mobile").
			Unique().
			Match(phoneRegex),
		field.String("password_hash").
			Sensitive().
			NotEmpty(),
		field.Int("age").
			Optional().
			Min(10).
			Max(120),
		field.Enum("farmer_type").
			Values("marginal", "small", "large").
			Optional(),
		field.String("location").
			Optional().
			MaxLen(100),
		field.String("language").
			Default("en"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
