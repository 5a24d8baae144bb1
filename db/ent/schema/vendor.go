package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var reGSTIN = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]\dZ[0-9A-Z]$`)

var errInvalidGSTIN = errors.New("invalid GSTIN")

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("gstin").Optional().
			Validate(func(s string) error {
				if s == "" || reGSTIN.MatchString(s) {
					return nil
				}
				return errInvalidGSTIN
			}),
		field.String("email").Optional(),
		field.String("phone").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gstin").Unique(),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> MANY bills
		edge.To("bills", Bill.Type),
	}
}
