package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("sku").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("hsn").Optional(),
		field.String("uom").Optional(),
		field.Float("stock").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,3)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sku").Unique(),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE product -> MANY matched bill lines
		edge.To("bill_lines", BillLine.Type),
	}
}
