package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type BillLine struct{ ent.Schema }

func (BillLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bill_lines"},
	}
}

func (BillLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("bill_id", uuid.UUID{}),
		field.UUID("product_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("line_no"),
		field.String("hsn").Optional(),
		field.String("description"),
		field.String("uom").Optional(),
		field.Float("qty").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,3)"}),
		field.Float("rate").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("confidence").Default(0),
		field.Bool("inconsistent").Default(false),
		field.String("matched_sku").Optional(),
	}
}

func (BillLine) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY lines -> ONE bill (FK: bill_lines.bill_id)
		edge.From("bill", Bill.Type).
			Ref("lines").
			Field("bill_id").
			Required().
			Unique(),
		// OPTIONAL: MANY lines -> ONE product (FK: bill_lines.product_id)
		edge.From("product", Product.Type).
			Ref("bill_lines").
			Field("product_id").
			Unique(),
	}
}
