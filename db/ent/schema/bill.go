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

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.String("vendor_name").Optional(),
		field.String("invoice_no").Optional(),
		field.Time("bill_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Enum("status").
			Values("UPLOADED", "PROCESSING", "PROCESSED", "FAILED", "CONFIRMED").
			Default("UPLOADED"),
		field.String("source_path").Optional(),
		field.Enum("format").Values("PDF", "IMAGE"),
		field.String("method").Optional(),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("grand_total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("confidence").Default(0),
		field.Bool("needs_review").Default(false),
		field.JSON("review_reasons", []string{}).Optional(),
		// Full extraction artifact, kept for audit and re-review.
		field.JSON("extraction", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("needs_review"),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE vendor (FK: bills.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("bills").
			Field("vendor_id").
			Unique(),
		// ONE bill -> MANY lines
		edge.To("lines", BillLine.Type),
	}
}
