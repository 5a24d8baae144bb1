// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// Hsn applies equality check predicate on the "hsn" field. It's identical to HsnEQ.
func Hsn(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldHsn, v))
}

// Uom applies equality check predicate on the "uom" field. It's identical to UomEQ.
func Uom(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUom, v))
}

// Stock applies equality check predicate on the "stock" field. It's identical to StockEQ.
func Stock(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStock, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSku, v))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSku, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldName, v))
}

// HsnEQ applies the EQ predicate on the "hsn" field.
func HsnEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldHsn, v))
}

// HsnNEQ applies the NEQ predicate on the "hsn" field.
func HsnNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldHsn, v))
}

// HsnIn applies the In predicate on the "hsn" field.
func HsnIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldHsn, vs...))
}

// HsnNotIn applies the NotIn predicate on the "hsn" field.
func HsnNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldHsn, vs...))
}

// HsnGT applies the GT predicate on the "hsn" field.
func HsnGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldHsn, v))
}

// HsnGTE applies the GTE predicate on the "hsn" field.
func HsnGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldHsn, v))
}

// HsnLT applies the LT predicate on the "hsn" field.
func HsnLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldHsn, v))
}

// HsnLTE applies the LTE predicate on the "hsn" field.
func HsnLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldHsn, v))
}

// HsnContains applies the Contains predicate on the "hsn" field.
func HsnContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldHsn, v))
}

// HsnHasPrefix applies the HasPrefix predicate on the "hsn" field.
func HsnHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldHsn, v))
}

// HsnHasSuffix applies the HasSuffix predicate on the "hsn" field.
func HsnHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldHsn, v))
}

// HsnIsNil applies the IsNil predicate on the "hsn" field.
func HsnIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldHsn))
}

// HsnNotNil applies the NotNil predicate on the "hsn" field.
func HsnNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldHsn))
}

// HsnEqualFold applies the EqualFold predicate on the "hsn" field.
func HsnEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldHsn, v))
}

// HsnContainsFold applies the ContainsFold predicate on the "hsn" field.
func HsnContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldHsn, v))
}

// UomEQ applies the EQ predicate on the "uom" field.
func UomEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUom, v))
}

// UomNEQ applies the NEQ predicate on the "uom" field.
func UomNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUom, v))
}

// UomIn applies the In predicate on the "uom" field.
func UomIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUom, vs...))
}

// UomNotIn applies the NotIn predicate on the "uom" field.
func UomNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUom, vs...))
}

// UomGT applies the GT predicate on the "uom" field.
func UomGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUom, v))
}

// UomGTE applies the GTE predicate on the "uom" field.
func UomGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUom, v))
}

// UomLT applies the LT predicate on the "uom" field.
func UomLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUom, v))
}

// UomLTE applies the LTE predicate on the "uom" field.
func UomLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUom, v))
}

// UomContains applies the Contains predicate on the "uom" field.
func UomContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldUom, v))
}

// UomHasPrefix applies the HasPrefix predicate on the "uom" field.
func UomHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldUom, v))
}

// UomHasSuffix applies the HasSuffix predicate on the "uom" field.
func UomHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldUom, v))
}

// UomIsNil applies the IsNil predicate on the "uom" field.
func UomIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldUom))
}

// UomNotNil applies the NotNil predicate on the "uom" field.
func UomNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldUom))
}

// UomEqualFold applies the EqualFold predicate on the "uom" field.
func UomEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldUom, v))
}

// UomContainsFold applies the ContainsFold predicate on the "uom" field.
func UomContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldUom, v))
}

// StockEQ applies the EQ predicate on the "stock" field.
func StockEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStock, v))
}

// StockNEQ applies the NEQ predicate on the "stock" field.
func StockNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldStock, v))
}

// StockIn applies the In predicate on the "stock" field.
func StockIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldStock, vs...))
}

// StockNotIn applies the NotIn predicate on the "stock" field.
func StockNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldStock, vs...))
}

// StockGT applies the GT predicate on the "stock" field.
func StockGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldStock, v))
}

// StockGTE applies the GTE predicate on the "stock" field.
func StockGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldStock, v))
}

// StockLT applies the LT predicate on the "stock" field.
func StockLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldStock, v))
}

// StockLTE applies the LTE predicate on the "stock" field.
func StockLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldStock, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBillLines applies the HasEdge predicate on the "bill_lines" edge.
func HasBillLines() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BillLinesTable, BillLinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillLinesWith applies the HasEdge predicate on the "bill_lines" edge with a given conditions (other predicates).
func HasBillLinesWith(preds ...predicate.BillLine) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newBillLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
