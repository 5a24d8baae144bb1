// Code generated by ent, DO NOT EDIT.

package billline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldID, id))
}

// BillID applies equality check predicate on the "bill_id" field. It's identical to BillIDEQ.
func BillID(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldBillID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldProductID, v))
}

// LineNo applies equality check predicate on the "line_no" field. It's identical to LineNoEQ.
func LineNo(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldLineNo, v))
}

// Hsn applies equality check predicate on the "hsn" field. It's identical to HsnEQ.
func Hsn(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldHsn, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldDescription, v))
}

// Uom applies equality check predicate on the "uom" field. It's identical to UomEQ.
func Uom(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldUom, v))
}

// Qty applies equality check predicate on the "qty" field. It's identical to QtyEQ.
func Qty(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldQty, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldRate, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldAmount, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldConfidence, v))
}

// Inconsistent applies equality check predicate on the "inconsistent" field. It's identical to InconsistentEQ.
func Inconsistent(v bool) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldInconsistent, v))
}

// MatchedSku applies equality check predicate on the "matched_sku" field. It's identical to MatchedSkuEQ.
func MatchedSku(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldMatchedSku, v))
}

// BillIDEQ applies the EQ predicate on the "bill_id" field.
func BillIDEQ(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldBillID, v))
}

// BillIDNEQ applies the NEQ predicate on the "bill_id" field.
func BillIDNEQ(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldBillID, v))
}

// BillIDIn applies the In predicate on the "bill_id" field.
func BillIDIn(vs ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldBillID, vs...))
}

// BillIDNotIn applies the NotIn predicate on the "bill_id" field.
func BillIDNotIn(vs ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldBillID, vs...))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldProductID, vs...))
}

// ProductIDIsNil applies the IsNil predicate on the "product_id" field.
func ProductIDIsNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldIsNull(FieldProductID))
}

// ProductIDNotNil applies the NotNil predicate on the "product_id" field.
func ProductIDNotNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldNotNull(FieldProductID))
}

// LineNoEQ applies the EQ predicate on the "line_no" field.
func LineNoEQ(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldLineNo, v))
}

// LineNoNEQ applies the NEQ predicate on the "line_no" field.
func LineNoNEQ(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldLineNo, v))
}

// LineNoIn applies the In predicate on the "line_no" field.
func LineNoIn(vs ...int) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldLineNo, vs...))
}

// LineNoNotIn applies the NotIn predicate on the "line_no" field.
func LineNoNotIn(vs ...int) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldLineNo, vs...))
}

// LineNoGT applies the GT predicate on the "line_no" field.
func LineNoGT(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldLineNo, v))
}

// LineNoGTE applies the GTE predicate on the "line_no" field.
func LineNoGTE(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldLineNo, v))
}

// LineNoLT applies the LT predicate on the "line_no" field.
func LineNoLT(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldLineNo, v))
}

// LineNoLTE applies the LTE predicate on the "line_no" field.
func LineNoLTE(v int) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldLineNo, v))
}

// HsnEQ applies the EQ predicate on the "hsn" field.
func HsnEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldHsn, v))
}

// HsnNEQ applies the NEQ predicate on the "hsn" field.
func HsnNEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldHsn, v))
}

// HsnIn applies the In predicate on the "hsn" field.
func HsnIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldHsn, vs...))
}

// HsnNotIn applies the NotIn predicate on the "hsn" field.
func HsnNotIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldHsn, vs...))
}

// HsnGT applies the GT predicate on the "hsn" field.
func HsnGT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldHsn, v))
}

// HsnGTE applies the GTE predicate on the "hsn" field.
func HsnGTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldHsn, v))
}

// HsnLT applies the LT predicate on the "hsn" field.
func HsnLT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldHsn, v))
}

// HsnLTE applies the LTE predicate on the "hsn" field.
func HsnLTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldHsn, v))
}

// HsnContains applies the Contains predicate on the "hsn" field.
func HsnContains(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContains(FieldHsn, v))
}

// HsnHasPrefix applies the HasPrefix predicate on the "hsn" field.
func HsnHasPrefix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasPrefix(FieldHsn, v))
}

// HsnHasSuffix applies the HasSuffix predicate on the "hsn" field.
func HsnHasSuffix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasSuffix(FieldHsn, v))
}

// HsnIsNil applies the IsNil predicate on the "hsn" field.
func HsnIsNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldIsNull(FieldHsn))
}

// HsnNotNil applies the NotNil predicate on the "hsn" field.
func HsnNotNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldNotNull(FieldHsn))
}

// HsnEqualFold applies the EqualFold predicate on the "hsn" field.
func HsnEqualFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEqualFold(FieldHsn, v))
}

// HsnContainsFold applies the ContainsFold predicate on the "hsn" field.
func HsnContainsFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContainsFold(FieldHsn, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContainsFold(FieldDescription, v))
}

// UomEQ applies the EQ predicate on the "uom" field.
func UomEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldUom, v))
}

// UomNEQ applies the NEQ predicate on the "uom" field.
func UomNEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldUom, v))
}

// UomIn applies the In predicate on the "uom" field.
func UomIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldUom, vs...))
}

// UomNotIn applies the NotIn predicate on the "uom" field.
func UomNotIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldUom, vs...))
}

// UomGT applies the GT predicate on the "uom" field.
func UomGT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldUom, v))
}

// UomGTE applies the GTE predicate on the "uom" field.
func UomGTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldUom, v))
}

// UomLT applies the LT predicate on the "uom" field.
func UomLT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldUom, v))
}

// UomLTE applies the LTE predicate on the "uom" field.
func UomLTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldUom, v))
}

// UomContains applies the Contains predicate on the "uom" field.
func UomContains(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContains(FieldUom, v))
}

// UomHasPrefix applies the HasPrefix predicate on the "uom" field.
func UomHasPrefix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasPrefix(FieldUom, v))
}

// UomHasSuffix applies the HasSuffix predicate on the "uom" field.
func UomHasSuffix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasSuffix(FieldUom, v))
}

// UomIsNil applies the IsNil predicate on the "uom" field.
func UomIsNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldIsNull(FieldUom))
}

// UomNotNil applies the NotNil predicate on the "uom" field.
func UomNotNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldNotNull(FieldUom))
}

// UomEqualFold applies the EqualFold predicate on the "uom" field.
func UomEqualFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEqualFold(FieldUom, v))
}

// UomContainsFold applies the ContainsFold predicate on the "uom" field.
func UomContainsFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContainsFold(FieldUom, v))
}

// QtyEQ applies the EQ predicate on the "qty" field.
func QtyEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldQty, v))
}

// QtyNEQ applies the NEQ predicate on the "qty" field.
func QtyNEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldQty, v))
}

// QtyIn applies the In predicate on the "qty" field.
func QtyIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldQty, vs...))
}

// QtyNotIn applies the NotIn predicate on the "qty" field.
func QtyNotIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldQty, vs...))
}

// QtyGT applies the GT predicate on the "qty" field.
func QtyGT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldQty, v))
}

// QtyGTE applies the GTE predicate on the "qty" field.
func QtyGTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldQty, v))
}

// QtyLT applies the LT predicate on the "qty" field.
func QtyLT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldQty, v))
}

// QtyLTE applies the LTE predicate on the "qty" field.
func QtyLTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldQty, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldRate, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldAmount, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldConfidence, v))
}

// InconsistentEQ applies the EQ predicate on the "inconsistent" field.
func InconsistentEQ(v bool) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldInconsistent, v))
}

// InconsistentNEQ applies the NEQ predicate on the "inconsistent" field.
func InconsistentNEQ(v bool) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldInconsistent, v))
}

// MatchedSkuEQ applies the EQ predicate on the "matched_sku" field.
func MatchedSkuEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEQ(FieldMatchedSku, v))
}

// MatchedSkuNEQ applies the NEQ predicate on the "matched_sku" field.
func MatchedSkuNEQ(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNEQ(FieldMatchedSku, v))
}

// MatchedSkuIn applies the In predicate on the "matched_sku" field.
func MatchedSkuIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldIn(FieldMatchedSku, vs...))
}

// MatchedSkuNotIn applies the NotIn predicate on the "matched_sku" field.
func MatchedSkuNotIn(vs ...string) predicate.BillLine {
	return predicate.BillLine(sql.FieldNotIn(FieldMatchedSku, vs...))
}

// MatchedSkuGT applies the GT predicate on the "matched_sku" field.
func MatchedSkuGT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGT(FieldMatchedSku, v))
}

// MatchedSkuGTE applies the GTE predicate on the "matched_sku" field.
func MatchedSkuGTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldGTE(FieldMatchedSku, v))
}

// MatchedSkuLT applies the LT predicate on the "matched_sku" field.
func MatchedSkuLT(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLT(FieldMatchedSku, v))
}

// MatchedSkuLTE applies the LTE predicate on the "matched_sku" field.
func MatchedSkuLTE(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldLTE(FieldMatchedSku, v))
}

// MatchedSkuContains applies the Contains predicate on the "matched_sku" field.
func MatchedSkuContains(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContains(FieldMatchedSku, v))
}

// MatchedSkuHasPrefix applies the HasPrefix predicate on the "matched_sku" field.
func MatchedSkuHasPrefix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasPrefix(FieldMatchedSku, v))
}

// MatchedSkuHasSuffix applies the HasSuffix predicate on the "matched_sku" field.
func MatchedSkuHasSuffix(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldHasSuffix(FieldMatchedSku, v))
}

// MatchedSkuIsNil applies the IsNil predicate on the "matched_sku" field.
func MatchedSkuIsNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldIsNull(FieldMatchedSku))
}

// MatchedSkuNotNil applies the NotNil predicate on the "matched_sku" field.
func MatchedSkuNotNil() predicate.BillLine {
	return predicate.BillLine(sql.FieldNotNull(FieldMatchedSku))
}

// MatchedSkuEqualFold applies the EqualFold predicate on the "matched_sku" field.
func MatchedSkuEqualFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldEqualFold(FieldMatchedSku, v))
}

// MatchedSkuContainsFold applies the ContainsFold predicate on the "matched_sku" field.
func MatchedSkuContainsFold(v string) predicate.BillLine {
	return predicate.BillLine(sql.FieldContainsFold(FieldMatchedSku, v))
}

// HasBill applies the HasEdge predicate on the "bill" edge.
func HasBill() predicate.BillLine {
	return predicate.BillLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BillTable, BillColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillWith applies the HasEdge predicate on the "bill" edge with a given conditions (other predicates).
func HasBillWith(preds ...predicate.Bill) predicate.BillLine {
	return predicate.BillLine(func(s *sql.Selector) {
		step := newBillStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.BillLine {
	return predicate.BillLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.BillLine {
	return predicate.BillLine(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillLine) predicate.BillLine {
	return predicate.BillLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillLine) predicate.BillLine {
	return predicate.BillLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillLine) predicate.BillLine {
	return predicate.BillLine(sql.NotPredicates(p))
}
