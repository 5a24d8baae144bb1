// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/predicate"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/vendor"
	"github.com/google/uuid"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *BillUpdate) SetVendorID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendorID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *BillUpdate) ClearVendorID() *BillUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BillUpdate) SetVendorName(v string) *BillUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendorName(v *string) *BillUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *BillUpdate) ClearVendorName() *BillUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *BillUpdate) SetInvoiceNo(v string) *BillUpdate {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *BillUpdate) SetNillableInvoiceNo(v *string) *BillUpdate {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// ClearInvoiceNo clears the value of the "invoice_no" field.
func (_u *BillUpdate) ClearInvoiceNo() *BillUpdate {
	_u.mutation.ClearInvoiceNo()
	return _u
}

// SetBillDate sets the "bill_date" field.
func (_u *BillUpdate) SetBillDate(v time.Time) *BillUpdate {
	_u.mutation.SetBillDate(v)
	return _u
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableBillDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetBillDate(*v)
	}
	return _u
}

// ClearBillDate clears the value of the "bill_date" field.
func (_u *BillUpdate) ClearBillDate() *BillUpdate {
	_u.mutation.ClearBillDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdate) SetStatus(v bill.Status) *BillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdate) SetNillableStatus(v *bill.Status) *BillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BillUpdate) SetSourcePath(v string) *BillUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BillUpdate) SetNillableSourcePath(v *string) *BillUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// ClearSourcePath clears the value of the "source_path" field.
func (_u *BillUpdate) ClearSourcePath() *BillUpdate {
	_u.mutation.ClearSourcePath()
	return _u
}

// SetFormat sets the "format" field.
func (_u *BillUpdate) SetFormat(v bill.Format) *BillUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *BillUpdate) SetNillableFormat(v *bill.Format) *BillUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *BillUpdate) SetMethod(v string) *BillUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *BillUpdate) SetNillableMethod(v *string) *BillUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *BillUpdate) ClearMethod() *BillUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *BillUpdate) SetSubtotal(v float64) *BillUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *BillUpdate) SetNillableSubtotal(v *float64) *BillUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *BillUpdate) AddSubtotal(v float64) *BillUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *BillUpdate) ClearSubtotal() *BillUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *BillUpdate) SetTax(v float64) *BillUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *BillUpdate) SetNillableTax(v *float64) *BillUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *BillUpdate) AddTax(v float64) *BillUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *BillUpdate) ClearTax() *BillUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *BillUpdate) SetGrandTotal(v float64) *BillUpdate {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *BillUpdate) SetNillableGrandTotal(v *float64) *BillUpdate {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *BillUpdate) AddGrandTotal(v float64) *BillUpdate {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// ClearGrandTotal clears the value of the "grand_total" field.
func (_u *BillUpdate) ClearGrandTotal() *BillUpdate {
	_u.mutation.ClearGrandTotal()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillUpdate) SetConfidence(v float64) *BillUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillUpdate) SetNillableConfidence(v *float64) *BillUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillUpdate) AddConfidence(v float64) *BillUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *BillUpdate) SetNeedsReview(v bool) *BillUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *BillUpdate) SetNillableNeedsReview(v *bool) *BillUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReasons sets the "review_reasons" field.
func (_u *BillUpdate) SetReviewReasons(v []string) *BillUpdate {
	_u.mutation.SetReviewReasons(v)
	return _u
}

// AppendReviewReasons appends value to the "review_reasons" field.
func (_u *BillUpdate) AppendReviewReasons(v []string) *BillUpdate {
	_u.mutation.AppendReviewReasons(v)
	return _u
}

// ClearReviewReasons clears the value of the "review_reasons" field.
func (_u *BillUpdate) ClearReviewReasons() *BillUpdate {
	_u.mutation.ClearReviewReasons()
	return _u
}

// SetExtraction sets the "extraction" field.
func (_u *BillUpdate) SetExtraction(v map[string]interface{}) *BillUpdate {
	_u.mutation.SetExtraction(v)
	return _u
}

// ClearExtraction clears the value of the "extraction" field.
func (_u *BillUpdate) ClearExtraction() *BillUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdate) SetCreatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdate) SetUpdatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *BillUpdate) SetVendor(v *Vendor) *BillUpdate {
	return _u.SetVendorID(v.ID)
}

// AddLineIDs adds the "lines" edge to the BillLine entity by IDs.
func (_u *BillUpdate) AddLineIDs(ids ...uuid.UUID) *BillUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the BillLine entity.
func (_u *BillUpdate) AddLines(v ...*BillLine) *BillUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *BillUpdate) ClearVendor() *BillUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearLines clears all "lines" edges to the BillLine entity.
func (_u *BillUpdate) ClearLines() *BillUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to BillLine entities by IDs.
func (_u *BillUpdate) RemoveLineIDs(ids ...uuid.UUID) *BillUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to BillLine entities.
func (_u *BillUpdate) RemoveLines(v ...*BillLine) *BillUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := bill.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Bill.format": %w`, err)}
		}
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(bill.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(bill.FieldInvoiceNo, field.TypeString, value)
	}
	if _u.mutation.InvoiceNoCleared() {
		_spec.ClearField(bill.FieldInvoiceNo, field.TypeString)
	}
	if value, ok := _u.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
	}
	if _u.mutation.BillDateCleared() {
		_spec.ClearField(bill.FieldBillDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(bill.FieldSourcePath, field.TypeString, value)
	}
	if _u.mutation.SourcePathCleared() {
		_spec.ClearField(bill.FieldSourcePath, field.TypeString)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(bill.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(bill.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(bill.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(bill.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(bill.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(bill.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(bill.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(bill.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(bill.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(bill.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(bill.FieldGrandTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GrandTotalCleared() {
		_spec.ClearField(bill.FieldGrandTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(bill.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReasons(); ok {
		_spec.SetField(bill.FieldReviewReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldReviewReasons, value)
		})
	}
	if _u.mutation.ReviewReasonsCleared() {
		_spec.ClearField(bill.FieldReviewReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extraction(); ok {
		_spec.SetField(bill.FieldExtraction, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionCleared() {
		_spec.ClearField(bill.FieldExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.VendorTable,
			Columns: []string{bill.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.VendorTable,
			Columns: []string{bill.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *BillUpdateOne) SetVendorID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendorID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *BillUpdateOne) ClearVendorID() *BillUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BillUpdateOne) SetVendorName(v string) *BillUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendorName(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *BillUpdateOne) ClearVendorName() *BillUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *BillUpdateOne) SetInvoiceNo(v string) *BillUpdateOne {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableInvoiceNo(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// ClearInvoiceNo clears the value of the "invoice_no" field.
func (_u *BillUpdateOne) ClearInvoiceNo() *BillUpdateOne {
	_u.mutation.ClearInvoiceNo()
	return _u
}

// SetBillDate sets the "bill_date" field.
func (_u *BillUpdateOne) SetBillDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetBillDate(v)
	return _u
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableBillDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetBillDate(*v)
	}
	return _u
}

// ClearBillDate clears the value of the "bill_date" field.
func (_u *BillUpdateOne) ClearBillDate() *BillUpdateOne {
	_u.mutation.ClearBillDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdateOne) SetStatus(v bill.Status) *BillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableStatus(v *bill.Status) *BillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BillUpdateOne) SetSourcePath(v string) *BillUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableSourcePath(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// ClearSourcePath clears the value of the "source_path" field.
func (_u *BillUpdateOne) ClearSourcePath() *BillUpdateOne {
	_u.mutation.ClearSourcePath()
	return _u
}

// SetFormat sets the "format" field.
func (_u *BillUpdateOne) SetFormat(v bill.Format) *BillUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableFormat(v *bill.Format) *BillUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *BillUpdateOne) SetMethod(v string) *BillUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableMethod(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *BillUpdateOne) ClearMethod() *BillUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *BillUpdateOne) SetSubtotal(v float64) *BillUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableSubtotal(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *BillUpdateOne) AddSubtotal(v float64) *BillUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *BillUpdateOne) ClearSubtotal() *BillUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *BillUpdateOne) SetTax(v float64) *BillUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableTax(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *BillUpdateOne) AddTax(v float64) *BillUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *BillUpdateOne) ClearTax() *BillUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *BillUpdateOne) SetGrandTotal(v float64) *BillUpdateOne {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableGrandTotal(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *BillUpdateOne) AddGrandTotal(v float64) *BillUpdateOne {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// ClearGrandTotal clears the value of the "grand_total" field.
func (_u *BillUpdateOne) ClearGrandTotal() *BillUpdateOne {
	_u.mutation.ClearGrandTotal()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillUpdateOne) SetConfidence(v float64) *BillUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableConfidence(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillUpdateOne) AddConfidence(v float64) *BillUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *BillUpdateOne) SetNeedsReview(v bool) *BillUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableNeedsReview(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewReasons sets the "review_reasons" field.
func (_u *BillUpdateOne) SetReviewReasons(v []string) *BillUpdateOne {
	_u.mutation.SetReviewReasons(v)
	return _u
}

// AppendReviewReasons appends value to the "review_reasons" field.
func (_u *BillUpdateOne) AppendReviewReasons(v []string) *BillUpdateOne {
	_u.mutation.AppendReviewReasons(v)
	return _u
}

// ClearReviewReasons clears the value of the "review_reasons" field.
func (_u *BillUpdateOne) ClearReviewReasons() *BillUpdateOne {
	_u.mutation.ClearReviewReasons()
	return _u
}

// SetExtraction sets the "extraction" field.
func (_u *BillUpdateOne) SetExtraction(v map[string]interface{}) *BillUpdateOne {
	_u.mutation.SetExtraction(v)
	return _u
}

// ClearExtraction clears the value of the "extraction" field.
func (_u *BillUpdateOne) ClearExtraction() *BillUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdateOne) SetCreatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdateOne) SetUpdatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *BillUpdateOne) SetVendor(v *Vendor) *BillUpdateOne {
	return _u.SetVendorID(v.ID)
}

// AddLineIDs adds the "lines" edge to the BillLine entity by IDs.
func (_u *BillUpdateOne) AddLineIDs(ids ...uuid.UUID) *BillUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the BillLine entity.
func (_u *BillUpdateOne) AddLines(v ...*BillLine) *BillUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *BillUpdateOne) ClearVendor() *BillUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearLines clears all "lines" edges to the BillLine entity.
func (_u *BillUpdateOne) ClearLines() *BillUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to BillLine entities by IDs.
func (_u *BillUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *BillUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to BillLine entities.
func (_u *BillUpdateOne) RemoveLines(v ...*BillLine) *BillUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := bill.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Bill.format": %w`, err)}
		}
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(bill.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(bill.FieldInvoiceNo, field.TypeString, value)
	}
	if _u.mutation.InvoiceNoCleared() {
		_spec.ClearField(bill.FieldInvoiceNo, field.TypeString)
	}
	if value, ok := _u.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
	}
	if _u.mutation.BillDateCleared() {
		_spec.ClearField(bill.FieldBillDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(bill.FieldSourcePath, field.TypeString, value)
	}
	if _u.mutation.SourcePathCleared() {
		_spec.ClearField(bill.FieldSourcePath, field.TypeString)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(bill.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(bill.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(bill.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(bill.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(bill.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(bill.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(bill.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(bill.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(bill.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(bill.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(bill.FieldGrandTotal, field.TypeFloat64, value)
	}
	if _u.mutation.GrandTotalCleared() {
		_spec.ClearField(bill.FieldGrandTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bill.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(bill.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewReasons(); ok {
		_spec.SetField(bill.FieldReviewReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldReviewReasons, value)
		})
	}
	if _u.mutation.ReviewReasonsCleared() {
		_spec.ClearField(bill.FieldReviewReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extraction(); ok {
		_spec.SetField(bill.FieldExtraction, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionCleared() {
		_spec.ClearField(bill.FieldExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.VendorTable,
			Columns: []string{bill.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.VendorTable,
			Columns: []string{bill.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bill.LinesTable,
			Columns: []string{bill.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
