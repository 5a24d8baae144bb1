// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/predicate"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/google/uuid"
)

// BillLineUpdate is the builder for updating BillLine entities.
type BillLineUpdate struct {
	config
	hooks    []Hook
	mutation *BillLineMutation
}

// Where appends a list predicates to the BillLineUpdate builder.
func (_u *BillLineUpdate) Where(ps ...predicate.BillLine) *BillLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBillID sets the "bill_id" field.
func (_u *BillLineUpdate) SetBillID(v uuid.UUID) *BillLineUpdate {
	_u.mutation.SetBillID(v)
	return _u
}

// SetNillableBillID sets the "bill_id" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableBillID(v *uuid.UUID) *BillLineUpdate {
	if v != nil {
		_u.SetBillID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *BillLineUpdate) SetProductID(v uuid.UUID) *BillLineUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableProductID(v *uuid.UUID) *BillLineUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *BillLineUpdate) ClearProductID() *BillLineUpdate {
	_u.mutation.ClearProductID()
	return _u
}

// SetLineNo sets the "line_no" field.
func (_u *BillLineUpdate) SetLineNo(v int) *BillLineUpdate {
	_u.mutation.ResetLineNo()
	_u.mutation.SetLineNo(v)
	return _u
}

// SetNillableLineNo sets the "line_no" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableLineNo(v *int) *BillLineUpdate {
	if v != nil {
		_u.SetLineNo(*v)
	}
	return _u
}

// AddLineNo adds value to the "line_no" field.
func (_u *BillLineUpdate) AddLineNo(v int) *BillLineUpdate {
	_u.mutation.AddLineNo(v)
	return _u
}

// SetHsn sets the "hsn" field.
func (_u *BillLineUpdate) SetHsn(v string) *BillLineUpdate {
	_u.mutation.SetHsn(v)
	return _u
}

// SetNillableHsn sets the "hsn" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableHsn(v *string) *BillLineUpdate {
	if v != nil {
		_u.SetHsn(*v)
	}
	return _u
}

// ClearHsn clears the value of the "hsn" field.
func (_u *BillLineUpdate) ClearHsn() *BillLineUpdate {
	_u.mutation.ClearHsn()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillLineUpdate) SetDescription(v string) *BillLineUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableDescription(v *string) *BillLineUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetUom sets the "uom" field.
func (_u *BillLineUpdate) SetUom(v string) *BillLineUpdate {
	_u.mutation.SetUom(v)
	return _u
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableUom(v *string) *BillLineUpdate {
	if v != nil {
		_u.SetUom(*v)
	}
	return _u
}

// ClearUom clears the value of the "uom" field.
func (_u *BillLineUpdate) ClearUom() *BillLineUpdate {
	_u.mutation.ClearUom()
	return _u
}

// SetQty sets the "qty" field.
func (_u *BillLineUpdate) SetQty(v float64) *BillLineUpdate {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableQty(v *float64) *BillLineUpdate {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *BillLineUpdate) AddQty(v float64) *BillLineUpdate {
	_u.mutation.AddQty(v)
	return _u
}

// SetRate sets the "rate" field.
func (_u *BillLineUpdate) SetRate(v float64) *BillLineUpdate {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableRate(v *float64) *BillLineUpdate {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *BillLineUpdate) AddRate(v float64) *BillLineUpdate {
	_u.mutation.AddRate(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillLineUpdate) SetAmount(v float64) *BillLineUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableAmount(v *float64) *BillLineUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillLineUpdate) AddAmount(v float64) *BillLineUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillLineUpdate) SetConfidence(v float64) *BillLineUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableConfidence(v *float64) *BillLineUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillLineUpdate) AddConfidence(v float64) *BillLineUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetInconsistent sets the "inconsistent" field.
func (_u *BillLineUpdate) SetInconsistent(v bool) *BillLineUpdate {
	_u.mutation.SetInconsistent(v)
	return _u
}

// SetNillableInconsistent sets the "inconsistent" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableInconsistent(v *bool) *BillLineUpdate {
	if v != nil {
		_u.SetInconsistent(*v)
	}
	return _u
}

// SetMatchedSku sets the "matched_sku" field.
func (_u *BillLineUpdate) SetMatchedSku(v string) *BillLineUpdate {
	_u.mutation.SetMatchedSku(v)
	return _u
}

// SetNillableMatchedSku sets the "matched_sku" field if the given value is not nil.
func (_u *BillLineUpdate) SetNillableMatchedSku(v *string) *BillLineUpdate {
	if v != nil {
		_u.SetMatchedSku(*v)
	}
	return _u
}

// ClearMatchedSku clears the value of the "matched_sku" field.
func (_u *BillLineUpdate) ClearMatchedSku() *BillLineUpdate {
	_u.mutation.ClearMatchedSku()
	return _u
}

// SetBill sets the "bill" edge to the Bill entity.
func (_u *BillLineUpdate) SetBill(v *Bill) *BillLineUpdate {
	return _u.SetBillID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *BillLineUpdate) SetProduct(v *Product) *BillLineUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the BillLineMutation object of the builder.
func (_u *BillLineUpdate) Mutation() *BillLineMutation {
	return _u.mutation
}

// ClearBill clears the "bill" edge to the Bill entity.
func (_u *BillLineUpdate) ClearBill() *BillLineUpdate {
	_u.mutation.ClearBill()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *BillLineUpdate) ClearProduct() *BillLineUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillLineUpdate) check() error {
	if _u.mutation.BillCleared() && len(_u.mutation.BillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillLine.bill"`)
	}
	return nil
}

func (_u *BillLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billline.Table, billline.Columns, sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LineNo(); ok {
		_spec.SetField(billline.FieldLineNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNo(); ok {
		_spec.AddField(billline.FieldLineNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hsn(); ok {
		_spec.SetField(billline.FieldHsn, field.TypeString, value)
	}
	if _u.mutation.HsnCleared() {
		_spec.ClearField(billline.FieldHsn, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billline.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uom(); ok {
		_spec.SetField(billline.FieldUom, field.TypeString, value)
	}
	if _u.mutation.UomCleared() {
		_spec.ClearField(billline.FieldUom, field.TypeString)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(billline.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(billline.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(billline.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(billline.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billline.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(billline.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(billline.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(billline.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Inconsistent(); ok {
		_spec.SetField(billline.FieldInconsistent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchedSku(); ok {
		_spec.SetField(billline.FieldMatchedSku, field.TypeString, value)
	}
	if _u.mutation.MatchedSkuCleared() {
		_spec.ClearField(billline.FieldMatchedSku, field.TypeString)
	}
	if _u.mutation.BillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.BillTable,
			Columns: []string{billline.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.BillTable,
			Columns: []string{billline.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.ProductTable,
			Columns: []string{billline.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.ProductTable,
			Columns: []string{billline.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillLineUpdateOne is the builder for updating a single BillLine entity.
type BillLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillLineMutation
}

// SetBillID sets the "bill_id" field.
func (_u *BillLineUpdateOne) SetBillID(v uuid.UUID) *BillLineUpdateOne {
	_u.mutation.SetBillID(v)
	return _u
}

// SetNillableBillID sets the "bill_id" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableBillID(v *uuid.UUID) *BillLineUpdateOne {
	if v != nil {
		_u.SetBillID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *BillLineUpdateOne) SetProductID(v uuid.UUID) *BillLineUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableProductID(v *uuid.UUID) *BillLineUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *BillLineUpdateOne) ClearProductID() *BillLineUpdateOne {
	_u.mutation.ClearProductID()
	return _u
}

// SetLineNo sets the "line_no" field.
func (_u *BillLineUpdateOne) SetLineNo(v int) *BillLineUpdateOne {
	_u.mutation.ResetLineNo()
	_u.mutation.SetLineNo(v)
	return _u
}

// SetNillableLineNo sets the "line_no" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableLineNo(v *int) *BillLineUpdateOne {
	if v != nil {
		_u.SetLineNo(*v)
	}
	return _u
}

// AddLineNo adds value to the "line_no" field.
func (_u *BillLineUpdateOne) AddLineNo(v int) *BillLineUpdateOne {
	_u.mutation.AddLineNo(v)
	return _u
}

// SetHsn sets the "hsn" field.
func (_u *BillLineUpdateOne) SetHsn(v string) *BillLineUpdateOne {
	_u.mutation.SetHsn(v)
	return _u
}

// SetNillableHsn sets the "hsn" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableHsn(v *string) *BillLineUpdateOne {
	if v != nil {
		_u.SetHsn(*v)
	}
	return _u
}

// ClearHsn clears the value of the "hsn" field.
func (_u *BillLineUpdateOne) ClearHsn() *BillLineUpdateOne {
	_u.mutation.ClearHsn()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillLineUpdateOne) SetDescription(v string) *BillLineUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableDescription(v *string) *BillLineUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetUom sets the "uom" field.
func (_u *BillLineUpdateOne) SetUom(v string) *BillLineUpdateOne {
	_u.mutation.SetUom(v)
	return _u
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableUom(v *string) *BillLineUpdateOne {
	if v != nil {
		_u.SetUom(*v)
	}
	return _u
}

// ClearUom clears the value of the "uom" field.
func (_u *BillLineUpdateOne) ClearUom() *BillLineUpdateOne {
	_u.mutation.ClearUom()
	return _u
}

// SetQty sets the "qty" field.
func (_u *BillLineUpdateOne) SetQty(v float64) *BillLineUpdateOne {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableQty(v *float64) *BillLineUpdateOne {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *BillLineUpdateOne) AddQty(v float64) *BillLineUpdateOne {
	_u.mutation.AddQty(v)
	return _u
}

// SetRate sets the "rate" field.
func (_u *BillLineUpdateOne) SetRate(v float64) *BillLineUpdateOne {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableRate(v *float64) *BillLineUpdateOne {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *BillLineUpdateOne) AddRate(v float64) *BillLineUpdateOne {
	_u.mutation.AddRate(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillLineUpdateOne) SetAmount(v float64) *BillLineUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableAmount(v *float64) *BillLineUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillLineUpdateOne) AddAmount(v float64) *BillLineUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillLineUpdateOne) SetConfidence(v float64) *BillLineUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableConfidence(v *float64) *BillLineUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillLineUpdateOne) AddConfidence(v float64) *BillLineUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetInconsistent sets the "inconsistent" field.
func (_u *BillLineUpdateOne) SetInconsistent(v bool) *BillLineUpdateOne {
	_u.mutation.SetInconsistent(v)
	return _u
}

// SetNillableInconsistent sets the "inconsistent" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableInconsistent(v *bool) *BillLineUpdateOne {
	if v != nil {
		_u.SetInconsistent(*v)
	}
	return _u
}

// SetMatchedSku sets the "matched_sku" field.
func (_u *BillLineUpdateOne) SetMatchedSku(v string) *BillLineUpdateOne {
	_u.mutation.SetMatchedSku(v)
	return _u
}

// SetNillableMatchedSku sets the "matched_sku" field if the given value is not nil.
func (_u *BillLineUpdateOne) SetNillableMatchedSku(v *string) *BillLineUpdateOne {
	if v != nil {
		_u.SetMatchedSku(*v)
	}
	return _u
}

// ClearMatchedSku clears the value of the "matched_sku" field.
func (_u *BillLineUpdateOne) ClearMatchedSku() *BillLineUpdateOne {
	_u.mutation.ClearMatchedSku()
	return _u
}

// SetBill sets the "bill" edge to the Bill entity.
func (_u *BillLineUpdateOne) SetBill(v *Bill) *BillLineUpdateOne {
	return _u.SetBillID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *BillLineUpdateOne) SetProduct(v *Product) *BillLineUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the BillLineMutation object of the builder.
func (_u *BillLineUpdateOne) Mutation() *BillLineMutation {
	return _u.mutation
}

// ClearBill clears the "bill" edge to the Bill entity.
func (_u *BillLineUpdateOne) ClearBill() *BillLineUpdateOne {
	_u.mutation.ClearBill()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *BillLineUpdateOne) ClearProduct() *BillLineUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the BillLineUpdate builder.
func (_u *BillLineUpdateOne) Where(ps ...predicate.BillLine) *BillLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillLineUpdateOne) Select(field string, fields ...string) *BillLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillLine entity.
func (_u *BillLineUpdateOne) Save(ctx context.Context) (*BillLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillLineUpdateOne) SaveX(ctx context.Context) *BillLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillLineUpdateOne) check() error {
	if _u.mutation.BillCleared() && len(_u.mutation.BillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillLine.bill"`)
	}
	return nil
}

func (_u *BillLineUpdateOne) sqlSave(ctx context.Context) (_node *BillLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billline.Table, billline.Columns, sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billline.FieldID)
		for _, f := range fields {
			if !billline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billline.FieldID {
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
	if value, ok := _u.mutation.LineNo(); ok {
		_spec.SetField(billline.FieldLineNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNo(); ok {
		_spec.AddField(billline.FieldLineNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hsn(); ok {
		_spec.SetField(billline.FieldHsn, field.TypeString, value)
	}
	if _u.mutation.HsnCleared() {
		_spec.ClearField(billline.FieldHsn, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billline.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uom(); ok {
		_spec.SetField(billline.FieldUom, field.TypeString, value)
	}
	if _u.mutation.UomCleared() {
		_spec.ClearField(billline.FieldUom, field.TypeString)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(billline.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(billline.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(billline.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(billline.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billline.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(billline.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(billline.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(billline.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Inconsistent(); ok {
		_spec.SetField(billline.FieldInconsistent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchedSku(); ok {
		_spec.SetField(billline.FieldMatchedSku, field.TypeString, value)
	}
	if _u.mutation.MatchedSkuCleared() {
		_spec.ClearField(billline.FieldMatchedSku, field.TypeString)
	}
	if _u.mutation.BillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.BillTable,
			Columns: []string{billline.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.BillTable,
			Columns: []string{billline.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.ProductTable,
			Columns: []string{billline.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billline.ProductTable,
			Columns: []string{billline.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BillLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
