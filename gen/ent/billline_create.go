// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/google/uuid"
)

// BillLineCreate is the builder for creating a BillLine entity.
type BillLineCreate struct {
	config
	mutation *BillLineMutation
	hooks    []Hook
}

// SetBillID sets the "bill_id" field.
func (_c *BillLineCreate) SetBillID(v uuid.UUID) *BillLineCreate {
	_c.mutation.SetBillID(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *BillLineCreate) SetProductID(v uuid.UUID) *BillLineCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableProductID(v *uuid.UUID) *BillLineCreate {
	if v != nil {
		_c.SetProductID(*v)
	}
	return _c
}

// SetLineNo sets the "line_no" field.
func (_c *BillLineCreate) SetLineNo(v int) *BillLineCreate {
	_c.mutation.SetLineNo(v)
	return _c
}

// SetHsn sets the "hsn" field.
func (_c *BillLineCreate) SetHsn(v string) *BillLineCreate {
	_c.mutation.SetHsn(v)
	return _c
}

// SetNillableHsn sets the "hsn" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableHsn(v *string) *BillLineCreate {
	if v != nil {
		_c.SetHsn(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BillLineCreate) SetDescription(v string) *BillLineCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetUom sets the "uom" field.
func (_c *BillLineCreate) SetUom(v string) *BillLineCreate {
	_c.mutation.SetUom(v)
	return _c
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableUom(v *string) *BillLineCreate {
	if v != nil {
		_c.SetUom(*v)
	}
	return _c
}

// SetQty sets the "qty" field.
func (_c *BillLineCreate) SetQty(v float64) *BillLineCreate {
	_c.mutation.SetQty(v)
	return _c
}

// SetRate sets the "rate" field.
func (_c *BillLineCreate) SetRate(v float64) *BillLineCreate {
	_c.mutation.SetRate(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillLineCreate) SetAmount(v float64) *BillLineCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BillLineCreate) SetConfidence(v float64) *BillLineCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableConfidence(v *float64) *BillLineCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetInconsistent sets the "inconsistent" field.
func (_c *BillLineCreate) SetInconsistent(v bool) *BillLineCreate {
	_c.mutation.SetInconsistent(v)
	return _c
}

// SetNillableInconsistent sets the "inconsistent" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableInconsistent(v *bool) *BillLineCreate {
	if v != nil {
		_c.SetInconsistent(*v)
	}
	return _c
}

// SetMatchedSku sets the "matched_sku" field.
func (_c *BillLineCreate) SetMatchedSku(v string) *BillLineCreate {
	_c.mutation.SetMatchedSku(v)
	return _c
}

// SetNillableMatchedSku sets the "matched_sku" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableMatchedSku(v *string) *BillLineCreate {
	if v != nil {
		_c.SetMatchedSku(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillLineCreate) SetID(v uuid.UUID) *BillLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillLineCreate) SetNillableID(v *uuid.UUID) *BillLineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBill sets the "bill" edge to the Bill entity.
func (_c *BillLineCreate) SetBill(v *Bill) *BillLineCreate {
	return _c.SetBillID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *BillLineCreate) SetProduct(v *Product) *BillLineCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the BillLineMutation object of the builder.
func (_c *BillLineCreate) Mutation() *BillLineMutation {
	return _c.mutation
}

// Save creates the BillLine in the database.
func (_c *BillLineCreate) Save(ctx context.Context) (*BillLine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillLineCreate) SaveX(ctx context.Context) *BillLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillLineCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := billline.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Inconsistent(); !ok {
		v := billline.DefaultInconsistent
		_c.mutation.SetInconsistent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillLineCreate) check() error {
	if _, ok := _c.mutation.BillID(); !ok {
		return &ValidationError{Name: "bill_id", err: errors.New(`ent: missing required field "BillLine.bill_id"`)}
	}
	if _, ok := _c.mutation.LineNo(); !ok {
		return &ValidationError{Name: "line_no", err: errors.New(`ent: missing required field "BillLine.line_no"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "BillLine.description"`)}
	}
	if _, ok := _c.mutation.Qty(); !ok {
		return &ValidationError{Name: "qty", err: errors.New(`ent: missing required field "BillLine.qty"`)}
	}
	if _, ok := _c.mutation.Rate(); !ok {
		return &ValidationError{Name: "rate", err: errors.New(`ent: missing required field "BillLine.rate"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "BillLine.amount"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "BillLine.confidence"`)}
	}
	if _, ok := _c.mutation.Inconsistent(); !ok {
		return &ValidationError{Name: "inconsistent", err: errors.New(`ent: missing required field "BillLine.inconsistent"`)}
	}
	if len(_c.mutation.BillIDs()) == 0 {
		return &ValidationError{Name: "bill", err: errors.New(`ent: missing required edge "BillLine.bill"`)}
	}
	return nil
}

func (_c *BillLineCreate) sqlSave(ctx context.Context) (*BillLine, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillLineCreate) createSpec() (*BillLine, *sqlgraph.CreateSpec) {
	var (
		_node = &BillLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billline.Table, sqlgraph.NewFieldSpec(billline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LineNo(); ok {
		_spec.SetField(billline.FieldLineNo, field.TypeInt, value)
		_node.LineNo = value
	}
	if value, ok := _c.mutation.Hsn(); ok {
		_spec.SetField(billline.FieldHsn, field.TypeString, value)
		_node.Hsn = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(billline.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Uom(); ok {
		_spec.SetField(billline.FieldUom, field.TypeString, value)
		_node.Uom = value
	}
	if value, ok := _c.mutation.Qty(); ok {
		_spec.SetField(billline.FieldQty, field.TypeFloat64, value)
		_node.Qty = value
	}
	if value, ok := _c.mutation.Rate(); ok {
		_spec.SetField(billline.FieldRate, field.TypeFloat64, value)
		_node.Rate = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(billline.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(billline.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Inconsistent(); ok {
		_spec.SetField(billline.FieldInconsistent, field.TypeBool, value)
		_node.Inconsistent = value
	}
	if value, ok := _c.mutation.MatchedSku(); ok {
		_spec.SetField(billline.FieldMatchedSku, field.TypeString, value)
		_node.MatchedSku = value
	}
	if nodes := _c.mutation.BillIDs(); len(nodes) > 0 {
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
		_node.BillID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
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
		_node.ProductID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillLineCreateBulk is the builder for creating many BillLine entities in bulk.
type BillLineCreateBulk struct {
	config
	err      error
	builders []*BillLineCreate
}

// Save creates the BillLine entities in the database.
func (_c *BillLineCreateBulk) Save(ctx context.Context) ([]*BillLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillLineMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillLineCreateBulk) SaveX(ctx context.Context) []*BillLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
