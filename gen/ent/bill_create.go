// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/vendor"
	"github.com/google/uuid"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetVendorID sets the "vendor_id" field.
func (_c *BillCreate) SetVendorID(v uuid.UUID) *BillCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_c *BillCreate) SetNillableVendorID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetVendorID(*v)
	}
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *BillCreate) SetVendorName(v string) *BillCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *BillCreate) SetNillableVendorName(v *string) *BillCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetInvoiceNo sets the "invoice_no" field.
func (_c *BillCreate) SetInvoiceNo(v string) *BillCreate {
	_c.mutation.SetInvoiceNo(v)
	return _c
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_c *BillCreate) SetNillableInvoiceNo(v *string) *BillCreate {
	if v != nil {
		_c.SetInvoiceNo(*v)
	}
	return _c
}

// SetBillDate sets the "bill_date" field.
func (_c *BillCreate) SetBillDate(v time.Time) *BillCreate {
	_c.mutation.SetBillDate(v)
	return _c
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableBillDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetBillDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BillCreate) SetStatus(v bill.Status) *BillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BillCreate) SetNillableStatus(v *bill.Status) *BillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *BillCreate) SetSourcePath(v string) *BillCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_c *BillCreate) SetNillableSourcePath(v *string) *BillCreate {
	if v != nil {
		_c.SetSourcePath(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *BillCreate) SetFormat(v bill.Format) *BillCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *BillCreate) SetMethod(v string) *BillCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *BillCreate) SetNillableMethod(v *string) *BillCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *BillCreate) SetSubtotal(v float64) *BillCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *BillCreate) SetNillableSubtotal(v *float64) *BillCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTax sets the "tax" field.
func (_c *BillCreate) SetTax(v float64) *BillCreate {
	_c.mutation.SetTax(v)
	return _c
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_c *BillCreate) SetNillableTax(v *float64) *BillCreate {
	if v != nil {
		_c.SetTax(*v)
	}
	return _c
}

// SetGrandTotal sets the "grand_total" field.
func (_c *BillCreate) SetGrandTotal(v float64) *BillCreate {
	_c.mutation.SetGrandTotal(v)
	return _c
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_c *BillCreate) SetNillableGrandTotal(v *float64) *BillCreate {
	if v != nil {
		_c.SetGrandTotal(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BillCreate) SetConfidence(v float64) *BillCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BillCreate) SetNillableConfidence(v *float64) *BillCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *BillCreate) SetNeedsReview(v bool) *BillCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *BillCreate) SetNillableNeedsReview(v *bool) *BillCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewReasons sets the "review_reasons" field.
func (_c *BillCreate) SetReviewReasons(v []string) *BillCreate {
	_c.mutation.SetReviewReasons(v)
	return _c
}

// SetExtraction sets the "extraction" field.
func (_c *BillCreate) SetExtraction(v map[string]interface{}) *BillCreate {
	_c.mutation.SetExtraction(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillCreate) SetUpdatedAt(v time.Time) *BillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableUpdatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *BillCreate) SetVendor(v *Vendor) *BillCreate {
	return _c.SetVendorID(v.ID)
}

// AddLineIDs adds the "lines" edge to the BillLine entity by IDs.
func (_c *BillCreate) AddLineIDs(ids ...uuid.UUID) *BillCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the BillLine entity.
func (_c *BillCreate) AddLines(v ...*BillLine) *BillCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := bill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := bill.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := bill.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Bill.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Bill.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := bill.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Bill.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Bill.confidence"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Bill.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bill.updated_at"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
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

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.InvoiceNo(); ok {
		_spec.SetField(bill.FieldInvoiceNo, field.TypeString, value)
		_node.InvoiceNo = value
	}
	if value, ok := _c.mutation.BillDate(); ok {
		_spec.SetField(bill.FieldBillDate, field.TypeTime, value)
		_node.BillDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(bill.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(bill.FieldFormat, field.TypeEnum, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(bill.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(bill.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.Tax(); ok {
		_spec.SetField(bill.FieldTax, field.TypeFloat64, value)
		_node.Tax = &value
	}
	if value, ok := _c.mutation.GrandTotal(); ok {
		_spec.SetField(bill.FieldGrandTotal, field.TypeFloat64, value)
		_node.GrandTotal = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(bill.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(bill.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewReasons(); ok {
		_spec.SetField(bill.FieldReviewReasons, field.TypeJSON, value)
		_node.ReviewReasons = value
	}
	if value, ok := _c.mutation.Extraction(); ok {
		_spec.SetField(bill.FieldExtraction, field.TypeJSON, value)
		_node.Extraction = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
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
		_node.VendorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
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
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
