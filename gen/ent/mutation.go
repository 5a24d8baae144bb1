// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/predicate"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/vendor"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBill     = "Bill"
	TypeBillLine = "BillLine"
	TypeProduct  = "Product"
	TypeVendor   = "Vendor"
)

// BillMutation represents an operation that mutates the Bill nodes in the graph.
type BillMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	vendor_name          *string
	invoice_no           *string
	bill_date            *time.Time
	status               *bill.Status
	source_path          *string
	format               *bill.Format
	method               *string
	subtotal             *float64
	addsubtotal          *float64
	tax                  *float64
	addtax               *float64
	grand_total          *float64
	addgrand_total       *float64
	confidence           *float64
	addconfidence        *float64
	needs_review         *bool
	review_reasons       *[]string
	appendreview_reasons []string
	extraction           *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	vendor               *uuid.UUID
	clearedvendor        bool
	lines                map[uuid.UUID]struct{}
	removedlines         map[uuid.UUID]struct{}
	clearedlines         bool
	done                 bool
	oldValue             func(context.Context) (*Bill, error)
	predicates           []predicate.Bill
}

var _ ent.Mutation = (*BillMutation)(nil)

// billOption allows management of the mutation configuration using functional options.
type billOption func(*BillMutation)

// newBillMutation creates new mutation for the Bill entity.
func newBillMutation(c config, op Op, opts ...billOption) *BillMutation {
	m := &BillMutation{
		config:        c,
		op:            op,
		typ:           TypeBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillID sets the ID field of the mutation.
func withBillID(id uuid.UUID) billOption {
	return func(m *BillMutation) {
		var (
			err   error
			once  sync.Once
			value *Bill
		)
		m.oldValue = func(ctx context.Context) (*Bill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBill sets the old Bill of the mutation.
func withBill(node *Bill) billOption {
	return func(m *BillMutation) {
		m.oldValue = func(context.Context) (*Bill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bill entities.
func (m *BillMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *BillMutation) SetVendorID(u uuid.UUID) {
	m.vendor = &u
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *BillMutation) VendorID() (r uuid.UUID, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldVendorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ClearVendorID clears the value of the "vendor_id" field.
func (m *BillMutation) ClearVendorID() {
	m.vendor = nil
	m.clearedFields[bill.FieldVendorID] = struct{}{}
}

// VendorIDCleared returns if the "vendor_id" field was cleared in this mutation.
func (m *BillMutation) VendorIDCleared() bool {
	_, ok := m.clearedFields[bill.FieldVendorID]
	return ok
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *BillMutation) ResetVendorID() {
	m.vendor = nil
	delete(m.clearedFields, bill.FieldVendorID)
}

// SetVendorName sets the "vendor_name" field.
func (m *BillMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *BillMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldVendorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *BillMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[bill.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *BillMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[bill.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *BillMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, bill.FieldVendorName)
}

// SetInvoiceNo sets the "invoice_no" field.
func (m *BillMutation) SetInvoiceNo(s string) {
	m.invoice_no = &s
}

// InvoiceNo returns the value of the "invoice_no" field in the mutation.
func (m *BillMutation) InvoiceNo() (r string, exists bool) {
	v := m.invoice_no
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNo returns the old "invoice_no" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldInvoiceNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNo: %w", err)
	}
	return oldValue.InvoiceNo, nil
}

// ClearInvoiceNo clears the value of the "invoice_no" field.
func (m *BillMutation) ClearInvoiceNo() {
	m.invoice_no = nil
	m.clearedFields[bill.FieldInvoiceNo] = struct{}{}
}

// InvoiceNoCleared returns if the "invoice_no" field was cleared in this mutation.
func (m *BillMutation) InvoiceNoCleared() bool {
	_, ok := m.clearedFields[bill.FieldInvoiceNo]
	return ok
}

// ResetInvoiceNo resets all changes to the "invoice_no" field.
func (m *BillMutation) ResetInvoiceNo() {
	m.invoice_no = nil
	delete(m.clearedFields, bill.FieldInvoiceNo)
}

// SetBillDate sets the "bill_date" field.
func (m *BillMutation) SetBillDate(t time.Time) {
	m.bill_date = &t
}

// BillDate returns the value of the "bill_date" field in the mutation.
func (m *BillMutation) BillDate() (r time.Time, exists bool) {
	v := m.bill_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBillDate returns the old "bill_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldBillDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillDate: %w", err)
	}
	return oldValue.BillDate, nil
}

// ClearBillDate clears the value of the "bill_date" field.
func (m *BillMutation) ClearBillDate() {
	m.bill_date = nil
	m.clearedFields[bill.FieldBillDate] = struct{}{}
}

// BillDateCleared returns if the "bill_date" field was cleared in this mutation.
func (m *BillMutation) BillDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldBillDate]
	return ok
}

// ResetBillDate resets all changes to the "bill_date" field.
func (m *BillMutation) ResetBillDate() {
	m.bill_date = nil
	delete(m.clearedFields, bill.FieldBillDate)
}

// SetStatus sets the "status" field.
func (m *BillMutation) SetStatus(b bill.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BillMutation) Status() (r bill.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldStatus(ctx context.Context) (v bill.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BillMutation) ResetStatus() {
	m.status = nil
}

// SetSourcePath sets the "source_path" field.
func (m *BillMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *BillMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ClearSourcePath clears the value of the "source_path" field.
func (m *BillMutation) ClearSourcePath() {
	m.source_path = nil
	m.clearedFields[bill.FieldSourcePath] = struct{}{}
}

// SourcePathCleared returns if the "source_path" field was cleared in this mutation.
func (m *BillMutation) SourcePathCleared() bool {
	_, ok := m.clearedFields[bill.FieldSourcePath]
	return ok
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *BillMutation) ResetSourcePath() {
	m.source_path = nil
	delete(m.clearedFields, bill.FieldSourcePath)
}

// SetFormat sets the "format" field.
func (m *BillMutation) SetFormat(b bill.Format) {
	m.format = &b
}

// Format returns the value of the "format" field in the mutation.
func (m *BillMutation) Format() (r bill.Format, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldFormat(ctx context.Context) (v bill.Format, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *BillMutation) ResetFormat() {
	m.format = nil
}

// SetMethod sets the "method" field.
func (m *BillMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *BillMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *BillMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[bill.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *BillMutation) MethodCleared() bool {
	_, ok := m.clearedFields[bill.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *BillMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, bill.FieldMethod)
}

// SetSubtotal sets the "subtotal" field.
func (m *BillMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *BillMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldSubtotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *BillMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *BillMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *BillMutation) ClearSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	m.clearedFields[bill.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *BillMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[bill.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *BillMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	delete(m.clearedFields, bill.FieldSubtotal)
}

// SetTax sets the "tax" field.
func (m *BillMutation) SetTax(f float64) {
	m.tax = &f
	m.addtax = nil
}

// Tax returns the value of the "tax" field in the mutation.
func (m *BillMutation) Tax() (r float64, exists bool) {
	v := m.tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTax returns the old "tax" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldTax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTax: %w", err)
	}
	return oldValue.Tax, nil
}

// AddTax adds f to the "tax" field.
func (m *BillMutation) AddTax(f float64) {
	if m.addtax != nil {
		*m.addtax += f
	} else {
		m.addtax = &f
	}
}

// AddedTax returns the value that was added to the "tax" field in this mutation.
func (m *BillMutation) AddedTax() (r float64, exists bool) {
	v := m.addtax
	if v == nil {
		return
	}
	return *v, true
}

// ClearTax clears the value of the "tax" field.
func (m *BillMutation) ClearTax() {
	m.tax = nil
	m.addtax = nil
	m.clearedFields[bill.FieldTax] = struct{}{}
}

// TaxCleared returns if the "tax" field was cleared in this mutation.
func (m *BillMutation) TaxCleared() bool {
	_, ok := m.clearedFields[bill.FieldTax]
	return ok
}

// ResetTax resets all changes to the "tax" field.
func (m *BillMutation) ResetTax() {
	m.tax = nil
	m.addtax = nil
	delete(m.clearedFields, bill.FieldTax)
}

// SetGrandTotal sets the "grand_total" field.
func (m *BillMutation) SetGrandTotal(f float64) {
	m.grand_total = &f
	m.addgrand_total = nil
}

// GrandTotal returns the value of the "grand_total" field in the mutation.
func (m *BillMutation) GrandTotal() (r float64, exists bool) {
	v := m.grand_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGrandTotal returns the old "grand_total" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldGrandTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrandTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrandTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrandTotal: %w", err)
	}
	return oldValue.GrandTotal, nil
}

// AddGrandTotal adds f to the "grand_total" field.
func (m *BillMutation) AddGrandTotal(f float64) {
	if m.addgrand_total != nil {
		*m.addgrand_total += f
	} else {
		m.addgrand_total = &f
	}
}

// AddedGrandTotal returns the value that was added to the "grand_total" field in this mutation.
func (m *BillMutation) AddedGrandTotal() (r float64, exists bool) {
	v := m.addgrand_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrandTotal clears the value of the "grand_total" field.
func (m *BillMutation) ClearGrandTotal() {
	m.grand_total = nil
	m.addgrand_total = nil
	m.clearedFields[bill.FieldGrandTotal] = struct{}{}
}

// GrandTotalCleared returns if the "grand_total" field was cleared in this mutation.
func (m *BillMutation) GrandTotalCleared() bool {
	_, ok := m.clearedFields[bill.FieldGrandTotal]
	return ok
}

// ResetGrandTotal resets all changes to the "grand_total" field.
func (m *BillMutation) ResetGrandTotal() {
	m.grand_total = nil
	m.addgrand_total = nil
	delete(m.clearedFields, bill.FieldGrandTotal)
}

// SetConfidence sets the "confidence" field.
func (m *BillMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BillMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BillMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BillMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BillMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *BillMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *BillMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *BillMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetReviewReasons sets the "review_reasons" field.
func (m *BillMutation) SetReviewReasons(s []string) {
	m.review_reasons = &s
	m.appendreview_reasons = nil
}

// ReviewReasons returns the value of the "review_reasons" field in the mutation.
func (m *BillMutation) ReviewReasons() (r []string, exists bool) {
	v := m.review_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewReasons returns the old "review_reasons" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldReviewReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewReasons: %w", err)
	}
	return oldValue.ReviewReasons, nil
}

// AppendReviewReasons adds s to the "review_reasons" field.
func (m *BillMutation) AppendReviewReasons(s []string) {
	m.appendreview_reasons = append(m.appendreview_reasons, s...)
}

// AppendedReviewReasons returns the list of values that were appended to the "review_reasons" field in this mutation.
func (m *BillMutation) AppendedReviewReasons() ([]string, bool) {
	if len(m.appendreview_reasons) == 0 {
		return nil, false
	}
	return m.appendreview_reasons, true
}

// ClearReviewReasons clears the value of the "review_reasons" field.
func (m *BillMutation) ClearReviewReasons() {
	m.review_reasons = nil
	m.appendreview_reasons = nil
	m.clearedFields[bill.FieldReviewReasons] = struct{}{}
}

// ReviewReasonsCleared returns if the "review_reasons" field was cleared in this mutation.
func (m *BillMutation) ReviewReasonsCleared() bool {
	_, ok := m.clearedFields[bill.FieldReviewReasons]
	return ok
}

// ResetReviewReasons resets all changes to the "review_reasons" field.
func (m *BillMutation) ResetReviewReasons() {
	m.review_reasons = nil
	m.appendreview_reasons = nil
	delete(m.clearedFields, bill.FieldReviewReasons)
}

// SetExtraction sets the "extraction" field.
func (m *BillMutation) SetExtraction(value map[string]interface{}) {
	m.extraction = &value
}

// Extraction returns the value of the "extraction" field in the mutation.
func (m *BillMutation) Extraction() (r map[string]interface{}, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraction returns the old "extraction" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldExtraction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraction: %w", err)
	}
	return oldValue.Extraction, nil
}

// ClearExtraction clears the value of the "extraction" field.
func (m *BillMutation) ClearExtraction() {
	m.extraction = nil
	m.clearedFields[bill.FieldExtraction] = struct{}{}
}

// ExtractionCleared returns if the "extraction" field was cleared in this mutation.
func (m *BillMutation) ExtractionCleared() bool {
	_, ok := m.clearedFields[bill.FieldExtraction]
	return ok
}

// ResetExtraction resets all changes to the "extraction" field.
func (m *BillMutation) ResetExtraction() {
	m.extraction = nil
	delete(m.clearedFields, bill.FieldExtraction)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BillMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BillMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BillMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *BillMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[bill.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *BillMutation) VendorCleared() bool {
	return m.VendorIDCleared() || m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *BillMutation) VendorIDs() (ids []uuid.UUID) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *BillMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// AddLineIDs adds the "lines" edge to the BillLine entity by ids.
func (m *BillMutation) AddLineIDs(ids ...uuid.UUID) {
	if m.lines == nil {
		m.lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the BillLine entity.
func (m *BillMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the BillLine entity was cleared.
func (m *BillMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the BillLine entity by IDs.
func (m *BillMutation) RemoveLineIDs(ids ...uuid.UUID) {
	if m.removedlines == nil {
		m.removedlines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the BillLine entity.
func (m *BillMutation) RemovedLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *BillMutation) LinesIDs() (ids []uuid.UUID) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *BillMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// Where appends a list predicates to the BillMutation builder.
func (m *BillMutation) Where(ps ...predicate.Bill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bill).
func (m *BillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.vendor != nil {
		fields = append(fields, bill.FieldVendorID)
	}
	if m.vendor_name != nil {
		fields = append(fields, bill.FieldVendorName)
	}
	if m.invoice_no != nil {
		fields = append(fields, bill.FieldInvoiceNo)
	}
	if m.bill_date != nil {
		fields = append(fields, bill.FieldBillDate)
	}
	if m.status != nil {
		fields = append(fields, bill.FieldStatus)
	}
	if m.source_path != nil {
		fields = append(fields, bill.FieldSourcePath)
	}
	if m.format != nil {
		fields = append(fields, bill.FieldFormat)
	}
	if m.method != nil {
		fields = append(fields, bill.FieldMethod)
	}
	if m.subtotal != nil {
		fields = append(fields, bill.FieldSubtotal)
	}
	if m.tax != nil {
		fields = append(fields, bill.FieldTax)
	}
	if m.grand_total != nil {
		fields = append(fields, bill.FieldGrandTotal)
	}
	if m.confidence != nil {
		fields = append(fields, bill.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, bill.FieldNeedsReview)
	}
	if m.review_reasons != nil {
		fields = append(fields, bill.FieldReviewReasons)
	}
	if m.extraction != nil {
		fields = append(fields, bill.FieldExtraction)
	}
	if m.created_at != nil {
		fields = append(fields, bill.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bill.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldVendorID:
		return m.VendorID()
	case bill.FieldVendorName:
		return m.VendorName()
	case bill.FieldInvoiceNo:
		return m.InvoiceNo()
	case bill.FieldBillDate:
		return m.BillDate()
	case bill.FieldStatus:
		return m.Status()
	case bill.FieldSourcePath:
		return m.SourcePath()
	case bill.FieldFormat:
		return m.Format()
	case bill.FieldMethod:
		return m.Method()
	case bill.FieldSubtotal:
		return m.Subtotal()
	case bill.FieldTax:
		return m.Tax()
	case bill.FieldGrandTotal:
		return m.GrandTotal()
	case bill.FieldConfidence:
		return m.Confidence()
	case bill.FieldNeedsReview:
		return m.NeedsReview()
	case bill.FieldReviewReasons:
		return m.ReviewReasons()
	case bill.FieldExtraction:
		return m.Extraction()
	case bill.FieldCreatedAt:
		return m.CreatedAt()
	case bill.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bill.FieldVendorID:
		return m.OldVendorID(ctx)
	case bill.FieldVendorName:
		return m.OldVendorName(ctx)
	case bill.FieldInvoiceNo:
		return m.OldInvoiceNo(ctx)
	case bill.FieldBillDate:
		return m.OldBillDate(ctx)
	case bill.FieldStatus:
		return m.OldStatus(ctx)
	case bill.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case bill.FieldFormat:
		return m.OldFormat(ctx)
	case bill.FieldMethod:
		return m.OldMethod(ctx)
	case bill.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case bill.FieldTax:
		return m.OldTax(ctx)
	case bill.FieldGrandTotal:
		return m.OldGrandTotal(ctx)
	case bill.FieldConfidence:
		return m.OldConfidence(ctx)
	case bill.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case bill.FieldReviewReasons:
		return m.OldReviewReasons(ctx)
	case bill.FieldExtraction:
		return m.OldExtraction(ctx)
	case bill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bill.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bill.FieldVendorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case bill.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case bill.FieldInvoiceNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNo(v)
		return nil
	case bill.FieldBillDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillDate(v)
		return nil
	case bill.FieldStatus:
		v, ok := value.(bill.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bill.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case bill.FieldFormat:
		v, ok := value.(bill.Format)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case bill.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case bill.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case bill.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTax(v)
		return nil
	case bill.FieldGrandTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrandTotal(v)
		return nil
	case bill.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case bill.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case bill.FieldReviewReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewReasons(v)
		return nil
	case bill.FieldExtraction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraction(v)
		return nil
	case bill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bill.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, bill.FieldSubtotal)
	}
	if m.addtax != nil {
		fields = append(fields, bill.FieldTax)
	}
	if m.addgrand_total != nil {
		fields = append(fields, bill.FieldGrandTotal)
	}
	if m.addconfidence != nil {
		fields = append(fields, bill.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldSubtotal:
		return m.AddedSubtotal()
	case bill.FieldTax:
		return m.AddedTax()
	case bill.FieldGrandTotal:
		return m.AddedGrandTotal()
	case bill.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bill.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case bill.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTax(v)
		return nil
	case bill.FieldGrandTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrandTotal(v)
		return nil
	case bill.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Bill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bill.FieldVendorID) {
		fields = append(fields, bill.FieldVendorID)
	}
	if m.FieldCleared(bill.FieldVendorName) {
		fields = append(fields, bill.FieldVendorName)
	}
	if m.FieldCleared(bill.FieldInvoiceNo) {
		fields = append(fields, bill.FieldInvoiceNo)
	}
	if m.FieldCleared(bill.FieldBillDate) {
		fields = append(fields, bill.FieldBillDate)
	}
	if m.FieldCleared(bill.FieldSourcePath) {
		fields = append(fields, bill.FieldSourcePath)
	}
	if m.FieldCleared(bill.FieldMethod) {
		fields = append(fields, bill.FieldMethod)
	}
	if m.FieldCleared(bill.FieldSubtotal) {
		fields = append(fields, bill.FieldSubtotal)
	}
	if m.FieldCleared(bill.FieldTax) {
		fields = append(fields, bill.FieldTax)
	}
	if m.FieldCleared(bill.FieldGrandTotal) {
		fields = append(fields, bill.FieldGrandTotal)
	}
	if m.FieldCleared(bill.FieldReviewReasons) {
		fields = append(fields, bill.FieldReviewReasons)
	}
	if m.FieldCleared(bill.FieldExtraction) {
		fields = append(fields, bill.FieldExtraction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillMutation) ClearField(name string) error {
	switch name {
	case bill.FieldVendorID:
		m.ClearVendorID()
		return nil
	case bill.FieldVendorName:
		m.ClearVendorName()
		return nil
	case bill.FieldInvoiceNo:
		m.ClearInvoiceNo()
		return nil
	case bill.FieldBillDate:
		m.ClearBillDate()
		return nil
	case bill.FieldSourcePath:
		m.ClearSourcePath()
		return nil
	case bill.FieldMethod:
		m.ClearMethod()
		return nil
	case bill.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case bill.FieldTax:
		m.ClearTax()
		return nil
	case bill.FieldGrandTotal:
		m.ClearGrandTotal()
		return nil
	case bill.FieldReviewReasons:
		m.ClearReviewReasons()
		return nil
	case bill.FieldExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown Bill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillMutation) ResetField(name string) error {
	switch name {
	case bill.FieldVendorID:
		m.ResetVendorID()
		return nil
	case bill.FieldVendorName:
		m.ResetVendorName()
		return nil
	case bill.FieldInvoiceNo:
		m.ResetInvoiceNo()
		return nil
	case bill.FieldBillDate:
		m.ResetBillDate()
		return nil
	case bill.FieldStatus:
		m.ResetStatus()
		return nil
	case bill.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case bill.FieldFormat:
		m.ResetFormat()
		return nil
	case bill.FieldMethod:
		m.ResetMethod()
		return nil
	case bill.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case bill.FieldTax:
		m.ResetTax()
		return nil
	case bill.FieldGrandTotal:
		m.ResetGrandTotal()
		return nil
	case bill.FieldConfidence:
		m.ResetConfidence()
		return nil
	case bill.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case bill.FieldReviewReasons:
		m.ResetReviewReasons()
		return nil
	case bill.FieldExtraction:
		m.ResetExtraction()
		return nil
	case bill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bill.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.vendor != nil {
		edges = append(edges, bill.EdgeVendor)
	}
	if m.lines != nil {
		edges = append(edges, bill.EdgeLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bill.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	case bill.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlines != nil {
		edges = append(edges, bill.EdgeLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bill.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvendor {
		edges = append(edges, bill.EdgeVendor)
	}
	if m.clearedlines {
		edges = append(edges, bill.EdgeLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillMutation) EdgeCleared(name string) bool {
	switch name {
	case bill.EdgeVendor:
		return m.clearedvendor
	case bill.EdgeLines:
		return m.clearedlines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillMutation) ClearEdge(name string) error {
	switch name {
	case bill.EdgeVendor:
		m.ClearVendor()
		return nil
	}
	return fmt.Errorf("unknown Bill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillMutation) ResetEdge(name string) error {
	switch name {
	case bill.EdgeVendor:
		m.ResetVendor()
		return nil
	case bill.EdgeLines:
		m.ResetLines()
		return nil
	}
	return fmt.Errorf("unknown Bill edge %s", name)
}

// BillLineMutation represents an operation that mutates the BillLine nodes in the graph.
type BillLineMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	line_no        *int
	addline_no     *int
	hsn            *string
	description    *string
	uom            *string
	qty            *float64
	addqty         *float64
	rate           *float64
	addrate        *float64
	amount         *float64
	addamount      *float64
	confidence     *float64
	addconfidence  *float64
	inconsistent   *bool
	matched_sku    *string
	clearedFields  map[string]struct{}
	bill           *uuid.UUID
	clearedbill    bool
	product        *uuid.UUID
	clearedproduct bool
	done           bool
	oldValue       func(context.Context) (*BillLine, error)
	predicates     []predicate.BillLine
}

var _ ent.Mutation = (*BillLineMutation)(nil)

// billlineOption allows management of the mutation configuration using functional options.
type billlineOption func(*BillLineMutation)

// newBillLineMutation creates new mutation for the BillLine entity.
func newBillLineMutation(c config, op Op, opts ...billlineOption) *BillLineMutation {
	m := &BillLineMutation{
		config:        c,
		op:            op,
		typ:           TypeBillLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillLineID sets the ID field of the mutation.
func withBillLineID(id uuid.UUID) billlineOption {
	return func(m *BillLineMutation) {
		var (
			err   error
			once  sync.Once
			value *BillLine
		)
		m.oldValue = func(ctx context.Context) (*BillLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillLine sets the old BillLine of the mutation.
func withBillLine(node *BillLine) billlineOption {
	return func(m *BillLineMutation) {
		m.oldValue = func(context.Context) (*BillLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BillLine entities.
func (m *BillLineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillLineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillLineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBillID sets the "bill_id" field.
func (m *BillLineMutation) SetBillID(u uuid.UUID) {
	m.bill = &u
}

// BillID returns the value of the "bill_id" field in the mutation.
func (m *BillLineMutation) BillID() (r uuid.UUID, exists bool) {
	v := m.bill
	if v == nil {
		return
	}
	return *v, true
}

// OldBillID returns the old "bill_id" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldBillID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillID: %w", err)
	}
	return oldValue.BillID, nil
}

// ResetBillID resets all changes to the "bill_id" field.
func (m *BillLineMutation) ResetBillID() {
	m.bill = nil
}

// SetProductID sets the "product_id" field.
func (m *BillLineMutation) SetProductID(u uuid.UUID) {
	m.product = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *BillLineMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldProductID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ClearProductID clears the value of the "product_id" field.
func (m *BillLineMutation) ClearProductID() {
	m.product = nil
	m.clearedFields[billline.FieldProductID] = struct{}{}
}

// ProductIDCleared returns if the "product_id" field was cleared in this mutation.
func (m *BillLineMutation) ProductIDCleared() bool {
	_, ok := m.clearedFields[billline.FieldProductID]
	return ok
}

// ResetProductID resets all changes to the "product_id" field.
func (m *BillLineMutation) ResetProductID() {
	m.product = nil
	delete(m.clearedFields, billline.FieldProductID)
}

// SetLineNo sets the "line_no" field.
func (m *BillLineMutation) SetLineNo(i int) {
	m.line_no = &i
	m.addline_no = nil
}

// LineNo returns the value of the "line_no" field in the mutation.
func (m *BillLineMutation) LineNo() (r int, exists bool) {
	v := m.line_no
	if v == nil {
		return
	}
	return *v, true
}

// OldLineNo returns the old "line_no" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldLineNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineNo: %w", err)
	}
	return oldValue.LineNo, nil
}

// AddLineNo adds i to the "line_no" field.
func (m *BillLineMutation) AddLineNo(i int) {
	if m.addline_no != nil {
		*m.addline_no += i
	} else {
		m.addline_no = &i
	}
}

// AddedLineNo returns the value that was added to the "line_no" field in this mutation.
func (m *BillLineMutation) AddedLineNo() (r int, exists bool) {
	v := m.addline_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineNo resets all changes to the "line_no" field.
func (m *BillLineMutation) ResetLineNo() {
	m.line_no = nil
	m.addline_no = nil
}

// SetHsn sets the "hsn" field.
func (m *BillLineMutation) SetHsn(s string) {
	m.hsn = &s
}

// Hsn returns the value of the "hsn" field in the mutation.
func (m *BillLineMutation) Hsn() (r string, exists bool) {
	v := m.hsn
	if v == nil {
		return
	}
	return *v, true
}

// OldHsn returns the old "hsn" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldHsn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHsn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHsn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHsn: %w", err)
	}
	return oldValue.Hsn, nil
}

// ClearHsn clears the value of the "hsn" field.
func (m *BillLineMutation) ClearHsn() {
	m.hsn = nil
	m.clearedFields[billline.FieldHsn] = struct{}{}
}

// HsnCleared returns if the "hsn" field was cleared in this mutation.
func (m *BillLineMutation) HsnCleared() bool {
	_, ok := m.clearedFields[billline.FieldHsn]
	return ok
}

// ResetHsn resets all changes to the "hsn" field.
func (m *BillLineMutation) ResetHsn() {
	m.hsn = nil
	delete(m.clearedFields, billline.FieldHsn)
}

// SetDescription sets the "description" field.
func (m *BillLineMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BillLineMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *BillLineMutation) ResetDescription() {
	m.description = nil
}

// SetUom sets the "uom" field.
func (m *BillLineMutation) SetUom(s string) {
	m.uom = &s
}

// Uom returns the value of the "uom" field in the mutation.
func (m *BillLineMutation) Uom() (r string, exists bool) {
	v := m.uom
	if v == nil {
		return
	}
	return *v, true
}

// OldUom returns the old "uom" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldUom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUom: %w", err)
	}
	return oldValue.Uom, nil
}

// ClearUom clears the value of the "uom" field.
func (m *BillLineMutation) ClearUom() {
	m.uom = nil
	m.clearedFields[billline.FieldUom] = struct{}{}
}

// UomCleared returns if the "uom" field was cleared in this mutation.
func (m *BillLineMutation) UomCleared() bool {
	_, ok := m.clearedFields[billline.FieldUom]
	return ok
}

// ResetUom resets all changes to the "uom" field.
func (m *BillLineMutation) ResetUom() {
	m.uom = nil
	delete(m.clearedFields, billline.FieldUom)
}

// SetQty sets the "qty" field.
func (m *BillLineMutation) SetQty(f float64) {
	m.qty = &f
	m.addqty = nil
}

// Qty returns the value of the "qty" field in the mutation.
func (m *BillLineMutation) Qty() (r float64, exists bool) {
	v := m.qty
	if v == nil {
		return
	}
	return *v, true
}

// OldQty returns the old "qty" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldQty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQty: %w", err)
	}
	return oldValue.Qty, nil
}

// AddQty adds f to the "qty" field.
func (m *BillLineMutation) AddQty(f float64) {
	if m.addqty != nil {
		*m.addqty += f
	} else {
		m.addqty = &f
	}
}

// AddedQty returns the value that was added to the "qty" field in this mutation.
func (m *BillLineMutation) AddedQty() (r float64, exists bool) {
	v := m.addqty
	if v == nil {
		return
	}
	return *v, true
}

// ResetQty resets all changes to the "qty" field.
func (m *BillLineMutation) ResetQty() {
	m.qty = nil
	m.addqty = nil
}

// SetRate sets the "rate" field.
func (m *BillLineMutation) SetRate(f float64) {
	m.rate = &f
	m.addrate = nil
}

// Rate returns the value of the "rate" field in the mutation.
func (m *BillLineMutation) Rate() (r float64, exists bool) {
	v := m.rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRate returns the old "rate" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRate: %w", err)
	}
	return oldValue.Rate, nil
}

// AddRate adds f to the "rate" field.
func (m *BillLineMutation) AddRate(f float64) {
	if m.addrate != nil {
		*m.addrate += f
	} else {
		m.addrate = &f
	}
}

// AddedRate returns the value that was added to the "rate" field in this mutation.
func (m *BillLineMutation) AddedRate() (r float64, exists bool) {
	v := m.addrate
	if v == nil {
		return
	}
	return *v, true
}

// ResetRate resets all changes to the "rate" field.
func (m *BillLineMutation) ResetRate() {
	m.rate = nil
	m.addrate = nil
}

// SetAmount sets the "amount" field.
func (m *BillLineMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BillLineMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *BillLineMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BillLineMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BillLineMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetConfidence sets the "confidence" field.
func (m *BillLineMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BillLineMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BillLineMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BillLineMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BillLineMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetInconsistent sets the "inconsistent" field.
func (m *BillLineMutation) SetInconsistent(b bool) {
	m.inconsistent = &b
}

// Inconsistent returns the value of the "inconsistent" field in the mutation.
func (m *BillLineMutation) Inconsistent() (r bool, exists bool) {
	v := m.inconsistent
	if v == nil {
		return
	}
	return *v, true
}

// OldInconsistent returns the old "inconsistent" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldInconsistent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInconsistent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInconsistent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInconsistent: %w", err)
	}
	return oldValue.Inconsistent, nil
}

// ResetInconsistent resets all changes to the "inconsistent" field.
func (m *BillLineMutation) ResetInconsistent() {
	m.inconsistent = nil
}

// SetMatchedSku sets the "matched_sku" field.
func (m *BillLineMutation) SetMatchedSku(s string) {
	m.matched_sku = &s
}

// MatchedSku returns the value of the "matched_sku" field in the mutation.
func (m *BillLineMutation) MatchedSku() (r string, exists bool) {
	v := m.matched_sku
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedSku returns the old "matched_sku" field's value of the BillLine entity.
// If the BillLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillLineMutation) OldMatchedSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedSku: %w", err)
	}
	return oldValue.MatchedSku, nil
}

// ClearMatchedSku clears the value of the "matched_sku" field.
func (m *BillLineMutation) ClearMatchedSku() {
	m.matched_sku = nil
	m.clearedFields[billline.FieldMatchedSku] = struct{}{}
}

// MatchedSkuCleared returns if the "matched_sku" field was cleared in this mutation.
func (m *BillLineMutation) MatchedSkuCleared() bool {
	_, ok := m.clearedFields[billline.FieldMatchedSku]
	return ok
}

// ResetMatchedSku resets all changes to the "matched_sku" field.
func (m *BillLineMutation) ResetMatchedSku() {
	m.matched_sku = nil
	delete(m.clearedFields, billline.FieldMatchedSku)
}

// ClearBill clears the "bill" edge to the Bill entity.
func (m *BillLineMutation) ClearBill() {
	m.clearedbill = true
	m.clearedFields[billline.FieldBillID] = struct{}{}
}

// BillCleared reports if the "bill" edge to the Bill entity was cleared.
func (m *BillLineMutation) BillCleared() bool {
	return m.clearedbill
}

// BillIDs returns the "bill" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BillID instead. It exists only for internal usage by the builders.
func (m *BillLineMutation) BillIDs() (ids []uuid.UUID) {
	if id := m.bill; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBill resets all changes to the "bill" edge.
func (m *BillLineMutation) ResetBill() {
	m.bill = nil
	m.clearedbill = false
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *BillLineMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[billline.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *BillLineMutation) ProductCleared() bool {
	return m.ProductIDCleared() || m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *BillLineMutation) ProductIDs() (ids []uuid.UUID) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *BillLineMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the BillLineMutation builder.
func (m *BillLineMutation) Where(ps ...predicate.BillLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillLine).
func (m *BillLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillLineMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.bill != nil {
		fields = append(fields, billline.FieldBillID)
	}
	if m.product != nil {
		fields = append(fields, billline.FieldProductID)
	}
	if m.line_no != nil {
		fields = append(fields, billline.FieldLineNo)
	}
	if m.hsn != nil {
		fields = append(fields, billline.FieldHsn)
	}
	if m.description != nil {
		fields = append(fields, billline.FieldDescription)
	}
	if m.uom != nil {
		fields = append(fields, billline.FieldUom)
	}
	if m.qty != nil {
		fields = append(fields, billline.FieldQty)
	}
	if m.rate != nil {
		fields = append(fields, billline.FieldRate)
	}
	if m.amount != nil {
		fields = append(fields, billline.FieldAmount)
	}
	if m.confidence != nil {
		fields = append(fields, billline.FieldConfidence)
	}
	if m.inconsistent != nil {
		fields = append(fields, billline.FieldInconsistent)
	}
	if m.matched_sku != nil {
		fields = append(fields, billline.FieldMatchedSku)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billline.FieldBillID:
		return m.BillID()
	case billline.FieldProductID:
		return m.ProductID()
	case billline.FieldLineNo:
		return m.LineNo()
	case billline.FieldHsn:
		return m.Hsn()
	case billline.FieldDescription:
		return m.Description()
	case billline.FieldUom:
		return m.Uom()
	case billline.FieldQty:
		return m.Qty()
	case billline.FieldRate:
		return m.Rate()
	case billline.FieldAmount:
		return m.Amount()
	case billline.FieldConfidence:
		return m.Confidence()
	case billline.FieldInconsistent:
		return m.Inconsistent()
	case billline.FieldMatchedSku:
		return m.MatchedSku()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billline.FieldBillID:
		return m.OldBillID(ctx)
	case billline.FieldProductID:
		return m.OldProductID(ctx)
	case billline.FieldLineNo:
		return m.OldLineNo(ctx)
	case billline.FieldHsn:
		return m.OldHsn(ctx)
	case billline.FieldDescription:
		return m.OldDescription(ctx)
	case billline.FieldUom:
		return m.OldUom(ctx)
	case billline.FieldQty:
		return m.OldQty(ctx)
	case billline.FieldRate:
		return m.OldRate(ctx)
	case billline.FieldAmount:
		return m.OldAmount(ctx)
	case billline.FieldConfidence:
		return m.OldConfidence(ctx)
	case billline.FieldInconsistent:
		return m.OldInconsistent(ctx)
	case billline.FieldMatchedSku:
		return m.OldMatchedSku(ctx)
	}
	return nil, fmt.Errorf("unknown BillLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billline.FieldBillID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillID(v)
		return nil
	case billline.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case billline.FieldLineNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineNo(v)
		return nil
	case billline.FieldHsn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHsn(v)
		return nil
	case billline.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case billline.FieldUom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUom(v)
		return nil
	case billline.FieldQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQty(v)
		return nil
	case billline.FieldRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRate(v)
		return nil
	case billline.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case billline.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case billline.FieldInconsistent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInconsistent(v)
		return nil
	case billline.FieldMatchedSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedSku(v)
		return nil
	}
	return fmt.Errorf("unknown BillLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillLineMutation) AddedFields() []string {
	var fields []string
	if m.addline_no != nil {
		fields = append(fields, billline.FieldLineNo)
	}
	if m.addqty != nil {
		fields = append(fields, billline.FieldQty)
	}
	if m.addrate != nil {
		fields = append(fields, billline.FieldRate)
	}
	if m.addamount != nil {
		fields = append(fields, billline.FieldAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, billline.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billline.FieldLineNo:
		return m.AddedLineNo()
	case billline.FieldQty:
		return m.AddedQty()
	case billline.FieldRate:
		return m.AddedRate()
	case billline.FieldAmount:
		return m.AddedAmount()
	case billline.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billline.FieldLineNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineNo(v)
		return nil
	case billline.FieldQty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQty(v)
		return nil
	case billline.FieldRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRate(v)
		return nil
	case billline.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case billline.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BillLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billline.FieldProductID) {
		fields = append(fields, billline.FieldProductID)
	}
	if m.FieldCleared(billline.FieldHsn) {
		fields = append(fields, billline.FieldHsn)
	}
	if m.FieldCleared(billline.FieldUom) {
		fields = append(fields, billline.FieldUom)
	}
	if m.FieldCleared(billline.FieldMatchedSku) {
		fields = append(fields, billline.FieldMatchedSku)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillLineMutation) ClearField(name string) error {
	switch name {
	case billline.FieldProductID:
		m.ClearProductID()
		return nil
	case billline.FieldHsn:
		m.ClearHsn()
		return nil
	case billline.FieldUom:
		m.ClearUom()
		return nil
	case billline.FieldMatchedSku:
		m.ClearMatchedSku()
		return nil
	}
	return fmt.Errorf("unknown BillLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillLineMutation) ResetField(name string) error {
	switch name {
	case billline.FieldBillID:
		m.ResetBillID()
		return nil
	case billline.FieldProductID:
		m.ResetProductID()
		return nil
	case billline.FieldLineNo:
		m.ResetLineNo()
		return nil
	case billline.FieldHsn:
		m.ResetHsn()
		return nil
	case billline.FieldDescription:
		m.ResetDescription()
		return nil
	case billline.FieldUom:
		m.ResetUom()
		return nil
	case billline.FieldQty:
		m.ResetQty()
		return nil
	case billline.FieldRate:
		m.ResetRate()
		return nil
	case billline.FieldAmount:
		m.ResetAmount()
		return nil
	case billline.FieldConfidence:
		m.ResetConfidence()
		return nil
	case billline.FieldInconsistent:
		m.ResetInconsistent()
		return nil
	case billline.FieldMatchedSku:
		m.ResetMatchedSku()
		return nil
	}
	return fmt.Errorf("unknown BillLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bill != nil {
		edges = append(edges, billline.EdgeBill)
	}
	if m.product != nil {
		edges = append(edges, billline.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case billline.EdgeBill:
		if id := m.bill; id != nil {
			return []ent.Value{*id}
		}
	case billline.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbill {
		edges = append(edges, billline.EdgeBill)
	}
	if m.clearedproduct {
		edges = append(edges, billline.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillLineMutation) EdgeCleared(name string) bool {
	switch name {
	case billline.EdgeBill:
		return m.clearedbill
	case billline.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillLineMutation) ClearEdge(name string) error {
	switch name {
	case billline.EdgeBill:
		m.ClearBill()
		return nil
	case billline.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown BillLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillLineMutation) ResetEdge(name string) error {
	switch name {
	case billline.EdgeBill:
		m.ResetBill()
		return nil
	case billline.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown BillLine edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	sku               *string
	name              *string
	hsn               *string
	uom               *string
	stock             *float64
	addstock          *float64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	bill_lines        map[uuid.UUID]struct{}
	removedbill_lines map[uuid.UUID]struct{}
	clearedbill_lines bool
	done              bool
	oldValue          func(context.Context) (*Product, error)
	predicates        []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id uuid.UUID) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSku sets the "sku" field.
func (m *ProductMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *ProductMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ResetSku resets all changes to the "sku" field.
func (m *ProductMutation) ResetSku() {
	m.sku = nil
}

// SetName sets the "name" field.
func (m *ProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProductMutation) ResetName() {
	m.name = nil
}

// SetHsn sets the "hsn" field.
func (m *ProductMutation) SetHsn(s string) {
	m.hsn = &s
}

// Hsn returns the value of the "hsn" field in the mutation.
func (m *ProductMutation) Hsn() (r string, exists bool) {
	v := m.hsn
	if v == nil {
		return
	}
	return *v, true
}

// OldHsn returns the old "hsn" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldHsn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHsn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHsn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHsn: %w", err)
	}
	return oldValue.Hsn, nil
}

// ClearHsn clears the value of the "hsn" field.
func (m *ProductMutation) ClearHsn() {
	m.hsn = nil
	m.clearedFields[product.FieldHsn] = struct{}{}
}

// HsnCleared returns if the "hsn" field was cleared in this mutation.
func (m *ProductMutation) HsnCleared() bool {
	_, ok := m.clearedFields[product.FieldHsn]
	return ok
}

// ResetHsn resets all changes to the "hsn" field.
func (m *ProductMutation) ResetHsn() {
	m.hsn = nil
	delete(m.clearedFields, product.FieldHsn)
}

// SetUom sets the "uom" field.
func (m *ProductMutation) SetUom(s string) {
	m.uom = &s
}

// Uom returns the value of the "uom" field in the mutation.
func (m *ProductMutation) Uom() (r string, exists bool) {
	v := m.uom
	if v == nil {
		return
	}
	return *v, true
}

// OldUom returns the old "uom" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUom: %w", err)
	}
	return oldValue.Uom, nil
}

// ClearUom clears the value of the "uom" field.
func (m *ProductMutation) ClearUom() {
	m.uom = nil
	m.clearedFields[product.FieldUom] = struct{}{}
}

// UomCleared returns if the "uom" field was cleared in this mutation.
func (m *ProductMutation) UomCleared() bool {
	_, ok := m.clearedFields[product.FieldUom]
	return ok
}

// ResetUom resets all changes to the "uom" field.
func (m *ProductMutation) ResetUom() {
	m.uom = nil
	delete(m.clearedFields, product.FieldUom)
}

// SetStock sets the "stock" field.
func (m *ProductMutation) SetStock(f float64) {
	m.stock = &f
	m.addstock = nil
}

// Stock returns the value of the "stock" field in the mutation.
func (m *ProductMutation) Stock() (r float64, exists bool) {
	v := m.stock
	if v == nil {
		return
	}
	return *v, true
}

// OldStock returns the old "stock" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldStock(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStock: %w", err)
	}
	return oldValue.Stock, nil
}

// AddStock adds f to the "stock" field.
func (m *ProductMutation) AddStock(f float64) {
	if m.addstock != nil {
		*m.addstock += f
	} else {
		m.addstock = &f
	}
}

// AddedStock returns the value that was added to the "stock" field in this mutation.
func (m *ProductMutation) AddedStock() (r float64, exists bool) {
	v := m.addstock
	if v == nil {
		return
	}
	return *v, true
}

// ResetStock resets all changes to the "stock" field.
func (m *ProductMutation) ResetStock() {
	m.stock = nil
	m.addstock = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBillLineIDs adds the "bill_lines" edge to the BillLine entity by ids.
func (m *ProductMutation) AddBillLineIDs(ids ...uuid.UUID) {
	if m.bill_lines == nil {
		m.bill_lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bill_lines[ids[i]] = struct{}{}
	}
}

// ClearBillLines clears the "bill_lines" edge to the BillLine entity.
func (m *ProductMutation) ClearBillLines() {
	m.clearedbill_lines = true
}

// BillLinesCleared reports if the "bill_lines" edge to the BillLine entity was cleared.
func (m *ProductMutation) BillLinesCleared() bool {
	return m.clearedbill_lines
}

// RemoveBillLineIDs removes the "bill_lines" edge to the BillLine entity by IDs.
func (m *ProductMutation) RemoveBillLineIDs(ids ...uuid.UUID) {
	if m.removedbill_lines == nil {
		m.removedbill_lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bill_lines, ids[i])
		m.removedbill_lines[ids[i]] = struct{}{}
	}
}

// RemovedBillLines returns the removed IDs of the "bill_lines" edge to the BillLine entity.
func (m *ProductMutation) RemovedBillLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedbill_lines {
		ids = append(ids, id)
	}
	return
}

// BillLinesIDs returns the "bill_lines" edge IDs in the mutation.
func (m *ProductMutation) BillLinesIDs() (ids []uuid.UUID) {
	for id := range m.bill_lines {
		ids = append(ids, id)
	}
	return
}

// ResetBillLines resets all changes to the "bill_lines" edge.
func (m *ProductMutation) ResetBillLines() {
	m.bill_lines = nil
	m.clearedbill_lines = false
	m.removedbill_lines = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sku != nil {
		fields = append(fields, product.FieldSku)
	}
	if m.name != nil {
		fields = append(fields, product.FieldName)
	}
	if m.hsn != nil {
		fields = append(fields, product.FieldHsn)
	}
	if m.uom != nil {
		fields = append(fields, product.FieldUom)
	}
	if m.stock != nil {
		fields = append(fields, product.FieldStock)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldSku:
		return m.Sku()
	case product.FieldName:
		return m.Name()
	case product.FieldHsn:
		return m.Hsn()
	case product.FieldUom:
		return m.Uom()
	case product.FieldStock:
		return m.Stock()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldSku:
		return m.OldSku(ctx)
	case product.FieldName:
		return m.OldName(ctx)
	case product.FieldHsn:
		return m.OldHsn(ctx)
	case product.FieldUom:
		return m.OldUom(ctx)
	case product.FieldStock:
		return m.OldStock(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case product.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case product.FieldHsn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHsn(v)
		return nil
	case product.FieldUom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUom(v)
		return nil
	case product.FieldStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStock(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	var fields []string
	if m.addstock != nil {
		fields = append(fields, product.FieldStock)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case product.FieldStock:
		return m.AddedStock()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	case product.FieldStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStock(v)
		return nil
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldHsn) {
		fields = append(fields, product.FieldHsn)
	}
	if m.FieldCleared(product.FieldUom) {
		fields = append(fields, product.FieldUom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldHsn:
		m.ClearHsn()
		return nil
	case product.FieldUom:
		m.ClearUom()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldSku:
		m.ResetSku()
		return nil
	case product.FieldName:
		m.ResetName()
		return nil
	case product.FieldHsn:
		m.ResetHsn()
		return nil
	case product.FieldUom:
		m.ResetUom()
		return nil
	case product.FieldStock:
		m.ResetStock()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bill_lines != nil {
		edges = append(edges, product.EdgeBillLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeBillLines:
		ids := make([]ent.Value, 0, len(m.bill_lines))
		for id := range m.bill_lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbill_lines != nil {
		edges = append(edges, product.EdgeBillLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeBillLines:
		ids := make([]ent.Value, 0, len(m.removedbill_lines))
		for id := range m.removedbill_lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbill_lines {
		edges = append(edges, product.EdgeBillLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeBillLines:
		return m.clearedbill_lines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeBillLines:
		m.ResetBillLines()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// VendorMutation represents an operation that mutates the Vendor nodes in the graph.
type VendorMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	gstin         *string
	email         *string
	phone         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	bills         map[uuid.UUID]struct{}
	removedbills  map[uuid.UUID]struct{}
	clearedbills  bool
	done          bool
	oldValue      func(context.Context) (*Vendor, error)
	predicates    []predicate.Vendor
}

var _ ent.Mutation = (*VendorMutation)(nil)

// vendorOption allows management of the mutation configuration using functional options.
type vendorOption func(*VendorMutation)

// newVendorMutation creates new mutation for the Vendor entity.
func newVendorMutation(c config, op Op, opts ...vendorOption) *VendorMutation {
	m := &VendorMutation{
		config:        c,
		op:            op,
		typ:           TypeVendor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorID sets the ID field of the mutation.
func withVendorID(id uuid.UUID) vendorOption {
	return func(m *VendorMutation) {
		var (
			err   error
			once  sync.Once
			value *Vendor
		)
		m.oldValue = func(ctx context.Context) (*Vendor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vendor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendor sets the old Vendor of the mutation.
func withVendor(node *Vendor) vendorOption {
	return func(m *VendorMutation) {
		m.oldValue = func(context.Context) (*Vendor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vendor entities.
func (m *VendorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vendor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VendorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VendorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VendorMutation) ResetName() {
	m.name = nil
}

// SetGstin sets the "gstin" field.
func (m *VendorMutation) SetGstin(s string) {
	m.gstin = &s
}

// Gstin returns the value of the "gstin" field in the mutation.
func (m *VendorMutation) Gstin() (r string, exists bool) {
	v := m.gstin
	if v == nil {
		return
	}
	return *v, true
}

// OldGstin returns the old "gstin" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldGstin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstin: %w", err)
	}
	return oldValue.Gstin, nil
}

// ClearGstin clears the value of the "gstin" field.
func (m *VendorMutation) ClearGstin() {
	m.gstin = nil
	m.clearedFields[vendor.FieldGstin] = struct{}{}
}

// GstinCleared returns if the "gstin" field was cleared in this mutation.
func (m *VendorMutation) GstinCleared() bool {
	_, ok := m.clearedFields[vendor.FieldGstin]
	return ok
}

// ResetGstin resets all changes to the "gstin" field.
func (m *VendorMutation) ResetGstin() {
	m.gstin = nil
	delete(m.clearedFields, vendor.FieldGstin)
}

// SetEmail sets the "email" field.
func (m *VendorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *VendorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *VendorMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[vendor.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *VendorMutation) EmailCleared() bool {
	_, ok := m.clearedFields[vendor.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *VendorMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, vendor.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *VendorMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *VendorMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *VendorMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[vendor.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *VendorMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[vendor.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *VendorMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, vendor.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *VendorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VendorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VendorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VendorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VendorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VendorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBillIDs adds the "bills" edge to the Bill entity by ids.
func (m *VendorMutation) AddBillIDs(ids ...uuid.UUID) {
	if m.bills == nil {
		m.bills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bills[ids[i]] = struct{}{}
	}
}

// ClearBills clears the "bills" edge to the Bill entity.
func (m *VendorMutation) ClearBills() {
	m.clearedbills = true
}

// BillsCleared reports if the "bills" edge to the Bill entity was cleared.
func (m *VendorMutation) BillsCleared() bool {
	return m.clearedbills
}

// RemoveBillIDs removes the "bills" edge to the Bill entity by IDs.
func (m *VendorMutation) RemoveBillIDs(ids ...uuid.UUID) {
	if m.removedbills == nil {
		m.removedbills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bills, ids[i])
		m.removedbills[ids[i]] = struct{}{}
	}
}

// RemovedBills returns the removed IDs of the "bills" edge to the Bill entity.
func (m *VendorMutation) RemovedBillsIDs() (ids []uuid.UUID) {
	for id := range m.removedbills {
		ids = append(ids, id)
	}
	return
}

// BillsIDs returns the "bills" edge IDs in the mutation.
func (m *VendorMutation) BillsIDs() (ids []uuid.UUID) {
	for id := range m.bills {
		ids = append(ids, id)
	}
	return
}

// ResetBills resets all changes to the "bills" edge.
func (m *VendorMutation) ResetBills() {
	m.bills = nil
	m.clearedbills = false
	m.removedbills = nil
}

// Where appends a list predicates to the VendorMutation builder.
func (m *VendorMutation) Where(ps ...predicate.Vendor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vendor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vendor).
func (m *VendorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, vendor.FieldName)
	}
	if m.gstin != nil {
		fields = append(fields, vendor.FieldGstin)
	}
	if m.email != nil {
		fields = append(fields, vendor.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, vendor.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, vendor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vendor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendor.FieldName:
		return m.Name()
	case vendor.FieldGstin:
		return m.Gstin()
	case vendor.FieldEmail:
		return m.Email()
	case vendor.FieldPhone:
		return m.Phone()
	case vendor.FieldCreatedAt:
		return m.CreatedAt()
	case vendor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendor.FieldName:
		return m.OldName(ctx)
	case vendor.FieldGstin:
		return m.OldGstin(ctx)
	case vendor.FieldEmail:
		return m.OldEmail(ctx)
	case vendor.FieldPhone:
		return m.OldPhone(ctx)
	case vendor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vendor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vendor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vendor.FieldGstin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstin(v)
		return nil
	case vendor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case vendor.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case vendor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vendor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vendor.FieldGstin) {
		fields = append(fields, vendor.FieldGstin)
	}
	if m.FieldCleared(vendor.FieldEmail) {
		fields = append(fields, vendor.FieldEmail)
	}
	if m.FieldCleared(vendor.FieldPhone) {
		fields = append(fields, vendor.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorMutation) ClearField(name string) error {
	switch name {
	case vendor.FieldGstin:
		m.ClearGstin()
		return nil
	case vendor.FieldEmail:
		m.ClearEmail()
		return nil
	case vendor.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown Vendor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorMutation) ResetField(name string) error {
	switch name {
	case vendor.FieldName:
		m.ResetName()
		return nil
	case vendor.FieldGstin:
		m.ResetGstin()
		return nil
	case vendor.FieldEmail:
		m.ResetEmail()
		return nil
	case vendor.FieldPhone:
		m.ResetPhone()
		return nil
	case vendor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vendor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bills != nil {
		edges = append(edges, vendor.EdgeBills)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeBills:
		ids := make([]ent.Value, 0, len(m.bills))
		for id := range m.bills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbills != nil {
		edges = append(edges, vendor.EdgeBills)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeBills:
		ids := make([]ent.Value, 0, len(m.removedbills))
		for id := range m.removedbills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbills {
		edges = append(edges, vendor.EdgeBills)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorMutation) EdgeCleared(name string) bool {
	switch name {
	case vendor.EdgeBills:
		return m.clearedbills
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorMutation) ResetEdge(name string) error {
	switch name {
	case vendor.EdgeBills:
		m.ResetBills()
		return nil
	}
	return fmt.Errorf("unknown Vendor edge %s", name)
}
