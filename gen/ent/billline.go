// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/google/uuid"
)

// BillLine is the model entity for the BillLine schema.
type BillLine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BillID holds the value of the "bill_id" field.
	BillID uuid.UUID `json:"bill_id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	// LineNo holds the value of the "line_no" field.
	LineNo int `json:"line_no,omitempty"`
	// Hsn holds the value of the "hsn" field.
	Hsn string `json:"hsn,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Uom holds the value of the "uom" field.
	Uom string `json:"uom,omitempty"`
	// Qty holds the value of the "qty" field.
	Qty float64 `json:"qty,omitempty"`
	// Rate holds the value of the "rate" field.
	Rate float64 `json:"rate,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Inconsistent holds the value of the "inconsistent" field.
	Inconsistent bool `json:"inconsistent,omitempty"`
	// MatchedSku holds the value of the "matched_sku" field.
	MatchedSku string `json:"matched_sku,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillLineQuery when eager-loading is set.
	Edges        BillLineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillLineEdges holds the relations/edges for other nodes in the graph.
type BillLineEdges struct {
	// Bill holds the value of the bill edge.
	Bill *Bill `json:"bill,omitempty"`
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BillOrErr returns the Bill value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillLineEdges) BillOrErr() (*Bill, error) {
	if e.Bill != nil {
		return e.Bill, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bill.Label}
	}
	return nil, &NotLoadedError{edge: "bill"}
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillLineEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillLine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billline.FieldProductID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case billline.FieldInconsistent:
			values[i] = new(sql.NullBool)
		case billline.FieldQty, billline.FieldRate, billline.FieldAmount, billline.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case billline.FieldLineNo:
			values[i] = new(sql.NullInt64)
		case billline.FieldHsn, billline.FieldDescription, billline.FieldUom, billline.FieldMatchedSku:
			values[i] = new(sql.NullString)
		case billline.FieldID, billline.FieldBillID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillLine fields.
func (_m *BillLine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billline.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case billline.FieldBillID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bill_id", values[i])
			} else if value != nil {
				_m.BillID = *value
			}
		case billline.FieldProductID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value.Valid {
				_m.ProductID = new(uuid.UUID)
				*_m.ProductID = *value.S.(*uuid.UUID)
			}
		case billline.FieldLineNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_no", values[i])
			} else if value.Valid {
				_m.LineNo = int(value.Int64)
			}
		case billline.FieldHsn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hsn", values[i])
			} else if value.Valid {
				_m.Hsn = value.String
			}
		case billline.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case billline.FieldUom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uom", values[i])
			} else if value.Valid {
				_m.Uom = value.String
			}
		case billline.FieldQty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field qty", values[i])
			} else if value.Valid {
				_m.Qty = value.Float64
			}
		case billline.FieldRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate", values[i])
			} else if value.Valid {
				_m.Rate = value.Float64
			}
		case billline.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case billline.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case billline.FieldInconsistent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field inconsistent", values[i])
			} else if value.Valid {
				_m.Inconsistent = value.Bool
			}
		case billline.FieldMatchedSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matched_sku", values[i])
			} else if value.Valid {
				_m.MatchedSku = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillLine.
// This includes values selected through modifiers, order, etc.
func (_m *BillLine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBill queries the "bill" edge of the BillLine entity.
func (_m *BillLine) QueryBill() *BillQuery {
	return NewBillLineClient(_m.config).QueryBill(_m)
}

// QueryProduct queries the "product" edge of the BillLine entity.
func (_m *BillLine) QueryProduct() *ProductQuery {
	return NewBillLineClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this BillLine.
// Note that you need to call BillLine.Unwrap() before calling this method if this BillLine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillLine) Update() *BillLineUpdateOne {
	return NewBillLineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillLine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillLine) Unwrap() *BillLine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillLine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillLine) String() string {
	var builder strings.Builder
	builder.WriteString("BillLine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bill_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BillID))
	builder.WriteString(", ")
	if v := _m.ProductID; v != nil {
		builder.WriteString("product_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("line_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineNo))
	builder.WriteString(", ")
	builder.WriteString("hsn=")
	builder.WriteString(_m.Hsn)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("uom=")
	builder.WriteString(_m.Uom)
	builder.WriteString(", ")
	builder.WriteString("qty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Qty))
	builder.WriteString(", ")
	builder.WriteString("rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rate))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("inconsistent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inconsistent))
	builder.WriteString(", ")
	builder.WriteString("matched_sku=")
	builder.WriteString(_m.MatchedSku)
	builder.WriteByte(')')
	return builder.String()
}

// BillLines is a parsable slice of BillLine.
type BillLines []*BillLine
