// Code generated by ent, DO NOT EDIT.

package billline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the billline type in the database.
	Label = "bill_line"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBillID holds the string denoting the bill_id field in the database.
	FieldBillID = "bill_id"
	// FieldProductID holds the string denoting the product_id field in the database.
	FieldProductID = "product_id"
	// FieldLineNo holds the string denoting the line_no field in the database.
	FieldLineNo = "line_no"
	// FieldHsn holds the string denoting the hsn field in the database.
	FieldHsn = "hsn"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldUom holds the string denoting the uom field in the database.
	FieldUom = "uom"
	// FieldQty holds the string denoting the qty field in the database.
	FieldQty = "qty"
	// FieldRate holds the string denoting the rate field in the database.
	FieldRate = "rate"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldInconsistent holds the string denoting the inconsistent field in the database.
	FieldInconsistent = "inconsistent"
	// FieldMatchedSku holds the string denoting the matched_sku field in the database.
	FieldMatchedSku = "matched_sku"
	// EdgeBill holds the string denoting the bill edge name in mutations.
	EdgeBill = "bill"
	// EdgeProduct holds the string denoting the product edge name in mutations.
	EdgeProduct = "product"
	// Table holds the table name of the billline in the database.
	Table = "bill_lines"
	// BillTable is the table that holds the bill relation/edge.
	BillTable = "bill_lines"
	// BillInverseTable is the table name for the Bill entity.
	// It exists in this package in order to avoid circular dependency with the "bill" package.
	BillInverseTable = "bills"
	// BillColumn is the table column denoting the bill relation/edge.
	BillColumn = "bill_id"
	// ProductTable is the table that holds the product relation/edge.
	ProductTable = "bill_lines"
	// ProductInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	ProductInverseTable = "products"
	// ProductColumn is the table column denoting the product relation/edge.
	ProductColumn = "product_id"
)

// Columns holds all SQL columns for billline fields.
var Columns = []string{
	FieldID,
	FieldBillID,
	FieldProductID,
	FieldLineNo,
	FieldHsn,
	FieldDescription,
	FieldUom,
	FieldQty,
	FieldRate,
	FieldAmount,
	FieldConfidence,
	FieldInconsistent,
	FieldMatchedSku,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultInconsistent holds the default value on creation for the "inconsistent" field.
	DefaultInconsistent bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BillLine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBillID orders the results by the bill_id field.
func ByBillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillID, opts...).ToFunc()
}

// ByProductID orders the results by the product_id field.
func ByProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductID, opts...).ToFunc()
}

// ByLineNo orders the results by the line_no field.
func ByLineNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineNo, opts...).ToFunc()
}

// ByHsn orders the results by the hsn field.
func ByHsn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHsn, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByUom orders the results by the uom field.
func ByUom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUom, opts...).ToFunc()
}

// ByQty orders the results by the qty field.
func ByQty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQty, opts...).ToFunc()
}

// ByRate orders the results by the rate field.
func ByRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRate, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByInconsistent orders the results by the inconsistent field.
func ByInconsistent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInconsistent, opts...).ToFunc()
}

// ByMatchedSku orders the results by the matched_sku field.
func ByMatchedSku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedSku, opts...).ToFunc()
}

// ByBillField orders the results by bill field.
func ByBillField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBillStep(), sql.OrderByField(field, opts...))
	}
}

// ByProductField orders the results by product field.
func ByProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductStep(), sql.OrderByField(field, opts...))
	}
}
func newBillStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BillInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BillTable, BillColumn),
	)
}
func newProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
	)
}
