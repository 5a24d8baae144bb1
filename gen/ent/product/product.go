// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldHsn holds the string denoting the hsn field in the database.
	FieldHsn = "hsn"
	// FieldUom holds the string denoting the uom field in the database.
	FieldUom = "uom"
	// FieldStock holds the string denoting the stock field in the database.
	FieldStock = "stock"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBillLines holds the string denoting the bill_lines edge name in mutations.
	EdgeBillLines = "bill_lines"
	// Table holds the table name of the product in the database.
	Table = "products"
	// BillLinesTable is the table that holds the bill_lines relation/edge.
	BillLinesTable = "bill_lines"
	// BillLinesInverseTable is the table name for the BillLine entity.
	// It exists in this package in order to avoid circular dependency with the "billline" package.
	BillLinesInverseTable = "bill_lines"
	// BillLinesColumn is the table column denoting the bill_lines relation/edge.
	BillLinesColumn = "product_id"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldSku,
	FieldName,
	FieldHsn,
	FieldUom,
	FieldStock,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	SkuValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultStock holds the default value on creation for the "stock" field.
	DefaultStock float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByHsn orders the results by the hsn field.
func ByHsn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHsn, opts...).ToFunc()
}

// ByUom orders the results by the uom field.
func ByUom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUom, opts...).ToFunc()
}

// ByStock orders the results by the stock field.
func ByStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStock, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBillLinesCount orders the results by bill_lines count.
func ByBillLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBillLinesStep(), opts...)
	}
}

// ByBillLines orders the results by bill_lines terms.
func ByBillLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBillLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBillLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BillLinesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BillLinesTable, BillLinesColumn),
	)
}
