// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "invoice_no", Type: field.TypeString, Nullable: true},
		{Name: "bill_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UPLOADED", "PROCESSING", "PROCESSED", "FAILED", "CONFIRMED"}, Default: "UPLOADED"},
		{Name: "source_path", Type: field.TypeString, Nullable: true},
		{Name: "format", Type: field.TypeEnum, Enums: []string{"PDF", "IMAGE"}},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "grand_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "review_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID, Nullable: true},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_vendors_bills",
				Columns:    []*schema.Column{BillsColumns[17]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bill_status",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[4]},
			},
			{
				Name:    "bill_needs_review",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[12]},
			},
		},
	}
	// BillLinesColumns holds the columns for the "bill_lines" table.
	BillLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "line_no", Type: field.TypeInt},
		{Name: "hsn", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "uom", Type: field.TypeString, Nullable: true},
		{Name: "qty", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,3)"}},
		{Name: "rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "inconsistent", Type: field.TypeBool, Default: false},
		{Name: "matched_sku", Type: field.TypeString, Nullable: true},
		{Name: "bill_id", Type: field.TypeUUID},
		{Name: "product_id", Type: field.TypeUUID, Nullable: true},
	}
	// BillLinesTable holds the schema information for the "bill_lines" table.
	BillLinesTable = &schema.Table{
		Name:       "bill_lines",
		Columns:    BillLinesColumns,
		PrimaryKey: []*schema.Column{BillLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bill_lines_bills_lines",
				Columns:    []*schema.Column{BillLinesColumns[11]},
				RefColumns: []*schema.Column{BillsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "bill_lines_products_bill_lines",
				Columns:    []*schema.Column{BillLinesColumns[12]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sku", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "hsn", Type: field.TypeString, Nullable: true},
		{Name: "uom", Type: field.TypeString, Nullable: true},
		{Name: "stock", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "product_sku",
				Unique:  true,
				Columns: []*schema.Column{ProductsColumns[1]},
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "gstin", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vendor_gstin",
				Unique:  true,
				Columns: []*schema.Column{VendorsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		BillLinesTable,
		ProductsTable,
		VendorsTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = VendorsTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	BillLinesTable.ForeignKeys[0].RefTable = BillsTable
	BillLinesTable.ForeignKeys[1].RefTable = ProductsTable
	BillLinesTable.Annotation = &entsql.Annotation{
		Table: "bill_lines",
	}
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
