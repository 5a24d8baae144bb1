// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Alan-K-Biju-7/waresys-mvp/db/ent/schema"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/vendor"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescConfidence is the schema descriptor for confidence field.
	billDescConfidence := billFields[12].Descriptor()
	// bill.DefaultConfidence holds the default value on creation for the confidence field.
	bill.DefaultConfidence = billDescConfidence.Default.(float64)
	// billDescNeedsReview is the schema descriptor for needs_review field.
	billDescNeedsReview := billFields[13].Descriptor()
	// bill.DefaultNeedsReview holds the default value on creation for the needs_review field.
	bill.DefaultNeedsReview = billDescNeedsReview.Default.(bool)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[16].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescUpdatedAt is the schema descriptor for updated_at field.
	billDescUpdatedAt := billFields[17].Descriptor()
	// bill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bill.DefaultUpdatedAt = billDescUpdatedAt.Default.(func() time.Time)
	// bill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bill.UpdateDefaultUpdatedAt = billDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	billlineFields := schema.BillLine{}.Fields()
	_ = billlineFields
	// billlineDescConfidence is the schema descriptor for confidence field.
	billlineDescConfidence := billlineFields[10].Descriptor()
	// billline.DefaultConfidence holds the default value on creation for the confidence field.
	billline.DefaultConfidence = billlineDescConfidence.Default.(float64)
	// billlineDescInconsistent is the schema descriptor for inconsistent field.
	billlineDescInconsistent := billlineFields[11].Descriptor()
	// billline.DefaultInconsistent holds the default value on creation for the inconsistent field.
	billline.DefaultInconsistent = billlineDescInconsistent.Default.(bool)
	// billlineDescID is the schema descriptor for id field.
	billlineDescID := billlineFields[0].Descriptor()
	// billline.DefaultID holds the default value on creation for the id field.
	billline.DefaultID = billlineDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescSku is the schema descriptor for sku field.
	productDescSku := productFields[1].Descriptor()
	// product.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	product.SkuValidator = productDescSku.Validators[0].(func(string) error)
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[2].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescStock is the schema descriptor for stock field.
	productDescStock := productFields[5].Descriptor()
	// product.DefaultStock holds the default value on creation for the stock field.
	product.DefaultStock = productDescStock.Default.(float64)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[6].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[7].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[1].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescGstin is the schema descriptor for gstin field.
	vendorDescGstin := vendorFields[2].Descriptor()
	// vendor.GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	vendor.GstinValidator = vendorDescGstin.Validators[0].(func(string) error)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[5].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[6].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
