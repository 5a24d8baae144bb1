package constants

// BillStatus is the canonical status for rows in bills.
type BillStatus string

// Stable values (store these exact strings in DB).
const (
	BillStatusUploaded   BillStatus = "UPLOADED"   // file stored, extraction not started
	BillStatusProcessing BillStatus = "PROCESSING" // pipeline invocation in progress
	BillStatusProcessed  BillStatus = "PROCESSED"  // extraction finished (possibly needs review)
	BillStatusFailed     BillStatus = "FAILED"     // terminal acquisition failure
	BillStatusConfirmed  BillStatus = "CONFIRMED"  // reviewed/accepted, stock applied
)
