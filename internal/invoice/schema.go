package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractionJSONSchema returns the output contract for a serialized
// InvoiceExtraction as a JSON-Schema (draft 2020-12 subset) generic map.
// The same schema guards the gRPC boundary and the export path.
func BuildExtractionJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"hsn":            map[string]any{"type": "string", "pattern": `^\d{4,8}$`},
			"description":    map[string]any{"type": "string"},
			"uom":            map[string]any{"type": "string"},
			"matched_sku":    map[string]any{"type": "string"},
			"qty":            decimalProp(),
			"rate":           decimalProp(),
			"amount":         decimalProp(),
			"row_confidence": confidenceProp(),
			"inconsistent":   map[string]any{"type": "boolean"},
		},
		"required": []string{"description", "qty", "rate", "amount", "row_confidence"},
	}

	vendor := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"gstin": map[string]any{"type": "string", "pattern": `^\d{2}[A-Z]{5}\d{4}[A-Z]\dZ[0-9A-Z]$`},
			"email": map[string]any{"type": "string"},
			"phone": map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}

	header := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoice_no": map[string]any{"type": "string", "minLength": 1},
			"bill_date":  map[string]any{"type": "string", "format": "date-time"},
		},
	}

	totals := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"subtotal":          decimalProp(),
			"tax":               decimalProp(),
			"grand_total":       decimalProp(),
			"computed_subtotal": decimalProp(),
			"discrepancy":       decimalProp(),
		},
		"required": []string{"computed_subtotal"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor":             vendor,
			"header":             header,
			"line_items":         map[string]any{"type": "array", "items": lineItem},
			"totals":             totals,
			"overall_confidence": confidenceProp(),
			"needs_review":       map[string]any{"type": "boolean"},
			"review_reasons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []string{
						string(ReasonVendorUnresolved),
						string(ReasonHeaderLowTier),
						string(ReasonLineItemIncomplete),
						string(ReasonTotalsMismatch),
						string(ReasonTotalsMissing),
						string(ReasonLowOCRConfidence),
						string(ReasonProcessingCancelled),
					},
				},
			},
			"method": map[string]any{"type": "string"},
		},
		"required": []string{"header", "line_items", "totals", "overall_confidence", "needs_review", "review_reasons"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,4})?$`,
	}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}

// ValidateExtractionJSON validates a serialized extraction against the
// output contract.
func ValidateExtractionJSON(data []byte) error {
	b, err := json.Marshal(BuildExtractionJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extraction.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("extraction.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal extraction: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("extraction does not match contract: %w", err)
	}
	return nil
}
