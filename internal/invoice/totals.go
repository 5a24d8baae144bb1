package invoice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reSubtotalLabel   = regexp.MustCompile(`(?i)\b(?:sub\s*[- ]?total|taxable\s*(?:value|amount))\b`)
	reTaxLabel        = regexp.MustCompile(`(?i)\b(?:CGST|SGST|IGST|GST|tax)\b`)
	reGrandTotalLabel = regexp.MustCompile(`(?i)\b(?:grand\s*total|total\s*amount|amount\s*payable|net\s*amount|invoice\s*total|total)\b`)
)

// reconcileTotals sums every parsed row, locates the printed totals in the
// bottom region of the document, and reports the discrepancy against the
// printed grand total. Low-confidence rows are included in the sum; excluding
// them would hide exactly the mismatches a reviewer needs to see.
func reconcileTotals(lines []NormalizedLine, items []LineItem, absTol decimal.Decimal, relTol float64) TotalsSummary {
	var sum decimal.Decimal
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	t := TotalsSummary{ComputedSubtotal: sum.Round(2)}

	region := detectTableRegion(lines)
	bottom := lines[region.end:]

	t.PrintedSubtotal = findLabeledAmount(bottom, reSubtotalLabel, false)
	t.PrintedTax = sumTaxAmounts(bottom)
	t.PrintedGrandTotal = findLabeledAmount(bottom, reGrandTotalLabel, true)

	if t.PrintedGrandTotal == nil {
		return t // nil Discrepancy: undefined, the gate flags it
	}

	expected := t.ComputedSubtotal
	if t.PrintedTax != nil {
		expected = expected.Add(*t.PrintedTax)
	}
	diff := t.PrintedGrandTotal.Sub(expected).Round(2)
	if withinTolerance(diff, *t.PrintedGrandTotal, absTol, relTol) {
		diff = decimal.Zero
	}
	t.Discrepancy = &diff
	return t
}

// withinTolerance accepts |diff| <= max(absTol, relTol*|magnitude|).
func withinTolerance(diff, magnitude decimal.Decimal, absTol decimal.Decimal, relTol float64) bool {
	tol := absTol
	if rel := magnitude.Abs().Mul(decimal.NewFromFloat(relTol)); rel.GreaterThan(tol) {
		tol = rel
	}
	return diff.Abs().LessThanOrEqual(tol)
}

// findLabeledAmount returns the amount on the first line matching the label.
// With preferLargest set, every matching line is considered and the largest
// amount wins; tax invoices print several "Total" rows and the grand total is
// the biggest of them.
func findLabeledAmount(lines []NormalizedLine, label *regexp.Regexp, preferLargest bool) *decimal.Decimal {
	var best *decimal.Decimal
	for _, ln := range lines {
		if !label.MatchString(ln.Text) {
			continue
		}
		d := lastAmountOnLine(ln)
		if d == nil {
			continue
		}
		if !preferLargest {
			return d
		}
		if best == nil || d.GreaterThan(*best) {
			best = d
		}
	}
	return best
}

// sumTaxAmounts adds up the CGST/SGST/IGST rows. Returns nil when no tax row
// carries an amount.
func sumTaxAmounts(lines []NormalizedLine) *decimal.Decimal {
	var sum decimal.Decimal
	found := false
	for _, ln := range lines {
		if !reTaxLabel.MatchString(ln.Text) || reGrandTotalLabel.MatchString(ln.Text) {
			continue
		}
		if d := lastAmountOnLine(ln); d != nil {
			sum = sum.Add(*d)
			found = true
		}
	}
	if !found {
		return nil
	}
	sum = sum.Round(2)
	return &sum
}

// lastAmountOnLine picks the rightmost decimal token, skipping percentage
// rates like "9%".
func lastAmountOnLine(ln NormalizedLine) *decimal.Decimal {
	for i := len(ln.Tokens) - 1; i >= 0; i-- {
		v := ln.Tokens[i].Value
		if strings.HasSuffix(v, "%") {
			continue
		}
		cleaned := cleanNumber(v)
		if !reDecimal.MatchString(cleaned) {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(cleaned, ",", ""))
		if err != nil {
			continue
		}
		return &d
	}
	return nil
}
