package invoice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reUOM = regexp.MustCompile(`(?i)^(?:NOS|PCS|BOX|SET|PAIR|PKT|ROLL|MTR|METER|LTR|KG|GM|SQF|SQM|BAG|DOZ|UNT)\.?$`)
	// reHSN matches a standalone 4-8 digit HSN/SAC classification code.
	reHSN     = regexp.MustCompile(`^\d{4,8}$`)
	reDecimal = regexp.MustCompile(`^(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,3})?$`)
	reSerial  = regexp.MustCompile(`^\d{1,3}$`)

	reColumnHeader = regexp.MustCompile(`(?i)\b(?:description|particulars|goods|hsn|sac|qty|quantity|rate|price|amount)\b`)

	// reItemBlocklist rejects rows that can never be goods/services rows.
	reItemBlocklist = regexp.MustCompile(`(?i)\b(?:GSTIN|state\s*name|buyer|consignee|bank|IFSC|declaration|amount\s*chargeable|in\s*words|e\.?\s*&\s*o\.?\s*e|tax\s*invoice|computer\s*generated|authori[sz]ed\s*signatory|page\s*\d+|continued)\b`)

	reTotalsLabel = regexp.MustCompile(`(?i)\b(?:sub\s*[- ]?total|taxable\s*(?:value|amount)|grand\s*total|total|round(?:ing|ed)?\s*off|output\s+(?:CGST|SGST|IGST)|CGST|SGST|IGST)\b`)
)

// tableRegion bounds the goods table: items are parsed between the column
// header row (or the first plausible item row) and the totals block.
type tableRegion struct {
	start int // first line index eligible for items
	end   int // exclusive; start of the totals block, or len(lines)
}

func detectTableRegion(lines []NormalizedLine) tableRegion {
	start := -1
	for i, ln := range lines {
		if len(reColumnHeader.FindAllString(ln.Text, -1)) >= 2 {
			start = i + 1
			break
		}
	}
	if start < 0 {
		// No column header survived recognition: anchor on the first row
		// that looks like a goods row in its own right. Vendor-header lines
		// full of pincodes and phone numbers must not qualify.
		for i, ln := range lines {
			if plausibleItemRow(ln) {
				start = i
				break
			}
		}
	}

	scanFrom := start
	if scanFrom < 0 {
		scanFrom = 0
	}
	end := len(lines)
	for i := scanFrom; i < len(lines); i++ {
		if reTotalsLabel.MatchString(lines[i].Text) && !reColumnHeader.MatchString(lines[i].Text) {
			end = i
			break
		}
	}
	if start < 0 {
		// No table anywhere: nothing to parse, but the totals block below
		// end stays addressable for reconciliation.
		start = end
	}
	return tableRegion{start: start, end: end}
}

// plausibleItemRow reports whether a line can anchor the goods table by
// itself: an HSN code, at least two numeric columns, and at least one
// money-shaped value with a decimal fraction. Pincode and phone lines carry
// bare digit runs and fail the last check.
func plausibleItemRow(ln NormalizedLine) bool {
	if reItemBlocklist.MatchString(ln.Text) {
		return false
	}
	item := parseItemRow(ln)
	if item == nil || item.HSN == "" || item.numericFields < 2 {
		return false
	}
	for _, t := range ln.Tokens {
		c := cleanNumber(t.Value)
		if reDecimal.MatchString(c) && strings.Contains(c, ".") {
			return true
		}
	}
	return false
}

// firstItemRowIndex is used by the header cascade to bound its loosest tier.
// Returns -1 when no table is detectable.
func firstItemRowIndex(lines []NormalizedLine) int {
	for i, ln := range lines {
		if len(reColumnHeader.FindAllString(ln.Text, -1)) >= 2 {
			return i
		}
		if plausibleItemRow(ln) {
			return i
		}
	}
	return -1
}

// extractLineItems parses the goods table into structured rows. Rows with
// missing or inconsistent numerics are retained with reduced confidence so
// totals reconciliation can still report what it can.
func extractLineItems(lines []NormalizedLine) []LineItem {
	region := detectTableRegion(lines)

	var items []LineItem
	var pendingDesc []string

	for i := region.start; i < region.end; i++ {
		ln := lines[i]
		if ln.Text == "" || reItemBlocklist.MatchString(ln.Text) || reColumnHeader.MatchString(ln.Text) {
			continue
		}

		item := parseItemRow(ln)
		if item == nil {
			// A row with no numeric columns: either a continuation of the
			// preceding item's description, or a prefix for the next row.
			if !hasLetters(ln.Text) {
				continue
			}
			if len(items) > 0 && len(pendingDesc) == 0 {
				items[len(items)-1].Description = strings.TrimSpace(
					items[len(items)-1].Description + " " + ln.Text)
			} else {
				pendingDesc = append(pendingDesc, ln.Text)
			}
			continue
		}

		if len(pendingDesc) > 0 {
			item.Description = strings.TrimSpace(strings.Join(pendingDesc, " ") + " " + item.Description)
			pendingDesc = nil
		}
		if item.Description == "" && item.HSN == "" {
			continue
		}
		items = append(items, *item)
	}
	return items
}

// parseItemRow classifies one normalized line as a goods row. Returns nil
// when the line carries no interpretable numeric column.
func parseItemRow(ln NormalizedLine) *LineItem {
	var (
		descParts []string
		numerics  []decimal.Decimal
		numConfs  []float32
		hsn, uom  string
	)

	for idx, tok := range ln.Tokens {
		v := tok.Value

		// Leading serial index is layout, not data.
		if idx == 0 && reSerial.MatchString(v) {
			continue
		}
		if uom == "" && reUOM.MatchString(v) && len(numerics) > 0 {
			uom = strings.ToUpper(strings.TrimSuffix(v, "."))
			continue
		}

		cleaned := cleanNumber(v)
		if reDecimal.MatchString(cleaned) {
			if hsn == "" && reHSN.MatchString(cleaned) && !strings.Contains(cleaned, ".") && len(numerics) == 0 {
				hsn = cleaned
				continue
			}
			if d, err := decimal.NewFromString(strings.ReplaceAll(cleaned, ",", "")); err == nil {
				numerics = append(numerics, d)
				numConfs = append(numConfs, tok.Conf)
				continue
			}
		}
		descParts = append(descParts, v)
	}

	if len(numerics) == 0 && hsn == "" {
		return nil
	}

	item := &LineItem{
		HSN:           hsn,
		UOM:           uom,
		Description:   cleanDescription(strings.Join(descParts, " ")),
		numericFields: len(numerics),
	}
	if item.numericFields > 3 {
		item.numericFields = 3
	}

	base := 0.95 * float64(meanConf(numConfs))

	switch {
	case len(numerics) >= 3:
		item.Qty, item.Rate, item.Amount = numerics[0], numerics[1], numerics[len(numerics)-1]
		fixColumnOrder(item)
		if rowConsistent(item.Qty, item.Rate, item.Amount) {
			item.RowConfidence = base
		} else {
			item.Inconsistent = true
			item.RowConfidence = 0.4
		}
	case len(numerics) == 2:
		// Exactly one of the three is absent: solve amount = qty*rate.
		// A solved value was never read off the page, so the row can never
		// score as high as a fully printed one.
		item.Qty, item.Rate = numerics[0], numerics[1]
		item.Amount = item.Qty.Mul(item.Rate).Round(2)
		item.RowConfidence = 0.75 * base
	case len(numerics) == 1:
		if strings.Contains(numerics[0].String(), ".") {
			item.Amount = numerics[0]
		} else {
			item.Qty = numerics[0]
		}
		item.Inconsistent = true
		item.RowConfidence = 0.2
	default:
		item.Inconsistent = true
		item.RowConfidence = 0.2
	}
	return item
}

// fixColumnOrder repairs the common mis-read where rate and amount columns
// swap (amount-first layouts).
func fixColumnOrder(item *LineItem) {
	if rowConsistent(item.Qty, item.Rate, item.Amount) {
		return
	}
	if rowConsistent(item.Qty, item.Amount, item.Rate) {
		item.Rate, item.Amount = item.Amount, item.Rate
	}
}

// rowConsistent accepts |qty*rate - amount| within max(1.00, 5% of amount).
func rowConsistent(qty, rate, amount decimal.Decimal) bool {
	diff := qty.Mul(rate).Sub(amount).Abs()
	tol := decimal.NewFromInt(1)
	if rel := amount.Abs().Mul(decimal.NewFromFloat(0.05)); rel.GreaterThan(tol) {
		tol = rel
	}
	return diff.LessThanOrEqual(tol)
}

// cleanNumber strips currency symbols and repairs the usual numeric OCR
// confusions (letter O for zero) without touching word tokens.
func cleanNumber(s string) string {
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "/-")
	if reHasDigit.MatchString(s) {
		s = strings.ReplaceAll(s, "O", "0")
		s = strings.ReplaceAll(s, "o", "0")
	}
	return strings.TrimSpace(s)
}

var reDescNoise = regexp.MustCompile(`(?i)\b(?:sl\.?|no\.?|description\s*of|goods\s*and\s*services|hsn/sac|hsn|sac|quantity|qty|rate|per|amount|disc\.?\s*%?)\b`)

func cleanDescription(s string) string {
	s = reDescNoise.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.Trim(s, " :-,.")
}

func meanConf(confs []float32) float32 {
	if len(confs) == 0 {
		return 1.0
	}
	var sum float32
	for _, c := range confs {
		sum += c
	}
	return sum / float32(len(confs))
}
