package invoice

import (
	"regexp"
	"strings"
	"time"
)

var (
	reInvoiceInline = regexp.MustCompile(`(?i)(?:invoice\s*(?:no\.?|#|number)|bill\s*(?:no\.?|#))\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9\-/.]{0,40})`)
	reInvoiceLabel  = regexp.MustCompile(`(?i)(?:invoice\s*(?:no\.?|#|number)|bill\s*(?:no\.?|#))\s*[:\-]?\s*$`)
	reInvoiceValue  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-/. ]{0,40}$`)
	// reInvoiceShape is the loosest tier: a code-looking token with
	// separators, e.g. INV-1001 or 123/25-26.
	reInvoiceShape = regexp.MustCompile(`^[A-Z0-9]{2,}(?:[/\-][A-Z0-9]+)+$`)

	reDateLabel = regexp.MustCompile(`(?i)\b(?:dated|invoice\s*date|bill\s*date|date)\b\s*[:\-]?\s*(.*)$`)
	reDateToken = regexp.MustCompile(`\b\d{1,2}[-/.](?:[A-Za-z]{3}|\d{1,2})[-/.]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)

	reHasDigit = regexp.MustCompile(`\d`)
)

// dateLayouts are tried in order; day-first is the locale default.
var dateLayouts = []string{
	"2-Jan-06",
	"2-Jan-2006",
	"2/Jan/06",
	"2/Jan/2006",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2006-01-02",
}

type headerMatch struct {
	value    string
	strategy MatchStrategy
}

// headerMatcher is one pattern tier. Tiers run as an ordered list with
// first-success-wins so each stays independently testable and the priority
// order stays auditable.
type headerMatcher func(lines []NormalizedLine, stopLine int) *headerMatch

// extractHeader resolves the invoice number and bill date through their
// matcher cascades. stopLine bounds the loose tiers to lines above the item
// table.
func extractHeader(lines []NormalizedLine, stopLine int, now time.Time) HeaderFields {
	h := HeaderFields{InvoiceNoStrategy: StrategyNone, DateStrategy: StrategyNone}

	for _, m := range invoiceNoMatchers {
		if got := m(lines, stopLine); got != nil {
			h.InvoiceNo = got.value
			h.InvoiceNoStrategy = got.strategy
			break
		}
	}
	for _, m := range dateMatchers {
		if got := m(lines, stopLine); got != nil {
			if d, ok := parseBillDate(got.value, now); ok {
				h.BillDate = &d
				h.DateStrategy = got.strategy
				break
			}
		}
	}
	return h
}

var invoiceNoMatchers = []headerMatcher{
	matchLabeledInvoiceNo,
	matchPositionalInvoiceNo,
	matchFallbackInvoiceNo,
}

var dateMatchers = []headerMatcher{
	matchLabeledDate,
	matchFreeFormDate,
}

// Tier 1: a line labeled "Invoice No"/"Bill No", value inline or on one of
// the next three lines.
func matchLabeledInvoiceNo(lines []NormalizedLine, _ int) *headerMatch {
	for i, ln := range lines {
		if m := reInvoiceInline.FindStringSubmatch(ln.Text); m != nil {
			v := strings.TrimSpace(m[1])
			if v != "" && reHasDigit.MatchString(v) && !strings.EqualFold(v, "dated") {
				return &headerMatch{value: v, strategy: StrategyLabeled}
			}
		}
		if reInvoiceLabel.MatchString(ln.Text) {
			for j := i + 1; j < i+4 && j < len(lines); j++ {
				cand := strings.TrimSpace(lines[j].Text)
				if cand == "" {
					continue
				}
				if reInvoiceValue.MatchString(cand) && reHasDigit.MatchString(cand) {
					return &headerMatch{value: cand, strategy: StrategyLabeled}
				}
			}
			return nil
		}
	}
	return nil
}

// Tier 2: first code-shaped token in the top-right block of page 1, located
// via token geometry when the backend reported it.
func matchPositionalInvoiceNo(lines []NormalizedLine, _ int) *headerMatch {
	var maxX float64
	count := 0
	for _, ln := range lines {
		if ln.Page != 1 || count >= 10 {
			break
		}
		count++
		for _, t := range ln.Tokens {
			if t.BBox != nil && t.BBox.X1 > maxX {
				maxX = t.BBox.X1
			}
		}
	}
	if maxX == 0 {
		return nil // no geometry: this tier cannot apply
	}
	count = 0
	for _, ln := range lines {
		if ln.Page != 1 || count >= 10 {
			break
		}
		count++
		for _, t := range ln.Tokens {
			if t.BBox == nil || t.BBox.X0 < 0.55*maxX {
				continue
			}
			v := strings.ToUpper(t.Value)
			if reInvoiceShape.MatchString(v) {
				return &headerMatch{value: t.Value, strategy: StrategyPositional}
			}
		}
	}
	return nil
}

// Tier 3: any code-shaped token appearing before the first item row.
func matchFallbackInvoiceNo(lines []NormalizedLine, stopLine int) *headerMatch {
	for i, ln := range lines {
		if stopLine >= 0 && i >= stopLine {
			break
		}
		if reDateToken.MatchString(ln.Text) && !reHasDigit.MatchString(reDateToken.ReplaceAllString(ln.Text, "")) {
			continue // only a date on this line
		}
		for _, t := range ln.Tokens {
			v := strings.ToUpper(t.Value)
			if reDateToken.MatchString(v) || reGSTIN.MatchString(v) {
				continue
			}
			if reInvoiceShape.MatchString(v) {
				return &headerMatch{value: t.Value, strategy: StrategyFallback}
			}
		}
	}
	return nil
}

// Tier 1: "Dated:"/"Invoice Date:" with the value inline or within the next
// three lines.
func matchLabeledDate(lines []NormalizedLine, _ int) *headerMatch {
	for i, ln := range lines {
		m := reDateLabel.FindStringSubmatch(ln.Text)
		if m == nil {
			continue
		}
		if tok := reDateToken.FindString(m[1]); tok != "" {
			return &headerMatch{value: tok, strategy: StrategyLabeled}
		}
		for j := i + 1; j < i+4 && j < len(lines); j++ {
			if tok := reDateToken.FindString(lines[j].Text); tok != "" {
				return &headerMatch{value: tok, strategy: StrategyLabeled}
			}
		}
	}
	return nil
}

// Tier 2: any date-shaped token above the item table.
func matchFreeFormDate(lines []NormalizedLine, stopLine int) *headerMatch {
	for i, ln := range lines {
		if stopLine >= 0 && i >= stopLine {
			break
		}
		if tok := reDateToken.FindString(ln.Text); tok != "" {
			return &headerMatch{value: tok, strategy: StrategyFallback}
		}
	}
	return nil
}

// parseBillDate normalizes the accepted formats to a calendar date.
// Two-digit years are resolved against the injected current date so results
// stay reproducible.
func parseBillDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if d.Year() > now.Year()+1 {
			d = d.AddDate(-100, 0, 0)
		}
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
