package invoice

import (
	"regexp"
	"strings"
)

var (
	// reGSTIN matches the 15-character GST registration shape: state code,
	// PAN, entity digit, the fixed 'Z', and a check character.
	reGSTIN = regexp.MustCompile(`\b\d{2}[A-Z]{5}\d{4}[A-Z]\dZ[0-9A-Z]\b`)

	reBuyerMarker = regexp.MustCompile(`(?i)\b(?:bill(?:ed)?\s*to|ship(?:ped)?\s*to|consignee|buyer)\b`)
	rePinCode     = regexp.MustCompile(`\b[1-9]\d{5}\b`)
	reEmail       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone       = regexp.MustCompile(`(?:\+91[\-\s]?)?\b\d{10}\b|\b\d{3,5}[-\s]?\d{6,8}\b`)

	reNoiseLine  = regexp.MustCompile(`(?i)^\s*(?:tax\s*invoice|invoice|bill|quotation|estimate|original|duplicate)\s*$`)
	reLabelLine  = regexp.MustCompile(`(?i)\b(?:GSTIN|GST\s*No|Invoice\s*No|Bill\s*No|Dated|e[-\s]?way|delivery\s*note|page\s*\d+)\b`)
	reStateToken = regexp.MustCompile(`(?i)\b(?:kerala|karnataka|maharashtra|tamil\s*nadu|gujarat|rajasthan|delhi|telangana|andhra\s*pradesh|west\s*bengal|punjab|haryana|uttar\s*pradesh|madhya\s*pradesh|bihar|odisha|assam|goa)\b`)
)

// buyerBlockSpan is how many lines after a buyer marker still belong to the
// buyer's name/address block.
const buyerBlockSpan = 5

// identifyVendor scans the vendor region of page 1 for GSTIN-shaped tokens
// and scores the name block above each one. Candidates inside a detected
// buyer block are excluded outright. Returns nil when no GSTIN exists
// anywhere in the region; the gate turns that into a review reason.
func identifyVendor(lines []NormalizedLine, scanLines int) *VendorCandidate {
	var page1 []NormalizedLine
	for _, ln := range lines {
		if ln.Page == 1 {
			page1 = append(page1, ln)
		}
	}
	if len(page1) == 0 {
		return nil
	}

	// Default region: top third of page 1, never more than scanLines.
	limit := (len(page1) + 2) / 3
	if limit < 8 {
		limit = len(page1)
		if limit > 8 {
			limit = 8
		}
	}
	if limit > scanLines {
		limit = scanLines
	}
	if limit > len(page1) {
		limit = len(page1)
	}

	buyerLines := markBuyerBlocks(page1)

	var best *VendorCandidate
	for i := 0; i < limit; i++ {
		gstin := reGSTIN.FindString(strings.ToUpper(page1[i].Text))
		if gstin == "" {
			continue
		}

		nameIdx := nearestNameLine(page1, i)
		if nameIdx < 0 {
			continue
		}
		if buyerLines[nameIdx] || buyerLines[i] {
			continue // overlapping a buyer block: excluded, not down-scored
		}
		// Buyer markers in the candidate line or the two lines before it
		// disqualify the candidate as well.
		excluded := false
		for j := nameIdx - 2; j <= nameIdx; j++ {
			if j >= 0 && reBuyerMarker.MatchString(page1[j].Text) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		cand := &VendorCandidate{
			Name:       cleanVendorName(page1[nameIdx].Text),
			GSTIN:      gstin,
			SourceLine: page1[nameIdx].Line,
		}
		if cand.Name == "" {
			continue
		}

		// Vertical proximity to the GSTIN: closer is higher.
		dist := i - nameIdx
		cand.Score = 10.0 - 2.0*float64(dist)

		// Address-like context below the name boosts the candidate.
		hi := i + 3
		if hi > len(page1) {
			hi = len(page1)
		}
		for j := nameIdx + 1; j < hi; j++ {
			if rePinCode.MatchString(page1[j].Text) {
				cand.Score += 3
			}
			if reStateToken.MatchString(page1[j].Text) {
				cand.Score += 2
			}
			if cand.Email == "" {
				cand.Email = reEmail.FindString(page1[j].Text)
			}
			if cand.Phone == "" {
				cand.Phone = normalizePhone(rePhone.FindString(page1[j].Text))
			}
		}

		if best == nil || cand.Score > best.Score {
			best = cand
		}
	}
	return best
}

// markBuyerBlocks flags every line belonging to a detected buyer/consignee
// block: the marker line plus the following span.
func markBuyerBlocks(lines []NormalizedLine) map[int]bool {
	marked := make(map[int]bool)
	for i, ln := range lines {
		if !reBuyerMarker.MatchString(ln.Text) {
			continue
		}
		for j := i; j <= i+buyerBlockSpan && j < len(lines); j++ {
			marked[j] = true
		}
	}
	return marked
}

// nearestNameLine walks upward from the GSTIN line to the closest line that
// plausibly carries a business name.
func nearestNameLine(lines []NormalizedLine, gstinIdx int) int {
	for j := gstinIdx - 1; j >= 0; j-- {
		text := lines[j].Text
		if text == "" || reNoiseLine.MatchString(text) || reLabelLine.MatchString(text) {
			continue
		}
		if !hasLetters(text) || mostlyDigits(text) {
			continue
		}
		return j
	}
	return -1
}

func cleanVendorName(s string) string {
	s = reEmail.ReplaceAllString(s, "")
	s = rePhone.ReplaceAllString(s, "")
	s = strings.TrimRight(strings.TrimSpace(s), " -,.:;/|")
	if !hasLetters(s) {
		return ""
	}
	return s
}

func normalizePhone(p string) string {
	if p == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, p)
	if len(digits) >= 10 {
		return "+91" + digits[len(digits)-10:]
	}
	return digits
}

func hasLetters(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func mostlyDigits(s string) bool {
	letters, digits := 0, 0
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	return digits > 0 && letters < 3
}
