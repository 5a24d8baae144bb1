package invoice

import (
	"regexp"
	"strings"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

var (
	reControl = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
	reSpaces  = regexp.MustCompile(`[ \t]+`)

	// reNumericToken matches qty/amount-shaped tokens, with optional
	// thousands separators and up to three decimals.
	reNumericToken = regexp.MustCompile(`^₹?\$?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,3})?$`)

	// reHyphenWrap matches a word fragment broken by a line wrap.
	reHyphenWrap = regexp.MustCompile(`[A-Za-z]-$`)
)

// Normalize cleans OCR artifacts out of the token stream and groups tokens
// into lines preserving reading order. It is deterministic and idempotent;
// it has no failure modes.
func Normalize(tokens []extract.Token) []NormalizedLine {
	type key struct{ page, line int }

	var order []key
	byLine := make(map[key][]extract.Token)

	for _, t := range tokens {
		v := reControl.ReplaceAllString(t.Value, "")
		v = strings.TrimSpace(reSpaces.ReplaceAllString(v, " "))
		if v == "" {
			continue
		}
		t.Value = v
		k := key{t.Page, t.Line}
		if _, seen := byLine[k]; !seen {
			order = append(order, k)
		}
		byLine[k] = append(byLine[k], t)
	}

	lines := make([]NormalizedLine, 0, len(order))
	for _, k := range order {
		toks := byLine[k]
		parts := make([]string, len(toks))
		for i, t := range toks {
			parts[i] = t.Value
		}
		lines = append(lines, NormalizedLine{
			Page:   k.page,
			Line:   k.line,
			Tokens: toks,
			Text:   strings.Join(parts, " "),
		})
	}

	return mergeHyphenWraps(lines)
}

// mergeHyphenWraps joins a line ending mid-word with the following line.
// The merge is skipped when either side looks numeric, so quantity and
// amount tokens are never corrupted.
func mergeHyphenWraps(lines []NormalizedLine) []NormalizedLine {
	out := make([]NormalizedLine, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := lines[i]
		for i+1 < len(lines) && wrapsInto(cur, lines[i+1]) {
			next := lines[i+1]

			last := cur.Tokens[len(cur.Tokens)-1]
			last.Value = strings.TrimSuffix(last.Value, "-") + next.Tokens[0].Value
			merged := make([]extract.Token, 0, len(cur.Tokens)+len(next.Tokens)-1)
			merged = append(merged, cur.Tokens[:len(cur.Tokens)-1]...)
			merged = append(merged, last)
			merged = append(merged, next.Tokens[1:]...)

			parts := make([]string, len(merged))
			for j, t := range merged {
				parts[j] = t.Value
			}
			cur = NormalizedLine{Page: cur.Page, Line: cur.Line, Tokens: merged, Text: strings.Join(parts, " ")}
			i++
		}
		out = append(out, cur)
	}
	return out
}

func wrapsInto(cur, next NormalizedLine) bool {
	if cur.Page != next.Page || len(cur.Tokens) == 0 || len(next.Tokens) == 0 {
		return false
	}
	last := cur.Tokens[len(cur.Tokens)-1].Value
	if !reHyphenWrap.MatchString(last) {
		return false
	}
	head := next.Tokens[0].Value
	if reNumericToken.MatchString(head) {
		return false
	}
	// Never merge into a row that carries amounts.
	for _, t := range next.Tokens {
		if reNumericToken.MatchString(t.Value) && strings.Contains(t.Value, ".") {
			return false
		}
	}
	return head != "" && !strings.HasPrefix(head, "-")
}
