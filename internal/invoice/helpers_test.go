package invoice

import (
	"strings"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// tokensFor builds a page-1 token stream from plain text lines, one token per
// whitespace-separated word, full confidence.
func tokensFor(texts ...string) []extract.Token {
	var toks []extract.Token
	for i, line := range texts {
		for _, w := range strings.Fields(line) {
			toks = append(toks, extract.Token{Value: w, Page: 1, Line: i, Conf: 1.0})
		}
	}
	return toks
}

func docLines(texts ...string) []NormalizedLine {
	return Normalize(tokensFor(texts...))
}

// sampleInvoice is a clean digital tax invoice that every component can
// resolve at its highest tier.
var sampleInvoice = []string{
	"Tax Invoice",
	"ACME TRADERS PVT LTD",
	"GSTIN: 32AAAAA0000A1Z5",
	"12 Industrial Estate Kochi 682001 Kerala",
	"Invoice No: INV-1001 Dated: 12-Apr-2025",
	"Buyer: Retail Mart",
	"GSTIN: 29BBBBB1111B1Z6",
	"Sl Description HSN Qty Rate Amount",
	"1 Copper Wire 8544 10 150.00 1,500.00",
	"2 Switch Board 8536 5 200.00 1,000.00",
	"Sub Total 2,500.00",
	"CGST 9% 225.00",
	"SGST 9% 225.00",
	"Grand Total 2,950.00",
}
