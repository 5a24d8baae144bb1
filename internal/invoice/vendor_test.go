package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyVendorPicksSellerBlock(t *testing.T) {
	v := identifyVendor(docLines(sampleInvoice...), 35)

	require.NotNil(t, v)
	assert.Equal(t, "ACME TRADERS PVT LTD", v.Name)
	assert.Equal(t, "32AAAAA0000A1Z5", v.GSTIN)
}

func TestIdentifyVendorExcludesBuyerBlock(t *testing.T) {
	lines := docLines(
		"Bill To: Retail Mart Pvt Ltd",
		"45 Market Road Bengaluru",
		"GSTIN: 29BBBBB1111B1Z6",
		"some footer",
	)
	v := identifyVendor(lines, 35)

	// The only GSTIN on the page sits inside a buyer block, so the vendor
	// stays unresolved rather than mis-attributed.
	assert.Nil(t, v)
}

func TestIdentifyVendorNoGSTINMeansUnresolved(t *testing.T) {
	lines := docLines(
		"ACME TRADERS PVT LTD",
		"12 Industrial Estate Kochi",
		"Invoice No: INV-7 Dated: 01-05-2025",
	)
	assert.Nil(t, identifyVendor(lines, 35))
}

func TestIdentifyVendorAddressContextBoostsScore(t *testing.T) {
	withAddr := identifyVendor(docLines(
		"ACME TRADERS PVT LTD",
		"GSTIN: 32AAAAA0000A1Z5",
		"Kochi 682001 Kerala",
	), 35)
	bare := identifyVendor(docLines(
		"ACME TRADERS PVT LTD",
		"GSTIN: 32AAAAA0000A1Z5",
	), 35)

	require.NotNil(t, withAddr)
	require.NotNil(t, bare)
	assert.Greater(t, withAddr.Score, bare.Score)
}

func TestIdentifyVendorCapturesContact(t *testing.T) {
	v := identifyVendor(docLines(
		"ACME TRADERS PVT LTD",
		"GSTIN: 32AAAAA0000A1Z5",
		"sales@acmetraders.in 9447012345",
	), 35)

	require.NotNil(t, v)
	assert.Equal(t, "sales@acmetraders.in", v.Email)
	assert.Equal(t, "+919447012345", v.Phone)
}

func TestIdentifyVendorIgnoresGSTINBelowScanRegion(t *testing.T) {
	var texts []string
	for i := 0; i < 40; i++ {
		texts = append(texts, "filler line without anything useful")
	}
	texts = append(texts, "LATE VENDOR LTD", "GSTIN: 32AAAAA0000A1Z5")

	assert.Nil(t, identifyVendor(docLines(texts...), 35))
}
