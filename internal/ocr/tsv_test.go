package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t1240\t1754\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t102\t88\t130\t24\t96.5\tTax\n" +
	"5\t1\t1\t1\t1\t2\t240\t88\t160\t24\t95.1\tInvoice\n" +
	"5\t1\t1\t1\t2\t1\t102\t130\t210\t24\t91.0\tACME\n" +
	"5\t1\t1\t1\t2\t2\t320\t130\t180\t24\t-1\t \n" +
	"5\t1\t1\t1\t2\t3\t510\t130\t140\t24\t88.4\tTRADERS\n"

func TestParseTSVTokens(t *testing.T) {
	tokens, conf := parseTSVTokens(sampleTSV, 3)

	require.Len(t, tokens, 4)
	assert.Equal(t, "Tax", tokens[0].Value)
	assert.Equal(t, 3, tokens[0].Page)
	assert.Equal(t, 0, tokens[0].Line)
	assert.Equal(t, 1, tokens[2].Line, "second physical line gets the next index")

	require.NotNil(t, tokens[0].BBox)
	assert.InDelta(t, 102.0, tokens[0].BBox.X0, 0.01)
	assert.InDelta(t, 232.0, tokens[0].BBox.X1, 0.01)

	assert.InDelta(t, 0.965, float64(tokens[0].Conf), 0.001)
	// Mean over the four confident words: (96.5+95.1+91.0+88.4)/4/100.
	assert.InDelta(t, 0.9275, float64(conf), 0.001)
}

func TestParseTSVTokensSkipsNonWordRows(t *testing.T) {
	tokens, conf := parseTSVTokens("level\tpage\n1\t1\n", 1)
	assert.Empty(t, tokens)
	assert.Zero(t, conf)
}
