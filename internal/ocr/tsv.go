package ocr

import (
	"strconv"
	"strings"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// parseTSVTokens parses tesseract TSV output into positioned tokens for a
// single rendered page. The TSV columns are:
//
//	level page_num block_num par_num line_num word_num left top width height conf text
//
// Word rows carry level 5 and a non-negative confidence.
func parseTSVTokens(tsv string, pageNo int) ([]extract.Token, float32) {
	lines := strings.Split(tsv, "\n")

	type lineKey struct{ block, par, line int }
	lineIndex := make(map[lineKey]int)

	var tokens []extract.Token
	var confSum float64
	var confN int

	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		level, _ := strconv.Atoi(cols[0])
		if level != 5 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}

		block, _ := strconv.Atoi(cols[2])
		par, _ := strconv.Atoi(cols[3])
		lineNo, _ := strconv.Atoi(cols[4])
		key := lineKey{block, par, lineNo}
		idx, ok := lineIndex[key]
		if !ok {
			idx = len(lineIndex)
			lineIndex[key] = idx
		}

		left, _ := strconv.ParseFloat(cols[6], 64)
		top, _ := strconv.ParseFloat(cols[7], 64)
		width, _ := strconv.ParseFloat(cols[8], 64)
		height, _ := strconv.ParseFloat(cols[9], 64)

		tokens = append(tokens, extract.Token{
			Value: text,
			Page:  pageNo,
			Line:  idx,
			BBox:  &extract.Rect{X0: left, Y0: top, X1: left + width, Y1: top + height},
			Conf:  float32(conf / 100.0),
		})
		confSum += conf
		confN++
	}

	var mean float32
	if confN > 0 {
		mean = float32(confSum / float64(confN) / 100.0)
	}
	return tokens, mean
}
