package tier

import "github.com/regbook/regbook/internal/model"

// charsPerPage models ~400 words/page at ~6 chars/word.
const charsPerPage = 2400

// fixedPageOverhead covers cover page, document control and contents.
const fixedPageOverhead = 3

// EstimatePageCount approximates the printed length of a tiered
// document. UI feedback only; never used for truncation decisions.
// An empty document estimates to exactly the fixed overhead.
func EstimatePageCount(sections []model.TieredSection) int {
	total := 0
	for _, sec := range sections {
		for _, c := range sec.Clauses {
			total += len(c.Content) + len(c.Title)*2
		}
	}
	pages := (total + charsPerPage - 1) / charsPerPage
	return pages + fixedPageOverhead
}
