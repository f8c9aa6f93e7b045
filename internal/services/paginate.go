package services

import (
	"math"
)

// Page describes one window of an ordered collection. Requested numbers are
// clamped, never rejected: anything below 1 becomes page 1, anything past the
// end becomes the last page, so a positive page number always yields results.
type Page struct {
	Number     int
	TotalPages int
	PerPage    int
	Total      int64
}

// NewPage computes the page window for a 1-indexed requested page.
func NewPage(total int64, perPage, requested int) Page {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		// An empty collection still has one (empty) page so page links render.
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		TotalPages: totalPages,
		PerPage:    perPage,
		Total:      total,
	}
}

// Offset is the number of items preceding this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}
