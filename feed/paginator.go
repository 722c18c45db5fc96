package feed

import "strconv"

// Pagination mirrors what the templates need to render page controls.
// Page numbers are 1-based and always clamped into the valid range:
// a missing or malformed number means page 1, a number past the end
// means the last page. An empty result set still has one (empty) page.
type Pagination struct {
	Number   int
	NumPages int
	PerPage  int
	Count    int64
}

func Paginate(count int64, perPage int, requested string) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return Pagination{
		Number:   number,
		NumPages: numPages,
		PerPage:  perPage,
		Count:    count,
	}
}

func (p Pagination) Offset() int { return (p.Number - 1) * p.PerPage }

func (p Pagination) HasPrev() bool { return p.Number > 1 }
func (p Pagination) HasNext() bool { return p.Number < p.NumPages }
func (p Pagination) Prev() int     { return p.Number - 1 }
func (p Pagination) Next() int     { return p.Number + 1 }
