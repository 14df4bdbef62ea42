// Package pagination parses the numberOfItems/pageNumber/searchQuery triple
// shared by every list endpoint.
package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultNumberOfItems = 10
	MaxNumberOfItems     = 100
	DefaultPageNumber    = 1

	// MaxOffset bounds (pageNumber-1)*numberOfItems so it fits every SQL dialect.
	MaxOffset = math.MaxInt32
)

type Page struct {
	NumberOfItems int
	PageNumber    int
	SearchQuery   string
}

func Default() Page {
	return Page{NumberOfItems: DefaultNumberOfItems, PageNumber: DefaultPageNumber}
}

// Parse builds a Page from raw query values. Empty values fall back to the
// defaults; anything non-numeric or out of range is rejected.
func Parse(numberOfItems, pageNumber, searchQuery string) (Page, error) {
	page := Default()
	page.SearchQuery = strings.TrimSpace(searchQuery)

	if numberOfItems != "" {
		n, err := strconv.Atoi(numberOfItems)
		if err != nil || n < 1 || n > MaxNumberOfItems {
			return Page{}, fmt.Errorf("numberOfItems must be an integer between 1 and %d", MaxNumberOfItems)
		}
		page.NumberOfItems = n
	}

	if pageNumber != "" {
		n, err := strconv.Atoi(pageNumber)
		if err != nil || n < 1 {
			return Page{}, fmt.Errorf("pageNumber must be a positive integer")
		}
		if n-1 > MaxOffset/page.NumberOfItems {
			return Page{}, fmt.Errorf("pageNumber must be at most %d for numberOfItems=%d", MaxOffset/page.NumberOfItems+1, page.NumberOfItems)
		}
		page.PageNumber = n
	}

	return page, nil
}

func (p Page) Offset() int {
	return (p.PageNumber - 1) * p.NumberOfItems
}

func (p Page) Limit() int {
	return p.NumberOfItems
}
