package domain

import "strings"

// HistoryFilter narrows a user's history. Nil fields do not filter.
type HistoryFilter struct {
	Type   *PromptType
	Tone   *Tone
	Search *string

	// FavoritesOnly restricts the result to records with IsFavorite set.
	FavoritesOnly bool
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (Number-1)*Limit far from int overflow.
	MaxPage = 1_000_000
)

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage applies defaults, clamps the limit to [1, MaxLimit] and the page
// number to [1, MaxPage].
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if number > MaxPage {
		number = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Skip returns the number of records before this page.
func (p Page) Skip() int {
	return (p.Number - 1) * p.Limit
}

// SortField names a record field history can be ordered by.
type SortField string

const (
	SortByCreatedAt       SortField = "createdAt"
	SortByOriginalPrompt  SortField = "originalPrompt"
	SortByRewrittenPrompt SortField = "rewrittenPrompt"
	SortByTone            SortField = "tone"
	SortByType            SortField = "type"
	SortByIsFavorite      SortField = "isFavorite"
	SortByUserID          SortField = "userId"
	SortByProcessingTime  SortField = "metadata.processingTime"
	SortByAPICost         SortField = "metadata.apiCost"
	SortByModel           SortField = "metadata.model"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByOriginalPrompt, SortByRewrittenPrompt, SortByTone, SortByType,
		SortByIsFavorite, SortByUserID, SortByProcessingTime, SortByAPICost, SortByModel:
		return true
	}
	return false
}

// SortFields returns every sortable field.
func SortFields() []SortField {
	return []SortField{
		SortByCreatedAt, SortByOriginalPrompt, SortByRewrittenPrompt, SortByTone, SortByType,
		SortByIsFavorite, SortByUserID, SortByProcessingTime, SortByAPICost, SortByModel,
	}
}

// SortFieldList returns the sortable fields joined for error messages.
func SortFieldList() string {
	names := make([]string, 0, 10)
	for _, f := range SortFields() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Sort orders a history listing.
type Sort struct {
	By         SortField
	Descending bool
}

// DefaultSort is newest first.
var DefaultSort = Sort{By: SortByCreatedAt, Descending: true}

// NewSort parses sortBy/sortOrder query values. Empty values select
// DefaultSort; inputs are validated before this, so an unknown field still
// falls back to createdAt.
func NewSort(by, order string) Sort {
	s := Sort{By: SortField(by), Descending: order != "asc"}
	if !s.By.IsValid() {
		s.By = SortByCreatedAt
	}
	return s
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes the pagination block for a page that returned
// `returned` records out of `total` matching ones.
func NewPagination(p Page, returned int, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		CurrentPage: p.Number,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       p.Limit,
		HasNext:     int64(p.Skip()+returned) < total,
		HasPrev:     p.Number > 1,
	}
}
