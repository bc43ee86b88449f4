package service

import "strconv"

// QuestionsPerPage is the fixed page size for every paginated listing
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the data,
// including pages below 1, are empty rather than an error.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 > len(items)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}

// ParsePage reads a page query parameter, defaulting to 1 when it is
// missing or not an integer.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
