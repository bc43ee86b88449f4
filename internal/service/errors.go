package service

import "errors"

// Common service errors
var (
	ErrNoCategories  = errors.New("no categories found")
	ErrPageEmpty     = errors.New("no questions on requested page")
	ErrNoMatches     = errors.New("no questions match search term")
	ErrQuizExhausted = errors.New("no questions left for quiz")
)
