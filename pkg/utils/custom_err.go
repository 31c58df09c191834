package utils

import "errors"

var (
	ErrGiftNotFound        = errors.New("gift not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSessionNotFound     = errors.New("quiz session not found")
	ErrUnknownOption       = errors.New("unknown answer option")
	ErrStepNotMultiSelect  = errors.New("continue only applies to multi-select steps")
	ErrNoInterestsSelected = errors.New("select at least one interest")
	ErrQuizNotInProgress   = errors.New("quiz is not accepting answers")
	ErrEmptyQuery          = errors.New("query is required")
	ErrInvalidEmail        = errors.New("valid email required")
	ErrUnknownRetailer     = errors.New("unknown retailer")
	ErrNotConfigured       = errors.New("service not configured")
	ErrSuggestionUpstream  = errors.New("suggestion provider failure")
	ErrSubscribeUpstream   = errors.New("email provider failure")
)
