package service

import "errors"

var (
	// ErrInsufficientText is returned when an upload yields fewer than 20 characters of text.
	ErrInsufficientText = errors.New("파일에서 충분한 텍스트를 추출하지 못했습니다")
	// ErrPageUnavailable is returned when a scraped page has neither text nor title.
	ErrPageUnavailable = errors.New("page content could not be fetched")
	// ErrEventNotFound is returned when a calendar event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrSubscriptionNotFound is returned when a clipping subscription does not exist.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)
