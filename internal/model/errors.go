package model

import "errors"

// Common errors used across the application
var (
	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Chat errors
	ErrEmptyMessage = errors.New("message is empty")

	// Mood errors
	ErrInvalidMood = errors.New("invalid mood")

	// Booking errors
	ErrCounselorNotFound      = errors.New("counselor not found")
	ErrCounselorUnavailable   = errors.New("counselor is not available on that day")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrTimeSlotTaken          = errors.New("time slot is not available")
	ErrInvalidDate            = errors.New("invalid booking date")
	ErrUnsupportedSessionType = errors.New("session type not offered by counselor")
	ErrMissingReason          = errors.New("a reason for the booking is required")
	ErrInvalidUrgency         = errors.New("invalid urgency")

	// Forum errors
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidPost  = errors.New("post title and content are required")
	ErrEmptyReply   = errors.New("reply is empty")

	// Profile settings errors
	ErrInvalidSettings = errors.New("invalid profile settings")

	// Resource library errors
	ErrUnknownCategory     = errors.New("unknown resource category")
	ErrUnknownResourceType = errors.New("unknown resource type")
	ErrResourceNotFound    = errors.New("resource not found")

	// Emergency support errors
	ErrUnknownHelpline = errors.New("unknown helpline number")
	ErrCallInProgress  = errors.New("a call is already connecting")

	// Mindfulness errors
	ErrInvalidDuration = errors.New("meditation length must be between 1 and 60 minutes")

	// Stress check errors
	ErrUnknownAnalysisMode = errors.New("unknown analysis mode")
	ErrPermissionDenied    = errors.New("device permission denied")
)
