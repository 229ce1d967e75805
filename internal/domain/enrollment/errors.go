package enrollment

import "errors"

var (
	ErrClientNotFound     = errors.New("client not found in this gym")
	ErrPlanNotFound       = errors.New("plan not found in this gym")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)
