package entities

import "errors"

var (
	ErrDuplicateName       = errors.New("duplicate asset name")
	ErrUpstreamUnavailable = errors.New("upstream returned no usable response")
	ErrPage                = errors.New("unexpected page structure")
)
