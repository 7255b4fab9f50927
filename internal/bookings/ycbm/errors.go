package ycbm

import "errors"

var (
	// ErrUpstream wraps every failure talking to the provider: network
	// errors, non-2xx statuses and undecodable bodies. The caller surfaces
	// it as a failed request; no retry happens at this layer.
	ErrUpstream = errors.New("ycbm client: upstream request failed")

	// ErrInternal is returned when the request could not even be built.
	ErrInternal = errors.New("ycbm client: internal error")
)
