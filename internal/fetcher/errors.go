package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrNoProxies is returned when a proxy ring is built from a list without any usable entry.
	ErrNoProxies = errors.New("no usable proxies configured")
)
