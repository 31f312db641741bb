package senado

import "errors"

// ErrInvalidProxyAddress is returned by New when the SOCKS5 proxy address is
// not in "host:port" form.
//
// It is the only error this package returns: request failures are absorbed
// and reported through the logger.
var ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
