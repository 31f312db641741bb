// Package senado is a thin client for the Brazilian Federal Senate open-data
// API (https://legis.senado.leg.br/dadosabertos).
//
// A Client owns one resty session with a fixed base URL, fixed headers and a
// TLS configuration pinned to TLS 1.2. It exposes a generic Request method and
// one method per endpoint consumed by the exporter. Each endpoint method
// unwraps a fixed path out of the response envelope.
//
// No method returns an error. Transport failures, non-2xx statuses, bodies
// that are not JSON objects and missing envelope paths are logged and then
// degrade to an empty object or an empty list. An empty result can therefore
// mean either "nothing found" or "the call failed"; the logs tell them apart.
//
// Timeouts: unless WithTimeout is used, no overall request timeout is set,
// which is the net/http default. A stalled server then blocks until the
// context passed to the method is cancelled.
package senado
