// Package envelope decodes the JSON documents returned by the Senate open-data
// API into weakly-typed values and provides explicit accessors over them.
//
// The API wraps every entity in several layers of objects (the envelope) and is
// inconsistent about cardinality: a path that normally holds an array holds a
// bare object when exactly one result exists. Callers navigate with Path,
// ObjectAt and ListAt instead of unwrapping nested maps by hand, and every
// list-shaped result goes through ToList so the single-result case looks the
// same as the many-results case.
//
// Numbers are decoded as json.Number so that identifiers such as
// CodigoParlamentar keep their exact textual form.
package envelope
