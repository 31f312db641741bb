// Package model defines the flat records produced from Senate API responses
// and the Dataset that accumulates them during an export run.
//
// Every row type has a fixed, ordered column set exposed through its Header
// and Record methods. Exporters and the CSV round-trip depend on that order,
// so columns must never be reordered or renamed.
//
// All cells are strings. Numeric identifiers from the API are stored in their
// decimal text form, which keeps leading zeros in fields such as Numero intact.
package model
