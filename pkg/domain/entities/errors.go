package entities

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when the optimizer is called with zero cart lines
var ErrEmptyCart = errors.New("cart has no lines")

// InvalidQueryError indicates a malformed or under-specified part search query
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid part query: %s", e.Reason)
}

// NoAvailableOfferError indicates a cart line with no in-stock offer that can
// cover the requested quantity. It is fatal to the whole optimization.
type NoAvailableOfferError struct {
	PartID PartID
}

func (e *NoAvailableOfferError) Error() string {
	return fmt.Sprintf("no available offer for part %s", e.PartID)
}

// SourceUnavailableError records a failed offer source lookup. It is never
// fatal to an aggregate search.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("offer source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ShippingRuleMissingError records a supplier with no configured shipping
// rule. A conservative default rule is substituted instead of failing.
type ShippingRuleMissingError struct {
	SupplierCode SupplierCode
}

func (e *ShippingRuleMissingError) Error() string {
	return fmt.Sprintf("no shipping rule for supplier %s, using default", e.SupplierCode)
}

// DiagnosticCode classifies a non-fatal condition surfaced alongside results
type DiagnosticCode string

const (
	DiagSourceUnavailable   DiagnosticCode = "source_unavailable"
	DiagShippingRuleMissing DiagnosticCode = "shipping_rule_missing"
)

// Diagnostic represents a non-fatal condition recorded during a call so the
// caller can warn the user without blocking the operation
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Message string         `json:"message"`
}

// NewDiagnostic builds a diagnostic from any recordable error
func NewDiagnostic(code DiagnosticCode, err error) Diagnostic {
	return Diagnostic{Code: code, Message: err.Error()}
}
