package event

// QuantityError carries the uncertainty of a measured quantity. All fields
// are optional; a bare number used where a QuantityError is expected means
// symmetric uncertainty.
type QuantityError struct {
	Uncertainty      *float64
	LowerUncertainty *float64
	UpperUncertainty *float64
	ConfidenceLevel  *float64
}

// NewQuantityError returns a QuantityError with symmetric uncertainty u.
func NewQuantityError(u float64) *QuantityError {
	return &QuantityError{Uncertainty: &u}
}
