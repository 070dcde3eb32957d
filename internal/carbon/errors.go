package carbon

import "fmt"

// CalculationError reports an unexpected failure during estimation for a
// category. Validation failures are not CalculationErrors; they are the
// ordered message lists returned by Input.Validate.
type CalculationError struct {
	Category Category
	Cause    error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculating %s footprint: %v", e.Category.Name(), e.Cause)
}

func (e *CalculationError) Unwrap() error {
	return e.Cause
}
