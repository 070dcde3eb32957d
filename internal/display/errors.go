package display

import "errors"

// ErrZeroConversionFactor reports a misconfigured equivalency divisor.
// It is distinct from a valid zero-valued result: a zero footprint formats
// as zero, a zero divisor is a configuration error.
var ErrZeroConversionFactor = errors.New("conversion factor is zero")
