package decimal

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

// Errors returned by operations whose preconditions are violated. They
// are returned unwrapped: errors.Is identity and Error.Has class
// membership both hold. No operation mutates its receiver before the
// precondition check fires.
var (
	ErrInvalidNumber                  = Error.New("invalid number")
	ErrDivisionByZero                 = Error.New("division by zero")
	ErrInvalidStep                    = Error.New("invalid step")
	ErrInvalidRange                   = Error.New("invalid range")
	ErrInvalidRootDegree              = Error.New("invalid root degree")
	ErrEvenRootOfNegative             = Error.New("even root of negative value")
	ErrZeroNegativePower              = Error.New("zero raised to negative power")
	ErrNegativeBaseFractionalExponent = Error.New("fractional exponent requires non-negative base")
	ErrLogDomain                      = Error.New("logarithm argument or base out of domain")
	ErrOrderUndefinedForZero          = Error.New("order undefined for zero")
	ErrNegativeTolerance              = Error.New("negative tolerance")
)
