package mixin

import "github.com/ygrebnov/mixin/errors"

// Sentinel errors re-exported from the errors subpackage so callers can match
// composer failures without an extra import. Use errors.Is to match.
var (
	ErrNilConstructor       = errors.ErrNilConstructor
	ErrNotStruct            = errors.ErrNotStruct
	ErrInvalidBehavior      = errors.ErrInvalidBehavior
	ErrBehaviorNotFound     = errors.ErrBehaviorNotFound
	ErrFieldNotFound        = errors.ErrFieldNotFound
	ErrFieldNotAssignable   = errors.ErrFieldNotAssignable
	ErrNilTarget            = errors.ErrNilTarget
	ErrTargetNotStructPtr   = errors.ErrTargetNotStructPtr
	ErrNilInstance          = errors.ErrNilInstance
	ErrReceiverTypeMismatch = errors.ErrReceiverTypeMismatch
)
