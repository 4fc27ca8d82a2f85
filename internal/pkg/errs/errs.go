package errs

import (
	"fmt"
	"strings"

	"errors"
)

// Sentinel errors for each error kind. They are exposed so callers can
// classify errors with errors.Is without depending on the concrete types.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrSlotIsTaken       = errors.New("slot is taken")
	ErrActionIsForbidden = errors.New("action is forbidden")
	ErrStateIsInvalid    = errors.New("state is invalid")
)

// sanitize strips newlines from values before they are interpolated into
// error messages, keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf(
		"%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max),
	)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(
			"%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause,
		)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// SlotIsTakenError indicates the requested pickup slot is already occupied
// by another active order.
type SlotIsTakenError struct {
	Slot  string
	Cause error
}

func NewSlotIsTakenError(slot string) *SlotIsTakenError {
	return &SlotIsTakenError{Slot: slot}
}

func NewSlotIsTakenErrorWithCause(slot string, cause error) *SlotIsTakenError {
	return &SlotIsTakenError{Slot: slot, Cause: cause}
}

func (e *SlotIsTakenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrSlotIsTaken, sanitize(e.Slot), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrSlotIsTaken, sanitize(e.Slot))
}

func (e *SlotIsTakenError) Unwrap() error {
	return ErrSlotIsTaken
}

// ActionIsForbiddenError indicates the caller lacks the organization or
// admin relationship an operation requires.
type ActionIsForbiddenError struct {
	Action string
	Cause  error
}

func NewActionIsForbiddenError(action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action}
}

func NewActionIsForbiddenErrorWithCause(action string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action, Cause: cause}
}

func (e *ActionIsForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrActionIsForbidden, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrActionIsForbidden, e.Action)
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// StateIsInvalidError indicates an entity exists but is not in a state that
// permits the requested action. Kept distinct from ObjectNotFoundError so
// callers can tell "no such order" from "order is past the point of change".
type StateIsInvalidError struct {
	State  string
	Action string
	Cause  error
}

func NewStateIsInvalidError(state, action string) *StateIsInvalidError {
	return &StateIsInvalidError{State: state, Action: action}
}

func NewStateIsInvalidErrorWithCause(state, action string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{State: state, Action: action, Cause: cause}
}

func (e *StateIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(
			"%s: %s is not a valid state to %s (cause: %s)",
			ErrStateIsInvalid, e.State, e.Action, e.Cause,
		)
	}
	return fmt.Sprintf("%s: %s is not a valid state to %s", ErrStateIsInvalid, e.State, e.Action)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}
