// Package errors provides the coded error type used throughout the transaction handler.
//
// Every error carries an ERR code so callers can classify failures with Is
// without string matching, regardless of how deeply the error was wrapped.
package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type Error struct {
	code       ERR
	message    string
	wrappedErr error
	data       ErrDataI
}

type Interface interface {
	Error() string
	Is(target error) bool
	As(target interface{}) bool
	Unwrap() error

	Code() ERR
	Message() string
	WrappedErr() error
	Data() ErrDataI
}

// New creates an error with the given code. The message is formatted with params; when the
// last param is an error it is wrapped instead of formatted.
func New(code ERR, message string, params ...interface{}) *Error {
	params, wrapped := splitWrapped(params)

	if _, ok := ERR_name[int32(code)]; !ok {
		return &Error{code: code, message: "invalid error code", wrappedErr: wrapped}
	}

	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}

	return &Error{code: code, message: message, wrappedErr: wrapped}
}

// splitWrapped removes a trailing error from params. Foreign errors become ERR_ERROR so the
// chain below an *Error only ever holds *Error values.
func splitWrapped(params []interface{}) ([]interface{}, error) {
	if len(params) == 0 {
		return params, nil
	}

	switch last := params[len(params)-1].(type) {
	case *Error:
		return params[:len(params)-1], last
	case error:
		return params[:len(params)-1], &Error{code: ERR_ERROR, message: last.Error()}
	default:
		return params, nil
	}
}

func (e *Error) Error() string {
	// predefined errors are sometimes wrapped as typed nils
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Error: %s (error code: %d), Message: %v", e.code, e.code, e.message)

	if e.wrappedErr != nil {
		fmt.Fprintf(&sb, ", Wrapped err: %v", e.wrappedErr)
	}

	if e.data != nil {
		if dataMsg := e.data.Error(); dataMsg != "" {
			sb.WriteString(", Data:")
			sb.WriteString(dataMsg)
		}
	}

	return sb.String()
}

// Is matches on code anywhere along the chain of wrapped *Error values. A target that is not
// an *Error matches when its text appears in the text of e.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}

	targetErr, ok := target.(*Error)
	if !ok {
		return strings.Contains(e.Error(), target.Error())
	}

	for cur := e; cur != nil; {
		if cur.code == targetErr.code {
			return true
		}

		next, ok := cur.wrappedErr.(*Error)
		if !ok {
			return false
		}

		cur = next
	}

	return false
}

func (e *Error) As(target interface{}) bool {
	if e == nil {
		return false
	}

	if targetErr, ok := target.(**Error); ok {
		*targetErr = e
		return true
	}

	if dataErr, ok := e.data.(error); ok && errors.As(dataErr, target) {
		return true
	}

	if isNilError(e.wrappedErr) {
		return false
	}

	return errors.As(e.wrappedErr, target)
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}

	v := reflect.ValueOf(err)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.wrappedErr
}

func (e *Error) Code() ERR {
	if e == nil {
		return ERR_UNKNOWN
	}

	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) WrappedErr() error {
	return e.Unwrap()
}

func (e *Error) Data() ErrDataI {
	if e == nil {
		return nil
	}

	return e.data
}

// SetData attaches a key/value pair that is printed with the error and survives EncodeErrorData.
func (e *Error) SetData(key string, value interface{}) {
	if e.data == nil {
		e.data = &ErrData{}
	}

	e.data.SetData(key, value)
}

func (e *Error) GetData(key string) interface{} {
	if e.data == nil {
		return nil
	}

	return e.data.GetData(key)
}

// Join flattens the non-nil errors into a single comma separated message.
func Join(errs ...error) error {
	messages := make([]string, 0, len(errs))

	for _, err := range errs {
		if err != nil {
			messages = append(messages, err.Error())
		}
	}

	if len(messages) == 0 {
		return nil
	}

	return errors.New(strings.Join(messages, ", "))
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reaches *Error.As as well as anything wrapped with fmt.Errorf("%w").
func As(err error, target any) bool {
	return errors.As(err, target)
}

// CodeOf returns the code of the outermost *Error in err's chain, or ERR_UNKNOWN.
func CodeOf(err error) ERR {
	var tErr *Error
	if As(err, &tErr) {
		return tErr.Code()
	}

	return ERR_UNKNOWN
}
