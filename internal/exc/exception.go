// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
)

type Exception interface {
	error
	Code() string
	Message() string
	// Subject names the input the exception is about, such as a flag name.
	// It may be empty.
	Subject() string
}

type exc struct {
	code    string
	message string
	subject string
}

func (e *exc) Error() string {
	if e.subject == "" {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}
	return fmt.Sprintf("%s -- %s: %s", e.subject, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Subject() string {
	return e.subject
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(subject string, code string, message string) Exception {
	return &exc{
		subject: subject,
		message: message,
		code:    code,
	}
}

func Newf(subject string, code string, format string, args ...any) Exception {
	return New(subject, code, fmt.Sprintf(format, args...))
}

func Wrap(subject string, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(subject, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(subject, code, err.Error()),
	}
}

func WrapUnknown(subject string, err error) Exception {
	return Wrap(subject, CodeUnknownFatal, err)
}
