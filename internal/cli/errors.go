package cli

import (
	"errors"

	"github.com/dmitrijs2005/policykeeper/internal/common"
)

// usageError is returned for malformed command lines.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

var friendly = []struct {
	err error
	msg string
}{
	{common.ErrInvalidPhone, "Phone numbers need at least 10 digits."},
	{common.ErrPasswordMismatch, "Passwords do not match."},
	{common.ErrPasswordTooShort, "Password is too short."},
	{common.ErrAlreadyRegistered, "This mobile number is already registered."},
	{common.ErrInvalidCredentials, "Wrong mobile number or password."},
	{common.ErrUnauthorized, "Please login first."},
	{common.ErrNotFound, "No customer with that id."},
	{common.ErrUnsupportedFormat, "Unsupported file type. Use .csv, .xlsx or .json."},
	{common.ErrNoCustomers, "There are no customers to share."},
	{common.ErrShareUnsupported, "Sharing is not available here. Export the file and send it manually."},
}

// describe turns an error into the line shown to the user. Known sentinels
// get a fixed message; validation and backup errors keep their detail.
func describe(err error) string {
	var u usageError
	if errors.As(err, &u) {
		return u.Error()
	}
	for _, f := range friendly {
		if errors.Is(err, f.err) {
			return f.msg
		}
	}
	return err.Error()
}
