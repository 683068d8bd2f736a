package cli

import (
	"context"

	"github.com/dmitrijs2005/policykeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readPasswordPair asks for a password and its confirmation. Both slices
// must be wiped by the caller.
func (a *App) readPasswordPair(prompt string) ([]byte, []byte, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return nil, nil, err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, nil, err
	}
	return pw, confirm, nil
}

// Register creates a local account and signs it in.
func (a *App) Register(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	pw, confirm, err := a.readPasswordPair("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	defer common.WipeByteArray(confirm)

	u, err := a.auth.Register(ctx, mobile, string(pw), string(confirm))
	if err != nil {
		return err
	}
	a.setUser(&u)
	a.println("Success! Signed in as", u.MobileNumber)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	pw, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	u, err := a.auth.Login(ctx, mobile, string(pw))
	if err != nil {
		return err
	}
	a.setUser(&u)
	a.println("Signed in as", u.MobileNumber)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setUser(nil)
	a.println("Signed out.")
	return nil
}

// Passwd changes the password of the signed-in account.
func (a *App) Passwd(ctx context.Context) error {
	old, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(old)
	pw, confirm, err := a.readPasswordPair("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	defer common.WipeByteArray(confirm)

	if err := a.auth.ChangePassword(ctx, string(old), string(pw), string(confirm)); err != nil {
		return err
	}
	a.println("Password changed.")
	return nil
}
