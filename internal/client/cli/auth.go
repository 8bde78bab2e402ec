package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for an email and password and signs in against the
// identity provider. The password byte slice is wiped before returning. On
// success the email is shown in the prompt status.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		a.log.Error(ctx, "sign-in failed", "error", err)
		return err
	}

	a.email = email
	fmt.Println("Signed in.")
	return nil
}

// Logout signs out, forgetting the cached tokens and the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	a.email = ""
	a.fetched = nil
	fmt.Println("Signed out.")
	return nil
}
