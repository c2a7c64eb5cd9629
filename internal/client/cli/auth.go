package cli

import (
	"context"
	"fmt"
)

type authCall func(ctx context.Context, email, password string) (string, error)

func (a *App) Register(ctx context.Context) error {
	return a.withCredentials(ctx, a.client.Register)
}

func (a *App) Login(ctx context.Context) error {
	return a.withCredentials(ctx, a.client.Login)
}

// withCredentials prompts for email and password and hands them to call.
// The password buffer is wiped once the request is sent.
func (a *App) withCredentials(ctx context.Context, call authCall) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	msg, err := call(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}
