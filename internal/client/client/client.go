package client

import "context"

type Client interface {
	// Register creates an account and returns the server's message.
	Register(ctx context.Context, email, password string) (string, error)
	// Login checks credentials and returns the server's message.
	Login(ctx context.Context, email, password string) (string, error)
}
