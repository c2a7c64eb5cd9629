package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authapi/internal/client/client"
	"github.com/dmitrijs2005/authapi/internal/client/config"
	"github.com/dmitrijs2005/authapi/internal/flagx"
)

// ErrUsage is returned when the command line names no known command.
var ErrUsage = errors.New("usage: client [-a url] [-t timeout] [-c file] register|login")

type App struct {
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return newApp(client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(c client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), out: out}
}

// Run executes the single command found among args (os.Args[1:] style).
func (a *App) Run(ctx context.Context, args []string) error {
	cmds := flagx.Positional(args, config.ValueFlags)
	if len(cmds) != 1 {
		return ErrUsage
	}

	switch cmds[0] {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", cmds[0], ErrUsage)
	}
}
