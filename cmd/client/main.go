package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authapi/internal/client/cli"
	"github.com/dmitrijs2005/authapi/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.NewApp(cfg).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
