package main

import (
	"context"
	"errors"

	"github.com/thecodeteam/goodbye"

	"github.com/elseano/whirl/cmd/whirl/cmd"
)

var GitCommit string
var Version string

func main() {
	ctx := context.Background()
	goodbye.Notify(ctx)

	err := cmd.Execute(Version, GitCommit)

	var exitErr *cmd.ExitError

	switch {
	case err == nil:
		goodbye.Exit(ctx, 0)
	case errors.As(err, &exitErr):
		goodbye.Exit(ctx, exitErr.Code)
	case errors.Is(err, cmd.ErrorArg):
		goodbye.Exit(ctx, 128)
	case errors.Is(err, cmd.ErrorInternal):
		goodbye.Exit(ctx, 129)
	}

	goodbye.Exit(ctx, 3)
}
