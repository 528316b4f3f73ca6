package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

var (
	ErrorInternal = errors.New("Internal whirl error")
	ErrorArg      = errors.New("Invalid options provided")
)

// ExitError carries the exit status of a command run by exec.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	fmt.Fprintf(dest, "%s: %s\n", aurora.Red("Error"), err)

	if errors.Is(err, ErrorArg) {
		return err
	}

	return fmt.Errorf("%w: %s", ErrorInternal, err)
}
