package cli

import (
	"fmt"
	"os"

	"rigreport/internal/errors"
)

// HandleError prints a user-facing message for a command error and
// returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, "Error:", errors.GetUserMessage(err))

	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return 2
	}
	return 1
}
