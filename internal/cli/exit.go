package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/matzehuels/proofgen/pkg/errors"
)

// Exit statuses returned by [Report].
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2   // rejected input
	ExitCancelled = 130 // interrupted, as shells report SIGINT
)

// Report prints err for the user and returns the process exit status.
// Rejected input prints only its message; cancellation prints nothing.
func Report(w io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.IsValidation(err):
		fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
		return ExitUsage
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+err.Error())
	return ExitFailure
}
