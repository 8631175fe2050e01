// Package main provides the cookbook CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: storage failures are
// system errors, everything else is a user error.
func exitCode(err error) int {
	if errors.Is(err, types.ErrStorageUnavailable) {
		return exitSysError
	}
	return exitUserError
}
