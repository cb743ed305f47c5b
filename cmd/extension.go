package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external fin-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the effective configuration in its environment
// (see EnvLedgerPath, EnvLedgerCurrency, EnvVerbose).
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fin-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cfg, err := Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerPath+"="+cfg.Path,
		EnvLedgerCurrency+"="+cfg.Currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
	logf("running extension %q %q", lp, args)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
