// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.astrophena.name/commitgate/internal/cli"
)

// outputMode selects what happens to a child process' stdout and stderr.
//
// All three checks share the same invocation path; only the output policy
// differs between them.
type outputMode int

const (
	// discardOutput silences the child completely.
	discardOutput outputMode = iota
	// captureOutput collects the child's stdout for inspection and
	// silences its stderr.
	captureOutput
	// inheritOutput streams the child's output to the gate's own stdout
	// and stderr.
	inheritOutput
)

// runResult describes a finished child process.
type runResult struct {
	exitCode int
	stdout   []byte
}

// runFunc invokes argv[0] with the remaining arguments and waits for it to
// exit. A non-zero exit status is not an error; err is non-nil only when
// the process could not be run at all.
type runFunc func(ctx context.Context, argv []string, mode outputMode, extraEnv []string) (runResult, error)

func run(ctx context.Context, argv []string, mode outputMode, extraEnv []string) (runResult, error) {
	env := cli.GetEnv(ctx)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if len(extraEnv) > 0 {
		// The real environment comes last, so it wins on conflict.
		cmd.Env = append(extraEnv, os.Environ()...)
	}

	var stdout bytes.Buffer
	switch mode {
	case discardOutput:
		cmd.Stdout, cmd.Stderr = io.Discard, io.Discard
	case captureOutput:
		cmd.Stdout, cmd.Stderr = &stdout, io.Discard
	case inheritOutput:
		cmd.Stdout, cmd.Stderr = env.Stdout, env.Stderr
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return runResult{exitCode: exitErr.ExitCode(), stdout: stdout.Bytes()}, nil
	}
	if err != nil {
		return runResult{exitCode: -1}, err
	}
	return runResult{stdout: stdout.Bytes()}, nil
}
