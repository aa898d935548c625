// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.astrophena.name/commitgate/internal/cli"
	"go.astrophena.name/commitgate/internal/logger"
)

var errTests = errors.New("test suite failed")

// runTests runs the whole suite as one process with its output streamed to
// the user, and inspects only the exit status.
func (g *gate) runTests(ctx context.Context, cfg *config) error {
	env := cli.GetEnv(ctx)

	res, err := g.runCommand(ctx, cfg.Tests.Command, inheritOutput, g.extraEnv)
	if err != nil {
		logger.Debug(ctx, "test runner did not run", slog.Any("error", err))
	}
	if err != nil || res.exitCode != 0 {
		fmt.Fprintln(env.Stdout, "[error] Test suite failed, blocking commit.")
		return errTests
	}

	fmt.Fprintln(env.Stdout, "[success] All tests passed.")
	return nil
}
