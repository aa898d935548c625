// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"go.astrophena.name/commitgate/internal/cli"
	"go.astrophena.name/commitgate/internal/logger"
)

var errDocs = errors.New("documentation build produced errors")

// runDocs builds the documentation with the builder's warning and error
// stream directed to the log artifact, and fails if the artifact is
// non-empty afterward. The builder's own exit status and output are
// ignored; only the log decides the outcome.
func (g *gate) runDocs(ctx context.Context, cfg *config) error {
	env := cli.GetEnv(ctx)

	// The log artifact must not survive the stage, whether the build
	// passed or not.
	defer func() {
		if err := os.Remove(cfg.Docs.Log); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warn(ctx, "removing doc log", slog.Any("error", err))
		}
	}()

	argv := append(append([]string{}, cfg.Docs.Command...), "-w", cfg.Docs.Log, cfg.Docs.Source, cfg.Docs.Output)
	if _, err := g.runCommand(ctx, argv, discardOutput, g.extraEnv); err != nil {
		logger.Debug(ctx, "documentation builder did not run", slog.Any("error", err))
	}

	log, err := os.ReadFile(cfg.Docs.Log)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if len(log) > 0 {
		fmt.Fprintln(env.Stdout, "[error] Documentation build produced errors, blocking commit:")
		fmt.Fprint(env.Stdout, string(log))
		return errDocs
	}

	fmt.Fprintln(env.Stdout, "[success] Documentation builds without errors.")
	return nil
}
