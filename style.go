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

var errStyle = errors.New("staged file does not conform to the style guide")

// runStyle checks every staged source file with the formatter in diff-only
// mode and fails on the first file that would be reformatted. Files after
// the first violation are never checked. An empty staged set passes
// silently.
func (g *gate) runStyle(ctx context.Context, cfg *config) error {
	env := cli.GetEnv(ctx)

	files, err := g.stagedFiles(ctx, cfg.Style.Extension)
	if err != nil {
		return err
	}

	for _, file := range files {
		argv := append(append([]string{}, cfg.Style.Command...), file)
		res, err := g.runCommand(ctx, argv, captureOutput, g.extraEnv)
		if err != nil {
			// A formatter that can't be started produces no diff and the
			// file passes. Surfaced in the debug log only.
			logger.Debug(ctx, "formatter did not run", slog.String("file", file), slog.Any("error", err))
		}
		if len(res.stdout) > 0 {
			fmt.Fprintf(env.Stdout, "[error] %s does not conform to the style guide, blocking commit.\n", file)
			return errStyle
		}
		fmt.Fprintf(env.Stdout, "[success] %s conforms to the style guide.\n", file)
	}
	return nil
}
