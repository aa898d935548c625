// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"go.astrophena.name/commitgate/internal/cli"
	"go.astrophena.name/commitgate/internal/logger"
)

// A stage is one check of the gate. Stages run in a fixed order and the
// first failure stops the sequence; a stage never starts after an earlier
// one failed.
type stage struct {
	name string
	run  func(context.Context, *config) error
}

func (g *gate) stages() []stage {
	return []stage{
		{"docs build", g.runDocs},
		{"style check", g.runStyle},
		{"test suite", g.runTests},
	}
}

func (g *gate) runStages(ctx context.Context, cfg *config) error {
	env := cli.GetEnv(ctx)
	stages := g.stages()
	for i, st := range stages {
		fmt.Fprintln(env.Stderr, progressMessage(i+1, len(stages), st.name, terminalWidth(env)))
		logger.Debug(ctx, "running stage", slog.String("stage", st.name))
		if err := st.run(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth(env *cli.Env) int {
	f, ok := env.Stderr.(*os.File)
	if !ok || !cli.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// progressMessage formats the stage announcement, trimming it to the
// terminal width. A width of zero or less means no trimming.
func progressMessage(current, total int, name string, width int) string {
	const ellipsis = "..."
	prefix := fmt.Sprintf("[%d/%d] Running ", current, total)
	msg := prefix + name
	if width <= 0 || len(msg) <= width {
		return msg
	}
	if width <= len(prefix) {
		return prefix
	}
	if width-len(prefix) <= len(ellipsis) {
		return msg[:width]
	}
	return msg[:width-len(ellipsis)] + ellipsis
}
