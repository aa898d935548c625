// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/commitgate/internal/cli"
)

func main() { cli.Main(new(gate)) }

// gate is the pre-commit hook application.
type gate struct {
	install bool
	envFile string

	// runCommand invokes an external command. Tests replace it to script
	// subprocess behavior.
	runCommand runFunc

	// extraEnv holds KEY=VALUE pairs merged into the environment of every
	// child process, populated from -env-file.
	extraEnv []string
}

func (g *gate) Flags(f *flag.FlagSet) {
	f.BoolVar(&g.install, "install", false, "Install the pre-commit hook and exit.")
	f.StringVar(&g.envFile, "env-file", "", "Merge environment variables from `file` into child processes.")
}

func (g *gate) Run(ctx context.Context) error {
	if g.runCommand == nil {
		g.runCommand = run
	}

	if g.envFile != "" {
		extra, err := loadEnvFile(g.envFile)
		if err != nil {
			return err
		}
		g.extraEnv = extra
	}

	if g.install {
		return installHook(cli.GetEnv(ctx))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return g.runStages(ctx, cfg)
}

const hookShellScript = `#!/bin/sh
echo "==> Running commitgate..."
exec commitgate
`

// installHook writes .git/hooks/pre-commit. It refuses to overwrite an
// existing hook.
func installHook(env *cli.Env) error {
	hookPath := filepath.Join(".git", "hooks", "pre-commit")
	if _, err := os.Stat(hookPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite it", hookPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(hookPath, []byte(hookShellScript), 0o755); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Installed %s.\n", hookPath)
	return nil
}
