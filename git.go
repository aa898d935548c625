// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"strings"
)

// stagedFiles returns the paths staged for commit that end with ext, in
// the order git reports them. Deleted files are excluded since there is
// nothing left to check.
func (g *gate) stagedFiles(ctx context.Context, ext string) ([]string, error) {
	argv := []string{"git", "diff", "--cached", "--name-only", "--diff-filter=ACM"}
	res, err := g.runCommand(ctx, argv, captureOutput, g.extraEnv)
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}
	if res.exitCode != 0 {
		return nil, fmt.Errorf("listing staged files: git exited with code %d", res.exitCode)
	}

	var files []string
	for line := range strings.Lines(string(res.stdout)) {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasSuffix(line, ext) {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}
