// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"go.astrophena.name/commitgate/internal/txtar"
)

const configFile = ".commitgate.txtar"

type config struct {
	Docs  docsConfig  `json:"docs"`
	Style styleConfig `json:"style"`
	Tests testsConfig `json:"tests"`
}

type docsConfig struct {
	Command []string `json:"command"`
	Source  string   `json:"source"`
	Output  string   `json:"output"`
	Log     string   `json:"log"`
}

type styleConfig struct {
	Command   []string `json:"command"`
	Extension string   `json:"extension"`
}

type testsConfig struct {
	Command []string `json:"command"`
}

// defaultConfig returns settings for a Sphinx project checked with
// autopep8 and tested with the standard unittest discovery.
func defaultConfig() *config {
	return &config{
		Docs: docsConfig{
			Command: []string{"sphinx-build", "-b", "html"},
			Source:  "docs",
			Output:  "docs/_build/html",
			Log:     "doc_errors.log",
		},
		Style: styleConfig{
			Command:   []string{"autopep8", "--diff"},
			Extension: ".py",
		},
		Tests: testsConfig{
			Command: []string{"python", "-m", "unittest", "discover", "-p", "test_*.py"},
		},
	}
}

// loadConfig reads .commitgate.txtar from the current directory. A missing
// archive, or fields it doesn't set, fall back to defaults. A present but
// malformed archive is an error.
func loadConfig() (*config, error) {
	cfg := defaultConfig()

	ar, err := txtar.ParseFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		if f.Name != "gate.json" {
			continue
		}
		if err := json.Unmarshal(f.Data, cfg); err != nil {
			return nil, fmt.Errorf("parsing gate.json in %s: %w", configFile, err)
		}
	}
	return cfg, nil
}
