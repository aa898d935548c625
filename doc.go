// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Commitgate is a Git pre-commit hook that blocks a commit when the
documentation build produces errors, a staged source file fails the style
check, or the test suite fails.

It runs three checks in a fixed order, stopping at the first failure:

 1. Build the documentation and fail if the builder reported any warnings
    or errors into its log file.
 2. Run the style formatter in diff-only mode over every staged source
    file and fail on the first file that would be reformatted.
 3. Run the test suite and fail if it exits non-zero.

Checks are configured through a .commitgate.txtar file in the repository
root. This file is a txtar archive and can contain a gate.json file with
the following sections, all optional:

  - docs: command, source, output and log describe the documentation
    build. The command is invoked as "command... -w log source output",
    with the builder's own output discarded.
  - style: command and extension describe the formatter. The command is
    invoked once per staged file with the file path appended and must
    print a diff on stdout without modifying the file.
  - tests: command is the test runner, invoked once with its output
    streamed to the terminal.

Without a configuration file commitgate assumes a Sphinx project: it runs
"sphinx-build -b html docs docs/_build/html", checks staged .py files with
"autopep8 --diff" and runs "python -m unittest discover -p test_*.py".

Any environment the configured tools need (for example the settings module
variable the documentation builder uses to locate the project
configuration) must be provided by the caller; commitgate passes its
environment through unchanged and never defaults it. The -env-file flag
additionally merges variables from a dotenv file into the child
environment, with the real environment winning on conflict.

Run "commitgate -install" once to write .git/hooks/pre-commit.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/commitgate/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
