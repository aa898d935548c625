// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a harness for table-driven tests of [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/commitgate/internal/cli"
)

// Case describes a single invocation of the application under test.
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the application.
	Args []string
	// Env contains environment variables visible to the application.
	Env map[string]string
	// Stdin is the application's standard input. If nil, an empty reader
	// is used.
	Stdin io.Reader
	// WantErr, if non-nil, requires the returned error to match it with
	// [errors.Is].
	WantErr error
	// WantErrType, if non-nil, requires the returned error to match its
	// type with [errors.As].
	WantErrType error
	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// WantInStdout requires stdout to contain this string.
	WantInStdout string
	// WantInStderr requires stderr to contain this string.
	WantInStderr string
	// CheckFunc, if non-nil, runs after the application with its value,
	// for additional assertions.
	CheckFunc func(*testing.T, App)
}

// Run runs each case as a subtest against a fresh application constructed
// by setup.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			if tc.WantErr != nil && !errors.Is(err, tc.WantErr) {
				t.Fatalf("want error matching %v, got %v", tc.WantErr, err)
			}
			if tc.WantErrType != nil {
				target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("want error of type %T, got %v (%T)", tc.WantErrType, err, err)
				}
			}
			if tc.WantErr == nil && tc.WantErrType == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("nothing should be printed to stdout, got: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("nothing should be printed to stderr, got: %q", stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
