// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/commitgate/internal/testutil"
	"go.astrophena.name/commitgate/internal/unwrap"
)

func TestLoadEnvFile(t *testing.T) {
	t.Run("reads sorted pairs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		unwrap.NoError(os.WriteFile(path, []byte("SPHINX_THEME=alabaster\nDJANGO_SETTINGS_MODULE=docs.conf\n"), 0o644))

		env, err := loadEnvFile(path)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, env, []string{
			"DJANGO_SETTINGS_MODULE=docs.conf",
			"SPHINX_THEME=alabaster",
		})
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := loadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
		if err == nil {
			t.Fatal("want error for missing env file, got nil")
		}
	})
}
