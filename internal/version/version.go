// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides the command name and build information of the
// running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go.astrophena.name/commitgate/internal/syncx"
)

// CmdName returns the base name of the current binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "commitgate"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Info describes the running binary.
type Info struct {
	// Name is the binary name.
	Name string
	// Version is the module version or VCS revision.
	Version string
	// GoVersion is the version of the Go toolchain that built the binary.
	GoVersion string
}

// String implements [fmt.Stringer].
func (i Info) String() string {
	return fmt.Sprintf("%s %s\nbuilt with %s\n", i.Name, i.Version, i.GoVersion)
}

var info syncx.Lazy[Info]

// Version returns information about the running binary, derived from the
// embedded build info.
func Version() Info {
	return info.Get(func() Info {
		i := Info{Name: CmdName(), Version: "devel"}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		i.GoVersion = bi.GoVersion
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				i.Version = s.Value[:8]
			}
		}
		return i
	})
}
