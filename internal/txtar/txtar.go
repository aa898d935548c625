// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package txtar provides access to txtar archives, plus helpers for
// extracting an archive to a directory and building one from a directory.
//
// The archive format is the one of [golang.org/x/tools/txtar].
package txtar

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// Archive is a collection of files.
type Archive = txtar.Archive

// File is a single file in an [Archive].
type File = txtar.File

// Parse parses the serialized form of an [Archive].
func Parse(data []byte) *Archive { return txtar.Parse(data) }

// ParseFile parses the named file as an [Archive].
func ParseFile(file string) (*Archive, error) { return txtar.ParseFile(file) }

// Format returns the serialized form of an [Archive].
func Format(a *Archive) []byte { return txtar.Format(a) }

// Extract writes each file in the archive under dir, creating intermediate
// directories as needed. File names must not escape dir.
func Extract(a *Archive, dir string) error {
	for _, f := range a.Files {
		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		if rel, err := filepath.Rel(dir, name); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return fmt.Errorf("txtar: file %q escapes extraction directory", f.Name)
		}
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(name, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// FromDir builds an archive from the contents of dir.
func FromDir(dir string) (*Archive, error) {
	ar := new(Archive)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		ar.Files = append(ar.Files, File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ar, nil
}
