// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package fileio provides the --patch backup/overwrite sequence: copy
// the input aside to a timestamped name under backups/, then replace it
// in place (spec §6).
package fileio

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/d2tools/stashsort/internal/xerrors"
)

// BackupPath returns "backups/<stem>-<unixTS>.<ext>" for path, where stem
// and ext are path's base name split on its last dot (ext includes the
// dot; a path with no dot gets none).
func BackupPath(path string, unixTS int64) string {
	base := filepath.Base(path)
	stem, ext := base, ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		stem, ext = base[:i], base[i:]
	}
	return filepath.Join("backups", stem+"-"+strconv.FormatInt(unixTS, 10)+ext)
}

// Patch reads the file at path, writes it unchanged to a timestamped
// backup path, then overwrites path with newContent. It returns the
// backup path written.
func Patch(path string, newContent []byte, unixTS int64) (string, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return "", xerrors.IOf("fileio: reading %q: %v", path, err)
	}
	backup := BackupPath(path, unixTS)
	if err := os.MkdirAll(filepath.Dir(backup), 0o755); err != nil {
		return "", xerrors.IOf("fileio: creating backup dir for %q: %v", backup, err)
	}
	if err := os.WriteFile(backup, original, 0o644); err != nil {
		return "", xerrors.IOf("fileio: writing backup %q: %v", backup, err)
	}
	if err := os.WriteFile(path, newContent, 0o644); err != nil {
		return "", errors.Wrapf(xerrors.IOf("fileio: overwriting %q: %v", path, err),
			"backup preserved at %q", backup)
	}
	return backup, nil
}
