package sysops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrMissingDir reports that the directory to scan does not exist.
var ErrMissingDir = errors.New("directory not found")

// DocumentsLister lists recent files under a fixed directory.
type DocumentsLister struct {
	Dir string
}

// Recent returns the n most recently modified files under the
// configured directory.
func (d DocumentsLister) Recent(n int) ([]Entry, error) {
	return RecentFiles(d.Dir, n)
}

// Entry is one file in a recent-files listing.
type Entry struct {
	Name    string
	ModTime time.Time
}

// RecentFiles walks dir recursively and returns the n most recently
// modified files, newest first. Unreadable entries are skipped.
func RecentFiles(dir string, n int) ([]Entry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, ErrMissingDir
	}

	var entries []Entry
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		entries = append(entries, Entry{Name: d.Name(), ModTime: info.ModTime()})
		return nil
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
