// Package photos associates students with portrait files named by
// student number.
package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/gradslides/internal/issue"
	"github.com/youruser/gradslides/internal/roster"
	"github.com/youruser/gradslides/internal/util"
)

const photoExt = ".jpg"

// DefaultDirs are the photo subdirectories, highest priority first.
var DefaultDirs = []string{"RETAKES", "ORIGINALS"}

// Match scans baseDir/<subdir> for each subdir in priority order and sets
// ImageFile on the student whose number is the file stem. A photo found in
// an earlier subdir is never replaced by a later one.
func Match(students []roster.Student, baseDir string, subdirs []string, issues *issue.Log) error {
	byID := roster.ByID(students, issues)

	for _, subdir := range subdirs {
		dir := filepath.Join(baseDir, subdir)
		ok, err := util.DirExists(dir)
		if err != nil {
			return fmt.Errorf("checking photo directory %s: %w", dir, err)
		}
		if !ok {
			return fmt.Errorf("photo directory %s does not exist", dir)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading photo directory %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ext := filepath.Ext(name)
			if strings.ToLower(ext) != photoExt {
				continue
			}
			path := filepath.Join(dir, name)
			s, ok := byID[strings.TrimSuffix(name, ext)]
			if !ok {
				issues.Addf("The image '%s' cannot be found in the student list.", filepath.ToSlash(path))
				continue
			}
			if s.ImageFile == "" {
				s.ImageFile = path
			}
		}
	}
	return nil
}

// ReportMissing reports every student left without a photo and returns
// how many there were.
func ReportMissing(students []roster.Student, issues *issue.Log) int {
	n := 0
	for _, s := range students {
		if !s.HasPhoto() {
			issues.Addf("Missing photo for %s (%s).", s.FullName, s.StudentID)
			n++
		}
	}
	return n
}
