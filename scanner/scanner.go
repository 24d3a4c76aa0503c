package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Filter selects manifest files by exact name or by extension. A file is a
// candidate when its base name is listed in Names or its name ends in one
// of Extensions; an empty Filter matches nothing.
type Filter struct {
	Names      []string
	Extensions []string
}

// Match reports whether the file at path is a candidate manifest.
func (f Filter) Match(path string) bool {
	base := filepath.Base(path)
	for _, name := range f.Names {
		if base == name {
			return true
		}
	}
	for _, ext := range f.Extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir string
	filter  Filter
}

func New(rootDir string, filter Filter) *Scanner {
	return &Scanner{
		rootDir: rootDir,
		filter:  filter,
	}
}

// Scan walks the root directory and collects every candidate manifest.
// Unreadable entries are skipped so one bad directory never aborts the walk.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var (
		files []FileInfo
		mutex sync.Mutex
		wg    sync.WaitGroup
	)

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// keep walking past entries that disappeared or are unreadable
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if s.filter.Match(path) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fileInfo := FileInfo{
					Path: path,
					Size: info.Size(),
				}
				mutex.Lock()
				files = append(files, fileInfo)
				mutex.Unlock()
			}()
		}
		return nil
	})

	wg.Wait()
	return files, err
}
