package live

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// walkFiles yields every regular file below root whose base name matches pattern.
// VCS metadata directories are skipped. Walk errors are yielded and end the walk.
func walkFiles(root, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			matched, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if !matched {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func skipDir(name string) bool {
	switch name {
	case ".git", ".jj", ".hg", ".svn":
		return true
	default:
		return false
	}
}
