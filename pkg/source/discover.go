package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// File is a discovered translation unit.
type File struct {
	Path     string   // path as found during the walk (rooted at the walk root)
	Dir      string   // containing directory
	Ext      string   // extension with leading dot
	Category Category // category owning Ext
}

// Options controls discovery.
type Options struct {
	// Exclude lists directory names to prune. A directory is pruned when its
	// own name matches, wherever it sits in the tree. The root is never pruned.
	Exclude []string

	// Gitignore skips paths matched by root/.gitignore, if present.
	Gitignore bool
}

// Discover walks root depth-first and returns every file whose extension
// belongs to one of cats, sorted by path. Files with other extensions are
// skipped silently.
//
// Symbolic links to directories are followed, the root included. Each real
// directory is visited once, so link cycles terminate. Returned paths stay
// rooted at root as given, not at the link targets.
//
// Errors reading a directory, such as a missing root or a permission
// failure, are returned as is.
func Discover(root string, cats Categories, opts Options) ([]File, error) {
	gi, err := loadGitignore(root, opts.Gitignore)
	if err != nil {
		return nil, err
	}

	w := &walker{
		root:    root,
		cats:    cats,
		opts:    opts,
		gi:      gi,
		visited: make(map[string]bool),
	}
	if err := w.walk(root); err != nil {
		return nil, err
	}

	slices.SortFunc(w.files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })
	return w.files, nil
}

type walker struct {
	root    string
	cats    Categories
	opts    Options
	gi      *ignore.GitIgnore
	visited map[string]bool // resolved directory paths
	files   []File
}

func (w *walker) walk(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if w.visited[resolved] {
		return nil
	}
	w.visited[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				continue // dangling link
			}
			isDir = info.IsDir()
		}

		if isDir {
			if slices.Contains(w.opts.Exclude, e.Name()) || ignored(w.gi, w.root, path, true) {
				continue
			}
			if err := w.walk(path); err != nil {
				return err
			}
			continue
		}

		ext := filepath.Ext(e.Name())
		cat, ok := w.cats.Lookup(ext)
		if !ok || ignored(w.gi, w.root, path, false) {
			continue
		}
		w.files = append(w.files, File{
			Path:     path,
			Dir:      dir,
			Ext:      ext,
			Category: cat,
		})
	}
	return nil
}

func loadGitignore(root string, enabled bool) (*ignore.GitIgnore, error) {
	if !enabled {
		return nil, nil
	}
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return ignore.CompileIgnoreFile(path)
}

func ignored(gi *ignore.GitIgnore, root, path string, dir bool) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if dir && gi.MatchesPath(rel+"/") {
		return true
	}
	return gi.MatchesPath(rel)
}
