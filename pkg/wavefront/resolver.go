package wavefront

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolver turns the path of an mtllib directive into a readable stream.
// ctx is the value passed to Parser.Parse. If the returned reader is also an
// io.Closer, the parser closes it once the library has been read.
type Resolver[C any] interface {
	Resolve(path string, ctx C) (io.Reader, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc[C any] func(path string, ctx C) (io.Reader, error)

// Resolve calls f(path, ctx).
func (f ResolverFunc[C]) Resolve(path string, ctx C) (io.Reader, error) {
	return f(path, ctx)
}

// NoResolver fails every lookup with ErrPathNotFound.
func NoResolver[C any]() Resolver[C] {
	return ResolverFunc[C](func(p string, _ C) (io.Reader, error) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
	})
}

// slashPath converts a path written in an OBJ file to forward slashes.
func slashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// DirResolver opens material libraries from the local filesystem, relative
// to the directory given as context.
type DirResolver struct{}

// Resolve opens dir/name.
func (DirResolver) Resolve(name string, dir string) (io.Reader, error) {
	p := filepath.FromSlash(slashPath(name))
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	f, err := openFile(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func openFile(p string) (*os.File, error) {
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		return nil, ioError(err)
	}
	return f, nil
}

// FSResolver opens material libraries from an fs.FS, relative to the
// directory given as context.
type FSResolver struct {
	FS fs.FS
}

// Resolve opens dir/name inside the filesystem.
func (r FSResolver) Resolve(name string, dir string) (io.Reader, error) {
	p := path.Join(dir, slashPath(name))
	f, err := r.FS.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		return nil, ioError(err)
	}
	return f, nil
}

// SearchResolver looks for material libraries next to the OBJ file first,
// then in each of Dirs in order.
type SearchResolver struct {
	Dirs []string
}

// Resolve returns the first match among dir and r.Dirs.
func (r SearchResolver) Resolve(name string, dir string) (io.Reader, error) {
	rel := filepath.FromSlash(slashPath(name))
	if filepath.IsAbs(rel) {
		return DirResolver{}.Resolve(rel, "")
	}

	for _, d := range append([]string{dir}, r.Dirs...) {
		f, err := openFile(filepath.Join(d, rel))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, ErrPathNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s (searched %d directories)", ErrPathNotFound, name, len(r.Dirs)+1)
}
