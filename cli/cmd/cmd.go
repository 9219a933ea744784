package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/spiral/lang"
	"github.com/ardnew/spiral/log"
	"github.com/ardnew/spiral/pkg"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	sourceFilesKey struct{}
	searchPathKey  struct{}
	optionsKey     struct{}
	sourceFiles    struct {
		read     []io.Reader
		names    []string
		hasStdin bool
	}

	// SourceFiles reads the concatenation of every --source file.
	SourceFiles interface {
		IsZero() bool
		Names() []string
		Stdin() io.Reader
		io.Reader
		io.WriterTo
	}
)

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.read) == 0 && !s.hasStdin }

// Names returns the resolved paths of the source files in read order.
func (s *sourceFiles) Names() []string { return s.names }

// Stdin returns os.Stdin if stdin was included as a source, or nil otherwise.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return os.Stdin
	}

	return nil
}

func (s *sourceFiles) readers() []io.Reader {
	readers := s.read
	if s.hasStdin {
		readers = append(readers[:len(readers):len(readers)], os.Stdin)
	}

	return readers
}

// Read implements io.Reader by reading from all source files in order,
// including stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	return io.MultiReader(s.readers()...).Read(p)
}

// WriteTo implements io.WriterTo by writing all source files to w in order,
// including stdin if present.
func (s *sourceFiles) WriteTo(w io.Writer) (n int64, err error) {
	return io.Copy(w, io.MultiReader(s.readers()...))
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSearchPath returns a new context.Context carrying the directories
// searched for relative source names.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

// WithLangOptions returns a new context.Context carrying options passed to
// every call into package lang.
func WithLangOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func langOptionsFrom(ctx context.Context) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	return opts
}

// WithSourceFiles returns a new context.Context containing an [io.Reader] that
// reads from the given source files.
//
// Relative names that do not exist in the working directory are looked up in
// the search path stored by [WithSearchPath]. Readers are deduplicated by
// device and inode. All occurrences of "-" are replaced with a single stdin
// reader placed last.
func WithSourceFiles(ctx context.Context, sources []string) (context.Context, error) {
	files, err := buildSourceFiles(sources, searchPathFrom(ctx))
	if err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, sourceFilesKey{}, files), nil
}

func buildSourceFiles(sources, dirs []string) (SourceFiles, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	var srcs sourceFiles

	srcs.read = make([]io.Reader, 0, len(sources))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		path, err := FindSource(src, dirs)
		if err != nil {
			return nil, err
		}

		reader, ok := openUniqueFile(path, seen)
		if !ok {
			continue
		}

		srcs.read = append(srcs.read, reader)
		srcs.names = append(srcs.names, path)
	}

	// Stdin may have been included via "-" or as a named file.
	_, srcs.hasStdin = seen[stdinKey]
	delete(seen, stdinKey)

	if srcs.IsZero() {
		return nil, nil
	}

	return &srcs, nil
}

// FindSource returns the path of the source file called name. Names that
// exist as given are returned unchanged; otherwise a relative name is joined
// to each directory of dirs in order and the first existing regular file
// wins.
func FindSource(name string, dirs []string) (string, error) {
	if isFile(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		for _, dir := range dirs {
			if path := filepath.Join(dir, name); isFile(path) {
				log.Debug("source found in search path",
					slog.String("name", name),
					slog.String("path", path))

				return path, nil
			}
		}
	}

	return "", ErrFindSource.
		Wrap(pkg.ErrSourceNotFound.Wrapf("%s", name)).
		With(slog.String("search", strings.Join(dirs, string(os.PathListSeparator))))
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the SourceFiles stored in ctx by WithSourceFiles.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}

// Input selects the expression a command operates on: the positional
// arguments joined with spaces, else the root --source files, else stdin.
type Input struct {
	Expr []string `arg:"" help:"Expression text; words are joined with spaces" name:"expr" optional:""`
}

// read returns the source text selected by in.
func (in Input) read(ctx context.Context) (string, error) {
	if len(in.Expr) > 0 {
		return strings.Join(in.Expr, " "), nil
	}

	if files := sourceFilesFrom(ctx); files != nil {
		log.DebugContext(ctx, "reading sources",
			slog.Any("files", files.Names()),
			slog.Bool("stdin", files.Stdin() != nil))

		return lang.ReadSource(ctx, files, langOptionsFrom(ctx)...)
	}

	return lang.ReadSource(ctx, os.Stdin, langOptionsFrom(ctx)...)
}
