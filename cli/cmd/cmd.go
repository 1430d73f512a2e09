package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	kongContextKey struct{}
	outputKey      struct{}
	inputKey       struct{}
)

// WithContext returns a copy of ctx carrying the kong parse context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithOutput returns a copy of ctx whose commands write results to w
// instead of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithInput returns a copy of ctx whose commands read the "-" source from r
// instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// source is one opened input.
type source struct {
	name string
	io.ReadCloser
}

// fileKey identifies a file by device and inode so the same file reached
// through different paths or symlinks is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

// openSources opens each named source in order. Duplicate files are
// skipped, and every "-" after the first is ignored. An empty list reads
// standard input.
func openSources(ctx context.Context, names []string) ([]source, error) {
	if len(names) == 0 {
		names = []string{stdinSource}
	}

	var (
		out   = make([]source, 0, len(names))
		seen  = make(map[fileKey]struct{}, len(names))
		stdin bool
	)

	for _, name := range names {
		if name == stdinSource {
			if !stdin {
				stdin = true
				out = append(out, source{name, io.NopCloser(inputFrom(ctx))})
			}

			continue
		}

		f, dup, err := openUnique(name, seen)
		if err != nil {
			closeSources(out)

			return nil, ErrOpenSource.Wrap(err).With(slog.String("source", name))
		}

		if !dup {
			out = append(out, source{name, f})
		}
	}

	return out, nil
}

func closeSources(srcs []source) {
	for _, s := range srcs {
		_ = s.Close()
	}
}

func openUnique(path string, seen map[fileKey]struct{}) (*os.File, bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, dup := seen[key]; dup {
			return nil, true, nil
		}

		seen[key] = struct{}{}
	}

	f, err := os.Open(resolved)

	return f, false, err
}

func makeFileKey(info os.FileInfo) (fileKey, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
