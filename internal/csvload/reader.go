package csvload

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// Result is the outcome of one ReadAsCSV call. Exactly one of Table and
// Err is meaningful: when Err is non-nil, Table is nil.
type Result struct {
	Table model.Table
	Err   error
}

// options holds the settings applied by Option values.
type options struct {
	// encoding is the WHATWG label used when the input has no BOM.
	// Empty means UTF-8.
	encoding string
}

// Option configures a read.
type Option func(*options)

// WithEncoding selects the text encoding, by WHATWG label, used when the
// input carries no byte order mark. An empty label keeps the UTF-8 default.
func WithEncoding(label string) Option {
	return func(o *options) {
		o.encoding = label
	}
}

// ReadAsCSV starts reading r in a new goroutine and returns a channel that
// receives exactly one Result before being closed.
//
// The channel is buffered, so the goroutine finishes even if the caller
// never receives. ctx is checked before the read starts and again after it
// completes; a read already in progress is not interrupted.
func ReadAsCSV(ctx context.Context, r io.Reader, opts ...Option) <-chan Result {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	out := make(chan Result, 1)
	go func() {
		defer close(out)
		table, err := read(ctx, r, o)
		out <- Result{Table: table, Err: err}
	}()
	return out
}

func read(ctx context.Context, r io.Reader, o options) (model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := decodeText(r, o.encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Load reads r with ReadAsCSV and waits for the result. If ctx is done
// first, Load returns ctx.Err() without waiting for the read to finish.
func Load(ctx context.Context, r io.Reader, opts ...Option) (model.Table, error) {
	select {
	case res := <-ReadAsCSV(ctx, r, opts...):
		return res.Table, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// LoadFile opens path and loads it as CSV.
//
// Returns a CLIError with ExitInputNotFound if the file does not exist.
func LoadFile(ctx context.Context, path string, opts ...Option) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitInputNotFound,
				fmt.Sprintf("CSV file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(ctx, f, opts...)
}
