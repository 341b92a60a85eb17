// Package util holds helpers shared by the loaders and the command-line
// tool.
package util

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// ReadPath opens path through the grailbio file layer (so s3:// paths work
// once an implementation is registered), transparently decompresses .gz
// files, and passes the content to fn.  The file is closed before ReadPath
// returns; fn must not retain the reader.
func ReadPath(ctx context.Context, path string, fn func(io.Reader) error) (err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	return fn(reader)
}
