package fimo

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

// Open opens a fimo.tsv for reading, transparently decompressing .gz input.
// "-" means stdin. The path may be anything base/file understands, s3://
// included.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	ctx := vcontext.Background()
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	r := io.Reader(f.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = f.Close(ctx)
			return nil, err
		}
		r = gz
	}
	return &fileReader{Reader: r, ctx: ctx, f: f}, nil
}

type fileReader struct {
	io.Reader
	ctx context.Context
	f   file.File
}

func (r *fileReader) Close() error { return r.f.Close(r.ctx) }
