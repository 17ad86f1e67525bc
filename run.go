package fimo2bed

import (
	"context"
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/fimo2bed/fimo"
)

// openSink opens path for writing, or returns std when path is "-".
func openSink(ctx context.Context, path string, std *os.File) (io.Writer, func() error, error) {
	if path == "-" {
		return std, func() error { return nil }, nil
	}
	f, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return f.Writer(ctx), func() error { return f.Close(ctx) }, nil
}

// Run is the path-level entry point used by bio-fimo2bed. "-" selects stdin
// for the input, and stdout/stderr for the BED and audit outputs
// respectively. Gzipped input is decompressed transparently.
func Run(ctx context.Context, inPath, outPath, auditPath string, opts *Opts) (err error) {
	in, err := fimo.Open(inPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	out, closeOut, err := openSink(ctx, outPath, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	audit, closeAudit, err := openSink(ctx, auditPath, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeAudit(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Convert(in, out, audit, opts)
}
