// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"faidx-core/fai"
	"faidx-core/fasta"
	"faidx/internal/cli"
	"faidx/internal/logutil"
	"faidx/internal/version"
	"faidx/internal/writers"
)

// RunContext drives one faidx invocation. Exit codes: 0 success, 1 failed
// operation, 2 usage error, 3 output error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("faidx")
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _, _ = cli.ParseArgs(fs, []string{"-h"})
		return showUsage()
	}

	opts, posArgs, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		_ = showUsage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "faidx version %s\n", version.Version)
		return 0
	}
	if err := cli.AfterParse(&opts, posArgs); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log := logutil.New(stderr, opts.Verbose, opts.Quiet)

	if opts.Create {
		if err := createAll(parent, log, opts); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if err := query(parent, log, opts, outw); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// createAll indexes every input file, a few in flight at once.
func createAll(ctx context.Context, log *slog.Logger, opts cli.Options) error {
	limit := opts.Threads
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, path := range opts.SeqFiles {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			idxPath := opts.IndexPath
			if idxPath == "" {
				idxPath = path + ".fai"
			}
			fl, err := fai.Open(path, "")
			if err != nil {
				return err
			}
			defer func() { _ = fl.Close() }()
			if err := fl.CreateIndex(idxPath); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Info("index created",
				"fasta", path, "index", idxPath, "records", fl.Index().Count())
			return nil
		})
	}
	return g.Wait()
}

// sequentialOnly reports inputs that cannot back an index: stdin and gzip
// streams have no stable byte addresses to seek to.
func sequentialOnly(path string) bool {
	return path == "-" || strings.HasSuffix(path, ".gz")
}

func query(ctx context.Context, log *slog.Logger, opts cli.Options, w io.Writer) error {
	path := opts.SeqFiles[0]
	if sequentialOnly(path) {
		if !opts.List {
			return fmt.Errorf("%s: indexed queries need a plain FASTA file", path)
		}
		return listSequential(ctx, opts, w)
	}

	idxPath := opts.IndexPath
	if idxPath == "" {
		if _, err := os.Stat(path + ".fai"); err == nil {
			idxPath = path + ".fai"
		}
	}
	fl, err := fai.Open(path, idxPath)
	if err != nil {
		return err
	}
	defer func() { _ = fl.Close() }()
	log.Debug("opened", "fasta", path, "index", idxPath, "indexed", fl.HasIndex())

	switch {
	case opts.List:
		if !fl.HasIndex() {
			// build in memory; nothing is persisted without --create
			if err := fl.CreateIndex(""); err != nil {
				return err
			}
		}
		entries := fl.Index().Entries()
		rows := make([]writers.ListRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, writers.ListRow{
				Name:       e.Name,
				Length:     e.Length,
				Offset:     e.Offset,
				LineLength: e.LineLength,
				ByteLength: e.ByteLength,
			})
		}
		return writers.WriteList(opts.Output, w, rows, opts.Header)

	case opts.Base != "":
		ref, pos, err := cli.ParseBase(opts.Base)
		if err != nil {
			return err
		}
		refID, name, err := resolve(fl, ref)
		if err != nil {
			return err
		}
		b, err := fl.GetBase(refID, pos)
		if err != nil {
			return err
		}
		return writers.WriteRegion(opts.Output, w, writers.Region{
			File: path, RefID: refID, Name: name,
			Start: pos + 1, Stop: pos + 1, Seq: string(b),
		}, opts.Wrap)

	case opts.Seq != "":
		ref, start, stop, err := cli.ParseRange(opts.Seq)
		if err != nil {
			return err
		}
		refID, name, err := resolve(fl, ref)
		if err != nil {
			return err
		}
		seq, err := fl.GetSequence(refID, start, stop)
		if err != nil {
			return err
		}
		return writers.WriteRegion(opts.Output, w, writers.Region{
			File: path, RefID: refID, Name: name,
			Start: start + 1, Stop: stop + 1, Seq: string(seq),
		}, opts.Wrap)

	case opts.Length != "":
		ref, err := cli.ParseRef(opts.Length)
		if err != nil {
			return err
		}
		refID, name, err := resolve(fl, ref)
		if err != nil {
			return err
		}
		n, err := fl.GetLength(refID)
		if err != nil {
			return err
		}
		return writers.WriteRegion(opts.Output, w, writers.Region{
			File: path, RefID: refID, Name: name, Length: n,
		}, opts.Wrap)
	}
	return nil
}

// resolve turns a CLI reference into a reference id, answering names from
// the index (there is no name metadata without one).
func resolve(fl *fai.File, ref cli.Ref) (int, string, error) {
	if ref.Name == "" {
		name := ""
		if fl.HasIndex() {
			if e, err := fl.Index().Entry(ref.ID); err == nil {
				name = e.Name
			}
		}
		return ref.ID, name, nil
	}
	if !fl.HasIndex() {
		return 0, "", fmt.Errorf("record name %q needs an index; pass a numeric id or run --create", ref.Name)
	}
	id, ok := fl.Index().RefID(ref.Name)
	if !ok {
		return 0, "", fmt.Errorf("unknown record %q", ref.Name)
	}
	return id, ref.Name, nil
}

// listSequential serves --list for stdin/gzip input with a forward scan:
// names and lengths only, no byte geometry.
func listSequential(ctx context.Context, opts cli.Options, w io.Writer) error {
	var rows []writers.ListRow
	err := fasta.StreamPath(ctx, opts.SeqFiles[0], func(r fasta.Record) error {
		rows = append(rows, writers.ListRow{Name: r.Name, Length: len(r.Seq), Offset: -1})
		return nil
	})
	if err != nil {
		return err
	}
	return writers.WriteList(opts.Output, w, rows, opts.Header)
}
