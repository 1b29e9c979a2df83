// Package main provides the md5sum CLI. It prints the MD5 digest of each
// named file (or stdin), of a literal -text argument, saves and checks
// .md5 sidecar files, and can print a block-by-block explanation of the
// computation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/md5kit/digester"
	"github.com/byte4ever/md5kit/explain"
	"github.com/byte4ever/md5kit/md5"
)

var errCheckFailed = errors.New("one or more digests did not match")

type options struct {
	text    string
	hasText bool
	check   bool
	save    bool
	explain string
	files   []string
}

func parseFlags(args []string) (*options, error) {
	const errCtx = "parsing flags"

	opts := &options{}
	fs := flag.NewFlagSet("md5sum", flag.ContinueOnError)

	fs.StringVar(
		&opts.text, "text", "",
		"hash this string instead of files",
	)

	fs.BoolVar(
		&opts.check, "check", false,
		"verify each file against its .md5 sidecar",
	)

	fs.BoolVar(
		&opts.save, "save", false,
		"write a .md5 sidecar next to each file",
	)

	fs.StringVar(
		&opts.explain, "explain", "",
		"print a step-by-step trace: text, json or yaml",
	)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			opts.hasText = true
		}
	})

	opts.files = fs.Args()

	if opts.hasText && (opts.check || opts.save) {
		return nil, fmt.Errorf(
			"%s: -text cannot be combined with -check or -save",
			errCtx,
		)
	}

	if (opts.check || opts.save) && len(opts.files) == 0 {
		return nil, fmt.Errorf(
			"%s: -check and -save need file arguments", errCtx,
		)
	}

	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	const errCtx = "md5sum"

	opts, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	switch {
	case opts.hasText:
		err = printOne(stdout, []byte(opts.text), "-", opts.explain)
	case opts.check:
		err = checkFiles(stdout, opts.files)
	case opts.save:
		err = saveFiles(stdout, opts.files)
	case len(opts.files) == 0:
		err = printReader(stdout, stdin, "-", opts.explain)
	default:
		err = printFiles(stdout, opts.files, opts.explain)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func printOne(
	out io.Writer,
	data []byte,
	name string,
	format string,
) error {
	if format != "" {
		rendered, err := explain.Render(
			explain.Trace(data), explain.Format(format),
		)
		if err != nil {
			return err
		}

		_, err = out.Write(rendered)

		return err
	}

	_, err := fmt.Fprintf(out, "%s  %s\n", md5.ToHex(md5.Sum(data)), name)

	return err
}

// printReader streams r unless an explanation is requested,
// which needs the whole message.
func printReader(
	out io.Writer,
	r io.Reader,
	name string,
	format string,
) error {
	const errCtx = "hashing"

	if format != "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%s %s: %w", errCtx, name, err)
		}

		return printOne(out, data, name, format)
	}

	sum, err := md5.SumReader(r)
	if err != nil {
		return fmt.Errorf("%s %s: %w", errCtx, name, err)
	}

	_, err = fmt.Fprintf(out, "%s  %s\n", md5.ToHex(sum), name)

	return err
}

func printFiles(out io.Writer, files []string, format string) error {
	for _, name := range files {
		if err := printFile(out, name, format); err != nil {
			return err
		}
	}

	return nil
}

func printFile(out io.Writer, name string, format string) error {
	fi, err := os.Open(name) //nolint:gosec // path from CLI argument
	if err != nil {
		return err
	}

	defer fi.Close() //nolint:errcheck // read-only

	return printReader(out, fi, name, format)
}

func checkFiles(out io.Writer, files []string) error {
	failed := false

	for _, name := range files {
		ok, err := digester.VerifyDigest(name)
		if err != nil {
			return err
		}

		status := "OK"
		if !ok {
			status = "FAILED"
			failed = true
		}

		if _, err := fmt.Fprintf(out, "%s: %s\n", name, status); err != nil {
			return err
		}
	}

	if failed {
		return errCheckFailed
	}

	return nil
}

func saveFiles(out io.Writer, files []string) error {
	for _, name := range files {
		if err := digester.SaveDigest(name); err != nil {
			return err
		}

		stored, err := digester.GetDigest(name)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "%s  %s\n", stored, name); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}

		slog.Error(err.Error())
		os.Exit(1)
	}
}
