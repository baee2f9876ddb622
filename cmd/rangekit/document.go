package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"

	"go.llib.dev/rangekit/pkg/rangekit"
)

const (
	ErrMissingSequence errorkit.Error = "rangekit: the document has no sequence"
	ErrInvalidDocument errorkit.Error = "rangekit: invalid document"
)

// Document is the input of every command.
type Document struct {
	Sequences [][]string `yaml:"sequences"`
}

func readDocument(r *cli.Request) (Document, error) {
	var doc Document
	if r.Body == nil {
		return doc, nil
	}
	if err := yaml.NewDecoder(r.Body).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return doc, ErrInvalidDocument.Wrap(err)
	}
	return doc, nil
}

func (doc Document) first() (rangekit.Range[string], error) {
	if len(doc.Sequences) == 0 {
		return nil, ErrMissingSequence
	}
	return rangekit.Slice(doc.Sequences[0]), nil
}

func (doc Document) ranges() []rangekit.Range[string] {
	var rs []rangekit.Range[string]
	for _, seq := range doc.Sequences {
		rs = append(rs, rangekit.Slice(seq))
	}
	return rs
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// collectNested materialises a range of ranges.
func collectNested(r rangekit.Range[rangekit.Range[string]]) [][]string {
	out := [][]string{}
	for inner := range rangekit.Seq(r) {
		vs := rangekit.Collect(inner)
		if vs == nil {
			vs = []string{}
		}
		out = append(out, vs)
	}
	return out
}

// serve runs a command body with the shared error handling and logging of the commands.
func serve(logger *logging.Logger, name string, w cli.ResponseWriter, r *cli.Request, fn func(doc Document) (any, error)) {
	ctx := r.Context()
	doc, err := readDocument(r)
	if err == nil {
		var out any
		out, err = fn(doc)
		if err == nil {
			err = writeYAML(w, out)
		}
	}
	if err != nil {
		logError(ctx, logger, name, err)
		fail(w, err)
		return
	}
	if logger != nil {
		logger.Debug(ctx, "command finished",
			logging.Field("command", name),
			logging.Field("sequences", len(doc.Sequences)))
	}
}

// fail reports err on the error output and sets the general error exit code.
func fail(w cli.ResponseWriter, err error) {
	w.ExitCode(cli.ExitCodeError)
	var o io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		o = ew.Stderr()
	}
	fmt.Fprintln(o, err.Error())
}

func logError(ctx context.Context, logger *logging.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Error(ctx, "command failed",
		logging.Field("command", name),
		logging.ErrField(err))
}
