// Package batch rewrites one string field of every record in JSON arrays,
// leaving all other fields byte for byte as they were.
//
// The translit command uses it to convert the text of ayah lists fetched
// from Quran text APIs. Records whose field is missing or not a JSON string
// are copied unchanged and counted as skipped.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidJSON     = errors.New("batch: invalid JSON")
	ErrNotArray        = errors.New("batch: top-level value is not an array")
	ErrEmptyField      = errors.New("batch: empty field name")
	ErrDuplicateOutput = errors.New("batch: two inputs map to the same output file")
)

// Result counts the records seen in one document.
type Result struct {
	Records   int `json:"records"`
	Converted int `json:"converted"`
	Skipped   int `json:"skipped"`
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input  string
	Output string
	Result
}

// Processor applies Convert to Field of every record.
type Processor struct {
	Field   string
	Convert func(string) string
	Workers int
	Logger  *zap.Logger
}

func (p *Processor) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Rewrite converts the field of every object in the JSON array data.
// Element order and count are preserved.
func (p *Processor) Rewrite(data []byte) ([]byte, Result, error) {
	var res Result
	if p.Field == "" {
		return nil, res, ErrEmptyField
	}
	if !gjson.ValidBytes(data) {
		return nil, res, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, res, ErrNotArray
	}

	path := escapePath(p.Field)

	var (
		buf    bytes.Buffer
		setErr error
	)
	buf.Grow(len(data) + len(data)/4)
	buf.WriteByte('[')
	root.ForEach(func(_, elem gjson.Result) bool {
		if res.Records > 0 {
			buf.WriteByte(',')
		}
		res.Records++

		raw := []byte(elem.Raw)
		v := elem.Get(path)
		if !elem.IsObject() || v.Type != gjson.String {
			res.Skipped++
			buf.Write(raw)
			return true
		}

		out, err := sjson.SetBytes(raw, path, p.Convert(v.String()))
		if err != nil {
			setErr = fmt.Errorf("batch: record %d: %w", res.Records-1, err)
			return false
		}
		res.Converted++
		buf.Write(out)
		return true
	})
	if setErr != nil {
		return nil, Result{}, setErr
	}
	buf.WriteByte(']')

	return buf.Bytes(), res, nil
}

// RewriteFile reads in, rewrites it and writes the result to out.
func (p *Processor) RewriteFile(in, out string) (Result, error) {
	data, err := os.ReadFile(filepath.Clean(in))
	if err != nil {
		return Result{}, fmt.Errorf("batch: read %s: %w", in, err)
	}
	rewritten, res, err := p.Rewrite(data)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", in, err)
	}
	if err := os.WriteFile(out, rewritten, 0o644); err != nil { //nolint:gosec // output is plain data
		return Result{}, fmt.Errorf("batch: write %s: %w", out, err)
	}
	return res, nil
}

// RewriteFiles rewrites every input into outDir under the same base name,
// running up to Workers files at once. The first failure cancels the rest.
// Results are returned in input order.
func (p *Processor) RewriteFiles(ctx context.Context, inputs []string, outDir string) ([]FileResult, error) {
	results := make([]FileResult, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := filepath.Join(outDir, filepath.Base(in))
		if prev, dup := seen[out]; dup {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateOutput, prev, in)
		}
		seen[out] = in
		results[i] = FileResult{Input: in, Output: out}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil { //nolint:gosec // output directory
		return nil, fmt.Errorf("batch: create %s: %w", outDir, err)
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	log := p.logger()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		fr := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.RewriteFile(fr.Input, fr.Output)
			if err != nil {
				return err
			}
			fr.Result = res
			log.Debug("rewrote file",
				zap.String("input", fr.Input),
				zap.String("output", fr.Output),
				zap.Int("records", res.Records),
				zap.Int("converted", res.Converted),
				zap.Int("skipped", res.Skipped))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// escapePath escapes the gjson/sjson path metacharacters in a field name.
func escapePath(field string) string {
	if !strings.ContainsAny(field, `.*?\|#@!`) {
		return field
	}
	var b strings.Builder
	for _, r := range field {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
