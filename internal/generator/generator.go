// Package generator runs the map, encode and write pipeline that turns
// application data into a .docx file.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/docx"
	"github.com/dreambig/appgen/internal/mapper"
)

// Result reports a completed generation.
type Result struct {
	OutputPath string
	Bytes      int
	Duration   time.Duration
}

// Generator produces application documents. It holds no per-call state and
// is safe for concurrent use.
type Generator struct {
	observer Observer
	now      func() time.Time
}

// New returns a Generator reporting to the first non-nil observer.
func New(observers ...Observer) *Generator {
	return &Generator{
		observer: observerOrNoop(observers),
		now:      time.Now,
	}
}

// Generate maps data onto the form, encodes it and writes it to outputPath,
// replacing any existing file.
func (g *Generator) Generate(ctx context.Context, data *application.ApplicationData, outputPath string) (res Result, err error) {
	start := g.now()
	defer func() {
		g.observer.ObserveGenerate(ctx, GenerateEvent{
			OutputPath: outputPath,
			Duration:   g.now().Sub(start),
			Bytes:      res.Bytes,
			Success:    err == nil,
			Err:        err,
			StartedAt:  start,
		})
	}()

	if strings.TrimSpace(outputPath) == "" {
		return Result{}, ErrMissingOutputPath
	}
	if data == nil {
		return Result{}, ErrMissingData
	}

	doc := mapper.MapToDocument(data)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	n, err := docx.WriteFile(outputPath, doc)
	if err != nil {
		return Result{}, fmt.Errorf("saving document: %w", err)
	}
	return Result{OutputPath: outputPath, Bytes: n, Duration: g.now().Sub(start)}, nil
}
