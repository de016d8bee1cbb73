// Package pipeline runs one cleaning pass: load the source table, normalize
// and reorder it, then write the destination.
//
// A run either completes or fails before the destination is touched. Missing
// input and schema problems are returned as their core error types; anything
// else is wrapped in *core.UnexpectedError with a stack trace.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/JonMunkholm/draftclean/internal/config"
	"github.com/JonMunkholm/draftclean/internal/core"
	"github.com/JonMunkholm/draftclean/internal/csvfile"
	"github.com/JonMunkholm/draftclean/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Summary describes a completed run.
type Summary struct {
	RunID       string
	Source      string
	Destination string
	Rows        int
	Columns     []string
	BytesRead   int64
	Report      core.Report
	Duration    time.Duration
}

// Pipeline wires the reader, the assembler and the writer together.
type Pipeline struct {
	reader *csvfile.Reader
	writer *csvfile.Writer
}

// New creates a pipeline over fsys configured from cfg.
func New(fsys afero.Fs, cfg *config.Config) *Pipeline {
	return &Pipeline{
		reader: csvfile.NewReader(fsys, csvfile.ReadOptions{
			Delimiter:      cfg.InputDelimiter(),
			MissingMarkers: cfg.Input.MissingMarkers,
			MaxFileSize:    cfg.Input.MaxFileSize,
		}),
		writer: csvfile.NewWriter(fsys, cfg.OutputDelimiter()),
	}
}

// Run cleans source into destination.
func (p *Pipeline) Run(ctx context.Context, source, destination string) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.WithFields(ctx, "source", source, "destination", destination)

	logger.Info("run started")

	if err := ctx.Err(); err != nil {
		return nil, core.NewUnexpectedError("run cancelled", err)
	}

	src, err := p.reader.Load(source)
	if err != nil {
		logger.Error("load failed", "error", err)
		return nil, classify("load", err)
	}
	logger.Info("table loaded",
		"rows", src.Table.Len(),
		"columns", len(src.Table.Columns),
		"bytes", src.BytesRead,
	)

	res, err := core.Assemble(src.Table)
	if err != nil {
		logger.Error("assemble failed", "error", err)
		return nil, classify("assemble", err)
	}

	for _, pe := range res.Report.Patterns {
		logger.Debug("team kept verbatim", "line", pe.Line, "team", pe.Team)
	}
	logger.Info("table assembled",
		"repaired", res.Report.Repaired(),
		"already_split", res.Report.Count(core.RulePositionPresent),
		"team_missing", res.Report.Count(core.RuleTeamMissing),
		"unparsed", res.Report.Count(core.RuleFallback),
	)

	if err := ctx.Err(); err != nil {
		return nil, core.NewUnexpectedError("run cancelled", err)
	}

	if err := p.writer.Write(destination, res.Table); err != nil {
		logger.Error("write failed", "error", err)
		return nil, classify("write", err)
	}

	summary := &Summary{
		RunID:       runID,
		Source:      source,
		Destination: destination,
		Rows:        res.Table.Len(),
		Columns:     res.Table.Columns,
		BytesRead:   src.BytesRead,
		Report:      res.Report,
		Duration:    time.Since(start),
	}

	logger.Info("run completed", "rows", summary.Rows, "duration", summary.Duration)
	return summary, nil
}

// classify passes the structural failures through and wraps the rest.
func classify(op string, err error) error {
	var missing *core.MissingInputError
	if errors.As(err, &missing) {
		return err
	}
	var schema *core.SchemaError
	if errors.As(err, &schema) {
		return err
	}
	return core.NewUnexpectedError(op, err)
}
