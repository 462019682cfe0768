package langbatch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"langcache/internal/cachefs"
	"langcache/internal/languageapi"
	"langcache/internal/logging"
	"langcache/internal/manifest"
)

// Pipeline names recorded with each run.
const (
	PipelineLanguages = "languages"
	PipelineApplets   = "applets"
)

// Recorder keeps a history of runs and the cache entries they wrote.
// *manifest.Store and manifest.Nop satisfy it.
type Recorder interface {
	BeginRun(ctx context.Context, pipeline string) (string, error)
	FinishRun(ctx context.Context, runID string, runErr error) error
	RecordEntry(ctx context.Context, entry manifest.Entry) error
}

// Mirror receives a copy of every cache entry after it is written.
type Mirror interface {
	Put(ctx context.Context, subPath string, data []byte) error
}

// Options configures a Generator. Caller and Settings are required.
type Options struct {
	Caller   languageapi.Caller
	Settings Settings
	Recorder Recorder
	Mirror   Mirror
	// Progress receives human-readable progress text.
	Progress io.Writer
	Logger   *slog.Logger
}

// Generator runs the language pipelines. Runs are sequential and stop at the
// first error.
type Generator struct {
	client   *languageapi.Client
	settings Settings
	recorder Recorder
	mirror   Mirror
	progress io.Writer
	logger   *slog.Logger
	now      func() time.Time
}

// New builds a Generator from opts, filling optional collaborators with no-op
// implementations.
func New(opts Options) (*Generator, error) {
	if opts.Settings == nil {
		return nil, errors.New("langbatch: settings required")
	}
	client, err := languageapi.NewClient(opts.Caller)
	if err != nil {
		return nil, fmt.Errorf("langbatch: %w", err)
	}
	g := &Generator{
		client:   client,
		settings: opts.Settings,
		recorder: opts.Recorder,
		mirror:   opts.Mirror,
		progress: opts.Progress,
		logger:   logging.NewComponentLogger(opts.Logger, "langbatch"),
		now:      time.Now,
	}
	if g.recorder == nil {
		g.recorder = manifest.Nop{}
	}
	if g.mirror == nil {
		g.mirror = nopMirror{}
	}
	if g.progress == nil {
		g.progress = io.Discard
	}
	return g, nil
}

// GenerateAll runs the application pipeline and then the applet pipeline.
func (g *Generator) GenerateAll(ctx context.Context) error {
	if err := g.GenerateLanguageFiles(ctx); err != nil {
		return err
	}
	return g.GenerateAppletLanguageXMLFiles(ctx)
}

type run struct {
	id     string
	root   string
	logger *slog.Logger
	ctx    context.Context
}

func (g *Generator) begin(ctx context.Context, pipeline string) (*run, error) {
	root, err := lookupRoot(g.settings)
	if err != nil {
		return nil, err
	}
	runID, err := g.recorder.BeginRun(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, g.logger).With(logging.String(logging.FieldPipeline, pipeline))
	logger.Info("pipeline started", logging.String(logging.FieldPath, filepath.Join(root, "cache")))
	return &run{id: runID, root: filepath.Join(root, "cache"), logger: logger, ctx: ctx}, nil
}

func (g *Generator) finish(r *run, start time.Time, runErr error) error {
	if err := g.recorder.FinishRun(context.WithoutCancel(r.ctx), r.id, runErr); err != nil {
		r.logger.Warn("failed to record run result", logging.Error(err))
	}
	if runErr != nil {
		logging.ErrorWithContext(r.logger, "pipeline failed", "pipeline_failed",
			logging.Error(runErr),
			logging.String(logging.FieldErrorHint, "fix the reported target and rerun"),
		)
		return runErr
	}
	r.logger.Info("pipeline completed", logging.Duration("duration", g.now().Sub(start)))
	return nil
}

// persist writes data to the cache and then records and mirrors it. The
// returned path is the absolute cache file location.
func (g *Generator) persist(r *run, entry manifest.Entry, data []byte) (string, error) {
	dest, err := cachefs.Path(r.root, entry.Path)
	if err != nil {
		return filepath.Join(r.root, filepath.FromSlash(entry.Path)), err
	}
	ok, err := cachefs.Write(r.root, entry.Path, data)
	if err != nil {
		return dest, err
	}
	if !ok {
		return dest, fmt.Errorf("short write to %s", dest)
	}

	sum := sha256.Sum256(data)
	entry.Bytes = int64(len(data))
	entry.SHA256 = hex.EncodeToString(sum[:])
	entry.RunID = r.id
	entry.WrittenAt = g.now()
	if err := g.recorder.RecordEntry(r.ctx, entry); err != nil {
		return dest, fmt.Errorf("record manifest entry: %w", err)
	}
	if err := g.mirror.Put(r.ctx, entry.Path, data); err != nil {
		return dest, err
	}
	r.logger.Debug("cache entry written",
		logging.String(logging.FieldTarget, entry.Target),
		logging.String(logging.FieldLanguage, entry.Language),
		logging.String(logging.FieldPath, dest),
		logging.Int64("bytes", entry.Bytes),
	)
	return dest, nil
}

func (g *Generator) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.progress, format, args...)
}

type nopMirror struct{}

func (nopMirror) Put(context.Context, string, []byte) error { return nil }
