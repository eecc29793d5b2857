package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"guardgen/internal/classify"
	"guardgen/internal/config"
	"guardgen/internal/emitter"
	"guardgen/internal/guarderr"
	"guardgen/internal/normalize"
	"guardgen/internal/parser"
	"guardgen/internal/registry"
	"guardgen/internal/source"
)

// Pipeline regenerates the guard registry artifact from the guard module.
type Pipeline struct {
	cfg    *config.Config
	store  *source.Store
	logger *zap.Logger
}

// Result holds what a successful run produced.
type Result struct {
	Program  *parser.Program // normalized
	Registry *registry.Registry
	Artifact []byte
}

func New(cfg *config.Config, store *source.Store, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, store: store, logger: logger}
}

// Run executes load, parse, normalize, classify, build, emit and write in order.
// The artifact is written only when every earlier stage succeeded; any error is
// returned as a *guarderr.StageError.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	mod, err := p.store.Load(p.cfg.Source)
	if err != nil {
		return nil, fail(guarderr.StageLoad, err)
	}
	p.logger.Debug("loaded guard module", zap.String("stage", string(guarderr.StageLoad)),
		zap.String("path", mod.Path), zap.Int("bytes", len(mod.Text)))

	prog, err := p.parseStage(ctx, mod)
	if err != nil {
		return nil, fail(guarderr.StageParse, err)
	}
	prog = normalize.Normalize(prog)

	results, err := p.classifyStage(prog)
	if err != nil {
		return nil, fail(guarderr.StageClassify, err)
	}

	reg, err := registry.Build(results)
	if err != nil {
		return nil, fail(guarderr.StageBuild, err)
	}
	p.logger.Info("registry built", zap.String("stage", string(guarderr.StageBuild)),
		zap.Int("count", reg.Len()), zap.Strings("guards", reg.Names()))

	artifact, err := emitter.New(emitter.Options{
		Package:   p.cfg.Package,
		ASTImport: p.cfg.ASTImport,
		Source:    filepath.Base(p.cfg.Source),
	}).Emit(reg)
	if err != nil {
		return nil, fail(guarderr.StageEmit, err)
	}

	if err := p.store.WriteAtomic(p.cfg.Output, artifact); err != nil {
		return nil, fail(guarderr.StageWrite, err)
	}
	p.logger.Info("artifact written", zap.String("stage", string(guarderr.StageWrite)),
		zap.String("path", p.cfg.Output), zap.Int("bytes", len(artifact)))

	return &Result{Program: prog, Registry: reg, Artifact: artifact}, nil
}

func (p *Pipeline) parseStage(ctx context.Context, mod *source.Module) (*parser.Program, error) {
	ps, err := parser.NewParser(parser.Dialect(p.cfg.Dialect))
	if err != nil {
		return nil, err
	}
	prog, err := ps.Parse(ctx, mod.Text)
	if err != nil {
		var parseErr *guarderr.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = mod.Path
		}
		return nil, err
	}
	p.logger.Debug("parsed guard module", zap.String("stage", string(guarderr.StageParse)),
		zap.String("dialect", string(prog.Dialect)), zap.Int("declarations", len(prog.Body)))
	return prog, nil
}

func (p *Pipeline) classifyStage(prog *parser.Program) ([]classify.Result, error) {
	results, err := classify.NewClassifier(p.cfg.Kinds).Classify(prog.Body)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		switch r.Verdict {
		case classify.Guard:
			p.logger.Debug("guard classified", zap.String("guard", r.Name), zap.String("kind", string(r.Kind)))
		case classify.NonGuard:
			p.logger.Debug("function excluded", zap.String("guard", r.Name), zap.String("reason", r.Reason))
		}
	}
	return results, nil
}

func fail(stage guarderr.Stage, err error) error {
	return &guarderr.StageError{Stage: stage, Err: err}
}

// DumpProgram writes prog as indented JSON.
func DumpProgram(w io.Writer, prog *parser.Program) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(prog); err != nil {
		return fmt.Errorf("failed to encode program: %w", err)
	}
	return nil
}
