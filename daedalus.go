// daedalus.go

// Package daedalus validates origami design requests, resolves helical and
// scaffold parameters, drives the geometric design engine, and maps raw
// engine failures into the diag taxonomy. The engine itself is injected:
// this layer owns everything between the caller and the engine, and nothing
// inside it.
package daedalus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"daedalus-core/diag"
	"daedalus-core/engine"
	"daedalus-core/helix"
	"daedalus-core/scaffold"

	"daedalus/internal/report"
	"daedalus/internal/validate"
)

// Designer runs design requests against an injected engine. A Designer is
// safe to reuse across requests; each request owns its own derived state.
type Designer struct {
	eng     engine.Engine
	log     *slog.Logger
	console io.Writer
}

// Option configures a Designer.
type Option func(*Designer)

// WithLogger replaces the default no-op structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Designer) { d.log = l }
}

// WithConsole redirects progress output (default os.Stdout).
func WithConsole(w io.Writer) Option {
	return func(d *Designer) { d.console = w }
}

// New creates a Designer around eng.
func New(eng engine.Engine, opts ...Option) *Designer {
	d := &Designer{
		eng:     eng,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		console: os.Stdout,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Design validates req, resolves helical and scaffold parameters, runs the
// engine pipeline and packages the result. Every failure is a *diag.Error;
// raw engine errors only ever appear in the Details field. A failing
// atomic-model stage is the one deliberate exception: it degrades to a
// warning because the primary artifacts (staple CSV, CanDo file) already
// exist by then.
func (d *Designer) Design(ctx context.Context, req Request) (*Result, error) {
	req = req.WithDefaults()
	if req.Project == "" {
		return nil, diag.General("project name must not be empty",
			"the project name scopes the output directory and artifact names",
			`pass a short identifier such as "tetrahedron"`)
	}

	if err := validate.GeometryFile(req.GeometryFile); err != nil {
		return nil, err
	}
	cfg, err := helix.Resolve(req.Form, req.Turns)
	if err != nil {
		return nil, err
	}
	if err := scaffold.Validate(req.Scaffold); err != nil {
		return nil, err
	}
	projectDir, err := validate.OutputDir(req.OutputDir, req.Project)
	if err != nil {
		return nil, err
	}

	d.stage(req, "geometry", fmt.Sprintf("converting %s (min edge %d nt)", req.GeometryFile, cfg.MinEdgeLen))
	geom, err := d.eng.GeometryToInput(ctx, req.GeometryFile, projectDir, cfg.MinEdgeLen, cfg.AForm)
	if err != nil {
		var ferr *engine.FormatError
		return nil, diag.ClassifyGeometryError(err, req.GeometryFile, errors.As(err, &ferr))
	}
	if len(geom.Edges) == 0 {
		return nil, diag.DesignConstraint("no edges found in geometry",
			"file: "+req.GeometryFile,
			"the PLY file must define a 3D polyhedron with edges")
	}

	scaf, err := scaffold.Resolve(req.Scaffold, req.Project)
	if err != nil {
		return nil, err
	}
	// Length lower bound is only checkable now that edge lengths exist.
	if err := scaffold.CheckLength(scaf, geom.EdgeLengths); err != nil {
		return nil, err
	}

	d.stage(req, "design", fmt.Sprintf("routing scaffold through %d edges (%s)", len(geom.Edges), req.Form))
	stem, err := d.eng.DesignCage(ctx, engine.CageParams{
		Geometry:     geom,
		ScaffoldSeq:  scaf.Seq,
		ScaffoldName: scaf.Name,
		SingleXOs:    req.SingleXOs,
		AForm:        cfg.AForm,
		Twist:        cfg.Twist,
		OutputDir:    projectDir,
		Verbose:      !req.Quiet,
	})
	if err != nil {
		return nil, diag.ClassifyCageError(err, diag.CageInfo{
			Project:     req.Project,
			Form:        string(req.Form),
			Turns:       req.Turns,
			NumEdges:    len(geom.Edges),
			ScaffoldLen: len(scaf.Seq),
		})
	}

	d.stage(req, "atomic model", "generating PDB for "+stem)
	if err := d.eng.GenerateAtomicModel(ctx, stem, cfg.AForm, projectDir); err != nil {
		d.log.Warn("atomic model generation failed", "project", req.Project, "err", err)
		if !req.Quiet {
			report.Warn(d.console, "PDB generation failed: "+err.Error())
			report.Warn(d.console, "other outputs (CSV, CanDo) were generated successfully")
		}
	}

	return &Result{Project: req.Project, OutputDir: projectDir, Stem: stem}, nil
}

// DesignDNA runs req as a B-form (DNA) design regardless of req.Form.
func (d *Designer) DesignDNA(ctx context.Context, req Request) (*Result, error) {
	req.Form = helix.BForm
	return d.Design(ctx, req)
}

// DesignRNA runs req as an A-form (RNA) design regardless of req.Form.
func (d *Designer) DesignRNA(ctx context.Context, req Request) (*Result, error) {
	req.Form = helix.AForm
	return d.Design(ctx, req)
}

func (d *Designer) stage(req Request, name, detail string) {
	d.log.Info(name, "project", req.Project, "detail", detail)
	if !req.Quiet {
		report.Stage(d.console, name, detail)
	}
}
