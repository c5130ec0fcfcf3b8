package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/core"
	"github.com/ib-77/perhaps/pkg/rop/lite"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

// Steps are the stages of the loading pipeline.
type Steps struct {
	EnsurePath  func(path string) rop.Result[string, error]
	ReadContent func(path string) rop.Result[string, error]
	ParseYAML   func(content string) rop.Result[map[string]any, error]
	LoadPerson  func(data map[string]any) rop.Result[Person, error]
}

func DefaultSteps() Steps {
	return Steps{
		EnsurePath:  EnsurePath,
		ReadContent: ReadContent,
		ParseYAML:   ParseYAML,
		LoadPerson:  LoadPerson,
	}
}

// Report is the outcome of loading one path.
type Report struct {
	RunID  uuid.UUID
	Path   string
	Result rop.Result[Person, error]
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %v", r.Path, r.Result)
}

func Load(path string) rop.Result[Person, error] {
	return DefaultSteps().Load(path)
}

func (s Steps) Load(path string) rop.Result[Person, error] {
	return s.load(uuid.New(), path).Result
}

func (s Steps) load(runID uuid.UUID, path string) Report {
	checked := solo.Bind(rop.Success[error](path), traced(runID, "ensure path", s.EnsurePath))
	content := solo.Bind(checked, traced(runID, "read content", s.ReadContent))
	data := solo.Bind(content, traced(runID, "parse yaml", s.ParseYAML))
	loaded := solo.Bind(data, traced(runID, "load person", s.LoadPerson))

	solo.DoubleTee(loaded,
		func(p Person) { xlog.Info("person loaded", "run", runID, "path", path, "person", p) },
		func(err error) { xlog.Warn("person not loaded", "run", runID, "path", path, "error", err) })

	return Report{RunID: runID, Path: path, Result: loaded}
}

func traced[A, B any](runID uuid.UUID, step string, f func(A) rop.Result[B, error]) func(A) rop.Result[B, error] {
	return func(a A) rop.Result[B, error] {
		return solo.DoubleTee(f(a),
			func(B) { xlog.Debug("step succeeded", "run", runID, "step", step) },
			func(err error) { xlog.Debug("step failed", "run", runID, "step", step, "error", err) })
	}
}

type job struct {
	index  int
	report Report
}

func LoadAll(ctx context.Context, paths []string, lines int) []Report {
	return DefaultSteps().LoadAll(ctx, paths, lines)
}

// LoadAll loads paths over the given number of lines and returns one report
// per path, in input order. Paths not loaded before ctx is done fail with the
// context's cause.
func (s Steps) LoadAll(ctx context.Context, paths []string, lines int) []Report {
	jobs := make([]job, len(paths))
	for i, p := range paths {
		jobs[i] = job{index: i, report: Report{RunID: uuid.New(), Path: p}}
	}

	load := lite.Map[job, job, error](func(_ context.Context, j job) job {
		j.report = s.load(j.report.RunID, j.report.Path)
		return j
	})

	cancelled := func(ctx context.Context, in rop.Result[job, error]) rop.Result[job, error] {
		return solo.Map(in, func(j job) job {
			j.report.Result = rop.Failure[Person](context.Cause(ctx))
			return j
		})
	}

	out := lite.Turnout(ctx, core.ToChanManyResults[error](ctx, jobs), load, lines,
		core.Remaining[job, job, error](cancelled))

	reports := make([]Report, len(paths))
	done := make([]bool, len(paths))
	for _, r := range core.Drain(out) {
		solo.Tee(r, func(j job) {
			reports[j.index] = j.report
			done[j.index] = true
		})
	}

	for i := range reports {
		if !done[i] {
			reports[i] = jobs[i].report
			reports[i].Result = rop.Failure[Person](context.Cause(ctx))
		}
	}

	xlog.Debug("load finished", "paths", len(paths))
	return reports
}
