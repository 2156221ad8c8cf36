// Package demo runs a scripted walk through the vector API and reports
// every intermediate value. It doubles as a manual smoke test.
package demo

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"physvec/internal/config"
	"physvec/internal/geometry/vector"
	"physvec/internal/observability/log"
)

type Step struct {
	Name  string
	Value string
}

type Report struct {
	RunID string
	Steps []Step
}

type Runner struct {
	Out io.Writer
	Log log.Log
}

func New(out io.Writer, logger log.Log) *Runner {
	return &Runner{Out: out, Log: logger}
}

type run struct {
	out    io.Writer
	logger log.Log
	report Report
	err    error
}

func (r *run) vec(name string, v vector.Vec3) {
	r.emit(name, v.String(), log.Vec3("value", v))
}

func (r *run) scalar(name string, f float64) {
	r.emit(name, fmt.Sprintf("%g", f), log.Float64("value", f))
}

func (r *run) emit(name, value string, field log.Field) {
	if r.err != nil {
		return
	}
	r.report.Steps = append(r.report.Steps, Step{Name: name, Value: value})
	r.logger.Debug("demo step", log.String("step", name), field)
	if _, err := fmt.Fprintf(r.out, "%s: %s\n", name, value); err != nil {
		r.err = fmt.Errorf("write step %q: %w", name, err)
	}
}

// Run executes the scenario, followed by one magnitude and one normalized
// line for each extra vector in cfg.
func (rn *Runner) Run(cfg config.DemoConfig) (Report, error) {
	id := uuid.NewString()
	r := &run{
		out:    rn.Out,
		logger: rn.Log.With(log.String("run_id", id)),
		report: Report{RunID: id},
	}

	v1 := vector.Zero()
	v2 := vector.NewVec3(3, 4, 0)
	v3 := vector.NewVec3(3.2, 2, 3)

	r.scalar("v2 magnitude", v2.Magnitude())
	r.vec("v1 + v2", v1.Add(v2))
	r.vec("v1 + v3", v1.Add(v3))
	r.vec("v1", v1)
	r.vec("v2", v2)
	r.vec("v3", v3)
	r.vec("v1 + v2 + v3", v1.Add(v2).Add(v3))

	v4 := vector.NewVec3(6, 5, 3)
	r.vec("v4", v4)
	v4.Normalize()
	r.vec("v4 normalized", v4)
	r.scalar("v4 magnitude", v4.Magnitude())
	v4.Reverse()
	r.vec("v4 reversed", v4)

	v5 := vector.NewVec3(1, 1, 2)
	u5 := vector.NewVec3(2, 2, 1)
	v5.AddInPlace(u5)
	r.vec("v5 += u5", v5)
	v5.SubInPlace(u5)
	r.vec("v5 -= u5", v5)

	v6 := vector.NewVec3(1, 2, 3)
	r.vec("v6", v6)
	v6.ScaleInPlace(2)
	r.vec("v6 *= 2", v6)

	v7 := vector.NewVec3(1, 0, 0)
	r.vec("-v7", v7.Neg())
	r.vec("v7", v7)

	r.vec("x cross y", vector.NewVec3(1, 0, 0).Cross(vector.NewVec3(0, 1, 0)))
	r.scalar("(1,2,3) dot (4,5,6)", vector.NewVec3(1, 2, 3).Dot(vector.NewVec3(4, 5, 6)))

	for i, t := range cfg.Extra {
		v := t.Vec3()
		r.scalar(fmt.Sprintf("extra[%d] magnitude", i), v.Magnitude())
		r.vec(fmt.Sprintf("extra[%d] normalized", i), v.Normalized())
	}

	if r.err != nil {
		r.logger.Error("demo aborted", log.Error(r.err))
		return r.report, r.err
	}
	r.logger.Info("demo finished", log.Int("steps", len(r.report.Steps)))
	return r.report, nil
}
