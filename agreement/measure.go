// SPDX-License-Identifier: MIT

package agreement

import (
	"fmt"

	"github.com/katalvlaran/agree/matrix"
)

// Measure names an agreement coefficient.
type Measure string

// Registered measures. The string values are stable identifiers suitable
// for reports and configuration.
const (
	MeasureBennettS    Measure = "BennettS"
	MeasureBangdiwalaB Measure = "BangdiwalaB"
	MeasureCohenKappa  Measure = "CohenKappa"
	MeasureScottPi     Measure = "ScottPi"
	MeasureYuleY       Measure = "YuleY"
	MeasureFleissKappa Measure = "FleissKappa"
	MeasureIAEps       Measure = "IAEps"
)

// Func is the common signature of every coefficient in this package.
type Func func(matrix.Matrix) (float64, error)

// registry maps each Measure to its implementation.
var registry = map[Measure]Func{
	MeasureBennettS:    BennettS,
	MeasureBangdiwalaB: BangdiwalaB,
	MeasureCohenKappa:  CohenKappa,
	MeasureScottPi:     ScottPi,
	MeasureYuleY:       YuleY,
	MeasureFleissKappa: FleissKappa,
	MeasureIAEps:       IAEps,
}

// Measures returns every registered measure in a fixed order.
func Measures() []Measure {
	return []Measure{
		MeasureBennettS,
		MeasureBangdiwalaB,
		MeasureCohenKappa,
		MeasureScottPi,
		MeasureYuleY,
		MeasureFleissKappa,
		MeasureIAEps,
	}
}

// AgreementMeasures returns the measures that take an n×n agreement matrix,
// i.e. Measures() without FleissKappa.
func AgreementMeasures() []Measure {
	out := make([]Measure, 0, len(registry)-1)
	for _, ms := range Measures() {
		if ms != MeasureFleissKappa {
			out = append(out, ms)
		}
	}

	return out
}

// Lookup returns the implementation of measure.
func Lookup(measure Measure) (Func, error) {
	fn, ok := registry[measure]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", string(measure), ErrUnknownMeasure)
	}

	return fn, nil
}

// Compute evaluates the named measure on m.
func Compute(measure Measure, m matrix.Matrix) (float64, error) {
	fn, err := Lookup(measure)
	if err != nil {
		return 0, err
	}

	return fn(m)
}

// Report collects the outcome of Evaluate: exactly one of Values[ms] or
// Errors[ms] is set for every requested measure ms.
type Report struct {
	Values map[Measure]float64
	Errors map[Measure]error
}

// Evaluate computes several measures over one agreement matrix.
//
// With no measures given it uses AgreementMeasures(). The matrix must pass
// matrix.ValidateAgreement, otherwise Evaluate fails before computing
// anything. Measure-specific failures (YuleY on a 3×3 matrix, a degenerate
// chance term, an unknown name) are recorded in Report.Errors and do not stop
// the remaining measures.
func Evaluate(m matrix.Matrix, measures ...Measure) (Report, error) {
	if err := matrix.ValidateAgreement(m); err != nil {
		return Report{}, fmt.Errorf("Evaluate: %w", err)
	}
	if len(measures) == 0 {
		measures = AgreementMeasures()
	}

	report := Report{
		Values: make(map[Measure]float64, len(measures)),
		Errors: make(map[Measure]error),
	}
	for _, ms := range measures {
		v, err := Compute(ms, m)
		if err != nil {
			report.Errors[ms] = err
			continue
		}
		report.Values[ms] = v
	}

	return report, nil
}
