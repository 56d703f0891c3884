package agreement_test

import (
	"testing"

	"github.com/katalvlaran/agree/agreement"
	"github.com/katalvlaran/agree/matrix"
)

// benchmarkMeasure runs fn on an n×n tally with a heavy diagonal.
func benchmarkMeasure(b *testing.B, fn agreement.Func, n int) {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = (i + 2*j) % 5 // predictable off-diagonal noise
		}
		rows[i][i] += 50
	}
	m := matrix.MustFromRows(rows)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(m); err != nil {
			b.Fatalf("measure failed: %v", err)
		}
	}
}

// BenchmarkCohenKappa_Small benchmarks a 5×5 tally.
func BenchmarkCohenKappa_Small(b *testing.B) { benchmarkMeasure(b, agreement.CohenKappa, 5) }

// BenchmarkCohenKappa_Medium benchmarks a 100×100 tally.
func BenchmarkCohenKappa_Medium(b *testing.B) { benchmarkMeasure(b, agreement.CohenKappa, 100) }

// BenchmarkScottPi_Medium benchmarks a 100×100 tally.
func BenchmarkScottPi_Medium(b *testing.B) { benchmarkMeasure(b, agreement.ScottPi, 100) }

// BenchmarkIAEps_Small benchmarks the entropy path on a 5×5 tally.
func BenchmarkIAEps_Small(b *testing.B) { benchmarkMeasure(b, agreement.IAEps, 5) }

// BenchmarkIAEps_Medium benchmarks the entropy path on a 100×100 tally.
func BenchmarkIAEps_Medium(b *testing.B) { benchmarkMeasure(b, agreement.IAEps, 100) }

// BenchmarkFleissKappa_Medium benchmarks a 100-subject, 100-category table.
func BenchmarkFleissKappa_Medium(b *testing.B) { benchmarkMeasure(b, agreement.FleissKappa, 100) }
