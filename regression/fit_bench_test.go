package regression

import (
	"fmt"
	"math"
	"testing"

	"github.com/arloliu/pvfit/dataset"
)

func benchSamples(n int) dataset.Dataset {
	ds := make(dataset.Dataset, n)
	for i := range ds {
		irr := 50 + 950*float64(i)/float64(n)
		power := 0.075*irr + 3*math.Sin(float64(i))
		ds[i] = dataset.Sample{
			Irradiance: irr,
			Power:      power,
			Generation: power * 0.96,
			SkyState:   dataset.SkyClear,
		}
	}

	return ds
}

// Benchmark Fit for every model kind across input sizes
func BenchmarkFit(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		ds := benchSamples(size)
		x, y := ds.XY(dataset.AxisIrradiancePower)

		for _, mt := range ModelTypes() {
			b.Run(fmt.Sprintf("%s/%d", mt, size), func(b *testing.B) {
				b.ReportAllocs()

				for b.Loop() {
					if _, err := Fit(mt, x, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// Benchmark Evaluate including curve sampling and scatter construction
func BenchmarkEvaluate(b *testing.B) {
	ds := benchSamples(5000)

	for _, mt := range ModelTypes() {
		b.Run(mt.String(), func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if _, err := Evaluate(ds, dataset.AxisIrradiancePower, mt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
