package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func seq(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, float64(i))
	}

	return out
}

func apply(x []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}

	return out
}

func TestFitLinear_RecoversExactLine(t *testing.T) {
	x := seq(1, 50)
	y := apply(x, func(v float64) float64 { return 2*v + 3 })

	m, err := Fit(ModelTypeLinear, x, y)
	require.NoError(t, err)
	require.Equal(t, ModelTypeLinear, m.Type)
	require.Equal(t, 2, m.ParamCount)
	require.InDelta(t, 2.0, m.Coefficients[0], 1e-9)
	require.InDelta(t, 3.0, m.Coefficients[1], 1e-9)
}

func TestFitExponential_RecoversCurve(t *testing.T) {
	x := seq(0, 40)
	y := apply(x, func(v float64) float64 { return 5 * math.Exp(0.1*v) })

	m, err := Fit(ModelTypeExponential, x, y)
	require.NoError(t, err)
	require.InDelta(t, 5.0, m.Coefficients[0], 1e-3)
	require.InDelta(t, 0.1, m.Coefficients[1], 1e-3)
}

func TestFitExponential_Fallback(t *testing.T) {
	t.Run("fewer than three positive values", func(t *testing.T) {
		x := []float64{1, 2, 3, 4}
		y := []float64{-1, 0, 5, 7}

		m, err := Fit(ModelTypeExponential, x, y)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 0}, m.Coefficients)
		require.Equal(t, 1.0, m.Predict(123))
	})

	t.Run("non-positive values are skipped", func(t *testing.T) {
		x := seq(0, 20)
		y := apply(x, func(v float64) float64 { return 2 * math.Exp(0.05*v) })
		y[3] = 0
		y[7] = -4

		m, err := Fit(ModelTypeExponential, x, y)
		require.NoError(t, err)
		require.InDelta(t, 2.0, m.Coefficients[0], 1e-9)
		require.InDelta(t, 0.05, m.Coefficients[1], 1e-9)
	})
}

func TestFitPower_RecoversCurve(t *testing.T) {
	x := seq(1, 30)
	y := apply(x, func(v float64) float64 { return 3 * math.Pow(v, 1.5) })

	m, err := Fit(ModelTypePower, x, y)
	require.NoError(t, err)
	require.InDelta(t, 3.0, m.Coefficients[0], 1e-9)
	require.InDelta(t, 1.5, m.Coefficients[1], 1e-9)
}

func TestFitPower_ClampsNonPositive(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}

	m, err := Fit(ModelTypePower, x, y)
	require.NoError(t, err)
	for _, c := range m.Coefficients {
		require.False(t, math.IsNaN(c) || math.IsInf(c, 0), "coefficient %v", c)
	}
}

func TestFitPolynomial_RecoversQuadratic(t *testing.T) {
	x := seq(-10, 10)
	y := apply(x, func(v float64) float64 { return 1.5 - 2*v + 0.25*v*v })

	m, err := Fit(ModelTypePolynomial, x, y)
	require.NoError(t, err)
	require.Equal(t, 3, m.ParamCount)
	require.InDeltaSlice(t, []float64{1.5, -2, 0.25}, m.Coefficients, 1e-9)
}

// noisyQuadratic samples y = c0 + c1*x + c2*x² + amp*sin(i) at x = from + i*step.
func noisyQuadratic(n int, from, step, c0, c1, c2, amp float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range n {
		xi := from + float64(i)*step
		x[i] = xi
		y[i] = c0 + c1*xi + c2*xi*xi + amp*math.Sin(float64(i))
	}

	return x, y
}

// TestFitPolynomial_MatchesQR compares the normal-equation solution with a
// least-squares solve of the Vandermonde system through gonum's QR factorisation.
// The oracle works on x - mean so the factorisation stays well conditioned.
func TestFitPolynomial_MatchesQR(t *testing.T) {
	type tc struct {
		name string
		x, y []float64
	}
	tests := []tc{
		{
			name: "irradiance full day",
			x:    []float64{120, 250, 310, 480, 530, 640, 720, 810, 905, 990},
			y:    []float64{6.1, 14.8, 19.2, 31.5, 33.9, 41.0, 45.2, 49.8, 53.1, 55.0},
		},
	}
	add := func(name string, x, y []float64) {
		tests = append(tests, tc{name: name, x: x, y: y})
	}
	add(noisyCase("irradiance 900-949", 50, 900, 1, 2, 0.05, 1e-5, 1))
	add(noisyCase("irradiance 950-969.5 half steps", 40, 950, 0.5, 3, 0.06, -2e-5, 0.3))
	add(noisyCase("irradiance 100-1000", 37, 100, 25, -4, 0.09, -2.5e-5, 1.5))
	add(noisyCase("power 10-60 kW", 41, 10, 1.25, 0, 0.96, -0.002, 0.1))
	add(noisyCase("power 40-44 kW", 30, 40, 0.125, 1, 0.9, 0.001, 0.05))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(ModelTypePolynomial, tt.x, tt.y)
			require.NoError(t, err)

			mean := 0.0
			for _, xi := range tt.x {
				mean += xi
			}
			mean /= float64(len(tt.x))

			v := mat.NewDense(len(tt.x), 3, nil)
			for i, xi := range tt.x {
				d := xi - mean
				v.Set(i, 0, 1)
				v.Set(i, 1, d)
				v.Set(i, 2, d*d)
			}
			var qr mat.QR
			qr.Factorize(v)
			q := mat.NewVecDense(3, nil)
			require.NoError(t, qr.SolveVecTo(q, false, mat.NewVecDense(len(tt.y), tt.y)))

			for i, xi := range tt.x {
				d := xi - mean
				want := q.AtVec(0) + q.AtVec(1)*d + q.AtVec(2)*d*d
				require.InDelta(t, want, m.Predict(xi), 1e-8*(1+math.Abs(tt.y[i])), "x=%v", xi)
			}

			// raw coefficients recovered from the centred solution
			c2 := q.AtVec(2)
			c1 := q.AtVec(1) - 2*mean*c2
			c0 := q.AtVec(0) - q.AtVec(1)*mean + c2*mean*mean
			require.InEpsilon(t, c2, m.Coefficients[2], 1e-6)
			require.InEpsilon(t, c1, m.Coefficients[1], 1e-6)
			require.InDelta(t, c0, m.Coefficients[0], 1e-6*(1+math.Abs(c0)))
		})
	}
}

func noisyCase(name string, n int, from, step, c0, c1, c2, amp float64) (string, []float64, []float64) {
	x, y := noisyQuadratic(n, from, step, c0, c1, c2, amp)
	return name, x, y
}

func TestFitPolynomial_NarrowIrradianceRange(t *testing.T) {
	x, y := noisyQuadratic(50, 900, 1, 2, 0.05, 1e-5, 1)

	m, err := Fit(ModelTypePolynomial, x, y)
	require.NoError(t, err)
	require.InEpsilon(t, 11.527344154767654, m.Coefficients[0], 1e-8)
	require.InEpsilon(t, 0.03341573342172189, m.Coefficients[1], 1e-8)
	require.InEpsilon(t, 1.6793797626218926e-05, m.Coefficients[2], 1e-8)

	linear, err := Fit(ModelTypeLinear, x, y)
	require.NoError(t, err)

	predicted := func(m *Model) []float64 {
		out := make([]float64, len(x))
		for i, xi := range x {
			out[i] = m.Predict(xi)
		}

		return out
	}
	// the quadratic nests the line, so it never fits worse
	require.LessOrEqual(t, RMSE(y, predicted(m)), RMSE(y, predicted(linear))+1e-12)
}

func TestFit_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		for _, mt := range ModelTypes() {
			_, err := Fit(mt, nil, nil)
			require.ErrorIs(t, err, ErrInsufficientData, mt.String())
		}
	})

	t.Run("polynomial needs three samples", func(t *testing.T) {
		_, err := Fit(ModelTypePolynomial, []float64{1, 2}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("linear with identical x", func(t *testing.T) {
		_, err := Fit(ModelTypeLinear, []float64{5, 5, 5}, []float64{1, 2, 3})
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("power with identical x", func(t *testing.T) {
		_, err := Fit(ModelTypePower, []float64{5, 5, 5}, []float64{1, 2, 3})
		require.ErrorIs(t, err, ErrDegenerateFit)
	})

	t.Run("polynomial with identical x", func(t *testing.T) {
		_, err := Fit(ModelTypePolynomial, []float64{7, 7, 7, 7, 7}, []float64{1, 2, 3, 4, 5})
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("polynomial with two distinct x", func(t *testing.T) {
		_, err := Fit(ModelTypePolynomial, []float64{1, 1, 2, 2}, []float64{1, 2, 3, 4})
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("polynomial with two distinct irradiance values", func(t *testing.T) {
		_, err := Fit(ModelTypePolynomial, []float64{900, 900, 901, 901, 901}, []float64{60, 61, 62, 63, 64})
		require.ErrorIs(t, err, ErrSingularMatrix)

		_, err = Fit(ModelTypePolynomial, []float64{937.5, 937.5, 937.5, 950.25, 950.25}, []float64{60, 61, 62, 63, 64})
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("polynomial with identical irradiance", func(t *testing.T) {
		_, err := Fit(ModelTypePolynomial, []float64{950, 950, 950}, []float64{60, 61, 62})
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := Fit(ModelTypeLinear, []float64{1, 2}, []float64{1})
		require.Error(t, err)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := Fit(ModelType(-1), []float64{1, 2}, []float64{1, 2})
		require.ErrorIs(t, err, ErrUnknownModel)
	})
}

func TestFit_Deterministic(t *testing.T) {
	x := []float64{110, 240, 380, 455, 590, 610, 770, 880, 930}
	y := []float64{5.2, 13.1, 22.4, 26.0, 35.7, 36.1, 44.9, 49.0, 52.3}

	for _, mt := range ModelTypes() {
		first, err := Fit(mt, x, y)
		require.NoError(t, err)
		second, err := Fit(mt, x, y)
		require.NoError(t, err)

		for i := range first.Coefficients {
			require.Equal(t, math.Float64bits(first.Coefficients[i]), math.Float64bits(second.Coefficients[i]), mt.String())
		}
	}
}
