package report

import (
	"errors"

	"github.com/arloliu/pvfit/internal/endian"
	"github.com/arloliu/pvfit/regression"
)

const (
	pointSize        = 16 // two float64
	scatterPointSize = 17 // two float64 and an empty string
)

// EncodeFit encodes a fit result into an envelope.
func EncodeFit(res *regression.FitResult, opts ...Option) ([]byte, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	w := newPayloadWriter(endian.ForFlag(cfg.bigEndian))
	if err := writeFit(w, res); err != nil {
		w.release()
		return nil, err
	}

	return seal(KindFit, w.bytes(), cfg)
}

// DecodeFit decodes an envelope produced by EncodeFit.
func DecodeFit(data []byte) (*regression.FitResult, error) {
	payload, h, err := open(data, KindFit)
	if err != nil {
		return nil, err
	}

	r := newPayloadReader(h.Engine(), payload)
	res := readFit(r)
	if err := r.done(); err != nil {
		return nil, err
	}

	return res, nil
}

func writeFit(w *payloadWriter, res *regression.FitResult) error {
	if res == nil || res.Model == nil {
		return errors.New("report: fit result without model")
	}

	m := res.Model
	w.u8(uint8(m.Type))
	w.u8(uint8(len(m.Coefficients))) //nolint:gosec
	for _, c := range m.Coefficients {
		w.f64(c)
	}

	w.f64(res.RSquared)
	w.f64(res.AdjustedRSquared)
	w.f64(res.RMSE)
	if err := w.count(res.SampleCount); err != nil {
		return err
	}
	if err := w.count(res.R2SampleCount); err != nil {
		return err
	}
	w.str(res.XLabel)
	w.str(res.YLabel)

	if err := w.count(len(res.Curve)); err != nil {
		return err
	}
	for _, p := range res.Curve {
		w.f64(p.X)
		w.f64(p.Y)
	}

	if err := w.count(len(res.Scatter)); err != nil {
		return err
	}
	for _, p := range res.Scatter {
		w.f64(p.X)
		w.f64(p.Y)
		w.str(p.SkyState)
	}

	return nil
}

func readFit(r *payloadReader) *regression.FitResult {
	modelType := regression.ModelType(r.u8())
	coeffs := make([]float64, r.u8())
	for i := range coeffs {
		coeffs[i] = r.f64()
	}
	if r.err != nil {
		return nil
	}

	model, err := regression.ModelFromCoefficients(modelType, coeffs)
	if err != nil {
		r.fail("%v", err)
		return nil
	}

	res := &regression.FitResult{
		Model:            model,
		RSquared:         r.f64(),
		AdjustedRSquared: r.f64(),
		RMSE:             r.f64(),
		SampleCount:      int(r.u32()),
		R2SampleCount:    int(r.u32()),
		XLabel:           r.str(),
		YLabel:           r.str(),
	}

	if n := r.count(pointSize); n > 0 {
		res.Curve = make([]regression.Point, n)
		for i := range res.Curve {
			res.Curve[i] = regression.Point{X: r.f64(), Y: r.f64()}
		}
	}

	if n := r.count(scatterPointSize); n > 0 {
		res.Scatter = make([]regression.ScatterPoint, n)
		for i := range res.Scatter {
			res.Scatter[i] = regression.ScatterPoint{X: r.f64(), Y: r.f64(), SkyState: r.str()}
		}
	}

	return res
}
