package report

import (
	"errors"

	"github.com/arloliu/pvfit/analysis"
	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/dataset"
	"github.com/arloliu/pvfit/internal/endian"
	"github.com/arloliu/pvfit/regression"
)

// EncodeSelection encodes a selection report, including the full unclustered fit of the
// chosen model, into an envelope.
//
// Parameters:
//   - rep: The report to encode
//   - opts: Compression and byte order options
//
// Returns:
//   - []byte: The envelope
//   - error: An error for an incomplete report or an invalid option
func EncodeSelection(rep *analysis.SelectionReport, opts ...Option) ([]byte, error) {
	if rep == nil || rep.BestFit == nil {
		return nil, errors.New("report: selection report without best fit")
	}

	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	w := newPayloadWriter(endian.ForFlag(cfg.bigEndian))
	if err := writeSelection(w, rep); err != nil {
		w.release()
		return nil, err
	}

	return seal(KindSelection, w.bytes(), cfg)
}

// DecodeSelection decodes an envelope produced by EncodeSelection.
func DecodeSelection(data []byte) (*analysis.SelectionReport, error) {
	payload, h, err := open(data, KindSelection)
	if err != nil {
		return nil, err
	}

	r := newPayloadReader(h.Engine(), payload)
	rep := readSelection(r)
	if err := r.done(); err != nil {
		return nil, err
	}

	return rep, nil
}

func writeSelection(w *payloadWriter, rep *analysis.SelectionReport) error {
	w.u8(uint8(rep.Axis))
	w.u8(uint8(rep.ChosenModel)) //nolint:gosec
	if err := writeFit(w, rep.BestFit); err != nil {
		return err
	}

	if err := w.count(len(rep.ModelTable)); err != nil {
		return err
	}
	for _, row := range rep.ModelTable {
		w.u8(uint8(row.Type)) //nolint:gosec
		w.f64(row.AdjustedRSquared)
		w.u8(uint8(row.ParamCount)) //nolint:gosec
	}

	w.f64(rep.RMSEWithoutClusters)

	if err := w.count(len(rep.StrategyTable)); err != nil {
		return err
	}
	for _, row := range rep.StrategyTable {
		w.u8(uint8(row.Strategy))
		w.f64(row.RMSE)
		w.f64(row.Ratio)
	}

	if rep.ChosenConfiguration.Clustered {
		w.u8(1)
	} else {
		w.u8(0)
	}
	w.u8(uint8(rep.ChosenConfiguration.Strategy))

	return nil
}

func readSelection(r *payloadReader) *analysis.SelectionReport {
	rep := &analysis.SelectionReport{
		Axis:        dataset.Axis(r.u8()),
		ChosenModel: regression.ModelType(r.u8()),
	}
	if r.err == nil && !rep.Axis.Valid() {
		r.fail("unknown axis %d", rep.Axis)
	}
	if r.err == nil && !rep.ChosenModel.Valid() {
		r.fail("unknown model type %d", rep.ChosenModel)
	}
	rep.BestFit = readFit(r)

	if n := r.count(10); n > 0 {
		rep.ModelTable = make([]analysis.ModelScore, n)
		for i := range rep.ModelTable {
			rep.ModelTable[i] = analysis.ModelScore{
				Type:             regression.ModelType(r.u8()),
				AdjustedRSquared: r.f64(),
				ParamCount:       int(r.u8()),
			}
		}
	}

	rep.RMSEWithoutClusters = r.f64()

	if n := r.count(17); n > 0 {
		rep.StrategyTable = make([]analysis.StrategyScore, n)
		for i := range rep.StrategyTable {
			rep.StrategyTable[i] = analysis.StrategyScore{
				Strategy: cluster.Strategy(r.u8()),
				RMSE:     r.f64(),
				Ratio:    r.f64(),
			}
		}
	}

	clustered := r.u8()
	strategy := cluster.Strategy(r.u8())
	if r.err != nil {
		return nil
	}
	switch {
	case clustered == 0:
		rep.ChosenConfiguration = analysis.NoClustering()
	case clustered == 1 && strategy.Valid():
		rep.ChosenConfiguration = analysis.ClusteredBy(strategy)
	default:
		r.fail("bad configuration %d/%d", clustered, strategy)
		return nil
	}

	return rep
}
