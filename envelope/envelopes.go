// Package envelope is a library of closed-form time-domain envelope
// functions for control-pulse generation. Every shape maps a time
// vector and a set of named quantities to an amplitude vector of the
// same length.
//
// Shapes do no sanity checking on physically meaningless parameter
// combinations: a negative sigma or a zero risefall yields whatever
// the formula yields, NaN and Inf included, so that outer calibration
// loops can probe edge regions without tripping errors.
package envelope

import (
	"math"
)

// NoDrive returns an all-zero envelope.
func NoDrive(t []float64, _ Params) ([]float64, error) {
	return make([]float64, len(t)), nil
}

// Pwc is a piecewise-constant placeholder: it echoes the stored
// amplitude table unchanged, so the result length comes from the
// table and not from t.
// TODO resolve the table against t like the other shapes.
func Pwc(_ []float64, params Params) ([]float64, error) {
	q, ok := params["values"]
	if !ok {
		return nil, nil
	}

	return q.Values(), nil
}

// FourierSin sums weighted sin components: sum_i amps[i]*sin(freqs[i]*t).
func FourierSin(t []float64, params Params) ([]float64, error) {
	return fourier(t, params, math.Sin)
}

// FourierCos sums weighted cos components: sum_i amps[i]*cos(freqs[i]*t).
func FourierCos(t []float64, params Params) ([]float64, error) {
	return fourier(t, params, math.Cos)
}

func fourier(t []float64, params Params, osc func(float64) float64) (vs []float64, err error) {
	amps, err := params.Values("amps")
	if err != nil {
		return
	}

	freqs, err := params.Values("freqs")
	if err != nil {
		return
	}

	vs = make([]float64, len(t))

	for i, e := range t {
		var sum float64

		for j := range amps {
			sum += amps[j] * osc(freqs[j]*e)
		}

		vs[i] = sum
	}

	return
}

// Rect returns 1 at every time step.
func Rect(t []float64, _ Params) ([]float64, error) {
	vs := make([]float64, len(t))

	for i := range vs {
		vs[i] = 1.0
	}

	return vs, nil
}

// FlattopRisefall is a flattop built from error functions: a smooth
// ramp up centered at t_up and a smooth ramp down centered at t_down,
// each of length risefall.
func FlattopRisefall(t []float64, params Params) (vs []float64, err error) {
	tUp, err := params.Value("t_up")
	if err != nil {
		return
	}

	tDown, err := params.Value("t_down")
	if err != nil {
		return
	}

	risefall, err := params.Value("risefall")
	if err != nil {
		return
	}

	vs = make([]float64, len(t))

	for i, e := range t {
		vs[i] = (1 + math.Erf((e-tUp)/risefall)) / 2 * (1 + math.Erf((tDown-e)/risefall)) / 2
	}

	return
}

// Flattop is FlattopRisefall with the ramp length fixed to 1ns.
func Flattop(t []float64, params Params) ([]float64, error) {
	return FlattopRisefall(t, params.With("risefall", NewQty(1e-9)))
}

// gaussNormOffset computes the normalization constant and boundary
// offset shared by the normalized gaussian family.
func gaussNormOffset(tFinal, sigma float64) (norm, offset float64) {
	norm = math.Sqrt(2*math.Pi*sigma*sigma)*math.Erf(tFinal/(math.Sqrt(8)*sigma)) -
		tFinal*math.Exp(-tFinal*tFinal/(8*sigma*sigma))
	offset = math.Exp(-tFinal * tFinal / (8 * sigma * sigma))

	return
}

// GaussianSigma is a normalized gaussian centered at t_final/2. The
// total area is 1 and the boundary values at t=0 and t=t_final are
// pulled to zero.
func GaussianSigma(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	norm, offset := gaussNormOffset(tFinal, sigma)

	vs = make([]float64, len(t))

	for i, e := range t {
		gauss := math.Exp(-(e - tFinal/2) * (e - tFinal/2) / (2 * sigma * sigma))
		vs[i] = (gauss - offset) / norm
	}

	return
}

// GaussianNoNorm is the plain gaussian with peak value 1.
func GaussianNoNorm(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	vs = make([]float64, len(t))

	for i, e := range t {
		vs[i] = math.Exp(-(e - tFinal/2) * (e - tFinal/2) / (2 * sigma * sigma))
	}

	return
}

// GaussianDerNoNorm is the derivative of the plain gaussian.
func GaussianDerNoNorm(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	vs = make([]float64, len(t))

	for i, e := range t {
		vs[i] = math.Exp(-(e-tFinal/2)*(e-tFinal/2)/(2*sigma*sigma)) * (e - tFinal/2) / (sigma * sigma)
	}

	return
}

// GaussianDer is the gaussian derivative divided by the GaussianSigma
// normalization constant. The boundary offset is intentionally not
// subtracted here.
func GaussianDer(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	norm, _ := gaussNormOffset(tFinal, sigma)

	vs = make([]float64, len(t))

	for i, e := range t {
		vs[i] = math.Exp(-(e-tFinal/2)*(e-tFinal/2)/(2*sigma*sigma)) * (e - tFinal/2) / (sigma * sigma) / norm
	}

	return
}

// DragSigma is the second-order gaussian: the squared offset-corrected
// gaussian over the GaussianSigma normalization constant.
func DragSigma(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	norm, offset := gaussNormOffset(tFinal, sigma)

	vs = make([]float64, len(t))

	for i, e := range t {
		gauss := math.Exp(-(e - tFinal/2) * (e - tFinal/2) / (2 * sigma * sigma))
		vs[i] = (gauss - offset) * (gauss - offset) / norm
	}

	return
}

// DragDer is the derivative of DragSigma.
func DragDer(t []float64, params Params) (vs []float64, err error) {
	tFinal, sigma, err := finalAndSigma(params)
	if err != nil {
		return
	}

	norm, offset := gaussNormOffset(tFinal, sigma)

	vs = make([]float64, len(t))

	for i, e := range t {
		gauss := math.Exp(-(e - tFinal/2) * (e - tFinal/2) / (2 * sigma * sigma))
		vs[i] = -2 * (gauss - offset) * gauss * (e - tFinal/2) / (sigma * sigma) / norm
	}

	return
}

// FlattopVariant is a piecewise flattop: a gaussian-shaped rise over
// [t_up, t_up+ramp], flat 1 in between, a gaussian-shaped fall over
// [t_down-ramp, t_down], zero elsewhere. ramp is clamped to half the
// plateau interval.
func FlattopVariant(t []float64, params Params) (vs []float64, err error) {
	tUp, err := params.Value("t_up")
	if err != nil {
		return
	}

	tDown, err := params.Value("t_down")
	if err != nil {
		return
	}

	ramp, err := params.Value("ramp")
	if err != nil {
		return
	}

	if ramp > (tDown-tUp)/2 {
		ramp = (tDown - tUp) / 2
	}

	sigma := math.Sqrt(2) * ramp * 0.2

	vs = make([]float64, len(t))

	for i, e := range t {
		switch {
		case tUp <= e && e <= tUp+ramp:
			vs[i] = math.Exp(-(e - tUp - ramp) * (e - tUp - ramp) / (2 * sigma * sigma))
		case tUp+ramp < e && e < tDown-ramp:
			vs[i] = 1
		case tDown-ramp <= e && e <= tDown:
			vs[i] = math.Exp(-(e - tDown + ramp) * (e - tDown + ramp) / (2 * sigma * sigma))
		default:
			vs[i] = 0
		}
	}

	return
}

func finalAndSigma(params Params) (tFinal, sigma float64, err error) {
	tFinal, err = params.Value("t_final")
	if err != nil {
		return
	}

	sigma, err = params.Value("sigma")

	return
}
