package quant

import (
	"fmt"
	"math"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
)

// int4 range and the number of steps each scale method spreads the data over.
const (
	MinValue = -8
	MaxValue = 7

	minMaxSteps = 15 // 2^4 - 1
	absMaxSteps = 7  // largest positive int4
)

// DefaultScale is substituted whenever the computed scale would be zero.
const DefaultScale float32 = 1.0

// Quantize converts samples to int4 values stored in int8 containers.
//
// Parameters:
//   - samples: Input values, must all be finite
//   - method: format.ScaleMinMax or format.ScaleAbsMax
//
// Returns:
//   - []int8: Quantized values in [-8, 7], same length as samples
//   - float32: Scale used for quantization, never zero
//   - float32: Zero point, always 0
//   - error: errs.ErrInvalidArgument for an unknown method or a NaN/Inf sample
func Quantize(samples []float32, method format.ScaleMethod) ([]int8, float32, float32, error) {
	scale, err := ComputeScale(samples, method)
	if err != nil {
		return nil, 0, 0, err
	}

	quantized := make([]int8, len(samples))
	if scale == 0 {
		// zero range: every sample sits on the zero point
		return quantized, DefaultScale, 0, nil
	}

	for i, x := range samples {
		quantized[i] = quantizeValue(x, scale)
	}

	return quantized, scale, 0, nil
}

// ComputeScale returns the natural scale of samples for the given method, before the
// zero-scale substitution that Quantize applies.
//
// A zero result means the sequence has no range to spread over the int4 steps.
func ComputeScale(samples []float32, method format.ScaleMethod) (float32, error) {
	if !method.IsValid() {
		return 0, fmt.Errorf("%w: unknown scale method %d", errs.ErrInvalidArgument, uint8(method))
	}

	if len(samples) == 0 {
		return 0, nil
	}

	lo, hi := samples[0], samples[0]
	for i, x := range samples {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return 0, fmt.Errorf("%w: sample %d is not finite (%v)", errs.ErrInvalidArgument, i, x)
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}

	switch method {
	case format.ScaleMinMax:
		span := hi - lo
		if math.IsInf(float64(span), 0) {
			// float32 range overflowed, widen before dividing
			return float32((float64(hi) - float64(lo)) / minMaxSteps), nil
		}

		return span / minMaxSteps, nil
	default:
		absMax := max(float32(math.Abs(float64(lo))), float32(math.Abs(float64(hi))))
		return absMax / absMaxSteps, nil
	}
}

// quantizeValue divides in float32, rounds half to even and saturates to the int4 range.
func quantizeValue(x, scale float32) int8 {
	r := math.RoundToEven(float64(x / scale))
	if r < MinValue {
		return MinValue
	}
	if r > MaxValue {
		return MaxValue
	}

	return int8(r)
}
