package correlate

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// transformer holds the FFT plans for one surface size. Plans are
// owned by a single correlation invocation and are not safe for
// concurrent use.
type transformer struct {
	w, h   int
	row    *fourier.CmplxFFT
	col    *fourier.CmplxFFT
	colBuf []complex128
}

func newTransformer(w, h int) *transformer {
	return &transformer{
		w:      w,
		h:      h,
		row:    fourier.NewCmplxFFT(w),
		col:    fourier.NewCmplxFFT(h),
		colBuf: make([]complex128, h),
	}
}

// forward computes the 2-D DFT of a row-major w*h buffer in place:
// row transforms first, then column transforms through a scratch
// column buffer.
func (t *transformer) forward(data []complex128) {
	for y := 0; y < t.h; y++ {
		row := data[y*t.w : (y+1)*t.w]
		t.row.Coefficients(row, row)
	}
	for x := 0; x < t.w; x++ {
		for y := 0; y < t.h; y++ {
			t.colBuf[y] = data[y*t.w+x]
		}
		t.col.Coefficients(t.colBuf, t.colBuf)
		for y := 0; y < t.h; y++ {
			data[y*t.w+x] = t.colBuf[y]
		}
	}
}

// inverse computes the 2-D inverse DFT in place, including the
// 1/(w*h) normalization that the underlying transform leaves to the
// caller.
func (t *transformer) inverse(data []complex128) {
	for y := 0; y < t.h; y++ {
		row := data[y*t.w : (y+1)*t.w]
		t.row.Sequence(row, row)
	}
	scale := complex(1/float64(t.w*t.h), 0)
	for x := 0; x < t.w; x++ {
		for y := 0; y < t.h; y++ {
			t.colBuf[y] = data[y*t.w+x]
		}
		t.col.Sequence(t.colBuf, t.colBuf)
		for y := 0; y < t.h; y++ {
			data[y*t.w+x] = t.colBuf[y] * scale
		}
	}
}

// correlate evaluates the circular cross-correlation of two signals
// given their frequency-domain representations: conjugate-multiply
// elementwise, inverse-transform, and keep the real part.
func (t *transformer) correlate(kernelF, signalF []complex128) []float64 {
	buf := make([]complex128, len(signalF))
	for i := range buf {
		buf[i] = cmplx.Conj(kernelF[i]) * signalF[i]
	}
	t.inverse(buf)

	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = real(v)
	}
	return out
}

// toComplex widens a real sample buffer to complex128 for transforming.
func toComplex(pix []float64) []complex128 {
	out := make([]complex128, len(pix))
	for i, v := range pix {
		out[i] = complex(v, 0)
	}
	return out
}

// probeSize is the edge length of the impulse plane used by
// VerifyTransform. Small enough to be free at startup.
const probeSize = 8

// probeTolerance bounds the acceptable round-trip error. Full float64
// precision leaves errors many orders of magnitude below this.
const probeTolerance = 1e-9

// VerifyTransform probes the transform backend with an off-origin
// impulse: its spectrum must have unit magnitude everywhere, and a
// forward/inverse round-trip must reproduce the impulse within
// tolerance. A failure means the environment cannot represent
// correlation scores at the precision the algorithm requires, and is
// reported as an UnsupportedEnvironmentError.
func VerifyTransform() error {
	t := newTransformer(probeSize, probeSize)

	const impulse = probeSize + 3 // off both axes so row and column paths are exercised
	data := make([]complex128, probeSize*probeSize)
	data[impulse] = 1

	t.forward(data)
	for _, v := range data {
		if math.Abs(cmplx.Abs(v)-1) > probeTolerance {
			return &UnsupportedEnvironmentError{Msg: "impulse spectrum is not flat"}
		}
	}

	t.inverse(data)
	for i, v := range data {
		want := 0.0
		if i == impulse {
			want = 1.0
		}
		if math.Abs(real(v)-want) > probeTolerance || math.Abs(imag(v)) > probeTolerance {
			return &UnsupportedEnvironmentError{Msg: "transform round-trip exceeded tolerance"}
		}
	}
	return nil
}
