package d3dtypes

import (
	"errors"
	"fmt"
)

// Result is an HRESULT status code. Negative values are failures.
//
// Result implements error so that failure codes travel through ordinary Go
// error returns; success is always reported as a nil error, never as a
// Result value.
type Result int32

// hresultBias turns the unsigned spelling of an HRESULT into its int32 value.
const hresultBias = 1 << 32

// Error codes shared by both interface generations.
const (
	OK Result = 0

	ErrWrongTextureFormat  Result = 0x88760818 - hresultBias
	ErrDriverInternalError Result = 0x88760827 - hresultBias
	ErrNotFound            Result = 0x88760866 - hresultBias
	ErrMoreData            Result = 0x88760867 - hresultBias
	ErrDeviceLost          Result = 0x88760868 - hresultBias
	ErrDeviceNotReset      Result = 0x88760869 - hresultBias
	ErrNotAvailable        Result = 0x8876086A - hresultBias
	ErrInvalidCall         Result = 0x8876086C - hresultBias
	ErrOutOfVideoMemory    Result = 0x8876017C - hresultBias

	ErrNoInterface Result = 0x80004002 - hresultBias
	ErrPointer     Result = 0x80004003 - hresultBias
	ErrFail        Result = 0x80004005 - hresultBias
	ErrOutOfMemory Result = 0x8007000E - hresultBias
)

var resultNames = map[Result]string{
	OK:                     "ok",
	ErrWrongTextureFormat:  "wrong texture format",
	ErrDriverInternalError: "driver internal error",
	ErrNotFound:            "not found",
	ErrMoreData:            "more data",
	ErrDeviceLost:          "device lost",
	ErrDeviceNotReset:      "device not reset",
	ErrNotAvailable:        "not available",
	ErrInvalidCall:         "invalid call",
	ErrOutOfVideoMemory:    "out of video memory",
	ErrNoInterface:         "no such interface",
	ErrPointer:             "invalid pointer",
	ErrFail:                "unspecified failure",
	ErrOutOfMemory:         "out of memory",
}

// Error implements error.
func (r Result) Error() string {
	if name, ok := resultNames[r]; ok {
		return "d3d: " + name
	}
	return fmt.Sprintf("d3d: hresult 0x%08X", uint32(r))
}

// Code returns the raw HRESULT bits.
func (r Result) Code() uint32 {
	return uint32(r)
}

// Failed reports whether r is a failure code.
func (r Result) Failed() bool {
	return r < 0
}

// ResultOf maps err back to its status code. A nil error is OK; an error
// outside the Result domain is reported as ErrDriverInternalError.
func ResultOf(err error) Result {
	if err == nil {
		return OK
	}
	var r Result
	if errors.As(err, &r) {
		return r
	}
	return ErrDriverInternalError
}

// FromCode converts a raw status code into an error, nil for success codes.
func FromCode(code int32) error {
	if code >= 0 {
		return nil
	}
	return Result(code)
}
