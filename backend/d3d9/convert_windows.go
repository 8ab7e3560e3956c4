//go:build windows

package d3d9

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gonutz/d3d9"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// result maps a binding error to its status code.
func result(err error) error {
	if err == nil {
		return nil
	}
	var coded interface{ Code() int32 }
	if errors.As(err, &coded) {
		return d3dtypes.FromCode(coded.Code())
	}
	return fmt.Errorf("%w: %w", d3dtypes.ErrDriverInternalError, err)
}

// The descriptor types share their layout with the binding's; checkLayouts
// verifies the sizes before the backend is registered.

func displayMode(m d3d9.DISPLAYMODE) d3dtypes.DisplayMode {
	return *(*d3dtypes.DisplayMode)(unsafe.Pointer(&m))
}

func caps(c d3d9.CAPS9) modern.Caps {
	return *(*modern.Caps)(unsafe.Pointer(&c))
}

func identifier(id d3d9.ADAPTER_IDENTIFIER9) modern.AdapterIdentifier {
	return *(*modern.AdapterIdentifier)(unsafe.Pointer(&id))
}

func toPresentParameters(pp *modern.PresentParameters) d3d9.PRESENT_PARAMETERS {
	return *(*d3d9.PRESENT_PARAMETERS)(unsafe.Pointer(pp))
}

func fromPresentParameters(dst *modern.PresentParameters, src d3d9.PRESENT_PARAMETERS) {
	*dst = *(*modern.PresentParameters)(unsafe.Pointer(&src))
}

// bytecode views shader tokens as bytes.
func bytecode(function []uint32) []byte {
	if len(function) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&function[0])), len(function)*4)
}
