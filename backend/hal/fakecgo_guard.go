//go:build (linux || darwin || freebsd) && !cgo && !nofakecgo

package hal

// goffi and purego both define the cgo runtime symbols (_cgo_init and
// friends) when cgo is disabled, and the link fails with duplicated
// definitions. The nofakecgo tag drops goffi's copy and uses purego's.
//
//	CGO_ENABLED=0 go build -tags nofakecgo ./...
var _ = HAL_BACKEND_REQUIRES_BUILD_TAG_nofakecgo
