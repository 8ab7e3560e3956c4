package hal

import (
	"log/slog"

	"github.com/gogpu/d3d8"
)

// slogger returns the package logger shared with the d3d8 package.
func slogger() *slog.Logger { return d3d8.Logger() }
