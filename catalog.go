package d3d8

import (
	"log/slog"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// MaxAdapters is the most adapters a factory reports. Adapters past the
// ceiling are hidden.
const MaxAdapters = 8

// catalogFormats are the display formats enumerated into the catalog, in
// catalog order.
var catalogFormats = [...]d3dtypes.Format{
	d3dtypes.FormatA8R8G8B8,
	d3dtypes.FormatX8R8G8B8,
	d3dtypes.FormatR5G6B5,
	d3dtypes.FormatX1R5G5B5,
	d3dtypes.FormatA1R5G5B5,
}

// catalog is the adapter and display mode list, built once and read-only
// afterwards.
type catalog struct {
	modes [][]d3dtypes.DisplayMode
}

// buildCatalog enumerates every catalog format on every adapter up to
// MaxAdapters. Modes are ordered by format, then by runtime order. A mode the
// runtime fails to report keeps its slot as a zero mode of its format, so
// counts and indices match the runtime.
func buildCatalog(rt modern.Runtime, log *slog.Logger) *catalog {
	count := min(rt.GetAdapterCount(), MaxAdapters)
	c := &catalog{modes: make([][]d3dtypes.DisplayMode, count)}

	for adapter := range count {
		for _, format := range catalogFormats {
			n := rt.GetAdapterModeCount(adapter, format)
			for mode := range n {
				m, err := rt.EnumAdapterModes(adapter, format, mode)
				if err != nil {
					log.Debug("display mode unavailable", "adapter", adapter, "format", format, "mode", mode, "err", err)
					m = d3dtypes.DisplayMode{Format: format}
				}
				c.modes[adapter] = append(c.modes[adapter], m)
			}
		}
		log.Debug("enumerated adapter", "adapter", adapter, "modes", len(c.modes[adapter]))
	}
	return c
}

func (c *catalog) adapterCount() uint32 {
	return uint32(len(c.modes))
}

// modeCount returns 0 for adapters past the catalog.
func (c *catalog) modeCount(adapter uint32) uint32 {
	if adapter >= c.adapterCount() {
		return 0
	}
	return uint32(len(c.modes[adapter]))
}

func (c *catalog) mode(adapter, mode uint32) (d3dtypes.DisplayMode, bool) {
	if adapter >= c.adapterCount() || mode >= uint32(len(c.modes[adapter])) {
		return d3dtypes.DisplayMode{}, false
	}
	return c.modes[adapter][mode], true
}
