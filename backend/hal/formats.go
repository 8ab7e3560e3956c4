package hal

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d3d8/d3dtypes"
)

// textureFormats maps the legacy surface formats the HAL can sample or
// render to its texture formats. Formats without an entry are unsupported.
var textureFormats = map[d3dtypes.Format]gputypes.TextureFormat{
	d3dtypes.FormatA8R8G8B8: gputypes.TextureFormatBGRA8Unorm,
	d3dtypes.FormatX8R8G8B8: gputypes.TextureFormatBGRA8Unorm,
	d3dtypes.FormatA8B8G8R8: gputypes.TextureFormatRGBA8Unorm,
	d3dtypes.FormatX8B8G8R8: gputypes.TextureFormatRGBA8Unorm,
	d3dtypes.FormatA8:       gputypes.TextureFormatR8Unorm,
	d3dtypes.FormatL8:       gputypes.TextureFormatR8Unorm,
	d3dtypes.FormatD24S8:    gputypes.TextureFormatDepth24PlusStencil8,
	d3dtypes.FormatD24X8:    gputypes.TextureFormatDepth24PlusStencil8,
}

// displayFormats are the formats display modes are reported in.
var displayFormats = [...]d3dtypes.Format{
	d3dtypes.FormatX8R8G8B8,
	d3dtypes.FormatA8R8G8B8,
}

func textureFormat(f d3dtypes.Format) (gputypes.TextureFormat, bool) {
	tf, ok := textureFormats[f]
	return tf, ok
}

func isDisplayFormat(f d3dtypes.Format) bool {
	for _, d := range displayFormats {
		if d == f {
			return true
		}
	}
	return false
}

func isDepthFormat(f d3dtypes.Format) bool {
	tf, ok := textureFormat(f)
	return ok && tf == gputypes.TextureFormatDepth24PlusStencil8
}

// isRenderFormat reports whether f can back a color render target.
func isRenderFormat(f d3dtypes.Format) bool {
	tf, ok := textureFormat(f)
	return ok && (tf == gputypes.TextureFormatBGRA8Unorm || tf == gputypes.TextureFormatRGBA8Unorm)
}
