// Command d3d8info reports what a legacy client sees through the
// translation layer: adapters, display modes, capabilities and format
// support.
//
// Outside Windows it links the HAL backend; build it with
//
//	CGO_ENABLED=0 go build -tags nofakecgo ./cmd/d3d8info
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/d3d8"
	_ "github.com/gogpu/d3d8/backend/d3d9"
	_ "github.com/gogpu/d3d8/backend/hal"
	"github.com/gogpu/d3d8/config"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/window"
)

var (
	cfgFile     string
	backendName string
	traceFile   string
	verbose     bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "d3d8info",
		Short:         "Inspect the legacy Direct3D view of the modern runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "configuration file")
	root.PersistentFlags().StringVar(&backendName, "backend", "", "runtime backend (default from config, then best available)")
	root.PersistentFlags().StringVar(&traceFile, "trace", "", "append a debug trace to this file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to standard error")

	root.AddCommand(
		&cobra.Command{
			Use:   "adapters",
			Short: "List adapters",
			Args:  cobra.NoArgs,
			RunE:  withFactory(listAdapters),
		},
		&cobra.Command{
			Use:   "modes [adapter]",
			Short: "List the display modes of an adapter",
			Args:  cobra.MaximumNArgs(1),
			RunE:  withFactory(listModes),
		},
		&cobra.Command{
			Use:   "caps [adapter]",
			Short: "Print the capabilities of an adapter",
			Args:  cobra.MaximumNArgs(1),
			RunE:  withFactory(printCaps),
		},
		&cobra.Command{
			Use:   "formats [adapter]",
			Short: "Report texture format support",
			Args:  cobra.MaximumNArgs(1),
			RunE:  withFactory(listFormats),
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "d3d8info:", err)
		os.Exit(1)
	}
}

type factoryFunc func(w io.Writer, d *d3d8.Direct3D8, adapter uint32) error

// withFactory opens the configured backend, runs fn and releases the
// factory.
func withFactory(fn factoryFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var adapter uint32
		if len(args) == 1 {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid adapter %q: %w", args[0], err)
			}
			adapter = uint32(n)
		}

		f, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		opts := append(f.Options(), d3d8.WithWindowHost(window.Nop{}))
		if traceFile != "" {
			opts = append(opts, d3d8.WithTraceFile(traceFile))
		}
		if verbose {
			opts = append(opts, d3d8.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))))
		}
		name := backendName
		if name == "" {
			name = f.Backend
		}

		d, err := d3d8.CreateWithBackend(legacy.SDKVersion, name, opts...)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("backend %q produced no runtime", name)
		}
		defer d.Release()

		if adapter >= d.GetAdapterCount() {
			return fmt.Errorf("adapter %d out of range (%d adapters)", adapter, d.GetAdapterCount())
		}
		return fn(cmd.OutOrStdout(), d, adapter)
	}
}

func listAdapters(w io.Writer, d *d3d8.Direct3D8, _ uint32) error {
	for i := range d.GetAdapterCount() {
		var id legacy.AdapterIdentifier
		if err := d.GetAdapterIdentifier(i, 0, &id); err != nil {
			return fmt.Errorf("adapter %d: %w", i, err)
		}
		var cur d3dtypes.DisplayMode
		if err := d.GetAdapterDisplayMode(i, &cur); err != nil {
			return fmt.Errorf("adapter %d: %w", i, err)
		}
		fmt.Fprintf(w, "%d: %s\n", i, id.DescriptionString())
		fmt.Fprintf(w, "   driver:  %s\n", id.DriverString())
		fmt.Fprintf(w, "   vendor:  %04x device %04x\n", id.VendorID, id.DeviceID)
		fmt.Fprintf(w, "   display: %s\n", formatMode(cur))
		fmt.Fprintf(w, "   modes:   %d\n", d.GetAdapterModeCount(i))
	}
	return nil
}

func listModes(w io.Writer, d *d3d8.Direct3D8, adapter uint32) error {
	for i := range d.GetAdapterModeCount(adapter) {
		var m d3dtypes.DisplayMode
		if err := d.EnumAdapterModes(adapter, i, &m); err != nil {
			return fmt.Errorf("mode %d: %w", i, err)
		}
		fmt.Fprintf(w, "%3d  %s\n", i, formatMode(m))
	}
	return nil
}

func printCaps(w io.Writer, d *d3d8.Direct3D8, adapter uint32) error {
	var c legacy.Caps
	if err := d.GetDeviceCaps(adapter, d3dtypes.DevTypeHAL, &c); err != nil {
		return err
	}
	rows := []struct {
		name  string
		value any
	}{
		{"MaxTextureWidth", c.MaxTextureWidth},
		{"MaxTextureHeight", c.MaxTextureHeight},
		{"MaxAnisotropy", c.MaxAnisotropy},
		{"MaxSimultaneousTextures", c.MaxSimultaneousTextures},
		{"MaxTextureBlendStages", c.MaxTextureBlendStages},
		{"MaxStreams", c.MaxStreams},
		{"VertexShaderVersion", fmt.Sprintf("%#08x", c.VertexShaderVersion)},
		{"PixelShaderVersion", fmt.Sprintf("%#08x", c.PixelShaderVersion)},
		{"PresentationIntervals", fmt.Sprintf("%#08x", c.PresentationIntervals)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-24s %v\n", r.name, r.value)
	}
	return nil
}

var probedFormats = []d3dtypes.Format{
	d3dtypes.FormatA8R8G8B8,
	d3dtypes.FormatX8R8G8B8,
	d3dtypes.FormatR5G6B5,
	d3dtypes.FormatA1R5G5B5,
	d3dtypes.FormatA4R4G4B4,
	d3dtypes.FormatA8,
	d3dtypes.FormatL8,
	d3dtypes.FormatDXT1,
	d3dtypes.FormatDXT3,
	d3dtypes.FormatDXT5,
	d3dtypes.FormatD16,
	d3dtypes.FormatD24S8,
	d3dtypes.FormatUYVY,
	d3dtypes.FormatYUY2,
}

func listFormats(w io.Writer, d *d3d8.Direct3D8, adapter uint32) error {
	var cur d3dtypes.DisplayMode
	if err := d.GetAdapterDisplayMode(adapter, &cur); err != nil {
		return err
	}
	for _, f := range probedFormats {
		status := "yes"
		if err := d.CheckDeviceFormat(adapter, d3dtypes.DevTypeHAL, cur.Format, 0, d3dtypes.ResourceTypeTexture, f); err != nil {
			status = "no (" + err.Error() + ")"
		}
		fmt.Fprintf(w, "%-10v %s\n", f, status)
	}
	return nil
}

func formatMode(m d3dtypes.DisplayMode) string {
	return fmt.Sprintf("%dx%d @ %d Hz %v", m.Width, m.Height, m.RefreshRate, m.Format)
}
