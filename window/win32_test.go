//go:build windows

package window

import "testing"

func TestWin32ScreenSize(t *testing.T) {
	w, h, err := Win32{}.ScreenSize()
	if err != nil {
		t.Fatalf("ScreenSize() error = %v", err)
	}
	if w < 0 || h < 0 {
		t.Errorf("ScreenSize() = %dx%d, want non-negative", w, h)
	}
}

func TestWin32ApplyNullWindow(t *testing.T) {
	tests := []struct {
		name    string
		p       Placement
		wantErr bool
	}{
		{name: "borderless", p: Plan(1920, 1080, 800, 600, true), wantErr: true},
		{name: "bordered", p: Plan(1920, 1080, 800, 600, false), wantErr: true},
		{name: "style only", p: Placement{Borderless: true, ShowInTaskbar: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Win32{}.Apply(0, tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("Apply(0, %+v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}
