package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		width, height int
		wantW, wantH  int32
	}{
		{1280, 720, 1280, 720},
		{0, 720, 1, 720},
		{1280, -5, 1280, 1},
		{0, 0, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.width, tt.height)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = %d, %d, want %d, %d",
				tt.width, tt.height, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	// There is no GL context here; reallocating would crash.
	fb := &Framebuffer{width: 640, height: 480}
	fb.Resize(640, 480)
	if w, h := fb.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	// A minimised window reports 0x0, which clamps to the current 1x1
	tiny := &Framebuffer{width: 1, height: 1}
	tiny.Resize(0, 0)
	if w, h := tiny.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %d, %d, want 1, 1", w, h)
	}
}
