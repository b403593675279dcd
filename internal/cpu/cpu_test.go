package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesStable(t *testing.T) {
	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Errorf("repeated detection differs: %+v vs %+v", a, b)
	}
}
