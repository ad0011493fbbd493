package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Fatalf("detection not stable: %+v vs %+v", a, b)
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX: true, HasFMA: true, Architecture: "amd64"})
	if !HasAVXFMA() {
		t.Fatal("HasAVXFMA() = false with forced AVX+FMA")
	}

	SetForcedFeatures(Features{HasAVX: true, Architecture: "amd64"})
	if HasAVXFMA() {
		t.Fatal("HasAVXFMA() = true without FMA")
	}

	ResetDetection()
	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Fatalf("after reset Architecture = %q, want %q", got, runtime.GOARCH)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none-always", Features{}, SIMDNone, true},
		{"avx-fma", Features{HasAVX: true, HasFMA: true}, SIMDAVXFMA, true},
		{"avx-only", Features{HasAVX: true}, SIMDAVXFMA, false},
		{"fma-only", Features{HasFMA: true}, SIMDAVXFMA, false},
		{"force-generic", Features{HasAVX: true, HasFMA: true, ForceGeneric: true}, SIMDAVXFMA, false},
		{"force-generic-none", Features{ForceGeneric: true}, SIMDNone, true},
		{"avx2", Features{HasAVX2: true}, SIMDAVX2, true},
		{"neon", Features{HasNEON: true}, SIMDNEON, true},
		{"unknown", Features{HasAVX: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestNoSIMDEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(NoSIMDEnvVar, tt.val)
			if got := NoSIMDEnv(); got != tt.want {
				t.Fatalf("NoSIMDEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestNoSIMDEnvForcesGeneric(t *testing.T) {
	t.Setenv(NoSIMDEnvVar, "1")
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if !f.ForceGeneric {
		t.Fatal("ForceGeneric = false with FIXFADES_NO_SIMD=1")
	}
	if Supports(f, SIMDAVXFMA) {
		t.Fatal("AVX+FMA supported despite FIXFADES_NO_SIMD")
	}
}

func TestSIMDLevelString(t *testing.T) {
	if got := SIMDAVXFMA.String(); got != "AVX+FMA" {
		t.Fatalf("String() = %q", got)
	}
	if got := SIMDLevel(42).String(); got != "Unknown" {
		t.Fatalf("String() = %q", got)
	}
}
