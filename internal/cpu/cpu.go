// Package cpu provides CPU feature detection for field kernel selection.
//
// Detection runs once, on the first call to DetectFeatures, and the result is
// cached. Tests may override the detected features with SetForcedFeatures.
//
// Setting the FIXFADES_NO_SIMD environment variable to a true value forces
// the generic kernels regardless of what the hardware reports.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// NoSIMDEnvVar names the environment variable that disables SIMD kernels.
const NoSIMDEnvVar = "FIXFADES_NO_SIMD"

// SIMDLevel represents a SIMD instruction set extension level a kernel
// requires. Levels are not ordered across architectures.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (256-bit float vectors).
	SIMDAVX

	// SIMDAVXFMA indicates x86-64 AVX together with FMA3.
	SIMDAVXFMA

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVXFMA:
		return "AVX+FMA"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX  bool // Advanced Vector Extensions
	HasAVX2 bool // Advanced Vector Extensions 2
	HasFMA  bool // Fused multiply-add (FMA3)

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric disables all SIMD kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection for testing.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once and cached. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		if NoSIMDEnv() {
			detectedFeatures.ForceGeneric = true
		}
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVXFMA reports whether both AVX and FMA3 are available and not disabled.
func HasAVXFMA() bool {
	return Supports(DetectFeatures(), SIMDAVXFMA)
}

// NoSIMDEnv reports whether FIXFADES_NO_SIMD requests generic kernels.
// Any non-empty value that does not parse as a bool counts as true.
func NoSIMDEnv() bool {
	val := os.Getenv(NoSIMDEnvVar)
	if val == "" {
		return false
	}

	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

// SetForcedFeatures overrides CPU feature detection with f.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVXFMA:
		return features.HasAVX && features.HasFMA
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
