// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// Host describes the machine a run executes on. The cache line size is the
// granularity that makes the kj order cheaper than jk on row-major data.
type Host struct {
	GOOS           string
	GOARCH         string
	NumCPU         int
	CacheLineBytes int
	Features       []string
}

// HostInfo reads runtime and CPU feature information.
func HostInfo() Host {
	return Host{
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		NumCPU:         runtime.NumCPU(),
		CacheLineBytes: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:       cpuFeatures(),
	}
}

// cpuFeatures lists the vector extensions relevant to the inner loops.
func cpuFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			out = append(out, "sse2")
		}
		if cpu.X86.HasAVX2 {
			out = append(out, "avx2")
		}
		if cpu.X86.HasFMA {
			out = append(out, "fma")
		}
		if cpu.X86.HasAVX512F {
			out = append(out, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "asimd")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "sve")
		}
	}

	return out
}

// MarshalZerologObject lets a Host be logged as a nested object.
func (h Host) MarshalZerologObject(e *zerolog.Event) {
	e.Str("goos", h.GOOS).
		Str("goarch", h.GOARCH).
		Int("cpus", h.NumCPU).
		Int("cache_line", h.CacheLineBytes).
		Strs("features", h.Features)
}
