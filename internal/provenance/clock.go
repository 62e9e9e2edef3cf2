package provenance

import (
	"fmt"
	"runtime"
	"time"
)

// Clock supplies the wall-clock time stamped on a record.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Platform describes the runtime that produced a result.
type Platform interface {
	Describe() string
}

// RuntimePlatform describes the running Go toolchain and target,
// e.g. "go1.25.0 linux/amd64 (gc)".
type RuntimePlatform struct{}

// Describe returns the runtime descriptor.
func (RuntimePlatform) Describe() string {
	return fmt.Sprintf("%s %s/%s (%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.Compiler)
}

// StaticPlatform returns a fixed descriptor.
type StaticPlatform string

// Describe returns the descriptor.
func (p StaticPlatform) Describe() string {
	return string(p)
}
