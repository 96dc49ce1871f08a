// Package profile provides optional runtime profiling for the gtcalc
// command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof"
// build tag. When built without the tag (the default), all operations
// are no-ops with zero runtime overhead.
//
// With the tag enabled, the supported modes are allocs, block, clock,
// cpu, goroutine, heap, mem, mutex, thread, and trace; use [Modes] to
// retrieve the list programmatically. Profile files are written to the
// configured directory with names matching the mode (cpu.pprof,
// mem.pprof, ...) and analyzed with go tool pprof:
//
//	go build -tags pprof -o gtcalc .
//	./gtcalc --pprof-mode=cpu 'sin(1)^2+cos(1)^2'
//	go tool pprof ./gtcalc ~/.cache/gtcalc/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
