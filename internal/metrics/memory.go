package metrics

import (
	"fmt"
	"runtime"
)

// MemorySnapshot holds the point-in-time memory reading shown in the
// verbose footer.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use by the demo
	Sys       uint64 // total bytes obtained from the OS
	NumGC     uint32 // number of completed GC cycles
}

// ReadMemory reads current runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc: m.HeapAlloc,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}

// String renders the snapshot as a single footer line.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap_alloc=%d sys=%d num_gc=%d", s.HeapAlloc, s.Sys, s.NumGC)
}
