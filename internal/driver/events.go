package driver

// Event reports the completion of one file inside a directory run.
type Event struct {
	Path     string
	Index    int
	Total    int
	Changed  bool
	CacheHit bool
	Failed   bool
}

// Sink receives progress events. Implementations must be safe for
// concurrent calls; the runner emits from worker goroutines.
type Sink func(Event)
