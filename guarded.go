package chronometer

import (
	"sync"
	"time"

	"github.com/go-logr/logr"
	cmtime "github.com/nowlow/chronometer/time"
)

// Snapshot is a consistent view of a Chronometer taken under a single lock.
type Snapshot struct {
	Started  bool
	Paused   bool
	Running  bool
	Laps     []time.Duration
	Duration time.Duration
	Set      bool // false when Duration is unset
	Text     string
}

// Guarded serializes access to a Chronometer so that it can be shared between
// goroutines.
type Guarded struct {
	mtx sync.Mutex
	c   *Chronometer
	log logr.Logger
}

func NewGuarded(clock cmtime.Clock) *Guarded {
	return &Guarded{
		c:   NewWithClock(clock),
		log: logr.Discard(),
	}
}

// WithLogger sets the logger state changes are reported to at V(1).
func (g *Guarded) WithLogger(log logr.Logger) *Guarded {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	g.log = log
	return g
}

func (g *Guarded) Start() {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	g.c.Start()
	g.log.V(1).Info("chronometer started", "duration", g.c.String())
}

func (g *Guarded) Pause() {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	g.c.Pause()
	g.log.V(1).Info("chronometer paused", "duration", g.c.String())
}

func (g *Guarded) Lap() {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	before := len(g.c.laps)
	g.c.Lap()
	if len(g.c.laps) == before {
		g.log.V(1).Info("lap ignored, chronometer not running")
		return
	}
	g.log.V(1).Info("lap recorded", "lap", len(g.c.laps), "elapsed", g.c.laps[before])
}

func (g *Guarded) Reset() {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	g.c.Reset()
	g.log.V(1).Info("chronometer reset")
}

func (g *Guarded) Duration() (time.Duration, bool) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.c.Duration()
}

func (g *Guarded) String() string {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.c.String()
}

func (g *Guarded) GoString() string {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.c.GoString()
}

func (g *Guarded) Snapshot() Snapshot {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	d, ok := g.c.Duration()
	text := notStarted
	if ok {
		text = formatMillis(d)
	}
	return Snapshot{
		Started:  g.c.started,
		Paused:   g.c.paused,
		Running:  g.c.running,
		Laps:     g.c.Laps(),
		Duration: d,
		Set:      ok,
		Text:     text,
	}
}
