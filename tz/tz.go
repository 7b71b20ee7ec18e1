// Package tz resolves IANA time zone names into datetime Zones backed by
// the system or embedded zone database.
//
// It is the zone-database collaborator for package datetime: a named
// zone's offset varies with the instant across daylight saving
// transitions, and this package supplies the offset-at-instant function
// the datetime Builder consumes. Programs that only need UTC or fixed
// offsets never import it and link no zone database.
//
// Resolution goes through time.LoadLocation, so the usual sources apply:
// the system tzdata directory, the ZONEINFO environment variable, or the
// time/tzdata embedded copy.
package tz

import (
	"fmt"
	"sync"
	"time"

	"github.com/theory/datetime"
)

// Resolved zones are memoized process-wide. Once stored an entry is
// never replaced or removed, so a Zone handed out remains valid for the
// life of the process and concurrent readers need no further
// coordination.
//
//nolint:gochecknoglobals
var (
	mu    sync.RWMutex
	zones = make(map[string]*namedZone)
)

// Named resolves an IANA zone name, such as "America/New_York", into a
// Zone. Repeated calls with the same name return the same Zone. An
// unresolvable name fails with datetime.ErrUnknownZone.
func Named(name string) (datetime.Zone, error) {
	mu.RLock()
	zone := zones[name]
	mu.RUnlock()
	if zone != nil {
		return zone, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", datetime.ErrUnknownZone, name)
	}

	mu.Lock()
	defer mu.Unlock()
	if cached := zones[name]; cached != nil {
		// Another goroutine resolved it first; keep its entry.
		return cached, nil
	}
	zone = &namedZone{name: name, loc: loc}
	zones[name] = zone
	return zone, nil
}

// MustNamed is like Named but panics on an unresolvable name. Use it for
// package-level values and tests with known-good names.
func MustNamed(name string) datetime.Zone {
	zone, err := Named(name)
	if err != nil {
		panic(err)
	}
	return zone
}

// Local returns a Zone for the process's local time zone, as determined
// by the time package (the TZ environment variable or the system
// default).
func Local() datetime.Zone {
	return &namedZone{name: "Local", loc: time.Local}
}

// namedZone adapts a time.Location to the datetime.Zone contract. It is
// immutable and safe for concurrent use.
type namedZone struct {
	name string
	loc  *time.Location
}

// OffsetAt returns the offset in seconds east of UTC in effect in the
// zone at the given Unix timestamp.
func (z *namedZone) OffsetAt(seconds int64) int {
	_, offset := time.Unix(seconds, 0).In(z.loc).Zone()
	return offset
}

// String returns the zone name.
func (z *namedZone) String() string { return z.name }
