package core

import "strconv"

// StatKind enumerates how a stat value should be presented.
type StatKind string

const (
	// StatKindCount denotes a plain integer counter.
	StatKindCount StatKind = "count"
	// StatKindRatio denotes a progress value in [0, 1].
	StatKindRatio StatKind = "ratio"
	// StatKindFlag denotes an on/off state.
	StatKindFlag StatKind = "flag"
)

// Stat describes a single value exposed on a HUD panel.
type Stat struct {
	Key   string
	Label string
	Kind  StatKind
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// StatSnapshot captures the current set of stats exposed by a component.
type StatSnapshot struct {
	Groups []StatGroup
}

// Lookup returns the stat with the given key.
func (s StatSnapshot) Lookup(key string) (Stat, bool) {
	for _, g := range s.Groups {
		for _, st := range g.Stats {
			if st.Key == key {
				return st, true
			}
		}
	}
	return Stat{}, false
}

// StatsProvider exposes a snapshot for the HUD.
type StatsProvider interface {
	Stats() StatSnapshot
}

// CountStat builds an integer stat.
func CountStat(key, label string, v int) Stat {
	return Stat{Key: key, Label: label, Kind: StatKindCount, Value: strconv.Itoa(v)}
}

// RatioStat builds a progress stat formatted with two decimals.
func RatioStat(key, label string, v float64) Stat {
	return Stat{Key: key, Label: label, Kind: StatKindRatio, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

// FlagStat builds an on/off stat.
func FlagStat(key, label string, v bool) Stat {
	return Stat{Key: key, Label: label, Kind: StatKindFlag, Value: strconv.FormatBool(v)}
}
