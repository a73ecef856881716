// Package animals holds the read-only level table for mergeable animals.
package animals

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// MinLevel is the lowest animal level.
	MinLevel = 1
	// MaxLevel is the highest animal level; animals at this level never merge.
	MaxLevel = 60

	levelsPerTier = 10
)

// Tier is the cosmetic grouping of ten consecutive levels.
type Tier uint8

const (
	TierCommon Tier = iota
	TierRare
	TierEpic
	TierLegendary
	TierMythical
	TierDivine
)

var tierNames = [...]string{"common", "rare", "epic", "legendary", "mythical", "divine"}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "unknown"
}

// TierFor maps a level to its tier, clamped at the top tier.
func TierFor(level int) Tier {
	if level < MinLevel {
		level = MinLevel
	}
	idx := (level - 1) / levelsPerTier
	if idx > int(TierDivine) {
		idx = int(TierDivine)
	}
	return Tier(idx)
}

type species struct {
	name  string
	icon  string
	image string
}

const imageBase = "https://raw.githubusercontent.com/Tarikul-Islam-Anik/Animated-Fluent-Emojis/master/Emojis/Animals/"

var roster = [...]species{
	{"Rabbit", "🐇", imageBase + "Rabbit.png"},
	{"Deer", "🦌", imageBase + "Deer.png"},
	{"Tiger", "🐅", imageBase + "Tiger.png"},
	{"Leopard", "🐆", imageBase + "Leopard.png"},
	{"Lion", "🦁", imageBase + "Lion.png"},
	{"Elephant", "🐘", imageBase + "Elephant.png"},
	{"Crocodile", "🐊", imageBase + "Crocodile.png"},
	{"Buffalo", "🐃", imageBase + "Ox.png"},
}

var tierColors = [...]string{"green", "orange", "red", "purple", "blue", "gold"}

// Animal is the immutable description of one level.
type Animal struct {
	Level   int
	Name    string
	Species string
	Icon    string
	Image   string
	Color   string
	Tier    Tier
}

var table = buildTable()

func buildTable() [MaxLevel + 1]Animal {
	var t [MaxLevel + 1]Animal
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		sp := roster[(lvl-1)%len(roster)]
		tier := TierFor(lvl)
		t[lvl] = Animal{
			Level:   lvl,
			Name:    fmt.Sprintf("%s Lv.%d", sp.name, lvl),
			Species: sp.name,
			Icon:    sp.icon,
			Image:   sp.image,
			Color:   tierColors[tier],
			Tier:    tier,
		}
	}
	return t
}

// Lookup returns the table entry for level.
func Lookup(level int) (Animal, bool) {
	if level < MinLevel || level > MaxLevel {
		return Animal{}, false
	}
	return table[level], true
}

// Instance is an animal placed on the board. ID is a rendering key only.
type Instance struct {
	ID string
	Animal
}

// NewInstance creates a placed animal of the given level.
func NewInstance(level int) (Instance, bool) {
	a, ok := Lookup(level)
	if !ok {
		return Instance{}, false
	}
	return Instance{ID: uuid.NewString(), Animal: a}, true
}
