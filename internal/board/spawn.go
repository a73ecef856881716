package board

import (
	"time"

	"go.uber.org/zap"

	"forest-merge/internal/animals"
	"forest-merge/internal/core"
)

// SpawnResult describes the outcome of a spawn request.
type SpawnResult uint8

const (
	SpawnIgnored SpawnResult = iota
	SpawnPlaced
	SpawnLimited
	SpawnNoFunds
	SpawnBoardFull
	SpawnCoolingDown
)

func (r SpawnResult) String() string {
	switch r {
	case SpawnPlaced:
		return "placed"
	case SpawnLimited:
		return "limited"
	case SpawnNoFunds:
		return "no funds"
	case SpawnBoardFull:
		return "board full"
	case SpawnCoolingDown:
		return "cooling down"
	}
	return "ignored"
}

// SpawnCount returns the paid spawns since the limit was last reset.
func (c *Controller) SpawnCount() int { return c.spawnCount }

// CooldownRemaining returns what is left of the spawn-limit wait.
func (c *Controller) CooldownRemaining() time.Duration { return c.cooldownLeft }

// Spawn buys a level-1 animal. Once the consecutive-spawn limit is hit the
// spawn-limit dialog opens and the cooldown restarts instead.
func (c *Controller) Spawn() SpawnResult {
	if c.closed {
		return SpawnIgnored
	}
	if c.spawnCount >= c.cfg.Spawn.Limit {
		c.modal = ModalSpawnLimit
		c.startCooldown()
		c.log.Debug("spawn limited", zap.Int("count", c.spawnCount))
		return SpawnLimited
	}
	return c.spawn()
}

// WatchSpawnAd resets the limit from the spawn-limit dialog and spawns at once.
func (c *Controller) WatchSpawnAd() SpawnResult {
	if c.closed || c.modal != ModalSpawnLimit {
		return SpawnIgnored
	}
	c.resetLimit()
	c.notify(NoticeAdThanks, "Thanks for watching!")
	return c.spawn()
}

// ContinueSpawn resets the limit once the cooldown has run out and spawns.
func (c *Controller) ContinueSpawn() SpawnResult {
	if c.closed || c.modal != ModalSpawnLimit {
		return SpawnIgnored
	}
	if c.cooldownLeft > 0 {
		return SpawnCoolingDown
	}
	c.resetLimit()
	return c.spawn()
}

func (c *Controller) resetLimit() {
	c.modal = ModalNone
	c.spawnCount = 0
	c.cooldownLeft = 0
	if c.cooldownTimer != nil {
		c.cooldownTimer.Stop()
		c.cooldownTimer = nil
	}
}

func (c *Controller) spawn() SpawnResult {
	price := c.cfg.Spawn.Price
	if !c.store.CanAfford(price) {
		c.notify(NoticeNoFunds, "Not enough coins!")
		c.log.Debug("spawn rejected", zap.String("reason", "funds"), zap.Int("coins", c.store.Coins()))
		return SpawnNoFunds
	}
	slot := c.firstEmpty()
	if slot < 0 {
		c.notify(NoticeBoardFull, "The cage is full!")
		c.log.Debug("spawn rejected", zap.String("reason", "board full"))
		return SpawnBoardFull
	}
	inst, ok := animals.NewInstance(animals.MinLevel)
	if !ok {
		return SpawnIgnored
	}
	if err := c.store.Spend(price); err != nil {
		c.notify(NoticeNoFunds, "Not enough coins!")
		return SpawnNoFunds
	}
	c.slots[slot].Animal = &inst
	c.spawnCount++
	c.sound.Play(core.CueSpawn)
	c.log.Debug("spawn",
		zap.Int("slot", slot),
		zap.Int("count", c.spawnCount),
		zap.Int("coins", c.store.Coins()),
	)
	return SpawnPlaced
}

// startCooldown (re)starts the once-per-second countdown.
func (c *Controller) startCooldown() {
	if c.cooldownTimer != nil {
		c.cooldownTimer.Stop()
	}
	c.cooldownLeft = c.cfg.Spawn.Cooldown
	c.scheduleCooldownTick()
}

func (c *Controller) scheduleCooldownTick() {
	if c.cooldownLeft <= 0 {
		c.cooldownTimer = nil
		return
	}
	step := time.Second
	if c.cooldownLeft < step {
		step = c.cooldownLeft
	}
	c.cooldownTimer = c.sched.After(step, func() {
		c.cooldownLeft -= step
		if c.cooldownLeft < 0 {
			c.cooldownLeft = 0
		}
		c.scheduleCooldownTick()
	})
}
