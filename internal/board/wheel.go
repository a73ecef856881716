package board

import (
	"fmt"

	"go.uber.org/zap"

	"forest-merge/internal/core"
	pcore "forest-merge/pkg/core"
)

// Spinning reports whether the wheel is turning.
func (c *Controller) Spinning() bool { return c.spinning }

// Rotation returns the display angle of the wheel in degrees.
func (c *Controller) Rotation() int { return c.rotation }

// LastReward returns the payout of the most recent completed spin.
func (c *Controller) LastReward() int { return c.lastReward }

// Spin pays for a wheel turn. The reward is drawn and credited when the spin
// resolves, Wheel.Duration later.
func (c *Controller) Spin() bool {
	if c.closed {
		return false
	}
	if c.spinning {
		c.notify(NoticeSpinBusy, "The wheel is already spinning")
		return false
	}
	cost := c.cfg.Wheel.Cost
	if err := c.store.Spend(cost); err != nil {
		c.notify(NoticeNoFunds, "Not enough coins!")
		c.log.Debug("spin rejected", zap.Error(err))
		return false
	}
	c.spinning = true
	c.rotation = c.cfg.Wheel.BaseTurns + c.rng.IntN(c.cfg.Wheel.Jitter)
	c.spinTimer = c.sched.After(c.cfg.Wheel.Duration, c.resolveSpin)
	c.log.Debug("spin", zap.Int("cost", cost), zap.Int("rotation", c.rotation))
	return true
}

func (c *Controller) resolveSpin() {
	c.spinTimer = nil
	c.spinning = false
	reward := pcore.IntRange(c.rng, c.cfg.Wheel.RewardMin, c.cfg.Wheel.RewardMax)
	c.lastReward = reward
	c.store.Earn(reward, reward)
	c.notify(NoticeWheelWin, fmt.Sprintf("You won %d coins!", reward))
	c.sound.Play(core.CueReward)
	c.log.Debug("spin resolved", zap.Int("reward", reward), zap.Int("coins", c.store.Coins()))
}
