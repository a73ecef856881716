package board

import (
	"fmt"

	"go.uber.org/zap"

	"forest-merge/internal/core"
)

// WatchAd grants the ad bonus and closes the dialog.
func (c *Controller) WatchAd() {
	if c.closed {
		return
	}
	c.modal = ModalNone
	bonus := c.cfg.Economy.AdBonus
	c.store.Earn(bonus, 0)
	c.notify(NoticeAdReward, fmt.Sprintf("Reward received: %d coins", bonus))
	c.sound.Play(core.CueReward)
	c.log.Debug("ad bonus", zap.Int("bonus", bonus), zap.Int("coins", c.store.Coins()))
}

// AutoMerge reports whether the auto-merge flag is on. The flag never merges
// anything by itself.
func (c *Controller) AutoMerge() bool { return c.autoMerge }

// ToggleAutoMerge flips the auto-merge flag. When switched on it clears
// itself after Timers.AutoMerge.
func (c *Controller) ToggleAutoMerge() bool {
	if c.closed {
		return c.autoMerge
	}
	if c.autoMergeTimer != nil {
		c.autoMergeTimer.Stop()
		c.autoMergeTimer = nil
	}
	c.autoMerge = !c.autoMerge
	if c.autoMerge {
		secs := int(c.cfg.Timers.AutoMerge.Seconds())
		c.notify(NoticeAutoMergeOn, fmt.Sprintf("Auto merge on (%ds)", secs))
		c.autoMergeTimer = c.sched.After(c.cfg.Timers.AutoMerge, func() {
			c.autoMerge = false
			c.autoMergeTimer = nil
		})
	} else {
		c.notify(NoticeAutoMergeOff, "Auto merge off")
	}
	c.log.Debug("auto merge", zap.Bool("active", c.autoMerge))
	return c.autoMerge
}
