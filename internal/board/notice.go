package board

import "fmt"

// NoticeKind classifies a transient message shown to the player.
type NoticeKind uint8

const (
	NoticeNone NoticeKind = iota
	NoticeNoFunds
	NoticeBoardFull
	NoticeSpinBusy
	NoticeAdThanks
	NoticeAdReward
	NoticeWheelWin
	NoticeAutoMergeOn
	NoticeAutoMergeOff
)

// Notice is the single transient message currently on screen.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Active reports whether a notice is showing.
func (n Notice) Active() bool { return n.Kind != NoticeNone }

// Modal identifies the dialog currently open over the board.
type Modal string

const (
	ModalNone       Modal = ""
	ModalWheel      Modal = "wheel"
	ModalAd         Modal = "ad"
	ModalInvite     Modal = "invite"
	ModalDaily      Modal = "daily"
	ModalBoost      Modal = "boost"
	ModalLevel      Modal = "level"
	ModalTasks      Modal = "tasks"
	ModalSpawnLimit Modal = "spawnLimit"
)

// Celebration is the short-lived merge effect.
type Celebration struct {
	Slot   int
	Level  int
	Reward int
	Text   string
}

func (c *Controller) notify(kind NoticeKind, text string) {
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
	}
	c.notice = Notice{Kind: kind, Text: text}
	c.noticeTimer = c.sched.After(c.cfg.Timers.Notice, func() {
		c.notice = Notice{}
		c.noticeTimer = nil
	})
}

func (c *Controller) celebrate(slot, level, reward int) {
	if c.celebrationTimer != nil {
		c.celebrationTimer.Stop()
	}
	c.celebration = &Celebration{Slot: slot, Level: level, Reward: reward, Text: fmt.Sprintf("+%d", reward)}
	c.celebrationTimer = c.sched.After(c.cfg.Timers.Celebration, func() {
		c.celebration = nil
		c.celebrationTimer = nil
	})
}

// Notice returns the active notice, if any.
func (c *Controller) Notice() Notice { return c.notice }

// Celebration returns the active merge effect, or nil.
func (c *Controller) Celebration() *Celebration {
	if c.celebration == nil {
		return nil
	}
	cp := *c.celebration
	return &cp
}

// Modal returns the open dialog.
func (c *Controller) Modal() Modal { return c.modal }

// OpenModal shows a dialog. The spawn-limit dialog is opened by Spawn only.
func (c *Controller) OpenModal(m Modal) {
	if c.closed || m == ModalSpawnLimit {
		return
	}
	c.modal = m
}

// CloseModal dismisses the open dialog.
func (c *Controller) CloseModal() {
	c.modal = ModalNone
}
