package app

import (
	tea "charm.land/bubbletea/v2"
)

// SetMsgSender lets background goroutines (copier timers, config watcher)
// inject messages into the running program.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil {
		return
	}
	a.externalOnce.Do(func() {
		ch := a.externalChan()
		a.externalSender = send
		go a.drainExternalMsgs(ch)
	})
}

// externalChan returns the message channel, creating it on first use.
func (a *App) externalChan() chan tea.Msg {
	a.externalMu.Lock()
	defer a.externalMu.Unlock()
	if a.externalMsgs == nil {
		a.externalMsgs = make(chan tea.Msg, 64)
	}
	return a.externalMsgs
}

// enqueueExternalMsg queues a message for the running program. Messages that
// arrive after Shutdown are dropped: copier hide timers can fire up to the
// full notification window after the last copy, well past a clean quit.
func (a *App) enqueueExternalMsg(msg tea.Msg) {
	if msg == nil {
		return
	}
	a.externalMu.Lock()
	defer a.externalMu.Unlock()
	if a.externalClosed {
		return
	}
	if a.externalMsgs == nil {
		a.externalMsgs = make(chan tea.Msg, 64)
	}
	select {
	case a.externalMsgs <- msg:
	default:
	}
}

// closeExternalMsgs stops the pump. Sends hold the same lock, so nothing can
// write to the channel once the flag is set.
func (a *App) closeExternalMsgs() {
	a.externalMu.Lock()
	defer a.externalMu.Unlock()
	if a.externalClosed {
		return
	}
	a.externalClosed = true
	if a.externalMsgs != nil {
		close(a.externalMsgs)
	}
}

func (a *App) drainExternalMsgs(ch chan tea.Msg) {
	for msg := range ch {
		if msg == nil || a.externalSender == nil {
			continue
		}
		a.externalSender(msg)
	}
}

// pendingExternalMsgs drains queued messages without a sender, for tests and
// for applying state before the program starts.
func (a *App) pendingExternalMsgs() []tea.Msg {
	ch := a.externalChan()
	var msgs []tea.Msg
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return msgs
			}
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}
