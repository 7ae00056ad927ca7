// plugins/autosave/autosave.go
package autosave

import (
	"sync"
	"time"

	"github.com/mutablevalue/Code-Editor/internal/logger"
)

// Autosave periodically asks the control loop to persist a dirty document.
// It never touches the session itself: saves must run on the single control
// goroutine, so the ticker only emits on Ticks and the main loop decides
// whether a save is actually due (dirty, has a path, nothing in flight).
type Autosave struct {
	interval time.Duration

	ticks    chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates an autosave ticker with the given interval.
func New(interval time.Duration) *Autosave {
	return &Autosave{
		interval: interval,
		ticks:    make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// Ticks is the channel the control loop selects on.
func (a *Autosave) Ticks() <-chan struct{} { return a.ticks }

// Start launches the ticker goroutine.
func (a *Autosave) Start() {
	a.wg.Add(1)
	go a.loop()
	logger.Debugf("autosave: started, interval %v", a.interval)
}

// Stop signals the ticker goroutine and waits for it.
func (a *Autosave) Stop() {
	close(a.stopChan)
	a.wg.Wait()
	logger.Debugf("autosave: stopped")
}

func (a *Autosave) loop() {
	defer a.wg.Done()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Drop the tick if the previous one was not consumed yet.
			select {
			case a.ticks <- struct{}{}:
			default:
			}
		case <-a.stopChan:
			return
		}
	}
}
