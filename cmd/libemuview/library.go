package main

import (
	"log"
	"os"
	"sync"

	"github.com/ezrec/emuview/boundary"
	"github.com/ezrec/emuview/channel"
	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/config"
	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/view"
)

const (
	ENV_BACKEND = "EMUVIEW_BACKEND" // View backend for start_view.
	ENV_VERBOSE = "EMUVIEW_VERBOSE" // Any non-empty value enables verbose logging.
)

// library is the process wide instance behind the C interface, which
// carries no handle of its own.
type library struct {
	mutex      sync.Mutex
	configPath string

	once     sync.Once
	shared   *emulator.Shared
	actor    *emulator.Actor
	boundary *boundary.Boundary
}

var lib library

// setConfig selects the configuration file. It only has an effect before
// the library is started.
func (l *library) setConfig(path string) (ok bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.shared != nil {
		return false
	}

	l.configPath = path
	return true
}

func (l *library) start() {
	l.once.Do(func() {
		l.mutex.Lock()
		defer l.mutex.Unlock()

		verbose := os.Getenv(ENV_VERBOSE) != ""

		var st *emulator.State
		if l.configPath != "" {
			st = config.Load(l.configPath)
		} else {
			st = emulator.TestState()
		}
		st.Verbose = verbose

		sender, receiver := channel.New[command.Command](channel.Options{})

		l.shared = emulator.NewShared(st)
		l.actor = emulator.NewActor(l.shared, receiver)
		l.actor.Verbose = verbose
		l.boundary = boundary.New(sender)
		l.boundary.Verbose = verbose

		l.actor.Start()
	})
}

// entry returns the started boundary.
func (l *library) entry() *boundary.Boundary {
	l.start()
	return l.boundary
}

// view runs the render loop named by ENV_BACKEND, "window" by default.
func (l *library) view() {
	l.start()

	backend := os.Getenv(ENV_BACKEND)
	if backend == "" {
		backend = "window"
	}

	renderer, err := view.New(backend)
	if err != nil {
		log.Printf("emuview: %v", err)
		return
	}

	err = renderer.Run(l.shared)
	if err != nil {
		log.Printf("emuview: %v", err)
	}
}

// shutdown drops the boundary sender and waits for the actor to drain.
func (l *library) shutdown() {
	l.start()
	l.boundary.Close()
	<-l.actor.Done()
}
