// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/emuview/boundary"
	"github.com/ezrec/emuview/channel"
	"github.com/ezrec/emuview/command"
	"github.com/ezrec/emuview/config"
	"github.com/ezrec/emuview/emulator"
	"github.com/ezrec/emuview/view"
)

var overflows = map[string]channel.Overflow{
	"block":       channel.OVERFLOW_BLOCK,
	"drop-oldest": channel.OVERFLOW_DROP_OLDEST,
	"reject":      channel.OVERFLOW_REJECT,
}

func main() {
	var configPath string
	var backend string
	var limit int
	var overflow string
	var demo bool
	var verbose bool

	flag.StringVar(&configPath, "c", "", ".yaml configuration to load")
	flag.StringVar(&backend, "view", "window", "View backend: window, terminal or headless")
	flag.IntVar(&limit, "limit", 0, "Command queue limit, 0 for unbounded")
	flag.StringVar(&overflow, "overflow", "block", "Policy for a full queue: block, drop-oldest or reject")
	flag.BoolVar(&demo, "demo", false, "Feed the view from a built-in demo producer")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	policy, ok := overflows[overflow]
	if !ok {
		log.Fatalf("%v: Unknown overflow policy: %v", os.Args[0], overflow)
	}

	renderer, err := view.New(backend)
	if err != nil {
		log.Fatalf("%v: %v", backend, err)
	}

	var st *emulator.State
	if len(configPath) != 0 {
		st = config.Load(configPath)
	} else {
		st = emulator.TestState()
	}
	st.Verbose = verbose

	shared := emulator.NewShared(st)

	sender, receiver := channel.New[command.Command](channel.Options{
		Limit:    limit,
		Overflow: policy,
	})

	actor := emulator.NewActor(shared, receiver)
	actor.Verbose = verbose
	actor.Start()

	bd := boundary.New(sender)
	bd.Verbose = verbose

	if demo {
		producer := &demoProducer{boundary: bd, done: make(chan struct{})}
		shared.With(func(st *emulator.State) {
			producer.describe(st)
		})
		go producer.run()
		defer producer.stop()
	}

	err = renderer.Run(shared)
	if err != nil {
		log.Fatal(err)
	}
}
