// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/stump/emulator"
	"github.com/ezrec/stump/io"
	"github.com/ezrec/stump/translate"
)

var f = translate.From

func main() {
	var image string
	var dump string
	var count int
	var tui bool
	var verbose bool

	flag.StringVar(&image, "i", "", "Memory image to load, - for stdin")
	flag.StringVar(&dump, "dump", "", "Save memory image on exit")
	flag.IntVar(&count, "n", -1, "Run count steps, then print the status line")
	flag.BoolVar(&tui, "tui", false, "Full screen monitor")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: %v", os.Args[0], f("unknown arguments: %v", flag.Args()))
	}

	err := checkImage(image, count, tui)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Image.Verbose = verbose

	if image == "-" {
		err = emu.Image.Unmarshal(os.Stdin)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		emu.Reset()
	} else {
		err = emu.Open(io.DirFS(filepath.Dir(image)), filepath.Base(image))
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	switch {
	case tui:
		err = runTui(emu)
	case count >= 0:
		emu.Run(count)
		fmt.Println(emu.String())
	default:
		err = runMonitor(emu)
	}
	if err != nil {
		log.Fatal(err)
	}

	if len(dump) != 0 {
		err = emu.Dump().Save(io.DirFS(filepath.Dir(dump)), filepath.Base(dump))
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
	}
}

// checkImage validates the image source. The monitor reads keys from stdin,
// so an image from stdin needs a batch run or the full screen monitor.
func checkImage(image string, count int, tui bool) (err error) {
	switch {
	case len(image) == 0:
		err = ErrNoImage
	case image == "-" && count < 0 && !tui:
		err = ErrImageStdin
	}

	return
}
