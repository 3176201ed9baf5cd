// Command vmtranslate drives the address-translation simulator over a
// reference-stream file and an immutable backing-store file, printing a
// translated record per line and a summary of statistics at end-of-stream.
//
// This file owns everything spec.md declares out of core scope: argument
// parsing, opening the two input files, driving the per-line parse loop,
// and the concrete output formatting.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/awh44/MemoryManager/internal/backing"
	"github.com/awh44/MemoryManager/internal/refstream"
	"github.com/awh44/MemoryManager/internal/sim"
)

var (
	errNoSuchFile       = errors.New("no such file")
	errMissingArguments = errors.New("missing arguments")
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging of every translation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] <reference-file> <backing-store-file>\n", os.Args[0])
	}
	flag.Parse()

	setDebugLevel(*debug)
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(flag.Args(), log, os.Stdout); err != nil {
		log.Error().Err(err).Msg("fatal")
		os.Exit(1)
	}
}

// setDebugLevel controls debug-event visibility through zerolog's global
// level floor rather than per-logger level, since the "debug"/"nodebug"
// console commands toggle it after the Simulator (and its internal
// logger value) has already been constructed.
func setDebugLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func run(args []string, log zerolog.Logger, out io.Writer) error {
	if len(args) < 2 {
		return errors.Wrap(errMissingArguments, "expected <reference-file> <backing-store-file>")
	}

	refFile, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(errNoSuchFile, "reference stream %q: %v", args[0], err)
	}
	defer refFile.Close()

	storeFile, err := os.Open(args[1])
	if err != nil {
		return errors.Wrapf(errNoSuchFile, "backing store %q: %v", args[1], err)
	}
	defer storeFile.Close()

	store := backing.NewReaderAtStore(storeFile)
	s := sim.New(sim.Default(), store, log)

	w := bufio.NewWriter(out)
	defer w.Flush()

	scanner := bufio.NewScanner(refFile)
	for scanner.Scan() {
		line := scanner.Text()
		switch line {
		case "debug":
			setDebugLevel(true)
			continue
		case "nodebug":
			setDebugLevel(false)
			continue
		case "print":
			s.Dump(w)
			continue
		}

		addr, isWrite, err := refstream.Parse(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping bad input line")
			continue
		}

		rec, err := s.Translate(addr, isWrite)
		if err != nil {
			return errors.Wrap(err, "translation failed")
		}
		fmt.Fprintf(w, "Virtual address: %d Physical address: %d Value: %d\n",
			rec.VirtualAddress, rec.PhysicalAddress, rec.Value)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading reference stream")
	}

	snap := s.Stats()
	fmt.Fprintf(w, "Number of Translated Addresses = %d\n", snap.Translated)
	fmt.Fprintf(w, "Percentage of Page Faults = %.4f (absolute = %d)\n", snap.PageFaultRate, snap.PageFaults)
	fmt.Fprintf(w, "TLB Hit Ratio = %.4f (absolute = %d)\n", snap.TLBHitRatio, snap.TLBHits)
	fmt.Fprintf(w, "Write-Backs = %d\n", snap.WriteBacks)

	return nil
}
