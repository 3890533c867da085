package main

import (
	"flag"
	"fmt"
	"os"

	"phantomid/internal/codec"
	"phantomid/internal/synth"
)

func (a *app) runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	ttl := fs.Int("ttl", -1, "observed IP TTL")
	window := fs.Int("window", -1, "observed TCP window size")
	pcapPath := fs.String("pcap", "", "classify frames from a pcap file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if *pcapPath != "" {
		return a.detectPcap(*pcapPath)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["ttl"] || !set["window"] {
		return fmt.Errorf("%w: detect needs -ttl and -window, or -pcap", errUsage)
	}

	a.print.OK("TTL=%d Window=%d -> %s", *ttl, *window, a.catalog.DetectOS(*ttl, *window))
	return nil
}

func (a *app) detectPcap(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pcap: %w", err)
	}
	defer f.Close()

	frames, err := codec.ReadFrames(f)
	if err != nil {
		return err
	}

	a.print.Info("Classifying %d frames from %s", len(frames), path)
	for i, frame := range frames {
		family, obs, err := synth.Classify(a.catalog, frame)
		if err != nil {
			a.log.Warn().Err(err).Int("frame", i+1).Msg("skipping undecodable frame")
			a.print.Fail("frame %d: %v", i+1, err)
			continue
		}
		a.print.OK("frame %d: MAC=%s TTL=%d Window=%d -> %s", i+1, obs.MAC, obs.TTL, obs.Window, family)
	}
	return nil
}
