package main

import (
	"flag"
	"fmt"
	"strconv"

	"phantomid/internal/codec"
	"phantomid/internal/domain"
)

func (a *app) runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	types := a.cfg.Demo.DeviceTypes
	if fs.NArg() > 0 {
		types = fs.Args()
	}

	a.print.Banner()
	for _, dt := range types {
		a.print.DemoLine(dt, a.catalog.GeneratePhantom(dt))
	}
	a.print.Line("")
	a.print.Line(fmt.Sprintf("OS Detection: TTL=128 -> %s", a.catalog.DetectOS(128, 65535)))
	return nil
}

func (a *app) runProfile(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: profile list|show <type>", errUsage)
	}

	switch args[0] {
	case "list":
		a.print.Heading("Available Device Profiles:")
		return a.print.Profiles(a.catalog.DeviceTypes(), a.catalog.Profile)
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("%w: profile show <type>", errUsage)
		}
		p := a.catalog.Profile(args[1])
		a.print.Heading("Profile " + args[1])
		if !domain.DeviceType(args[1]).IsKnown() {
			a.print.Info("unknown device type %q, using the linux profile", args[1])
		}
		a.print.Field("OS", p.OS)
		a.print.Field("TTL", strconv.Itoa(p.TTL))
		a.print.Field("Window Size", strconv.Itoa(p.WindowSize))
		ua := p.UserAgent
		if ua == "" {
			ua = "(none)"
		}
		a.print.Field("User Agent", ua)
		a.print.Field("Detected As", a.catalog.DetectOS(p.TTL, p.WindowSize))
		return nil
	default:
		return fmt.Errorf("%w: unknown profile action %q", errUsage, args[0])
	}
}

func (a *app) runPhantom(args []string) error {
	fs := flag.NewFlagSet("phantom", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	count := fs.Int("count", a.cfg.Batch.Count, "phantoms per device type")
	format := fs.String("format", a.cfg.Output.Format, fmt.Sprintf("output format %v", codec.Formats()))
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *count < 1 {
		return fmt.Errorf("%w: -count must be > 0", errUsage)
	}

	exporter, err := codec.ExporterFor(*format)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	types := a.cfg.Batch.DeviceTypes
	if fs.NArg() > 0 {
		types = fs.Args()
	}

	requested := make([]string, 0, len(types)*(*count))
	for _, dt := range types {
		for i := 0; i < *count; i++ {
			requested = append(requested, dt)
		}
	}

	batch := codec.NewBatch(a.catalog.GenerateBatch(requested))
	a.log.Debug().Str("batch", batch.ID).Int("phantoms", len(batch.Phantoms)).Str("format", exporter.Format()).Msg("exporting batch")

	if err := exporter.Export(batch, a.out); err != nil {
		return fmt.Errorf("export %s: %w", exporter.Format(), err)
	}
	return nil
}
