package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"phantomid/internal/identity"
)

func (a *app) runIMEI(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: imei analyze|validate|generate|batch", errUsage)
	}

	action, rest := args[0], args[1:]
	switch action {
	case "analyze":
		if len(rest) != 1 {
			return fmt.Errorf("%w: imei analyze <imei>", errUsage)
		}
		a.print.Info("Analyzing IMEI: %s", rest[0])
		info, err := identity.AnalyzeIMEI(rest[0])
		if err != nil {
			return fmt.Errorf("analyze imei: %w", err)
		}
		a.print.Line("")
		a.print.Heading("IMEI Structure:")
		a.print.Field("TAC (Type Allocation Code)", info.TAC)
		a.print.Field("  Reporting Body", info.ReportingBody)
		a.print.Field("  Device Type", info.DeviceTypeCode)
		a.print.Field("Serial Number", info.Serial)
		a.print.Field("Check Digit", info.CheckDigit)
		a.print.Line("")
		a.print.Verdict("Checksum", info.Valid)
		return nil

	case "validate":
		if len(rest) != 1 {
			return fmt.Errorf("%w: imei validate <imei>", errUsage)
		}
		if identity.ValidIMEI(rest[0]) {
			a.print.OK("IMEI %s is valid", rest[0])
		} else {
			a.print.Fail("IMEI %s is invalid", rest[0])
		}
		return nil

	case "generate":
		fs := flag.NewFlagSet("imei generate", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		manufacturer := fs.String("manufacturer", a.cfg.Identity.Manufacturer, fmt.Sprintf("one of %v", identity.Manufacturers()))
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		a.print.OK("Generated IMEI: %s", a.gen.IMEI(*manufacturer))
		return nil

	case "batch":
		fs := flag.NewFlagSet("imei batch", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		count := fs.Int("count", a.cfg.Identity.BatchSize, "number of IMEIs")
		output := fs.String("o", "", "write IMEIs to this file instead of stdout")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *count < 1 {
			return fmt.Errorf("%w: -count must be > 0", errUsage)
		}

		a.print.Info("Generating %d IMEIs...", *count)
		imeis := a.gen.IMEIs(*count)
		if *output == "" {
			for _, imei := range imeis {
				a.print.Line("  " + imei)
			}
			return nil
		}
		if err := os.WriteFile(*output, []byte(strings.Join(imeis, "\n")+"\n"), 0644); err != nil {
			return fmt.Errorf("write %s: %w", *output, err)
		}
		a.print.OK("Saved to: %s", *output)
		return nil

	default:
		return fmt.Errorf("%w: unknown imei action %q", errUsage, action)
	}
}

func (a *app) runICCID(args []string) error {
	if len(args) == 0 || args[0] != "generate" {
		return fmt.Errorf("%w: iccid generate [-provider p]", errUsage)
	}

	fs := flag.NewFlagSet("iccid generate", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	provider := fs.String("provider", a.cfg.Identity.Provider, "verizon, att, tmobile")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	a.print.OK("Generated ICCID: %s", a.gen.ICCID(*provider))
	return nil
}

func (a *app) runIMSI(args []string) error {
	if len(args) != 2 || args[0] != "decode" {
		return fmt.Errorf("%w: imsi decode <imsi>", errUsage)
	}

	a.print.Info("Decoding IMSI: %s", args[1])
	info, err := identity.DecodeIMSI(args[1])
	if err != nil {
		return fmt.Errorf("decode imsi: %w", err)
	}
	a.print.Field("MCC (Country)", info.MCC)
	a.print.Field("MNC (Network)", info.MNC)
	a.print.Field("MSIN (Subscriber)", info.MSIN)
	return nil
}
