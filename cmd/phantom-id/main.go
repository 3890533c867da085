// Command phantom-id generates synthetic device fingerprint identities and
// classifies TTL/window-size pairs into OS families.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"phantomid/internal/catalog"
	"phantomid/internal/config"
	"phantomid/internal/identity"
	"phantomid/internal/logger"
	"phantomid/internal/ui"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the state shared by every subcommand
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	gen     *identity.Generator
	out     io.Writer
	errOut  io.Writer
	print   *ui.Printer
	log     zerolog.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("phantom-id", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: search $PHANTOMID_CONFIG, ./phantomid.yaml, XDG, /etc)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	logLevel := fs.String("log-level", "", "override logging.level")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "phantom-id: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := logger.InitWithWriter(cfg.Logging, stderr); err != nil {
		fmt.Fprintf(stderr, "phantom-id: logging: %v\n", err)
		return 1
	}

	a := &app{
		cfg:     cfg,
		catalog: catalog.New(),
		gen:     identity.NewGenerator(nil),
		out:     stdout,
		errOut:  stderr,
		print:   ui.NewPrinter(stdout, !cfg.Output.NoColor && !*noColor),
		log:     logger.WithComponent("cli"),
	}
	a.log.Debug().Str("config", path).Str("settings", cfg.Summary()).Msg("configuration loaded")

	if err := a.dispatch(fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "phantom-id: %v\n", err)
			return 2
		}
		a.log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(stderr, "phantom-id: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func (a *app) dispatch(args []string) error {
	if len(args) == 0 {
		return a.runDemo(nil)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "demo":
		return a.runDemo(rest)
	case "profile":
		return a.runProfile(rest)
	case "phantom":
		return a.runPhantom(rest)
	case "detect":
		return a.runDetect(rest)
	case "imei":
		return a.runIMEI(rest)
	case "iccid":
		return a.runICCID(rest)
	case "imsi":
		return a.runIMSI(rest)
	case "config":
		return a.runConfig(rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, `Usage: phantom-id [flags] <command> [args]

Commands:
  demo                           generate one phantom per demo device type
  profile list                   list device profiles
  profile show <type>            show one profile (unknown types resolve to linux)
  phantom [flags] [type...]      generate phantom identities
  detect -ttl N -window N        classify a TTL/window-size pair
  detect -pcap FILE              classify every frame in a pcap written by "phantom -format pcap"
  imei analyze|validate <imei>   inspect an IMEI
  imei generate|batch            generate Luhn-valid IMEIs
  iccid generate                 generate an ICCID
  imsi decode <imsi>             split an IMSI into MCC/MNC/MSIN
  config show|init               print or write the configuration

Flags:`)
	fs.PrintDefaults()
}
