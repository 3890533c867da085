package main

import (
	"flag"
	"fmt"

	"gopkg.in/yaml.v3"

	"phantomid/internal/config"
)

func (a *app) runConfig(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: config show|init", errUsage)
	}

	switch args[0] {
	case "show":
		data, err := yaml.Marshal(a.cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = a.out.Write(data)
		return err

	case "init":
		fs := flag.NewFlagSet("config init", flag.ContinueOnError)
		fs.SetOutput(a.errOut)
		path := fs.String("path", config.DefaultConfigPath(), "where to write the config file")
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if err := config.DefaultConfig().Save(*path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		a.log.Info().Str("path", *path).Msg("wrote default config")
		a.print.OK("Wrote %s", *path)
		return nil

	default:
		return fmt.Errorf("%w: unknown config action %q", errUsage, args[0])
	}
}
