package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"mosaic/internal/core"
	"mosaic/internal/logging"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MOSAIC_OUT_DIR.
const EnvPrefix = "MOSAIC"

// Options holds the resolved command configuration.
type Options struct {
	Seed     int64         `mapstructure:"seed"`
	OutDir   string        `mapstructure:"out_dir"`
	Format   string        `mapstructure:"format"`
	LogLevel string        `mapstructure:"log_level"`
	LogFile  string        `mapstructure:"log_file"`
	Progress time.Duration `mapstructure:"progress"`
	Workers  int           `mapstructure:"workers"`
	Count    int           `mapstructure:"count"`
}

// Defaults returns the built-in configuration.
func Defaults() Options {
	return Options{
		OutDir:   ".",
		Format:   "png",
		LogLevel: "info",
		Progress: time.Second,
		Workers:  runtime.NumCPU(),
		Count:    4,
	}
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"seed":      "seed",
	"out-dir":   "out_dir",
	"format":    "format",
	"log-level": "log_level",
	"log-file":  "log_file",
	"progress":  "progress",
	"workers":   "workers",
	"count":     "count",
}

// AddFlags registers the flags shared by every painting command.
func AddFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int64("seed", d.Seed, "random seed; 0 picks one and logs it")
	fs.StringP("out-dir", "o", d.OutDir, "directory for written files")
	fs.StringP("format", "f", d.Format, "output format ("+strings.Join(core.EncoderNames(), ", ")+")")
	fs.String("log-level", d.LogLevel, "log level: trace, debug, info, warn, error, fatal, none")
	fs.String("log-file", d.LogFile, "append JSON logs to this file instead of stderr")
	fs.Duration("progress", d.Progress, "interval between progress logs; 0 disables them")
	fs.StringP("config", "c", "", "optional config file (toml, yaml or json)")
}

// AddBatchFlags registers the flags used by the batch command.
func AddBatchFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int("workers", d.Workers, "paintings to run in parallel")
	fs.Int("count", d.Count, "number of paintings")
}

// Load resolves options from defaults, the optional config file, MOSAIC_*
// environment variables and explicitly set flags, in increasing priority.
func Load(fs *pflag.FlagSet) (Options, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("count", d.Count)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Options{}, err
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Options{}, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decode config: %w", err)
	}
	return opts, opts.Validate()
}

// Validate reports every invalid option.
func (o Options) Validate() error {
	var errs []error
	if _, ok := core.Encoders()[strings.ToLower(o.Format)]; !ok {
		errs = append(errs, fmt.Errorf("unknown format %q", o.Format))
	}
	if !logging.ValidLevel(o.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", o.LogLevel))
	}
	if o.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", o.Workers))
	}
	if o.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", o.Count))
	}
	if o.Progress < 0 {
		errs = append(errs, fmt.Errorf("progress interval must not be negative, got %s", o.Progress))
	}
	return errors.Join(errs...)
}
