// Package cli implements the vecctl commands.
package cli

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
)

// Options is the configuration shared by every command. It can be loaded
// from a yaml file; flags given on the command line take precedence.
type Options struct {
	LogLevel string            `yaml:"log_level"`
	Vector   vector.Config     `yaml:"vector"`
	Pool     vector.PoolConfig `yaml:"pool"`
}

// RegisterFlags registers the options on f.
func (o *Options) RegisterFlags(f *pflag.FlagSet) {
	f.StringVar(&o.LogLevel, "log.level", "info", "Only log messages with the given severity or above. One of: debug, info, warn, error.")
	o.Vector.RegisterFlags(f)
	o.Pool.RegisterFlags(f)
}

// Validate checks every section of the options.
func (o *Options) Validate() error {
	if _, err := levelFilter(o.LogLevel); err != nil {
		return err
	}
	if err := o.Vector.Validate(); err != nil {
		return errors.Wrap(err, "invalid vector config")
	}
	if err := o.Pool.Validate(); err != nil {
		return errors.Wrap(err, "invalid pool config")
	}
	return nil
}

type app struct {
	opts       Options
	configFile string
	logger     log.Logger
}

// NewRootCommand builds the vecctl command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{logger: log.NewNopLogger()}

	root := &cobra.Command{
		Use:   "vecctl",
		Short: "Inspect the vector growth engine and exercise fixed-slot pools",
		Example: `  vecctl plan --required 1000          # Capacities a vector passes through
  vecctl plan --required 1000 --vector.low-memory
  vecctl scenario                      # Run the reference operation sequence
  vecctl pool --workers 8 --pool.slots 4`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config.file", "", "Yaml file to load options from. Flags override values from the file.")
	a.opts.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newPlanCommand(a),
		newScenarioCommand(a),
		newPoolCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(cmd.Flags()); err != nil {
		return err
	}
	if err := a.opts.Validate(); err != nil {
		return err
	}
	filter, _ := levelFilter(a.opts.LogLevel)
	a.logger = newLogger(cmd.ErrOrStderr(), filter)
	return nil
}

// loadConfig reads the config file into the options, then re-applies the
// flags that were set explicitly.
func (a *app) loadConfig(fs *pflag.FlagSet) error {
	if a.configFile == "" {
		return nil
	}

	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	data, err := os.ReadFile(a.configFile)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, &a.opts); err != nil {
		return errors.Wrapf(err, "parse config file %s", a.configFile)
	}

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "re-apply flag --%s", name)
		}
	}
	return nil
}

func newLogger(w io.Writer, filter level.Option) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func levelFilter(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, errors.Errorf("unrecognized log level %q", s)
	}
}
