package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ahaeu/mobilementor/engine"
	"github.com/ahaeu/mobilementor/helpers"
	"github.com/ahaeu/mobilementor/internal/config"
	"github.com/ahaeu/mobilementor/internal/observability"
)

// Version is the application version.
// Set at build time: go build -ldflags "-X github.com/ahaeu/mobilementor/internal/cli.Version=1.0.0"
var Version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	runtime config.Runtime
	logger  *zap.Logger
}

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can execute several trees in one process.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "mobilementor",
		Short:         "Compare mobile phones by rank points.",
		Long:          "mobilementor ranks a selection of phones in each category and sums the points to find the best one.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./mobilementor.yaml)")
	flags.String("file", "", "phone dataset CSV (overrides dataset.path)")
	flags.StringP("format", "f", "", "output format: json, pretty, csv, table, text")
	flags.StringP("out", "o", "", "write output to a file instead of stdout")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	// Bound flags win over env and file only when set on the command line.
	_ = a.v.BindPFlag("dataset.path", flags.Lookup("file"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.path", flags.Lookup("out"))
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))

	root.AddCommand(
		newCompareCmd(a),
		newSearchCmd(a),
		newBrandCmd(a),
		newBrandsCmd(a),
		newColumnsCmd(a),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fields := []zap.Field{zap.Error(err)}
		if kind, ok := engine.KindOf(err); ok {
			fields = append(fields, zap.String("kind", string(kind)))
		}
		observability.GetLogger().Error("command failed", fields...)
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// initialize loads the configuration and sets up logging before any
// subcommand runs.
func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}
	a.runtime = rt

	logCfg := cfg.Logger
	if rt.Colorless() {
		logCfg.Colors = config.ColorConfig{}
	}
	observability.InitializeLogger(logCfg)
	a.logger = observability.GetLogger()

	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("version", Version),
		zap.String("dataset", cfg.Dataset.Path),
		zap.String("format", cfg.Output.Format),
	)
	return nil
}

// readDataset returns the raw bytes of the configured CSV export.
func (a *app) readDataset() ([]byte, error) {
	data, err := os.ReadFile(a.cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return data, nil
}

// loadPhones reads and normalizes the configured dataset.
func (a *app) loadPhones() ([]helpers.Phone, error) {
	data, err := a.readDataset()
	if err != nil {
		return nil, err
	}
	phones, err := helpers.ParsePhonesCSV(data, helpers.NormalizeOptions{
		INRToCHF: a.cfg.Dataset.INRToCHF,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", a.cfg.Dataset.Path, err)
	}
	a.logger.Info("dataset loaded",
		zap.String("path", a.cfg.Dataset.Path),
		zap.Int("phones", len(phones)),
		zap.Int("brands", len(helpers.Brands(phones))),
	)
	return phones, nil
}

// loadView is loadPhones behind a RecordView.
func (a *app) loadView() (engine.RecordView, error) {
	phones, err := a.loadPhones()
	if err != nil {
		return nil, err
	}
	return helpers.PhoneView(phones), nil
}

// engineOptions are the options every engine call in the CLI shares.
func (a *app) engineOptions() []engine.Option {
	return []engine.Option{
		engine.WithDisplayUnit(a.cfg.Dataset.Currency),
		engine.WithLogger(a.logger),
	}
}
