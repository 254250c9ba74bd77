// Command pkselftest runs the public-key engine's known-answer vectors
// and a randomised cross-check against math/big.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/moonfruit/go-pkengine/internal/selftest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	vectors  string
	logLevel string
	rounds   int
	seed     int64
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.vectors, "vectors", "v", "", "YAML vector file to run instead of the built-in suite.")
	flags.StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	flags.IntVarP(&o.rounds, "rounds", "r", 0, "Random cross-check rounds against math/big; 0 disables the cross-check.")
	flags.Int64Var(&o.seed, "seed", 0, "Cross-check seed; 0 picks one from the clock.")
}

func newLogger(level string) (*zap.Logger, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(l),
	)
	return zap.New(core, zap.AddCaller()), nil
}

func run(o *options) error {
	logger, err := newLogger(o.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var suite *selftest.Suite
	if o.vectors == "" {
		suite = selftest.Default()
	} else if suite, err = selftest.Load(o.vectors); err != nil {
		return err
	}
	logger.Info("running vector suite", zap.String("vectors", o.vectors), zap.Int("cases", suite.Len()))
	report := selftest.Run(suite, logger)

	if o.rounds > 0 {
		if o.seed == 0 {
			o.seed = time.Now().UnixNano()
		}
		report.Merge(selftest.CrossCheck(o.rounds, o.seed, logger))
	}

	if !report.OK() {
		return errors.Errorf("%d of %d checks failed", report.Failed, report.Passed+report.Failed)
	}
	fmt.Printf("%d checks passed\n", report.Passed)
	return nil
}

func newCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "pkselftest",
		Short: "Run the public-key engine self-test.",
		Long: `Run the known-answer vectors for multiplication, modular multiplication,
modular exponentiation, Diffie-Hellman and elliptic-curve scalar
multiplication, optionally followed by a randomised cross-check.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o)
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pkselftest:", err)
		os.Exit(1)
	}
}
