package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yyyoichi/shufseq"
)

const (
	cfgLogLevel  = "log.level"
	cfgLogFormat = "log.format"
	cfgSeed      = "seed"
)

var (
	rootCmd = &cobra.Command{
		Use:               "shufseq",
		Short:             "Measure and verify bounded-randomness sequence generators",
		SilenceUsage:      true,
		PersistentPreRunE: initLogging,
	}

	logger log.Logger = log.NewNopLogger()
)

func init() {
	fs := rootCmd.PersistentFlags()
	fs.String(cfgLogLevel, "info", "log level [debug,info,warn,error]")
	fs.String(cfgLogFormat, "logfmt", "log format [logfmt,json]")
	fs.Uint64(cfgSeed, 0, "seed of the uniform draw (0 draws one from the OS)")
	bindFlags(fs)

	viper.SetEnvPrefix("shufseq")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// bindFlags lets every flag be set through a SHUFSEQ_<FLAG> environment
// variable as well.
func bindFlags(fs *flag.FlagSet) {
	if err := viper.BindPFlags(fs); err != nil {
		panic(err)
	}
}

func initLogging(cmd *cobra.Command, args []string) error {
	w := log.NewSyncWriter(os.Stderr)
	switch f := strings.ToLower(viper.GetString(cfgLogFormat)); f {
	case "logfmt":
		logger = log.NewLogfmtLogger(w)
	case "json":
		logger = log.NewJSONLogger(w)
	default:
		return fmt.Errorf("invalid log format: '%s'", f)
	}

	var allow level.Option
	switch l := strings.ToLower(viper.GetString(cfgLogLevel)); l {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return fmt.Errorf("invalid log level: '%s'", l)
	}
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "cmd", cmd.Name())
	return nil
}

// seedOptions returns the seed option, if one was configured.
func seedOptions() []shufseq.Option {
	if seed := viper.GetUint64(cfgSeed); seed != 0 {
		return []shufseq.Option{shufseq.WithSeed(seed)}
	}
	return nil
}

// parseRun parses the NAME N K positional arguments shared by stats and print.
func parseRun(args []string) (name string, n uint32, k int, err error) {
	name = args[0]
	if !shufseq.IsValid(name) {
		return "", 0, 0, fmt.Errorf("%w: %q (see 'shufseq list')", shufseq.ErrUnknownGenerator, name)
	}
	size, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid size %q: %w", args[1], err)
	}
	if size == 0 {
		return "", 0, 0, shufseq.ErrZeroSize
	}
	k, err = strconv.Atoi(args[2])
	if err != nil || k < 1 {
		return "", 0, 0, fmt.Errorf("invalid count %q", args[2])
	}
	return name, uint32(size), k, nil
}
