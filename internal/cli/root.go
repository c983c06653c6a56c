package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minimat/internal/infra/logger"
)

// Profile modes accepted by --profile.
const (
	profileNone = ""
	profileCPU  = "cpu"
	profileMem  = "mem"
)

// app carries flag values and the teardown hooks collected while a command runs.
type app struct {
	debug      bool
	logDir     string
	profile    string
	profileDir string
	file       string

	stdin  io.Reader
	stderr io.Writer
	stops  []func()
}

func (a *app) close() {
	for i := len(a.stops) - 1; i >= 0; i-- {
		a.stops[i]()
	}
	a.stops = nil
}

// Execute runs matcalc with os.Args and exits non-zero on failure.
func Execute() {
	a := &app{stdin: os.Stdin, stderr: os.Stderr}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "matcalc",
		Short:        "matcalc: small dense matrix calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging (to --log-dir, or stderr)")
	cmd.PersistentFlags().StringVar(&a.logDir, "log-dir", "", "write JSON logs to <dir>/"+logger.FileName)
	cmd.PersistentFlags().StringVar(&a.profile, "profile", profileNone, "profile the run: cpu or mem")
	cmd.PersistentFlags().StringVar(&a.profileDir, "profile-dir", ".", "directory for profile output")
	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", `operand YAML file ("-" for stdin)`)

	for _, spec := range opSpecs {
		cmd.AddCommand(opCmd(a, spec))
	}

	return cmd
}

// setup wires logging and profiling before any subcommand runs.
func (a *app) setup() error {
	cleanup, err := logger.Setup(logger.Config{
		Dir:    a.logDir,
		Debug:  a.debug,
		Stderr: a.stderr,
	})
	if err != nil {
		return fmt.Errorf("logger setup: %w", err)
	}
	a.stops = append(a.stops, func() { _ = cleanup() })
	if path := logger.Path(); path != "" {
		logger.L().Info("log.file", "path", path)
	}

	var mode func(*profile.Profile)
	switch strings.ToLower(a.profile) {
	case profileNone:
		return nil
	case profileCPU:
		mode = profile.CPUProfile
	case profileMem:
		mode = profile.MemProfile
	default:
		return fmt.Errorf("unknown --profile %q (want %s or %s)", a.profile, profileCPU, profileMem)
	}

	p := profile.Start(mode, profile.ProfilePath(a.profileDir), profile.NoShutdownHook, profile.Quiet)
	a.stops = append(a.stops, p.Stop)
	logger.L().Debug("profile.started", "mode", a.profile, "dir", a.profileDir)

	return nil
}
