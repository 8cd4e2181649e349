package osHealth

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/monobilisim/hostcheck/common"
	"github.com/monobilisim/hostcheck/common/clientport"
	"github.com/monobilisim/hostcheck/common/healthdb"
)

var OsHealthConfig OsHealth

// Deps are the process-level collaborators of Run.
type Deps struct {
	Source SystemInfoSource
	FS     clientport.FS
	Store  SnapshotStore
	Out    io.Writer
	Now    func() time.Time
}

// SetDefaults registers the configuration defaults with viper.
func SetDefaults() {
	viper.SetDefault("source", SourceGopsutil)
	viper.SetDefault("collector_timeout", DefaultCollectorTimeout)
	viper.SetDefault("abort_on_unavailable", false)
	viper.SetDefault("disk.path", DefaultDiskPath)
	viper.SetDefault("report.save", false)
	viper.SetDefault("report.dir", DefaultReportsDir)
	viper.SetDefault("report.format", FormatText)
	viper.SetDefault("snapshot.persist", false)
}

// Launcher wires the process boundary around Run: configuration, source
// selection, the optional snapshot store and the exit.
type Launcher struct {
	Exit      clientport.Exiter
	FS        clientport.FS
	NewSource func(name string) (SystemInfoSource, error)
	OpenStore func() (*healthdb.Store, error)
	Now       func() time.Time
}

// DefaultLauncher talks to the real host and exits the process.
func DefaultLauncher() Launcher {
	return Launcher{
		Exit:      clientport.OSExiter{},
		FS:        clientport.OSFS{},
		NewSource: NewSource,
		OpenStore: healthdb.Default,
		Now:       time.Now,
	}
}

// Main is the cobra entry point. It exits with the code returned by Run.
func Main(cmd *cobra.Command, args []string) {
	DefaultLauncher().Launch(cmd)
}

// Launch loads OsHealthConfig, runs one check and exits with its code.
// Configuration and source errors exit with ExitUnknown.
func (l Launcher) Launch(cmd *cobra.Command) {
	SetDefaults()
	if err := common.ConfInit("hostcheck", &OsHealthConfig); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "config:", err)
		l.Exit.Exit(ExitUnknown)
		return
	}

	src, err := l.NewSource(OsHealthConfig.Source)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		l.Exit.Exit(ExitUnknown)
		return
	}

	deps := Deps{
		Source: src,
		FS:     l.FS,
		Out:    cmd.OutOrStdout(),
		Now:    l.Now,
	}

	var store *healthdb.Store
	if OsHealthConfig.Snapshot.Persist {
		store, err = l.OpenStore()
		if err != nil {
			log.Error().Err(err).Msg("Snapshot store unavailable, not persisting")
			store = nil
		} else {
			deps.Store = store
		}
	}

	code := Run(cmd.Context(), deps, OsHealthConfig)
	if store != nil {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Str("path", store.Path()).Msg("Failed to close snapshot store")
		}
	}
	l.Exit.Exit(code)
}

// Run performs one collection pass, evaluates it, renders the report and
// returns the exit code: 0 OK, 1 WARNING, 2 CRITICAL, 3 metric unavailable.
func Run(ctx context.Context, deps Deps, cfg OsHealth) int {
	if ctx == nil {
		ctx = context.Background()
	}
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	if cfg.Report.Format == "" {
		cfg.Report.Format = FormatText
	}
	if !common.IsInArray(cfg.Report.Format, Formats) {
		log.Error().Str("format", cfg.Report.Format).Strs("formats", Formats).Msg("Unknown report format")
		return ExitUnknown
	}

	snapshot := Collect(ctx, deps.Source, CollectOptions{
		DiskPath: cfg.Disk.Path,
		Timeout:  cfg.Collector_Timeout,
		Now:      now(),
	})

	if !snapshot.Complete() && cfg.Abort_On_Unavailable {
		for _, f := range snapshot.Failures {
			fmt.Fprintf(deps.Out, "UNKNOWN: %s unavailable (%s)\n", f.Metric, f.Message)
		}
		return ExitUnknown
	}

	verdict := snapshot.Evaluate()
	report := NewReport(snapshot, verdict)

	text, err := Render(cfg.Report.Format, report)
	if err != nil {
		log.Error().Err(err).Str("format", cfg.Report.Format).Msg("Failed to render report")
		return ExitUnknown
	}
	fmt.Fprint(deps.Out, text)

	if cfg.Report.Save {
		path, err := SaveReport(deps.FS, cfg.Report.Dir, snapshot.TakenAt, text)
		if err != nil {
			log.Error().Err(err).Msg("Failed to save report")
		} else {
			log.Info().Str("path", path).Msg("Report saved")
		}
	}

	if deps.Store != nil {
		if err := PersistSnapshot(deps.Store, report); err != nil {
			log.Error().Err(err).Msg("Failed to persist snapshot")
		}
	}

	log.Debug().
		Str("component", "osHealth").
		Str("run_id", snapshot.RunID).
		Str("severity", verdict.Severity.String()).
		Int("exit_code", report.ExitCode).
		Msg("Health check finished")

	return report.ExitCode
}
