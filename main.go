package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/monobilisim/hostcheck/common"
	"github.com/monobilisim/hostcheck/common/healthdb"
	"github.com/monobilisim/hostcheck/osHealth"
)

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "hostcheck",
		Short:   "Point-in-time OS health check",
		Long:    "Collects CPU load, memory, disk usage and uptime, and exits with 0 (OK), 1 (WARNING), 2 (CRITICAL) or 3 (metric unavailable).",
		Version: common.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.InitZerolog()
		},
		Run: osHealth.Main,
	}

	var osHealthCmd = &cobra.Command{
		Use:   "osHealth",
		Short: "OS Health (same as running hostcheck without a command)",
		Args:  cobra.NoArgs,
		Run:   osHealth.Main,
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the hostcheck version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hostcheck "+common.Version)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&common.ConfigFile, "config", "", "Config file (default /etc/mono/hostcheck.yaml)")
	flags.StringP("path", "p", osHealth.DefaultDiskPath, "Filesystem path for the disk check")
	flags.String("source", osHealth.SourceGopsutil, "Host counter source: gopsutil or native")
	flags.Duration("timeout", osHealth.DefaultCollectorTimeout, "Timeout for each collector")
	flags.StringP("format", "f", osHealth.FormatText, "Report format: text, box, table, json or yaml")
	flags.Bool("save", false, "Write the report to <reports-dir>/health_<unix-timestamp>.txt")
	flags.String("reports-dir", osHealth.DefaultReportsDir, "Directory for saved reports")
	flags.Bool("abort-on-unavailable", false, "Exit 3 without a report when a metric cannot be collected")
	flags.Bool("persist", false, "Store the result in the health database")

	bindFlag(rootCmd, "disk.path", "path")
	bindFlag(rootCmd, "source", "source")
	bindFlag(rootCmd, "collector_timeout", "timeout")
	bindFlag(rootCmd, "report.format", "format")
	bindFlag(rootCmd, "report.save", "save")
	bindFlag(rootCmd, "report.dir", "reports-dir")
	bindFlag(rootCmd, "abort_on_unavailable", "abort-on-unavailable")
	bindFlag(rootCmd, "snapshot.persist", "persist")

	rootCmd.AddCommand(osHealthCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthdb.NewCmd())

	return rootCmd
}

func main() {
	// cobra already printed the error and usage to stderr
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(osHealth.ExitUnknown)
	}
}
