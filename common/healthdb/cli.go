package healthdb

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monobilisim/hostcheck/common"
)

const (
	colReset = "\033[0m"
	colKey   = "\033[33m" // yellow
)

const (
	snapshotModule = "osHealth"
	snapshotKey    = "last_snapshot"
)

// NewCmd returns the "db" command group for inspecting stored results.
func NewCmd() *cobra.Command {
	return newCmd(Default)
}

func newCmd(open func() (*Store, error)) *cobra.Command {
	noColors := common.NoColor()

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect the hostcheck SQLite database",
	}
	cmd.PersistentFlags().BoolVar(&noColors, "no-colors", noColors, "Disable colored JSON output")

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the SQLite DB path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	})
	cmd.AddCommand(newListCmd(open))
	cmd.AddCommand(newGetCmd(open, &noColors))
	cmd.AddCommand(newDeleteCmd(open))
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the last osHealth snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEntry(cmd, open, snapshotModule, snapshotKey, noColors)
		},
	})
	return cmd
}

func newListCmd(open func() (*Store, error)) *cobra.Command {
	var module string
	c := &cobra.Command{
		Use:   "list",
		Short: "List keys (optionally scoped by --module)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			rows, err := store.Keys(module)
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Module, r.K, r.CachedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
	c.Flags().StringVar(&module, "module", "", "Filter by module")
	return c
}

func newGetCmd(open func() (*Store, error), noColors *bool) *cobra.Command {
	module := snapshotModule
	c := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEntry(cmd, open, module, args[0], *noColors)
		},
	}
	c.Flags().StringVar(&module, "module", module, "Module name")
	return c
}

func newDeleteCmd(open func() (*Store, error)) *cobra.Command {
	module := snapshotModule
	c := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			if _, _, found, err := store.GetJSON(module, args[0]); err != nil {
				return err
			} else if !found {
				return fmt.Errorf("not found: %s/%s", module, args[0])
			}
			if err := store.Delete(module, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s/%s\n", module, args[0])
			return nil
		},
	}
	c.Flags().StringVar(&module, "module", module, "Module name")
	return c
}

func printEntry(cmd *cobra.Command, open func() (*Store, error), module, key string, noColors bool) error {
	store, err := open()
	if err != nil {
		return err
	}
	jsonStr, _, found, err := store.GetJSON(module, key)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("not found: %s/%s", module, key)
	}
	pretty, err := prettyJSON(jsonStr)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), colorizeKeys(pretty, noColors))
	return nil
}

// prettyJSON re-indents a raw JSON string
func prettyJSON(s string) (string, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// colorizeKeys highlights object keys of indented JSON.
func colorizeKeys(in string, noColors bool) string {
	if noColors {
		return in
	}
	var out strings.Builder
	for _, line := range strings.SplitAfter(in, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		end := strings.Index(trimmed, "\":")
		if !strings.HasPrefix(trimmed, "\"") || end < 0 {
			out.WriteString(line)
			continue
		}
		out.WriteString(indent + colKey + trimmed[:end+1] + colReset + trimmed[end+1:])
	}
	return out.String()
}
