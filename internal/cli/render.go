package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geocoder89/userdesk/internal/config"
	"github.com/geocoder89/userdesk/internal/reconcile"
	"github.com/geocoder89/userdesk/internal/render"
	"github.com/geocoder89/userdesk/internal/source"
	"github.com/geocoder89/userdesk/internal/view"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newFetcher is swapped in tests.
var newFetcher = func(url string) view.Fetcher {
	return source.New(url, nil)
}

var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	var (
		url    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the users once and print them",
		Long: `Fetch the full user collection once and print it.

A failed fetch is logged to stderr and an empty list is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = config.Load().UsersAPIURL
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			v := view.New(newFetcher(url), reconcile.LengthID, log, nil)
			v.Mount(cmd.Context())

			return writeSnapshot(cmd.OutOrStdout(), format, v.Snapshot())
		},
	}

	cmd.Flags().StringVar(&url, "url", os.Getenv("USERS_API_URL"), "users endpoint")
	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "output format: table, json or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func writeSnapshot(w io.Writer, format string, snap view.Snapshot) error {
	switch format {
	case formatTable:
		return render.Table(w, snap.Users)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Users)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap.Users); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
