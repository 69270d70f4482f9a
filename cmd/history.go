package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/config/auditlog"
	"github.com/spf13/cobra"
)

const historyTimeFormat = "2006-01-02 15:04:05"

// parseKinds splits a comma-separated kind list.
func parseKinds(s string) []auditlog.EventKind {
	var kinds []auditlog.EventKind
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kinds = append(kinds, auditlog.EventKind(k))
		}
	}
	return kinds
}

// executeHistory formats the nav history matching f, newest first.
func executeHistory(logger auditlog.Logger, f auditlog.QueryFilter) (string, error) {
	events, err := logger.Query(f)
	if err != nil {
		return "", fmt.Errorf("query nav history: %w", err)
	}
	if len(events) == 0 {
		return "no nav history\n", nil
	}
	var sb strings.Builder
	for _, e := range events {
		line := fmt.Sprintf("%s  %-18s %-5s %-16s %s",
			e.Timestamp.Local().Format(historyTimeFormat), e.Kind, e.Mode, e.LinkKey, e.Message)
		if e.Detail != "" && e.Detail != e.Message {
			line += "  (" + e.Detail + ")"
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String(), nil
}

// NewHistoryCmd builds the `navrail history` command.
func NewHistoryCmd() *cobra.Command {
	var (
		link  string
		kinds string
		limit int
		since time.Duration
		prune time.Duration
	)
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sidebar activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			path, err := config.PreferencesPath(cfg)
			if err != nil {
				return err
			}
			logger, err := auditlog.NewSQLiteLogger(path)
			if err != nil {
				return err
			}
			defer logger.Close()

			if prune > 0 {
				n, err := logger.Prune(time.Now().Add(-prune))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "pruned %d events\n", n)
				return nil
			}

			f := auditlog.QueryFilter{LinkKey: link, Kinds: parseKinds(kinds), Limit: limit}
			if since > 0 {
				f.After = time.Now().Add(-since)
			}
			out, err := executeHistory(logger, f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	historyCmd.Flags().StringVar(&link, "link", "", "Only events for this link key")
	historyCmd.Flags().StringVar(&kinds, "kind", "", "Comma-separated event kinds, e.g. link_selected,nav_collapsed")
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of events")
	historyCmd.Flags().DurationVar(&since, "since", 0, "Only events newer than this, e.g. 24h")
	historyCmd.Flags().DurationVar(&prune, "prune", 0, "Delete events older than this instead of listing, e.g. 720h")
	return historyCmd
}
