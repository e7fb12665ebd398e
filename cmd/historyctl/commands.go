package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

type historyReader interface {
	List(ctx context.Context, input history.ListInput) (*history.ListResult, error)
	Stats(ctx context.Context, userID string) (*history.StatsResult, error)
	Popularity(ctx context.Context) (domain.Popularity, error)
}

type opener func(ctx context.Context, configPath string) (historyReader, func(), error)

const exportPageSize = domain.MaxLimit

type rootOptions struct {
	configPath string
	format     string
	timeout    time.Duration
}

func newRootCmd(open opener) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "historyctl",
		Short:        "Inspect and export stored prompt history",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.format != "json" && opts.format != "yaml" {
				return fmt.Errorf("unsupported format %q, want json or yaml", opts.format)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "yaml", "output format: json or yaml")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall deadline")

	// with opens the store for one command and closes it afterwards.
	with := func(cmd *cobra.Command, fn func(ctx context.Context, r historyReader) (any, error)) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()

		r, closeFn, err := open(ctx, opts.configPath)
		if err != nil {
			return err
		}
		defer closeFn()

		out, err := fn(ctx, r)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), opts.format, out)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "stats <userId>",
			Short: "Show a user's aggregate statistics and recent activity",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return with(cmd, func(ctx context.Context, r historyReader) (any, error) {
					res, err := r.Stats(ctx, args[0])
					if err != nil {
						return nil, err
					}
					return map[string]any{"stats": res.Stats, "recentActivity": res.RecentActivity}, nil
				})
			},
		},
		&cobra.Command{
			Use:   "popular",
			Short: "Show global tone and type usage",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return with(cmd, func(ctx context.Context, r historyReader) (any, error) {
					return r.Popularity(ctx)
				})
			},
		},
		newExportCmd(with),
	)

	return root
}

func newExportCmd(with func(*cobra.Command, func(context.Context, historyReader) (any, error)) error) *cobra.Command {
	var (
		tone, typ string
		favorites bool
	)

	cmd := &cobra.Command{
		Use:   "export <userId>",
		Short: "Export every history record of a user, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(ctx context.Context, r historyReader) (any, error) {
				return exportAll(ctx, r, history.ListInput{
					UserID:    args[0],
					Tone:      tone,
					Type:      typ,
					SortBy:    string(domain.SortByCreatedAt),
					SortOrder: "asc",
				}, favorites)
			})
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "", "only records with this tone")
	cmd.Flags().StringVar(&typ, "type", "", "only records with this prompt type")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only favorite records")

	return cmd
}

// exportAll walks every page of the user's history.
func exportAll(ctx context.Context, r historyReader, in history.ListInput, favoritesOnly bool) ([]domain.PromptRecord, error) {
	in.Limit = exportPageSize

	all := []domain.PromptRecord{}
	for page := 1; ; page++ {
		in.Page = page
		res, err := r.List(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, rec := range res.Records {
			if !favoritesOnly || rec.IsFavorite {
				all = append(all, rec)
			}
		}
		if !res.Pagination.HasNext {
			return all, nil
		}
	}
}

// render writes v as indented JSON or as YAML keyed by the JSON field names.
func render(w io.Writer, format string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
