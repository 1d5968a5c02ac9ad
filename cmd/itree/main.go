// Command itree builds a centered interval tree from a YAML file and
// queries or inspects it.
package main

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crystalix007/centered-intervals/internal/config"
	"github.com/crystalix007/centered-intervals/internal/logger"
	"github.com/crystalix007/centered-intervals/interval"
	"github.com/crystalix007/centered-intervals/render"
)

var log = logging.MustGetLogger("itree")

type options struct {
	file     string
	logLevel string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "itree",
		Short:         "Centered interval tree tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitConsoleLog(cmd.ErrOrStderr(), opts.logLevel, isatty.IsTerminal(os.Stderr.Fd()))
		},
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", config.DefaultPath, "Specify interval file location")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR)")

	root.AddCommand(
		newQueryCommand(opts),
		newRenderCommand(opts),
		newStatsCommand(opts),
	)

	return root
}

func newQueryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <point>...",
		Short: "Print the intervals containing each point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]int64, len(args))

			for i, arg := range args {
				point, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return errors.Wrapf(err, "parsing point %q", arg)
				}

				points[i] = point
			}

			tree, err := loadTree(opts.file)
			if err != nil {
				return err
			}

			for _, point := range points {
				matches, _ := tree.Query(point)

				// Order is non-determinate.
				slices.SortFunc(matches, compareEntries)

				names := make([]string, len(matches))
				for i, m := range matches {
					names[i] = m.String()
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", point, strings.Join(names, " "))
			}

			return nil
		},
	}
}

func newRenderCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Draw the tree as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(opts.file)
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), tree)
		},
	}
}

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the shape of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(opts.file)
			if err != nil {
				return err
			}

			s := tree.Stats()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "intervals:  %d\n", s.Intervals)
			fmt.Fprintf(out, "nodes:      %d\n", s.Nodes)
			fmt.Fprintf(out, "slots:      %d\n", s.Slots)
			fmt.Fprintf(out, "depth:      %d\n", s.Depth)
			fmt.Fprintf(out, "max bucket: %d\n", s.MaxBucket)

			return nil
		},
	}
}

func loadTree(path string) (*interval.Tree[config.Entry, int64], error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	tree, err := interval.FromIntervals[int64](cfg.Intervals)
	if err != nil {
		return nil, errors.Wrapf(err, "building tree from %s", path)
	}

	log.Debugf("built tree over %d intervals from %s: %+v", tree.Len(), path, tree.Stats())

	return tree, nil
}

func compareEntries(a, b config.Entry) int {
	return cmp.Or(
		cmp.Compare(a.Lo, b.Lo),
		cmp.Compare(a.Hi, b.Hi),
		strings.Compare(a.Name, b.Name),
	)
}
