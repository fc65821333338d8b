// Command tabprep runs the categorical feature transforms from the command
// line: summarize a column against a target, fit an encoder on a training
// split and apply it to the held-out split, or render a target-rate chart.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/tabprep/config"
	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
	tablog "github.com/YuminosukeSato/tabprep/pkg/log"
	"github.com/YuminosukeSato/tabprep/preprocessing"
	"github.com/YuminosukeSato/tabprep/visual"
)

func SummarizeCommand() *cobra.Command {
	var inputFile string
	var column string
	var target string

	cmd := &cobra.Command{
		Use:   "summarize -i data.csv -c column -t target",
		Short: "Prints per-category count, proportion and mean target value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(inputFile, column, target, nil)
			if err != nil {
				return err
			}
			col, err := table.Categorical(column)
			if err != nil {
				return err
			}
			y, err := table.Numeric(target)
			if err != nil {
				return err
			}
			summary, err := preprocessing.TargetRateSummary(col, y)
			if err != nil {
				return err
			}

			log.Info().
				Str(tablog.ColumnKey, column).
				Int(tablog.RowsKey, table.NumRows()).
				Int(tablog.DistinctKey, len(summary)).
				Msg("computed target-rate summary")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "label\tcount\tproportion\tmean_target")
			for _, s := range summary {
				fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\n", s.Label, s.Count, s.Proportion, s.TargetMean)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV input file")
	cmd.Flags().StringVarP(&column, "column", "c", "", "categorical column to summarize")
	cmd.Flags().StringVarP(&target, "target", "t", "", "numeric target column")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func EncodeCommand() *cobra.Command {
	var inputFile string
	var outputFile string
	var configFile string
	var column string
	var mode string
	var testFraction float64
	var seed int64
	var rareThreshold float64
	var topK int
	var sentinel string

	cmd := &cobra.Command{
		Use:   "encode -i data.csv -c column -m rare [-o out.csv]",
		Short: "Fits an encoder on a training split and applies it to the held-out split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var markers []string
			if configFile != "" {
				cfg, err := config.Load(configFile)
				if err != nil {
					return err
				}
				markers = cfg.MissingMarkers
				applyColumnConfig(cfg, column, &rareThreshold, &topK, &sentinel)
			}

			table, err := loadTable(inputFile, column, "", markers)
			if err != nil {
				return err
			}
			train, test, err := table.Split(testFraction, seed)
			if err != nil {
				return err
			}
			trainCol, err := train.Categorical(column)
			if err != nil {
				return err
			}
			testCol, err := test.Categorical(column)
			if err != nil {
				return err
			}

			log.Info().
				Str(tablog.TransformKey, mode).
				Str(tablog.OperationKey, "fit").
				Str(tablog.ColumnKey, column).
				Int(tablog.RowsKey, trainCol.Len()).
				Float64(tablog.ThresholdKey, rareThreshold).
				Int(tablog.TopKKey, topK).
				Msg("fitting encoder on training split")

			header, rows, err := encodeSplit(mode, column, rareThreshold, topK, sentinel, trainCol, testCol)
			if err != nil {
				return err
			}
			return writeCSV(cmd, outputFile, header, rows)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV input file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file (stdout if omitted)")
	cmd.Flags().StringVarP(&configFile, "config", "f", "", "YAML config with per-column parameters")
	cmd.Flags().StringVarP(&column, "column", "c", "", "categorical column to encode")
	cmd.Flags().StringVarP(&mode, "mode", "m", "rare", "encoder: rare, dummy, ordinal, count or frequency")
	cmd.Flags().Float64VarP(&testFraction, "test-fraction", "", 0.3, "fraction of rows held out for transform")
	cmd.Flags().Int64VarP(&seed, "seed", "x", 42, "random seed for the split")
	cmd.Flags().Float64VarP(&rareThreshold, "rare-threshold", "r", 0.05, "rare-label proportion threshold")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 10, "number of categories the dummy encoder keeps")
	cmd.Flags().StringVarP(&sentinel, "sentinel", "s", preprocessing.DefaultRareSentinel, "replacement category for grouped labels")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func PlotCommand() *cobra.Command {
	var inputFile string
	var outputFile string
	var column string
	var target string

	cmd := &cobra.Command{
		Use:   "plot -i data.csv -c column -t target -o chart.png",
		Short: "Renders a bar chart of per-category mean target values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(inputFile, column, target, nil)
			if err != nil {
				return err
			}
			col, err := table.Categorical(column)
			if err != nil {
				return err
			}
			y, err := table.Numeric(target)
			if err != nil {
				return err
			}
			summary, err := preprocessing.TargetRateSummary(col, y)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s vs %s", column, target)
			if err := visual.SaveTargetRateBars(summary, title, outputFile); err != nil {
				return err
			}
			log.Info().Str(tablog.ColumnKey, column).Str("file", outputFile).Msg("chart written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV input file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "target_rate.png", "chart output file")
	cmd.Flags().StringVarP(&column, "column", "c", "", "categorical column to plot")
	cmd.Flags().StringVarP(&target, "target", "t", "", "numeric target column")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// applyColumnConfig overrides flag values with the per-column settings from
// the config file; zero values leave the flags untouched.
func applyColumnConfig(cfg *config.Config, column string, rareThreshold *float64, topK *int, sentinel *string) {
	cc, ok := cfg.Column(column)
	if !ok {
		return
	}
	if cc.RareThreshold != 0 {
		*rareThreshold = cc.RareThreshold
	}
	if cc.TopK != 0 {
		*topK = cc.TopK
	}
	if cc.Sentinel != "" {
		*sentinel = cc.Sentinel
	}
}

// encodeSplit fits the selected encoder on the training column and applies it
// to the test column, returning output as header plus string rows.
func encodeSplit(mode, column string, threshold float64, k int, sentinel string, trainCol, testCol dataset.Column) ([]string, [][]string, error) {
	switch mode {
	case "rare":
		g, err := preprocessing.NewRareLabelGrouper(threshold)
		if err != nil {
			return nil, nil, err
		}
		if sentinel != "" {
			g.Sentinel = sentinel
		}
		if err := g.Fit(trainCol); err != nil {
			return nil, nil, err
		}
		out, err := g.Transform(testCol)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]string, out.Len())
		for i := 0; i < out.Len(); i++ {
			if out.IsMissing(i) {
				rows[i] = []string{""}
				continue
			}
			rows[i] = []string{out.Label(i)}
		}
		return []string{column}, rows, nil

	case "dummy":
		e, err := preprocessing.NewTopKDummyEncoder(k)
		if err != nil {
			return nil, nil, err
		}
		if err := e.Fit(trainCol); err != nil {
			return nil, nil, err
		}
		out, err := e.Transform(testCol)
		if err != nil {
			return nil, nil, err
		}
		r, c := out.Dims()
		rows := make([][]string, r)
		for i := 0; i < r; i++ {
			rows[i] = make([]string, c)
			for j := 0; j < c; j++ {
				rows[i][j] = strconv.Itoa(int(out.At(i, j)))
			}
		}
		return e.ColumnNames(column), rows, nil

	case "ordinal":
		e := preprocessing.NewOrdinalEncoder()
		if err := e.Fit(trainCol); err != nil {
			return nil, nil, err
		}
		codes, err := e.Transform(testCol)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]string, len(codes))
		for i, code := range codes {
			rows[i] = []string{strconv.Itoa(code)}
		}
		return []string{column + "_code"}, rows, nil

	case "count":
		e := preprocessing.NewCountEncoder()
		if err := e.Fit(trainCol); err != nil {
			return nil, nil, err
		}
		vals, err := e.Transform(testCol)
		if err != nil {
			return nil, nil, err
		}
		return []string{column + "_count"}, floatRows(vals, 0), nil

	case "frequency":
		e := preprocessing.NewFrequencyEncoder()
		if err := e.Fit(trainCol); err != nil {
			return nil, nil, err
		}
		vals, err := e.Transform(testCol)
		if err != nil {
			return nil, nil, err
		}
		return []string{column + "_freq"}, floatRows(vals, 6), nil

	default:
		return nil, nil, errors.NewValidationError("mode",
			"must be one of rare, dummy, ordinal, count, frequency", mode)
	}
}

func floatRows(vals []float64, prec int) [][]string {
	rows := make([][]string, len(vals))
	for i, v := range vals {
		rows[i] = []string{strconv.FormatFloat(v, 'f', prec, 64)}
	}
	return rows
}

// loadTable reads the input CSV restricted to the named columns; target may
// be empty when only the categorical column is needed, and markers override
// the default missing markers when non-empty.
func loadTable(path, column, target string, markers []string) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	fields := []dataset.Field{{Name: column, Kind: dataset.Categorical}}
	if target != "" {
		fields = append(fields, dataset.Field{Name: target, Kind: dataset.Numeric})
	}
	return dataset.ReadCSV(f, dataset.Schema{Fields: fields, MissingMarkers: markers})
}

func writeCSV(cmd *cobra.Command, path string, header []string, rows [][]string) error {
	out := cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating %s", path)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrap(err, "writing CSV rows")
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing CSV output")
}

var (
	logLevel  string
	logFormat string
)

func main() {
	root := &cobra.Command{
		Use:           "tabprep",
		Short:         "Categorical feature-engineering transforms for tabular data",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return tablog.Setup(logLevel, logFormat)
		},
	}

	root.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "logging level: debug, info, warn or error")
	root.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "logging format: pretty or json")

	root.AddCommand(SummarizeCommand())
	root.AddCommand(EncodeCommand())
	root.AddCommand(PlotCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
