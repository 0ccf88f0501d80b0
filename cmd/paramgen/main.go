package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/paramgen/internal/export"
	"github.com/san-kum/paramgen/internal/sampler"
	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
	"github.com/san-kum/paramgen/internal/tui"
)

var (
	outputPath   string
	previousPath string
	jsonPath     string
	seed         int64
	maxRows      int
	interactive  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paramgen",
		Short: "parameter set generation for simulation ensembles",
	}

	generateCmd := &cobra.Command{
		Use:   "generate [spec.yaml]",
		Short: "generate samples from a sampling spec",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "csv output path (default stdout)")
	generateCmd.Flags().StringVar(&previousPath, "previous", "", "csv of previously generated samples")
	generateCmd.Flags().StringVar(&jsonPath, "json", "", "also write run metadata as json")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, overrides the spec (0 = from spec or time)")

	validateCmd := &cobra.Command{
		Use:   "validate [spec.yaml]",
		Short: "check a sampling spec against its schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [spec.yaml]",
		Short: "generate and inspect samples without writing files",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&previousPath, "previous", "", "csv of previously generated samples")
	previewCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, overrides the spec (0 = from spec or time)")
	previewCmd.Flags().IntVar(&maxRows, "rows", 10, "table rows to print")
	previewCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse samples interactively")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list recognized sampler kinds",
		RunE:  listKinds,
	}

	rootCmd.AddCommand(generateCmd, validateCmd, previewCmd, kindsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(specPath string) (*spec.Spec, *table.Table, error) {
	s, err := spec.Load(specPath)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	if seed != 0 {
		s.Seed = &seed
	}

	var previous *table.Table
	if previousPath != "" {
		previous, err = table.ReadFile(previousPath)
		if err != nil {
			return nil, nil, err
		}
	}

	smp, err := sampler.New(s)
	if err != nil {
		return nil, nil, err
	}
	t, err := smp.Generate(previous)
	if err != nil {
		return nil, nil, err
	}
	return s, t, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, t, err := generate(args[0])
	if err != nil {
		return err
	}

	if outputPath == "" {
		if err := export.WriteCSVStdout(t); err != nil {
			return err
		}
	} else {
		if err := export.WriteCSV(outputPath, t); err != nil {
			return err
		}
		fmt.Printf("wrote %d samples (%d columns) to %s\n", t.NumRows(), len(t.Columns()), outputPath)
	}

	if jsonPath != "" {
		if err := export.WriteJSON(jsonPath, s, t); err != nil {
			return err
		}
		fmt.Printf("wrote metadata to %s\n", jsonPath)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := spec.Load(args[0])
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	fmt.Printf("%s: valid %s spec\n", args[0], s.Type)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, t, err := generate(args[0])
	if err != nil {
		return err
	}

	if interactive {
		return tui.Run(s.Type, t)
	}

	fmt.Printf("%s: %d samples, %d columns\n\n", s.Type, t.NumRows(), len(t.Columns()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	records := t.Records()
	limit := maxRows + 1
	if limit > len(records) {
		limit = len(records)
	}
	for _, record := range records[:limit] {
		for i, cell := range record {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	if len(records) > limit {
		fmt.Fprintf(w, "... %d more rows\n", len(records)-limit)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, name := range t.Columns() {
		values, err := t.Float64Column(name)
		if err != nil || len(values) < 2 {
			continue
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		graph := asciigraph.Plot(sorted,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s (sorted values)", name)),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

var kindKeys = map[string]string{
	spec.KindList:          "values per column (equal length)",
	spec.KindColumnList:    "tabular parameters block",
	spec.KindCrossProduct:  "values per column",
	spec.KindRandom:        "num_samples, min/max per parameter",
	spec.KindCSV:           "csv_file, optional row_headers",
	spec.KindCustom:        "function (registered callback name)",
	spec.KindBestCandidate: "num_samples, min/max per parameter, optional num_candidates/weight/seed",
}

func listKinds(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tREQUIRED KEYS")
	for _, kind := range sampler.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", kind, kindKeys[kind])
	}
	return w.Flush()
}
