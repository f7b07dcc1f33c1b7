package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vedanth-raj/sectionize/internal/corpus"
	"github.com/vedanth-raj/sectionize/internal/paper"
	"github.com/vedanth-raj/sectionize/internal/report"
)

func compareCmd() *cobra.Command {
	var showReport bool

	cmd := &cobra.Command{
		Use:   "compare [dir|files...]",
		Short: "Compare stored section sets across a corpus",
		Long: `Compare loads previously analyzed *_sections.json files, either
named directly or found in a directory, and prints corpus level
statistics over the collection.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectSectionFiles(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no *_sections.json files found")
			}

			sets := make([]paper.DocumentSectionSet, 0, len(paths))
			for _, path := range paths {
				set, err := loadSectionSet(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				sets = append(sets, *set)
			}

			cmp := corpus.Compare(sets)
			if showReport {
				fmt.Fprintln(cmd.OutOrStdout(), report.Corpus(&cmp))
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), cmp)
		},
	}

	cmd.Flags().BoolVar(&showReport, "report", false, "print a text report instead of JSON")

	return cmd
}

func collectSectionFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*_sections.json"))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

func loadSectionSet(path string) (*paper.DocumentSectionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set paper.DocumentSectionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
