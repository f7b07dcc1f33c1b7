package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedanth-raj/sectionize/internal/analyzer"
	"github.com/vedanth-raj/sectionize/internal/paper"
	"github.com/vedanth-raj/sectionize/internal/reader"
	"github.com/vedanth-raj/sectionize/internal/report"
	"github.com/vedanth-raj/sectionize/internal/store"
)

func analyzeCmd() *cobra.Command {
	var (
		outputDir    string
		patternsFile string
		maxPhrases   int
		title        string
		authors      string
		pages        int
		strict       bool
		showReport   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze paper text files into section sets",
		Long: `Analyze reads one or more plain text, Markdown, or HTML files,
detects section boundaries, classifies headings, and prints each
resulting section set as JSON. With -o the sets are written to a
directory instead, one <id>_sections.json file per input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := analyzer.DefaultConfig()
			if maxPhrases > 0 {
				cfg.MaxKeyPhrases = maxPhrases
			}
			cfg.StrictSummary = strict
			if patternsFile != "" {
				custom, err := analyzer.LoadPatternsFile(patternsFile)
				if err != nil {
					return fmt.Errorf("load patterns: %w", err)
				}
				cfg.Custom = custom
			}
			if (title != "" || authors != "" || pages > 0) && len(args) > 1 {
				return fmt.Errorf("--title, --authors and --pages apply to a single input file")
			}

			var st *store.Store
			if outputDir != "" {
				log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
				var err error
				st, err = store.Open(outputDir, log)
				if err != nil {
					return fmt.Errorf("open output dir: %w", err)
				}
			}

			var failed int
			for _, path := range args {
				set, err := analyzeFile(path, title, authors, pages, cfg)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", path, err)
					failed++
					continue
				}
				id := docID(path)
				switch {
				case st != nil:
					if err := st.Put(id, set); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", path, err)
						failed++
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sections, %d words\n",
						id, set.Summary.TotalSections, set.Summary.TotalWords)
				case showReport:
					fmt.Fprintln(cmd.OutOrStdout(), report.Document(set))
				default:
					if err := writeJSON(cmd.OutOrStdout(), set); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write <id>_sections.json files into")
	cmd.Flags().StringVar(&patternsFile, "patterns", "", "YAML file with custom heading patterns")
	cmd.Flags().IntVarP(&maxPhrases, "key-phrases", "k", 0, "maximum key phrases per section")
	cmd.Flags().StringVar(&title, "title", "", "document title (single file only)")
	cmd.Flags().StringVar(&authors, "authors", "", "comma separated author list (single file only)")
	cmd.Flags().IntVar(&pages, "pages", 0, "declared page count (single file only)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on summary mismatches instead of correcting them")
	cmd.Flags().BoolVar(&showReport, "report", false, "print a text report instead of JSON")

	return cmd
}

func analyzeFile(path, title, authors string, pages int, cfg analyzer.Config) (*paper.DocumentSectionSet, error) {
	rd, err := reader.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := rd.Read(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	meta := paper.Metadata{Title: doc.Title, PageCount: pages}
	if title != "" {
		meta.Title = title
	}
	if authors != "" {
		for _, a := range strings.Split(authors, ",") {
			if a = strings.TrimSpace(a); a != "" {
				meta.Authors = append(meta.Authors, a)
			}
		}
	}

	set := analyzer.DetectSections(doc.Text, meta, cfg)
	if set.Metadata.PageCount == 0 && len(set.Sections) > 0 {
		set.Metadata.PageCount = set.Sections[len(set.Sections)-1].EndPage
	}
	if err := analyzer.VerifySummary(&set, cfg.StrictSummary); err != nil {
		return nil, err
	}
	return &set, nil
}

func docID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
