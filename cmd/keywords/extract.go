package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatJSON  = "json"

	sourceArgs  = "<args>"
	sourceStdin = "<stdin>"
)

// document is one input text and where it came from.
type document struct {
	Source string
	text   string
}

type documentResult struct {
	Source   string             `json:"source"`
	Keywords []keywords.Keyword `json:"keywords,omitempty"`
	Terms    []string           `json:"terms,omitempty"`
	Count    int                `json:"count"`
}

type extractOptions struct {
	files  []string
	format string
	terms  bool
}

// addExtractionFlags registers the flags that override extraction.* keys.
func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("top-n", "n", keywords.DefaultTopN, "Number of keywords to return")
	cmd.Flags().String("method", "tfidf", "Scoring method (tfidf, textrank)")
	cmd.Flags().String("lemmatizer", "dictionary", "Lemmatizer (dictionary, snowball, dictionary+snowball, identity)")
	cmd.Flags().String("stopwords", "", "Stopword list file replacing the built-in English list")
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Extract keywords from text, files or stdin",
		Long: "Extract keywords from the text given as arguments, from each --file, " +
			"or from standard input when neither is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig(cmd)
			if err != nil {
				return err
			}
			extractor, err := cfg.Extraction.NewExtractor()
			if err != nil {
				return err
			}

			format, err := resolveFormat(opts.format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			docs, err := collectDocuments(args, opts.files, cmd.InOrStdin())
			if err != nil {
				return err
			}

			results := extractAll(extractor, docs, opts.terms)

			if format == formatJSON {
				return writeJSON(cmd, results)
			}
			return writeTables(cmd.OutOrStdout(), results, opts.terms)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "Read a document from this file (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", formatAuto, "Output format (auto, table, json)")
	cmd.Flags().BoolVar(&opts.terms, "terms", false, "Print the filtered, lemmatized term sequence instead of keywords")
	addExtractionFlags(cmd)
	return cmd
}

// resolveFormat picks table output for terminals and JSON otherwise when
// the format is auto.
func resolveFormat(format string, out io.Writer) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatTable:
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	case formatAuto, "":
		if isTerminal(out) {
			return formatTable, nil
		}
		return formatJSON, nil
	default:
		return "", fmt.Errorf("format: unsupported value %q (want auto, table or json)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// collectDocuments gathers the inputs in order: the arguments joined as one
// document, then each file. Stdin is read only when neither is given and is
// not an interactive terminal.
func collectDocuments(args, files []string, stdin io.Reader) ([]document, error) {
	var docs []document
	if len(args) > 0 {
		docs = append(docs, document{Source: sourceArgs, text: strings.Join(args, " ")})
	}

	if len(files) > 0 {
		fileDocs, err := readFiles(files)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}

	if len(docs) > 0 {
		return docs, nil
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errors.New("no input: pass text as arguments, use --file, or pipe text on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []document{{Source: sourceStdin, text: string(data)}}, nil
}

// readFiles loads files concurrently, keeping their order.
func readFiles(paths []string) ([]document, error) {
	docs := make([]document, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Clean(path))
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			docs[i] = document{Source: path, text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// extractAll runs the extractor over docs concurrently. The extractor's
// default top N applies.
func extractAll(e *keywords.Extractor, docs []document, terms bool) []documentResult {
	results := make([]documentResult, len(docs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range docs {
		g.Go(func() error {
			r := documentResult{Source: doc.Source}
			if terms {
				r.Terms = e.Terms(doc.text)
				r.Count = len(r.Terms)
			} else {
				r.Keywords = e.Extract(doc.text, 0)
				r.Count = len(r.Keywords)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait() // extraction never fails
	return results
}

func writeTables(w io.Writer, results []documentResult, terms bool) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "%s\n", r.Source); err != nil {
				return err
			}
		}

		if terms {
			if _, err := fmt.Fprintln(w, strings.Join(r.Terms, " ")); err != nil {
				return err
			}
			continue
		}
		if r.Count == 0 {
			if _, err := fmt.Fprintln(w, "no keywords found"); err != nil {
				return err
			}
			continue
		}

		rows := make([][]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			rows[j] = []string{
				strconv.Itoa(j + 1),
				kw.Term,
				strconv.FormatFloat(kw.Score, 'f', 6, 64),
				strconv.Itoa(kw.Count),
			}
		}
		table := renderTable(
			[]string{"#", "Keyword", "Score", "Count"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
		)
		if _, err := fmt.Fprintln(w, table); err != nil {
			return err
		}
	}
	return nil
}
