package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/brandlens/dna/pkg/dna"
	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/match"
	"github.com/brandlens/dna/pkg/dna/store"
	"github.com/brandlens/dna/pkg/dna/store/sqlite"
)

func main() {
	var (
		socialFile  = flag.String("social", "", "Optional: file with one social caption per line")
		lexiconsCfg = flag.String("lexicons", "", "Optional: YAML file overriding the default lexicons")
		boundary    = flag.Bool("word-boundary", false, "Match lexicon terms on word boundaries instead of substrings")
		dbPath      = flag.String("db", "", "Optional: SQLite database to cache the profile in")
		source      = flag.String("source", "", "Source label for the cached profile (defaults to first input file)")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: dna-extract [flags] page.html [page2.html notes.txt ...]")
	}

	pages, err := readPages(files)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var social []string
	if *socialFile != "" {
		social, err = readLines(*socialFile)
		if err != nil {
			log.Fatalf("read social captions: %v", err)
		}
	}

	opts := dna.Options{Matcher: match.Matcher{Boundary: *boundary}}
	if *lexiconsCfg != "" {
		lex, err := config.Load(*lexiconsCfg)
		if err != nil {
			log.Fatalf("load lexicons: %v", err)
		}
		opts.Lexicons = &lex
	}

	engine := dna.New(opts)
	result, err := engine.Extract(engine.NewCorpus(pages, social))
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal profile: %v", err)
	}
	fmt.Println(string(out))

	if *dbPath != "" {
		label := *source
		if label == "" {
			label = filepath.Base(files[0])
		}
		if err := cacheProfile(*dbPath, label, result); err != nil {
			log.Fatalf("cache profile: %v", err)
		}
		log.Printf("cached profile for %q in %s", label, *dbPath)
	}
}

func cacheProfile(dbPath, source string, result dna.BrandDNA) error {
	ctx := context.Background()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.SaveProfile(ctx, store.Profile{
		ID:        store.NewProfileID(),
		Source:    source,
		CreatedAt: time.Now(),
		DNA:       result,
	})
}

// readPages loads each input file, extracting visible text from .html/.htm
// files and taking everything else verbatim.
func readPages(paths []string) ([]string, error) {
	pages := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text := string(data)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			text = extractVisibleText(text)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// extractVisibleText walks the parsed HTML and collects text nodes,
// skipping script and style subtrees.
func extractVisibleText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String()
}
