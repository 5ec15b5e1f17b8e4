// Command markov-cli is an interactive and one-shot front end for the
// markov text engine, the chat-cli shape described in SPEC_FULL.md §2
// (component M), grounded on cmd/chat-cli/main.go.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"github.com/cognicore/markov/pkg/markov/config"
	"github.com/cognicore/markov/pkg/markov/engine"
	"github.com/cognicore/markov/pkg/markov/filters"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/ratings"
	"github.com/cognicore/markov/pkg/markov/trainer"
	"github.com/cognicore/markov/pkg/markov/word"
)

func main() {
	var (
		snapshotPath = flag.String("snapshot", "", "Trie snapshot path (required)")
		configPath   = flag.String("config", "", "YAML config path (optional, defaults applied otherwise)")
		ratingsPath  = flag.String("ratings", "", "Ratings journal sqlite path (optional)")
		trainFile    = flag.String("train-file", "", "JSONL corpus to train on before serving (optional)")
		skeletonJSON = flag.String("generate", "", `One-shot skeleton, e.g. ["NOUN","VERB","NOUN","EOS"]`)
		subjectsCSV  = flag.String("subjects", "", "Comma-separated subject words for one-shot generation")
	)
	flag.Parse()

	if *snapshotPath == "" {
		log.Fatal("--snapshot required")
	}

	ctx := context.Background()

	eng, cleanup, err := buildEngine(ctx, *configPath, *ratingsPath, *snapshotPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *trainFile != "" {
		if err := trainFromFile(eng, *trainFile); err != nil {
			log.Fatal(err)
		}
	}

	if *skeletonJSON != "" {
		if err := runOneShot(eng, *skeletonJSON, *subjectsCSV); err != nil {
			log.Fatal(err)
		}
		return
	}

	runInteractive(eng)
}

func buildEngine(ctx context.Context, configPath, ratingsPath, snapshotPath string) (*engine.Engine, func(), error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	var journal *ratings.Journal
	if ratingsPath != "" {
		j, err := ratings.Open(ctx, ratingsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open ratings journal: %w", err)
		}
		journal = j
	}

	eng, err := engine.New(engine.Options{Config: cfg, Journal: journal})
	if err != nil {
		return nil, nil, fmt.Errorf("new engine: %w", err)
	}

	if _, err := os.Stat(snapshotPath); err == nil {
		if err := eng.Load(ctx, snapshotPath); err != nil {
			return nil, nil, fmt.Errorf("load snapshot: %w", err)
		}
	}

	cleanup := func() {
		if err := eng.Save(snapshotPath); err != nil {
			log.Printf("save snapshot: %v", err)
			eng.Close()
			return
		}
		stamp, err := strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())
		if err != nil {
			stamp = time.Now().String()
		}
		log.Printf("saved snapshot to %s at %s", snapshotPath, stamp)
		eng.Close()
	}

	return eng, cleanup, nil
}

// corpusLine is one JSONL row: a sentence as a list of (text, tag) pairs.
type corpusLine struct {
	Sentence []struct {
		Text string `json:"text"`
		Tag  string `json:"tag"`
	} `json:"sentence"`
}

func trainFromFile(eng *engine.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	adapter := eng.Adapter()
	var sentences trainer.Document
	var trained int

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var cl corpusLine
		if err := json.Unmarshal([]byte(line), &cl); err != nil {
			return fmt.Errorf("parse corpus line: %w", err)
		}

		sentence := make(trainer.Sentence, len(cl.Sentence))
		for i, tok := range cl.Sentence {
			sentence[i] = trainer.Token{Text: filters.FilterInput(tok.Text), Pos: adapter.Resolve(tok.Tag)}
		}
		sentences = append(sentences, sentence)
		trained++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	eng.Train(sentences)
	log.Printf("trained on %s sentences from %s", humanize.Comma(int64(trained)), path)
	return nil
}

func runOneShot(eng *engine.Engine, skeletonJSON, subjectsCSV string) error {
	skeleton, err := parseSkeleton(skeletonJSON)
	if err != nil {
		return err
	}
	subjects := resolveSubjects(eng, subjectsCSV)

	sentences, err := eng.Generate(skeleton, subjects)
	if err != nil {
		return err
	}
	fmt.Println(render(sentences))
	return nil
}

func runInteractive(eng *engine.Engine) {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("===========================================")
		fmt.Println("  Markov Engine CLI")
		fmt.Println("  skeleton ; subjects   (Ctrl+D to exit)")
		fmt.Println("===========================================")
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ";", 2)
		skeletonJSON := strings.TrimSpace(parts[0])
		subjectsCSV := ""
		if len(parts) == 2 {
			subjectsCSV = strings.TrimSpace(parts[1])
		}

		skeleton, err := parseSkeleton(skeletonJSON)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		subjects := resolveSubjects(eng, subjectsCSV)

		sentences, err := eng.Generate(skeleton, subjects)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(render(sentences))
	}
}

func parseSkeleton(text string) ([]pos.Pos, error) {
	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, fmt.Errorf("parse skeleton: %w", err)
	}
	out := make([]pos.Pos, len(names))
	for i, n := range names {
		out[i] = pos.Parse(n)
	}
	return out, nil
}

func resolveSubjects(eng *engine.Engine, csv string) []*word.Word {
	if csv == "" {
		return nil
	}
	var out []*word.Word
	for _, text := range strings.Split(csv, ",") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if w := eng.Select(text); w != nil {
			out = append(out, w)
		}
	}
	return out
}

func render(sentences [][]*word.Word) string {
	var b strings.Builder
	for si, s := range sentences {
		if si > 0 {
			b.WriteString(" ")
		}
		for wi, w := range s {
			if wi > 0 {
				b.WriteString(" ")
			}
			b.WriteString(w.Text)
		}
		b.WriteString(".")
	}
	return filters.SmoothOutput(b.String())
}

