// Command markov-bootstrap builds a fresh trie snapshot from a JSONL
// corpus file in one pass, the offline equivalent of cmd/bootstrap
// building a store from scratch, adapted to the markov engine's
// train-then-snapshot workflow instead of korel's iterative stopword
// analysis.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cognicore/markov/pkg/markov/config"
	"github.com/cognicore/markov/pkg/markov/engine"
	"github.com/cognicore/markov/pkg/markov/filters"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/trainer"
)

type corpusLine struct {
	Sentence []struct {
		Text string `json:"text"`
		Tag  string `json:"tag"`
	} `json:"sentence"`
}

func main() {
	var (
		corpusPath = flag.String("corpus", "", "JSONL corpus path (required)")
		outPath    = flag.String("out", "", "Output snapshot path (required)")
		configPath = flag.String("config", "", "YAML config path (optional)")
	)
	flag.Parse()

	if *corpusPath == "" {
		log.Fatal("--corpus required")
	}
	if *outPath == "" {
		log.Fatal("--out required")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	eng, err := engine.New(engine.Options{Config: cfg})
	if err != nil {
		log.Fatalf("new engine: %v", err)
	}

	doc, err := loadCorpus(*corpusPath, eng.Adapter())
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	eng.Train(doc)
	log.Printf("trained on %s sentences", humanize.Comma(int64(len(doc))))

	if err := eng.Save(*outPath); err != nil {
		log.Fatalf("save snapshot: %v", err)
	}
	log.Printf("wrote snapshot to %s", *outPath)
}

func loadCorpus(path string, adapter *pos.Adapter) (trainer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc trainer.Document
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var cl corpusLine
		if err := json.Unmarshal([]byte(line), &cl); err != nil {
			return nil, fmt.Errorf("parse corpus line: %w", err)
		}

		sentence := make(trainer.Sentence, len(cl.Sentence))
		for i, tok := range cl.Sentence {
			sentence[i] = trainer.Token{Text: filters.FilterInput(tok.Text), Pos: adapter.Resolve(tok.Tag)}
		}
		doc = append(doc, sentence)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}
