package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/equipe22/hegpdup/internal/docid"
	"github.com/equipe22/hegpdup/pkg/dupfinder"
	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/overlap"
)

// stringVar registers a string flag whose default falls back to an
// environment variable when set, the same helper shape the original
// diffy command used for its config flags.
func stringVar(p *string, name, envKey, def, usage string) {
	if v, ok := os.LookupEnv(envKey); ok {
		def = v
	}
	flag.StringVar(p, name, def, usage)
}

type testCaseFile struct {
	Settings struct {
		FingerprintType    string `json:"fingerprint_type"`
		FingerprintLength  int    `json:"fingerprint_length"`
		MinDuplicateLength int    `json:"min_duplicate_length"`
	} `json:"settings"`
	Docs []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"docs"`
}

type duplicateOut struct {
	SourceDocID string `json:"source_doc_id"`
	TargetDocID string `json:"target_doc_id"`
	SourceStart uint32 `json:"source_start"`
	SourceEnd   uint32 `json:"source_end"`
	TargetStart uint32 `json:"target_start"`
	TargetEnd   uint32 `json:"target_end"`
}

func main() {
	var (
		inputPath string
		backend   string
	)
	stringVar(&inputPath, "input", "HEGPDUP_INPUT", "", "path to a test-case JSON file (see spec section 6)")
	stringVar(&backend, "backend", "HEGPDUP_BACKEND", "ncls", "overlap index backend: none, interval_tree, ncls")
	flag.Parse()

	if inputPath == "" {
		log.Fatal("missing -input path to a test-case JSON file")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	var tc testCaseFile
	if err := json.Unmarshal(raw, &tc); err != nil {
		log.Fatalf("parsing input: %v", err)
	}

	treeBackend, err := parseBackend(backend)
	if err != nil {
		log.Fatal(err)
	}

	var builder fingerprint.Builder
	switch tc.Settings.FingerprintType {
	case "", "char":
		builder, err = fingerprint.NewCharBuilder(fingerprint.CharOptions{
			FingerprintLength: tc.Settings.FingerprintLength,
			ORF:               1,
			CaseSensitive:     true,
			AllowMultiline:    true,
		})
	case "word":
		builder, err = fingerprint.NewWordBuilder(fingerprint.WordOptions{
			FingerprintLength: tc.Settings.FingerprintLength,
			ORF:               1,
			CaseSensitive:     true,
			AllowMultiline:    true,
		})
	default:
		log.Fatalf("unknown fingerprint_type %q", tc.Settings.FingerprintType)
	}
	if err != nil {
		log.Fatalf("configuring fingerprint builder: %v", err)
	}

	finder, err := dupfinder.New(builder, dupfinder.Options{
		MinDuplicateLength: tc.Settings.MinDuplicateLength,
		TreeBackend:        treeBackend,
	})
	if err != nil {
		log.Fatalf("configuring duplicate finder: %v", err)
	}

	var out []duplicateOut
	for _, doc := range tc.Docs {
		id := doc.ID
		if id == "" {
			id = docid.For(doc.Text)
		}
		dups, err := finder.FindDuplicates(id, doc.Text)
		if err != nil {
			log.Fatalf("finding duplicates in %q: %v", id, err)
		}
		for _, d := range dups {
			out = append(out, duplicateOut{
				SourceDocID: d.SourceDocID,
				TargetDocID: id,
				SourceStart: d.SourceSpan.Start,
				SourceEnd:   d.SourceSpan.End,
				TargetStart: d.TargetSpan.Start,
				TargetEnd:   d.TargetSpan.End,
			})
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseBackend(s string) (overlap.Backend, error) {
	switch s {
	case "none":
		return overlap.NONE, nil
	case "interval_tree":
		return overlap.IntervalTree, nil
	case "ncls", "":
		return overlap.NCLS, nil
	default:
		return 0, fmt.Errorf("unknown -backend %q", s)
	}
}
