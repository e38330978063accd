package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/folio"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	codec := flag.String("codec", "json", "Collection encoding: json or yaml")
	keep := flag.Bool("keep", false, "Keep the benchmark workspace after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "folio_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts := []folio.Option{folio.WithLogger(logger), folio.WithCodec(*codec)}

	ed, err := folio.Open(ctx, benchDir, opts...)
	if err != nil {
		panic(err)
	}

	// Every creation rewrites the whole collection, so this is quadratic in count.
	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()
	for i := 0; i < *count; i++ {
		doc, err := ed.NewDocument(ctx)
		if err != nil {
			panic(err)
		}
		ed.Edit(doc.ID, fmt.Sprintf("<h1>Benchmark Note %d</h1><p>This is a test note.</p>", i))
	}
	if err := ed.Close(ctx); err != nil {
		panic(err)
	}
	genDuration := time.Since(startGen)

	// Load: simulates starting the editor on an existing workspace.
	startLoad := time.Now()
	ed, err = folio.Open(ctx, benchDir, opts...)
	if err != nil {
		panic(err)
	}
	loadDuration := time.Since(startLoad)
	items := len(ed.Documents())

	// Save: one flushed edit of the active note.
	startSave := time.Now()
	ed.Edit(ed.ActiveID(), "<h1>Edited</h1>")
	if err := ed.Flush(ctx); err != nil {
		panic(err)
	}
	saveDuration := time.Since(startSave)
	_ = ed.Close(ctx)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %s):\n", items, *codec)
	fmt.Printf("  Generate: %v\n", genDuration)
	fmt.Printf("  Load:     %v\n", loadDuration)
	fmt.Printf("  Save:     %v\n", saveDuration)
	fmt.Printf("--------------------------------------------------\n")
}
