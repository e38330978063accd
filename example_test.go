package folio_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/folio"
)

// Example_basic opens a workspace, writes a note and reads it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "folio-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	ed, err := folio.Open(ctx, tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close(ctx)

	// A fresh workspace starts with a welcome note.
	welcome, _ := ed.Active()
	fmt.Println(welcome.Title)

	doc, err := ed.NewDocument(ctx)
	if err != nil {
		log.Fatal(err)
	}
	ed.Edit(doc.ID, "<h1>Groceries</h1><p>milk, eggs</p>")
	if err := ed.Flush(ctx); err != nil {
		log.Fatal(err)
	}

	for _, d := range ed.Documents() {
		fmt.Println(d.Title)
	}

	// Output:
	// First Note
	// First Note
	// Groceries
}

// Example_export renders a note as a standalone page.
func Example_export() {
	ctx := context.Background()
	ed, err := folio.Open(ctx, "", folio.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close(ctx)

	file, _, err := ed.Export(ctx, ed.ActiveID())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(file.Name)

	// Output:
	// first_note.html
}
