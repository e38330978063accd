// Package folio is the composition root of a rich-text note editor core.
//
// It wires a key-value backend, the document repository, the active
// document session and the autosave controller into a single editor.Editor.
//
// Model:
//
// A workspace holds a flat list of HTML documents in creation order and the
// id of the document bound to the editing surface. Both live under two keys
// of a key-value store: one file per key inside a ".folio" directory by
// default, or process memory.
//
// Features:
//
//   - **Autosave**: edits are written once the user pauses typing (500ms),
//     and immediately on blur or when switching documents.
//   - **Title inference**: the first heading of a document becomes its title.
//   - **Never empty**: deleting the last document creates a new one.
//   - **Atomic writes**: the fs backend writes through temp file and rename.
//   - **Live reload**: Watch picks up writes made by other processes.
//   - **Export**: any document renders to a standalone HTML page.
//
// Usage:
//
//	ed, err := folio.Open(ctx, "./notes", folio.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer ed.Close(ctx)
//
//	ed.Edit(ed.ActiveID(), "<h1>Groceries</h1><p>milk</p>")
package folio
