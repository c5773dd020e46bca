// Package corpus loads per-demo metadata files into an immutable
// snapshot for validation.
//
// One JSON file per demo, anywhere under the corpus root. The file
// basename (without extension) is the demo's slug, the identity used by
// demonstration-typed related-content links. The scanner never rejects
// a corpus because one file is malformed: parse failures become
// corpus-level violations on the snapshot, and only an unreadable
// directory is a hard error.
//
// The snapshot carries a normalized checksum of the whole corpus so
// watch mode can tell real edits apart from reformatting.
package corpus
