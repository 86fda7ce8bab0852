package sorter

// Package sorter implements the sort engine: one-shot passes that scan a
// source directory, classify entries by extension, and move them into their
// configured category destinations with collision-safe renaming. The engine
// is a free-standing library; all state is passed in explicitly.
