package model

// Package model defines domain data structures used across the app: the
// fixed category table, extension-based classification, the settings
// mapping, and sort pass results. Everything here is pure data and pure
// functions so the engine and the UI can share it without coupling.
