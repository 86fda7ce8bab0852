package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the sort engine and settings
// store and renders pass results and the settings form. The engine packages
// never depend on this layer.
