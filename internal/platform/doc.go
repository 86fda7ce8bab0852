package platform

// Package platform contains OS/platform integration: resolution of the user
// desktop directory, filesystem helpers, and revealing folders in the system
// file manager.
