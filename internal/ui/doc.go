package ui

// Package ui contains the Fyne-based desktop shell. It wires the search box,
// the destination folder picker and the download button to the search and
// download services, and renders their progress.
