package model

// Package model defines domain data structures shared by the search, download
// and UI layers: the resolved video record, progress events and the download
// task the UI tracks through its explicit state transitions.
