package screen

// Package screen composes the article screen. Every value on the screen is a
// literal defined here; Compose turns them into a model tree for a given
// color scheme and never fails.
