package tokens

// Package tokens is the theme source for screens: it maps typography style
// names and a dark-mode flag to concrete text attributes, and holds the fixed
// palette the article screen is drawn with.
