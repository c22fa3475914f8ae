package ui

// Package ui contains the Fyne renderer for screens described by the model
// package. It maps view-tree records onto canvas objects and custom layouts,
// draws the hero image crop-to-fill, and mounts the article screen into a
// window. Styling comes from ArticleTheme and the tokens package.
