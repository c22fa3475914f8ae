package model

// Package model defines the data-driven view tree used to describe screens:
// plain records for text, images, icons, boxes and navigation items behind a
// single Node interface. Trees carry literal values and style tokens only;
// turning them into canvas objects is the renderer's job.
