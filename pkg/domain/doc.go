// Package domain contains the core domain entities of the product reader:
// the address stored on a tag, the product record published by the
// registry contract and the image reference derived from it. The types are
// free of hardware and transport concerns so every pipeline stage can share
// them.
package domain
