// Command tunecard builds curated song-year card decks from a playlist.
//
// The workflow is three commands: `build` fetches and resolves the
// playlist and runs the interactive review, `review` re-opens the saved
// catalog for further editing, and `render` exports the printable SVG
// sheets. `cache` and `config` are maintenance utilities.
package main
