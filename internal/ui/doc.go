// Package ui implements the interactive match review screen shown by
// `spotdl download --review`.
//
// The model is Elm-style: [ReviewModel] holds a bubbles list of resolved
// matches, space toggles a match in or out of the download set, enter
// confirms and q cancels. [Review] wraps the tea program lifecycle and
// returns the kept matches.
package ui
