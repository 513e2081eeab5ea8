// Package models defines the domain entities shared across the downloader.
//
// The package contains plain data transfer objects only:
//   - [Track] : One playlist entry (title, primary artist, duration)
//   - [Candidate] : One extracted search result with a playable source id
//   - [Match] : A resolved track with its playback URL
//
// Tracks are produced once per playlist fetch and treated as immutable.
// Candidates live only inside a single search-and-select call, while matches
// accumulate across a batch until handed to the download dispatcher.
package models
