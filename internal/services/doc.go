// Package services implements the upstream API adapters for the downloader.
//
// # Spotify Implementation
//
// [SpotifyService] reads playlist metadata using the OAuth2 client
// credentials grant — playlist reads need no user consent, so there is no
// browser flow. The [clientcredentials.Config] client refreshes tokens
// transparently, and a [rate.Limiter] throttles requests.
//
// Only the first page of playlist items is fetched. A malformed item fails
// the whole fetch with [shared.ErrPlaylistFetch]; this is deliberately
// stricter than the per-track isolation in the resolver, because a malformed
// catalog response indicates a broken adapter contract rather than expected
// operational noise.
//
// # YouTube Music Implementation
//
// [InnerTubeClient] posts free-text queries to the unauthenticated youtubei
// search endpoint, impersonating the WEB_REMIX web client. The response is
// decoded into typed renderer structs ([SearchResult], [SearchSection],
// [MusicCardShelf], [MusicShelf]) covering exactly the paths the candidate
// extractor walks, so shape mismatches surface as nil fields rather than
// panics.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrMissingCredentials] : client credentials absent
//   - [shared.ErrAPIRequest] : HTTP request failed
//   - [shared.ErrPlaylistFetch] : whole-playlist fetch failed (fatal)
package services
