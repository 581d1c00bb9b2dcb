// Package fetch retrieves raw wiki page markup.
//
// Two implementations exist: HTTPFetcher for live wikis and LocalFetcher
// for reading saved pages from a directory, which keeps tests and offline
// runs off the network.
package fetch
