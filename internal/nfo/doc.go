// Package nfo provides a typed wrapper around Kodi episodedetails NFO
// documents.
//
// The package reads the fields the sequencer and extras generator consume
// (title, season, episode, aired, plot, rating, director, credits, cast) and
// writes the synthetic displayseason/displayepisode tags. Writes replace the
// file atomically.
package nfo
