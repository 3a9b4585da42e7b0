// Package library discovers episode records and extra videos in a media
// library tree and owns the S<season>E<episode> file naming convention.
package library
