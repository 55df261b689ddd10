// Package files provides file discovery utilities for the ASR decoder.
//
// Discovery locates master file candidates (.txt and .dat files) in a
// directory, used when the decoder is pointed at a directory rather than a
// single input file.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/base")
//	masterFiles, err := discovery.FindMasterFiles("data/masterfiles")
package files
