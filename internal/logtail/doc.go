// Package logtail reads the tail of uniterm's log file for the logs screen.
//
// # Reading
//
// Read uses a ring buffer of size maxLines so only the last lines of a large
// file are kept in memory:
//
//  1. Allocate ring buffer of size maxLines
//  2. For each line in file, store it at the current index and advance
//     (wrapping at maxLines)
//  3. If fewer than maxLines were seen, return them in order
//  4. Otherwise return the buffer starting at the oldest line
//
// A missing file is not an error: the log is created lazily on first write.
//
// # Decoding
//
// uniterm logs with zap's JSON encoder. Parse turns one record into an Entry
// with the time, level, logger name and message split out and the remaining
// keys sorted into Fields. Lines that are not JSON (a panic trace, for
// example) are kept verbatim in Entry.Raw.
//
//	entries, err := logtail.Tail(cfg.LogPath(), 400)
//	for _, e := range entries {
//		fmt.Println(e.String())
//	}
package logtail
