// Package debug provides optional writer-based debug logging.
//
// When the UILAYOUT_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise logging is a no-op until
// SetOutput or Init is called.
package debug
