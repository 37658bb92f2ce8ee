// Package watch rebuilds the site when files in a content directory change.
//
// [Watcher] listens for filesystem events with fsnotify. Bursts of events
// (editors often write a file several times per save) are coalesced with a
// [debounce.Debouncer], so one save produces one rebuild. Each successful
// rebuild is handed to a [PublishFunc], typically [site.Result.WriteDir] followed by [site.RemoveStale],
// and becomes the watcher's current build. A failed rebuild is logged and
// the previous build stays current.
package watch
