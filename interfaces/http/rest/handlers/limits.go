package handlers

import (
	"github.com/chanmix51/kaku/infrastructure/config"
)

// LimitsProvider yields the current request limits. Both the fsnotify-backed
// watcher and the static fallback satisfy it, so a hot-reloaded overlay
// changes enforcement on the next request.
type LimitsProvider interface {
	Limits() config.Limits
}
