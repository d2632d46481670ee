// Package creds resolves and persists per-user API keys.
//
// The Store interface has two implementations: FileStore keeps credentials
// in local JSON files (what the auth CLI flow writes), and HTTPStore asks
// the hosted credential service. NewStore picks one from StoreOptions;
// local environments default to files, everything else to the service.
//
// A CachingStore wraps either backend with a TTL cache plus singleflight
// deduplication, since the authentication gate runs on every tool call.
// Watcher invalidates that cache when credential files change on disk, so
// running `auth` takes effect on a live server without a restart.
package creds
