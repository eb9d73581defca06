// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package services provides suture.Service wrappers for Roadtrip components.

HTTPServerService adapts *http.Server's ListenAndServe and Shutdown to
suture's context-aware Serve, draining in-flight requests on shutdown.

CacheGCService runs badger value log garbage collection for the persistent
cache tier on a fixed interval. A GC error ends Serve so the supervisor
restarts it with backoff.

Both implement fmt.Stringer, which suture uses to name services in its
events.
*/
package services
