// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package supervisor provides process supervision for Roadtrip using suture v4.

# Overview

Long-running services are organized in two layers:

	RootSupervisor ("roadtrip")
	├── StorageSupervisor ("storage-layer")
	│   └── CacheGCService (badger cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing GC loop is restarted inside the storage layer and never
interrupts the HTTP server. Supervisor events (restarts, backoff, services
that missed the shutdown timeout) are logged through sutureslog, which
writes to zerolog via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger(logging.WithComponent("supervisor")),
	    supervisor.DefaultTreeConfig(),
	)
	if err != nil {
	    return err
	}
	tree.AddStorageService(services.NewCacheGCService(badgerTier, 10*time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 30*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Past FailureThreshold the supervisor waits FailureBackoff before the next
restart. A service returning nil is not restarted; a service returning an
error is.

# Shutdown

Canceling the context stops every service. Services get ShutdownTimeout
each; UnstoppedServiceReport lists the ones that did not return in time.
*/
package supervisor
