// Package app provides application initialization and lifecycle
// management. It wires configuration, logging, OpenTelemetry, the
// dataset service, and the HTTP router together at startup, and
// handles SIGINT/SIGTERM for graceful shutdown.
//
// The typical entry point is:
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Initialization errors are returned to the caller; the package never
// calls os.Exit directly.
package app
