package server

// Server runs the config reader's HTTP API: the /api/contents endpoints that
// resolve local and configserver: paths, /api/version, and the embedded
// /config API when a native repository is configured.
type Server interface {
	// RunServer listens on the configured address and blocks until SIGINT,
	// SIGTERM or SIGQUIT is received or the listener fails.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones,
	// bounded by a fixed timeout.
	Shutdown()
}
