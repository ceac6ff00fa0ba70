// Package server assembles the registry API: store, seeding, domain services,
// middleware, routes and the HTTP listener.
//
// Example Usage:
//
//	srv, err := server.NewServer(cfg, logger)
//	if err != nil {
//		return err
//	}
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
