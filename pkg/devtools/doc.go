// Package devtools serves a live view of a mounted root over HTTP.
//
// Routes:
//
//	GET  /tree       markup of the live tree
//	GET  /tree.json  structural JSON of the live tree
//	POST /dispatch   dispatch an event (form fields path, event, value)
//	GET  /history    recent pass reports (?since=seq)
//	GET  /metrics    Prometheus metrics
//	GET  /ws         websocket stream of pass reports
//
// The render pipeline is single-threaded, so every handler that touches the
// root holds the server mutex.
//
//	srv := devtools.New(devtools.WithGatherer(reg))
//	root, err := runtime.RenderRoot(doc, container, App,
//	    runtime.WithMiddleware(srv.Middleware()),
//	)
//	srv.Attach(root)
//	srv.ListenAndServe(ctx, "localhost:7331")
package devtools
