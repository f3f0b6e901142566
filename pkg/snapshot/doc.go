// Package snapshot records the live tree after every render pass.
//
// A Recorder is pass middleware that serialises the container markup and
// writes it to a Store under pass-NNNNNN.html. FileStore writes to a local
// directory; S3Store writes to an S3 bucket.
//
//	store, err := snapshot.NewFileStore("./passes")
//	rec := snapshot.NewRecorder(store)
//	root, err := runtime.RenderRoot(doc, container, App,
//	    runtime.WithMiddleware(rec.Middleware()),
//	)
package snapshot
