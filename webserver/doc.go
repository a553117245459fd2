// Package webserver is the final project: an HTTP server built from a TCP
// listener and a hand-made worker pool.
//
// The point of the exercise is to see what net/http normally hides, so the
// server speaks just enough HTTP/1.1 by hand: read the request line, pick
// a page, write a status line and body. Three routes exist:
//
//	GET /       the hello page
//	GET /sleep  the hello page after an artificial delay, to show the
//	            pool absorbing a slow request without blocking the rest
//	anything else: the 404 page with status 404
//
// Connections are handled by Pool, a fixed-size worker pool fed through a
// channel. Where Go code would normally just `go handle(conn)` per
// connection, the pool bounds concurrency the way the book's ThreadPool
// did, and its Shutdown drains cleanly: close the feed, wait for workers.
//
// websocket.go adds the one modern extra: an echo endpoint upgraded with
// gorilla/websocket, served through net/http since upgrading is exactly
// the kind of protocol detail not worth doing by hand twice.
package webserver
