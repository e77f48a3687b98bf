// Package babel provides a client for the Babel annotations service.
//
// # Overview
//
// Babel stores annotations (a body attached to one or more targets) and
// exposes them as feeds. Every client method is a single HTTP round trip:
// arguments are validated, a request is built with bearer-token
// authorization, and the JSON response is returned as is or translated into
// an error.
//
// # Quick Start
//
//	client, err := babel.NewClient(babel.Config{
//	    Host: "http://babel",
//	    Port: "3000",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.GetTargetFeed(ctx, "http://example.com/resource", token,
//	    babel.TargetFeedOptions{Hydrate: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var page babel.FeedPage
//	if err := resp.Decode(&page); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
//   - GET  /feeds/targets/:md5(target)/activity/annotations[/hydrate]
//   - GET  /feeds/annotations/hydrate?feed_ids=:ids
//   - GET  /annotations?:query
//   - POST /annotations
//
// # Error Handling
//
// Errors fall into two groups. Precondition errors (*ConfigError and
// *ArgumentError) are returned before any request is sent and wrap a sentinel
// such as ErrMissingToken:
//
//	_, err := client.CreateAnnotation(ctx, token, draft, babel.CreateOptions{})
//	if errors.Is(err, babel.ErrMissingHasBody) {
//	    // fix the draft
//	}
//
// Operational errors come back from the round trip: *TransportError when the
// request could not be completed, and *ServiceError when Babel reported an
// error or sent a body that is not JSON. When Babel reports an error without
// an HTTP status, ServiceError.HTTPCode is 404.
//
// The client never retries; callers own retry policy.
//
// # Logging
//
// Set Config.EnableDebug and Config.Logger to log each outgoing request,
// including its Authorization header, and each failure. Without a logger
// nothing is written.
package babel
