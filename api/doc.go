// Package api is the typed endpoint catalogue of the parking platform's
// gateway, grouped the way the application consumes it: authentication,
// parking resources, bookings, and admin aggregates.
//
// # Architecture boundaries
//
// Every method is one HTTP call through the transport client: encode the
// input, name the path, decode the JSON. Availability, pricing, conflict
// detection, and authorization all live on the backend; nothing here
// interprets the data it moves.
package api
