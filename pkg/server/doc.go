// Package server serves the proofgen dashboard and its JSON API.
//
// The dashboard is a single embedded page: a form for the system type and
// problem, a preview of the rendered diagram, the image prompt, and
// download links for the SVG, each bundle file and the ZIP. The page talks
// to the API below; nothing is rendered client-side.
//
// # Routes
//
//	GET    /                        dashboard page
//	GET    /healthz                 liveness and version
//	POST   /api/generate            run the pipeline, returns a bundle summary
//	GET    /api/bundles/{id}        bundle summary, including "copy all" text
//	GET    /api/bundles/{id}/svg    rendered diagram
//	GET    /api/bundles/{id}/zip    repository archive
//	GET    /api/bundles/{id}/artifacts/{format} one rendered format
//	GET    /api/bundles/{id}/files/* one bundle file
//	GET    /api/templates           built-in templates
//	GET    /api/session             last request
//	DELETE /api/session             forget the last request
//
// Generated bundles live in process memory for [Config.ResultTTL] and are
// never written anywhere else. Errors are JSON objects of the form
// {"code": "...", "message": "..."}.
package server
