/*
Package config locates the projects a migration rewrites.

A Layout names the API and UI project roots. DefaultLayout returns the built-in roots; Load
reads an optional layout file and merges it over them. The file format is picked by extension:

	.hcl          backend_dir = "${home}/src/app/backend"
	.yaml, .yml   backend_dir: /srv/app/backend
	.json         {"backend_dir": "/srv/app/backend"}

Unknown fields are rejected by every parser. The replacement rules themselves are not
configurable.
*/
package config
