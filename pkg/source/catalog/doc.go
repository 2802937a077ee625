// Package catalog implements [source.Source] against the remote template
// catalog HTTP/JSON API.
//
// # Naming Convention
//
// Template packages share the catalog with other artifact kinds and are
// distinguished by a fixed "-template" name suffix. The suffix is an
// internal convention: it is appended when querying the catalog or
// deriving a download path, and stripped from every name exposed to
// callers.
//
// # Endpoints
//
//	GET /repos/{repo}                       repository metadata (package_count)
//	GET /repos/{repo}/packages              package listing ([{name}, ...])
//	GET /packages/{repo}/{name}-template    package detail
//
// Artifacts download from {download-host}/{repo}/{name}-template-{version}.zip.
//
// # Failure Handling
//
// Exactly one condition is recovered locally: a 404 on package lookup,
// which Get reports as "not found" rather than an error. Everything else
// (other statuses, connectivity failures, malformed bodies) propagates
// verbatim. Success responses without a latest_version raise a
// [*source.NoVersionsError].
package catalog
