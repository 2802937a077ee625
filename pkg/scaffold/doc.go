// Package scaffold turns resolved template packages into project
// directories.
//
// [Fetcher] resolves a (template, version) pair through a [source.Source],
// downloads the archive at the derived URL (http(s) or file), and keeps
// downloaded bytes in a [cache.Cache] keyed by source, name, and version.
// [Fetcher.Create] then expands the archive into a fresh project
// directory, staging the extraction so a failed unpack never leaves a
// half-created project behind.
package scaffold
