// Package source defines the template package source contract.
//
// # Overview
//
// A [Source] is a catalog of named template packages. Each backend
// (remote catalog API, local directory, ...) implements the same small
// capability set:
//
//   - identity ([Source.Name])
//   - counting and listing available templates
//   - per-template metadata lookup with an explicit three-way outcome
//     (found / not found / failed)
//   - deterministic derivation of the artifact download URL
//
// Concrete implementations live in subpackages:
//
//   - [catalog]: HTTP/JSON catalog service (the default backend)
//   - [dirsource]: local directory of template archives
//
// # Lookup Semantics
//
// [Source.Get] distinguishes three outcomes that callers must not collapse:
// a template that does not exist (found == false, nil error), a template
// that exists but has no published versions ([NoVersionsError]), and a
// lookup that could not be completed (any other error). [Source.Has] follows
// the same rule: a failed existence check is an error, never false.
package source
