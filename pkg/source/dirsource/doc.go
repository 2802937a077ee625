// Package dirsource implements [source.Source] over a local directory of
// template archives.
//
// The directory holds archives named {name}-template-{version}.zip, the
// same layout the remote catalog serves. TemplateURL returns file:// URLs,
// so downstream artifact handling works identically for both backends.
// Metadata is limited to what a filename carries: no owner, description,
// or info URL.
package dirsource
