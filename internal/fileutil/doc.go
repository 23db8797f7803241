// Package fileutil provides the file system collaborator for minigrep.
//
// The search core operates purely on in-memory text, so this package is the
// only place the file system is touched: one whole-file read performed once
// before matching begins. There is no streaming and no partial read; files
// larger than memory are out of scope.
//
// Errors are wrapped with the offending path and satisfy errors.Is against
// the underlying fs sentinel (fs.ErrNotExist for missing files).
package fileutil
