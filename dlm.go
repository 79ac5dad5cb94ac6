// Package dlm provides a personal digital-library manager. It catalogs a
// DDC-organized directory tree of documents, resolves imprecise queries
// against the catalog with fuzzy matching, tracks reading progress, and
// opens files in external readers.
//
// This package contains domain types, the search and ranking core, and
// collaborator interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., fs/, sqlite/, gemini/, fzf/).
package dlm
