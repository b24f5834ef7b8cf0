// Package errcode enumerates error codes used by gntaxa.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchDownloadError
	FetchHTTPStatusError
	FetchArchiveError
	FetchMissingDumpError
	FetchAllSourcesFailedError
	FetchEmptyDumpError

	// Snapshot errors
	SnapshotFormatError
	SnapshotOpenError
	SnapshotReadError
	SnapshotWriteError
	SnapshotNotFoundError

	// Export errors
	ExportEmptyError
	ExportWriteError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Push errors
	PushCopyError
	PushReleaseError

	// Server errors
	ServerStartError
	ServerReloadError

	// CLI errors
	TaxIDArgError
	UnknownTaxonError
	NameNotFoundError
)
