package errcode

import (
	"github.com/gnames/gn"
)

const (
	// File System errors, zero code is left for errors without a code
	CreateDirError gn.ErrorCode = iota + 1
	CopyFileError
	ReadFileError
	LoadEnvFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError

	// Seed errors
	SeedGeneratorError
	SeedInvalidTableError
	SeedTableMissingError
	SeedBeginError
	SeedInsertError
	SeedCommitError
	SeedPreviewError
	SeedCancelledError
)
