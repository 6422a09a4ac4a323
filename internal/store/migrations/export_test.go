package migrations

var (
	ParseFilenameForTest = parseFilename
	UnvisForTest         = unvis
)
