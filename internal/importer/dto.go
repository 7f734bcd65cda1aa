package importer

// ImportRequest triggers one synchronous import run against the given
// legacy SQL Server instance.
type ImportRequest struct {
	Server   string `json:"server" binding:"required"`
	Database string `json:"database" binding:"required"`
}

// TableResult counts the rows synchronized for one table.
type TableResult struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

// Report is the aggregate outcome of a completed run.
type Report struct {
	Tables []TableResult `json:"tables"`
}

// ImportResponse is the terminal success payload.
type ImportResponse struct {
	Message string        `json:"message"`
	Tables  []TableResult `json:"tables"`
}
