package excel

// ReaderConfig holds configuration for a spreadsheet data source
type ReaderConfig struct {
	FilePath  string `json:"file_path"`
	SheetName string `json:"sheet_name"` // empty selects the first sheet
}
