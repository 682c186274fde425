package excel

// SheetData holds the rows of one worksheet addressed by column position
type SheetData struct {
	SheetName string
	Rows      [][]string
}
