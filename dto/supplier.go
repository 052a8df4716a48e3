package dto

type SupplierRequest struct {
	Name string `json:"name" validate:"required,min=3,max=45"`
}

// SupplierImportResult summarises a spreadsheet upload.
type SupplierImportResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}
