package dto

// StageResponse identificador que el cliente debe conservar para el scan.
type StageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UUID    string `json:"uuid"`
}

// ScanResponse resultado de la conciliación.
type ScanResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Result  ScanResult `json:"result"`
}

// ScanResult conjuntos ordenados y sus conteos, más el detalle de lo escaneado.
type ScanResult struct {
	UUID                string            `json:"uuid"`
	WarehouseID         string            `json:"warehouse_id"`
	StagedEPCNumbers    []string          `json:"staged_epc_numbers"`
	ScanEPCNumbers      []string          `json:"scan_epc_numbers"`
	FoundEPCs           []string          `json:"found_epcs"`
	UnknownInScan       []string          `json:"unknown_in_scan"`
	UnknownInStage      []string          `json:"unknown_in_stage"`
	FoundEPCsCount      int               `json:"found_epcs_count"`
	UnknownInScanCount  int               `json:"unknown_in_scan_count"`
	UnknownInStageCount int               `json:"unknown_in_stage_count"`
	Products            []ProductResponse `json:"products"`
}
