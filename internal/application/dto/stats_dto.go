package dto

// DepartmentStatsResponse agregado por departamento.
type DepartmentStatsResponse struct {
	Department string  `json:"department"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// StatsResponse agregados gerais do acervo. by_department está sempre
// presente; vazio quando o resultado é filtrado por departamento.
type StatsResponse struct {
	Total        int64                     `json:"total"`
	Active       int64                     `json:"active"`
	Inactive     int64                     `json:"inactive"`
	Maintenance  int64                     `json:"maintenance"`
	WrittenOff   int64                     `json:"written_off"`
	TotalValue   float64                   `json:"total_value"`
	ByDepartment []DepartmentStatsResponse `json:"by_department"`
}
