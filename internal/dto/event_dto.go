package dto

// SheetLogMessage is queued on the start path and delivered to the results
// spreadsheet in the background.
type SheetLogMessage struct {
	Name           string         `json:"name"`
	Class          string         `json:"class"`
	School         string         `json:"school"`
	RiasecScores   map[string]int `json:"riasec_scores"`
	Top3Types      []string       `json:"top_3_types"`
	Recommendation string         `json:"nganh_de_xuat"`
	Combinations   string         `json:"khoi_thi"`
}
