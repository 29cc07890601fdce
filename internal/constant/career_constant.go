package constant

const (
	// SheetLogTopic is the background queue topic for spreadsheet rows.
	SheetLogTopic = "SHEET_LOG"

	AnalysisPrompt = "Dựa trên thông tin học sinh và kết quả trắc nghiệm RIASEC, " +
		"hãy phân tích và đưa ra bản tư vấn hướng nghiệp rõ ràng, " +
		"phù hợp với học sinh THPT Việt Nam."

	HealthMessage = "CareerVR backend is running"
)
