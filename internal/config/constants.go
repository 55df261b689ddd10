package config

// Application constants - all hardcoded values for the ASR decoder
const (
	// Application Info
	AppName    = "ASR Decoder"
	AppVersion = "1.0.0"

	// Master File Format
	DefaultRecordLength   = 564   // fixed width of one record line
	DefaultHeaderSentinel = "000" // offense code marking a header record

	// Export Defaults
	DefaultDetailSheet  = "DETAILS"
	DefaultHeaderSheet  = "HEADERS"
	DefaultWorkbookName = "decoded_asr_data.xlsx"
	DetailCSVName       = "asr_details.csv"
	HeaderCSVName       = "asr_headers.csv"

	// File Paths (relative to executable)
	DefaultDataDir        = "data"
	DefaultLogsDir        = "logs"
	DefaultMasterFilesDir = "data/masterfiles"
	DefaultReportsDir     = "data/reports"
)
