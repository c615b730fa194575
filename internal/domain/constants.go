package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// ResponseTimeFormat формат временных меток в ответе API
	// UTC с миллисекундами и литеральным Z (yyyy-MM-ddTHH:mm:ss.sssZ)
	ResponseTimeFormat = "2006-01-02T15:04:05.000Z"
)
