package models

// StatusClass groups HTTP status codes into the five classes shown on the dashboard.
type StatusClass string

const (
	StatusClass2xx   StatusClass = "200-299"
	StatusClass3xx   StatusClass = "300-399"
	StatusClass4xx   StatusClass = "400-499"
	StatusClass5xx   StatusClass = "500-599"
	StatusClassOther StatusClass = "Other"
)

// StatusClasses lists every class in display order.
var StatusClasses = []StatusClass{StatusClass2xx, StatusClass3xx, StatusClass4xx, StatusClass5xx, StatusClassOther}

// StatusClassOf classifies a status code. Anything outside [200,600) is Other.
func StatusClassOf(statusCode int) StatusClass {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return StatusClass2xx
	case statusCode >= 300 && statusCode < 400:
		return StatusClass3xx
	case statusCode >= 400 && statusCode < 500:
		return StatusClass4xx
	case statusCode >= 500 && statusCode < 600:
		return StatusClass5xx
	default:
		return StatusClassOther
	}
}
