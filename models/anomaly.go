package models

// AnomalyLog is one entry from /anomalyDetector/logs.
type AnomalyLog struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	IPAddress  string `json:"ipAddress"`
	DetectedAt string `json:"detectedAt"`
	Flagged    bool   `json:"flagged"`
}
