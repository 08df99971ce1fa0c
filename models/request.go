package models

// HardwareRequest is an SRRF ticket from /HardwareRequest.
type HardwareRequest struct {
	ID          int    `json:"srrfId"`
	HardwareID  *int   `json:"requestedHardwareId,omitempty"`
	NeededBy    string `json:"neededBy"`
	Requester   string `json:"requester"`
	Department  string `json:"department"`
	Workstation string `json:"workstation"`
	Problem     string `json:"problem"`
	Fulfilled   bool   `json:"fulfilled"`
	SerialNo    string `json:"serialNo"`
}
