package dto

const (
	SweepAcceptance = "acceptance"
	SweepPayment    = "payment"
	SweepCompletion = "completion"
	SweepAll        = "all"
)

var Sweeps = []string{SweepAcceptance, SweepPayment, SweepCompletion}

// Report summarises one sweep. Every candidate ends up in exactly one of
// Transitioned, Skipped or Failed.
type Report struct {
	Sweep        string `json:"sweep"`
	Candidates   int    `json:"candidates"`
	Transitioned int    `json:"transitioned"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}
