package model

// DiagnosisRequest is the input of the AI diagnosis assistant.
type DiagnosisRequest struct {
	PatientHistory string `json:"patientHistory"`
	ChartMarkings  string `json:"chartMarkings" validate:"notblank"`
}

// DiagnosisSuggestion is the validated output of the AI diagnosis assistant.
type DiagnosisSuggestion struct {
	PotentialDiagnoses  string `json:"potentialDiagnoses"`
	SuggestedTreatments string `json:"suggestedTreatments"`
	ConfidenceLevel     string `json:"confidenceLevel"`
}
