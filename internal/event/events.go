package event

const (
	EventSimulationEvaluated = "simulation.evaluated"
	EventSubmissionExported  = "submission.exported"
)
