package jury

// Competence is one expert's probability of answering a binary question correctly.
type Competence = float64

// CompetenceSampler is the source of expert competencies for simulated juries.
type CompetenceSampler interface {
	// Name identifies the distribution in reports, e.g. "beta[2,2]".
	Name() string
	// Sample fills dst with independent draws in [0, 1].
	//
	// Implementations must not retain dst. The experiment runner
	// calls Sample once per batch with a buffer of n*batchSize values.
	Sample(dst []Competence)
}
