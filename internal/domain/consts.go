package domain

// Deadline labels, in the fixed display order abstract-first.
const (
	LabelAbstract   = "Abstract Deadline"
	LabelSubmission = "Paper Submission"
)

// Subject tag vocabulary
const (
	SubjectML  = "ML"
	SubjectCV  = "CV"
	SubjectNLP = "NLP"
	SubjectRO  = "RO"
	SubjectSP  = "SP"
	SubjectDM  = "DM"
	SubjectKR  = "KR"
	SubjectHCI = "HCI"
	SubjectCG  = "CG"
	SubjectSEC = "SEC"
)

// SubjectNames maps subject tags to their display names.
var SubjectNames = map[string]string{
	SubjectML:  "Machine Learning",
	SubjectCV:  "Computer Vision",
	SubjectNLP: "Natural Language Processing",
	SubjectRO:  "Robotics",
	SubjectSP:  "Signal Processing",
	SubjectDM:  "Data Mining",
	SubjectKR:  "Knowledge Representation",
	SubjectHCI: "Human-Computer Interaction",
	SubjectCG:  "Computer Graphics",
	SubjectSEC: "Security & Privacy",
}

// ValidSubject reports whether tag belongs to the vocabulary.
func ValidSubject(tag string) bool {
	_, ok := SubjectNames[tag]
	return ok
}

// DefaultReminderDays is the threshold set a policy starts with.
var DefaultReminderDays = []int{1, 3, 7, 30}

// DefaultTimezone is used for display when a recipient never set one.
const DefaultTimezone = "UTC"

// Year bounds accepted from the conference feed.
const (
	MinYear = 1900
	MaxYear = 2100
)

// MaxReminderDays caps configurable thresholds at one year out.
const MaxReminderDays = 365
