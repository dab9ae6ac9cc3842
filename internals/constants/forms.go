package constants

// Batas input form builder.
const (
	FormTitleMaxLen       = 200
	FormDescriptionMaxLen = 2000
	FormMaxQuestions      = 200
	QuestionMaxOptions    = 50
	AnswerMaxLen          = 10000
)

// Layout timestamp kolom "Submitted At" di export CSV.
const CSVTimestampLayout = "2006-01-02T15:04:05.000Z"
