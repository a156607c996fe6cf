package domain

// Direction selects which term is shown and which is expected
type Direction int

const (
	// Forward shows the front and expects the back
	Forward Direction = iota
	// Reverse shows the back and expects the front
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Question is one quiz draw
type Question struct {
	Index     int
	Word      WordPair
	Direction Direction
}

// Prompt returns the term shown to the user
func (q Question) Prompt() string {
	if q.Direction == Reverse {
		return q.Word.Back
	}
	return q.Word.Front
}

// Expected returns the term the user must type
func (q Question) Expected() string {
	if q.Direction == Reverse {
		return q.Word.Front
	}
	return q.Word.Back
}

// QuizState is the lifecycle of one question
type QuizState string

const (
	QuizAwaitingAnswer QuizState = "awaiting_answer"
	QuizGraded         QuizState = "graded"
)

// QuizSession tracks a single question until it is graded
type QuizSession struct {
	Question Question
	State    QuizState
}

// NewQuizSession starts a session waiting for an answer
func NewQuizSession(q Question) *QuizSession {
	return &QuizSession{Question: q, State: QuizAwaitingAnswer}
}

// GradeResult is the outcome of grading an answer
type GradeResult struct {
	Correct  bool
	Expected string
	Word     WordPair
}

// UserState represents the bot conversation state
type UserState string

const (
	StateIdle          UserState = "idle"
	StateQuiz          UserState = "quiz"
	StateWaitingWord   UserState = "waiting_word"
	StateWaitingBack   UserState = "waiting_back"
	StateWaitingImport UserState = "waiting_import"
)

// StateData holds temporary data for the current conversation state
type StateData struct {
	State        UserState
	Quiz         *QuizSession
	CurrentFront string
}
