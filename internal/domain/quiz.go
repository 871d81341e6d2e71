package domain

import "strings"

// QuizMode selects which side of a word is asked
type QuizMode string

const (
	ModeWordToMeaning QuizMode = "wm"
	ModeMeaningToWord QuizMode = "mw"
)

// ParseQuizMode returns the mode for code
func ParseQuizMode(code string) (QuizMode, bool) {
	switch QuizMode(code) {
	case ModeWordToMeaning, ModeMeaningToWord:
		return QuizMode(code), true
	}
	return "", false
}

// QuizState is the state of the current question
type QuizState int

const (
	QuizLearning QuizState = iota
	QuizCorrect
	QuizWrong
	QuizShowAnswer
	QuizCompleted
)

// ShuffleFunc has the signature of rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// QuizSession is an in-memory pass over one list's words
type QuizSession struct {
	ListID   int64
	Words    []Word
	Index    int
	Mode     QuizMode
	State    QuizState
	Progress float64
}

// NewQuizSession copies words and shuffles them once
func NewQuizSession(listID int64, words []Word, mode QuizMode, shuffle ShuffleFunc) *QuizSession {
	queue := make([]Word, len(words))
	copy(queue, words)
	if shuffle != nil {
		shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}

	s := &QuizSession{
		ListID: listID,
		Words:  queue,
		Mode:   mode,
		State:  QuizLearning,
	}
	if len(queue) == 0 {
		s.State = QuizCompleted
		s.Progress = 1
	}
	return s
}

func (s *QuizSession) current() (Word, bool) {
	if s.Index < 0 || s.Index >= len(s.Words) {
		return Word{}, false
	}
	return s.Words[s.Index], true
}

// Completed reports whether every word was answered
func (s *QuizSession) Completed() bool {
	return s.State == QuizCompleted
}

// Question returns the prompt for the current word
func (s *QuizSession) Question() string {
	w, ok := s.current()
	if !ok {
		return ""
	}
	if s.Mode == ModeMeaningToWord {
		return w.Meaning
	}
	return w.Word
}

// Answer returns the expected answer for the current word
func (s *QuizSession) Answer() string {
	w, ok := s.current()
	if !ok {
		return ""
	}
	if s.Mode == ModeMeaningToWord {
		return w.Word
	}
	return w.Meaning
}

// Check compares input with the expected answer, ignoring case and
// surrounding whitespace
func (s *QuizSession) Check(input string) bool {
	if s.Completed() {
		return false
	}
	if _, ok := s.current(); !ok {
		return false
	}

	if strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(s.Answer())) {
		s.State = QuizCorrect
		return true
	}
	s.State = QuizWrong
	return false
}

// Reveal shows the answer for the current word
func (s *QuizSession) Reveal() {
	if s.Completed() {
		return
	}
	s.State = QuizShowAnswer
}

// Retry lets the user answer the current word again
func (s *QuizSession) Retry() {
	if s.Completed() {
		return
	}
	s.State = QuizLearning
}

// Next moves to the following word or completes the quiz
func (s *QuizSession) Next() {
	if s.Completed() {
		return
	}

	s.Index++
	if s.Index >= len(s.Words) {
		s.Index = len(s.Words)
		s.Progress = 1
		s.State = QuizCompleted
		return
	}

	s.Progress = float64(s.Index) / float64(len(s.Words))
	s.State = QuizLearning
}

// Skip moves the current word to the end of the queue without counting it
func (s *QuizSession) Skip() {
	w, ok := s.current()
	if !ok || s.Completed() {
		return
	}

	s.Words = append(s.Words[:s.Index], s.Words[s.Index+1:]...)
	s.Words = append(s.Words, w)
	s.Progress = float64(s.Index) / float64(len(s.Words))
	s.State = QuizLearning
}

// Position returns the 1-based number of the current word and the total
func (s *QuizSession) Position() (int, int) {
	if s.Completed() {
		return len(s.Words), len(s.Words)
	}
	return s.Index + 1, len(s.Words)
}

// Percent returns progress rounded down to whole percent
func (s *QuizSession) Percent() int {
	return int(s.Progress * 100)
}
