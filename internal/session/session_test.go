package session

import (
	"fmt"
	"testing"

	"github.com/keepsake-care/keepsake/internal/quizgen"
)

func testQuestions(n int) []quizgen.Question {
	questions := make([]quizgen.Question, 0, n)
	for i := 0; i < n; i++ {
		correct := fmt.Sprintf("correct-%d", i)
		wrong := []string{
			fmt.Sprintf("wrong-%d-a", i),
			fmt.Sprintf("wrong-%d-b", i),
			fmt.Sprintf("wrong-%d-c", i),
		}
		questions = append(questions, quizgen.Question{
			ID:            fmt.Sprintf("q%d", i),
			Category:      quizgen.CategoryWho,
			SubjectName:   "Alice",
			CorrectAnswer: correct,
			WrongAnswers:  wrong,
			PromptText:    "Who is this?",
			AllAnswers:    append([]string{correct}, wrong...),
		})
	}
	return questions
}

func TestNewState_Empty(t *testing.T) {
	s := NewState(nil, "sid")

	if s.Phase != PhaseEmpty {
		t.Errorf("phase = %v, want PhaseEmpty", s.Phase)
	}
	if s.Current() != nil {
		t.Error("expected no current question")
	}
	if SelectAnswer(s, "anything") {
		t.Error("selection on an empty session reported correct")
	}
	if s.Score != 0 || s.HeartsEarned != 0 {
		t.Error("selection on an empty session mutated score")
	}
}

func TestSelectAnswer_Correct(t *testing.T) {
	s := NewState(testQuestions(3), "sid")

	if !SelectAnswer(s, "correct-0") {
		t.Fatal("expected correct selection")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.HeartsEarned != 1 {
		t.Errorf("hearts = %d, want 1", s.HeartsEarned)
	}
	if len(s.AnsweredWrong) != 0 {
		t.Errorf("answeredWrong = %d, want 0", len(s.AnsweredWrong))
	}
	if s.PendingSelection != "correct-0" {
		t.Errorf("pending = %q, want correct-0", s.PendingSelection)
	}
}

func TestSelectAnswer_Wrong(t *testing.T) {
	s := NewState(testQuestions(3), "sid")

	if SelectAnswer(s, "wrong-0-a") {
		t.Fatal("expected wrong selection")
	}
	if s.Score != 0 || s.HeartsEarned != 0 {
		t.Error("wrong answer changed score or hearts")
	}
	if len(s.AnsweredWrong) != 1 || s.AnsweredWrong[0].ID != "q0" {
		t.Errorf("answeredWrong = %v, want [q0]", s.AnsweredWrong)
	}
}

func TestSelectAnswer_Idempotent(t *testing.T) {
	s := NewState(testQuestions(3), "sid")

	SelectAnswer(s, "correct-0")
	// Second call before advance must be a no-op.
	if !SelectAnswer(s, "wrong-0-a") {
		t.Error("no-op call did not report the recorded selection's correctness")
	}

	if s.Score != 1 {
		t.Errorf("score = %d, want 1 after double select", s.Score)
	}
	if s.HeartsEarned != 1 {
		t.Errorf("hearts = %d, want 1 after double select", s.HeartsEarned)
	}
	if len(s.AnsweredWrong) != 0 {
		t.Errorf("answeredWrong = %d, want 0 after double select", len(s.AnsweredWrong))
	}
	if s.PendingSelection != "correct-0" {
		t.Errorf("pending = %q, want the first selection kept", s.PendingSelection)
	}
}

func TestAdvance_RequiresSelection(t *testing.T) {
	s := NewState(testQuestions(2), "sid")

	if !Advance(s) {
		t.Error("advance without selection ended the session")
	}
	if s.Index != 0 {
		t.Errorf("index = %d, want 0 (advance before selection is a no-op)", s.Index)
	}
}

func TestAdvance_MovesAndClearsPending(t *testing.T) {
	s := NewState(testQuestions(2), "sid")

	SelectAnswer(s, "correct-0")
	if !Advance(s) {
		t.Fatal("expected more questions")
	}
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	if s.PendingSelection != "" || s.Answered {
		t.Error("pending selection not cleared on advance")
	}
}

func TestFullSession_AllCorrect(t *testing.T) {
	const k = 5
	s := NewState(testQuestions(k), "sid")

	for i := 0; i < k; i++ {
		SelectAnswer(s, fmt.Sprintf("correct-%d", i))
		Advance(s)
	}

	if !s.Completed() {
		t.Fatal("session not completed")
	}
	sum := BuildSummary(s)
	if sum.Score != k || sum.HeartsEarned != k {
		t.Errorf("score = %d, hearts = %d, want %d each", sum.Score, sum.HeartsEarned, k)
	}
	if len(sum.AnsweredWrong) != 0 {
		t.Errorf("answeredWrong = %d, want 0", len(sum.AnsweredWrong))
	}
	if !sum.Perfect() {
		t.Error("expected a perfect summary")
	}
}

func TestFullSession_AllWrong(t *testing.T) {
	const k = 4
	s := NewState(testQuestions(k), "sid")

	for i := 0; i < k; i++ {
		SelectAnswer(s, fmt.Sprintf("wrong-%d-a", i))
		Advance(s)
	}

	if !s.Completed() {
		t.Fatal("session not completed")
	}
	sum := BuildSummary(s)
	if sum.Score != 0 {
		t.Errorf("score = %d, want 0", sum.Score)
	}
	if len(sum.AnsweredWrong) != k {
		t.Fatalf("answeredWrong = %d, want %d", len(sum.AnsweredWrong), k)
	}
	for i, q := range sum.AnsweredWrong {
		if q.ID != fmt.Sprintf("q%d", i) {
			t.Errorf("answeredWrong[%d] = %s, want q%d (presentation order)", i, q.ID, i)
		}
	}
}

func TestAdvance_AfterCompletionIsNoOp(t *testing.T) {
	s := NewState(testQuestions(1), "sid")

	SelectAnswer(s, "correct-0")
	if Advance(s) {
		t.Fatal("expected completion")
	}
	if Advance(s) {
		t.Error("advance after completion reported an active session")
	}
	if s.Phase != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", s.Phase)
	}
}

func TestSummary_Accuracy(t *testing.T) {
	s := NewState(testQuestions(4), "sid")
	SelectAnswer(s, "correct-0")
	Advance(s)
	SelectAnswer(s, "wrong-1-a")
	Advance(s)
	SelectAnswer(s, "correct-2")
	Advance(s)
	SelectAnswer(s, "wrong-3-b")
	Advance(s)

	sum := BuildSummary(s)
	if sum.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", sum.Accuracy())
	}
	if sum.Perfect() {
		t.Error("half-right session reported perfect")
	}
}
