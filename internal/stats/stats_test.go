package stats

import (
	"testing"
	"time"
)

func TestFinalWPMUsesNominalDuration(t *testing.T) {
	code := make([]rune, 200)
	accepted := make([]rune, 150)
	for i := range code {
		code[i] = 'a'
	}
	for i := range accepted {
		accepted[i] = 'a'
	}
	m := Final(code, accepted, 30*time.Second)
	if m.WPM != 60 {
		t.Fatalf("expected 60 WPM, got %d", m.WPM)
	}
	if m.TotalTyped != 150 || m.CorrectChars != 150 {
		t.Fatalf("unexpected counts: %+v", m)
	}
}

func TestFinalAccuracyRounds(t *testing.T) {
	code := []rune(repeat('a', 100))
	accepted := []rune(repeat('a', 85) + repeat('b', 15))
	m := Final(code, accepted, 30*time.Second)
	if m.Accuracy != 85 {
		t.Fatalf("expected accuracy 85, got %d", m.Accuracy)
	}

	// 2/3 rounds up, where the live formula floors.
	m = Final([]rune("abc"), []rune("abx"), time.Minute)
	if m.Accuracy != 67 {
		t.Fatalf("expected accuracy 67, got %d", m.Accuracy)
	}
}

func TestFinalEmptyInput(t *testing.T) {
	m := Final([]rune("abc"), nil, 15*time.Second)
	if m.Accuracy != 0 || m.WPM != 0 || m.TotalTyped != 0 {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestLiveMetrics(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start.Add(30 * time.Second)
	m := Live([]rune("abc def"), []rune("abx de"), start, now)
	if m.Progress != 85 {
		t.Fatalf("expected progress 85, got %d", m.Progress)
	}
	if m.Correct != 5 {
		t.Fatalf("expected 5 correct, got %d", m.Correct)
	}
	if m.Accuracy != 83 {
		t.Fatalf("expected floored accuracy 83, got %d", m.Accuracy)
	}
	// two words in half a minute
	if m.WPM != 4 {
		t.Fatalf("expected 4 WPM, got %d", m.WPM)
	}
}

func TestLiveWPMZeroElapsed(t *testing.T) {
	start := time.Unix(1000, 0)
	m := Live([]rune("abc"), []rune("ab"), start, start)
	if m.WPM != 0 {
		t.Fatalf("expected zero WPM, got %d", m.WPM)
	}
	m = Live([]rune("abc"), []rune("ab"), time.Time{}, start)
	if m.WPM != 0 {
		t.Fatalf("expected zero WPM without start, got %d", m.WPM)
	}
}

func TestLiveAccuracyEmpty(t *testing.T) {
	m := Live([]rune("abc"), nil, time.Time{}, time.Now())
	if m.Accuracy != 0 || m.Progress != 0 {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestProgressMonotonicAndComplete(t *testing.T) {
	codeLen := 37
	prev := -1
	for n := 0; n <= codeLen; n++ {
		p := Progress(codeLen, n)
		if p < prev {
			t.Fatalf("progress decreased at %d: %d < %d", n, p, prev)
		}
		if (p == 100) != (n == codeLen) {
			t.Fatalf("progress %d at length %d of %d", p, n, codeLen)
		}
		prev = p
	}
	if Progress(10, 20) != 100 {
		t.Fatalf("expected clamp to 100")
	}
}

func repeat(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
