package scraper

import (
	"testing"

	"quiz-archive-parser/internal/observability"
)

func testSelectors() *Selectors {
	return &Selectors{
		ClueCells:       "td.clue",
		ClueText:        "td.clue_text",
		AnswerIDSuffix:  "_r",
		CorrectResponse: "em.correct_response",
	}
}

func newTestScraper(t *testing.T) *Scraper {
	t.Helper()
	logger := observability.NewLogger(observability.Options{
		LogPath:  t.TempDir() + "/test.log",
		LogLevel: "error",
	})
	t.Cleanup(func() { _ = logger.Close() })

	s, err := NewScraper(testSelectors(), "https://www.j-archive.com/", logger)
	if err != nil {
		t.Fatalf("NewScraper failed: %v", err)
	}
	return s
}

// clueCell собирает разметку одной ячейки в стиле страницы игры:
// внешний td.clue с вложенной таблицей вопроса и скрытого ответа.
func clueCell(inner string) string {
	return `<td class="clue"><table>` + inner + `</table></td>`
}

func TestParseGameSingleClue(t *testing.T) {
	pageHTML := `<html><body><table><tr>` +
		clueCell(`
			<tr><td class="clue_text" id="clue_J_1_1">This is a <a href="/media/x.jpg">clue</a></td></tr>
			<tr><td class="clue_text" id="clue_J_1_1_r">Triple Stumper <em class="correct_response">Response</em></td></tr>
		`) +
		`</tr></table></body></html>`

	s := newTestScraper(t)
	records, err := s.ParseGame(pageHTML)
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.QuestionNumber != "1" {
		t.Errorf("QuestionNumber = %q, want \"1\"", r.QuestionNumber)
	}
	if r.Answer != "Response" {
		t.Errorf("Answer = %q, want \"Response\"", r.Answer)
	}
	if r.QuestionText != "This is a clue" {
		t.Errorf("QuestionText = %q, want \"This is a clue\"", r.QuestionText)
	}
	if len(r.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(r.Images))
	}
	if r.Images[0].Word != "clue" {
		t.Errorf("Images[0].Word = %q, want \"clue\"", r.Images[0].Word)
	}
	if r.Images[0].URL != "https://www.j-archive.com/media/x.jpg" {
		t.Errorf("Images[0].URL = %q", r.Images[0].URL)
	}
}

func TestParseGameSkipsIncompleteCandidates(t *testing.T) {
	// Пять кандидатов: без текстового элемента, без ID, без ячейки
	// ответа, и два полноценных. Нумерация должна остаться сплошной.
	pageHTML := `<html><body><table><tr>` +
		`<td class="clue"><span>empty cell</span></td>` +
		clueCell(`<tr><td class="clue_text">missing id</td></tr>`) +
		clueCell(`<tr><td class="clue_text" id="clue_orphan">no answer cell</td></tr>`) +
		clueCell(`
			<tr><td class="clue_text" id="clue_a">First kept</td></tr>
			<tr><td class="clue_text" id="clue_a_r"><em class="correct_response">Alpha</em></td></tr>
		`) +
		clueCell(`
			<tr><td class="clue_text" id="clue_b">Second kept</td></tr>
			<tr><td class="clue_text" id="clue_b_r"><em class="correct_response">Beta</em></td></tr>
		`) +
		`</tr></table></body></html>`

	s := newTestScraper(t)
	records, err := s.ParseGame(pageHTML)
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	for i, want := range []struct{ number, answer, text string }{
		{"1", "Alpha", "First kept"},
		{"2", "Beta", "Second kept"},
	} {
		if records[i].QuestionNumber != want.number {
			t.Errorf("record %d: QuestionNumber = %q, want %q", i, records[i].QuestionNumber, want.number)
		}
		if records[i].Answer != want.answer {
			t.Errorf("record %d: Answer = %q, want %q", i, records[i].Answer, want.answer)
		}
		if records[i].QuestionText != want.text {
			t.Errorf("record %d: QuestionText = %q, want %q", i, records[i].QuestionText, want.text)
		}
	}
}

func TestParseGameMissingAnswerElement(t *testing.T) {
	pageHTML := `<html><body><table><tr>` +
		clueCell(`
			<tr><td class="clue_text" id="clue_c">Question only</td></tr>
			<tr><td class="clue_text" id="clue_c_r">no marked answer in here</td></tr>
		`) +
		`</tr></table></body></html>`

	s := newTestScraper(t)
	records, err := s.ParseGame(pageHTML)
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Answer != "" {
		t.Errorf("Answer = %q, want empty string", records[0].Answer)
	}
}

func TestParseGameAbsoluteImageURLUnchanged(t *testing.T) {
	pageHTML := `<html><body><table><tr>` +
		clueCell(`
			<tr><td class="clue_text" id="clue_d">See <a href="https://cdn.example.com/pic.jpg">this</a> and <a href="https://cdn.example.com/pic2.jpg#zoom">that</a></td></tr>
			<tr><td class="clue_text" id="clue_d_r"><em class="correct_response">X</em></td></tr>
		`) +
		`</tr></table></body></html>`

	s := newTestScraper(t)
	records, err := s.ParseGame(pageHTML)
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(records[0].Images) != 2 {
		t.Fatalf("got %d images, want 2", len(records[0].Images))
	}
	if records[0].Images[0].URL != "https://cdn.example.com/pic.jpg" {
		t.Errorf("absolute URL was rewritten: %q", records[0].Images[0].URL)
	}
	// Якорь в ссылке на медиа сохраняется как есть
	if records[0].Images[1].URL != "https://cdn.example.com/pic2.jpg#zoom" {
		t.Errorf("fragment-bearing URL was rewritten: %q", records[0].Images[1].URL)
	}
}

func TestParseGameOtherElementsContributeText(t *testing.T) {
	pageHTML := `<html><body><table><tr>` +
		clueCell(`
			<tr><td class="clue_text" id="clue_e">Named <i>after</i> a <b>river</b></td></tr>
			<tr><td class="clue_text" id="clue_e_r"><em class="correct_response">Y</em></td></tr>
		`) +
		`</tr></table></body></html>`

	s := newTestScraper(t)
	records, err := s.ParseGame(pageHTML)
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].QuestionText != "Named after a river" {
		t.Errorf("QuestionText = %q", records[0].QuestionText)
	}
	if len(records[0].Images) != 0 {
		t.Errorf("plain formatting elements must not produce images: %+v", records[0].Images)
	}
}
