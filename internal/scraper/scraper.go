package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"quiz-archive-parser/internal/normalize"
	"quiz-archive-parser/internal/observability"
)

type Scraper struct {
	selectors *Selectors
	baseURL   *url.URL
	logger    *observability.Logger
}

func NewScraper(selectors *Selectors, baseURL string, logger *observability.Logger) (*Scraper, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &Scraper{
		selectors: selectors,
		baseURL:   base,
		logger:    logger,
	}, nil
}

// ParseGame парсит страницу игры и возвращает собранные вопросы.
// Кандидат без текстового элемента, без ID или без парной ячейки ответа
// пропускается молча; нумерация идёт только по собранным записям.
func (s *Scraper) ParseGame(pageHTML string) ([]QuizRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	clueCells := doc.Find(s.selectors.ClueCells)
	s.logger.Info("Clue cells found", "count", clueCells.Length())

	var records []QuizRecord

	clueCells.Each(func(i int, cell *goquery.Selection) {
		clueText := cell.Find(s.selectors.ClueText).First()
		if clueText.Length() == 0 {
			return
		}

		clueID, ok := clueText.Attr("id")
		if !ok || clueID == "" {
			return
		}

		answerCell := doc.Find(fmt.Sprintf("[id='%s%s']", clueID, s.selectors.AnswerIDSuffix)).First()
		if answerCell.Length() == 0 {
			s.logger.Debug("No answer cell for clue", "clue_id", clueID)
			return
		}

		questionText, images := s.assembleClueText(clueText)

		answer := ""
		answerElem := answerCell.Find(s.selectors.CorrectResponse).First()
		if answerElem.Length() > 0 {
			answer = normalize.TrimText(answerElem.Text())
		}

		records = append(records, QuizRecord{
			QuestionNumber: strconv.Itoa(len(records) + 1),
			Answer:         answer,
			Images:         images,
			QuestionText:   questionText,
		})
	})

	s.logger.Info("Questions extracted", "count", len(records))
	return records, nil
}

// assembleClueText линейно проходит по детям текстового элемента:
// текстовые узлы идут как есть, якоря с href дают запись картинки
// плюс текст ссылки, остальные элементы — только внутренний текст.
func (s *Scraper) assembleClueText(clueText *goquery.Selection) (string, []ImageRef) {
	images := []ImageRef{}
	var buf bytes.Buffer

	if len(clueText.Nodes) == 0 {
		return "", images
	}

	for child := clueText.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			buf.WriteString(child.Data)

		case child.Type == html.ElementNode && child.Data == "a" && nodeAttr(child, "href") != "":
			href := nodeAttr(child, "href")
			linkText := nodeText(child)
			if linkText == "" {
				continue
			}
			images = append(images, ImageRef{
				Word: linkText,
				URL:  normalize.AbsoluteURL(s.baseURL, href),
			})
			buf.WriteString(linkText)

		case child.Type == html.ElementNode:
			buf.WriteString(nodeText(child))
		}
	}

	return normalize.TrimText(buf.String()), images
}

func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	collectText(n, &buf)
	return buf.String()
}

func collectText(n *html.Node, buf *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, buf)
	}
}
