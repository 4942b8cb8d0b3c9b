// Package audit — диагностическая проверка сохранённых ответов.
// Ничего не меняет в артефакте, только сообщает о повторах.
package audit

// Duplicate — значение ответа, встретившееся больше одного раза
type Duplicate struct {
	Answer string
	Count  int
}

// Duplicates возвращает повторяющиеся ответы в порядке первого
// появления. Пустой результат означает, что все ответы уникальны.
func Duplicates(answers []string) []Duplicate {
	counts := make(map[string]int, len(answers))
	var order []string

	for _, answer := range answers {
		if counts[answer] == 0 {
			order = append(order, answer)
		}
		counts[answer]++
	}

	var duplicates []Duplicate
	for _, answer := range order {
		if counts[answer] > 1 {
			duplicates = append(duplicates, Duplicate{Answer: answer, Count: counts[answer]})
		}
	}
	return duplicates
}
