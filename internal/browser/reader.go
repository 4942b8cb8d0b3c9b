// Package browser прячет работу с живой страницей за узким интерфейсом,
// чтобы селекторы и CDP-детали не протекали в логику извлечения.
package browser

import "time"

type Key string

const KeyArrowRight Key = "ArrowRight"

// Element — найденный на странице элемент
type Element interface {
	// Click диспатчит программный клик, минуя геометрию указателя
	Click() error
	Text() (string, error)
	// Attribute возвращает значение атрибута, пустую строку если его нет
	Attribute(name string) (string, error)
}

// Reader — возможности чтения и управления одной страницей
type Reader interface {
	Navigate(url string) error

	// WaitElement ждёт появления элемента не дольше timeout
	WaitElement(selector string, timeout time.Duration) (Element, error)

	// WaitVisible ждёт появления и видимости элемента
	WaitVisible(selector string, timeout time.Duration) (Element, error)

	// Element ищет элемент без ожидания
	Element(selector string) (Element, error)

	// Count возвращает число элементов по селектору
	Count(selector string) (int, error)

	// Eval выполняет JS на странице
	Eval(js string) error

	PressKey(key Key) error

	// EnterFrame ждёт iframe и возвращает Reader его содержимого
	EnterFrame(selector string, timeout time.Duration) (Reader, error)

	// Close освобождает сессию; повторные вызовы безопасны
	Close() error
}
