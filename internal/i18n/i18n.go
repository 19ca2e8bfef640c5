// Package i18n хранит переводы сайта и активный язык отображения.
package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// Localizer активный язык + каталог сообщений. Безопасен для конкурентного использования.
type Localizer struct {
	mu        sync.RWMutex
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
	active    language.Tag
	printer   *message.Printer

	listenersMu sync.Mutex
	listeners   []func(language.Tag)
}

// New собирает каталог и выставляет язык по умолчанию
func New(defaultLang string) (*Localizer, error) {
	const op = "i18n.New"

	supported := []language.Tag{language.English, language.Arabic}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tag := range supported {
		for key, msg := range messages[tag] {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	l := &Localizer{
		catalog:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}

	tag, err := l.match(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	l.active = tag
	l.printer = message.NewPrinter(tag, message.Catalog(b))

	return l, nil
}

func (l *Localizer) Language() language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.active
}

// T переводит ключ на активный язык. Неизвестный ключ возвращается как есть.
func (l *Localizer) T(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.printer.Sprintf(key)
}

// SetLanguage меняет активный язык. Подписчики уведомляются только при
// реальной смене языка и уже после снятия блокировки.
func (l *Localizer) SetLanguage(lang string) (language.Tag, error) {
	const op = "i18n.Localizer.SetLanguage"

	tag, err := l.match(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%s: %w", op, err)
	}

	l.mu.Lock()
	changed := tag != l.active
	if changed {
		l.active = tag
		l.printer = message.NewPrinter(tag, message.Catalog(l.catalog))
	}
	l.mu.Unlock()

	if changed {
		l.notify(tag)
	}

	return tag, nil
}

// OnChange регистрирует обработчик смены языка
func (l *Localizer) OnChange(fn func(language.Tag)) {
	l.listenersMu.Lock()
	defer l.listenersMu.Unlock()

	l.listeners = append(l.listeners, fn)
}

func (l *Localizer) Supported() []language.Tag {
	out := make([]language.Tag, len(l.supported))
	copy(out, l.supported)

	return out
}

func (l *Localizer) notify(tag language.Tag) {
	l.listenersMu.Lock()
	listeners := make([]func(language.Tag), len(l.listeners))
	copy(listeners, l.listeners)
	l.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(tag)
	}
}

func (l *Localizer) match(lang string) (language.Tag, error) {
	requested, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	_, idx, confidence := l.matcher.Match(requested)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	return l.supported[idx], nil
}

// Direction направление письма для языка
func Direction(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "ar" {
		return DirRTL
	}

	return DirLTR
}
