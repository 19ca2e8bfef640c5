package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
)

// MobileMaxWidth ширина окна, начиная с которой клиент считается десктопом
const MobileMaxWidth = 768

var ErrNoPrompt = errors.New("install prompt is not available")

var mobileUA = regexp.MustCompile(`android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDismissed Outcome = "dismissed"
)

// Chooser отложенный системный запрос установки: ждет решения пользователя
type Chooser interface {
	UserChoice(ctx context.Context) (Outcome, error)
}

// StaticChoice решение, которое уже известно
type StaticChoice Outcome

func (c StaticChoice) UserChoice(ctx context.Context) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Outcome(c), nil
}

// ChoiceChannel решение придет из канала
type ChoiceChannel <-chan Outcome

func (c ChoiceChannel) UserChoice(ctx context.Context) (Outcome, error) {
	select {
	case o := <-c:
		return o, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// State состояние баннера одного посетителя, хранится в его сессии
type State struct {
	Mobile          bool `json:"mobile"`
	PromptAvailable bool `json:"prompt_available"`
	Shown           bool `json:"shown"`
}

// Banner баннер "добавить на главный экран"
type Banner struct {
	log *slog.Logger

	mu    sync.Mutex
	state State
}

func NewBanner(log *slog.Logger, state State) *Banner {
	return &Banner{
		log:   log,
		state: state,
	}
}

func (b *Banner) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// Visible баннер показывается только на мобильных и только при наличии запроса установки
func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.Shown && b.state.Mobile && b.state.PromptAvailable
}

// DetectClient обновляет признак мобильного клиента (width <= 0 - неизвестна)
func (b *Banner) DetectClient(userAgent string, width int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Mobile = IsMobile(userAgent, width)
}

// BeforeInstallPrompt платформа сообщила, что приложение можно установить
func (b *Banner) BeforeInstallPrompt() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.PromptAvailable = true
	if b.state.Mobile {
		b.state.Shown = true
	}
}

// AppInstalled приложение установлено - баннер больше не нужен
func (b *Banner) AppInstalled() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Shown = false
	b.state.PromptAvailable = false
}

// Dismiss скрывает баннер, запрос установки остается на случай "позже"
func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Shown = false
}

// Install показывает системный запрос и ждет решения пользователя.
// После ответа баннер скрывается независимо от решения.
func (b *Banner) Install(ctx context.Context, c Chooser) (Outcome, error) {
	const op = "service.Banner.Install"

	log := b.log.With(slog.String("op", op))

	b.mu.Lock()
	available := b.state.PromptAvailable
	b.mu.Unlock()

	if !available {
		return "", fmt.Errorf("%s: %w", op, ErrNoPrompt)
	}

	outcome, err := c.UserChoice(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	b.mu.Lock()
	b.state.Shown = false
	b.state.PromptAvailable = false
	b.mu.Unlock()

	log.Info("user response to the install prompt", slog.String("outcome", string(outcome)))

	return outcome, nil
}

func IsMobile(userAgent string, width int) bool {
	if mobileUA.MatchString(strings.ToLower(userAgent)) {
		return true
	}

	return width > 0 && width <= MobileMaxWidth
}
