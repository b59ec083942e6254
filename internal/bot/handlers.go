package bot

import (
	"context"

	"github.com/fsdevblog/readlater/internal/models"
	"github.com/fsdevblog/readlater/internal/services"
	"github.com/fsdevblog/readlater/internal/validators"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LinkStore операции сервиса ссылок, которые нужны обработчикам.
type LinkStore interface {
	Save(ctx context.Context, rawURL string) (*models.Link, error)
	PickRandom(ctx context.Context) (*models.Link, bool, error)
}

// HandlerFunc обрабатывает текст входящего сообщения и возвращает текст ответа.
// Ошибка означает сбой, о котором пользователю не сообщается.
type HandlerFunc func(ctx context.Context, text string) (string, error)

// Handlers обработчики команд бота. Не хранят состояние между сообщениями.
type Handlers struct {
	links  LinkStore
	logger *logrus.Entry
}

func NewHandlers(links LinkStore, logger *logrus.Logger) *Handlers {
	return &Handlers{
		links:  links,
		logger: logger.WithField("module", "bot/handlers"),
	}
}

// Start описывает возможности бота. К хранилищу не обращается.
func (h *Handlers) Start(_ context.Context, _ string) (string, error) {
	return StartText, nil
}

// SubmitLink сохраняет присланную ссылку. Некорректная ссылка до хранилища не доходит.
func (h *Handlers) SubmitLink(ctx context.Context, text string) (string, error) {
	rawURL, err := validators.ValidateURL(text)
	if err != nil {
		h.logger.WithError(err).Debug("rejected link")
		return InvalidURLText, nil
	}

	if _, err := h.links.Save(ctx, rawURL); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return DuplicateText, nil
		}
		return "", errors.Wrap(err, "save link")
	}
	return SavedText, nil
}

// GetArticle выдает случайную статью, удаляя её из хранилища.
func (h *Handlers) GetArticle(ctx context.Context, _ string) (string, error) {
	link, ok, err := h.links.PickRandom(ctx)
	if err != nil {
		return "", errors.Wrap(err, "pick article")
	}
	if !ok {
		return EmptyText, nil
	}
	return ArticleText(link.URL), nil
}
