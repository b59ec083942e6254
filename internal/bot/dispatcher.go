package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Команды бота.
const (
	CommandStart      = "start"
	CommandHelp       = "help"
	CommandGetArticle = "get_article"
)

// DefaultHandlerTimeout время на обработку одного сообщения по умолчанию.
const DefaultHandlerTimeout = 10 * time.Second

// Sender отправляет сообщения в Telegram. Реализуется *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Dispatcher разбирает входящие обновления, вызывает нужный обработчик и отправляет ответ.
type Dispatcher struct {
	sender   Sender
	handlers *Handlers
	timeout  time.Duration
	logger   *logrus.Entry
}

func NewDispatcher(sender Sender, handlers *Handlers, timeout time.Duration, logger *logrus.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultHandlerTimeout
	}
	return &Dispatcher{
		sender:   sender,
		handlers: handlers,
		timeout:  timeout,
		logger:   logger.WithField("module", "bot/dispatcher"),
	}
}

// Run обрабатывает обновления по одному в порядке поступления, пока не отменен ctx
// или не закрыт канал.
func (d *Dispatcher) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			d.HandleUpdate(ctx, update)
		}
	}
}

// Route выбирает обработчик для сообщения. Сообщения без текста пропускаются (nil).
func (d *Dispatcher) Route(msg *tgbotapi.Message) HandlerFunc {
	if msg == nil || msg.Chat == nil {
		return nil
	}
	if msg.IsCommand() {
		switch msg.Command() {
		case CommandGetArticle:
			return d.handlers.GetArticle
		default:
			// start, help и неизвестные команды получают описание возможностей
			return d.handlers.Start
		}
	}
	if msg.Text == "" {
		return nil
	}
	return d.handlers.SubmitLink
}

// HandleUpdate обрабатывает одно обновление и отвечает ровно одним сообщением.
// При сбое хранилища ответ не отправляется, ошибка логируется.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	handler := d.Route(msg)
	if handler == nil {
		return
	}

	l := d.logger.WithFields(logrus.Fields{
		"update_id": update.UpdateID,
		"chat_id":   msg.Chat.ID,
		"command":   msg.Command(),
	})

	hCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	reply, err := handler(hCtx, msg.Text)
	if err != nil {
		l.WithError(err).Error("failed to handle message")
		return
	}

	answer := tgbotapi.NewMessage(msg.Chat.ID, reply)
	answer.ReplyToMessageID = msg.MessageID
	if _, sendErr := d.sender.Send(answer); sendErr != nil {
		l.WithError(sendErr).Error("failed to send reply")
		return
	}
	l.WithField("latency", time.Since(start).String()).Info("Message processed")
}
