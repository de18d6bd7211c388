package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client wraps the Telegram Bot API so the handlers never touch tgbotapi
// types directly.
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient creates a new Telegram client.
func NewClient(bot *tgbotapi.BotAPI) *Client {
	return &Client{bot: bot}
}

// SendMessage sends a plain text message.
func (c *Client) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := c.bot.Send(msg)
	return err
}

// SendMessageWithKeyboard sends a message with an inline keyboard.
func (c *Client) SendMessageWithKeyboard(chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = convertInlineKeyboard(keyboard)
	}
	_, err := c.bot.Send(msg)
	return err
}

// EditMessageTextAndMarkup edits a message in place, replacing text and
// keyboard. Used to switch views without flooding the chat.
func (c *Client) EditMessageTextAndMarkup(chatID int64, messageID int, text string, keyboard *InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, convertInlineKeyboard(keyboard))
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := c.bot.Send(edit)
	return err
}

// AnswerCallbackQuery acknowledges a button press.
func (c *Client) AnswerCallbackQuery(callbackQueryID string) error {
	answer := tgbotapi.NewCallback(callbackQueryID, "")
	_, err := c.bot.Request(answer)
	return err
}

// GetUpdatesChan returns the update channel, converted to our types.
func (c *Client) GetUpdatesChan() <-chan *Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := c.bot.GetUpdatesChan(u)

	updateChan := make(chan *Update)
	go func() {
		for update := range updates {
			updateChan <- convertUpdate(update)
		}
		close(updateChan)
	}()

	return updateChan
}

// Update is a Telegram update.
type Update struct {
	Message       *Message
	CallbackQuery *CallbackQuery
}

// Message is an incoming text message.
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
	From      *User
}

// CallbackQuery is a button press.
type CallbackQuery struct {
	ID      string
	Data    string
	Message *Message
	From    *User
}

// User is the Telegram user behind a message or button press.
type User struct {
	ID int64
}

// InlineKeyboardMarkup is an inline keyboard.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton
}

// InlineKeyboardButton is one keyboard button: callback data or URL.
type InlineKeyboardButton struct {
	Text         string
	CallbackData string
	URL          string
}

// Keyboard construction helpers.

func NewInlineKeyboardMarkup(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

func NewInlineKeyboardRow(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return buttons
}

func NewInlineKeyboardButtonData(text, callbackData string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: callbackData}
}

func NewInlineKeyboardButtonURL(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

func convertInlineKeyboard(keyboard *InlineKeyboardMarkup) tgbotapi.InlineKeyboardMarkup {
	if keyboard == nil {
		return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range keyboard.InlineKeyboard {
		var buttons []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			if btn.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
			}
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func convertUpdate(update tgbotapi.Update) *Update {
	result := &Update{}

	if update.Message != nil {
		result.Message = &Message{
			ChatID:    update.Message.Chat.ID,
			MessageID: update.Message.MessageID,
			Text:      update.Message.Text,
			From:      convertUser(update.Message.From),
		}
	}

	if update.CallbackQuery != nil {
		result.CallbackQuery = &CallbackQuery{
			ID:   update.CallbackQuery.ID,
			Data: update.CallbackQuery.Data,
			From: convertUser(update.CallbackQuery.From),
		}
		if update.CallbackQuery.Message != nil {
			result.CallbackQuery.Message = &Message{
				ChatID:    update.CallbackQuery.Message.Chat.ID,
				MessageID: update.CallbackQuery.Message.MessageID,
				Text:      update.CallbackQuery.Message.Text,
				From:      convertUser(update.CallbackQuery.Message.From),
			}
		}
	}

	return result
}

func convertUser(user *tgbotapi.User) *User {
	if user == nil {
		return nil
	}
	return &User{ID: int64(user.ID)}
}
