package handler

import (
	tele "gopkg.in/telebot.v3"
)

// BotNotifier delivers reminder messages through the bot
type BotNotifier struct {
	bot *tele.Bot
}

// NewBotNotifier creates a notifier sending with bot
func NewBotNotifier(bot *tele.Bot) *BotNotifier {
	return &BotNotifier{bot: bot}
}

// Notify sends text to the user's private chat
func (n *BotNotifier) Notify(userID int64, text string) error {
	_, err := n.bot.Send(tele.ChatID(userID), text)
	return err
}
