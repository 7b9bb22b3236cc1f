package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/coingecko"
)

// UI texts, Markdown parse mode.
const (
	helpText = "*📖 Available Commands:*\n" +
		"*/help* - Show this help message\n" +
		"*/info {currency}* - Get information about price, changes, ATH and more.\n" +
		"  _Example:_ `/info usd`\n" +
		"*/price* - Get current BTC prices\n" +
		"*/start* - Start sending *info* in desired intervals\n" +
		"*/stop* - Stop sending *info* messages\n"

	startPromptText = "🕒 *Please enter the interval in days*, the fiat currency, and the hour when you want to receive BTC updates.\n\n" +
		"_Example:_ `7 usd 22`\n\n" +
		"This will send you BTC info every *7 days* at *22:00* in *USD*.\n\n" +
		"• Number of days must be greater than 0 and a whole number\n" +
		"• You can use *usd*, *eur*, or *czk* as the currency\n" +
		"• If you want to receive updates at a different hour, specify it as the third argument (default is 22 at market close). Must be a whole number."

	invalidInputText = "❌ *Invalid input.* Please use the format:\n" +
		"`interval currency hour`\n\n" +
		"_Example:_ `7 usd 22`\n\n" +
		"• Number of days must be greater than 0 and a whole number\n" +
		"• You can use *usd*, *eur*, or *czk* as the currency\n" +
		"• Hour must be a whole number between 0 and 23"

	invalidCurrencyText = "❗ *Please specify a valid currency:* _czk_, _eur_, or _usd_."
	stoppedText         = "🛑 *You have stopped receiving BTC updates.*"
	notSubscribedText   = "ℹ️ *You are not currently receiving BTC updates.*"
	unknownCommandText  = "❓ *Unknown command.*"
	pricesErrorText     = "⚠️ *Error loading prices...*"
	infoErrorText       = "⚠️ *Error loading BTC info...*"
	saveErrorText       = "⚠️ *Error saving your subscription.* Please try again."
)

// pricesText formats the /price reply.
func pricesText(p coingecko.SimplePrices) string {
	return "💰 *BTC Prices:*\n" +
		fmt.Sprintf("🇨🇿 %s CZK\n", formatAmount(p.CZK)) +
		fmt.Sprintf("🇪🇺 %s EUR\n", formatAmount(p.EUR)) +
		fmt.Sprintf("🇺🇸 %s USD", formatAmount(p.USD))
}

// infoText formats the /info reply and the scheduled delivery body.
func infoText(currency string, s coingecko.Snapshot) string {
	cur := strings.ToUpper(currency)
	return "📊 *BTC Info:*\n" +
		fmt.Sprintf("*Current Price:* %s %s\n", formatAmount(s.Price), cur) +
		fmt.Sprintf("*Changes:* %.2f%% (24h), %.2f%% (7d), %.2f%% (30d), %.2f%% (1y)\n\n",
			s.Change24h, s.Change7d, s.Change30d, s.Change1y) +
		fmt.Sprintf("*24h Low:* %s %s  |  *24h High:* %s %s\n\n",
			formatAmount(s.Low24h), cur, formatAmount(s.High24h), cur) +
		fmt.Sprintf("*ATH was on:* %s at %s %s\n",
			s.ATHDate.Format("02 Jan 2006"), formatAmount(s.ATHPrice), cur) +
		fmt.Sprintf("*Change since ATH:* %.2f%%\n\n", s.ATHChangePct) +
		fmt.Sprintf("*Data Last Updated:* %s", s.LastUpdated.Format("02 Jan 2006 15:04"))
}

// confirmationText formats the successful-registration reply.
func confirmationText(intervalDays int, currency string, first time.Time) string {
	return fmt.Sprintf("✅ You will receive BTC info every *%d* day(s) in *%s*.\n", intervalDays, currency) +
		"To stop receiving updates, use the /stop command.\n" +
		"To edit the interval, use the /start command again.\n" +
		fmt.Sprintf("First update will be sent on *%s*.", first.Format("02 Jan 2006 15:04"))
}
