package formatter

import (
	"github.com/go-telegram/bot/models"

	appmodels "github.com/mixelka/orderbot/pkg/models"
)

// BuildKitchenKeyboard creates the inline keyboard of a confirmed-order kitchen notification
func BuildKitchenKeyboard() *models.InlineKeyboardMarkup {
	row := []models.InlineKeyboardButton{
		{
			Text:         "👨‍🍳 Mark as Preparing",
			CallbackData: string(appmodels.CallbackMarkPreparing),
		},
		{
			Text:         "✅ Mark as Ready",
			CallbackData: string(appmodels.CallbackMarkReady),
		},
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{row},
	}
}
