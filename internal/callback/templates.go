package callback

import (
	tgmodels "github.com/go-telegram/bot/models"

	"github.com/mixelka/orderbot/internal/formatter"
	"github.com/mixelka/orderbot/pkg/models"
)

type followUpKind int

const (
	followUpNone followUpKind = iota
	followUpKitchen
	followUpService
)

// template is the static response definition of one action code
type template struct {
	banner    formatter.Banner
	alert     string
	followUp  string
	kind      followUpKind
	keyboard  func() *tgmodels.InlineKeyboardMarkup // attached to the follow-up, optional
	skipLines int                                   // leading lines of the original that duplicate the banner
}

var templates = map[models.CallbackAction]template{
	models.CallbackConfirmOrder: {
		banner: formatter.Banner{
			Headline:   "🟢🟢🟢 ORDER CONFIRMED 🟢🟢🟢",
			Status:     "✅ <b>STATUS: APPROVED</b>",
			StampLabel: "Confirmed at",
			Footer:     "🎉 <b>Order is being prepared!</b>",
		},
		alert:    "✅ Order confirmed successfully! Customer will be notified.",
		followUp: "🔔 <b>Kitchen Notification</b>: New order confirmed and ready for preparation!",
		kind:     followUpKitchen,
		keyboard: formatter.BuildKitchenKeyboard,
	},
	models.CallbackRejectOrder: {
		banner: formatter.Banner{
			Headline:   "🔴🔴🔴 ORDER REJECTED 🔴🔴🔴",
			Status:     "❌ <b>STATUS: DECLINED</b>",
			StampLabel: "Rejected at",
			Footer:     "💭 <b>Reason</b>: Please contact staff for details",
		},
		alert:    "❌ Order rejected. Customer will be notified.",
		followUp: "🔔 <b>Kitchen Notification</b>: Order rejected, do not prepare.",
		kind:     followUpKitchen,
	},
	models.CallbackWaiterSent: {
		banner: formatter.Banner{
			Headline:   "🔵🔵🔵 WAITER DISPATCHED 🔵🔵🔵",
			Status:     "🏃 <b>STATUS: ON THE WAY</b>",
			StampLabel: "Dispatched at",
			Footer:     "🛎 <b>A waiter is heading to the table!</b>",
		},
		alert:     "🏃 Waiter dispatched! The guest will be served shortly.",
		followUp:  "🛎 <b>Service Notification</b>: A waiter has been dispatched to the table.",
		kind:      followUpService,
		skipLines: 2,
	},
	models.CallbackWaiterIgnore: {
		banner: formatter.Banner{
			Headline:   "⚪⚪⚪ REQUEST IGNORED ⚪⚪⚪",
			Status:     "🚫 <b>STATUS: IGNORED</b>",
			StampLabel: "Ignored at",
			Footer:     "💭 <b>No waiter will be sent for this request</b>",
		},
		alert:     "🚫 Waiter request ignored.",
		kind:      followUpNone,
		skipLines: 2,
	},
}

// KnownActions returns the action codes the router handles
func KnownActions() []models.CallbackAction {
	return []models.CallbackAction{
		models.CallbackConfirmOrder,
		models.CallbackRejectOrder,
		models.CallbackWaiterSent,
		models.CallbackWaiterIgnore,
	}
}
