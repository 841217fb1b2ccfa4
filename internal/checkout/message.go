package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

type template struct {
	greeting string
	items    string
	subtotal string
	delivery string
	total    string
	customer string
	name     string
	phone    string
	area     string
	address  string
	notes    string
	slot     string
}

var templates = map[models.Language]template{
	models.LanguageArabic: {
		greeting: "مرحباً! أود تقديم طلب:",
		items:    "📦 الطلبات:",
		subtotal: "💰 الإجمالي الفرعي:",
		delivery: "🚚 رسوم التوصيل:",
		total:    "💵 الإجمالي:",
		customer: "👤 معلومات العميل:",
		name:     "الاسم:",
		phone:    "الهاتف:",
		area:     "المنطقة:",
		address:  "العنوان:",
		notes:    "ملاحظات:",
		slot:     "🕐 وقت التوصيل المفضل:",
	},
	models.LanguageEnglish: {
		greeting: "Hello! I would like to place an order:",
		items:    "📦 Items:",
		subtotal: "💰 Subtotal:",
		delivery: "🚚 Delivery:",
		total:    "💵 Total:",
		customer: "👤 Customer Information:",
		name:     "Name:",
		phone:    "Phone:",
		area:     "Area:",
		address:  "Address:",
		notes:    "Notes:",
		slot:     "🕐 Preferred Delivery Time:",
	},
}

// ItemLine renders "{name} - {qty} {unit} × {unitPrice} {currency} = {lineTotal} {currency}".
func ItemLine(item models.CartItem, lang models.Language) string {
	cur := catalog.Currency(lang)

	return fmt.Sprintf("%s - %d %s × %s %s = %s %s",
		item.Entity.Name().In(lang),
		item.Quantity,
		catalog.UnitLabel(item.Entity.Unit(), lang),
		item.Entity.UnitPrice().StringFixed(2), cur,
		cart.LineTotal(item).StringFixed(2), cur,
	)
}

// BuildMessage renders the order hand-off text in the shopper's language.
func BuildMessage(items []models.CartItem, totals models.CartTotals, info models.CustomerInfo, lang models.Language) string {
	if !lang.Valid() {
		lang = models.LanguageArabic
	}

	t := templates[lang]
	cur := catalog.Currency(lang)
	amount := func(d decimal.Decimal) string { return d.StringFixed(2) + " " + cur }

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, ItemLine(item, lang))
	}

	notes := ""
	if strings.TrimSpace(info.Notes) != "" {
		notes = t.notes + " " + info.Notes
	}

	var b strings.Builder

	b.WriteString(t.greeting + "\n\n")
	b.WriteString(t.items + "\n")
	b.WriteString(strings.Join(lines, "\n") + "\n\n")
	b.WriteString(t.subtotal + " " + amount(totals.Subtotal) + "\n")
	b.WriteString(t.delivery + " " + amount(totals.DeliveryFee) + "\n")
	b.WriteString(t.total + " " + amount(totals.Total) + "\n\n")
	b.WriteString(t.customer + "\n")
	b.WriteString(t.name + " " + info.Name + "\n")
	b.WriteString(t.phone + " " + info.Phone + "\n")
	b.WriteString(t.area + " " + catalog.AreaLabel(info.Area, lang) + "\n")
	b.WriteString(t.address + " " + info.Address + "\n")
	b.WriteString(notes + "\n\n")
	b.WriteString(t.slot + " " + catalog.SlotLabel(info.Slot, lang))

	return b.String()
}

// HandoffURL builds base/number?text=<message>, percent-encoding spaces as %20.
func HandoffURL(base, number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return strings.TrimRight(base, "/") + "/" + number + "?text=" + text
}
