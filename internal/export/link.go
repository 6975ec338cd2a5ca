package export

import (
	"net/url"

	"github.com/rezonia/invoice-studio/internal/model"
)

// MessageLink builds the wa.me deep link carrying the invoice text
// summary to the normalized contact number.
func MessageLink(inv *model.Invoice) (string, error) {
	digits := inv.NormalizedContact()
	if digits == "" {
		return "", model.NewDeliveryError("message-link", "contact number has no digits", nil)
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(inv.Summary()), nil
}
