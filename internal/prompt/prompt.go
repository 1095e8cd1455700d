package prompt

import (
	"strconv"
	"strings"

	"order-assistant/internal/domain"
)

// FormatOrder renders an order (with items) into the plain-text block used
// as factual context for generation requests. The output is deterministic:
// fixed field order, optional fields omitted entirely when absent. The
// generation guardrails tell the model to rely on this block alone, so the
// contract here must not drift.
func FormatOrder(o *domain.Order) string {
	var lines []string

	lines = append(lines, "OrderNumber: "+o.OrderNumber)
	lines = append(lines, "Status: "+string(o.Status))

	buyer := "Buyer: " + o.BuyerName
	if o.BuyerEmail != nil {
		buyer += " <" + *o.BuyerEmail + ">"
	}
	lines = append(lines, buyer)

	lines = append(lines, "ShipTo: "+o.ShippingName)

	addr := o.ShippingAddress1
	if o.ShippingAddress2 != nil {
		addr += " " + *o.ShippingAddress2
	}
	lines = append(lines, "Address: "+strings.TrimSpace(addr))

	city := o.ShippingPostalCode + " " + o.ShippingCity
	if o.ShippingProvince != nil {
		city += " " + *o.ShippingProvince
	}
	lines = append(lines, "City: "+strings.TrimSpace(city))

	lines = append(lines, "Country: "+o.ShippingCountry)

	lines = append(lines, "Items:")
	for _, it := range o.Items {
		line := "- " + it.Title + " | qty=" + strconv.Itoa(it.Quantity)
		if it.SKU != nil {
			line += " | sku=" + *it.SKU
		}
		if it.UnitPrice != nil {
			line += " | unit=" + strconv.FormatFloat(*it.UnitPrice, 'f', -1, 64)
			if it.Currency != nil {
				line += " " + *it.Currency
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
