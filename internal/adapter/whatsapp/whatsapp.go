// Package whatsapp formats finalized orders into opaque wa.me handoff
// URLs. Write-only boundary: nothing here parses a response.
package whatsapp

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/port"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Linker struct {
	storePhone string
	printer    *message.Printer
}

func New(storePhone string) Linker {
	return Linker{
		storePhone: storePhone,
		printer:    message.NewPrinter(language.MustParse("en-IN")),
	}
}

var _ port.OrderLinker = Linker{}

// OrderLink encodes the order summary, one line per cart item plus the
// overall total, into a messaging URL.
func (l Linker) OrderLink(lines []domain.CartLine, form domain.OrderForm) string {
	var b strings.Builder

	b.WriteString("*New Order from Ultimate Watch Store*\n\n")
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", form.Name)
	fmt.Fprintf(&b, "Phone: %s\n", form.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", form.Address)

	b.WriteString("*Order Summary:*\n")
	var subtotal float64
	for i, item := range lines {
		subtotal += item.LineTotal()
		fmt.Fprintf(&b, "%d. %s (%s) - x%d - %s\n",
			i+1, item.Name, item.Brand, item.Quantity,
			l.rupees(item.LineTotal()),
		)
	}

	fmt.Fprintf(&b, "\n*Total: %s*", l.rupees(subtotal))
	return l.link(b.String())
}

// QuickBuyLink encodes a single-item inquiry.
func (l Linker) QuickBuyLink(p domain.Product) string {
	var b strings.Builder

	b.WriteString("*Quick Buy Request - Watch Pro Store*\n\n")
	b.WriteString("I'm interested in purchasing the following timepiece:\n\n")
	fmt.Fprintf(&b, "*Product:* %s\n", p.Name)
	fmt.Fprintf(&b, "*Brand:* %s\n", p.Brand)
	fmt.Fprintf(&b, "*Price:* %s\n\n", l.rupees(p.Price))
	b.WriteString("Please share payment details and estimated delivery for my location.")

	return l.link(b.String())
}

func (l Linker) link(text string) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s", l.storePhone, url.QueryEscape(text),
	)
}

// rupees renders an amount in the storefront's single display format:
// rupee sign, en-IN digit grouping, no fraction digits.
func (l Linker) rupees(amount float64) string {
	return "₹" + l.printer.Sprintf("%v", number.Decimal(int64(math.Round(amount))))
}
