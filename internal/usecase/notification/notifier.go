package notification

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/pkg/money"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TagConfirmation = "order_confirmation"
	TagShipped      = "order_shipped"
	TagDelivered    = "order_delivered"
	TagRecovery     = "tracking_recovery"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Tag     string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier renders transactional emails for order lifecycle events.
type Notifier struct {
	mailer  Mailer
	siteURL string
	pages   map[string]*template.Template
}

func NewNotifier(mailer Mailer, siteURL string) (*Notifier, error) {
	pages := make(map[string]*template.Template)
	for tag, file := range map[string]string{
		TagConfirmation: "templates/confirmation.html",
		TagShipped:      "templates/shipped.html",
		TagDelivered:    "templates/delivered.html",
		TagRecovery:     "templates/recovery.html",
	} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to parse email template %s", file)
		}
		pages[tag] = t
	}
	return &Notifier{
		mailer:  mailer,
		siteURL: strings.TrimRight(siteURL, "/"),
		pages:   pages,
	}, nil
}

func (n *Notifier) OrderConfirmed(ctx context.Context, o *order.Order) error {
	data := n.orderData(o, "Thanks for your order")
	return n.send(ctx, o.CustomerEmail(), "Order confirmed: "+data.OrderNumber, TagConfirmation, data)
}

func (n *Notifier) OrderShipped(ctx context.Context, o *order.Order) error {
	data := n.orderData(o, "Your order has shipped")
	return n.send(ctx, o.CustomerEmail(), "Your order "+data.OrderNumber+" has shipped", TagShipped, data)
}

func (n *Notifier) OrderDelivered(ctx context.Context, o *order.Order) error {
	data := n.orderData(o, "Your order has been delivered")
	return n.send(ctx, o.CustomerEmail(), "Your order "+data.OrderNumber+" was delivered", TagDelivered, data)
}

// TrackingRecovery sends one email listing every given order.
func (n *Notifier) TrackingRecovery(ctx context.Context, email string, orders []*order.Order) error {
	data := recoveryData{Heading: "Your order tracking links"}
	for _, o := range orders {
		data.Orders = append(data.Orders, recoveryLine{
			OrderNumber: OrderNumber(o),
			PlacedOn:    o.CreatedAt().Format("January 2, 2006"),
			Status:      o.Status().String(),
			TrackURL:    n.TrackURL(o),
		})
	}
	return n.send(ctx, email, "Your order tracking links", TagRecovery, data)
}

// TrackURL is the guest tracking page link. The token is the only credential.
func (n *Notifier) TrackURL(o *order.Order) string {
	return n.siteURL + "/track?token=" + url.QueryEscape(o.TrackingToken())
}

// OrderNumber is the short customer-facing reference for an order.
func OrderNumber(o *order.Order) string {
	return strings.ToUpper(o.ID().String()[:8])
}

func (n *Notifier) send(ctx context.Context, to, subject, tag string, data any) error {
	var buf bytes.Buffer
	if err := n.pages[tag].ExecuteTemplate(&buf, templateName(tag), data); err != nil {
		metrics.EmailsSentTotal.WithLabelValues(tag, "error").Inc()
		return errs.Wrapf(err, "failed to render %s email", tag)
	}
	err := n.mailer.Send(ctx, Message{To: to, Subject: subject, HTML: buf.String(), Tag: tag})
	metrics.EmailsSentTotal.WithLabelValues(tag, metrics.Result(err)).Inc()
	return err
}

func templateName(tag string) string {
	switch tag {
	case TagConfirmation:
		return "confirmation.html"
	case TagShipped:
		return "shipped.html"
	case TagDelivered:
		return "delivered.html"
	default:
		return "recovery.html"
	}
}

type itemLine struct {
	Name      string
	Size      string
	Color     string
	Quantity  int
	LineTotal string
}

type orderData struct {
	Heading           string
	Name              string
	OrderNumber       string
	Items             []itemLine
	Subtotal          string
	Shipping          string
	Discount          string
	HasDiscount       bool
	DiscountCode      string
	Total             string
	GiftMessage       string
	TrackingNumber    string
	Carrier           string
	CarrierURL        string
	EstimatedDelivery string
	TrackURL          string
}

type recoveryLine struct {
	OrderNumber string
	PlacedOn    string
	Status      string
	TrackURL    string
}

type recoveryData struct {
	Heading string
	Orders  []recoveryLine
}

func (n *Notifier) orderData(o *order.Order, heading string) orderData {
	totals := o.Totals()
	tr := o.Tracking()
	d := orderData{
		Heading:     heading,
		Name:        firstName(o.ShippingName()),
		OrderNumber: OrderNumber(o),
		Subtotal:    money.Format(totals.Subtotal()),
		Shipping:    money.Format(totals.ShippingCost()),
		Discount:    money.Format(totals.DiscountAmount()),
		HasDiscount: totals.DiscountAmount() > 0,
		Total:       money.Format(totals.Total()),
		TrackURL:    n.TrackURL(o),
	}
	for _, li := range o.Items() {
		d.Items = append(d.Items, itemLine{
			Name:      li.Name,
			Size:      li.Size,
			Color:     li.Color,
			Quantity:  li.Quantity,
			LineTotal: money.Format(li.LineTotal()),
		})
	}
	if o.DiscountCode() != nil {
		d.DiscountCode = *o.DiscountCode()
	}
	if o.GiftMessage() != nil {
		d.GiftMessage = *o.GiftMessage()
	}
	if tr.Number != nil {
		d.TrackingNumber = *tr.Number
	}
	if tr.Carrier != nil {
		d.Carrier = *tr.Carrier
	}
	if tr.URL != nil {
		d.CarrierURL = *tr.URL
	}
	if tr.EstimatedDelivery != nil {
		d.EstimatedDelivery = tr.EstimatedDelivery.Format("Monday, January 2")
	}
	return d
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
