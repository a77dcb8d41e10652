package order

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// Checkout session metadata is limited to short string values, so cart lines are packed into
// "items_0", "items_1", ... chunks. Each line is "product,size,color,qty" with path-escaped fields
// and lines are separated by ';'.
const (
	MetadataItemsPrefix  = "items_"
	MetadataUserID       = "user_id"
	MetadataDiscountCode = "discount_code"
	MetadataGiftMessage  = "gift_message"

	MaxMetadataValueLength = 500
	MaxMetadataItemChunks  = 40
)

var (
	ErrMetadataTooLarge  = errs.New("cart does not fit into checkout metadata")
	ErrMalformedMetadata = errs.New("malformed checkout metadata")
	ErrInvalidCartItem   = errs.New("invalid cart item")
	ErrEmptyCartMetadata = errs.New("checkout metadata carries no items")
)

// CartItem is the minimal line reference carried through the payment provider.
type CartItem struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

type CheckoutMetadata struct {
	Items        []CartItem
	UserID       *uuid.UUID
	DiscountCode *string
	GiftMessage  *string
}

// EncodeCartItems is the storefront-side counterpart of DecodeCartItems, used when a checkout session
// is created with the cart packed into its metadata.
func EncodeCartItems(items []CartItem) (map[string]string, error) {
	md := make(map[string]string)
	var chunk strings.Builder
	n := 0

	flush := func() error {
		if chunk.Len() == 0 {
			return nil
		}
		if n >= MaxMetadataItemChunks {
			return ErrMetadataTooLarge
		}
		md[MetadataItemsPrefix+strconv.Itoa(n)] = chunk.String()
		n++
		chunk.Reset()
		return nil
	}

	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, ErrInvalidCartItem
		}
		line := strings.Join([]string{
			url.PathEscape(it.ProductID),
			url.PathEscape(it.Size),
			url.PathEscape(it.Color),
			strconv.Itoa(it.Quantity),
		}, ",")
		if len(line) > MaxMetadataValueLength {
			return nil, ErrMetadataTooLarge
		}

		sep := 0
		if chunk.Len() > 0 {
			sep = 1
		}
		if chunk.Len()+sep+len(line) > MaxMetadataValueLength {
			if err := flush(); err != nil {
				return nil, err
			}
			sep = 0
		}
		if sep == 1 {
			chunk.WriteByte(';')
		}
		chunk.WriteString(line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return md, nil
}

func DecodeCartItems(md map[string]string) ([]CartItem, error) {
	var items []CartItem
	for n := 0; ; n++ {
		chunk, ok := md[MetadataItemsPrefix+strconv.Itoa(n)]
		if !ok {
			break
		}
		for _, line := range strings.Split(chunk, ";") {
			item, err := decodeCartLine(line)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, ErrEmptyCartMetadata
	}
	return items, nil
}

func decodeCartLine(line string) (CartItem, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return CartItem{}, errs.Mark(fmt.Errorf("line %q has %d fields", line, len(parts)), ErrMalformedMetadata)
	}
	fields := make([]string, 3)
	for i := range fields {
		v, err := url.PathUnescape(parts[i])
		if err != nil {
			return CartItem{}, errs.Mark(err, ErrMalformedMetadata)
		}
		fields[i] = v
	}
	qty, err := strconv.Atoi(parts[3])
	if err != nil || qty <= 0 || fields[0] == "" {
		return CartItem{}, errs.Mark(fmt.Errorf("line %q", line), ErrMalformedMetadata)
	}
	return CartItem{ProductID: fields[0], Size: fields[1], Color: fields[2], Quantity: qty}, nil
}

// ParseCheckoutMetadata decodes everything the storefront attached to a checkout session.
func ParseCheckoutMetadata(md map[string]string) (CheckoutMetadata, error) {
	items, err := DecodeCartItems(md)
	if err != nil {
		return CheckoutMetadata{}, err
	}

	out := CheckoutMetadata{Items: items}
	if raw := strings.TrimSpace(md[MetadataUserID]); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return CheckoutMetadata{}, errs.Mark(err, ErrMalformedMetadata)
		}
		out.UserID = &id
	}
	if code := strings.TrimSpace(md[MetadataDiscountCode]); code != "" {
		normalized := strings.ToUpper(code)
		out.DiscountCode = &normalized
	}
	if msg := strings.TrimSpace(md[MetadataGiftMessage]); msg != "" {
		out.GiftMessage = &msg
	}
	return out, nil
}
