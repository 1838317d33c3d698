package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// DefaultItemName подставляется, если WebApp не прислал название позиции
	DefaultItemName = "Unknown"
)

var (
	// ErrMalformedPayload возвращается, когда payload не является валидным JSON
	ErrMalformedPayload = errors.New("domain: order payload is not valid JSON")

	// ErrPayloadField возвращается, когда JSON валиден, но поле имеет неожиданный тип
	ErrPayloadField = errors.New("domain: order payload field has unexpected type")
)

// Order представляет заказ, присланный WebApp страницей
// Payload вида: {"id": 1, "name": "Whopper", "price_cents": 599}
type Order struct {
	// ID опциональный идентификатор, любой JSON скаляр
	ID interface{} `json:"id"`
	// Name название позиции, по умолчанию DefaultItemName
	Name string `json:"name"`
	// PriceCents цена в минорных единицах валюты, по умолчанию 0
	PriceCents int64 `json:"price_cents"`
}

// ParseOrder разбирает JSON payload от WebApp и подставляет значения по умолчанию
func ParseOrder(data string) (*Order, error) {
	var order Order

	if err := json.Unmarshal([]byte(data), &order); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q: %v", ErrPayloadField, typeErr.Field, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if order.Name == "" {
		order.Name = DefaultItemName
	}

	return &order, nil
}

// PriceDollars возвращает цену в основной единице валюты
func (o *Order) PriceDollars() float64 {
	return float64(o.PriceCents) / 100
}

// IDTag возвращает отображаемый идентификатор заказа
// Для {"id": 1} вернет "1", для отсутствующего id - "<nil>"
func (o *Order) IDTag() string {
	return fmt.Sprintf("%v", o.ID)
}
