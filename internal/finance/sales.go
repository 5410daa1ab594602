package finance

import (
	"maps"
	"slices"
)

// Channel identifies where a sale happened.
type Channel string

const (
	ChannelInStore  Channel = "inStore"
	ChannelDelivery Channel = "delivery"
)

// MenuLookup resolves menu items by id.
type MenuLookup interface {
	MenuItem(id string) (MenuItem, bool)
}

// MenuIndex is a map-backed MenuLookup.
type MenuIndex map[string]MenuItem

// MenuItem implements MenuLookup.
func (idx MenuIndex) MenuItem(id string) (MenuItem, bool) {
	item, ok := idx[id]
	return item, ok
}

// IndexMenu builds a MenuIndex. The first item with a given id wins.
func IndexMenu(menu []MenuItem) MenuIndex {
	idx := make(MenuIndex, len(menu))
	for _, item := range menu {
		if _, dup := idx[item.ID]; dup {
			continue
		}
		idx[item.ID] = item
	}
	return idx
}

// SalesLine is the monthly contribution of one item on one channel.
type SalesLine struct {
	ItemID     string  `json:"itemId"`
	Name       string  `json:"name"`
	Channel    Channel `json:"channel"`
	MonthlyQty float64 `json:"monthlyQty"`
	UnitPrice  float64 `json:"unitPrice"`
	Revenue    float64 `json:"revenue"`
	COGS       float64 `json:"cogs"`
}

// SalesTotals are monthly gross (VAT-inclusive) sales figures.
type SalesTotals struct {
	Lines           []SalesLine `json:"lines"`
	InStoreRevenue  float64     `json:"inStoreRevenue"`
	DeliveryRevenue float64     `json:"deliveryRevenue"`
	InStoreCOGS     float64     `json:"inStoreCogs"`
	DeliveryCOGS    float64     `json:"deliveryCogs"`
	GrossRevenue    float64     `json:"grossRevenue"`
	GrossCOGS       float64     `json:"grossCogs"`
}

// Aggregate turns per-item sales volumes into monthly gross revenue and COGS.
// Discounts are applied per channel; delivery sales use the app price with the
// in-store price as fallback. Unknown item ids and non-positive quantities are ignored.
// COGS uses each item's TotalCost as given.
func Aggregate(menu []MenuItem, sales SalesData, discounts Discounts, period Period) SalesTotals {
	idx := IndexMenu(menu)
	mult := period.Multiplier()

	t := SalesTotals{Lines: make([]SalesLine, 0)}

	for _, id := range slices.Sorted(maps.Keys(sales.InStore)) {
		qty := sales.InStore[id]
		item, ok := idx.MenuItem(id)
		if !ok || qty <= 0 {
			continue
		}
		monthly := qty * mult
		line := SalesLine{
			ItemID:     id,
			Name:       item.Name,
			Channel:    ChannelInStore,
			MonthlyQty: monthly,
			UnitPrice:  item.Price,
			Revenue:    item.Price * monthly * (1 - discounts.Shop/100),
			COGS:       item.TotalCost * monthly,
		}
		t.InStoreRevenue += line.Revenue
		t.InStoreCOGS += line.COGS
		t.Lines = append(t.Lines, line)
	}

	for _, id := range slices.Sorted(maps.Keys(sales.Delivery)) {
		qty := sales.Delivery[id]
		item, ok := idx.MenuItem(id)
		if !ok || qty <= 0 {
			continue
		}
		monthly := qty * mult
		price := item.AppPrice()
		line := SalesLine{
			ItemID:     id,
			Name:       item.Name,
			Channel:    ChannelDelivery,
			MonthlyQty: monthly,
			UnitPrice:  price,
			Revenue:    price * monthly * (1 - discounts.App/100),
			COGS:       item.TotalCost * monthly,
		}
		t.DeliveryRevenue += line.Revenue
		t.DeliveryCOGS += line.COGS
		t.Lines = append(t.Lines, line)
	}

	t.GrossRevenue = t.InStoreRevenue + t.DeliveryRevenue
	t.GrossCOGS = t.InStoreCOGS + t.DeliveryCOGS
	return t
}
