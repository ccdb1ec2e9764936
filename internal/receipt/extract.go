package receipt

import (
	"fmt"
	"math"
	"time"
)

// totalTolerance is the maximum allowed absolute difference between the sum of
// item prices and the declared total.
const totalTolerance = 0.01

func extractRetailer(data map[string]any) (string, error) {
	return requireTrimmedText(data["retailer"], "retailer")
}

func extractPurchaseDate(data map[string]any) (time.Time, error) {
	return requireDate(data["purchaseDate"])
}

func extractPurchaseTime(data map[string]any) (string, error) {
	return requireTrimmedText(data["purchaseTime"], "purchaseTime")
}

func extractItems(data map[string]any) ([]Item, error) {
	raw, ok := data["items"].([]any)
	if !ok {
		return nil, validationErrorf("items must be an array")
	}

	items := make([]Item, 0, len(raw))
	for i, elem := range raw {
		record, ok := elem.(map[string]any)
		if !ok || record == nil {
			return nil, validationErrorf("item at index %d must be an object", i)
		}

		desc, err := requireTrimmedText(record["shortDescription"], fmt.Sprintf("item shortDescription at index %d", i))
		if err != nil {
			return nil, err
		}
		price, err := requireNumeric(record["price"], fmt.Sprintf("item price at index %d", i))
		if err != nil {
			return nil, err
		}

		items = append(items, Item{ShortDescription: desc, Price: price})
	}
	return items, nil
}

func extractTotal(data map[string]any) (float64, error) {
	return requireNumeric(data["total"], "total")
}

// AssembleReceipt validates raw input of unknown shape and builds a normalized
// Receipt. Extractors run in a fixed order (retailer, date, time, items, total)
// and the first failure aborts the whole assembly. After extraction the sum of
// item prices must match the declared total within totalTolerance.
func AssembleReceipt(raw any) (*Receipt, error) {
	data, ok := raw.(map[string]any)
	if !ok || data == nil {
		return nil, validationErrorf("must be an object")
	}

	retailer, err := extractRetailer(data)
	if err != nil {
		return nil, err
	}
	purchaseDate, err := extractPurchaseDate(data)
	if err != nil {
		return nil, err
	}
	purchaseTime, err := extractPurchaseTime(data)
	if err != nil {
		return nil, err
	}
	items, err := extractItems(data)
	if err != nil {
		return nil, err
	}
	total, err := extractTotal(data)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	if math.Abs(sum-total) > totalTolerance {
		return nil, validationErrorf("calculated total (%g) does not match the provided total (%g)", sum, total)
	}

	return &Receipt{
		Retailer:     retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		Total:        total,
	}, nil
}
