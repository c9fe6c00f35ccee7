package domain

// FinalPrice вычисляет итоговую цену услуги с учётом скидки
//
// Правила:
//   - отсутствующая базовая цена (nil) трактуется как 0 до умножения
//   - discountPercent <= 0 — скидка не применяется, возвращается базовая цена
//   - discountPercent >= 100 — цена обнуляется
//
// Округление не применяется, форматирование цены — забота представления
func FinalPrice(basePrice *float64, discountPercent float64) float64 {
	price := 0.0
	if basePrice != nil {
		price = *basePrice
	}
	if price < 0 {
		price = 0
	}

	if discountPercent <= 0 {
		return price
	}
	if discountPercent >= 100 {
		return 0
	}

	return price * (100 - discountPercent) / 100
}
