package model

import "satta_backend/internal/model"

// BigThreshold Числа от 5 и выше считаются большими
const BigThreshold = 5

// NumberTypes Таблица атрибутов для каждой цифры 0-9
var NumberTypes = [10]model.NumberType{
	0: {Range: model.RangeSmall, Color: model.ColorViolet, Group: model.GroupZeroNine},
	1: {Range: model.RangeSmall, Color: model.ColorGreen, Group: model.GroupOneFour},
	2: {Range: model.RangeSmall, Color: model.ColorRed, Group: model.GroupOneFour},
	3: {Range: model.RangeSmall, Color: model.ColorGreen, Group: model.GroupOneFour},
	4: {Range: model.RangeSmall, Color: model.ColorRed, Group: model.GroupOneFour},
	5: {Range: model.RangeBig, Color: model.ColorGreen, Group: model.GroupFiveNine},
	6: {Range: model.RangeBig, Color: model.ColorRed, Group: model.GroupFiveNine},
	7: {Range: model.RangeBig, Color: model.ColorGreen, Group: model.GroupFiveNine},
	8: {Range: model.RangeBig, Color: model.ColorRed, Group: model.GroupFiveNine},
	9: {Range: model.RangeBig, Color: model.ColorGreen, Group: model.GroupZeroNine},
}

// Classify Возвращает атрибуты цифры. n всегда в диапазоне 0-9
func Classify(n int) model.NumberType {
	return NumberTypes[n]
}

// IsValidNumber Проверка, что число может быть результатом
func IsValidNumber(n int) bool {
	return n >= 0 && n < len(NumberTypes)
}
