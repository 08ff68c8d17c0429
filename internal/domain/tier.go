package domain

import "github.com/shopspring/decimal"

const (
	founderReferralThreshold = 10
	vipReferralThreshold     = 3
)

var commissionRates = map[UserTier]decimal.Decimal{
	TierFounder: decimal.NewFromFloat(0.15),
	TierVIP:     decimal.NewFromFloat(0.10),
	TierMember:  decimal.Zero,
}

// CommissionRate возвращает долю от subtotal заказа, выплачиваемую рефереру этого уровня.
func (t UserTier) CommissionRate() decimal.Decimal {
	if rate, ok := commissionRates[t]; ok {
		return rate
	}
	return decimal.Zero
}

// NextTier пересчитывает уровень реферера по количеству подтвержденных рефералов.
// Уровень только повышается: Member -> VIP (от 3), любой -> Founder (от 10).
func NextTier(current UserTier, referralCount int) UserTier {
	switch {
	case referralCount >= founderReferralThreshold:
		return TierFounder
	case referralCount >= vipReferralThreshold && current == TierMember:
		return TierVIP
	default:
		return current
	}
}
