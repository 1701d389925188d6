package referraldto

import "github.com/hausly/hausly-marketplace-service/internal/domain"

type GetReferralsOutput struct {
	Referrals []*domain.Referral
	Total 	  int64
	Page 	  int
	Limit 	  int
}
