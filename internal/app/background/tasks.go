package background

import (
    "context"
    "log"
    "time"

    referralusecase "github.com/hausly/hausly-marketplace-service/internal/usecase/referral"
)

type BackgroundTasks struct {
    ReferralUsecase referralusecase.ReferralUsecase
}

func NewBackgroundTasks(referralUC referralusecase.ReferralUsecase) *BackgroundTasks {
    return &BackgroundTasks{
        ReferralUsecase: referralUC,
    }
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
    go bt.startReferralExpirySweep(ctx)
}

func (bt *BackgroundTasks) startReferralExpirySweep(ctx context.Context) {
    ticker := time.NewTicker(1 * time.Minute)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            if err := bt.ReferralUsecase.ExpireStalePendingReferrals(); err != nil {
                log.Printf("Referral expiry sweep error: %v\n", err)
            }
        }
    }
}
