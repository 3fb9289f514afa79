package stats

import (
	"context"
	"net/http"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/dto"
	"github.com/mkorchagin/payledger/pkg/money"
	"github.com/mkorchagin/payledger/pkg/utils"
)

type Service interface {
	FinanceSummary(ctx context.Context) (*domain.FinanceSummary, error)
}

type StatsHandler struct {
	statService Service
}

func New(statService Service) *StatsHandler {
	return &StatsHandler{
		statService: statService,
	}
}

// Finance godoc
//
//	@Summary		Finance summary
//	@Description	Aggregates over paid payments: top-up and withdraw totals, commission, referral payouts and outstanding user balance.
//	@Tags			Statistics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FinanceSummaryResponseDTO	"Finance summary"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/statistics/finance [get]
func (h *StatsHandler) Finance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statService.FinanceSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FinanceSummaryResponseDTO{
		TotalTopUp:           money.Format(summary.TotalTopUp),
		TotalWithdraw:        money.Format(summary.TotalWithdraw),
		TotalCommission:      money.Format(summary.TotalCommission),
		TotalReferralPayouts: money.Format(summary.TotalReferralPayouts),
		TotalUserBalance:     money.Format(summary.TotalUserBalance),
		BalanceDifference:    money.Format(summary.BalanceDifference),
	})
}
