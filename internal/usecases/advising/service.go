package advising

import (
	"fmt"
	"math"

	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/adviser_mock.go -package=mocks

// Limiares das regras heurísticas
const (
	trendMinPct      = 5.0
	topCategoryShare = 20.0
	highAvgOrder     = 150.0
	lowAvgOrder      = 40.0
	lowVolume        = 10
	highVolume       = 40
)

// Adviser define a interface para derivar insights textuais do resumo analítico
type Adviser interface {
	// ComputeInsights avalia as regras heurísticas sobre o resumo e
	// retorna a lista ordenada de insights, nunca vazia
	ComputeInsights(summary *domain.AnalyticsSummary) []*domain.Insight
}

type Service struct{}

// NewService cria uma nova instância do motor de insights
func NewService() Adviser {
	return &Service{}
}

func (s *Service) ComputeInsights(summary *domain.AnalyticsSummary) []*domain.Insight {
	return ComputeInsights(summary)
}

// ComputeInsights é o motor de regras: uma sequência fixa e ordenada de
// pares predicado-ação, cada um anexando zero ou um insight. Sem
// aleatoriedade e sem dependência de relógio: o resultado é sempre o
// mesmo para um mesmo resumo.
func ComputeInsights(summary *domain.AnalyticsSummary) []*domain.Insight {
	insights := make([]*domain.Insight, 0, 3)

	kpis := summary.Kpis

	// 1) Tendência: compara o primeiro e o último ponto da série
	if len(summary.Series) >= 2 {
		first := summary.Series[0]
		last := summary.Series[len(summary.Series)-1]
		diff := last.Revenue - first.Revenue

		var pct float64
		switch {
		case first.Revenue > 0:
			pct = diff / first.Revenue * 100
		case diff > 0:
			pct = 100
		default:
			pct = 0
		}

		if math.Abs(pct) >= trendMinPct {
			if pct > 0 {
				insights = append(insights, &domain.Insight{
					ID:    domain.InsightTrend,
					Title: "Revenue trending up",
					Tone:  domain.TonePositive,
					Body: fmt.Sprintf(
						"Revenue is up about %.1f%% compared to the start of this period. Consider doubling down on what’s working (e.g., promoting your top services).",
						pct,
					),
				})
			} else {
				// A queda é formatada sem casas decimais, diferente da
				// alta (uma casa). Assimetria herdada da origem; coberta
				// por teste em vez de unificada.
				insights = append(insights, &domain.Insight{
					ID:    domain.InsightTrend,
					Title: "Revenue trending down",
					Tone:  domain.ToneWarning,
					Body: fmt.Sprintf(
						"Revenue is down about %.0f%% versus the start of this period. It may be worth reviewing pricing, promotions, or client retention strategies.",
						math.Abs(pct),
					),
				})
			}
		}
	}

	// 2) Categoria líder: sempre emite quando há alguma categoria
	if len(summary.ByCategory) > 0 {
		top := summary.ByCategory[0]

		hasShare := kpis.TotalRevenue > 0
		var share float64
		if hasShare {
			share = top.Revenue / kpis.TotalRevenue * 100
		}

		body := fmt.Sprintf(
			"%s is currently your best-performing category. You could feature it more prominently in your booking flow or promotions.",
			top.Category,
		)
		if hasShare && share >= topCategoryShare {
			body = fmt.Sprintf(
				"%s is your best-performing category and contributes about %.0f%% of total revenue. Highlight this category in your marketing or upsell it during appointments.",
				top.Category, share,
			)
		}

		insights = append(insights, &domain.Insight{
			ID:    domain.InsightTopCategory,
			Title: "Top performing category",
			Tone:  domain.ToneNeutral,
			Body:  body,
		})
	}

	// 3) Volume vs. valor: as duas condições são mutuamente exclusivas
	if kpis.TotalAppointments > 0 && kpis.TotalRevenue > 0 {
		highAov := kpis.AvgOrderValue >= highAvgOrder
		lowAov := kpis.AvgOrderValue <= lowAvgOrder
		fewAppointments := kpis.TotalAppointments < lowVolume
		manyAppointments := kpis.TotalAppointments >= highVolume

		if highAov && fewAppointments {
			insights = append(insights, &domain.Insight{
				ID:    domain.InsightHighValueLowVolume,
				Title: "High value, low volume",
				Tone:  domain.ToneNeutral,
				Body:  "Your average order value is high, but you’re seeing relatively few appointments. Consider strategies to increase booking volume, like off-peak discounts or referral incentives.",
			})
		} else if lowAov && manyAppointments {
			insights = append(insights, &domain.Insight{
				ID:    domain.InsightLowValueHighVolume,
				Title: "High volume, room to increase value",
				Tone:  domain.TonePositive,
				Body:  "You have strong booking volume, but a relatively low average order value. You might experiment with add-ons, bundles, or premium services to gently raise revenue per appointment.",
			})
		}
	}

	// 4) Fallback: garante que o resultado nunca é vazio
	if len(insights) == 0 {
		insights = append(insights, &domain.Insight{
			ID:    domain.InsightBaseline,
			Title: "Stable performance",
			Tone:  domain.ToneNeutral,
			Body:  "Performance looks relatively stable for this period. Try adjusting the date range to spot short-term spikes or dips, or segment by category to see where the biggest opportunities are.",
		})
	}

	return insights
}
