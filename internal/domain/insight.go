package domain

// Tons possíveis de um insight
const (
	TonePositive = "positive"
	ToneNeutral  = "neutral"
	ToneWarning  = "warning"
)

// IDs fixos das regras de insight. Estáveis entre chamadas com entrada
// equivalente; consumidores os usam como chave de exibição.
const (
	InsightTrend              = "trend"
	InsightTopCategory        = "top-category"
	InsightHighValueLowVolume = "high-value-low-volume"
	InsightLowValueHighVolume = "low-value-high-volume"
	InsightBaseline           = "baseline"
)

// Insight é uma observação textual derivada do resumo analítico por uma
// regra heurística fixa. Produzido a cada invocação, nunca persistido.
type Insight struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Tone  string `json:"tone"`
}
