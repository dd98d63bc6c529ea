package validation

import (
	"fmt"
	"strings"

	"github.com/collection-routing/internal/domain"
)

// maxPerCategory caps the bullets rendered for one category.
const maxPerCategory = 5

var categoryTitles = map[domain.Category]string{
	domain.CategoryStartPoint: "Ponto de partida",
	domain.CategoryPoints:     "Pontos de coleta",
	domain.CategoryVehicles:   "Veículos",
	domain.CategoryCapacity:   "Capacidade",
	domain.CategoryOther:      "Outros",
}

var remediationTips = []string{
	"Verifique se todos os pontos possuem latitude e longitude válidas.",
	"Confira se as janelas de tempo estão no formato HH:MM e se o início é anterior ao fim.",
	"Garanta que a capacidade dos veículos selecionados comporte o peso e o volume dos pontos.",
	"Revise os pontos atribuídos a um mesmo veículo para evitar horários sobrepostos.",
}

// FormatIssues renders issues grouped by category. Errors get a closing block
// of remediation tips; warnings do not.
func FormatIssues(issues []domain.Issue, isWarning bool) string {
	if len(issues) == 0 {
		return ""
	}

	grouped := make(map[domain.Category][]string, len(domain.Categories))
	for _, is := range issues {
		cat := is.Category
		if _, ok := categoryTitles[cat]; !ok {
			cat = domain.CategoryOther
		}
		grouped[cat] = append(grouped[cat], is.Message)
	}

	var b strings.Builder
	if isWarning {
		fmt.Fprintf(&b, "Atenção: %d aviso(s) encontrado(s). A otimização pode continuar.\n", len(issues))
	} else {
		fmt.Fprintf(&b, "Foram encontrados %d erro(s) que impedem a otimização.\n", len(issues))
	}

	for _, cat := range domain.Categories {
		msgs := grouped[cat]
		if len(msgs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", categoryTitles[cat], len(msgs))
		shown := msgs
		if len(shown) > maxPerCategory {
			shown = shown[:maxPerCategory]
		}
		for _, m := range shown {
			fmt.Fprintf(&b, "  • %s\n", m)
		}
		if extra := len(msgs) - len(shown); extra > 0 {
			fmt.Fprintf(&b, "  +%d mais\n", extra)
		}
	}

	if !isWarning {
		b.WriteString("\nDicas:\n")
		for _, tip := range remediationTips {
			fmt.Fprintf(&b, "  - %s\n", tip)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatMessages renders plain messages, e.g. ones returned by the optimizer,
// categorising each by keyword first.
func FormatMessages(messages []string, isWarning bool) string {
	severity := domain.SeverityError
	if isWarning {
		severity = domain.SeverityWarning
	}

	issues := make([]domain.Issue, len(messages))
	for i, m := range messages {
		issues[i] = domain.Issue{
			Severity: severity,
			Category: Categorize(m),
			Message:  m,
		}
	}
	return FormatIssues(issues, isWarning)
}

// Categorize guesses the category of a free-text message by keyword.
// Only used for messages that did not come from this package.
func Categorize(message string) domain.Category {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "ponto de partida"):
		return domain.CategoryStartPoint
	case strings.Contains(m, "veículo"), strings.Contains(m, "veiculo"):
		return domain.CategoryVehicles
	case containsAny(m, "capacidade", "volume", "peso"):
		return domain.CategoryCapacity
	case containsAny(m, "ponto", "coordenada", "latitude", "longitude", "janela", "horário", "horario"):
		return domain.CategoryPoints
	default:
		return domain.CategoryOther
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
