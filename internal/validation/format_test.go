package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/collection-routing/internal/domain"
	"github.com/collection-routing/internal/validation"
)

func TestFormatIssues_Empty(t *testing.T) {
	assert.Equal(t, "", validation.FormatIssues(nil, false))
	assert.Equal(t, "", validation.FormatMessages([]string{}, true))
}

func TestFormatIssues_Errors(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityError, Category: domain.CategoryCapacity, Message: "Peso total excedido"},
		{Severity: domain.SeverityError, Category: domain.CategoryStartPoint, Message: "Ponto de partida não informado"},
	}

	out := validation.FormatIssues(issues, false)

	assert.True(t, strings.HasPrefix(out, "Foram encontrados 2 erro(s)"))
	assert.Contains(t, out, "Ponto de partida (1):\n  • Ponto de partida não informado")
	assert.Contains(t, out, "Capacidade (1):\n  • Peso total excedido")
	assert.Less(t, strings.Index(out, "Ponto de partida (1)"), strings.Index(out, "Capacidade (1)"))
	assert.Contains(t, out, "Dicas:")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestFormatIssues_Warnings(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityWarning, Category: domain.CategoryPoints, Message: "2 ponto(s) a mais de 50 km"},
	}

	out := validation.FormatIssues(issues, true)

	assert.True(t, strings.HasPrefix(out, "Atenção: 1 aviso(s)"))
	assert.Contains(t, out, "Pontos de coleta (1):")
	assert.NotContains(t, out, "Dicas:")
}

func TestFormatIssues_TruncatesLongCategories(t *testing.T) {
	var issues []domain.Issue
	for i := 0; i < 8; i++ {
		issues = append(issues, domain.Issue{Category: domain.CategoryPoints, Message: "erro"})
	}

	out := validation.FormatIssues(issues, false)

	assert.Contains(t, out, "Pontos de coleta (8):")
	assert.Equal(t, 5, strings.Count(out, "  • erro"))
	assert.Contains(t, out, "  +3 mais")
}

func TestFormatIssues_UnknownCategoryFallsBackToOther(t *testing.T) {
	out := validation.FormatIssues([]domain.Issue{{Category: "mystery", Message: "algo"}}, true)
	assert.Contains(t, out, "Outros (1):\n  • algo")
}

func TestCategorize(t *testing.T) {
	cases := map[string]domain.Category{
		"Ponto de partida não informado":                      domain.CategoryStartPoint,
		"Veículo Caminhão: capacidade inválida (0)":           domain.CategoryVehicles,
		"Nenhum veiculo selecionado":                          domain.CategoryVehicles,
		"Peso total dos pontos excede a capacidade":           domain.CategoryCapacity,
		"Volume total excedido":                               domain.CategoryCapacity,
		"Ponto 3: coordenadas inválidas":                      domain.CategoryPoints,
		"Formato de HORÁRIO inválido":                         domain.CategoryPoints,
		"Latitude fora do intervalo":                          domain.CategoryPoints,
		"Erro interno do otimizador":                          domain.CategoryOther,
	}

	for msg, want := range cases {
		t.Run(msg, func(t *testing.T) {
			assert.Equal(t, want, validation.Categorize(msg))
		})
	}
}

func TestFormatMessages_UsesKeywordCategories(t *testing.T) {
	out := validation.FormatMessages([]string{
		"Veículo 2 sem capacidade",
		"Ponto 1: coordenadas inválidas",
	}, false)

	assert.Contains(t, out, "Pontos de coleta (1):")
	assert.Contains(t, out, "Veículos (1):")
}

func TestFormatIssues_FromValidation(t *testing.T) {
	req := domain.OptimizationRequest{}

	res := validation.Validate(req)
	out := validation.FormatIssues(res.ErrorIssues, false)

	assert.Contains(t, out, "Foram encontrados 3 erro(s)")
	assert.Contains(t, out, "Ponto de partida (1):")
	assert.Contains(t, out, "Pontos de coleta (1):")
	assert.Contains(t, out, "Veículos (1):")
}
