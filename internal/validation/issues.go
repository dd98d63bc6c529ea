package validation

import (
	"fmt"

	"github.com/collection-routing/internal/domain"
)

// collector accumulates findings in the order checks emit them.
type collector struct {
	errors   []domain.Issue
	warnings []domain.Issue
}

func (c *collector) errorf(cat domain.Category, ref *domain.EntityRef, format string, args ...interface{}) {
	c.errors = append(c.errors, domain.Issue{
		Severity: domain.SeverityError,
		Category: cat,
		Entity:   ref,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *collector) warnf(cat domain.Category, ref *domain.EntityRef, format string, args ...interface{}) {
	c.warnings = append(c.warnings, domain.Issue{
		Severity: domain.SeverityWarning,
		Category: cat,
		Entity:   ref,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *collector) result() domain.ValidationResult {
	res := domain.ValidationResult{
		Errors:        make([]string, len(c.errors)),
		Warnings:      make([]string, len(c.warnings)),
		ErrorIssues:   c.errors,
		WarningIssues: c.warnings,
	}
	for i, is := range c.errors {
		res.Errors[i] = is.Message
	}
	for i, is := range c.warnings {
		res.Warnings[i] = is.Message
	}
	res.IsValid = len(res.Errors) == 0
	return res
}

func pointRef(i int, p domain.Point) *domain.EntityRef {
	return &domain.EntityRef{Kind: domain.EntityPoint, Index: i, ID: p.ID}
}

func vehicleRef(i int, v domain.Vehicle) *domain.EntityRef {
	return &domain.EntityRef{Kind: domain.EntityVehicle, Index: i, ID: v.ID}
}

// pointLabel names a point by position, with its display name when it has one.
func pointLabel(i int, p domain.Point) string {
	if p.Name != "" {
		return fmt.Sprintf("Ponto %d (%s)", i+1, p.Name)
	}
	return fmt.Sprintf("Ponto %d", i+1)
}

func pointName(i int, p domain.Point) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Ponto %d", i+1)
}

func vehicleLabel(i int, v domain.Vehicle) string {
	if v.Name != "" {
		return "Veículo " + v.Name
	}
	return fmt.Sprintf("Veículo #%d", i+1)
}

// describe renders a raw field value for messages.
func describe(n domain.Number) string {
	if !n.IsSet() {
		return "não informado"
	}
	return fmt.Sprintf("%v", n.Raw())
}
