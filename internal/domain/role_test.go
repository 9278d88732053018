package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aracah/aracah-api/internal/domain"
)

func TestRole_Matches_CaseInsensitive(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Matches("Admin"))
	assert.True(t, domain.RoleAdmin.Matches("ADMIN"))
	assert.True(t, domain.RoleAdmin.Matches("  admin  "))
	assert.False(t, domain.RoleAdmin.Matches("Supervisor"))
	assert.False(t, domain.RoleAdmin.Matches(""))
}

func TestAnyMatches_ListaVaciaAdmiteCualquiera(t *testing.T) {
	assert.True(t, domain.AnyMatches(nil, "Cliente"))
	assert.True(t, domain.AnyMatches([]domain.Role{}, "lo que sea"))
}

func TestAnyMatches_ListaNoVacia(t *testing.T) {
	gestion := []domain.Role{domain.RoleAdmin, domain.RoleSupervisor}

	assert.True(t, domain.AnyMatches(gestion, "supervisor"))
	assert.False(t, domain.AnyMatches(gestion, "Vendedor"))
	assert.False(t, domain.AnyMatches(gestion, ""))
}
