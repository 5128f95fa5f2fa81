package policy

import (
	"testing"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOwnership(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		caller  string
		owner   string
		wantErr bool
	}{
		{name: "admin bypasses ownership", role: entity.RoleAdmin, caller: "admin1", owner: "cliente1", wantErr: false},
		{name: "owner accesses own record", role: entity.RoleCliente, caller: "cliente1", owner: "cliente1", wantErr: false},
		{name: "cliente blocked from another owner", role: entity.RoleCliente, caller: "cliente1", owner: "cliente2", wantErr: true},
		{name: "veterinario blocked from another owner", role: entity.RoleVeterinario, caller: "vet1", owner: "cliente1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOwnership(tt.role, tt.caller, tt.owner)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequireRole(t *testing.T) {
	require.NoError(t, RequireRole(entity.RoleVeterinario, entity.RoleVeterinario, entity.RoleAdmin))
	require.NoError(t, RequireRole(entity.RoleAdmin, entity.RoleVeterinario, entity.RoleAdmin))

	err := RequireRole(entity.RoleCliente, entity.RoleVeterinario, entity.RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(entity.RoleVeterinario))
	assert.True(t, IsStaff(entity.RoleAdmin))
	assert.False(t, IsStaff(entity.RoleCliente))
}
